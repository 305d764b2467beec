package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Escritório API",
        "description": "Record management API for law offices: clients, physical documents and legal document templates.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login, logout and password rotation"},
        {"name": "Clientes", "description": "Client records"},
        {"name": "Documentos", "description": "Physical document tracking and file uploads"},
        {"name": "Status Documentos", "description": "Document status catalog"},
        {"name": "Documentos Jurídicos", "description": "Legal document templates and PDF rendering"},
        {"name": "Usuários", "description": "User account administration"},
        {"name": "Logs", "description": "Audit trail"},
        {"name": "Dashboard", "description": "Aggregate counts"},
        {"name": "RefData", "description": "Postal code and region lookups"}
    ],
    "paths": {
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and open a session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"},
                    "403": {"description": "Account inactive"}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Destroy the current session",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/user": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current authenticated user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/change-password": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate the current user's password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated user", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Wrong current password"}
                }
            }
        },
        "/clientes": {
            "get": {
                "tags": ["Clientes"],
                "summary": "List clients",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Clientes"],
                "summary": "Create client",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClienteInput"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "CPF/CNPJ already registered"}
                }
            }
        },
        "/clientes/{id}": {
            "get": {
                "tags": ["Clientes"],
                "summary": "Fetch client",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "patch": {
                "tags": ["Clientes"],
                "summary": "Update client",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClienteInput"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Clientes"],
                "summary": "Delete client",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/documentos": {
            "get": {
                "tags": ["Documentos"],
                "summary": "List documents",
                "parameters": [{"name": "clienteId", "in": "query", "type": "string"}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/documentos/upload": {
            "post": {
                "tags": ["Documentos"],
                "summary": "Upload a document file",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "type": "file", "required": true},
                    {"name": "clienteId", "in": "formData", "type": "string", "required": true},
                    {"name": "nome", "in": "formData", "type": "string", "required": true},
                    {"name": "descricao", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "File too large or type not allowed"}
                }
            }
        },
        "/documentos/{id}": {
            "get": {
                "tags": ["Documentos"],
                "summary": "Fetch document metadata",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "tags": ["Documentos"],
                "summary": "Update document metadata and status",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DocumentoUpdateRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Documentos"],
                "summary": "Delete document and its file",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/documentos/{id}/download": {
            "get": {
                "tags": ["Documentos"],
                "summary": "Download the document file",
                "description": "Accepts either an active session or a signed token in the token query parameter.",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "token", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File stream"},
                    "401": {"description": "No session and no valid token"}
                }
            }
        },
        "/documentos/{id}/url": {
            "get": {
                "tags": ["Documentos"],
                "summary": "Generate a signed, expiring download link",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/status-documentos": {
            "get": {
                "tags": ["Status Documentos"],
                "summary": "List active status entries",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Status Documentos"],
                "summary": "Create status entry (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusDocumentoInput"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/status-documentos/{id}": {
            "patch": {
                "tags": ["Status Documentos"],
                "summary": "Update status entry (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusDocumentoInput"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Status Documentos"],
                "summary": "Delete status entry (admin)",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "Status is in use"}
                }
            }
        },
        "/documentos-juridicos": {
            "get": {
                "tags": ["Documentos Jurídicos"],
                "summary": "List legal documents",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Documentos Jurídicos"],
                "summary": "Create legal document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DocumentoJuridicoInput"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/documentos-juridicos/{id}": {
            "get": {
                "tags": ["Documentos Jurídicos"],
                "summary": "Fetch legal document",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "tags": ["Documentos Jurídicos"],
                "summary": "Update legal document",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DocumentoJuridicoInput"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Documentos Jurídicos"],
                "summary": "Delete legal document",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/documentos-juridicos/{id}/pdf": {
            "get": {
                "tags": ["Documentos Jurídicos"],
                "summary": "Render legal document as PDF with client data interpolated",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "PDF stream"}}
            }
        },
        "/usuarios": {
            "get": {
                "tags": ["Usuários"],
                "summary": "List users (admin)",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Usuários"],
                "summary": "Create user with provisional password (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Username or email taken"}
                }
            }
        },
        "/usuarios/{id}": {
            "patch": {
                "tags": ["Usuários"],
                "summary": "Update user (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/usuarios/{id}/toggle-ativo": {
            "patch": {
                "tags": ["Usuários"],
                "summary": "Activate or deactivate a user (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetAtivoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Cannot deactivate own account"}
                }
            }
        },
        "/logs": {
            "get": {
                "tags": ["Logs"],
                "summary": "List audit trail entries (admin)",
                "parameters": [{"name": "limit", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/logs/export": {
            "get": {
                "tags": ["Logs"],
                "summary": "Export audit trail as CSV (admin)",
                "responses": {"200": {"description": "CSV stream"}}
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Aggregate record counts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard/atividades-recentes": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Latest audit activity",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/cep/{cep}": {
            "get": {
                "tags": ["RefData"],
                "summary": "Resolve a postal code via ViaCEP",
                "parameters": [{"name": "cep", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Postal code not found"},
                    "504": {"description": "Upstream timeout"}
                }
            }
        },
        "/ibge/estados": {
            "get": {
                "tags": ["RefData"],
                "summary": "List states via IBGE",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ibge/municipios/{uf}": {
            "get": {
                "tags": ["RefData"],
                "summary": "List municipalities of a state via IBGE",
                "parameters": [{"name": "uf", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "ChangePasswordRequest": {
            "type": "object",
            "required": ["currentPassword", "newPassword"],
            "properties": {
                "currentPassword": {"type": "string"},
                "newPassword": {"type": "string", "minLength": 6}
            }
        },
        "ClienteInput": {
            "type": "object",
            "required": ["nome", "cpfCnpj", "tipo"],
            "properties": {
                "nome": {"type": "string"},
                "cpfCnpj": {"type": "string"},
                "tipo": {"type": "string", "enum": ["pf", "pj"]},
                "email": {"type": "string"},
                "telefone": {"type": "string"},
                "cep": {"type": "string"},
                "endereco": {"type": "string"},
                "cidade": {"type": "string"},
                "estado": {"type": "string"}
            }
        },
        "DocumentoUpdateRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "descricao": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "StatusDocumentoInput": {
            "type": "object",
            "required": ["nome", "cor"],
            "properties": {
                "nome": {"type": "string"},
                "cor": {"type": "string"},
                "ordem": {"type": "integer"},
                "ativo": {"type": "boolean"}
            }
        },
        "DocumentoJuridicoInput": {
            "type": "object",
            "required": ["titulo", "conteudo"],
            "properties": {
                "clienteId": {"type": "string"},
                "titulo": {"type": "string"},
                "conteudo": {"type": "string"}
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "required": ["username", "nome", "email", "password", "role"],
            "properties": {
                "username": {"type": "string", "minLength": 3},
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["admin", "user"]}
            }
        },
        "UpdateUserRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["admin", "user"]}
            }
        },
        "SetAtivoRequest": {
            "type": "object",
            "required": ["ativo"],
            "properties": {
                "ativo": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
