package models

import "time"

// Audit action codes. These form a fixed wire vocabulary shared with the
// frontend and the stored history; do not rename them.
const (
	AcaoLogin                    = "login"
	AcaoLogout                   = "logout"
	AcaoAlterarSenha             = "alterar_senha"
	AcaoCriarCliente             = "criar_cliente"
	AcaoEditarCliente            = "editar_cliente"
	AcaoExcluirCliente           = "excluir_cliente"
	AcaoUploadDocumento          = "upload_documento"
	AcaoEditarDocumento          = "editar_documento"
	AcaoExcluirDocumento         = "excluir_documento"
	AcaoCriarDocumentoJuridico   = "criar_documento_juridico"
	AcaoEditarDocumentoJuridico  = "editar_documento_juridico"
	AcaoExcluirDocumentoJuridico = "excluir_documento_juridico"
	AcaoCriarUsuario             = "criar_usuario"
	AcaoEditarUsuario            = "editar_usuario"
	AcaoAlterarStatusUsuario     = "alterar_status_usuario"
	AcaoCriarStatusDocumento     = "criar_status_documento"
	AcaoEditarStatusDocumento    = "editar_status_documento"
	AcaoExcluirStatusDocumento   = "excluir_status_documento"
)

// Audited entity types.
const (
	EntidadeCliente           = "cliente"
	EntidadeDocumento         = "documento"
	EntidadeDocumentoJuridico = "documento_juridico"
	EntidadeUsuario           = "usuario"
	EntidadeStatusDocumento   = "status_documento"
)

// AuditLog is an immutable record of a security- or business-relevant
// action. UsuarioNome is a denormalized snapshot so history stays readable
// even if the user record later changes; UsuarioID may dangle (nullable).
type AuditLog struct {
	ID          string    `db:"id" json:"id"`
	UsuarioID   *string   `db:"usuario_id" json:"usuarioId,omitempty"`
	UsuarioNome string    `db:"usuario_nome" json:"usuarioNome"`
	Acao        string    `db:"acao" json:"acao"`
	Entidade    *string   `db:"entidade" json:"entidade,omitempty"`
	EntidadeID  *string   `db:"entidade_id" json:"entidadeId,omitempty"`
	Detalhes    *string   `db:"detalhes" json:"detalhes,omitempty"`
	IPAddress   *string   `db:"ip_address" json:"ipAddress,omitempty"`
	DataHora    time.Time `db:"data_hora" json:"dataHora"`
}
