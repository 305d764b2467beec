package models

// LoginRequest carries the credentials posted to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IP       string `json:"-"`
}

// ChangePasswordRequest carries a password rotation for the current user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// CreateUserRequest is the admin payload for provisioning an account. The
// password set here is provisional; the new user must replace it on first
// login.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

// UpdateUserRequest is the admin payload for editing an account. Username is
// immutable and absent. An empty password leaves the current one in place.
type UpdateUserRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// ClienteInput is the payload for creating or updating a client record.
type ClienteInput struct {
	Tipo                string  `json:"tipo" validate:"required,oneof=pf pj"`
	Nome                string  `json:"nome" validate:"required"`
	CpfCnpj             string  `json:"cpfCnpj" validate:"required"`
	RgInscricaoEstadual *string `json:"rgInscricaoEstadual"`
	DataNascimento      *string `json:"dataNascimento"`
	LocalNascimento     *string `json:"localNascimento"`
	Cep                 *string `json:"cep"`
	Endereco            *string `json:"endereco"`
	Numero              *string `json:"numero"`
	Complemento         *string `json:"complemento"`
	Bairro              *string `json:"bairro"`
	Cidade              *string `json:"cidade"`
	Estado              *string `json:"estado"`
	Telefone            *string `json:"telefone"`
	Celular             *string `json:"celular"`
	Email               *string `json:"email" validate:"omitempty,email"`
	Ocupacao            *string `json:"ocupacao"`
	Observacoes         *string `json:"observacoes"`
}

// DocumentoUpdateRequest edits document metadata. Status must name an
// active catalog entry.
type DocumentoUpdateRequest struct {
	Nome      string  `json:"nome" validate:"required"`
	Descricao *string `json:"descricao"`
	Status    string  `json:"status" validate:"required"`
}

// StatusDocumentoInput creates or updates a status catalog entry.
type StatusDocumentoInput struct {
	Nome  string `json:"nome" validate:"required"`
	Cor   string `json:"cor" validate:"required"`
	Ordem int    `json:"ordem"`
	Ativo *bool  `json:"ativo"`
}

// DocumentoJuridicoInput creates or updates an editor document.
type DocumentoJuridicoInput struct {
	ClienteID *string `json:"clienteId"`
	Titulo    string  `json:"titulo" validate:"required"`
	Conteudo  string  `json:"conteudo" validate:"required"`
}
