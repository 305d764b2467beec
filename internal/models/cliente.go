package models

import "time"

// ClienteTipo distinguishes individuals from organizations.
type ClienteTipo string

const (
	ClientePessoaFisica   ClienteTipo = "pf"
	ClientePessoaJuridica ClienteTipo = "pj"
)

// Cliente represents a registered client, either an individual (pf) or an
// organization (pj). The CPF/CNPJ tax number is globally unique.
type Cliente struct {
	ID   string      `db:"id" json:"id"`
	Tipo ClienteTipo `db:"tipo" json:"tipo"`

	Nome               string  `db:"nome" json:"nome"`
	CpfCnpj            string  `db:"cpf_cnpj" json:"cpfCnpj"`
	RgInscricaoEstadual *string `db:"rg_inscricao_estadual" json:"rgInscricaoEstadual,omitempty"`

	// Individual-only fields.
	DataNascimento  *string `db:"data_nascimento" json:"dataNascimento,omitempty"`
	LocalNascimento *string `db:"local_nascimento" json:"localNascimento,omitempty"`

	// Address block shared by both types.
	Cep         *string `db:"cep" json:"cep,omitempty"`
	Endereco    *string `db:"endereco" json:"endereco,omitempty"`
	Numero      *string `db:"numero" json:"numero,omitempty"`
	Complemento *string `db:"complemento" json:"complemento,omitempty"`
	Bairro      *string `db:"bairro" json:"bairro,omitempty"`
	Cidade      *string `db:"cidade" json:"cidade,omitempty"`
	Estado      *string `db:"estado" json:"estado,omitempty"`

	Telefone *string `db:"telefone" json:"telefone,omitempty"`
	Celular  *string `db:"celular" json:"celular,omitempty"`
	Email    *string `db:"email" json:"email,omitempty"`

	// Occupation for individuals, trade sector for organizations.
	Ocupacao    *string `db:"ocupacao" json:"ocupacao,omitempty"`
	Observacoes *string `db:"observacoes" json:"observacoes,omitempty"`

	CriadoPorID  string    `db:"criado_por_id" json:"criadoPorId"`
	CriadoEm     time.Time `db:"criado_em" json:"criadoEm"`
	AtualizadoEm time.Time `db:"atualizado_em" json:"atualizadoEm"`
}
