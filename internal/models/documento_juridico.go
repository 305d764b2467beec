package models

import "time"

// DocumentoJuridico is a free-text legal document produced in the editor,
// optionally linked to a client. Conteudo holds the editor HTML and may use
// {{campo}} placeholders interpolated from the linked client when rendered.
type DocumentoJuridico struct {
	ID        string  `db:"id" json:"id"`
	ClienteID *string `db:"cliente_id" json:"clienteId,omitempty"`
	Titulo    string  `db:"titulo" json:"titulo"`
	Conteudo  string  `db:"conteudo" json:"conteudo"`

	CriadoPorID  string    `db:"criado_por_id" json:"criadoPorId"`
	CriadoEm     time.Time `db:"criado_em" json:"criadoEm"`
	AtualizadoEm time.Time `db:"atualizado_em" json:"atualizadoEm"`
}
