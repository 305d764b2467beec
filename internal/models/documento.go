package models

import "time"

// Documento binds an uploaded file to a client together with its review
// status. The physical file and the metadata row are created and deleted
// together.
type Documento struct {
	ID        string  `db:"id" json:"id"`
	ClienteID string  `db:"cliente_id" json:"clienteId"`
	Nome      string  `db:"nome" json:"nome"`
	Descricao *string `db:"descricao" json:"descricao,omitempty"`

	NomeArquivo    string `db:"nome_arquivo" json:"nomeArquivo"`
	TipoArquivo    string `db:"tipo_arquivo" json:"tipoArquivo"`
	TamanhoBytes   int64  `db:"tamanho_bytes" json:"tamanhoBytes"`
	CaminhoArquivo string `db:"caminho_arquivo" json:"-"`

	Status             string    `db:"status" json:"status"`
	StatusAtualizadoEm time.Time `db:"status_atualizado_em" json:"statusAtualizadoEm"`

	UploadPorID string    `db:"upload_por_id" json:"uploadPorId"`
	UploadEm    time.Time `db:"upload_em" json:"uploadEm"`
}

// StatusDocumento is a configurable catalog entry for document review states.
type StatusDocumento struct {
	ID    string `db:"id" json:"id"`
	Nome  string `db:"nome" json:"nome"`
	Cor   string `db:"cor" json:"cor"`
	Ordem int    `db:"ordem" json:"ordem"`
	Ativo bool   `db:"ativo" json:"ativo"`
}

// Default review states seeded when the catalog is empty.
const (
	StatusEmAnalise = "em_analise"
	StatusEmUso     = "em_uso"
	StatusDevolvido = "devolvido"
	StatusArquivado = "arquivado"
)
