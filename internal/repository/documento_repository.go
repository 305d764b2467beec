package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vmachado/escritorio-api/internal/models"
)

const documentoColumns = `id, cliente_id, nome, descricao, nome_arquivo, tipo_arquivo, tamanho_bytes,
	caminho_arquivo, status, status_atualizado_em, upload_por_id, upload_em`

// DocumentoRepository provides database access for document metadata.
type DocumentoRepository struct {
	db *sqlx.DB
}

// NewDocumentoRepository creates a new instance of DocumentoRepository.
func NewDocumentoRepository(db *sqlx.DB) *DocumentoRepository {
	return &DocumentoRepository{db: db}
}

// List returns all documents, newest upload first. A non-empty clienteID
// restricts the result to one client.
func (r *DocumentoRepository) List(ctx context.Context, clienteID string) ([]models.Documento, error) {
	var documentos []models.Documento
	if clienteID != "" {
		query := fmt.Sprintf(`SELECT %s FROM documentos WHERE cliente_id = $1 ORDER BY upload_em DESC`, documentoColumns)
		if err := r.db.SelectContext(ctx, &documentos, query, clienteID); err != nil {
			return nil, fmt.Errorf("list documentos by cliente: %w", err)
		}
		return documentos, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM documentos ORDER BY upload_em DESC`, documentoColumns)
	if err := r.db.SelectContext(ctx, &documentos, query); err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	return documentos, nil
}

// FindByID returns a document by identifier.
func (r *DocumentoRepository) FindByID(ctx context.Context, id string) (*models.Documento, error) {
	query := fmt.Sprintf(`SELECT %s FROM documentos WHERE id = $1 LIMIT 1`, documentoColumns)
	var documento models.Documento
	if err := r.db.GetContext(ctx, &documento, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find documento by id: %w", err)
	}
	return &documento, nil
}

// Create inserts a new document metadata row.
func (r *DocumentoRepository) Create(ctx context.Context, documento *models.Documento) error {
	if documento.ID == "" {
		documento.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if documento.UploadEm.IsZero() {
		documento.UploadEm = now
	}
	if documento.StatusAtualizadoEm.IsZero() {
		documento.StatusAtualizadoEm = now
	}

	const query = `INSERT INTO documentos (id, cliente_id, nome, descricao, nome_arquivo, tipo_arquivo, tamanho_bytes,
		caminho_arquivo, status, status_atualizado_em, upload_por_id, upload_em)
		VALUES (:id, :cliente_id, :nome, :descricao, :nome_arquivo, :tipo_arquivo, :tamanho_bytes,
		:caminho_arquivo, :status, :status_atualizado_em, :upload_por_id, :upload_em)`
	if _, err := r.db.NamedExecContext(ctx, query, documento); err != nil {
		return fmt.Errorf("create documento: %w", err)
	}
	return nil
}

// Update persists the mutable fields of a document.
func (r *DocumentoRepository) Update(ctx context.Context, documento *models.Documento) error {
	const query = `UPDATE documentos SET nome = :nome, descricao = :descricao, status = :status,
		status_atualizado_em = :status_atualizado_em WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, documento); err != nil {
		return fmt.Errorf("update documento: %w", err)
	}
	return nil
}

// Delete removes a document metadata row.
func (r *DocumentoRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM documentos WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete documento: %w", err)
	}
	return nil
}

// Count returns the total number of stored documents.
func (r *DocumentoRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM documentos`); err != nil {
		return 0, fmt.Errorf("count documentos: %w", err)
	}
	return total, nil
}
