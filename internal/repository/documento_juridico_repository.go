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

const documentoJuridicoColumns = `id, cliente_id, titulo, conteudo, criado_por_id, criado_em, atualizado_em`

// DocumentoJuridicoRepository provides database access for editor documents.
type DocumentoJuridicoRepository struct {
	db *sqlx.DB
}

// NewDocumentoJuridicoRepository creates a new instance.
func NewDocumentoJuridicoRepository(db *sqlx.DB) *DocumentoJuridicoRepository {
	return &DocumentoJuridicoRepository{db: db}
}

// List returns all editor documents, newest first.
func (r *DocumentoJuridicoRepository) List(ctx context.Context) ([]models.DocumentoJuridico, error) {
	query := fmt.Sprintf(`SELECT %s FROM documentos_juridicos ORDER BY criado_em DESC`, documentoJuridicoColumns)
	var documentos []models.DocumentoJuridico
	if err := r.db.SelectContext(ctx, &documentos, query); err != nil {
		return nil, fmt.Errorf("list documentos juridicos: %w", err)
	}
	return documentos, nil
}

// FindByID returns an editor document by identifier.
func (r *DocumentoJuridicoRepository) FindByID(ctx context.Context, id string) (*models.DocumentoJuridico, error) {
	query := fmt.Sprintf(`SELECT %s FROM documentos_juridicos WHERE id = $1 LIMIT 1`, documentoJuridicoColumns)
	var documento models.DocumentoJuridico
	if err := r.db.GetContext(ctx, &documento, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find documento juridico by id: %w", err)
	}
	return &documento, nil
}

// Create inserts a new editor document.
func (r *DocumentoJuridicoRepository) Create(ctx context.Context, documento *models.DocumentoJuridico) error {
	if documento.ID == "" {
		documento.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if documento.CriadoEm.IsZero() {
		documento.CriadoEm = now
	}
	documento.AtualizadoEm = now

	const query = `INSERT INTO documentos_juridicos (id, cliente_id, titulo, conteudo, criado_por_id, criado_em, atualizado_em)
		VALUES (:id, :cliente_id, :titulo, :conteudo, :criado_por_id, :criado_em, :atualizado_em)`
	if _, err := r.db.NamedExecContext(ctx, query, documento); err != nil {
		return fmt.Errorf("create documento juridico: %w", err)
	}
	return nil
}

// Update persists title, content and client link.
func (r *DocumentoJuridicoRepository) Update(ctx context.Context, documento *models.DocumentoJuridico) error {
	documento.AtualizadoEm = time.Now().UTC()
	const query = `UPDATE documentos_juridicos SET cliente_id = :cliente_id, titulo = :titulo, conteudo = :conteudo,
		atualizado_em = :atualizado_em WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, documento); err != nil {
		return fmt.Errorf("update documento juridico: %w", err)
	}
	return nil
}

// Delete removes an editor document.
func (r *DocumentoJuridicoRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM documentos_juridicos WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete documento juridico: %w", err)
	}
	return nil
}

// Count returns the total number of editor documents.
func (r *DocumentoJuridicoRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM documentos_juridicos`); err != nil {
		return 0, fmt.Errorf("count documentos juridicos: %w", err)
	}
	return total, nil
}
