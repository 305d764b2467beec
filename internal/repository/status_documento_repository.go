package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vmachado/escritorio-api/internal/models"
)

// StatusDocumentoRepository manages the configurable document status catalog.
type StatusDocumentoRepository struct {
	db *sqlx.DB
}

// NewStatusDocumentoRepository creates a new instance.
func NewStatusDocumentoRepository(db *sqlx.DB) *StatusDocumentoRepository {
	return &StatusDocumentoRepository{db: db}
}

// ListAtivos returns active catalog entries in display order.
func (r *StatusDocumentoRepository) ListAtivos(ctx context.Context) ([]models.StatusDocumento, error) {
	const query = `SELECT id, nome, cor, ordem, ativo FROM status_documentos WHERE ativo = TRUE ORDER BY ordem`
	var status []models.StatusDocumento
	if err := r.db.SelectContext(ctx, &status, query); err != nil {
		return nil, fmt.Errorf("list status documentos: %w", err)
	}
	return status, nil
}

// FindByID returns a catalog entry by identifier.
func (r *StatusDocumentoRepository) FindByID(ctx context.Context, id string) (*models.StatusDocumento, error) {
	const query = `SELECT id, nome, cor, ordem, ativo FROM status_documentos WHERE id = $1 LIMIT 1`
	var status models.StatusDocumento
	if err := r.db.GetContext(ctx, &status, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find status documento by id: %w", err)
	}
	return &status, nil
}

// FindByNome returns a catalog entry by its unique name.
func (r *StatusDocumentoRepository) FindByNome(ctx context.Context, nome string) (*models.StatusDocumento, error) {
	const query = `SELECT id, nome, cor, ordem, ativo FROM status_documentos WHERE nome = $1 LIMIT 1`
	var status models.StatusDocumento
	if err := r.db.GetContext(ctx, &status, query, nome); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find status documento by nome: %w", err)
	}
	return &status, nil
}

// Create inserts a new catalog entry.
func (r *StatusDocumentoRepository) Create(ctx context.Context, status *models.StatusDocumento) error {
	if status.ID == "" {
		status.ID = uuid.NewString()
	}
	const query = `INSERT INTO status_documentos (id, nome, cor, ordem, ativo) VALUES (:id, :nome, :cor, :ordem, :ativo)`
	if _, err := r.db.NamedExecContext(ctx, query, status); err != nil {
		return fmt.Errorf("create status documento: %w", err)
	}
	return nil
}

// Update persists a catalog entry.
func (r *StatusDocumentoRepository) Update(ctx context.Context, status *models.StatusDocumento) error {
	const query = `UPDATE status_documentos SET nome = :nome, cor = :cor, ordem = :ordem, ativo = :ativo WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, status); err != nil {
		return fmt.Errorf("update status documento: %w", err)
	}
	return nil
}

// Delete removes a catalog entry.
func (r *StatusDocumentoRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM status_documentos WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete status documento: %w", err)
	}
	return nil
}

// CountDocumentosWithStatus reports how many documents currently carry the
// given status name, used to block deleting an in-use catalog entry.
func (r *StatusDocumentoRepository) CountDocumentosWithStatus(ctx context.Context, nome string) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM documentos WHERE status = $1`, nome); err != nil {
		return 0, fmt.Errorf("count documentos with status: %w", err)
	}
	return total, nil
}
