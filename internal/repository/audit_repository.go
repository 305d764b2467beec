package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vmachado/escritorio-api/internal/models"
)

const auditColumns = `id, usuario_id, usuario_nome, acao, entidade, entidade_id, detalhes, ip_address, data_hora`

// AuditRepository appends and reads audit log entries. There is no update or
// delete path: entries are immutable once written.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new instance of AuditRepository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create appends an audit log entry.
func (r *AuditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.DataHora.IsZero() {
		entry.DataHora = time.Now().UTC()
	}

	const query = `INSERT INTO logs_auditoria (id, usuario_id, usuario_nome, acao, entidade, entidade_id, detalhes, ip_address, data_hora)
		VALUES (:id, :usuario_id, :usuario_nome, :acao, :entidade, :entidade_id, :detalhes, :ip_address, :data_hora)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (r *AuditRepository) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	query := fmt.Sprintf(`SELECT %s FROM logs_auditoria ORDER BY data_hora DESC LIMIT $1`, auditColumns)
	var entries []models.AuditLog
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return entries, nil
}
