package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
	"github.com/vmachado/escritorio-api/pkg/export"
)

type auditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, limit int) ([]models.AuditLog, error)
}

// AuditService owns the audit trail. Record is part of each mutation's
// request path: if the entry cannot be persisted the whole operation fails,
// so a successful response always implies a stored trail entry.
type AuditService struct {
	repo   auditRepository
	csv    *export.CSVExporter
	logger *zap.Logger
}

// NewAuditService constructs an AuditService instance.
func NewAuditService(repo auditRepository, csv *export.CSVExporter, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	return &AuditService{repo: repo, csv: csv, logger: logger}
}

// Record persists one audit entry attributed to actor. The actor's display
// name is denormalized into the entry so history survives later user edits.
func (s *AuditService) Record(ctx context.Context, actor *models.User, acao string, entidade, entidadeID, detalhes, ip string) error {
	entry := &models.AuditLog{
		Acao:     acao,
		DataHora: time.Now().UTC(),
	}
	if actor != nil {
		id := actor.ID
		entry.UsuarioID = &id
		entry.UsuarioNome = actor.Nome
	}
	if entidade != "" {
		entry.Entidade = &entidade
	}
	if entidadeID != "" {
		entry.EntidadeID = &entidadeID
	}
	if detalhes != "" {
		entry.Detalhes = &detalhes
	}
	if ip != "" {
		entry.IPAddress = &ip
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("audit write failed", zap.String("acao", acao), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record audit entry")
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *AuditService) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list audit entries")
	}
	return entries, nil
}

// ExportCSV renders the most recent entries as a CSV table.
func (s *AuditService) ExportCSV(ctx context.Context, limit int) ([]byte, error) {
	entries, err := s.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Headers: []string{"Data/Hora", "Usuário", "Ação", "Entidade", "Entidade ID", "Detalhes", "IP"},
	}
	for _, entry := range entries {
		table.Rows = append(table.Rows, []string{
			entry.DataHora.Format(time.RFC3339),
			entry.UsuarioNome,
			entry.Acao,
			deref(entry.Entidade),
			deref(entry.EntidadeID),
			deref(entry.Detalhes),
			deref(entry.IPAddress),
		})
	}

	data, err := s.csv.Render(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render audit export")
	}
	return data, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// detailsJSON is a small helper for building the detalhes payload without
// dragging encoding/json into every call site.
func detailsJSON(pairs ...string) string {
	if len(pairs)%2 != 0 {
		return ""
	}
	out := "{"
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q:%q", pairs[i], pairs[i+1])
	}
	return out + "}"
}
