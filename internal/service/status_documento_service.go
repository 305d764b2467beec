package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
)

type statusDocumentoRepository interface {
	ListAtivos(ctx context.Context) ([]models.StatusDocumento, error)
	FindByID(ctx context.Context, id string) (*models.StatusDocumento, error)
	FindByNome(ctx context.Context, nome string) (*models.StatusDocumento, error)
	Create(ctx context.Context, status *models.StatusDocumento) error
	Update(ctx context.Context, status *models.StatusDocumento) error
	Delete(ctx context.Context, id string) error
	CountDocumentosWithStatus(ctx context.Context, nome string) (int, error)
}

// StatusDocumentoService manages the configurable document status catalog.
type StatusDocumentoService struct {
	repo      statusDocumentoRepository
	audit     auditRecorder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStatusDocumentoService constructs a StatusDocumentoService instance.
func NewStatusDocumentoService(repo statusDocumentoRepository, audit auditRecorder, validate *validator.Validate, logger *zap.Logger) *StatusDocumentoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StatusDocumentoService{repo: repo, audit: audit, validator: validate, logger: logger}
}

// List returns active catalog entries in display order.
func (s *StatusDocumentoService) List(ctx context.Context) ([]models.StatusDocumento, error) {
	status, err := s.repo.ListAtivos(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list status")
	}
	return status, nil
}

// Create adds a catalog entry. Names are unique within the catalog.
func (s *StatusDocumentoService) Create(ctx context.Context, actor *models.User, req models.StatusDocumentoInput, ip string) (*models.StatusDocumento, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}

	if _, err := s.repo.FindByNome(ctx, req.Nome); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "status name already in use")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check status name")
	}

	status := &models.StatusDocumento{Nome: req.Nome, Cor: req.Cor, Ordem: req.Ordem, Ativo: true}
	if req.Ativo != nil {
		status.Ativo = *req.Ativo
	}
	if err := s.repo.Create(ctx, status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create status")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoCriarStatusDocumento, models.EntidadeStatusDocumento, status.ID, detailsJSON("nome", status.Nome), ip); err != nil {
		return nil, err
	}
	return status, nil
}

// Update edits a catalog entry. Renaming to a name held by another entry is
// a conflict.
func (s *StatusDocumentoService) Update(ctx context.Context, actor *models.User, id string, req models.StatusDocumentoInput, ip string) (*models.StatusDocumento, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}

	status, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "status not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch status")
	}

	if req.Nome != status.Nome {
		if existing, err := s.repo.FindByNome(ctx, req.Nome); err == nil && existing.ID != status.ID {
			return nil, appErrors.Clone(appErrors.ErrConflict, "status name already in use")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check status name")
		}
	}

	status.Nome = req.Nome
	status.Cor = req.Cor
	status.Ordem = req.Ordem
	if req.Ativo != nil {
		status.Ativo = *req.Ativo
	}

	if err := s.repo.Update(ctx, status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update status")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoEditarStatusDocumento, models.EntidadeStatusDocumento, status.ID, detailsJSON("nome", status.Nome), ip); err != nil {
		return nil, err
	}
	return status, nil
}

// Delete removes a catalog entry, refusing while any document still carries
// its name.
func (s *StatusDocumentoService) Delete(ctx context.Context, actor *models.User, id, ip string) error {
	status, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "status not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch status")
	}

	inUse, err := s.repo.CountDocumentosWithStatus(ctx, status.Nome)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check status usage")
	}
	if inUse > 0 {
		return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("status is used by %d documentos", inUse))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete status")
	}

	return s.audit.Record(ctx, actor, models.AcaoExcluirStatusDocumento, models.EntidadeStatusDocumento, status.ID, detailsJSON("nome", status.Nome), ip)
}
