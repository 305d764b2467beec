package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
)

type counter interface {
	Count(ctx context.Context) (int, error)
}

type activityLister interface {
	List(ctx context.Context, limit int) ([]models.AuditLog, error)
}

const recentActivityLimit = 10

// DashboardService aggregates record counts and recent activity for the
// landing page.
type DashboardService struct {
	clientes            counter
	documentos          counter
	documentosJuridicos counter
	atividades          activityLister
	logger              *zap.Logger
}

// NewDashboardService constructs a DashboardService instance.
func NewDashboardService(clientes, documentos, documentosJuridicos counter, atividades activityLister, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		clientes:            clientes,
		documentos:          documentos,
		documentosJuridicos: documentosJuridicos,
		atividades:          atividades,
		logger:              logger,
	}
}

// Stats returns the current record counts.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	totalClientes, err := s.clientes.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count clientes")
	}
	totalDocumentos, err := s.documentos.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count documentos")
	}
	totalJuridicos, err := s.documentosJuridicos.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count documentos juridicos")
	}

	return &models.DashboardStats{
		TotalClientes:            totalClientes,
		TotalDocumentos:          totalDocumentos,
		TotalDocumentosJuridicos: totalJuridicos,
	}, nil
}

// AtividadesRecentes returns the latest audit entries, newest first.
func (s *DashboardService) AtividadesRecentes(ctx context.Context) ([]models.AuditLog, error) {
	return s.atividades.List(ctx, recentActivityLimit)
}
