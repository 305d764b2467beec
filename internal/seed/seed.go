// Package seed provisions the records the application cannot run without:
// the initial administrator account and the default document status catalog.
package seed

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmachado/escritorio-api/internal/models"
	"github.com/vmachado/escritorio-api/internal/repository"
)

// Default administrator credentials. The account is created with the
// first-access flag set, so the provisional password must be rotated on the
// first login.
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

var defaultStatus = []models.StatusDocumento{
	{Nome: models.StatusEmAnalise, Cor: "#fbbf24", Ordem: 1, Ativo: true},
	{Nome: models.StatusEmUso, Cor: "#3b82f6", Ordem: 2, Ativo: true},
	{Nome: models.StatusDevolvido, Cor: "#10b981", Ordem: 3, Ativo: true},
	{Nome: models.StatusArquivado, Cor: "#6b7280", Ordem: 4, Ativo: true},
}

// Run is idempotent: records that already exist are left untouched.
func Run(ctx context.Context, users *repository.UserRepository, status *repository.StatusDocumentoRepository, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := seedAdmin(ctx, users, logger); err != nil {
		return err
	}
	return seedStatusCatalog(ctx, status, logger)
}

func seedAdmin(ctx context.Context, users *repository.UserRepository, logger *zap.Logger) error {
	_, err := users.FindByUsername(ctx, AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), 12)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:       AdminUsername,
		Nome:           "Administrador",
		Email:          "admin@escritorio.local",
		PasswordHash:   string(hash),
		Role:           models.RoleAdmin,
		Ativo:          true,
		PrimeiroAcesso: true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("seeded default admin account", zap.String("username", AdminUsername))
	return nil
}

func seedStatusCatalog(ctx context.Context, status *repository.StatusDocumentoRepository, logger *zap.Logger) error {
	for _, entry := range defaultStatus {
		_, err := status.FindByNome(ctx, entry.Nome)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		create := entry
		if err := status.Create(ctx, &create); err != nil {
			return err
		}
		logger.Info("seeded document status", zap.String("nome", entry.Nome))
	}
	return nil
}
