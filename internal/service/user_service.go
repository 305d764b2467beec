package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
)

type userRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SetAtivo(ctx context.Context, id string, ativo bool) error
}

// UserService implements the admin-only account management flows.
type UserService struct {
	repo      userRepository
	audit     auditRecorder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(repo userRepository, audit auditRecorder, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, audit: audit, validator: validate, logger: logger}
}

// List returns all accounts, newest first.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	return users, nil
}

// Create provisions a new account with a provisional password. The account
// starts active and flagged for a forced password change on first login.
func (s *UserService) Create(ctx context.Context, actor *models.User, req models.CreateUserRequest, ip string) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}

	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "username already in use")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
	}
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already in use")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		Username:       req.Username,
		Nome:           req.Nome,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Role:           models.UserRole(req.Role),
		Ativo:          true,
		PrimeiroAcesso: true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoCriarUsuario, models.EntidadeUsuario, user.ID, detailsJSON("username", user.Username), ip); err != nil {
		return nil, err
	}
	return user, nil
}

// Update edits an account's profile, role and optionally its password. A
// password set here is provisional again: the flag is NOT cleared, so the
// user must rotate it on next login. Username never changes.
func (s *UserService) Update(ctx context.Context, actor *models.User, id string, req models.UpdateUserRequest, ip string) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if req.Email != user.Email {
		if existing, err := s.repo.FindByEmail(ctx, req.Email); err == nil && existing.ID != user.ID {
			return nil, appErrors.Clone(appErrors.ErrConflict, "email already in use")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email")
		}
	}

	user.Nome = req.Nome
	user.Email = req.Email
	user.Role = models.UserRole(req.Role)
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoEditarUsuario, models.EntidadeUsuario, user.ID, detailsJSON("username", user.Username), ip); err != nil {
		return nil, err
	}
	return user, nil
}

// SetAtivo toggles the active flag. Deactivation blocks future logins only;
// live sessions keep working until they expire.
func (s *UserService) SetAtivo(ctx context.Context, actor *models.User, id string, ativo bool, ip string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if actor != nil && actor.ID == user.ID && !ativo {
		return nil, appErrors.Clone(appErrors.ErrValidation, "cannot deactivate your own account")
	}

	if err := s.repo.SetAtivo(ctx, id, ativo); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user status")
	}
	user.Ativo = ativo

	detalhes := detailsJSON("username", user.Username, "ativo", boolLabel(ativo))
	if err := s.audit.Record(ctx, actor, models.AcaoAlterarStatusUsuario, models.EntidadeUsuario, user.ID, detalhes, ip); err != nil {
		return nil, err
	}
	return user, nil
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
