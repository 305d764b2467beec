package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmachado/escritorio-api/internal/models"
	"github.com/vmachado/escritorio-api/internal/session"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
)

// bcryptCost is deliberately above the library default; hashes created at
// the default cost still verify.
const bcryptCost = 12

type authUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLastAccess(ctx context.Context, id string, ts time.Time) error
}

type auditRecorder interface {
	Record(ctx context.Context, actor *models.User, acao string, entidade, entidadeID, detalhes, ip string) error
}

// AuthService implements the login, logout and password-rotation flows on
// top of server-side sessions.
type AuthService struct {
	repo       authUserRepository
	audit      auditRecorder
	store      session.Store
	codec      *session.TokenCodec
	sessionTTL time.Duration
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, audit auditRecorder, store session.Store, codec *session.TokenCodec, sessionTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{
		repo:       repo,
		audit:      audit,
		store:      store,
		codec:      codec,
		sessionTTL: sessionTTL,
		validator:  validate,
		logger:     logger,
	}
}

// Login authenticates a user and opens a session. It returns the user and
// the signed cookie value for the session cookie. Unknown usernames and
// wrong passwords produce the same error so the response never reveals
// whether the account exists.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", appErrors.ErrInvalidCredentials
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	// The ativo flag gates new logins only. Sessions opened before a
	// deactivation remain valid until they expire or log out. A disabled
	// account always fails with ACCOUNT_INACTIVE, wrong password or not.
	if !user.Ativo {
		return nil, "", appErrors.ErrInactiveAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", appErrors.ErrInvalidCredentials
	}

	token, cookieValue, err := s.codec.Issue()
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session token")
	}
	data := session.Data{UserID: user.ID, CreatedAt: time.Now().UTC()}
	if err := s.store.Save(ctx, token, data, s.sessionTTL); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastAccess(ctx, user.ID, now); err != nil {
		s.logger.Warn("failed to update last access", zap.Error(err))
	} else {
		user.UltimoAcesso = &now
	}

	if err := s.audit.Record(ctx, user, models.AcaoLogin, "", "", "", req.IP); err != nil {
		if destroyErr := s.store.Destroy(ctx, token); destroyErr != nil {
			s.logger.Error("failed to roll back session after audit failure", zap.Error(destroyErr))
		}
		return nil, "", err
	}

	return user, cookieValue, nil
}

// Logout destroys the session behind the given cookie value. Destroying an
// already-dead session is not an error; the audit entry is written either
// way when a user is known.
func (s *AuthService) Logout(ctx context.Context, user *models.User, cookieValue, ip string) error {
	if cookieValue != "" {
		if token, err := s.codec.Verify(cookieValue); err == nil {
			if err := s.store.Destroy(ctx, token); err != nil {
				return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to destroy session")
			}
		}
	}

	if user != nil {
		if err := s.audit.Record(ctx, user, models.AcaoLogout, "", "", "", ip); err != nil {
			return err
		}
	}
	return nil
}

// ChangePassword rotates the current user's password and returns the
// updated user. It is the only path that clears the first-access flag;
// existing sessions, including the one making this call, stay valid.
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, req models.ChangePasswordRequest, ip string) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid change password payload")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return nil, appErrors.ErrCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update password")
	}
	user.PasswordHash = string(hash)
	user.PrimeiroAcesso = false

	if err := s.audit.Record(ctx, user, models.AcaoAlterarSenha, "", "", "", ip); err != nil {
		return nil, err
	}
	return user, nil
}
