package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmachado/escritorio-api/internal/models"
	"github.com/vmachado/escritorio-api/internal/session"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
)

type mockAuthRepo struct {
	user              *models.User
	findErr           error
	updatePasswordErr error
	lastAccessUpdated bool
	passwordUpdates   int
}

func (m *mockAuthRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.user == nil || m.user.Username != username {
		return nil, sql.ErrNoRows
	}
	copy := *m.user
	return &copy, nil
}

func (m *mockAuthRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.user == nil || m.user.ID != id {
		return nil, sql.ErrNoRows
	}
	copy := *m.user
	return &copy, nil
}

func (m *mockAuthRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if m.updatePasswordErr != nil {
		return m.updatePasswordErr
	}
	m.passwordUpdates++
	if m.user != nil && m.user.ID == id {
		m.user.PasswordHash = passwordHash
		m.user.PrimeiroAcesso = false
	}
	return nil
}

func (m *mockAuthRepo) UpdateLastAccess(ctx context.Context, id string, ts time.Time) error {
	m.lastAccessUpdated = true
	return nil
}

type mockAudit struct {
	entries []string
	err     error
}

func (m *mockAudit) Record(ctx context.Context, actor *models.User, acao string, entidade, entidadeID, detalhes, ip string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, acao)
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthFixture(t *testing.T, user *models.User) (*AuthService, *mockAuthRepo, *mockAudit, session.Store) {
	t.Helper()
	repo := &mockAuthRepo{user: user}
	audit := &mockAudit{}
	store := session.NewMemoryStore(nil)
	codec := session.NewTokenCodec("test-secret")
	svc := NewAuthService(repo, audit, store, codec, time.Hour, nil, nil)
	return svc, repo, audit, store
}

func activeUser(t *testing.T) *models.User {
	return &models.User{
		ID:           "u1",
		Username:     "alice",
		Nome:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "secret123"),
		Role:         models.RoleUser,
		Ativo:        true,
	}
}

func TestLoginSuccessOpensSession(t *testing.T) {
	svc, repo, audit, store := newAuthFixture(t, activeUser(t))

	user, cookieValue, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, cookieValue)
	assert.True(t, repo.lastAccessUpdated)
	assert.Equal(t, []string{models.AcaoLogin}, audit.entries)

	codec := session.NewTokenCodec("test-secret")
	token, err := codec.Verify(cookieValue)
	require.NoError(t, err)
	data, err := store.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", data.UserID)
}

func TestLoginUnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t, activeUser(t))

	_, _, errUnknown := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "whatever1"})
	_, _, errWrong := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrongpass"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())

	var appErr *appErrors.Error
	require.True(t, errors.As(errUnknown, &appErr))
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestLoginInactiveAccountBlocked(t *testing.T) {
	user := activeUser(t)
	user.Ativo = false
	svc, _, audit, _ := newAuthFixture(t, user)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret123"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInactiveAccount.Code, appErr.Code)
	assert.Empty(t, audit.entries)
}

func TestLoginInactiveAccountBlockedRegardlessOfPassword(t *testing.T) {
	// A disabled account always fails with the inactive error, even when
	// the password is wrong. The account state wins over the credential
	// check.
	user := activeUser(t)
	user.Ativo = false
	svc, _, _, _ := newAuthFixture(t, user)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrongpass"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInactiveAccount.Code, appErr.Code)
}

type recordingStore struct {
	session.Store
	saved     []string
	destroyed []string
}

func (r *recordingStore) Save(ctx context.Context, token string, data session.Data, ttl time.Duration) error {
	r.saved = append(r.saved, token)
	return r.Store.Save(ctx, token, data, ttl)
}

func (r *recordingStore) Destroy(ctx context.Context, token string) error {
	r.destroyed = append(r.destroyed, token)
	return r.Store.Destroy(ctx, token)
}

func TestLoginFailsWhenAuditFails(t *testing.T) {
	repo := &mockAuthRepo{user: activeUser(t)}
	audit := &mockAudit{err: appErrors.ErrInternal}
	store := &recordingStore{Store: session.NewMemoryStore(nil)}
	codec := session.NewTokenCodec("test-secret")
	svc := NewAuthService(repo, audit, store, codec, time.Hour, nil, nil)

	_, cookieValue, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret123"})
	require.Error(t, err)
	assert.Empty(t, cookieValue)

	// The session opened during the attempt must not survive.
	require.Len(t, store.saved, 1)
	assert.Equal(t, store.saved, store.destroyed)
}

func TestLogoutDestroysSession(t *testing.T) {
	svc, _, audit, store := newAuthFixture(t, activeUser(t))

	user, cookieValue, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), user, cookieValue, "127.0.0.1"))
	assert.Contains(t, audit.entries, models.AcaoLogout)

	codec := session.NewTokenCodec("test-secret")
	token, err := codec.Verify(cookieValue)
	require.NoError(t, err)
	_, err = store.Get(context.Background(), token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestLogoutWithoutSessionIsNoop(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t, activeUser(t))
	assert.NoError(t, svc.Logout(context.Background(), nil, "", ""))
}

func TestChangePasswordClearsFirstAccess(t *testing.T) {
	user := activeUser(t)
	user.PrimeiroAcesso = true
	svc, repo, audit, _ := newAuthFixture(t, user)

	current := *user
	updated, err := svc.ChangePassword(context.Background(), &current, models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "brandnew456",
	}, "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.passwordUpdates)
	assert.False(t, repo.user.PrimeiroAcesso)
	assert.False(t, current.PrimeiroAcesso)
	require.NotNil(t, updated)
	assert.False(t, updated.PrimeiroAcesso)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.user.PasswordHash), []byte("brandnew456")))
	assert.Equal(t, []string{models.AcaoAlterarSenha}, audit.entries)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	user := activeUser(t)
	user.PrimeiroAcesso = true
	svc, repo, _, _ := newAuthFixture(t, user)

	current := *user
	_, err := svc.ChangePassword(context.Background(), &current, models.ChangePasswordRequest{
		CurrentPassword: "wrongpass",
		NewPassword:     "brandnew456",
	}, "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrCurrentPassword.Code, appErr.Code)
	assert.Equal(t, 0, repo.passwordUpdates)
	assert.True(t, repo.user.PrimeiroAcesso)
}

func TestChangePasswordRejectsShortPassword(t *testing.T) {
	user := activeUser(t)
	svc, repo, _, _ := newAuthFixture(t, user)

	_, err := svc.ChangePassword(context.Background(), user, models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "short",
	}, "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, 0, repo.passwordUpdates)
}

func TestChangePasswordKeepsSessionAlive(t *testing.T) {
	user := activeUser(t)
	user.PrimeiroAcesso = true
	svc, _, _, store := newAuthFixture(t, user)

	logged, cookieValue, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.ChangePassword(context.Background(), logged, models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "brandnew456",
	}, "")
	require.NoError(t, err)

	codec := session.NewTokenCodec("test-secret")
	token, err := codec.Verify(cookieValue)
	require.NoError(t, err)
	_, err = store.Get(context.Background(), token)
	assert.NoError(t, err)
}
