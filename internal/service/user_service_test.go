package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
)

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = "generated-id"
	}
	copy := *user
	m.users[user.ID] = &copy
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	copy := *user
	m.users[user.ID] = &copy
	return nil
}

func (m *mockUserRepo) SetAtivo(ctx context.Context, id string, ativo bool) error {
	if u, ok := m.users[id]; ok {
		u.Ativo = ativo
	}
	return nil
}

func adminActor() *models.User {
	return &models.User{ID: "admin-1", Username: "admin", Nome: "Admin", Role: models.RoleAdmin, Ativo: true}
}

func TestCreateUserStartsProvisional(t *testing.T) {
	repo := newMockUserRepo()
	audit := &mockAudit{}
	svc := NewUserService(repo, audit, nil, nil)

	user, err := svc.Create(context.Background(), adminActor(), models.CreateUserRequest{
		Username: "maria",
		Nome:     "Maria Souza",
		Email:    "maria@example.com",
		Password: "inicial123",
		Role:     "user",
	}, "127.0.0.1")
	require.NoError(t, err)

	assert.True(t, user.Ativo)
	assert.True(t, user.PrimeiroAcesso)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("inicial123")))
	assert.Equal(t, []string{models.AcaoCriarUsuario}, audit.entries)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	existing := &models.User{ID: "u1", Username: "maria", Email: "old@example.com"}
	svc := NewUserService(newMockUserRepo(existing), &mockAudit{}, nil, nil)

	_, err := svc.Create(context.Background(), adminActor(), models.CreateUserRequest{
		Username: "maria",
		Nome:     "Maria Souza",
		Email:    "maria@example.com",
		Password: "inicial123",
		Role:     "user",
	}, "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestUpdateUserPasswordKeepsFirstAccessFlag(t *testing.T) {
	existing := &models.User{ID: "u1", Username: "maria", Nome: "Maria", Email: "maria@example.com", Role: models.RoleUser, PrimeiroAcesso: false}
	repo := newMockUserRepo(existing)
	svc := NewUserService(repo, &mockAudit{}, nil, nil)

	// An admin resetting the password hands out a provisional one again;
	// the user record must not be marked as past first access by the edit.
	updated, err := svc.Update(context.Background(), adminActor(), "u1", models.UpdateUserRequest{
		Nome:     "Maria Souza",
		Email:    "maria@example.com",
		Role:     "admin",
		Password: "resetpass1",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("resetpass1")))
	assert.False(t, updated.PrimeiroAcesso)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := NewUserService(newMockUserRepo(), &mockAudit{}, nil, nil)

	_, err := svc.Update(context.Background(), adminActor(), "missing", models.UpdateUserRequest{
		Nome: "X", Email: "x@example.com", Role: "user",
	}, "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestSetAtivoRecordsAudit(t *testing.T) {
	existing := &models.User{ID: "u1", Username: "maria", Ativo: true}
	repo := newMockUserRepo(existing)
	audit := &mockAudit{}
	svc := NewUserService(repo, audit, nil, nil)

	updated, err := svc.SetAtivo(context.Background(), adminActor(), "u1", false, "")
	require.NoError(t, err)
	assert.False(t, updated.Ativo)
	assert.False(t, repo.users["u1"].Ativo)
	assert.Equal(t, []string{models.AcaoAlterarStatusUsuario}, audit.entries)
}

func TestSetAtivoBlocksSelfDeactivation(t *testing.T) {
	actor := adminActor()
	repo := newMockUserRepo(actor)
	svc := NewUserService(repo, &mockAudit{}, nil, nil)

	_, err := svc.SetAtivo(context.Background(), actor, actor.ID, false, "")
	require.Error(t, err)
	assert.True(t, repo.users[actor.ID].Ativo)
}
