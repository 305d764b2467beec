package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
)

type mockStatusRepo struct {
	status map[string]*models.StatusDocumento
	inUse  map[string]int
}

func newMockStatusRepo(entries ...*models.StatusDocumento) *mockStatusRepo {
	repo := &mockStatusRepo{status: make(map[string]*models.StatusDocumento), inUse: make(map[string]int)}
	for _, s := range entries {
		repo.status[s.ID] = s
	}
	return repo
}

func (m *mockStatusRepo) ListAtivos(ctx context.Context) ([]models.StatusDocumento, error) {
	var out []models.StatusDocumento
	for _, s := range m.status {
		if s.Ativo {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockStatusRepo) FindByID(ctx context.Context, id string) (*models.StatusDocumento, error) {
	if s, ok := m.status[id]; ok {
		copy := *s
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockStatusRepo) FindByNome(ctx context.Context, nome string) (*models.StatusDocumento, error) {
	for _, s := range m.status {
		if s.Nome == nome {
			copy := *s
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockStatusRepo) Create(ctx context.Context, status *models.StatusDocumento) error {
	if status.ID == "" {
		status.ID = "generated"
	}
	copy := *status
	m.status[status.ID] = &copy
	return nil
}

func (m *mockStatusRepo) Update(ctx context.Context, status *models.StatusDocumento) error {
	copy := *status
	m.status[status.ID] = &copy
	return nil
}

func (m *mockStatusRepo) Delete(ctx context.Context, id string) error {
	delete(m.status, id)
	return nil
}

func (m *mockStatusRepo) CountDocumentosWithStatus(ctx context.Context, nome string) (int, error) {
	return m.inUse[nome], nil
}

func TestCreateStatusDuplicateName(t *testing.T) {
	repo := newMockStatusRepo(&models.StatusDocumento{ID: "s1", Nome: "em_analise", Ativo: true})
	svc := NewStatusDocumentoService(repo, &mockAudit{}, nil, nil)

	_, err := svc.Create(context.Background(), adminActor(), models.StatusDocumentoInput{Nome: "em_analise", Cor: "#fff"}, "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestCreateStatusDefaultsActive(t *testing.T) {
	repo := newMockStatusRepo()
	audit := &mockAudit{}
	svc := NewStatusDocumentoService(repo, audit, nil, nil)

	status, err := svc.Create(context.Background(), adminActor(), models.StatusDocumentoInput{Nome: "novo", Cor: "#00f", Ordem: 5}, "")
	require.NoError(t, err)
	assert.True(t, status.Ativo)
	assert.Equal(t, []string{models.AcaoCriarStatusDocumento}, audit.entries)
}

func TestDeleteStatusBlockedWhileInUse(t *testing.T) {
	repo := newMockStatusRepo(&models.StatusDocumento{ID: "s1", Nome: "em_uso", Ativo: true})
	repo.inUse["em_uso"] = 3
	svc := NewStatusDocumentoService(repo, &mockAudit{}, nil, nil)

	err := svc.Delete(context.Background(), adminActor(), "s1", "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Contains(t, repo.status, "s1")
}

func TestDeleteUnusedStatus(t *testing.T) {
	repo := newMockStatusRepo(&models.StatusDocumento{ID: "s1", Nome: "obsoleto", Ativo: true})
	audit := &mockAudit{}
	svc := NewStatusDocumentoService(repo, audit, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), adminActor(), "s1", ""))
	assert.NotContains(t, repo.status, "s1")
	assert.Equal(t, []string{models.AcaoExcluirStatusDocumento}, audit.entries)
}

func TestUpdateStatusRenameConflict(t *testing.T) {
	repo := newMockStatusRepo(
		&models.StatusDocumento{ID: "s1", Nome: "em_analise", Ativo: true},
		&models.StatusDocumento{ID: "s2", Nome: "arquivado", Ativo: true},
	)
	svc := NewStatusDocumentoService(repo, &mockAudit{}, nil, nil)

	_, err := svc.Update(context.Background(), adminActor(), "s2", models.StatusDocumentoInput{Nome: "em_analise", Cor: "#fff"}, "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}
