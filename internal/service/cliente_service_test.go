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

type mockClienteRepo struct {
	clientes map[string]*models.Cliente
}

func newMockClienteRepo(entries ...*models.Cliente) *mockClienteRepo {
	repo := &mockClienteRepo{clientes: make(map[string]*models.Cliente)}
	for _, c := range entries {
		repo.clientes[c.ID] = c
	}
	return repo
}

func (m *mockClienteRepo) List(ctx context.Context) ([]models.Cliente, error) {
	var out []models.Cliente
	for _, c := range m.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockClienteRepo) FindByID(ctx context.Context, id string) (*models.Cliente, error) {
	if c, ok := m.clientes[id]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockClienteRepo) FindByCpfCnpj(ctx context.Context, cpfCnpj string) (*models.Cliente, error) {
	for _, c := range m.clientes {
		if c.CpfCnpj == cpfCnpj {
			copy := *c
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockClienteRepo) Create(ctx context.Context, cliente *models.Cliente) error {
	if cliente.ID == "" {
		cliente.ID = "c-generated"
	}
	copy := *cliente
	m.clientes[cliente.ID] = &copy
	return nil
}

func (m *mockClienteRepo) Update(ctx context.Context, cliente *models.Cliente) error {
	copy := *cliente
	m.clientes[cliente.ID] = &copy
	return nil
}

func (m *mockClienteRepo) Delete(ctx context.Context, id string) error {
	delete(m.clientes, id)
	return nil
}

func pfInput(cpf string) models.ClienteInput {
	return models.ClienteInput{Tipo: "pf", Nome: "João Silva", CpfCnpj: cpf}
}

func TestCreateClienteRecordsCreator(t *testing.T) {
	repo := newMockClienteRepo()
	audit := &mockAudit{}
	svc := NewClienteService(repo, audit, nil, nil)
	actor := adminActor()

	cliente, err := svc.Create(context.Background(), actor, pfInput("123.456.789-00"), "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, actor.ID, cliente.CriadoPorID)
	assert.Equal(t, []string{models.AcaoCriarCliente}, audit.entries)
}

func TestCreateClienteDuplicateCpfCnpj(t *testing.T) {
	repo := newMockClienteRepo(&models.Cliente{ID: "c1", CpfCnpj: "123.456.789-00"})
	svc := NewClienteService(repo, &mockAudit{}, nil, nil)

	_, err := svc.Create(context.Background(), adminActor(), pfInput("123.456.789-00"), "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestCreateClienteRejectsBadTipo(t *testing.T) {
	svc := NewClienteService(newMockClienteRepo(), &mockAudit{}, nil, nil)

	input := pfInput("123.456.789-00")
	input.Tipo = "xx"
	_, err := svc.Create(context.Background(), adminActor(), input, "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestUpdateClienteCpfCnpjConflict(t *testing.T) {
	repo := newMockClienteRepo(
		&models.Cliente{ID: "c1", Tipo: models.ClientePessoaFisica, Nome: "João", CpfCnpj: "111.111.111-11"},
		&models.Cliente{ID: "c2", Tipo: models.ClientePessoaFisica, Nome: "Maria", CpfCnpj: "222.222.222-22"},
	)
	svc := NewClienteService(repo, &mockAudit{}, nil, nil)

	_, err := svc.Update(context.Background(), adminActor(), "c2", pfInput("111.111.111-11"), "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestUpdateClienteKeepingOwnCpfCnpj(t *testing.T) {
	repo := newMockClienteRepo(&models.Cliente{ID: "c1", Tipo: models.ClientePessoaFisica, Nome: "João", CpfCnpj: "111.111.111-11"})
	svc := NewClienteService(repo, &mockAudit{}, nil, nil)

	updated, err := svc.Update(context.Background(), adminActor(), "c1", pfInput("111.111.111-11"), "")
	require.NoError(t, err)
	assert.Equal(t, "João Silva", updated.Nome)
}

func TestDeleteClienteNotFound(t *testing.T) {
	svc := NewClienteService(newMockClienteRepo(), &mockAudit{}, nil, nil)

	err := svc.Delete(context.Background(), adminActor(), "missing", "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestDeleteClienteAudits(t *testing.T) {
	repo := newMockClienteRepo(&models.Cliente{ID: "c1", Nome: "João", CpfCnpj: "111.111.111-11"})
	audit := &mockAudit{}
	svc := NewClienteService(repo, audit, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), adminActor(), "c1", ""))
	assert.NotContains(t, repo.clientes, "c1")
	assert.Equal(t, []string{models.AcaoExcluirCliente}, audit.entries)
}
