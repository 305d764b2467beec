package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
)

type mockJuridicoRepo struct {
	documentos map[string]*models.DocumentoJuridico
}

func newMockJuridicoRepo(entries ...*models.DocumentoJuridico) *mockJuridicoRepo {
	repo := &mockJuridicoRepo{documentos: make(map[string]*models.DocumentoJuridico)}
	for _, d := range entries {
		repo.documentos[d.ID] = d
	}
	return repo
}

func (m *mockJuridicoRepo) List(ctx context.Context) ([]models.DocumentoJuridico, error) {
	var out []models.DocumentoJuridico
	for _, d := range m.documentos {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockJuridicoRepo) FindByID(ctx context.Context, id string) (*models.DocumentoJuridico, error) {
	if d, ok := m.documentos[id]; ok {
		copy := *d
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockJuridicoRepo) Create(ctx context.Context, documento *models.DocumentoJuridico) error {
	if documento.ID == "" {
		documento.ID = "dj1"
	}
	copy := *documento
	m.documentos[documento.ID] = &copy
	return nil
}

func (m *mockJuridicoRepo) Update(ctx context.Context, documento *models.DocumentoJuridico) error {
	copy := *documento
	m.documentos[documento.ID] = &copy
	return nil
}

func (m *mockJuridicoRepo) Delete(ctx context.Context, id string) error {
	delete(m.documentos, id)
	return nil
}

func juridicoFixture(entries ...*models.DocumentoJuridico) (*DocumentoJuridicoService, *mockJuridicoRepo, *mockAudit) {
	repo := newMockJuridicoRepo(entries...)
	audit := &mockAudit{}
	endereco := "Avenida Paulista, 1000"
	cidade := "São Paulo"
	clientes := &mockClienteFinder{clientes: map[string]*models.Cliente{
		"c1": {ID: "c1", Nome: "João Silva", CpfCnpj: "123.456.789-00", Endereco: &endereco, Cidade: &cidade},
	}}
	svc := NewDocumentoJuridicoService(repo, clientes, nil, audit, nil, nil)
	return svc, repo, audit
}

func TestCreateDocumentoJuridico(t *testing.T) {
	svc, repo, audit := juridicoFixture()
	clienteID := "c1"

	documento, err := svc.Create(context.Background(), adminActor(), models.DocumentoJuridicoInput{
		ClienteID: &clienteID,
		Titulo:    "Procuração",
		Conteudo:  "<p>Texto</p>",
	}, "")
	require.NoError(t, err)
	assert.Contains(t, repo.documentos, documento.ID)
	assert.Equal(t, []string{models.AcaoCriarDocumentoJuridico}, audit.entries)
}

func TestCreateDocumentoJuridicoUnknownCliente(t *testing.T) {
	svc, _, _ := juridicoFixture()
	clienteID := "missing"

	_, err := svc.Create(context.Background(), adminActor(), models.DocumentoJuridicoInput{
		ClienteID: &clienteID,
		Titulo:    "Procuração",
		Conteudo:  "x",
	}, "")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestRenderPDFInterpolatesClienteFields(t *testing.T) {
	clienteID := "c1"
	svc, _, _ := juridicoFixture(&models.DocumentoJuridico{
		ID:        "dj1",
		ClienteID: &clienteID,
		Titulo:    "Procuração",
		Conteudo:  "<p>Outorgante: {{nome}}, CPF {{cpf_cnpj}}, residente em {{endereco}}, {{cidade}}.</p><p>Prazo: {{prazo}}</p>",
	})

	_, pdf, err := svc.RenderPDF(context.Background(), "dj1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestInterpolateClienteLeavesUnknownPlaceholders(t *testing.T) {
	endereco := "Rua A, 1"
	cliente := &models.Cliente{Nome: "João Silva", CpfCnpj: "123.456.789-00", Endereco: &endereco}

	out := interpolateCliente("{{nome}} | {{cpf_cnpj}} | {{endereco}} | {{cep}} | {{prazo}}", cliente)
	assert.Equal(t, "João Silva | 123.456.789-00 | Rua A, 1 |  | {{prazo}}", out)
}

func TestRenderPDFWithoutCliente(t *testing.T) {
	svc, _, _ := juridicoFixture(&models.DocumentoJuridico{
		ID:       "dj1",
		Titulo:   "Modelo",
		Conteudo: "<p>Texto com {{nome}} não interpolado.</p>",
	})

	_, pdf, err := svc.RenderPDF(context.Background(), "dj1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestDeleteDocumentoJuridico(t *testing.T) {
	svc, repo, audit := juridicoFixture(&models.DocumentoJuridico{ID: "dj1", Titulo: "Procuração", Conteudo: "x"})

	require.NoError(t, svc.Delete(context.Background(), adminActor(), "dj1", ""))
	assert.NotContains(t, repo.documentos, "dj1")
	assert.Equal(t, []string{models.AcaoExcluirDocumentoJuridico}, audit.entries)
}
