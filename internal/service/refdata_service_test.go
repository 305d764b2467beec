package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmachado/escritorio-api/internal/models"
)

type mockCEPLookup struct {
	calls    int
	endereco *models.Endereco
	err      error
}

func (m *mockCEPLookup) Lookup(ctx context.Context, cep string) (*models.Endereco, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.endereco, nil
}

type mockIBGELookup struct {
	estadosCalls    int
	municipiosCalls int
}

func (m *mockIBGELookup) Estados(ctx context.Context) ([]models.Estado, error) {
	m.estadosCalls++
	return []models.Estado{{ID: 35, Sigla: "SP", Nome: "São Paulo"}}, nil
}

func (m *mockIBGELookup) Municipios(ctx context.Context, uf string) ([]models.Municipio, error) {
	m.municipiosCalls++
	return []models.Municipio{{ID: 3550308, Nome: "São Paulo"}}, nil
}

func TestLookupCEPWithoutCacheCallsUpstream(t *testing.T) {
	viacep := &mockCEPLookup{endereco: &models.Endereco{Cep: "01310-100", UF: "SP"}}
	svc := NewRefDataService(viacep, &mockIBGELookup{}, nil, 0, nil, nil)

	endereco, err := svc.LookupCEP(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, "SP", endereco.UF)
	assert.Equal(t, 1, viacep.calls)

	// No cache configured: each lookup goes upstream.
	_, err = svc.LookupCEP(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, 2, viacep.calls)
}

func TestEstadosPassThrough(t *testing.T) {
	ibge := &mockIBGELookup{}
	svc := NewRefDataService(&mockCEPLookup{}, ibge, nil, 0, nil, nil)

	estados, err := svc.Estados(context.Background())
	require.NoError(t, err)
	require.Len(t, estados, 1)
	assert.Equal(t, "SP", estados[0].Sigla)
	assert.Equal(t, 1, ibge.estadosCalls)
}

func TestMunicipiosPassThrough(t *testing.T) {
	ibge := &mockIBGELookup{}
	svc := NewRefDataService(&mockCEPLookup{}, ibge, nil, 0, nil, nil)

	municipios, err := svc.Municipios(context.Background(), "SP")
	require.NoError(t, err)
	require.Len(t, municipios, 1)
	assert.Equal(t, 1, ibge.municipiosCalls)
}

func TestLookupCEPPropagatesUpstreamError(t *testing.T) {
	viacep := &mockCEPLookup{err: assert.AnError}
	svc := NewRefDataService(viacep, &mockIBGELookup{}, nil, 0, nil, nil)

	_, err := svc.LookupCEP(context.Background(), "01310-100")
	assert.Error(t, err)
}
