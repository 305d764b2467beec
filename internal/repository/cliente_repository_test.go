package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmachado/escritorio-api/internal/models"
)

func clienteRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tipo", "nome", "cpf_cnpj", "rg_inscricao_estadual", "data_nascimento", "local_nascimento",
		"cep", "endereco", "numero", "complemento", "bairro", "cidade", "estado",
		"telefone", "celular", "email", "ocupacao", "observacoes",
		"criado_por_id", "criado_em", "atualizado_em",
	}).AddRow(
		"c1", string(models.ClientePessoaFisica), "João Silva", "123.456.789-00", nil, nil, nil,
		nil, nil, nil, nil, nil, nil, nil,
		nil, nil, nil, nil, nil,
		"u1", now, now,
	)
}

func TestFindClienteByCpfCnpj(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClienteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM clientes WHERE cpf_cnpj = $1 LIMIT 1")).
		WithArgs("123.456.789-00").
		WillReturnRows(clienteRows(time.Now()))

	cliente, err := repo.FindByCpfCnpj(context.Background(), "123.456.789-00")
	require.NoError(t, err)
	assert.Equal(t, "João Silva", cliente.Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClienteByIDNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClienteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM clientes WHERE id = $1 LIMIT 1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCreateClienteStampsTimestamps(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClienteRepository(db)

	mock.ExpectExec("INSERT INTO clientes").WillReturnResult(sqlmock.NewResult(1, 1))

	cliente := &models.Cliente{Tipo: models.ClientePessoaFisica, Nome: "João Silva", CpfCnpj: "123.456.789-00", CriadoPorID: "u1"}
	err := repo.Create(context.Background(), cliente)
	require.NoError(t, err)
	assert.NotEmpty(t, cliente.ID)
	assert.False(t, cliente.CriadoEm.IsZero())
	assert.False(t, cliente.AtualizadoEm.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCliente(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClienteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clientes WHERE id = $1")).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountClientes(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClienteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM clientes")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
