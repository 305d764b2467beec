package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vmachado/escritorio-api/internal/models"
)

const clienteColumns = `id, tipo, nome, cpf_cnpj, rg_inscricao_estadual, data_nascimento, local_nascimento,
	cep, endereco, numero, complemento, bairro, cidade, estado,
	telefone, celular, email, ocupacao, observacoes,
	criado_por_id, criado_em, atualizado_em`

// ClienteRepository provides database access for the client registry.
type ClienteRepository struct {
	db *sqlx.DB
}

// NewClienteRepository creates a new instance of ClienteRepository.
func NewClienteRepository(db *sqlx.DB) *ClienteRepository {
	return &ClienteRepository{db: db}
}

// List returns all clients, newest first.
func (r *ClienteRepository) List(ctx context.Context) ([]models.Cliente, error) {
	query := fmt.Sprintf(`SELECT %s FROM clientes ORDER BY criado_em DESC`, clienteColumns)
	var clientes []models.Cliente
	if err := r.db.SelectContext(ctx, &clientes, query); err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return clientes, nil
}

// FindByID returns a client by identifier.
func (r *ClienteRepository) FindByID(ctx context.Context, id string) (*models.Cliente, error) {
	query := fmt.Sprintf(`SELECT %s FROM clientes WHERE id = $1 LIMIT 1`, clienteColumns)
	var cliente models.Cliente
	if err := r.db.GetContext(ctx, &cliente, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find cliente by id: %w", err)
	}
	return &cliente, nil
}

// FindByCpfCnpj returns a client by its tax number.
func (r *ClienteRepository) FindByCpfCnpj(ctx context.Context, cpfCnpj string) (*models.Cliente, error) {
	query := fmt.Sprintf(`SELECT %s FROM clientes WHERE cpf_cnpj = $1 LIMIT 1`, clienteColumns)
	var cliente models.Cliente
	if err := r.db.GetContext(ctx, &cliente, query, cpfCnpj); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find cliente by cpf_cnpj: %w", err)
	}
	return &cliente, nil
}

// Create inserts a new client record.
func (r *ClienteRepository) Create(ctx context.Context, cliente *models.Cliente) error {
	if cliente.ID == "" {
		cliente.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if cliente.CriadoEm.IsZero() {
		cliente.CriadoEm = now
	}
	cliente.AtualizadoEm = now

	const query = `INSERT INTO clientes (id, tipo, nome, cpf_cnpj, rg_inscricao_estadual, data_nascimento, local_nascimento,
		cep, endereco, numero, complemento, bairro, cidade, estado,
		telefone, celular, email, ocupacao, observacoes,
		criado_por_id, criado_em, atualizado_em)
		VALUES (:id, :tipo, :nome, :cpf_cnpj, :rg_inscricao_estadual, :data_nascimento, :local_nascimento,
		:cep, :endereco, :numero, :complemento, :bairro, :cidade, :estado,
		:telefone, :celular, :email, :ocupacao, :observacoes,
		:criado_por_id, :criado_em, :atualizado_em)`
	if _, err := r.db.NamedExecContext(ctx, query, cliente); err != nil {
		return fmt.Errorf("create cliente: %w", err)
	}
	return nil
}

// Update persists the full mutable field set of a client.
func (r *ClienteRepository) Update(ctx context.Context, cliente *models.Cliente) error {
	cliente.AtualizadoEm = time.Now().UTC()
	const query = `UPDATE clientes SET tipo = :tipo, nome = :nome, cpf_cnpj = :cpf_cnpj,
		rg_inscricao_estadual = :rg_inscricao_estadual, data_nascimento = :data_nascimento, local_nascimento = :local_nascimento,
		cep = :cep, endereco = :endereco, numero = :numero, complemento = :complemento,
		bairro = :bairro, cidade = :cidade, estado = :estado,
		telefone = :telefone, celular = :celular, email = :email,
		ocupacao = :ocupacao, observacoes = :observacoes, atualizado_em = :atualizado_em
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, cliente); err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete removes a client. Document rows cascade at the database level.
func (r *ClienteRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM clientes WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// Count returns the total number of registered clients.
func (r *ClienteRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM clientes`); err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return total, nil
}
