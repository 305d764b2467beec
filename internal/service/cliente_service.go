package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
)

type clienteRepository interface {
	List(ctx context.Context) ([]models.Cliente, error)
	FindByID(ctx context.Context, id string) (*models.Cliente, error)
	FindByCpfCnpj(ctx context.Context, cpfCnpj string) (*models.Cliente, error)
	Create(ctx context.Context, cliente *models.Cliente) error
	Update(ctx context.Context, cliente *models.Cliente) error
	Delete(ctx context.Context, id string) error
}

// ClienteService implements the client registry use cases.
type ClienteService struct {
	repo      clienteRepository
	audit     auditRecorder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClienteService constructs a ClienteService instance.
func NewClienteService(repo clienteRepository, audit auditRecorder, validate *validator.Validate, logger *zap.Logger) *ClienteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ClienteService{repo: repo, audit: audit, validator: validate, logger: logger}
}

// List returns all clients, newest first.
func (s *ClienteService) List(ctx context.Context) ([]models.Cliente, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list clientes")
	}
	return clientes, nil
}

// Get returns one client by identifier.
func (s *ClienteService) Get(ctx context.Context, id string) (*models.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "cliente not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch cliente")
	}
	return cliente, nil
}

// Create registers a new client. The CPF/CNPJ must be globally unique.
func (s *ClienteService) Create(ctx context.Context, actor *models.User, req models.ClienteInput, ip string) (*models.Cliente, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid cliente payload")
	}

	if _, err := s.repo.FindByCpfCnpj(ctx, req.CpfCnpj); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "cpf/cnpj already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check cpf/cnpj")
	}

	cliente := &models.Cliente{CriadoPorID: actor.ID}
	applyClienteInput(cliente, req)

	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create cliente")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoCriarCliente, models.EntidadeCliente, cliente.ID, detailsJSON("nome", cliente.Nome), ip); err != nil {
		return nil, err
	}
	return cliente, nil
}

// Update edits a client record. Changing the CPF/CNPJ to one held by a
// different client is a conflict.
func (s *ClienteService) Update(ctx context.Context, actor *models.User, id string, req models.ClienteInput, ip string) (*models.Cliente, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid cliente payload")
	}

	cliente, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CpfCnpj != cliente.CpfCnpj {
		if existing, err := s.repo.FindByCpfCnpj(ctx, req.CpfCnpj); err == nil && existing.ID != cliente.ID {
			return nil, appErrors.Clone(appErrors.ErrConflict, "cpf/cnpj already registered")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check cpf/cnpj")
		}
	}

	applyClienteInput(cliente, req)

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update cliente")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoEditarCliente, models.EntidadeCliente, cliente.ID, detailsJSON("nome", cliente.Nome), ip); err != nil {
		return nil, err
	}
	return cliente, nil
}

// Delete removes a client and, through database cascades, its documents.
func (s *ClienteService) Delete(ctx context.Context, actor *models.User, id, ip string) error {
	cliente, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete cliente")
	}

	return s.audit.Record(ctx, actor, models.AcaoExcluirCliente, models.EntidadeCliente, cliente.ID, detailsJSON("nome", cliente.Nome), ip)
}

func applyClienteInput(cliente *models.Cliente, req models.ClienteInput) {
	cliente.Tipo = models.ClienteTipo(req.Tipo)
	cliente.Nome = req.Nome
	cliente.CpfCnpj = req.CpfCnpj
	cliente.RgInscricaoEstadual = req.RgInscricaoEstadual
	cliente.DataNascimento = req.DataNascimento
	cliente.LocalNascimento = req.LocalNascimento
	cliente.Cep = req.Cep
	cliente.Endereco = req.Endereco
	cliente.Numero = req.Numero
	cliente.Complemento = req.Complemento
	cliente.Bairro = req.Bairro
	cliente.Cidade = req.Cidade
	cliente.Estado = req.Estado
	cliente.Telefone = req.Telefone
	cliente.Celular = req.Celular
	cliente.Email = req.Email
	cliente.Ocupacao = req.Ocupacao
	cliente.Observacoes = req.Observacoes
}
