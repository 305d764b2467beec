package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
	"github.com/vmachado/escritorio-api/pkg/export"
)

type documentoJuridicoRepository interface {
	List(ctx context.Context) ([]models.DocumentoJuridico, error)
	FindByID(ctx context.Context, id string) (*models.DocumentoJuridico, error)
	Create(ctx context.Context, documento *models.DocumentoJuridico) error
	Update(ctx context.Context, documento *models.DocumentoJuridico) error
	Delete(ctx context.Context, id string) error
}

// DocumentoJuridicoService manages legal documents written in the rich-text
// editor and renders them to PDF.
type DocumentoJuridicoService struct {
	repo      documentoJuridicoRepository
	clientes  clienteFinder
	pdf       *export.PDFExporter
	audit     auditRecorder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDocumentoJuridicoService constructs a DocumentoJuridicoService instance.
func NewDocumentoJuridicoService(repo documentoJuridicoRepository, clientes clienteFinder, pdf *export.PDFExporter, audit auditRecorder, validate *validator.Validate, logger *zap.Logger) *DocumentoJuridicoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &DocumentoJuridicoService{repo: repo, clientes: clientes, pdf: pdf, audit: audit, validator: validate, logger: logger}
}

// List returns all editor documents, newest first.
func (s *DocumentoJuridicoService) List(ctx context.Context) ([]models.DocumentoJuridico, error) {
	documentos, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list documentos juridicos")
	}
	return documentos, nil
}

// Get returns one editor document by identifier.
func (s *DocumentoJuridicoService) Get(ctx context.Context, id string) (*models.DocumentoJuridico, error) {
	documento, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "documento juridico not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch documento juridico")
	}
	return documento, nil
}

// Create stores a new editor document, optionally linked to a client.
func (s *DocumentoJuridicoService) Create(ctx context.Context, actor *models.User, req models.DocumentoJuridicoInput, ip string) (*models.DocumentoJuridico, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid documento juridico payload")
	}
	if err := s.checkCliente(ctx, req.ClienteID); err != nil {
		return nil, err
	}

	documento := &models.DocumentoJuridico{
		ClienteID:   req.ClienteID,
		Titulo:      req.Titulo,
		Conteudo:    req.Conteudo,
		CriadoPorID: actor.ID,
	}
	if err := s.repo.Create(ctx, documento); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create documento juridico")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoCriarDocumentoJuridico, models.EntidadeDocumentoJuridico, documento.ID, detailsJSON("titulo", documento.Titulo), ip); err != nil {
		return nil, err
	}
	return documento, nil
}

// Update edits title, content and client link.
func (s *DocumentoJuridicoService) Update(ctx context.Context, actor *models.User, id string, req models.DocumentoJuridicoInput, ip string) (*models.DocumentoJuridico, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid documento juridico payload")
	}

	documento, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCliente(ctx, req.ClienteID); err != nil {
		return nil, err
	}

	documento.ClienteID = req.ClienteID
	documento.Titulo = req.Titulo
	documento.Conteudo = req.Conteudo

	if err := s.repo.Update(ctx, documento); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update documento juridico")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoEditarDocumentoJuridico, models.EntidadeDocumentoJuridico, documento.ID, detailsJSON("titulo", documento.Titulo), ip); err != nil {
		return nil, err
	}
	return documento, nil
}

// Delete removes an editor document.
func (s *DocumentoJuridicoService) Delete(ctx context.Context, actor *models.User, id, ip string) error {
	documento, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete documento juridico")
	}

	return s.audit.Record(ctx, actor, models.AcaoExcluirDocumentoJuridico, models.EntidadeDocumentoJuridico, documento.ID, detailsJSON("titulo", documento.Titulo), ip)
}

// RenderPDF renders the document to PDF. When a client is linked, {{campo}}
// placeholders in the content are replaced with the client's data first.
func (s *DocumentoJuridicoService) RenderPDF(ctx context.Context, id string) (*models.DocumentoJuridico, []byte, error) {
	documento, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	conteudo := documento.Conteudo
	if documento.ClienteID != nil {
		cliente, err := s.clientes.FindByID(ctx, *documento.ClienteID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch cliente")
		}
		if cliente != nil {
			conteudo = interpolateCliente(conteudo, cliente)
		}
	}

	pdf, err := s.pdf.RenderDocument(documento.Titulo, conteudo)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
	}
	return documento, pdf, nil
}

// interpolateCliente substitutes the supported {{campo}} placeholders.
// Unknown placeholders are left untouched so typos stay visible in the
// rendered output.
func interpolateCliente(conteudo string, cliente *models.Cliente) string {
	replacer := strings.NewReplacer(
		"{{nome}}", cliente.Nome,
		"{{cpf_cnpj}}", cliente.CpfCnpj,
		"{{endereco}}", deref(cliente.Endereco),
		"{{cidade}}", deref(cliente.Cidade),
		"{{estado}}", deref(cliente.Estado),
		"{{cep}}", deref(cliente.Cep),
	)
	return replacer.Replace(conteudo)
}

func (s *DocumentoJuridicoService) checkCliente(ctx context.Context, clienteID *string) error {
	if clienteID == nil || *clienteID == "" {
		return nil
	}
	if _, err := s.clientes.FindByID(ctx, *clienteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "cliente not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch cliente")
	}
	return nil
}
