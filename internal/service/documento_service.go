package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vmachado/escritorio-api/internal/models"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
	"github.com/vmachado/escritorio-api/pkg/storage"
)

type documentoRepository interface {
	List(ctx context.Context, clienteID string) ([]models.Documento, error)
	FindByID(ctx context.Context, id string) (*models.Documento, error)
	Create(ctx context.Context, documento *models.Documento) error
	Update(ctx context.Context, documento *models.Documento) error
	Delete(ctx context.Context, id string) error
}

type statusCatalog interface {
	FindByNome(ctx context.Context, nome string) (*models.StatusDocumento, error)
}

type clienteFinder interface {
	FindByID(ctx context.Context, id string) (*models.Cliente, error)
}

// UploadInput carries an incoming file and its metadata.
type UploadInput struct {
	ClienteID   string
	Nome        string
	Descricao   *string
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// DownloadURL is a short-lived signed link for fetching a stored file
// without a session cookie.
type DownloadURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DocumentoService manages uploaded documents: the metadata row and the
// physical file move together on every path.
type DocumentoService struct {
	repo      documentoRepository
	clientes  clienteFinder
	catalog   statusCatalog
	files     *storage.LocalStorage
	signer    *storage.DownloadTokenSigner
	audit     auditRecorder
	maxSize   int64
	allowed   map[string]struct{}
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDocumentoService constructs a DocumentoService instance.
func NewDocumentoService(repo documentoRepository, clientes clienteFinder, catalog statusCatalog, files *storage.LocalStorage, signer *storage.DownloadTokenSigner, audit auditRecorder, maxSize int64, allowedTypes []string, validate *validator.Validate, logger *zap.Logger) *DocumentoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}
	return &DocumentoService{
		repo:      repo,
		clientes:  clientes,
		catalog:   catalog,
		files:     files,
		signer:    signer,
		audit:     audit,
		maxSize:   maxSize,
		allowed:   allowed,
		validator: validate,
		logger:    logger,
	}
}

// List returns documents, optionally filtered by client.
func (s *DocumentoService) List(ctx context.Context, clienteID string) ([]models.Documento, error) {
	documentos, err := s.repo.List(ctx, clienteID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list documentos")
	}
	return documentos, nil
}

// Get returns one document by identifier.
func (s *DocumentoService) Get(ctx context.Context, id string) (*models.Documento, error) {
	documento, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "documento not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch documento")
	}
	return documento, nil
}

// Upload stores the file and its metadata row. If the row insert fails the
// stored file is removed again so no orphan remains on disk.
func (s *DocumentoService) Upload(ctx context.Context, actor *models.User, input UploadInput, ip string) (*models.Documento, error) {
	if input.ClienteID == "" || input.Nome == "" || input.Filename == "" || input.Reader == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "clienteId, nome and file are required")
	}
	if _, ok := s.allowed[input.ContentType]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("file type %s is not allowed", input.ContentType))
	}
	if s.maxSize > 0 && input.Size > s.maxSize {
		return nil, appErrors.Clone(appErrors.ErrValidation, "file exceeds the maximum allowed size")
	}

	if _, err := s.clientes.FindByID(ctx, input.ClienteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "cliente not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch cliente")
	}

	storedName := filepath.Join(input.ClienteID, uuid.NewString()+filepath.Ext(input.Filename))
	written, err := s.files.SaveStream(storedName, io.LimitReader(input.Reader, s.maxSize+1))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store file")
	}
	if s.maxSize > 0 && written > s.maxSize {
		s.removeFile(storedName)
		return nil, appErrors.Clone(appErrors.ErrValidation, "file exceeds the maximum allowed size")
	}

	documento := &models.Documento{
		ClienteID:      input.ClienteID,
		Nome:           input.Nome,
		Descricao:      input.Descricao,
		NomeArquivo:    input.Filename,
		TipoArquivo:    input.ContentType,
		TamanhoBytes:   written,
		CaminhoArquivo: storedName,
		Status:         models.StatusEmAnalise,
		UploadPorID:    actor.ID,
	}
	if err := s.repo.Create(ctx, documento); err != nil {
		s.removeFile(storedName)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create documento")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoUploadDocumento, models.EntidadeDocumento, documento.ID, detailsJSON("nome", documento.Nome), ip); err != nil {
		return nil, err
	}
	return documento, nil
}

// Update edits metadata and status. The status must name an active catalog
// entry; a status change restamps status_atualizado_em.
func (s *DocumentoService) Update(ctx context.Context, actor *models.User, id string, req models.DocumentoUpdateRequest, ip string) (*models.Documento, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid documento payload")
	}

	documento, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != documento.Status {
		status, err := s.catalog.FindByNome(ctx, req.Status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrValidation, "unknown document status")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check status")
		}
		if !status.Ativo {
			return nil, appErrors.Clone(appErrors.ErrValidation, "document status is inactive")
		}
		documento.Status = status.Nome
		documento.StatusAtualizadoEm = time.Now().UTC()
	}

	documento.Nome = req.Nome
	documento.Descricao = req.Descricao

	if err := s.repo.Update(ctx, documento); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update documento")
	}

	if err := s.audit.Record(ctx, actor, models.AcaoEditarDocumento, models.EntidadeDocumento, documento.ID, detailsJSON("nome", documento.Nome), ip); err != nil {
		return nil, err
	}
	return documento, nil
}

// Delete removes the metadata row first and then the file. A failed file
// removal is logged but does not fail the request: the row is gone, so the
// document no longer exists as far as the API is concerned.
func (s *DocumentoService) Delete(ctx context.Context, actor *models.User, id, ip string) error {
	documento, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete documento")
	}
	s.removeFile(documento.CaminhoArquivo)

	return s.audit.Record(ctx, actor, models.AcaoExcluirDocumento, models.EntidadeDocumento, documento.ID, detailsJSON("nome", documento.Nome), ip)
}

// Open returns the stored file for streaming along with its metadata.
func (s *DocumentoService) Open(ctx context.Context, id string) (*models.Documento, *os.File, error) {
	documento, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	file, err := s.files.Open(documento.CaminhoArquivo)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open stored file")
	}
	return documento, file, nil
}

// GenerateDownloadURL issues a short-lived signed link for the document.
func (s *DocumentoService) GenerateDownloadURL(ctx context.Context, id, basePath string) (*DownloadURL, error) {
	documento, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	token, expiresAt, err := s.signer.Generate(documento.ID, documento.CaminhoArquivo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download url")
	}
	return &DownloadURL{
		URL:       fmt.Sprintf("%s/documentos/%s/download?token=%s", basePath, documento.ID, token),
		ExpiresAt: expiresAt,
	}, nil
}

// OpenSigned resolves a signed download token and opens the referenced file.
func (s *DocumentoService) OpenSigned(ctx context.Context, id, token string) (*models.Documento, *os.File, error) {
	documentID, filePath, err := s.signer.Parse(token)
	if err != nil || documentID != id {
		return nil, nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid download token")
	}
	documento, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if documento.CaminhoArquivo != filePath {
		return nil, nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid download token")
	}
	file, err := s.files.Open(filePath)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open stored file")
	}
	return documento, file, nil
}

func (s *DocumentoService) removeFile(storedName string) {
	if err := s.files.Delete(storedName); err != nil {
		s.logger.Warn("failed to remove stored file", zap.String("file", storedName), zap.Error(err))
	}
}
