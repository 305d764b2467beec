package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/models"
	"github.com/vmachado/escritorio-api/internal/service"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
	"github.com/vmachado/escritorio-api/pkg/response"
)

// DocumentoHandler wires HTTP endpoints to the document service.
type DocumentoHandler struct {
	service   *service.DocumentoService
	apiPrefix string
}

// NewDocumentoHandler creates a new handler. apiPrefix is used when building
// signed download links.
func NewDocumentoHandler(svc *service.DocumentoService, apiPrefix string) *DocumentoHandler {
	return &DocumentoHandler{service: svc, apiPrefix: apiPrefix}
}

// List godoc
// @Summary List documents
// @Tags Documentos
// @Produce json
// @Param clienteId query string false "Filter by client"
// @Success 200 {object} response.Envelope
// @Router /documentos [get]
func (h *DocumentoHandler) List(c *gin.Context) {
	documentos, err := h.service.List(c.Request.Context(), c.Query("clienteId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, documentos)
}

// Get godoc
// @Summary Get one document
// @Tags Documentos
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /documentos/{id} [get]
func (h *DocumentoHandler) Get(c *gin.Context) {
	documento, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, documento)
}

// Upload godoc
// @Summary Upload a document
// @Description Multipart upload: file plus clienteId, nome and optional descricao fields
// @Tags Documentos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param clienteId formData string true "Client id"
// @Param nome formData string true "Display name"
// @Param descricao formData string false "Description"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /documentos/upload [post]
func (h *DocumentoHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file field is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
		return
	}
	defer file.Close() //nolint:errcheck

	var descricao *string
	if v := c.PostForm("descricao"); v != "" {
		descricao = &v
	}

	input := service.UploadInput{
		ClienteID:   c.PostForm("clienteId"),
		Nome:        c.PostForm("nome"),
		Descricao:   descricao,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}

	documento, err := h.service.Upload(c.Request.Context(), userFromContext(c), input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, documento)
}

// Update godoc
// @Summary Update document metadata and status
// @Tags Documentos
// @Accept json
// @Produce json
// @Param id path string true "Document id"
// @Param payload body models.DocumentoUpdateRequest true "Document payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /documentos/{id} [patch]
func (h *DocumentoHandler) Update(c *gin.Context) {
	var req models.DocumentoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid documento payload"))
		return
	}

	documento, err := h.service.Update(c.Request.Context(), userFromContext(c), c.Param("id"), req, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, documento)
}

// Delete godoc
// @Summary Delete a document
// @Tags Documentos
// @Produce json
// @Param id path string true "Document id"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /documentos/{id} [delete]
func (h *DocumentoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), userFromContext(c), c.Param("id"), c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Download godoc
// @Summary Download the stored file
// @Description Streams the file. Accepts either a session or a signed token query parameter.
// @Tags Documentos
// @Produce octet-stream
// @Param id path string true "Document id"
// @Param token query string false "Signed download token"
// @Success 200 {file} binary
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /documentos/{id}/download [get]
func (h *DocumentoHandler) Download(c *gin.Context) {
	id := c.Param("id")

	var (
		documento *models.Documento
		file      io.ReadSeekCloser
		err       error
	)
	if token := c.Query("token"); token != "" {
		documento, file, err = h.service.OpenSigned(c.Request.Context(), id, token)
	} else if userFromContext(c) != nil {
		documento, file, err = h.service.Open(c.Request.Context(), id)
	} else {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", documento.NomeArquivo))
	c.Header("Content-Type", documento.TipoArquivo)
	c.Header("Content-Length", fmt.Sprintf("%d", documento.TamanhoBytes))
	_, _ = io.Copy(c.Writer, file)
}

// DownloadURL godoc
// @Summary Issue a signed download link
// @Tags Documentos
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /documentos/{id}/url [get]
func (h *DocumentoHandler) DownloadURL(c *gin.Context) {
	link, err := h.service.GenerateDownloadURL(c.Request.Context(), c.Param("id"), h.apiPrefix)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, link)
}
