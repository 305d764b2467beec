package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/models"
	"github.com/vmachado/escritorio-api/internal/service"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
	"github.com/vmachado/escritorio-api/pkg/response"
)

// DocumentoJuridicoHandler wires HTTP endpoints to the editor document service.
type DocumentoJuridicoHandler struct {
	service *service.DocumentoJuridicoService
}

// NewDocumentoJuridicoHandler creates a new handler.
func NewDocumentoJuridicoHandler(svc *service.DocumentoJuridicoService) *DocumentoJuridicoHandler {
	return &DocumentoJuridicoHandler{service: svc}
}

// List godoc
// @Summary List editor documents
// @Tags DocumentosJuridicos
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /documentos-juridicos [get]
func (h *DocumentoJuridicoHandler) List(c *gin.Context) {
	documentos, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, documentos)
}

// Get godoc
// @Summary Get one editor document
// @Tags DocumentosJuridicos
// @Produce json
// @Param id path string true "Document id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /documentos-juridicos/{id} [get]
func (h *DocumentoJuridicoHandler) Get(c *gin.Context) {
	documento, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, documento)
}

// Create godoc
// @Summary Create an editor document
// @Tags DocumentosJuridicos
// @Accept json
// @Produce json
// @Param payload body models.DocumentoJuridicoInput true "Document payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /documentos-juridicos [post]
func (h *DocumentoJuridicoHandler) Create(c *gin.Context) {
	var req models.DocumentoJuridicoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid documento juridico payload"))
		return
	}

	documento, err := h.service.Create(c.Request.Context(), userFromContext(c), req, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, documento)
}

// Update godoc
// @Summary Update an editor document
// @Tags DocumentosJuridicos
// @Accept json
// @Produce json
// @Param id path string true "Document id"
// @Param payload body models.DocumentoJuridicoInput true "Document payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /documentos-juridicos/{id} [patch]
func (h *DocumentoJuridicoHandler) Update(c *gin.Context) {
	var req models.DocumentoJuridicoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid documento juridico payload"))
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
// @Summary Delete an editor document
// @Tags DocumentosJuridicos
// @Produce json
// @Param id path string true "Document id"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /documentos-juridicos/{id} [delete]
func (h *DocumentoJuridicoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), userFromContext(c), c.Param("id"), c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// PDF godoc
// @Summary Render an editor document to PDF
// @Description Client field placeholders are interpolated when a client is linked
// @Tags DocumentosJuridicos
// @Produce application/pdf
// @Param id path string true "Document id"
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /documentos-juridicos/{id}/pdf [get]
func (h *DocumentoJuridicoHandler) PDF(c *gin.Context) {
	documento, pdf, err := h.service.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", documento.Titulo+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
