package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/models"
	"github.com/vmachado/escritorio-api/internal/service"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
	"github.com/vmachado/escritorio-api/pkg/response"
)

// StatusDocumentoHandler wires HTTP endpoints to the status catalog service.
type StatusDocumentoHandler struct {
	service *service.StatusDocumentoService
}

// NewStatusDocumentoHandler creates a new handler.
func NewStatusDocumentoHandler(svc *service.StatusDocumentoService) *StatusDocumentoHandler {
	return &StatusDocumentoHandler{service: svc}
}

// List godoc
// @Summary List active document statuses
// @Tags StatusDocumentos
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /status-documentos [get]
func (h *StatusDocumentoHandler) List(c *gin.Context) {
	status, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status)
}

// Create godoc
// @Summary Create a document status
// @Tags StatusDocumentos
// @Accept json
// @Produce json
// @Param payload body models.StatusDocumentoInput true "Status payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /status-documentos [post]
func (h *StatusDocumentoHandler) Create(c *gin.Context) {
	var req models.StatusDocumentoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	status, err := h.service.Create(c.Request.Context(), userFromContext(c), req, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, status)
}

// Update godoc
// @Summary Update a document status
// @Tags StatusDocumentos
// @Accept json
// @Produce json
// @Param id path string true "Status id"
// @Param payload body models.StatusDocumentoInput true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /status-documentos/{id} [patch]
func (h *StatusDocumentoHandler) Update(c *gin.Context) {
	var req models.StatusDocumentoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	status, err := h.service.Update(c.Request.Context(), userFromContext(c), c.Param("id"), req, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status)
}

// Delete godoc
// @Summary Delete a document status
// @Description Refused while any document still carries the status
// @Tags StatusDocumentos
// @Produce json
// @Param id path string true "Status id"
// @Success 204 "No Content"
// @Failure 409 {object} response.Envelope
// @Router /status-documentos/{id} [delete]
func (h *StatusDocumentoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), userFromContext(c), c.Param("id"), c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
