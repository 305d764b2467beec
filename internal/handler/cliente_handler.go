package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/models"
	"github.com/vmachado/escritorio-api/internal/service"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
	"github.com/vmachado/escritorio-api/pkg/response"
)

// ClienteHandler wires HTTP endpoints to the client registry service.
type ClienteHandler struct {
	service *service.ClienteService
}

// NewClienteHandler creates a new handler.
func NewClienteHandler(svc *service.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: svc}
}

// List godoc
// @Summary List clients
// @Tags Clientes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /clientes [get]
func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, clientes)
}

// Get godoc
// @Summary Get one client
// @Tags Clientes
// @Produce json
// @Param id path string true "Client id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /clientes/{id} [get]
func (h *ClienteHandler) Get(c *gin.Context) {
	cliente, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cliente)
}

// Create godoc
// @Summary Register a client
// @Tags Clientes
// @Accept json
// @Produce json
// @Param payload body models.ClienteInput true "Client payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /clientes [post]
func (h *ClienteHandler) Create(c *gin.Context) {
	var req models.ClienteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cliente payload"))
		return
	}

	cliente, err := h.service.Create(c.Request.Context(), userFromContext(c), req, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cliente)
}

// Update godoc
// @Summary Update a client
// @Tags Clientes
// @Accept json
// @Produce json
// @Param id path string true "Client id"
// @Param payload body models.ClienteInput true "Client payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /clientes/{id} [patch]
func (h *ClienteHandler) Update(c *gin.Context) {
	var req models.ClienteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cliente payload"))
		return
	}

	cliente, err := h.service.Update(c.Request.Context(), userFromContext(c), c.Param("id"), req, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cliente)
}

// Delete godoc
// @Summary Delete a client
// @Tags Clientes
// @Produce json
// @Param id path string true "Client id"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), userFromContext(c), c.Param("id"), c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
