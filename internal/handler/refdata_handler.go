package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/service"
	"github.com/vmachado/escritorio-api/pkg/response"
)

// RefDataHandler serves postal-code and region lookups.
type RefDataHandler struct {
	service *service.RefDataService
}

// NewRefDataHandler creates a new handler.
func NewRefDataHandler(svc *service.RefDataService) *RefDataHandler {
	return &RefDataHandler{service: svc}
}

// CEP godoc
// @Summary Resolve a postal code
// @Tags RefData
// @Produce json
// @Param cep path string true "Postal code, digits only or formatted"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 504 {object} response.Envelope
// @Router /cep/{cep} [get]
func (h *RefDataHandler) CEP(c *gin.Context) {
	endereco, err := h.service.LookupCEP(c.Request.Context(), c.Param("cep"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, endereco)
}

// Estados godoc
// @Summary List states
// @Tags RefData
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /ibge/estados [get]
func (h *RefDataHandler) Estados(c *gin.Context) {
	estados, err := h.service.Estados(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, estados)
}

// Municipios godoc
// @Summary List municipalities of a state
// @Tags RefData
// @Produce json
// @Param uf path string true "Two-letter state code"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /ibge/municipios/{uf} [get]
func (h *RefDataHandler) Municipios(c *gin.Context) {
	municipios, err := h.service.Municipios(c.Request.Context(), c.Param("uf"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, municipios)
}
