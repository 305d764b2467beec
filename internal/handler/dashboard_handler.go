package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/service"
	"github.com/vmachado/escritorio-api/pkg/response"
)

// DashboardHandler serves aggregate counts for the landing page.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Stats godoc
// @Summary Dashboard record counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// AtividadesRecentes godoc
// @Summary Latest audit activity
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/atividades-recentes [get]
func (h *DashboardHandler) AtividadesRecentes(c *gin.Context) {
	atividades, err := h.service.AtividadesRecentes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, atividades)
}
