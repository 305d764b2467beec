package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/service"
	"github.com/vmachado/escritorio-api/pkg/response"
)

// AuditHandler exposes the audit trail to administrators.
type AuditHandler struct {
	service *service.AuditService
}

// NewAuditHandler creates a new handler.
func NewAuditHandler(svc *service.AuditService) *AuditHandler {
	return &AuditHandler{service: svc}
}

// List godoc
// @Summary List audit entries
// @Tags Logs
// @Produce json
// @Param limit query int false "Maximum entries (default 100)"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Export godoc
// @Summary Export audit entries as CSV
// @Tags Logs
// @Produce text/csv
// @Param limit query int false "Maximum entries (default 100)"
// @Success 200 {file} binary
// @Failure 403 {object} response.Envelope
// @Router /logs/export [get]
func (h *AuditHandler) Export(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	data, err := h.service.ExportCSV(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("logs-auditoria-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
