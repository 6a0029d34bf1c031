package admin

import (
	"strconv"

	"github.com/gauravjat135/galaxy-medical-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AdminReportOverview returns the dashboard headline numbers.
func (h *Handler) AdminReportOverview(c *gin.Context) {
	overview, err := h.ReportService.Overview()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load report", err)
		return
	}
	response.Success(c, overview)
}

// AdminReportLowStock lists products at or below the alert threshold.
func (h *Handler) AdminReportLowStock(c *gin.Context) {
	products, err := h.ReportService.LowStock()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load low stock report", err)
		return
	}
	response.Success(c, products)
}

// AdminReportTopProducts returns the best-sellers ranking.
func (h *Handler) AdminReportTopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	ranking, err := h.ReportService.TopProducts(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load top products", err)
		return
	}
	response.Success(c, ranking)
}
