package handlers

import (
	"fmt"
	"net/http"

	"bustms/internal/http/middleware"
	"bustms/internal/services"
	"bustms/internal/utils"

	"github.com/gin-gonic/gin"
)

// Revenue returns the fleet total with a per-bus breakdown.
func (h Handlers) Revenue(c *gin.Context) {
	c.JSON(http.StatusOK, h.Reports.Revenue())
}

// RevenueReportPDF serves the revenue report as a PDF download.
func (h Handlers) RevenueReportPDF(c *gin.Context) {
	report := h.Reports.Revenue()
	pdf, filename, err := services.BuildRevenuePDF(report)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "docs", "revenue_pdf", err.Error())
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to build report")
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "docs", "revenue_pdf", fmt.Sprintf("total=%d bytes=%d", report.Total, len(pdf)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
