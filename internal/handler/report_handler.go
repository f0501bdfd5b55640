package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heinicus/mobile-mechanic-api/internal/dto"
	"github.com/heinicus/mobile-mechanic-api/internal/service"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
)

// ReportHandler serves revenue summaries and document exports.
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new handler.
func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Revenue godoc
// @Summary Revenue summary
// @Tags Reports
// @Produce json
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /reports/revenue [get]
func (h *ReportHandler) Revenue(c *gin.Context) {
	var query dto.RevenueQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid date range"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.Revenue(query.StartDate, query.EndDate), nil)
}

// PaymentsCSV godoc
// @Summary Export payment history as CSV
// @Tags Reports
// @Produce text/csv
// @Success 200 {file} file
// @Router /reports/payments.csv [get]
func (h *ReportHandler) PaymentsCSV(c *gin.Context) {
	data, err := h.service.PaymentsCSV()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="payments.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// InvoicePDF godoc
// @Summary Render an invoice for a paid quote
// @Tags Reports
// @Produce application/pdf
// @Param id path string true "Quote id"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /reports/invoices/{id}/pdf [get]
func (h *ReportHandler) InvoicePDF(c *gin.Context) {
	quoteID := c.Param("id")
	data, err := h.service.InvoicePDF(quoteID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, quoteID))
	c.Data(http.StatusOK, "application/pdf", data)
}

// JobSummaryPDF godoc
// @Summary Render a one-page job report
// @Tags Reports
// @Produce application/pdf
// @Param id path string true "Job id"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /reports/jobs/{id}/pdf [get]
func (h *ReportHandler) JobSummaryPDF(c *gin.Context) {
	jobID := c.Param("id")
	data, err := h.service.JobSummaryPDF(jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="job-%s.pdf"`, jobID))
	c.Data(http.StatusOK, "application/pdf", data)
}
