package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/export"
)

// RevenueSummary aggregates payment activity over an optional window.
type RevenueSummary struct {
	TotalRevenue   float64    `json:"total_revenue"`
	PaymentCount   int        `json:"payment_count"`
	AveragePayment float64    `json:"average_payment"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

// ReportService produces revenue summaries, payment exports, and invoices
// from the dispatch state.
type ReportService struct {
	store        *store.Store
	pdf          *export.PDFExporter
	csv          *export.CSVExporter
	companyName  string
	companyEmail string
	logger       *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(st *store.Store, companyName, companyEmail string, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		store:        st,
		pdf:          export.NewPDFExporter(),
		csv:          export.NewCSVExporter(),
		companyName:  companyName,
		companyEmail: companyEmail,
		logger:       logger,
	}
}

// Revenue summarizes paid quotes inside the optional inclusive window.
func (s *ReportService) Revenue(startDate, endDate *time.Time) RevenueSummary {
	total := s.store.TotalRevenue(startDate, endDate)

	count := 0
	for _, q := range s.store.PaymentHistory() {
		if startDate != nil && q.PaidAt.Before(*startDate) {
			continue
		}
		if endDate != nil && q.PaidAt.After(*endDate) {
			continue
		}
		count++
	}

	avg := 0.0
	if count > 0 {
		avg = total / float64(count)
	}

	return RevenueSummary{
		TotalRevenue:   total,
		PaymentCount:   count,
		AveragePayment: avg,
		StartDate:      startDate,
		EndDate:        endDate,
	}
}

// PaymentsCSV exports the payment history, newest first.
func (s *ReportService) PaymentsCSV() ([]byte, error) {
	headers := []string{"quote_id", "service_request_id", "status", "total_cost", "payment_method", "paid_at"}
	dataset := export.Dataset{Headers: headers}

	for _, q := range s.store.PaymentHistory() {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"quote_id":           q.ID,
			"service_request_id": q.ServiceRequestID,
			"status":             string(q.Status),
			"total_cost":         fmt.Sprintf("%.2f", q.TotalCost),
			"payment_method":     q.PaymentMethod,
			"paid_at":            q.PaidAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render payments export")
	}
	return data, nil
}

// InvoicePDF renders a quote as a customer invoice. Only paid or
// deposit-paid quotes can be invoiced.
func (s *ReportService) InvoicePDF(quoteID string) ([]byte, error) {
	quote, ok := s.store.Quote(quoteID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "quote not found")
	}
	if !models.PaidStatuses[quote.Status] {
		return nil, appErrors.Clone(appErrors.ErrQuoteUnpaid, "invoice requires a paid quote")
	}

	job, _ := s.store.ServiceRequest(quote.ServiceRequestID)

	inv := export.Invoice{
		Number:   quote.ID,
		Issuer:   s.companyName,
		Contact:  s.companyEmail,
		BillTo:   billToLine(s.store, job),
		IssuedOn: time.Now().UTC().Format("2006-01-02"),
		Total:    fmt.Sprintf("$%.2f", quote.TotalCost),
		Footer:   "Thank you for your business.",
	}

	if len(quote.Breakdown) > 0 {
		for _, line := range quote.Breakdown {
			inv.Lines = append(inv.Lines, export.InvoiceLine{
				Description: line.Description,
				Amount:      fmt.Sprintf("$%.2f", line.Cost),
			})
		}
	} else {
		inv.Lines = append(inv.Lines,
			export.InvoiceLine{Description: "Labor", Amount: fmt.Sprintf("$%.2f", quote.LaborCost)},
			export.InvoiceLine{Description: "Parts", Amount: fmt.Sprintf("$%.2f", quote.PartsCost)},
		)
		if quote.TravelCost > 0 {
			inv.Lines = append(inv.Lines, export.InvoiceLine{Description: "Travel", Amount: fmt.Sprintf("$%.2f", quote.TravelCost)})
		}
	}

	data, err := s.pdf.RenderInvoice(inv)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render invoice")
	}

	s.logger.Info("invoice rendered", zap.String("quoteId", quote.ID), zap.Float64("total", quote.TotalCost))
	return data, nil
}

// JobSummaryPDF renders a one-page job report: timeline, parts, and hours.
func (s *ReportService) JobSummaryPDF(jobID string) ([]byte, error) {
	job, ok := s.store.ServiceRequest(jobID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "service request not found")
	}

	dataset := export.Dataset{Headers: []string{"field", "value"}}
	add := func(field, value string) {
		dataset.Rows = append(dataset.Rows, map[string]string{"field": field, "value": value})
	}

	add("Job", job.ID)
	add("Service", job.Type)
	add("Status", string(job.Status))
	estimated, actual := s.store.JobDuration(jobID)
	add("Estimated duration (min)", fmt.Sprintf("%d", estimated))
	add("Actual duration (min)", fmt.Sprintf("%d", actual))
	add("Tracked time (min)", fmt.Sprintf("%d", s.store.TotalJobTime(jobID)/60000))
	add("Parts cost", fmt.Sprintf("$%.2f", store.PartsCost(s.store.JobParts(jobID))))
	for _, entry := range s.store.JobTimeline(jobID) {
		add("Timeline "+string(entry.Status), entry.Timestamp.UTC().Format(time.RFC3339))
	}

	data, err := s.pdf.Render(dataset, "Job Summary")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render job summary")
	}
	return data, nil
}

func billToLine(st *store.Store, job models.ServiceRequest) string {
	contact, ok := st.Contact()
	if !ok {
		return ""
	}
	line := contact.FirstName + " " + contact.LastName
	if v, ok := st.Vehicle(job.VehicleID); ok {
		line = fmt.Sprintf("%s (%d %s %s)", line, v.Year, v.Make, v.Model)
	}
	return line
}
