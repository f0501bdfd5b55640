package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/catalog"
	"github.com/heinicus/mobile-mechanic-api/internal/dto"
	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
)

const defaultQuoteValidityDays = 7

// QuoteHandler manages quote pricing and the payment lifecycle.
type QuoteHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewQuoteHandler creates a new handler.
func NewQuoteHandler(st *store.Store, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{store: st, logger: logger}
}

// Create godoc
// @Summary Create quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param payload body dto.CreateQuoteRequest true "Quote payload"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid quote payload"))
		return
	}

	job, ok := h.store.ServiceRequest(req.ServiceRequestID)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}

	validDays := req.ValidDays
	if validDays <= 0 {
		validDays = defaultQuoteValidityDays
	}

	quote := models.Quote{
		ID:                uuid.NewString(),
		ServiceRequestID:  req.ServiceRequestID,
		LaborCost:         req.LaborCost,
		PartsCost:         req.PartsCost,
		TravelCost:        req.TravelCost,
		TotalCost:         req.LaborCost + req.PartsCost + req.TravelCost,
		EstimatedDuration: req.EstimatedDuration,
		ValidUntil:        time.Now().UTC().AddDate(0, 0, validDays),
		Status:            models.QuotePending,
		Breakdown:         req.Breakdown,
	}

	h.store.AddQuote(quote)

	if job.Status == models.StatusPending {
		h.store.UpdateJobStatus(job.ID, models.StatusQuoted, "", "quote issued")
	}

	response.Created(c, quote)
}

// List godoc
// @Summary List quotes
// @Tags Quotes
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Envelope
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	var quotes []models.Quote
	if status := c.Query("status"); status != "" {
		quotes = h.store.QuotesByStatus(models.QuoteStatus(status))
	} else {
		quotes = h.store.Quotes()
	}
	response.JSON(c, http.StatusOK, quotes, map[string]interface{}{"count": len(quotes)})
}

// Get godoc
// @Summary Get quote
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	quote, ok := h.store.Quote(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "quote not found"))
		return
	}
	response.JSON(c, http.StatusOK, quote, nil)
}

// UpdateStatus godoc
// @Summary Update quote payment status
// @Description Moving to paid or deposit_paid stamps PaidAt and records the
// @Description payment method. Deposit payments track the remaining balance.
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote id"
// @Param payload body dto.UpdateQuoteStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /quotes/{id}/status [put]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	quoteID := c.Param("id")
	if _, ok := h.store.Quote(quoteID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "quote not found"))
		return
	}

	var req dto.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	h.store.UpdateQuote(quoteID, func(q *models.Quote) {
		q.Status = req.Status
		if req.PaymentMethod != "" {
			q.PaymentMethod = req.PaymentMethod
		}
		switch req.Status {
		case models.QuotePaid:
			now := time.Now().UTC()
			q.PaidAt = &now
			q.RemainingBalance = 0
			q.FinalAmount = q.TotalCost
		case models.QuoteDepositPaid:
			now := time.Now().UTC()
			q.PaidAt = &now
			q.DepositAmount = req.DepositAmount
			q.RemainingBalance = q.TotalCost - req.DepositAmount
		}
	})

	quote, _ := h.store.Quote(quoteID)
	response.JSON(c, http.StatusOK, quote, nil)
}

// Estimate godoc
// @Summary Estimate a quote from standard rates
// @Tags Quotes
// @Accept json
// @Produce json
// @Param payload body dto.QuoteEstimateRequest true "Estimate payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /quotes/estimate [post]
func (h *QuoteHandler) Estimate(c *gin.Context) {
	var req dto.QuoteEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid estimate payload"))
		return
	}

	estimate, ok := catalog.EstimateQuoteWithParts(req.ServiceType, req.Parts)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no standard pricing for this service type"))
		return
	}
	response.JSON(c, http.StatusOK, estimate, nil)
}
