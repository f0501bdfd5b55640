package dto

import (
	"time"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

// CreateQuoteRequest prices a service request.
type CreateQuoteRequest struct {
	ServiceRequestID  string                      `json:"service_request_id" binding:"required"`
	LaborCost         float64                     `json:"labor_cost"`
	PartsCost         float64                     `json:"parts_cost"`
	TravelCost        float64                     `json:"travel_cost"`
	EstimatedDuration float64                     `json:"estimated_duration"`
	ValidDays         int                         `json:"valid_days"`
	Breakdown         []models.QuoteBreakdownLine `json:"breakdown"`
}

// QuoteEstimateRequest asks for a standard-rate estimate for a service type.
type QuoteEstimateRequest struct {
	ServiceType string           `json:"service_type" binding:"required"`
	Parts       []models.JobPart `json:"parts"`
}

// UpdateQuoteStatusRequest moves a quote through its payment lifecycle.
type UpdateQuoteStatusRequest struct {
	Status        models.QuoteStatus `json:"status" binding:"required"`
	PaymentMethod string             `json:"payment_method"`
	DepositAmount float64            `json:"deposit_amount"`
}

// RevenueQuery bounds a revenue report. Both bounds are optional and inclusive.
type RevenueQuery struct {
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}
