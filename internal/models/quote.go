package models

import "time"

// QuoteStatus tracks the payment lifecycle of a quote.
type QuoteStatus string

const (
	QuotePending     QuoteStatus = "pending"
	QuoteApproved    QuoteStatus = "approved"
	QuoteDeclined    QuoteStatus = "declined"
	QuoteAccepted    QuoteStatus = "accepted"
	QuoteRejected    QuoteStatus = "rejected"
	QuoteExpired     QuoteStatus = "expired"
	QuoteDepositPaid QuoteStatus = "deposit_paid"
	QuotePaid        QuoteStatus = "paid"
)

// PaidStatuses are the quote statuses that count toward revenue.
var PaidStatuses = map[QuoteStatus]bool{
	QuotePaid:        true,
	QuoteDepositPaid: true,
}

// QuoteBreakdownLine itemizes one component of a quote.
type QuoteBreakdownLine struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// Quote is a priced proposal tied to a service request.
type Quote struct {
	ID               string      `json:"id"`
	ServiceRequestID string      `json:"service_request_id"`
	LaborCost        float64     `json:"labor_cost"`
	PartsCost        float64     `json:"parts_cost"`
	TravelCost       float64     `json:"travel_cost,omitempty"`
	TotalCost        float64     `json:"total_cost"`
	EstimatedDuration float64    `json:"estimated_duration"` // hours
	ValidUntil       time.Time   `json:"valid_until"`
	Status           QuoteStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	CreatedBy        string      `json:"created_by,omitempty"`
	UpdatedAt        *time.Time  `json:"updated_at,omitempty"`
	AcceptedAt       *time.Time  `json:"accepted_at,omitempty"`
	PaidAt           *time.Time  `json:"paid_at,omitempty"`
	Notes            string      `json:"notes,omitempty"`

	Breakdown     []QuoteBreakdownLine `json:"breakdown,omitempty"`
	PaymentMethod string               `json:"payment_method,omitempty"`

	DepositAmount    float64 `json:"deposit_amount,omitempty"`
	RemainingBalance float64 `json:"remaining_balance,omitempty"`
	FinalAmount      float64 `json:"final_amount,omitempty"`
}
