package models

import "time"

// Confidence grades how certain the diagnosis heuristics are.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// VehicleInfo identifies the vehicle a diagnosis applies to.
type VehicleInfo struct {
	Make    string `json:"make"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	Mileage int    `json:"mileage,omitempty"`
	Engine  string `json:"engine,omitempty"`
	VIN     string `json:"vin,omitempty"`
}

// CostBand is an estimated repair cost range in dollars.
type CostBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DiagnosticResult is the outcome of the symptom-analysis heuristics.
type DiagnosticResult struct {
	ID                      string      `json:"id"`
	VehicleInfo             VehicleInfo `json:"vehicle_info"`
	Symptoms                string      `json:"symptoms"`
	AdditionalContext       string      `json:"additional_context,omitempty"`
	Confidence              Confidence  `json:"confidence"`
	LikelyCauses            []string    `json:"likely_causes"`
	DiagnosticSteps         []string    `json:"diagnostic_steps"`
	UrgencyLevel            Urgency     `json:"urgency_level"`
	EstimatedCost           *CostBand   `json:"estimated_cost,omitempty"`
	MatchedServices         []string    `json:"matched_services"`
	RecommendedServiceTypes []string    `json:"recommended_service_types,omitempty"`
	CreatedAt               time.Time   `json:"created_at"`
}
