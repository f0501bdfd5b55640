package dto

import (
	"time"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
)

// CreateServiceRequestRequest creates a new job.
type CreateServiceRequestRequest struct {
	Type              string                   `json:"type" binding:"required"`
	Description       string                   `json:"description"`
	Urgency           models.Urgency           `json:"urgency"`
	VehicleID         string                   `json:"vehicle_id"`
	VehicleType       models.VehicleType       `json:"vehicle_type"`
	VinNumber         string                   `json:"vin_number"`
	Location          *models.Location         `json:"location"`
	EstimatedDuration int                      `json:"estimated_duration"`
	AIDiagnosis       *models.DiagnosticResult `json:"ai_diagnosis"`
}

// UpdateStatusRequest moves a job to a new lifecycle status.
type UpdateStatusRequest struct {
	Status     models.ServiceStatus `json:"status" binding:"required"`
	MechanicID string               `json:"mechanic_id"`
	Notes      string               `json:"notes"`
}

// CancelJobRequest cancels a job with an optional reason.
type CancelJobRequest struct {
	Reason     string `json:"reason"`
	MechanicID string `json:"mechanic_id"`
}

// SignatureRequest attaches a customer signature to a job.
type SignatureRequest struct {
	SignatureData string `json:"signature_data" binding:"required"`
	CapturedBy    string `json:"captured_by"`
}

// UpdateToolsRequest replaces the job's checked-tools map.
type UpdateToolsRequest struct {
	ToolsChecked map[string]bool `json:"tools_checked" binding:"required"`
}

// CompleteToolsCheckRequest finalizes the pre-job tools check.
type CompleteToolsCheckRequest struct {
	Notes string `json:"notes"`
}

// AddPartsRequest appends parts to a job.
type AddPartsRequest struct {
	Parts []models.JobPart `json:"parts" binding:"required"`
}

// ReplacePartsRequest swaps the job's full parts list.
type ReplacePartsRequest struct {
	Parts []models.JobPart `json:"parts" binding:"required"`
}

// AddPhotosRequest appends evidence photos to a job.
type AddPhotosRequest struct {
	Photos []models.JobPhoto `json:"photos" binding:"required"`
}

// AddJobLogRequest opens or records a work-timer session.
type AddJobLogRequest struct {
	MechanicID string     `json:"mechanic_id" binding:"required"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	Activity   string     `json:"activity"`
	Notes      string     `json:"notes"`
}

// UpdateJobLogRequest patches a work-timer session. Nil fields are untouched.
type UpdateJobLogRequest struct {
	EndTime  *time.Time `json:"end_time"`
	Activity *string    `json:"activity"`
	Notes    *string    `json:"notes"`
}

// JobDurationResponse reports estimated versus actual minutes plus the
// tracked timer total.
type JobDurationResponse struct {
	EstimatedMinutes int   `json:"estimated_minutes"`
	ActualMinutes    int   `json:"actual_minutes"`
	TrackedMs        int64 `json:"tracked_ms"`
}

// ChecklistResponse wraps the completion checklist with its verdict.
type ChecklistResponse struct {
	Checklist store.CompletionChecklist `json:"checklist"`
	Met       bool                      `json:"met"`
}

// ToolsStatusResponse reports tools-check progress for a job.
type ToolsStatusResponse struct {
	Status store.ToolsStatus `json:"status"`
	Notes  string            `json:"notes,omitempty"`
}
