package models

import "time"

// ServiceStatus enumerates the lifecycle states of a service request.
type ServiceStatus string

const (
	StatusPending    ServiceStatus = "pending"
	StatusQuoted     ServiceStatus = "quoted"
	StatusAccepted   ServiceStatus = "accepted"
	StatusScheduled  ServiceStatus = "scheduled"
	StatusInProgress ServiceStatus = "in_progress"
	StatusPaused     ServiceStatus = "paused"
	StatusCompleted  ServiceStatus = "completed"
	StatusCancelled  ServiceStatus = "cancelled"
)

// Urgency grades how quickly a request needs attention.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

// PhotoType classifies job evidence photos.
type PhotoType string

const (
	PhotoBefore PhotoType = "before"
	PhotoDuring PhotoType = "during"
	PhotoAfter  PhotoType = "after"
	PhotoParts  PhotoType = "parts"
	PhotoDamage PhotoType = "damage"
)

// StatusTimestamp is one entry in a job's append-only status timeline.
type StatusTimestamp struct {
	Status     ServiceStatus `json:"status"`
	Timestamp  time.Time     `json:"timestamp"`
	MechanicID string        `json:"mechanic_id,omitempty"`
	Notes      string        `json:"notes,omitempty"`
}

// JobPhoto is an evidence photo attached to a job.
type JobPhoto struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Type       PhotoType `json:"type"`
	Caption    string    `json:"caption,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
	UploadedBy string    `json:"uploaded_by"`
}

// JobPart is a part consumed by a job, tracked in a side table keyed by job id.
type JobPart struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Source      string  `json:"source,omitempty"`
}

// JobLog is one contiguous work-timer session attributed to a mechanic and job.
// A nil EndTime marks the timer as still running.
type JobLog struct {
	ID         string     `json:"id"`
	JobID      string     `json:"job_id"`
	MechanicID string     `json:"mechanic_id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Activity   string     `json:"activity,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// Location is a geographic point with an optional resolved address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// ServiceRequest is the central job entity tracked through the full lifecycle.
type ServiceRequest struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Description string        `json:"description"`
	Urgency     Urgency       `json:"urgency"`
	Status      ServiceStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`

	VehicleID   string      `json:"vehicle_id"`
	VehicleType VehicleType `json:"vehicle_type,omitempty"`
	VinNumber   string      `json:"vin_number,omitempty"`
	Location    *Location   `json:"location,omitempty"`

	AIDiagnosis *DiagnosticResult `json:"ai_diagnosis,omitempty"`

	// Tools check
	RequiredTools         []string        `json:"required_tools,omitempty"`
	ToolsChecked          map[string]bool `json:"tools_checked,omitempty"`
	ToolsCheckCompletedAt *time.Time      `json:"tools_check_completed_at,omitempty"`
	ToolsNotes            string          `json:"tools_notes,omitempty"`

	// Evidence
	JobPhotos           []JobPhoto `json:"job_photos,omitempty"`
	SignatureData       string     `json:"signature_data,omitempty"`
	SignatureCapturedAt *time.Time `json:"signature_captured_at,omitempty"`
	SignatureCapturedBy string     `json:"signature_captured_by,omitempty"`

	// Lifecycle history
	StatusTimeline []StatusTimestamp `json:"status_timeline,omitempty"`

	// Per-transition timestamps
	MechanicID  string     `json:"mechanic_id,omitempty"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	PausedAt    *time.Time `json:"paused_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy        string     `json:"cancelled_by,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`

	// Durations in minutes. ActualDuration is computed at completion and
	// stays nil when the job never entered in_progress.
	EstimatedDuration int  `json:"estimated_duration,omitempty"`
	ActualDuration    *int `json:"actual_duration,omitempty"`
}
