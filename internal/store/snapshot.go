package store

import "github.com/heinicus/mobile-mechanic-api/internal/models"

// Snapshot is the JSON document persisted under the storage key. The field
// names match the document layout written by earlier releases of the mobile
// client, so an existing store rehydrates unchanged.
type Snapshot struct {
	Contact               *models.Contact               `json:"contact"`
	Vehicles              []models.Vehicle              `json:"vehicles"`
	ServiceRequests       []models.ServiceRequest       `json:"serviceRequests"`
	Quotes                []models.Quote                `json:"quotes"`
	MaintenanceReminders  []models.MaintenanceReminder  `json:"maintenanceReminders"`
	MaintenanceHistory    []models.MaintenanceRecord    `json:"maintenanceHistory"`
	JobLogs               []models.JobLog               `json:"jobLogs"`
	JobParts              map[string][]models.JobPart   `json:"jobParts"`
	MechanicVerifications []models.MechanicVerification `json:"mechanicVerifications"`
}
