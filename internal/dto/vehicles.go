package dto

import (
	"time"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

// VehicleRequest creates or updates a customer vehicle.
type VehicleRequest struct {
	Make         string             `json:"make" binding:"required"`
	Model        string             `json:"model" binding:"required"`
	Year         int                `json:"year" binding:"required"`
	VehicleType  models.VehicleType `json:"vehicle_type"`
	VIN          string             `json:"vin"`
	Trim         string             `json:"trim"`
	Engine       string             `json:"engine"`
	Mileage      int                `json:"mileage"`
	Color        string             `json:"color"`
	LicensePlate string             `json:"license_plate"`
}

// ContactRequest updates the customer profile.
type ContactRequest struct {
	FirstName string          `json:"first_name" binding:"required"`
	LastName  string          `json:"last_name" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	Phone     string          `json:"phone"`
	Address   *models.Address `json:"address"`
}

// ReminderRequest schedules a maintenance reminder for a vehicle.
type ReminderRequest struct {
	VehicleID   string         `json:"vehicle_id" binding:"required"`
	ServiceType string         `json:"service_type" binding:"required"`
	Description string         `json:"description"`
	DueDate     time.Time      `json:"due_date" binding:"required"`
	DueMileage  int            `json:"due_mileage"`
	Priority    models.Urgency `json:"priority"`
}

// MaintenanceRecordRequest logs completed service into a vehicle's history.
type MaintenanceRecordRequest struct {
	VehicleID   string     `json:"vehicle_id" binding:"required"`
	ServiceType string     `json:"service_type" binding:"required"`
	Description string     `json:"description"`
	Cost        float64    `json:"cost"`
	Mileage     int        `json:"mileage"`
	PerformedAt time.Time  `json:"performed_at"`
	PerformedBy string     `json:"performed_by"`
	NextDueDate *time.Time `json:"next_due_date"`
	Notes       string     `json:"notes"`
}

// CompleteReminderRequest closes a reminder with the service that satisfied it.
type CompleteReminderRequest struct {
	Record MaintenanceRecordRequest `json:"record" binding:"required"`
}
