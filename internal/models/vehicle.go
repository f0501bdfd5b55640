package models

import "time"

// VehicleType distinguishes the supported vehicle classes.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleScooter    VehicleType = "scooter"
)

// Vehicle is a customer vehicle on file.
type Vehicle struct {
	ID             string      `json:"id"`
	Make           string      `json:"make"`
	Model          string      `json:"model"`
	Year           int         `json:"year"`
	VehicleType    VehicleType `json:"vehicle_type"`
	VIN            string      `json:"vin,omitempty"`
	Trim           string      `json:"trim,omitempty"`
	Engine         string      `json:"engine,omitempty"`
	Mileage        int         `json:"mileage"`
	Color          string      `json:"color,omitempty"`
	LicensePlate   string      `json:"license_plate,omitempty"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
	NextServiceDue  *time.Time `json:"next_service_due,omitempty"`
}

// VinData holds decoded vehicle attributes for a VIN.
type VinData struct {
	VIN          string      `json:"vin"`
	Make         string      `json:"make"`
	Model        string      `json:"model"`
	Year         int         `json:"year"`
	VehicleType  VehicleType `json:"vehicle_type"`
	Trim         string      `json:"trim,omitempty"`
	Engine       string      `json:"engine,omitempty"`
	Transmission string      `json:"transmission,omitempty"`
	BodyStyle    string      `json:"body_style,omitempty"`
	FuelType     string      `json:"fuel_type,omitempty"`
	DriveType    string      `json:"drive_type,omitempty"`
}

// Address is a postal address for the contact record.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// Contact is the customer profile attached to the account.
type Contact struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// MaintenanceReminder schedules upcoming service for a vehicle.
type MaintenanceReminder struct {
	ID           string     `json:"id"`
	VehicleID    string     `json:"vehicle_id"`
	ServiceType  string     `json:"service_type"`
	Description  string     `json:"description"`
	DueDate      time.Time  `json:"due_date"`
	DueMileage   int        `json:"due_mileage,omitempty"`
	Priority     Urgency    `json:"priority"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	ReminderSent bool       `json:"reminder_sent"`
	CreatedAt    time.Time  `json:"created_at"`
}

// MaintenanceRecord is a completed service entry in a vehicle's history.
type MaintenanceRecord struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicle_id"`
	ServiceType string     `json:"service_type"`
	Description string     `json:"description"`
	Cost        float64    `json:"cost,omitempty"`
	Mileage     int        `json:"mileage,omitempty"`
	PerformedAt time.Time  `json:"performed_at"`
	PerformedBy string     `json:"performed_by,omitempty"`
	NextDueDate *time.Time `json:"next_due_date,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}
