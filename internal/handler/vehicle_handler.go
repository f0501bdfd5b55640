package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heinicus/mobile-mechanic-api/internal/dto"
	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
)

// VehicleHandler manages the garage: vehicles, the contact record,
// maintenance reminders, and service history.
type VehicleHandler struct {
	store *store.Store
}

// NewVehicleHandler creates a new handler.
func NewVehicleHandler(st *store.Store) *VehicleHandler {
	return &VehicleHandler{store: st}
}

// Create godoc
// @Summary Add vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param payload body dto.VehicleRequest true "Vehicle payload"
// @Success 201 {object} response.Envelope
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid vehicle payload"))
		return
	}

	if req.VehicleType == "" {
		req.VehicleType = models.VehicleCar
	}

	vehicle := models.Vehicle{
		ID:           uuid.NewString(),
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		VehicleType:  req.VehicleType,
		VIN:          req.VIN,
		Trim:         req.Trim,
		Engine:       req.Engine,
		Mileage:      req.Mileage,
		Color:        req.Color,
		LicensePlate: req.LicensePlate,
	}
	h.store.AddVehicle(vehicle)
	response.Created(c, vehicle)
}

// List godoc
// @Summary List vehicles
// @Tags Vehicles
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles := h.store.Vehicles()
	response.JSON(c, http.StatusOK, vehicles, map[string]interface{}{"count": len(vehicles)})
}

// Get godoc
// @Summary Get vehicle
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, ok := h.store.Vehicle(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "vehicle not found"))
		return
	}
	response.JSON(c, http.StatusOK, vehicle, nil)
}

// Update godoc
// @Summary Update vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle id"
// @Param payload body dto.VehicleRequest true "Vehicle payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	vehicleID := c.Param("id")
	if _, ok := h.store.Vehicle(vehicleID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "vehicle not found"))
		return
	}

	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid vehicle payload"))
		return
	}

	h.store.UpdateVehicle(vehicleID, func(v *models.Vehicle) {
		v.Make = req.Make
		v.Model = req.Model
		v.Year = req.Year
		if req.VehicleType != "" {
			v.VehicleType = req.VehicleType
		}
		v.VIN = req.VIN
		v.Trim = req.Trim
		v.Engine = req.Engine
		v.Mileage = req.Mileage
		v.Color = req.Color
		v.LicensePlate = req.LicensePlate
	})

	vehicle, _ := h.store.Vehicle(vehicleID)
	response.JSON(c, http.StatusOK, vehicle, nil)
}

// Remove godoc
// @Summary Remove vehicle
// @Description Removing a vehicle also drops its reminders and history.
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle id"
// @Success 204 {object} response.Envelope
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Remove(c *gin.Context) {
	h.store.RemoveVehicle(c.Param("id"))
	response.NoContent(c)
}

// GetContact godoc
// @Summary Get customer contact
// @Tags Contact
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /contact [get]
func (h *VehicleHandler) GetContact(c *gin.Context) {
	contact, ok := h.store.Contact()
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no contact on file"))
		return
	}
	response.JSON(c, http.StatusOK, contact, nil)
}

// SetContact godoc
// @Summary Set customer contact
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body dto.ContactRequest true "Contact payload"
// @Success 200 {object} response.Envelope
// @Router /contact [put]
func (h *VehicleHandler) SetContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid contact payload"))
		return
	}

	contact := models.Contact{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if existing, ok := h.store.Contact(); ok {
		contact.ID = existing.ID
	}

	h.store.SetContact(contact)
	response.JSON(c, http.StatusOK, contact, nil)
}

// AddReminder godoc
// @Summary Schedule maintenance reminder
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param payload body dto.ReminderRequest true "Reminder payload"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /maintenance/reminders [post]
func (h *VehicleHandler) AddReminder(c *gin.Context) {
	var req dto.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reminder payload"))
		return
	}
	if _, ok := h.store.Vehicle(req.VehicleID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "vehicle not found"))
		return
	}
	if req.Priority == "" {
		req.Priority = models.UrgencyMedium
	}

	reminder := models.MaintenanceReminder{
		ID:          uuid.NewString(),
		VehicleID:   req.VehicleID,
		ServiceType: req.ServiceType,
		Description: req.Description,
		DueDate:     req.DueDate,
		DueMileage:  req.DueMileage,
		Priority:    req.Priority,
		CreatedAt:   time.Now().UTC(),
	}
	h.store.AddMaintenanceReminder(reminder)
	response.Created(c, reminder)
}

// UpcomingReminders godoc
// @Summary List upcoming reminders for a vehicle
// @Tags Maintenance
// @Produce json
// @Param id path string true "Vehicle id"
// @Success 200 {object} response.Envelope
// @Router /vehicles/{id}/reminders [get]
func (h *VehicleHandler) UpcomingReminders(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.UpcomingMaintenance(c.Param("id")), nil)
}

// CompleteReminder godoc
// @Summary Complete a maintenance reminder
// @Description Marks the reminder complete and writes the service into the
// @Description vehicle's history, rolling its service dates forward.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Vehicle id"
// @Param reminderID path string true "Reminder id"
// @Param payload body dto.CompleteReminderRequest true "Completion payload"
// @Success 200 {object} response.Envelope
// @Router /vehicles/{id}/reminders/{reminderID}/complete [post]
func (h *VehicleHandler) CompleteReminder(c *gin.Context) {
	var req dto.CompleteReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid completion payload"))
		return
	}

	record := recordFromRequest(req.Record)
	h.store.CompleteMaintenanceReminder(c.Param("reminderID"), record)
	response.JSON(c, http.StatusOK, record, nil)
}

// AddRecord godoc
// @Summary Log a maintenance record
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param payload body dto.MaintenanceRecordRequest true "Record payload"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /maintenance/records [post]
func (h *VehicleHandler) AddRecord(c *gin.Context) {
	var req dto.MaintenanceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid record payload"))
		return
	}
	if _, ok := h.store.Vehicle(req.VehicleID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "vehicle not found"))
		return
	}

	record := recordFromRequest(req)
	h.store.AddMaintenanceRecord(record)
	response.Created(c, record)
}

// History godoc
// @Summary Vehicle maintenance history
// @Tags Maintenance
// @Produce json
// @Param id path string true "Vehicle id"
// @Success 200 {object} response.Envelope
// @Router /vehicles/{id}/history [get]
func (h *VehicleHandler) History(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.VehicleMaintenanceHistory(c.Param("id")), nil)
}

func recordFromRequest(req dto.MaintenanceRecordRequest) models.MaintenanceRecord {
	performedAt := req.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now().UTC()
	}
	return models.MaintenanceRecord{
		ID:          uuid.NewString(),
		VehicleID:   req.VehicleID,
		ServiceType: req.ServiceType,
		Description: req.Description,
		Cost:        req.Cost,
		Mileage:     req.Mileage,
		PerformedAt: performedAt,
		PerformedBy: req.PerformedBy,
		NextDueDate: req.NextDueDate,
		Notes:       req.Notes,
	}
}
