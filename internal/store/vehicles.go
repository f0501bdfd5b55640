package store

import (
	"sort"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

// SetContact replaces the customer profile.
func (s *Store) SetContact(contact models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contact = &contact
	s.persistLocked()
	s.emit("contact_updated", map[string]interface{}{"contactId": contact.ID})
}

// Contact returns the customer profile, if set.
func (s *Store) Contact() (models.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contact == nil {
		return models.Contact{}, false
	}
	return *s.contact, true
}

// AddVehicle registers a vehicle.
func (s *Store) AddVehicle(vehicle models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vehicles = append(s.vehicles, vehicle)
	s.persistLocked()
	s.emit("vehicle_added", map[string]interface{}{
		"vehicleId": vehicle.ID,
		"make":      vehicle.Make,
		"model":     vehicle.Model,
		"year":      vehicle.Year,
	})
}

// UpdateVehicle applies a partial update via the mutator.
func (s *Store) UpdateVehicle(id string, mutate func(*models.Vehicle)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			mutate(&s.vehicles[i])
			s.persistLocked()
			s.emit("vehicle_updated", map[string]interface{}{"vehicleId": id})
			return
		}
	}
}

// RemoveVehicle deletes a vehicle and cascades to its maintenance reminders
// and records. The only destructive cascade in the engine; jobs and quotes
// are never deleted.
func (s *Store) RemoveVehicle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles := s.vehicles[:0]
	for _, v := range s.vehicles {
		if v.ID != id {
			vehicles = append(vehicles, v)
		}
	}
	s.vehicles = vehicles

	history := s.maintenanceHistory[:0]
	for _, r := range s.maintenanceHistory {
		if r.VehicleID != id {
			history = append(history, r)
		}
	}
	s.maintenanceHistory = history

	reminders := s.maintenanceReminders[:0]
	for _, r := range s.maintenanceReminders {
		if r.VehicleID != id {
			reminders = append(reminders, r)
		}
	}
	s.maintenanceReminders = reminders

	s.persistLocked()
	s.emit("vehicle_removed", map[string]interface{}{"vehicleId": id})
}

// Vehicle returns a copy of the vehicle, if present.
func (s *Store) Vehicle(id string) (models.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			return s.vehicles[i], true
		}
	}
	return models.Vehicle{}, false
}

// Vehicles lists every vehicle on file.
func (s *Store) Vehicles() []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// AddMaintenanceReminder schedules upcoming service for a vehicle.
func (s *Store) AddMaintenanceReminder(reminder models.MaintenanceReminder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maintenanceReminders = append(s.maintenanceReminders, reminder)
	s.persistLocked()
	s.emit("maintenance_reminder_added", map[string]interface{}{
		"reminderId":  reminder.ID,
		"vehicleId":   reminder.VehicleID,
		"serviceType": reminder.ServiceType,
	})
}

// UpdateMaintenanceReminder applies a partial update via the mutator.
func (s *Store) UpdateMaintenanceReminder(id string, mutate func(*models.MaintenanceReminder)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.maintenanceReminders {
		if s.maintenanceReminders[i].ID == id {
			mutate(&s.maintenanceReminders[i])
			s.persistLocked()
			return
		}
	}
}

// RemoveMaintenanceReminder deletes a reminder by id.
func (s *Store) RemoveMaintenanceReminder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders := s.maintenanceReminders[:0]
	for _, r := range s.maintenanceReminders {
		if r.ID != id {
			reminders = append(reminders, r)
		}
	}
	s.maintenanceReminders = reminders
	s.persistLocked()
}

// MarkReminderSent flags a reminder as notified.
func (s *Store) MarkReminderSent(id string) {
	s.UpdateMaintenanceReminder(id, func(r *models.MaintenanceReminder) {
		r.ReminderSent = true
	})
}

// AddMaintenanceRecord appends a completed service entry and rolls the
// owning vehicle's last/next service dates forward.
func (s *Store) AddMaintenanceRecord(record models.MaintenanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maintenanceHistory = append(s.maintenanceHistory, record)
	s.applyRecordToVehicleLocked(record)
	s.persistLocked()
	s.emit("maintenance_record_added", map[string]interface{}{
		"recordId":    record.ID,
		"vehicleId":   record.VehicleID,
		"serviceType": record.ServiceType,
		"cost":        record.Cost,
	})
}

// UpdateMaintenanceRecord applies a partial update via the mutator.
func (s *Store) UpdateMaintenanceRecord(id string, mutate func(*models.MaintenanceRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.maintenanceHistory {
		if s.maintenanceHistory[i].ID == id {
			mutate(&s.maintenanceHistory[i])
			s.persistLocked()
			return
		}
	}
}

// CompleteMaintenanceReminder marks the reminder done and records the
// service performed in its place, in one action.
func (s *Store) CompleteMaintenanceReminder(reminderID string, record models.MaintenanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := range s.maintenanceReminders {
		if s.maintenanceReminders[i].ID == reminderID {
			s.maintenanceReminders[i].Completed = true
			s.maintenanceReminders[i].CompletedAt = &now
			break
		}
	}

	s.maintenanceHistory = append(s.maintenanceHistory, record)
	s.applyRecordToVehicleLocked(record)
	s.persistLocked()
	s.emit("maintenance_reminder_completed", map[string]interface{}{
		"reminderId":      reminderID,
		"serviceRecordId": record.ID,
		"vehicleId":       record.VehicleID,
	})
}

func (s *Store) applyRecordToVehicleLocked(record models.MaintenanceRecord) {
	for i := range s.vehicles {
		if s.vehicles[i].ID == record.VehicleID {
			performed := record.PerformedAt
			s.vehicles[i].LastServiceDate = &performed
			s.vehicles[i].NextServiceDue = record.NextDueDate
			return
		}
	}
}

// VehicleMaintenanceHistory returns the vehicle's records, newest first.
func (s *Store) VehicleMaintenanceHistory(vehicleID string) []models.MaintenanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.MaintenanceRecord
	for _, r := range s.maintenanceHistory {
		if r.VehicleID == vehicleID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PerformedAt.After(out[j].PerformedAt)
	})
	return out
}

// UpcomingMaintenance returns the vehicle's open reminders due today or
// later, soonest first.
func (s *Store) UpcomingMaintenance(vehicleID string) []models.MaintenanceReminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()
	var out []models.MaintenanceReminder
	for _, r := range s.maintenanceReminders {
		if r.VehicleID == vehicleID && !r.Completed && !r.DueDate.Before(today) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}
