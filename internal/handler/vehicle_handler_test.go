package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heinicus/mobile-mechanic-api/internal/dto"
	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
)

func TestVehicleHandlerCompleteReminderByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New()
	st.AddVehicle(models.Vehicle{ID: "veh-1", Make: "Honda", Model: "Civic", Year: 2019})
	st.AddMaintenanceReminder(models.MaintenanceReminder{
		ID:          "rem-1",
		VehicleID:   "veh-1",
		ServiceType: "oil_change",
		DueDate:     time.Now().UTC().Add(48 * time.Hour),
	})
	handler := NewVehicleHandler(st)

	router := gin.New()
	router.POST("/vehicles/:id/reminders/:reminderID/complete", handler.CompleteReminder)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/vehicles/veh-1/reminders/rem-1/complete", dto.CompleteReminderRequest{
		Record: dto.MaintenanceRecordRequest{
			VehicleID:   "veh-1",
			ServiceType: "oil_change",
			Cost:        85,
			Mileage:     42000,
			PerformedBy: "mech-1",
		},
	}))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, st.UpcomingMaintenance("veh-1"))

	history := st.VehicleMaintenanceHistory("veh-1")
	require.Len(t, history, 1)
	assert.Equal(t, "oil_change", history[0].ServiceType)

	vehicle, ok := st.Vehicle("veh-1")
	require.True(t, ok)
	require.NotNil(t, vehicle.LastServiceDate)
}
