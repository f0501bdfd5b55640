package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/dto"
	"github.com/heinicus/mobile-mechanic-api/internal/service"
)

func TestConfigHandlerSetFlagAndTravelFee(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := service.NewConfigService(zap.NewNop())
	handler := NewConfigHandler(cfg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, "/settings/flags", dto.SetFlagRequest{Key: "enable_vin_check", Value: false})

	handler.SetFlag(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, cfg.FeatureEnabled("enable_vin_check"))

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/settings/travel-fee?miles=10", nil)

	handler.TravelFee(c)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, 15.0, data["fee"])
}

func TestConfigHandlerSetRateRejectsNegative(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := service.NewConfigService(zap.NewNop())
	handler := NewConfigHandler(cfg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, "/settings/rates", dto.SetRateRequest{Key: "rate_per_mile", Value: -2})

	handler.SetRate(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVinHandlerDisabledByFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := service.NewConfigService(zap.NewNop())
	require.NoError(t, cfg.SetFlag("enable_vin_check", false))
	handler := NewVinHandler(service.NewVinService(zap.NewNop()), cfg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/vin/decode-plate", dto.PlateDecodeRequest{Plate: "ABC123", State: "CA"})

	handler.DecodePlate(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVinHandlerDecodePlate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := service.NewConfigService(zap.NewNop())
	handler := NewVinHandler(service.NewVinService(zap.NewNop()), cfg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/vin/decode-plate", dto.PlateDecodeRequest{Plate: "XYZ789", State: "CA"})

	handler.DecodePlate(c)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Honda", data["make"])
}
