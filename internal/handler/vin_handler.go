package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heinicus/mobile-mechanic-api/internal/dto"
	"github.com/heinicus/mobile-mechanic-api/internal/service"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
)

// VinHandler exposes license-plate decoding.
type VinHandler struct {
	vin    *service.VinService
	config *service.ConfigService
}

// NewVinHandler creates a new handler.
func NewVinHandler(vin *service.VinService, config *service.ConfigService) *VinHandler {
	return &VinHandler{vin: vin, config: config}
}

// DecodePlate godoc
// @Summary Decode a license plate
// @Description Unknown plates return a low-confidence result rather than an
// @Description error so the client can fall back to manual VIN entry.
// @Tags VIN
// @Accept json
// @Produce json
// @Param payload body dto.PlateDecodeRequest true "Plate payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /vin/decode-plate [post]
func (h *VinHandler) DecodePlate(c *gin.Context) {
	if h.config != nil && !h.config.FeatureEnabled("enable_vin_check") {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "VIN lookup is disabled"))
		return
	}

	var req dto.PlateDecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid plate payload"))
		return
	}

	result, err := h.vin.DecodeFromPlate(c.Request.Context(), req.Plate, req.State)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// SupportedStates godoc
// @Summary List states supported for plate lookup
// @Tags VIN
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /vin/states [get]
func (h *VinHandler) SupportedStates(c *gin.Context) {
	states := h.vin.SupportedStates()
	response.JSON(c, http.StatusOK, states, map[string]interface{}{"count": len(states)})
}

// ValidatePlate godoc
// @Summary Validate a plate format
// @Tags VIN
// @Produce json
// @Param plate query string true "License plate"
// @Param state query string true "State code"
// @Success 200 {object} response.Envelope
// @Router /vin/validate-plate [get]
func (h *VinHandler) ValidatePlate(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.vin.ValidatePlate(c.Query("plate"), c.Query("state")), nil)
}
