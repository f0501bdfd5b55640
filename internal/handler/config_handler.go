package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heinicus/mobile-mechanic-api/internal/dto"
	"github.com/heinicus/mobile-mechanic-api/internal/service"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
)

// ConfigHandler exposes the runtime settings endpoints.
type ConfigHandler struct {
	service *service.ConfigService
}

// NewConfigHandler creates a new handler.
func NewConfigHandler(svc *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{service: svc}
}

// Settings godoc
// @Summary Get runtime settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings [get]
func (h *ConfigHandler) Settings(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Settings(), nil)
}

// SetFlag godoc
// @Summary Toggle a boolean setting
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.SetFlagRequest true "Flag payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings/flags [put]
func (h *ConfigHandler) SetFlag(c *gin.Context) {
	var req dto.SetFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid flag payload"))
		return
	}

	if err := h.service.SetFlag(req.Key, req.Value); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.service.Settings(), nil)
}

// SetRate godoc
// @Summary Update a numeric setting
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.SetRateRequest true "Rate payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings/rates [put]
func (h *ConfigHandler) SetRate(c *gin.Context) {
	var req dto.SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid rate payload"))
		return
	}

	if err := h.service.SetRate(req.Key, req.Value); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.service.Settings(), nil)
}

// TravelFee godoc
// @Summary Compute travel fee for a trip
// @Tags Settings
// @Produce json
// @Param miles query number true "Trip distance in miles"
// @Success 200 {object} response.Envelope
// @Router /settings/travel-fee [get]
func (h *ConfigHandler) TravelFee(c *gin.Context) {
	var query dto.TravelFeeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "miles query parameter required"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"miles": query.Miles,
		"fee":   h.service.TravelFee(query.Miles),
	}, nil)
}
