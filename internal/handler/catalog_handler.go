package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heinicus/mobile-mechanic-api/internal/catalog"
	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/service"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
)

// CatalogHandler serves the service catalog, tool requirements, and
// standard pricing.
type CatalogHandler struct {
	config *service.ConfigService
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(config *service.ConfigService) *CatalogHandler {
	return &CatalogHandler{config: config}
}

// Services godoc
// @Summary List service catalog
// @Tags Catalog
// @Produce json
// @Param vehicle_type query string false "Filter by vehicle type"
// @Success 200 {object} response.Envelope
// @Router /catalog/services [get]
func (h *CatalogHandler) Services(c *gin.Context) {
	var services []models.ServiceCategory
	if vehicleType := c.Query("vehicle_type"); vehicleType != "" {
		vt := models.VehicleType(vehicleType)
		if h.config != nil {
			if vt == models.VehicleScooter && !h.config.FeatureEnabled("show_scooter_support") {
				response.JSON(c, http.StatusOK, []models.ServiceCategory{}, nil)
				return
			}
			if vt == models.VehicleMotorcycle && !h.config.FeatureEnabled("show_motorcycle_support") {
				response.JSON(c, http.StatusOK, []models.ServiceCategory{}, nil)
				return
			}
		}
		services = catalog.ServicesForVehicleType(vt)
	} else {
		services = catalog.Services()
	}
	response.JSON(c, http.StatusOK, services, map[string]interface{}{"count": len(services)})
}

// Service godoc
// @Summary Get one catalog service
// @Tags Catalog
// @Produce json
// @Param id path string true "Service id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /catalog/services/{id} [get]
func (h *CatalogHandler) Service(c *gin.Context) {
	svc, ok := catalog.ServiceByID(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "unknown service type"))
		return
	}
	response.JSON(c, http.StatusOK, svc, nil)
}

// Tools godoc
// @Summary Tools for a service type
// @Tags Catalog
// @Produce json
// @Param id path string true "Service id"
// @Param vehicle_type query string false "Vehicle type for loadout suggestions"
// @Success 200 {object} response.Envelope
// @Router /catalog/services/{id}/tools [get]
func (h *CatalogHandler) Tools(c *gin.Context) {
	serviceType := c.Param("id")
	meta := map[string]interface{}{}
	if vehicleType := c.Query("vehicle_type"); vehicleType != "" {
		meta["loadout"] = catalog.ToolLoadoutSuggestions(serviceType, models.VehicleType(vehicleType))
	}
	response.JSON(c, http.StatusOK, catalog.ToolsForService(serviceType), meta)
}

// Pricing godoc
// @Summary Standard pricing for a service type
// @Tags Catalog
// @Produce json
// @Param id path string true "Service id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /catalog/services/{id}/pricing [get]
func (h *CatalogHandler) Pricing(c *gin.Context) {
	pricing, ok := catalog.PricingForService(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no standard pricing for this service type"))
		return
	}
	response.JSON(c, http.StatusOK, pricing, nil)
}
