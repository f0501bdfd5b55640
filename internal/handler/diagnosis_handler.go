package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heinicus/mobile-mechanic-api/internal/service"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
)

// DiagnosisHandler exposes the symptom-analysis endpoint.
type DiagnosisHandler struct {
	service *service.DiagnosisService
}

// NewDiagnosisHandler creates a new handler.
func NewDiagnosisHandler(svc *service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{service: svc}
}

// Diagnose godoc
// @Summary Analyze vehicle symptoms
// @Tags Diagnosis
// @Accept json
// @Produce json
// @Param payload body service.DiagnosisRequest true "Symptoms payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /diagnosis [post]
func (h *DiagnosisHandler) Diagnose(c *gin.Context) {
	var req service.DiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid diagnosis payload"))
		return
	}

	result, err := h.service.Diagnose(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
