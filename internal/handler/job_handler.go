package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/catalog"
	"github.com/heinicus/mobile-mechanic-api/internal/dto"
	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
)

// JobHandler exposes the job lifecycle over HTTP. All state changes go
// through the engine; the handler adds existence checks, request validation,
// and the advisory completion gate.
type JobHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewJobHandler creates a new handler.
func NewJobHandler(st *store.Store, logger *zap.Logger) *JobHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobHandler{store: st, logger: logger}
}

// Create godoc
// @Summary Create service request
// @Tags Jobs
// @Accept json
// @Produce json
// @Param payload body dto.CreateServiceRequestRequest true "Service request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid service request payload"))
		return
	}

	if req.Urgency == "" {
		req.Urgency = models.UrgencyMedium
	}

	job := models.ServiceRequest{
		ID:                uuid.NewString(),
		Type:              req.Type,
		Description:       req.Description,
		Urgency:           req.Urgency,
		Status:            models.StatusPending,
		CreatedAt:         time.Now().UTC(),
		VehicleID:         req.VehicleID,
		VehicleType:       req.VehicleType,
		VinNumber:         req.VinNumber,
		Location:          req.Location,
		EstimatedDuration: req.EstimatedDuration,
		AIDiagnosis:       req.AIDiagnosis,
		RequiredTools:     toolNames(catalog.RequiredToolsForService(req.Type)),
	}

	h.store.AddServiceRequest(job)
	response.Created(c, job)
}

func toolNames(tools []models.ServiceTool) []string {
	if len(tools) == 0 {
		return nil
	}
	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	return names
}

// List godoc
// @Summary List service requests
// @Tags Jobs
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Envelope
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs := h.store.ServiceRequests()
	if status := c.Query("status"); status != "" {
		filtered := jobs[:0]
		for _, job := range jobs {
			if job.Status == models.ServiceStatus(status) {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}
	response.JSON(c, http.StatusOK, jobs, map[string]interface{}{"count": len(jobs)})
}

// Get godoc
// @Summary Get service request
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, ok := h.store.ServiceRequest(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// UpdateStatus godoc
// @Summary Update job status
// @Description Moves the job to a new lifecycle status. Irregular moves are
// @Description permitted and flagged in the response metadata. Completing a
// @Description job with an unmet checklist is allowed unless enforce=true.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param enforce query bool false "Reject completion when the checklist is unmet"
// @Param payload body dto.UpdateStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /jobs/{id}/status [put]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	jobID := c.Param("id")
	job, ok := h.store.ServiceRequest(jobID)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	if req.MechanicID == "" {
		if claims := claimsFromContext(c); claims != nil {
			req.MechanicID = claims.UserID
		}
	}

	meta := map[string]interface{}{}

	if !store.TransitionAllowed(job.Status, req.Status) {
		h.logger.Warn("irregular status transition",
			zap.String("jobId", jobID),
			zap.String("from", string(job.Status)),
			zap.String("to", string(req.Status)),
		)
		meta["irregular_transition"] = true
	}

	if req.Status == models.StatusCompleted {
		checklist, _ := h.store.JobChecklist(jobID)
		meta["completion_gate_met"] = checklist.Met()
		if !checklist.Met() {
			if c.Query("enforce") == "true" {
				response.Error(c, appErrors.ErrGateUnmet)
				return
			}
			h.logger.Warn("job completed with unmet checklist", zap.String("jobId", jobID))
		}
	}

	h.store.UpdateJobStatus(jobID, req.Status, req.MechanicID, req.Notes)

	updated, _ := h.store.ServiceRequest(jobID)
	response.JSON(c, http.StatusOK, updated, meta)
}

// Cancel godoc
// @Summary Cancel job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param payload body dto.CancelJobRequest true "Cancellation payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id}/cancel [post]
func (h *JobHandler) Cancel(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}

	var req dto.CancelJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cancellation payload"))
		return
	}
	if req.MechanicID == "" {
		if claims := claimsFromContext(c); claims != nil {
			req.MechanicID = claims.UserID
		}
	}

	h.store.CancelJob(jobID, req.Reason, req.MechanicID)

	job, _ := h.store.ServiceRequest(jobID)
	response.JSON(c, http.StatusOK, job, nil)
}

// Timeline godoc
// @Summary Get job status timeline
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/timeline [get]
func (h *JobHandler) Timeline(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}
	response.JSON(c, http.StatusOK, h.store.JobTimeline(jobID), nil)
}

// Duration godoc
// @Summary Get job duration comparison
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/duration [get]
func (h *JobHandler) Duration(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}
	estimated, actual := h.store.JobDuration(jobID)
	response.JSON(c, http.StatusOK, dto.JobDurationResponse{
		EstimatedMinutes: estimated,
		ActualMinutes:    actual,
		TrackedMs:        h.store.TotalJobTime(jobID),
	}, nil)
}

// Checklist godoc
// @Summary Get completion checklist
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id}/checklist [get]
func (h *JobHandler) Checklist(c *gin.Context) {
	checklist, ok := h.store.JobChecklist(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}
	response.JSON(c, http.StatusOK, dto.ChecklistResponse{Checklist: checklist, Met: checklist.Met()}, nil)
}

// CaptureSignature godoc
// @Summary Capture customer signature
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param payload body dto.SignatureRequest true "Signature payload"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/signature [post]
func (h *JobHandler) CaptureSignature(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}

	var req dto.SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid signature payload"))
		return
	}
	if req.CapturedBy == "" {
		req.CapturedBy = "customer"
	}

	h.store.CaptureSignature(jobID, req.SignatureData, req.CapturedBy)

	job, _ := h.store.ServiceRequest(jobID)
	response.JSON(c, http.StatusOK, job, nil)
}

// UpdateTools godoc
// @Summary Replace checked-tools map
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param payload body dto.UpdateToolsRequest true "Tools payload"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/tools [put]
func (h *JobHandler) UpdateTools(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}

	var req dto.UpdateToolsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid tools payload"))
		return
	}

	h.store.UpdateJobTools(jobID, req.ToolsChecked)
	h.toolsStatus(c, jobID)
}

// CompleteToolsCheck godoc
// @Summary Complete the pre-job tools check
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param payload body dto.CompleteToolsCheckRequest true "Notes payload"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/tools/complete [post]
func (h *JobHandler) CompleteToolsCheck(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}

	var req dto.CompleteToolsCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	h.store.CompleteToolsCheck(jobID, req.Notes)
	h.toolsStatus(c, jobID)
}

// ToolsStatus godoc
// @Summary Get tools-check progress
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/tools [get]
func (h *JobHandler) ToolsStatus(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}
	h.toolsStatus(c, jobID)
}

func (h *JobHandler) toolsStatus(c *gin.Context, jobID string) {
	job, _ := h.store.ServiceRequest(jobID)
	response.JSON(c, http.StatusOK, dto.ToolsStatusResponse{
		Status: h.store.JobToolsStatus(jobID),
		Notes:  job.ToolsNotes,
	}, nil)
}

// AddParts godoc
// @Summary Append parts to a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param payload body dto.AddPartsRequest true "Parts payload"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/parts [post]
func (h *JobHandler) AddParts(c *gin.Context) {
	jobID := c.Param("id")
	var req dto.AddPartsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid parts payload"))
		return
	}

	h.store.AddJobParts(jobID, req.Parts)
	h.partsSummary(c, jobID)
}

// ReplaceParts godoc
// @Summary Replace the job's parts list
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param payload body dto.ReplacePartsRequest true "Parts payload"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/parts [put]
func (h *JobHandler) ReplaceParts(c *gin.Context) {
	jobID := c.Param("id")
	var req dto.ReplacePartsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid parts payload"))
		return
	}

	h.store.UpdateJobParts(jobID, req.Parts)
	h.partsSummary(c, jobID)
}

// ListParts godoc
// @Summary List job parts with total cost
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/parts [get]
func (h *JobHandler) ListParts(c *gin.Context) {
	h.partsSummary(c, c.Param("id"))
}

func (h *JobHandler) partsSummary(c *gin.Context, jobID string) {
	parts := h.store.JobParts(jobID)
	response.JSON(c, http.StatusOK, parts, map[string]interface{}{
		"total_cost": store.PartsCost(parts),
		"count":      len(parts),
	})
}

// AddPhotos godoc
// @Summary Append evidence photos to a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param payload body dto.AddPhotosRequest true "Photos payload"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/photos [post]
func (h *JobHandler) AddPhotos(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}

	var req dto.AddPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid photos payload"))
		return
	}

	now := time.Now().UTC()
	for i := range req.Photos {
		if req.Photos[i].ID == "" {
			req.Photos[i].ID = uuid.NewString()
		}
		if req.Photos[i].UploadedAt.IsZero() {
			req.Photos[i].UploadedAt = now
		}
	}

	h.store.AddJobPhotos(jobID, req.Photos)
	response.JSON(c, http.StatusOK, h.store.JobPhotos(jobID), nil)
}

// ListPhotos godoc
// @Summary List job photos
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Param type query string false "Filter by photo type"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/photos [get]
func (h *JobHandler) ListPhotos(c *gin.Context) {
	photos := h.store.JobPhotos(c.Param("id"))
	if photoType := c.Query("type"); photoType != "" {
		filtered := photos[:0]
		for _, photo := range photos {
			if photo.Type == models.PhotoType(photoType) {
				filtered = append(filtered, photo)
			}
		}
		photos = filtered
	}
	response.JSON(c, http.StatusOK, photos, nil)
}

// RemovePhoto godoc
// @Summary Remove a job photo
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Param photoID path string true "Photo id"
// @Success 204 {object} response.Envelope
// @Router /jobs/{id}/photos/{photoID} [delete]
func (h *JobHandler) RemovePhoto(c *gin.Context) {
	h.store.RemoveJobPhoto(c.Param("id"), c.Param("photoID"))
	response.NoContent(c)
}

// AddLog godoc
// @Summary Record a work-timer session
// @Description An entry without an end time represents a running timer.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param payload body dto.AddJobLogRequest true "Work log payload"
// @Success 201 {object} response.Envelope
// @Router /jobs/{id}/logs [post]
func (h *JobHandler) AddLog(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}

	var req dto.AddJobLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid work log payload"))
		return
	}

	start := time.Now().UTC()
	if req.StartTime != nil {
		start = *req.StartTime
	}

	entry := models.JobLog{
		ID:         uuid.NewString(),
		JobID:      jobID,
		MechanicID: req.MechanicID,
		StartTime:  start,
		EndTime:    req.EndTime,
		Activity:   req.Activity,
		Notes:      req.Notes,
	}
	h.store.AddJobLog(entry)
	response.Created(c, entry)
}

// UpdateLog godoc
// @Summary Patch a work-timer session
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param logID path string true "Log id"
// @Param payload body dto.UpdateJobLogRequest true "Patch payload"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/logs/{logID} [put]
func (h *JobHandler) UpdateLog(c *gin.Context) {
	var req dto.UpdateJobLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid patch payload"))
		return
	}

	h.store.UpdateJobLog(c.Param("logID"), store.JobLogUpdate{
		EndTime:  req.EndTime,
		Activity: req.Activity,
		Notes:    req.Notes,
	})
	response.JSON(c, http.StatusOK, h.store.JobLogs(c.Param("id")), nil)
}

// ListLogs godoc
// @Summary List work-timer sessions
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/logs [get]
func (h *JobHandler) ListLogs(c *gin.Context) {
	jobID := c.Param("id")
	logs := h.store.JobLogs(jobID)
	meta := map[string]interface{}{
		"total_ms": h.store.TotalJobTime(jobID),
	}
	if active := h.store.ActiveJobTimer(jobID); active != nil {
		meta["active_timer_id"] = active.ID
	}
	response.JSON(c, http.StatusOK, logs, meta)
}
