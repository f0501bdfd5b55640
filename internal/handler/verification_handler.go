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

// VerificationHandler manages mechanic identity-document submissions.
type VerificationHandler struct {
	store *store.Store
}

// NewVerificationHandler creates a new handler.
func NewVerificationHandler(st *store.Store) *VerificationHandler {
	return &VerificationHandler{store: st}
}

// Submit godoc
// @Summary Submit verification documents
// @Tags Verification
// @Accept json
// @Produce json
// @Param payload body dto.SubmitVerificationRequest true "Submission payload"
// @Success 201 {object} response.Envelope
// @Router /verifications [post]
func (h *VerificationHandler) Submit(c *gin.Context) {
	var req dto.SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid verification payload"))
		return
	}

	verification := models.MechanicVerification{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		FullName:    req.FullName,
		PhotoURI:    req.PhotoURI,
		IDURI:       req.IDURI,
		Status:      models.VerificationPending,
		SubmittedAt: time.Now().UTC(),
	}
	h.store.AddMechanicVerification(verification)
	response.Created(c, verification)
}

// Review godoc
// @Summary Review a verification submission
// @Tags Verification
// @Accept json
// @Produce json
// @Param id path string true "Verification id"
// @Param payload body dto.ReviewVerificationRequest true "Review payload"
// @Success 200 {object} response.Envelope
// @Router /verifications/{id}/review [post]
func (h *VerificationHandler) Review(c *gin.Context) {
	var req dto.ReviewVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid review payload"))
		return
	}

	reviewedBy := ""
	if claims := claimsFromContext(c); claims != nil {
		reviewedBy = claims.UserID
	}

	verificationID := c.Param("id")
	now := time.Now().UTC()
	h.store.UpdateMechanicVerification(verificationID, func(v *models.MechanicVerification) {
		v.Status = req.Status
		v.ReviewedAt = &now
		v.ReviewedBy = reviewedBy
		v.ReviewNotes = req.ReviewNotes
	})

	response.JSON(c, http.StatusOK, gin.H{"id": verificationID, "status": req.Status}, nil)
}

// ForUser godoc
// @Summary Latest verification for a user
// @Tags Verification
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /verifications/user/{id} [get]
func (h *VerificationHandler) ForUser(c *gin.Context) {
	verification, ok := h.store.MechanicVerification(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no verification on file"))
		return
	}
	response.JSON(c, http.StatusOK, verification, nil)
}

// List godoc
// @Summary List verification submissions
// @Tags Verification
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /verifications [get]
func (h *VerificationHandler) List(c *gin.Context) {
	verifications := h.store.AllVerifications()
	response.JSON(c, http.StatusOK, verifications, map[string]interface{}{"count": len(verifications)})
}
