package handler

import (
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
	"github.com/heinicus/mobile-mechanic-api/pkg/storage"
)

// MediaHandler stores uploaded job photos on disk and serves them back
// through signed links, so the photo tracker can reference real files
// instead of opaque client URLs.
type MediaHandler struct {
	store  *store.Store
	photos *storage.PhotoStore
	signer *storage.SignedURLSigner
	logger *zap.Logger
}

// NewMediaHandler creates a new handler.
func NewMediaHandler(st *store.Store, photos *storage.PhotoStore, signer *storage.SignedURLSigner, logger *zap.Logger) *MediaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaHandler{store: st, photos: photos, signer: signer, logger: logger}
}

// Upload godoc
// @Summary Upload a job photo
// @Description Accepts a multipart photo, stores it and attaches it to the
// @Description job with a signed download URL.
// @Tags Jobs
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Job id"
// @Param photo formData file true "Photo file"
// @Param type formData string false "Photo type (before, during, after, parts, damage)"
// @Param caption formData string false "Caption"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id}/photos/upload [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	jobID := c.Param("id")
	if _, ok := h.store.ServiceRequest(jobID); !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "service request not found"))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "photo file required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to read upload"))
		return
	}
	defer file.Close() //nolint:errcheck

	photoID := uuid.NewString()
	relPath, err := h.photos.Save(jobID, photoID, fileHeader.Filename, file)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to store photo"))
		return
	}

	token, expiresAt, err := h.signer.Generate(jobID, relPath)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to sign photo link"))
		return
	}

	photoType := models.PhotoType(c.PostForm("type"))
	if photoType == "" {
		photoType = models.PhotoDuring
	}

	uploadedBy := "customer"
	if claims := claimsFromContext(c); claims != nil {
		uploadedBy = claims.UserID
	}

	photo := models.JobPhoto{
		ID:         photoID,
		URL:        "/media/" + token,
		Type:       photoType,
		Caption:    c.PostForm("caption"),
		UploadedAt: time.Now().UTC(),
		UploadedBy: uploadedBy,
	}
	h.store.AddJobPhotos(jobID, []models.JobPhoto{photo})

	response.JSON(c, http.StatusCreated, photo, map[string]interface{}{"expires_at": expiresAt})
}

// Serve godoc
// @Summary Download a job photo by signed token
// @Tags Jobs
// @Produce image/jpeg
// @Param token path string true "Signed media token"
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Router /media/{token} [get]
func (h *MediaHandler) Serve(c *gin.Context) {
	_, relPath, _, err := h.signer.Parse(c.Param("token"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, http.StatusUnauthorized, "invalid media link"))
		return
	}

	file, err := h.photos.Open(relPath)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "photo not found"))
		return
	}
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to read photo"))
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(relPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, info.Size(), contentType, file, nil)
}
