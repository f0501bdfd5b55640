package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
	"github.com/heinicus/mobile-mechanic-api/pkg/storage"
)

func newTestMediaHandler(t *testing.T, st *store.Store) *MediaHandler {
	t.Helper()
	photos, err := storage.NewPhotoStore(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Hour)
	return NewMediaHandler(st, photos, signer, zap.NewNop())
}

func multipartPhotoRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("photo", "brakes.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestMediaHandlerUploadAndServe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New()
	seedJob(st, "job-1", models.StatusInProgress)
	handler := newTestMediaHandler(t, st)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartPhotoRequest(t, "/jobs/job-1/photos/upload", map[string]string{
		"type":    "after",
		"caption": "new pads installed",
	})
	c.Params = gin.Params{{Key: "id", Value: "job-1"}}

	handler.Upload(c)
	require.Equal(t, http.StatusCreated, w.Code)

	photos := st.JobPhotos("job-1")
	require.Len(t, photos, 1)
	assert.Equal(t, models.PhotoAfter, photos[0].Type)
	assert.Equal(t, "new pads installed", photos[0].Caption)
	require.True(t, strings.HasPrefix(photos[0].URL, "/media/"))

	token := strings.TrimPrefix(photos[0].URL, "/media/")
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, photos[0].URL, nil)
	c.Params = gin.Params{{Key: "token", Value: token}}

	handler.Serve(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image-bytes", w.Body.String())
}

func TestMediaHandlerUploadUnknownJob(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestMediaHandler(t, store.New())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartPhotoRequest(t, "/jobs/missing/photos/upload", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Upload(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMediaHandlerServeRejectsBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestMediaHandler(t, store.New())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/media/garbage", nil)
	c.Params = gin.Params{{Key: "token", Value: "garbage"}}

	handler.Serve(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
