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
	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
)

func TestQuoteHandlerCreateMovesJobToQuoted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New()
	seedJob(st, "job-1", models.StatusPending)
	handler := NewQuoteHandler(st, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/quotes", dto.CreateQuoteRequest{
		ServiceRequestID: "job-1",
		LaborCost:        170,
		PartsCost:        80,
		TravelCost:       15,
	})

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	quotes := st.Quotes()
	require.Len(t, quotes, 1)
	assert.Equal(t, 265.0, quotes[0].TotalCost)
	assert.Equal(t, models.QuotePending, quotes[0].Status)
	assert.False(t, quotes[0].ValidUntil.IsZero())

	job, _ := st.ServiceRequest("job-1")
	assert.Equal(t, models.StatusQuoted, job.Status)
}

func TestQuoteHandlerCreateUnknownJob(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewQuoteHandler(store.New(), zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/quotes", dto.CreateQuoteRequest{ServiceRequestID: "missing"})

	handler.Create(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuoteHandlerPaymentStampsPaidAt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New()
	st.AddQuote(models.Quote{ID: "q-1", ServiceRequestID: "job-1", TotalCost: 200, Status: models.QuoteApproved})
	handler := NewQuoteHandler(st, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, "/quotes/q-1/status", dto.UpdateQuoteStatusRequest{
		Status:        models.QuotePaid,
		PaymentMethod: "card",
	})
	c.Params = gin.Params{{Key: "id", Value: "q-1"}}

	handler.UpdateStatus(c)
	require.Equal(t, http.StatusOK, w.Code)

	quote, _ := st.Quote("q-1")
	require.NotNil(t, quote.PaidAt)
	assert.Equal(t, "card", quote.PaymentMethod)
	assert.Equal(t, 200.0, quote.FinalAmount)
	assert.Equal(t, 0.0, quote.RemainingBalance)
}

func TestQuoteHandlerDepositTracksBalance(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New()
	st.AddQuote(models.Quote{ID: "q-1", ServiceRequestID: "job-1", TotalCost: 500, Status: models.QuoteApproved})
	handler := NewQuoteHandler(st, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, "/quotes/q-1/status", dto.UpdateQuoteStatusRequest{
		Status:        models.QuoteDepositPaid,
		PaymentMethod: "cash",
		DepositAmount: 150,
	})
	c.Params = gin.Params{{Key: "id", Value: "q-1"}}

	handler.UpdateStatus(c)
	require.Equal(t, http.StatusOK, w.Code)

	quote, _ := st.Quote("q-1")
	assert.Equal(t, 150.0, quote.DepositAmount)
	assert.Equal(t, 350.0, quote.RemainingBalance)
	require.NotNil(t, quote.PaidAt)
}

func TestQuoteHandlerEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewQuoteHandler(store.New(), zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/quotes/estimate", dto.QuoteEstimateRequest{ServiceType: "brake_service"})

	handler.Estimate(c)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "brake_service", data["service_type"])
}

func TestQuoteHandlerEstimateUnknownService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewQuoteHandler(store.New(), zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/quotes/estimate", dto.QuoteEstimateRequest{ServiceType: "flux_capacitor"})

	handler.Estimate(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
