package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
	appErrors "github.com/heinicus/mobile-mechanic-api/pkg/errors"
)

func TestStatusBreakdown(t *testing.T) {
	st := store.New()
	st.AddServiceRequest(models.ServiceRequest{ID: "j1", Status: models.StatusPending})
	st.AddServiceRequest(models.ServiceRequest{ID: "j2", Status: models.StatusInProgress})
	st.AddServiceRequest(models.ServiceRequest{ID: "j3", Status: models.StatusInProgress})
	svc := NewAnalyticsService(st, nil, nil, zap.NewNop())

	breakdown, cached, err := svc.StatusBreakdown(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 3, breakdown.Total)
	assert.Equal(t, 1, breakdown.Counts[models.StatusPending])
	assert.Equal(t, 2, breakdown.Counts[models.StatusInProgress])
}

func TestRevenueByMonth(t *testing.T) {
	st := store.New()
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	janLate := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	st.AddQuote(models.Quote{ID: "q1", TotalCost: 100, Status: models.QuotePaid, PaidAt: &jan})
	st.AddQuote(models.Quote{ID: "q2", TotalCost: 50, Status: models.QuoteDepositPaid, PaidAt: &janLate})
	st.AddQuote(models.Quote{ID: "q3", TotalCost: 75, Status: models.QuotePaid, PaidAt: &feb})
	st.AddQuote(models.Quote{ID: "q4", TotalCost: 999, Status: models.QuotePending})
	svc := NewAnalyticsService(st, nil, nil, zap.NewNop())

	months, cached, err := svc.RevenueByMonth(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	require.Len(t, months, 2)
	assert.Equal(t, "2026-02", months[0].Month)
	assert.Equal(t, 75.0, months[0].Total)
	assert.Equal(t, 1, months[0].PaymentCount)
	assert.Equal(t, "2026-01", months[1].Month)
	assert.Equal(t, 150.0, months[1].Total)
	assert.Equal(t, 2, months[1].PaymentCount)
}

type stubCacheRepo struct {
	sets    int
	deletes []string
}

func (s *stubCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	return appErrors.ErrCacheMiss
}

func (s *stubCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s.sets++
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	s.deletes = append(s.deletes, pattern)
	return nil
}

func TestStatusBreakdownPopulatesCache(t *testing.T) {
	st := store.New()
	st.AddServiceRequest(models.ServiceRequest{ID: "j1", Status: models.StatusPending})
	repo := &stubCacheRepo{}
	cache := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	svc := NewAnalyticsService(st, cache, nil, zap.NewNop())

	_, cached, err := svc.StatusBreakdown(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, repo.sets)

	svc.InvalidateSummaries(context.Background())
	assert.Equal(t, []string{"dispatch:*"}, repo.deletes)
}

func TestSystemMetricsSnapshot(t *testing.T) {
	metrics := NewMetricsService()
	metrics.ObserveHTTPRequest("GET", "/api/jobs", 200, 25*time.Millisecond)
	metrics.RecordEngineEvent("job_status_updated")
	svc := NewAnalyticsService(store.New(), nil, metrics, zap.NewNop())

	snap := svc.SystemMetrics()
	assert.Equal(t, uint64(1), snap.RequestsTotal)
	assert.Equal(t, uint64(1), snap.EngineEvents)
	assert.False(t, snap.GeneratedAt.IsZero())
}
