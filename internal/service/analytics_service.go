package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
)

// AnalyticsService computes dispatch summaries over the engine state with
// cache integration for repeat dashboard reads.
type AnalyticsService struct {
	store   *store.Store
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAnalyticsService constructs an analytics service.
func NewAnalyticsService(st *store.Store, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{store: st, cache: cache, metrics: metrics, logger: logger}
}

// StatusBreakdown counts service requests by lifecycle status. The boolean
// indicates whether data originated from cache.
func (s *AnalyticsService) StatusBreakdown(ctx context.Context) (models.JobStatusBreakdown, bool, error) {
	cacheKey := makeAnalyticsCacheKey("status_breakdown")
	var cached models.JobStatusBreakdown
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return models.JobStatusBreakdown{}, false, fmt.Errorf("get status breakdown cache: %w", err)
		} else if hit {
			return cached, true, nil
		}
	}

	requests := s.store.ServiceRequests()
	breakdown := models.JobStatusBreakdown{
		Counts:      make(map[models.ServiceStatus]int, 8),
		Total:       len(requests),
		GeneratedAt: time.Now().UTC(),
	}
	for _, req := range requests {
		breakdown.Counts[req.Status]++
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, breakdown, 0); err != nil && s.logger != nil {
			s.logger.Warn("cache status breakdown", zap.Error(err))
		}
	}
	return breakdown, false, nil
}

// RevenueByMonth aggregates paid quotes into calendar-month buckets, newest first.
func (s *AnalyticsService) RevenueByMonth(ctx context.Context) ([]models.MonthlyRevenue, bool, error) {
	cacheKey := makeAnalyticsCacheKey("revenue_by_month")
	var cached []models.MonthlyRevenue
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
			return nil, false, fmt.Errorf("get revenue cache: %w", err)
		} else if hit {
			return cached, true, nil
		}
	}

	buckets := make(map[string]*models.MonthlyRevenue)
	for _, quote := range s.store.PaymentHistory() {
		month := quote.PaidAt.UTC().Format("2006-01")
		bucket, ok := buckets[month]
		if !ok {
			bucket = &models.MonthlyRevenue{Month: month}
			buckets[month] = bucket
		}
		bucket.Total += quote.TotalCost
		bucket.PaymentCount++
	}

	months := make([]models.MonthlyRevenue, 0, len(buckets))
	for _, bucket := range buckets {
		months = append(months, *bucket)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month > months[j].Month
	})

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, months, 0); err != nil && s.logger != nil {
			s.logger.Warn("cache monthly revenue", zap.Error(err))
		}
	}
	return months, false, nil
}

// InvalidateSummaries drops cached dashboard aggregates. Called after engine
// mutations so the next read recomputes.
func (s *AnalyticsService) InvalidateSummaries(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, "dispatch:*"); err != nil && s.logger != nil {
		s.logger.Warn("invalidate dispatch summaries", zap.Error(err))
	}
}

// SystemMetrics returns the instrumentation snapshot.
func (s *AnalyticsService) SystemMetrics() models.SystemMetrics {
	if s.metrics == nil {
		return models.SystemMetrics{}
	}
	return s.metrics.Snapshot()
}

func makeAnalyticsCacheKey(parts ...string) string {
	key := "dispatch"
	for _, part := range parts {
		if part == "" {
			continue
		}
		key += ":" + part
	}
	return key
}
