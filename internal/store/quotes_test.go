package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

func paidQuote(id string, total float64, paidAt time.Time) models.Quote {
	return models.Quote{
		ID:               id,
		ServiceRequestID: "job-" + id,
		TotalCost:        total,
		Status:           models.QuotePaid,
		PaidAt:           &paidAt,
		CreatedAt:        paidAt.Add(-24 * time.Hour),
	}
}

func TestTotalRevenueCountsPaidStatusesOnly(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)

	day := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.AddQuote(paidQuote("q1", 100, day))

	deposit := paidQuote("q2", 50, day)
	deposit.Status = models.QuoteDepositPaid
	s.AddQuote(deposit)

	pending := paidQuote("q3", 999, day)
	pending.Status = models.QuotePending
	pending.PaidAt = nil
	s.AddQuote(pending)

	// paid status without a PaidAt never counts
	unstamped := paidQuote("q4", 500, day)
	unstamped.PaidAt = nil
	s.AddQuote(unstamped)

	assert.Equal(t, 150.0, s.TotalRevenue(nil, nil))
}

func TestTotalRevenueInclusiveBounds(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	s.AddQuote(paidQuote("q1", 10, start))                   // exactly on start, included
	s.AddQuote(paidQuote("q2", 20, end))                     // exactly on end, included
	s.AddQuote(paidQuote("q3", 40, start.Add(-time.Second))) // before window
	s.AddQuote(paidQuote("q4", 80, end.Add(time.Second)))    // after window

	assert.Equal(t, 30.0, s.TotalRevenue(&start, &end))
	assert.Equal(t, 70.0, s.TotalRevenue(nil, &end))
	assert.Equal(t, 110.0, s.TotalRevenue(&start, nil))

	// repeated reads do not mutate anything
	assert.Equal(t, 30.0, s.TotalRevenue(&start, &end))
}

func TestPaymentHistoryNewestFirst(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)

	day := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.AddQuote(paidQuote("old", 10, day))
	s.AddQuote(paidQuote("new", 20, day.Add(48*time.Hour)))
	s.AddQuote(paidQuote("mid", 30, day.Add(24*time.Hour)))

	unpaid := paidQuote("unpaid", 40, day)
	unpaid.Status = models.QuoteAccepted
	s.AddQuote(unpaid)

	history := s.PaymentHistory()
	require.Len(t, history, 3)
	assert.Equal(t, "new", history[0].ID)
	assert.Equal(t, "mid", history[1].ID)
	assert.Equal(t, "old", history[2].ID)
}

func TestUpdateQuoteMutator(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)

	s.AddQuote(models.Quote{ID: "q1", ServiceRequestID: "j1", TotalCost: 200, Status: models.QuotePending})

	now := clock.Now()
	s.UpdateQuote("q1", func(q *models.Quote) {
		q.Status = models.QuotePaid
		q.PaidAt = &now
	})

	q, ok := s.Quote("q1")
	require.True(t, ok)
	assert.Equal(t, models.QuotePaid, q.Status)

	byStatus := s.QuotesByStatus(models.QuotePaid)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "q1", byStatus[0].ID)
}
