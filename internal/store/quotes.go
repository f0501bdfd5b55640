package store

import (
	"sort"
	"time"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

// AddQuote registers a priced proposal for a service request.
func (s *Store) AddQuote(quote models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotes = append(s.quotes, quote)
	s.persistLocked()
	s.emit("quote_added", map[string]interface{}{
		"quoteId":          quote.ID,
		"serviceRequestId": quote.ServiceRequestID,
		"totalCost":        quote.TotalCost,
	})
}

// UpdateQuote applies a partial update to a quote via the mutator. Payment
// status moves (deposit_paid, paid with PaidAt) ride through here.
func (s *Store) UpdateQuote(id string, mutate func(*models.Quote)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quotes {
		if s.quotes[i].ID == id {
			mutate(&s.quotes[i])
			now := s.now()
			s.quotes[i].UpdatedAt = &now
			s.persistLocked()
			s.emit("quote_updated", map[string]interface{}{
				"quoteId":   id,
				"newStatus": string(s.quotes[i].Status),
			})
			return
		}
	}
}

// Quote returns a copy of the quote, if present.
func (s *Store) Quote(id string) (models.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quotes {
		if s.quotes[i].ID == id {
			return s.quotes[i], true
		}
	}
	return models.Quote{}, false
}

// Quotes lists every quote in insertion order.
func (s *Store) Quotes() []models.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// QuotesByStatus filters quotes by payment status.
func (s *Store) QuotesByStatus(status models.QuoteStatus) []models.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Quote
	for _, q := range s.quotes {
		if q.Status == status {
			out = append(out, q)
		}
	}
	return out
}

// TotalRevenue sums TotalCost over paid and deposit_paid quotes whose PaidAt
// falls inside the optional bounds. Both bounds are inclusive: a quote is
// excluded only when PaidAt is strictly before the start or strictly after
// the end.
func (s *Store) TotalRevenue(startDate, endDate *time.Time) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, q := range s.quotes {
		if !models.PaidStatuses[q.Status] || q.PaidAt == nil {
			continue
		}
		if startDate != nil && q.PaidAt.Before(*startDate) {
			continue
		}
		if endDate != nil && q.PaidAt.After(*endDate) {
			continue
		}
		total += q.TotalCost
	}
	return total
}

// PaymentHistory returns paid and deposit_paid quotes sorted by PaidAt
// descending.
func (s *Store) PaymentHistory() []models.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Quote
	for _, q := range s.quotes {
		if models.PaidStatuses[q.Status] && q.PaidAt != nil {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PaidAt.After(*out[j].PaidAt)
	})
	return out
}
