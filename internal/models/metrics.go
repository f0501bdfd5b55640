package models

import "time"

// SystemMetrics is an aggregated instrumentation snapshot served to admins.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	EngineEvents             uint64    `json:"engine_events"`
	DBQueryCount             uint64    `json:"db_query_count"`
	AverageDBQueryDurationMs float64   `json:"average_db_query_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// JobStatusBreakdown counts service requests per lifecycle status.
type JobStatusBreakdown struct {
	Counts      map[ServiceStatus]int `json:"counts"`
	Total       int                   `json:"total"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// MonthlyRevenue aggregates paid quotes for one calendar month.
type MonthlyRevenue struct {
	Month        string  `json:"month"` // YYYY-MM
	Total        float64 `json:"total"`
	PaymentCount int     `json:"payment_count"`
}
