package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

type syncAuditWriter struct {
	mu      sync.Mutex
	entries []*models.AuditLog
}

func (w *syncAuditWriter) Insert(ctx context.Context, entry *models.AuditLog) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries, entry)
	return nil
}

func (w *syncAuditWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

func (w *syncAuditWriter) first() *models.AuditLog {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.entries) == 0 {
		return nil
	}
	return w.entries[0]
}

func TestEventRecorderWritesAuditRows(t *testing.T) {
	audit := &syncAuditWriter{}
	recorder := NewEventRecorder(audit, nil, zap.NewNop())
	recorder.Start(context.Background())
	defer recorder.Stop()

	recorder.Event("job_status_updated", map[string]interface{}{"id": "job-1", "status": "in_progress"})

	require.Eventually(t, func() bool {
		return audit.count() == 1
	}, time.Second, 10*time.Millisecond)

	entry := audit.first()
	assert.Equal(t, "job_status_updated", entry.Action)
	assert.Equal(t, "jobs", entry.Resource)
	require.NotNil(t, entry.ResourceID)
	assert.Equal(t, "job-1", *entry.ResourceID)
	assert.Contains(t, string(entry.NewValues), "in_progress")
}

func TestEventRecorderWithoutAuditWriter(t *testing.T) {
	recorder := NewEventRecorder(nil, NewMetricsService(), zap.NewNop())
	recorder.Start(context.Background())
	defer recorder.Stop()

	// Must not panic or block.
	recorder.Event("quote_added", map[string]interface{}{"id": "q-1"})
}

func TestResourceForEvent(t *testing.T) {
	cases := map[string]string{
		"service_request_added":         "jobs",
		"job_photos_added":              "jobs",
		"tools_check_completed":         "jobs",
		"quote_updated":                 "quotes",
		"vehicle_removed":               "vehicles",
		"maintenance_record_added":      "vehicles",
		"mechanic_verification_updated": "verifications",
		"contact_updated":               "contact",
		"something_else":                "engine",
	}
	for event, want := range cases {
		assert.Equal(t, want, resourceForEvent(event), event)
	}
}
