package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/pkg/jobs"
)

// EventRecorder consumes engine lifecycle events. It logs each event,
// feeds the Prometheus counters and writes an audit trail row through a
// background queue so engine mutations never wait on the database.
type EventRecorder struct {
	audit   auditWriter
	metrics *MetricsService
	logger  *zap.Logger
	queue   *jobs.Queue
}

type auditEventPayload struct {
	Event string
	Data  map[string]interface{}
}

// NewEventRecorder constructs an event recorder with its own worker queue.
func NewEventRecorder(audit auditWriter, metrics *MetricsService, logger *zap.Logger) *EventRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &EventRecorder{
		audit:   audit,
		metrics: metrics,
		logger:  logger,
	}
	r.queue = jobs.NewQueue("engine-events", r.handleTask, jobs.QueueConfig{
		Workers:    2,
		BufferSize: 64,
		Logger:     logger,
	})
	return r
}

// Start launches the background workers.
func (r *EventRecorder) Start(ctx context.Context) {
	r.queue.Start(ctx)
}

// Stop drains the workers.
func (r *EventRecorder) Stop() {
	r.queue.Stop()
}

// Event implements the engine sink. It never blocks and never returns an
// error to the caller; failed audit writes are retried by the queue.
func (r *EventRecorder) Event(event string, data map[string]interface{}) {
	r.logger.Info("engine event", zap.String("event", event), zap.Any("data", data))
	if r.metrics != nil {
		r.metrics.RecordEngineEvent(event)
	}
	if r.audit == nil {
		return
	}
	err := r.queue.Enqueue(jobs.Task{
		ID:      uuid.NewString(),
		Type:    event,
		Payload: auditEventPayload{Event: event, Data: data},
	})
	if err != nil {
		r.logger.Warn("enqueue audit event", zap.String("event", event), zap.Error(err))
	}
}

func (r *EventRecorder) handleTask(ctx context.Context, task jobs.Task) error {
	payload, ok := task.Payload.(auditEventPayload)
	if !ok {
		r.logger.Warn("unexpected audit payload", zap.String("task_id", task.ID))
		return nil
	}

	values, err := json.Marshal(payload.Data)
	if err != nil {
		r.logger.Warn("marshal audit payload", zap.String("event", payload.Event), zap.Error(err))
		values = nil
	}

	entry := &models.AuditLog{
		Action:    payload.Event,
		Resource:  resourceForEvent(payload.Event),
		NewValues: values,
	}
	if id, ok := payload.Data["id"].(string); ok && id != "" {
		entry.ResourceID = &id
	}
	return r.audit.Insert(ctx, entry)
}

// resourceForEvent maps an event name like "job_status_updated" to its
// resource group for audit filtering.
func resourceForEvent(event string) string {
	switch {
	case strings.HasPrefix(event, "service_request"), strings.HasPrefix(event, "job"), strings.HasPrefix(event, "tools"):
		return "jobs"
	case strings.HasPrefix(event, "quote"):
		return "quotes"
	case strings.HasPrefix(event, "vehicle"), strings.HasPrefix(event, "maintenance"):
		return "vehicles"
	case strings.HasPrefix(event, "mechanic_verification"):
		return "verifications"
	case strings.HasPrefix(event, "contact"):
		return "contact"
	default:
		return "engine"
	}
}
