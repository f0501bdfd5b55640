package store

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

type memorySnapshotStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

func (m *memorySnapshotStore) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

func (m *memorySnapshotStore) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, nil
}

type slowSnapshotStore struct {
	memorySnapshotStore
}

func (m *slowSnapshotStore) Save(ctx context.Context, data []byte) error {
	time.Sleep(2 * time.Millisecond)
	return m.memorySnapshotStore.Save(ctx, data)
}

type recordingSink struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingSink) Event(event string, _ map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestSnapshotRoundTrip(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)

	job := newJob("j1")
	job.RequiredTools = []string{"wrench"}
	s.AddServiceRequest(job)
	s.UpdateJobStatus("j1", models.StatusInProgress, "mech-1", "")
	clock.Advance(45 * time.Minute)
	s.UpdateJobStatus("j1", models.StatusCompleted, "mech-1", "")
	s.UpdateJobTools("j1", map[string]bool{"wrench": true})
	s.AddJobParts("j1", []models.JobPart{{Name: "Brake Pads", Price: 80, Quantity: 1}})
	end := clock.Now()
	s.AddJobLog(models.JobLog{ID: "l1", JobID: "j1", StartTime: end.Add(-45 * time.Minute), EndTime: &end})

	paidAt := clock.Now()
	s.AddQuote(models.Quote{ID: "q1", ServiceRequestID: "j1", TotalCost: 250, Status: models.QuotePaid, PaidAt: &paidAt})

	s.SetContact(models.Contact{Phone: "555-0100", Email: "shop@example.com"})
	s.AddVehicle(models.Vehicle{ID: "v1", Make: "Honda", Model: "Civic", Year: 2018})

	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	mem := &memorySnapshotStore{data: data}
	restored := New(WithSnapshotStore(mem), WithClock(clock.Now))
	require.NoError(t, restored.Hydrate(context.Background()))

	got, ok := restored.ServiceRequest("j1")
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, got.Status)
	require.NotNil(t, got.StartedAt)
	require.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.ActualDuration)
	assert.Equal(t, 45, *got.ActualDuration)
	assert.Len(t, got.StatusTimeline, 2)

	orig, _ := s.ServiceRequest("j1")
	assert.True(t, got.StartedAt.Equal(*orig.StartedAt))
	assert.True(t, got.CompletedAt.Equal(*orig.CompletedAt))

	assert.Equal(t, s.JobParts("j1"), restored.JobParts("j1"))
	assert.Equal(t, s.TotalJobTime("j1"), restored.TotalJobTime("j1"))
	assert.Equal(t, 250.0, restored.TotalRevenue(nil, nil))

	contact, ok := restored.Contact()
	require.True(t, ok)
	assert.Equal(t, "555-0100", contact.Phone)
	_, ok = restored.Vehicle("v1")
	assert.True(t, ok)
}

func TestSnapshotKeysMatchPersistedDocument(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"serviceRequests", "vehicles", "quotes", "jobLogs", "jobParts", "maintenanceReminders", "maintenanceHistory", "mechanicVerifications"} {
		assert.Contains(t, doc, key)
	}
}

func TestHydrateMissingSnapshotIsNoError(t *testing.T) {
	s := New(WithSnapshotStore(&memorySnapshotStore{}))
	require.NoError(t, s.Hydrate(context.Background()))
	assert.Empty(t, s.ServiceRequests())
}

func TestHydrateCorruptSnapshotFails(t *testing.T) {
	s := New(WithSnapshotStore(&memorySnapshotStore{data: []byte("{not json")}))
	assert.Error(t, s.Hydrate(context.Background()))
}

func TestMutationsEmitEvents(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	sink := &recordingSink{}
	s := New(WithClock(clock.Now), WithEventSink(sink))

	s.AddServiceRequest(newJob("j1"))
	s.UpdateJobStatus("j1", models.StatusAccepted, "mech-1", "")

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Contains(t, sink.events, "service_request_added")
	assert.Contains(t, sink.events, "job_status_updated")
}

func TestMutationsPersistAsynchronously(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	mem := &memorySnapshotStore{}
	s := New(WithClock(clock.Now), WithSnapshotStore(mem))

	s.AddServiceRequest(newJob("j1"))

	require.Eventually(t, func() bool {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		return mem.saves > 0
	}, time.Second, 5*time.Millisecond)

	data, err := mem.Load(context.Background())
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	require.Len(t, snap.ServiceRequests, 1)
	assert.Equal(t, "j1", snap.ServiceRequests[0].ID)
}

func TestRapidMutationsLeaveNewestSnapshotDurable(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	mem := &slowSnapshotStore{}
	s := New(WithClock(clock.Now), WithSnapshotStore(mem))

	s.AddServiceRequest(newJob("j1"))
	statuses := []models.ServiceStatus{
		models.StatusQuoted, models.StatusAccepted, models.StatusScheduled,
		models.StatusInProgress, models.StatusPaused, models.StatusInProgress,
		models.StatusCompleted,
	}
	for _, status := range statuses {
		s.UpdateJobStatus("j1", status, "mech-1", "")
	}

	s.Close()

	data, err := mem.Load(context.Background())
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	require.Len(t, snap.ServiceRequests, 1)
	assert.Equal(t, models.StatusCompleted, snap.ServiceRequests[0].Status)
	assert.Len(t, snap.ServiceRequests[0].StatusTimeline, len(statuses))
}

func TestCloseIsIdempotent(t *testing.T) {
	s := New(WithSnapshotStore(&memorySnapshotStore{}))
	s.AddServiceRequest(newJob("j1"))
	s.Close()
	s.Close()

	nosnap := New()
	nosnap.Close()
}
