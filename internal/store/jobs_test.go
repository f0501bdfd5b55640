package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestStore(clock *fakeClock) *Store {
	return New(WithClock(clock.Now))
}

func newJob(id string) models.ServiceRequest {
	return models.ServiceRequest{
		ID:        id,
		Type:      "oil_change",
		Urgency:   models.UrgencyMedium,
		Status:    models.StatusPending,
		VehicleID: "veh-1",
		CreatedAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestUpdateJobStatusStampsClaimedAt(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	s.UpdateJobStatus("j1", models.StatusAccepted, "mech-1", "")

	job, ok := s.ServiceRequest("j1")
	require.True(t, ok)
	assert.Equal(t, models.StatusAccepted, job.Status)
	require.NotNil(t, job.ClaimedAt)
	assert.True(t, job.ClaimedAt.Equal(clock.current))
	require.Len(t, job.StatusTimeline, 1)
	assert.Equal(t, models.StatusAccepted, job.StatusTimeline[0].Status)
	assert.Equal(t, "mech-1", job.StatusTimeline[0].MechanicID)
}

func TestTimelineIsAppendOnlyWithoutDedup(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	transitions := []models.ServiceStatus{
		models.StatusAccepted,
		models.StatusScheduled,
		models.StatusInProgress,
		models.StatusPaused,
		models.StatusInProgress,
		models.StatusInProgress, // repeated status still appends
	}
	for _, st := range transitions {
		s.UpdateJobStatus("j1", st, "mech-1", "")
		clock.Advance(time.Minute)
	}

	timeline := s.JobTimeline("j1")
	require.Len(t, timeline, len(transitions))
	for i, st := range transitions {
		assert.Equal(t, st, timeline[i].Status)
	}
	for i := 1; i < len(timeline); i++ {
		assert.False(t, timeline[i].Timestamp.Before(timeline[i-1].Timestamp))
	}
}

func TestCompletionComputesActualDuration(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	s.UpdateJobStatus("j1", models.StatusInProgress, "mech-1", "")
	clock.Advance(92 * time.Minute)
	clock.Advance(31 * time.Second) // rounds up to 93
	s.UpdateJobStatus("j1", models.StatusCompleted, "mech-1", "")

	job, ok := s.ServiceRequest("j1")
	require.True(t, ok)
	require.NotNil(t, job.CompletedAt)
	require.NotNil(t, job.ActualDuration)
	assert.Equal(t, 93, *job.ActualDuration)
}

func TestCompletionWithoutStartLeavesDurationUnset(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	s.UpdateJobStatus("j1", models.StatusCompleted, "mech-1", "")

	job, ok := s.ServiceRequest("j1")
	require.True(t, ok)
	require.NotNil(t, job.CompletedAt)
	assert.Nil(t, job.ActualDuration)

	estimated, actual := s.JobDuration("j1")
	assert.Zero(t, estimated)
	assert.Zero(t, actual)
}

func TestCancellationDefaultsReason(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	s.UpdateJobStatus("j1", models.StatusCancelled, "mech-1", "")

	job, _ := s.ServiceRequest("j1")
	assert.Equal(t, "No reason provided", job.CancellationReason)
	assert.Equal(t, "mech-1", job.CancelledBy)
	require.NotNil(t, job.CancelledAt)
}

func TestCancelJobRecordsReasonVerbatim(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	s.CancelJob("j1", "customer no-show", "mech-1")

	job, _ := s.ServiceRequest("j1")
	assert.Equal(t, models.StatusCancelled, job.Status)
	assert.Equal(t, "customer no-show", job.CancellationReason)
	require.Len(t, job.StatusTimeline, 1)
	assert.Equal(t, "customer no-show", job.StatusTimeline[0].Notes)
}

func TestCancelJobDefaultsEmptyReason(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	s.CancelJob("j1", "", "mech-1")

	job, _ := s.ServiceRequest("j1")
	assert.Equal(t, "No reason provided", job.CancellationReason)
	require.Len(t, job.StatusTimeline, 1)
	assert.Equal(t, "No reason provided", job.StatusTimeline[0].Notes)
}

func TestUnknownJobIsSilentNoOp(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	s.UpdateJobStatus("missing", models.StatusCompleted, "mech-1", "")
	s.CancelJob("missing", "reason", "mech-1")

	job, _ := s.ServiceRequest("j1")
	assert.Equal(t, models.StatusPending, job.Status)
	assert.Empty(t, job.StatusTimeline)
	assert.Nil(t, s.JobTimeline("missing"))
}

func TestTransitionAllowedTable(t *testing.T) {
	assert.True(t, TransitionAllowed(models.StatusPending, models.StatusQuoted))
	assert.True(t, TransitionAllowed(models.StatusInProgress, models.StatusPaused))
	assert.True(t, TransitionAllowed(models.StatusPaused, models.StatusInProgress))
	assert.True(t, TransitionAllowed(models.StatusQuoted, models.StatusCancelled))
	assert.False(t, TransitionAllowed(models.StatusCompleted, models.StatusInProgress))
	assert.False(t, TransitionAllowed(models.StatusCancelled, models.StatusPending))
	assert.False(t, TransitionAllowed(models.StatusPending, models.StatusCompleted))
}

func TestToolsStatusArithmetic(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	job := newJob("j1")
	job.RequiredTools = []string{"oil-drain-pan", "funnel", "jack-stands"}
	s.AddServiceRequest(job)

	status := s.JobToolsStatus("j1")
	assert.Equal(t, 3, status.Total)
	assert.Zero(t, status.Checked)
	assert.False(t, status.AllRequired)

	s.UpdateJobTools("j1", map[string]bool{"oil-drain-pan": true, "funnel": true})
	status = s.JobToolsStatus("j1")
	assert.Equal(t, 2, status.Checked)
	assert.False(t, status.AllRequired)

	// extra non-required tool does not affect allRequired
	s.UpdateJobTools("j1", map[string]bool{
		"oil-drain-pan": true,
		"funnel":        true,
		"jack-stands":   true,
		"torque-wrench": true,
	})
	status = s.JobToolsStatus("j1")
	assert.Equal(t, 4, status.Checked)
	assert.True(t, status.AllRequired)
	assert.LessOrEqual(t, status.Checked-1, status.Total)

	assert.Equal(t, ToolsStatus{}, s.JobToolsStatus("missing"))
}

func TestUpdateJobToolsReplacesWholeMap(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	job := newJob("j1")
	job.RequiredTools = []string{"a", "b"}
	s.AddServiceRequest(job)

	s.UpdateJobTools("j1", map[string]bool{"a": true, "b": true})
	s.UpdateJobTools("j1", map[string]bool{"b": true})

	status := s.JobToolsStatus("j1")
	assert.Equal(t, 1, status.Checked)
	assert.False(t, status.AllRequired)
}

func TestCompleteToolsCheckDoesNotValidateChecklist(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	job := newJob("j1")
	job.RequiredTools = []string{"a", "b"}
	s.AddServiceRequest(job)

	// nothing checked, completion still stamps
	s.CompleteToolsCheck("j1", "missing torque wrench")

	got, _ := s.ServiceRequest("j1")
	require.NotNil(t, got.ToolsCheckCompletedAt)
	assert.Equal(t, "missing torque wrench", got.ToolsNotes)
	assert.False(t, s.JobToolsStatus("j1").AllRequired)
}

func TestPartsAppendAndReplace(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	assert.Empty(t, s.JobParts("j1"))

	s.AddJobParts("j1", []models.JobPart{{Name: "Oil Filter", Price: 15, Quantity: 1}})
	s.AddJobParts("j1", []models.JobPart{{Name: "Synthetic Oil (5qt)", Price: 45, Quantity: 2}})
	parts := s.JobParts("j1")
	require.Len(t, parts, 2)
	assert.Equal(t, 105.0, PartsCost(parts))

	s.UpdateJobParts("j1", []models.JobPart{{Name: "Oil Filter", Price: 15, Quantity: 1}})
	parts = s.JobParts("j1")
	require.Len(t, parts, 1)
	assert.Equal(t, 15.0, PartsCost(parts))
}

func TestPhotoAppendAndRemove(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	s.AddJobPhotos("j1", []models.JobPhoto{
		{ID: "p1", URL: "file://a.jpg", Type: models.PhotoBefore, UploadedBy: "mech-1", UploadedAt: clock.Now()},
		{ID: "p2", URL: "file://b.jpg", Type: models.PhotoAfter, UploadedBy: "mech-1", UploadedAt: clock.Now()},
	})
	require.Len(t, s.JobPhotos("j1"), 2)

	s.RemoveJobPhoto("j1", "p1")
	photos := s.JobPhotos("j1")
	require.Len(t, photos, 1)
	assert.Equal(t, "p2", photos[0].ID)

	s.RemoveJobPhoto("j1", "does-not-exist")
	assert.Len(t, s.JobPhotos("j1"), 1)
}
