package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

func completableJob(s *Store, clock *fakeClock, id string) {
	job := newJob(id)
	job.RequiredTools = []string{"wrench"}
	s.AddServiceRequest(job)

	end := clock.Now().Add(time.Hour)
	s.AddJobLog(models.JobLog{ID: id + "-l1", JobID: id, StartTime: clock.Now(), EndTime: &end})
	s.CaptureSignature(id, "data:image/png;base64,abc", "customer")
	s.UpdateJobTools(id, map[string]bool{"wrench": true})
	s.CompleteToolsCheck(id, "")
	s.AddJobPhotos(id, []models.JobPhoto{{ID: id + "-p1", URL: "file://after.jpg", Type: models.PhotoAfter}})
}

func TestChecklistAllConditionsMet(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	completableJob(s, clock, "j1")

	c, ok := s.JobChecklist("j1")
	require.True(t, ok)
	assert.True(t, c.HasWorkLogs)
	assert.True(t, c.HasSignature)
	assert.True(t, c.HasToolsCheck)
	assert.True(t, c.HasAfterPhoto)
	assert.True(t, c.TimerStopped)
	assert.True(t, c.Met())
}

func TestChecklistEachMissingConditionFails(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}

	breakers := map[string]func(s *Store){
		"no signature": func(s *Store) {
			s.UpdateServiceRequest("j1", func(r *models.ServiceRequest) { r.SignatureData = "" })
		},
		"no tools check": func(s *Store) {
			s.UpdateServiceRequest("j1", func(r *models.ServiceRequest) { r.ToolsCheckCompletedAt = nil })
		},
		"running timer": func(s *Store) {
			s.AddJobLog(models.JobLog{ID: "open", JobID: "j1", StartTime: clock.Now()})
		},
	}

	for name, breaker := range breakers {
		t.Run(name, func(t *testing.T) {
			s := newTestStore(clock)
			completableJob(s, clock, "j1")
			c, ok := s.JobChecklist("j1")
			require.True(t, ok)
			require.True(t, c.Met())

			breaker(s)
			c, _ = s.JobChecklist("j1")
			assert.False(t, c.Met())
		})
	}
}

func TestChecklistRequiresWorkLogs(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("bare"))
	s.CaptureSignature("bare", "sig", "customer")
	s.CompleteToolsCheck("bare", "")
	s.AddJobPhotos("bare", []models.JobPhoto{{ID: "bp", Type: models.PhotoAfter}})

	c, ok := s.JobChecklist("bare")
	require.True(t, ok)
	assert.False(t, c.HasWorkLogs)
	assert.True(t, c.TimerStopped) // no open timer when there are no logs at all
	assert.False(t, c.Met())
}

func TestChecklistBeforePhotoDoesNotSatisfyGate(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	completableJob(s, clock, "j1")

	s.RemoveJobPhoto("j1", "j1-p1")
	s.AddJobPhotos("j1", []models.JobPhoto{{ID: "b1", Type: models.PhotoBefore}})

	c, _ := s.JobChecklist("j1")
	assert.False(t, c.HasAfterPhoto)
	assert.False(t, c.Met())
}

func TestGateIsAdvisoryNotEnforced(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	c, ok := s.JobChecklist("j1")
	require.True(t, ok)
	require.False(t, c.Met())

	s.UpdateJobStatus("j1", models.StatusCompleted, "mech-1", "")

	job, _ := s.ServiceRequest("j1")
	assert.Equal(t, models.StatusCompleted, job.Status)
}

func TestChecklistUnknownJob(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)

	c, ok := s.JobChecklist("missing")
	assert.False(t, ok)
	assert.Equal(t, CompletionChecklist{}, c)
	assert.False(t, c.Met())
}
