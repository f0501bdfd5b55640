package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

func TestJobLogsSortedByStartTime(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.AddJobLog(models.JobLog{ID: "l2", JobID: "j1", MechanicID: "mech-1", StartTime: base.Add(time.Hour), Activity: "reassembly"})
	s.AddJobLog(models.JobLog{ID: "l1", JobID: "j1", MechanicID: "mech-1", StartTime: base, Activity: "diagnosis"})

	logs := s.JobLogs("j1")
	require.Len(t, logs, 2)
	assert.Equal(t, "l1", logs[0].ID)
	assert.Equal(t, "l2", logs[1].ID)
}

func TestActiveJobTimerIsOpenLog(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := base.Add(30 * time.Minute)
	s.AddJobLog(models.JobLog{ID: "l1", JobID: "j1", MechanicID: "mech-1", StartTime: base, EndTime: &end, Activity: "diagnosis"})
	assert.Nil(t, s.ActiveJobTimer("j1"))

	s.AddJobLog(models.JobLog{ID: "l2", JobID: "j1", MechanicID: "mech-1", StartTime: end, Activity: "repair"})
	active := s.ActiveJobTimer("j1")
	require.NotNil(t, active)
	assert.Equal(t, "l2", active.ID)

	stop := end.Add(time.Hour)
	s.UpdateJobLog("l2", JobLogUpdate{EndTime: &stop})
	assert.Nil(t, s.ActiveJobTimer("j1"))
}

func TestTotalJobTimeCountsClosedLogsOnly(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end1 := base.Add(30 * time.Minute)
	end2 := base.Add(90 * time.Minute)
	s.AddJobLog(models.JobLog{ID: "l1", JobID: "j1", StartTime: base, EndTime: &end1})
	s.AddJobLog(models.JobLog{ID: "l2", JobID: "j1", StartTime: end1, EndTime: &end2})
	s.AddJobLog(models.JobLog{ID: "l3", JobID: "j1", StartTime: end2}) // still running

	// 30m + 60m closed, open log excluded
	assert.Equal(t, int64(90*60*1000), s.TotalJobTime("j1"))

	end3 := end2.Add(10 * time.Minute)
	s.UpdateJobLog("l3", JobLogUpdate{EndTime: &end3})
	assert.Equal(t, int64(100*60*1000), s.TotalJobTime("j1"))
}

func TestUpdateJobLogMergesFields(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)
	s.AddServiceRequest(newJob("j1"))

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.AddJobLog(models.JobLog{ID: "l1", JobID: "j1", StartTime: base, Activity: "diagnosis"})

	notes := "found worn pads"
	s.UpdateJobLog("l1", JobLogUpdate{Notes: &notes})

	logs := s.JobLogs("j1")
	require.Len(t, logs, 1)
	assert.Equal(t, "diagnosis", logs[0].Activity)
	assert.Equal(t, "found worn pads", logs[0].Notes)
	assert.Nil(t, logs[0].EndTime)
}
