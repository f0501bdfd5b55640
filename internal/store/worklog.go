package store

import (
	"sort"
	"time"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

// JobLogUpdate carries the fields of a partial log update. Nil fields are
// left untouched.
type JobLogUpdate struct {
	EndTime  *time.Time
	Activity *string
	Notes    *string
}

// AddJobLog appends a fully-formed work-timer entry. An entry without an end
// time represents a running timer. The store does not reject a second open
// entry for the same job; the completion gate blocks completion while any
// timer is open.
func (s *Store) AddJobLog(log models.JobLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobLogs = append(s.jobLogs, log)
	s.persistLocked()
	s.emit("job_log_added", map[string]interface{}{
		"logId":      log.ID,
		"jobId":      log.JobID,
		"mechanicId": log.MechanicID,
		"startTime":  log.StartTime.Format(time.RFC3339),
	})
}

// UpdateJobLog merges the update into the log entry by id. Unknown ids are a
// silent no-op.
func (s *Store) UpdateJobLog(id string, updates JobLogUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobLogs {
		if s.jobLogs[i].ID != id {
			continue
		}
		if updates.EndTime != nil {
			s.jobLogs[i].EndTime = updates.EndTime
		}
		if updates.Activity != nil {
			s.jobLogs[i].Activity = *updates.Activity
		}
		if updates.Notes != nil {
			s.jobLogs[i].Notes = *updates.Notes
		}
		s.persistLocked()
		s.emit("job_log_updated", map[string]interface{}{
			"logId": id,
		})
		return
	}
}

// JobLogs returns the job's work sessions sorted by start time ascending.
func (s *Store) JobLogs(jobID string) []models.JobLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	var logs []models.JobLog
	for _, log := range s.jobLogs {
		if log.JobID == jobID {
			logs = append(logs, log)
		}
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].StartTime.Before(logs[j].StartTime)
	})
	return logs
}

// ActiveJobTimer returns the first open log entry for the job, nil when no
// timer is running.
func (s *Store) ActiveJobTimer(jobID string) *models.JobLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, log := range s.jobLogs {
		if log.JobID == jobID && log.EndTime == nil {
			active := log
			return &active
		}
	}
	return nil
}

// TotalJobTime sums the closed sessions for a job in milliseconds. Open
// sessions contribute nothing until closed.
func (s *Store) TotalJobTime(jobID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, log := range s.jobLogs {
		if log.JobID == jobID && log.EndTime != nil {
			total += log.EndTime.Sub(log.StartTime).Milliseconds()
		}
	}
	return total
}
