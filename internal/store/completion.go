package store

import "github.com/heinicus/mobile-mechanic-api/internal/models"

// CompletionChecklist breaks the completion gate into its five independent
// preconditions so the UI can surface the unmet subset.
type CompletionChecklist struct {
	HasWorkLogs   bool `json:"has_work_logs"`
	HasSignature  bool `json:"has_signature"`
	HasToolsCheck bool `json:"has_tools_check"`
	HasAfterPhoto bool `json:"has_after_photo"`
	TimerStopped  bool `json:"timer_stopped"`
}

// Met reports whether every precondition holds.
func (c CompletionChecklist) Met() bool {
	return c.HasWorkLogs && c.HasSignature && c.HasToolsCheck && c.HasAfterPhoto && c.TimerStopped
}

// Checklist evaluates the completion gate over a snapshot of job state. Pure
// function: recomputed on every call, never stored.
func Checklist(job models.ServiceRequest, logs []models.JobLog, photos []models.JobPhoto) CompletionChecklist {
	activeTimer := false
	for _, log := range logs {
		if log.EndTime == nil {
			activeTimer = true
			break
		}
	}

	hasAfter := false
	for _, p := range photos {
		if p.Type == models.PhotoAfter {
			hasAfter = true
			break
		}
	}

	return CompletionChecklist{
		HasWorkLogs:   len(logs) > 0,
		HasSignature:  job.SignatureData != "",
		HasToolsCheck: job.ToolsCheckCompletedAt != nil,
		HasAfterPhoto: hasAfter,
		TimerStopped:  !activeTimer,
	}
}

// CanComplete is the completion gate: the conjunction of all five
// preconditions. Advisory for UI gating; the transition engine does not
// consult it, so a caller can still force a completion.
func CanComplete(job models.ServiceRequest, logs []models.JobLog, photos []models.JobPhoto) bool {
	return Checklist(job, logs, photos).Met()
}

// JobChecklist evaluates the gate for a stored job by id.
func (s *Store) JobChecklist(jobID string) (CompletionChecklist, bool) {
	job, ok := s.ServiceRequest(jobID)
	if !ok {
		return CompletionChecklist{}, false
	}
	return Checklist(job, s.JobLogs(jobID), s.JobPhotos(jobID)), true
}

// transitions that the mechanic workflow expects. The engine itself never
// enforces this table; it exists so edges can warn on irregular moves
// without touching the stamping logic.
var allowedNext = map[models.ServiceStatus][]models.ServiceStatus{
	models.StatusPending:    {models.StatusQuoted, models.StatusCancelled},
	models.StatusQuoted:     {models.StatusAccepted, models.StatusCancelled},
	models.StatusAccepted:   {models.StatusScheduled, models.StatusCancelled},
	models.StatusScheduled:  {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusPaused, models.StatusCompleted, models.StatusCancelled},
	models.StatusPaused:     {models.StatusInProgress, models.StatusCancelled},
	models.StatusCompleted:  {},
	models.StatusCancelled:  {},
}

// TransitionAllowed reports whether the move matches the expected workflow.
func TransitionAllowed(from, to models.ServiceStatus) bool {
	for _, next := range allowedNext[from] {
		if next == to {
			return true
		}
	}
	return false
}
