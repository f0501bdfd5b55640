package store

import (
	"math"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

// AddServiceRequest registers a new job. The caller supplies the fully-formed
// record (id, catalog type, urgency, required tools).
func (s *Store) AddServiceRequest(req models.ServiceRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.serviceRequests = append(s.serviceRequests, req)
	s.persistLocked()
	s.emit("service_request_added", map[string]interface{}{
		"requestId":   req.ID,
		"serviceType": req.Type,
		"urgency":     string(req.Urgency),
		"toolsCount":  len(req.RequiredTools),
	})
}

// UpdateServiceRequest applies a partial update to a job via the mutator.
// Unknown ids are a silent no-op.
func (s *Store) UpdateServiceRequest(id string, mutate func(*models.ServiceRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		if s.serviceRequests[i].ID == id {
			mutate(&s.serviceRequests[i])
			now := s.now()
			s.serviceRequests[i].UpdatedAt = &now
			s.persistLocked()
			s.emit("service_request_updated", map[string]interface{}{
				"requestId": id,
				"newStatus": string(s.serviceRequests[i].Status),
			})
			return
		}
	}
}

// ServiceRequest returns a copy of the job, if present.
func (s *Store) ServiceRequest(id string) (models.ServiceRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		if s.serviceRequests[i].ID == id {
			return s.serviceRequests[i], true
		}
	}
	return models.ServiceRequest{}, false
}

// ServiceRequests lists every job, newest last (insertion order).
func (s *Store) ServiceRequests() []models.ServiceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ServiceRequest, len(s.serviceRequests))
	copy(out, s.serviceRequests)
	return out
}

// UpdateJobStatus is the status transition engine. It appends to the job's
// timeline, moves the status, and stamps the timestamp field specific to the
// new status. The engine is deliberately permissive: any status may follow
// any status, and legality lives with callers (see TransitionAllowed).
// Unknown job ids are a silent no-op.
func (s *Store) UpdateJobStatus(jobID string, status models.ServiceStatus, mechanicID, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamp := s.now()

	for i := range s.serviceRequests {
		r := &s.serviceRequests[i]
		if r.ID != jobID {
			continue
		}

		r.StatusTimeline = append(r.StatusTimeline, models.StatusTimestamp{
			Status:     status,
			Timestamp:  timestamp,
			MechanicID: mechanicID,
			Notes:      notes,
		})
		r.Status = status
		r.UpdatedAt = &timestamp

		switch status {
		case models.StatusAccepted:
			r.ClaimedAt = &timestamp
		case models.StatusScheduled:
			r.ScheduledAt = &timestamp
		case models.StatusInProgress:
			r.StartedAt = &timestamp
		case models.StatusPaused:
			r.PausedAt = &timestamp
		case models.StatusCompleted:
			r.CompletedAt = &timestamp
			if r.StartedAt != nil {
				minutes := int(math.Round(timestamp.Sub(*r.StartedAt).Minutes()))
				r.ActualDuration = &minutes
			}
		case models.StatusCancelled:
			r.CancelledAt = &timestamp
			r.CancelledBy = mechanicID
			if notes != "" {
				r.CancellationReason = notes
			} else {
				r.CancellationReason = "No reason provided"
			}
		}

		s.persistLocked()
		s.emit("job_status_updated", map[string]interface{}{
			"jobId":      jobID,
			"status":     string(status),
			"mechanicId": mechanicID,
			"hasNotes":   notes != "",
		})
		return
	}
}

// CancelJob is the specialized cancellation entry point. A missing reason
// is recorded as "No reason provided".
func (s *Store) CancelJob(jobID, reason, mechanicID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reason == "" {
		reason = "No reason provided"
	}

	timestamp := s.now()

	for i := range s.serviceRequests {
		r := &s.serviceRequests[i]
		if r.ID != jobID {
			continue
		}

		r.StatusTimeline = append(r.StatusTimeline, models.StatusTimestamp{
			Status:     models.StatusCancelled,
			Timestamp:  timestamp,
			MechanicID: mechanicID,
			Notes:      reason,
		})
		r.Status = models.StatusCancelled
		r.UpdatedAt = &timestamp
		r.CancelledAt = &timestamp
		r.CancelledBy = mechanicID
		r.CancellationReason = reason

		s.persistLocked()
		s.emit("job_cancelled", map[string]interface{}{
			"jobId":      jobID,
			"reason":     reason,
			"mechanicId": mechanicID,
		})
		return
	}
}

// CaptureSignature records the customer sign-off for a job.
func (s *Store) CaptureSignature(jobID, signatureData, capturedBy string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		r := &s.serviceRequests[i]
		if r.ID != jobID {
			continue
		}
		now := s.now()
		r.SignatureData = signatureData
		r.SignatureCapturedAt = &now
		r.SignatureCapturedBy = capturedBy
		r.UpdatedAt = &now
		s.persistLocked()
		s.emit("job_signature_captured", map[string]interface{}{
			"jobId":      jobID,
			"capturedBy": capturedBy,
		})
		return
	}
}

// JobTimeline returns the append-only status history in insertion order.
func (s *Store) JobTimeline(jobID string) []models.StatusTimestamp {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		if s.serviceRequests[i].ID == jobID {
			timeline := make([]models.StatusTimestamp, len(s.serviceRequests[i].StatusTimeline))
			copy(timeline, s.serviceRequests[i].StatusTimeline)
			return timeline
		}
	}
	return nil
}

// JobDuration reports the estimated and actual duration in minutes,
// defaulting both to zero.
func (s *Store) JobDuration(jobID string) (estimated, actual int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		if s.serviceRequests[i].ID == jobID {
			estimated = s.serviceRequests[i].EstimatedDuration
			if s.serviceRequests[i].ActualDuration != nil {
				actual = *s.serviceRequests[i].ActualDuration
			}
			return estimated, actual
		}
	}
	return 0, 0
}
