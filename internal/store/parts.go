package store

import "github.com/heinicus/mobile-mechanic-api/internal/models"

// AddJobParts appends parts to the job's list in the side table.
func (s *Store) AddJobParts(jobID string, parts []models.JobPart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobParts[jobID] = append(s.jobParts[jobID], parts...)
	s.persistLocked()
	s.emit("job_parts_added", map[string]interface{}{
		"jobId":      jobID,
		"partsCount": len(parts),
		"totalCost":  PartsCost(parts),
	})
}

// UpdateJobParts replaces the job's parts list wholesale. The UI deletes
// parts by filtering and resubmitting the remainder.
func (s *Store) UpdateJobParts(jobID string, parts []models.JobPart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobParts[jobID] = parts
	s.persistLocked()
	s.emit("job_parts_updated", map[string]interface{}{
		"jobId":      jobID,
		"partsCount": len(parts),
		"totalCost":  PartsCost(parts),
	})
}

// JobParts returns the parts recorded for a job, empty when none.
func (s *Store) JobParts(jobID string) []models.JobPart {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := s.jobParts[jobID]
	out := make([]models.JobPart, len(parts))
	copy(out, parts)
	return out
}

// PartsCost derives the total cost of a parts list. Never stored.
func PartsCost(parts []models.JobPart) float64 {
	total := 0.0
	for _, part := range parts {
		total += part.Price * float64(part.Quantity)
	}
	return total
}
