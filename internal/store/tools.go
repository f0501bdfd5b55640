package store

// ToolsStatus summarizes a job's tool checklist.
type ToolsStatus struct {
	Total       int  `json:"total"`
	Checked     int  `json:"checked"`
	AllRequired bool `json:"all_required"`
}

// UpdateJobTools replaces the job's entire checked-tools map. This is a full
// replace, not a merge: callers pass the complete desired map.
func (s *Store) UpdateJobTools(jobID string, toolsChecked map[string]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checked := 0
	for _, ok := range toolsChecked {
		if ok {
			checked++
		}
	}

	for i := range s.serviceRequests {
		if s.serviceRequests[i].ID == jobID {
			s.serviceRequests[i].ToolsChecked = toolsChecked
			s.persistLocked()
			s.emit("job_tools_updated", map[string]interface{}{
				"jobId":        jobID,
				"checkedCount": checked,
				"totalTools":   len(toolsChecked),
			})
			return
		}
	}
}

// CompleteToolsCheck stamps the tools attestation. It does not verify that
// every required tool is checked; that validation stays with callers.
func (s *Store) CompleteToolsCheck(jobID, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		if s.serviceRequests[i].ID == jobID {
			now := s.now()
			s.serviceRequests[i].ToolsCheckCompletedAt = &now
			s.serviceRequests[i].ToolsNotes = notes
			s.persistLocked()
			s.emit("tools_check_completed", map[string]interface{}{
				"jobId":    jobID,
				"hasNotes": notes != "",
			})
			return
		}
	}
}

// JobToolsStatus reports checklist progress. A zeroed result is returned when
// the job is unknown or declares no required tools.
func (s *Store) JobToolsStatus(jobID string) ToolsStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		job := &s.serviceRequests[i]
		if job.ID != jobID {
			continue
		}
		if len(job.RequiredTools) == 0 {
			return ToolsStatus{}
		}

		checked := 0
		for _, ok := range job.ToolsChecked {
			if ok {
				checked++
			}
		}

		allRequired := true
		for _, toolID := range job.RequiredTools {
			if !job.ToolsChecked[toolID] {
				allRequired = false
				break
			}
		}

		return ToolsStatus{
			Total:       len(job.RequiredTools),
			Checked:     checked,
			AllRequired: allRequired,
		}
	}
	return ToolsStatus{}
}
