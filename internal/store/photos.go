package store

import "github.com/heinicus/mobile-mechanic-api/internal/models"

// AddJobPhotos appends evidence photos to the job. No dedup by id is
// performed; callers diff against current photos before adding.
func (s *Store) AddJobPhotos(jobID string, photos []models.JobPhoto) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		if s.serviceRequests[i].ID == jobID {
			s.serviceRequests[i].JobPhotos = append(s.serviceRequests[i].JobPhotos, photos...)
			s.persistLocked()

			types := make([]string, len(photos))
			for j, p := range photos {
				types[j] = string(p.Type)
			}
			s.emit("job_photos_added", map[string]interface{}{
				"jobId":      jobID,
				"photoCount": len(photos),
				"photoTypes": types,
			})
			return
		}
	}
}

// JobPhotos returns the photos attached to a job, empty when none.
func (s *Store) JobPhotos(jobID string) []models.JobPhoto {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		if s.serviceRequests[i].ID == jobID {
			photos := make([]models.JobPhoto, len(s.serviceRequests[i].JobPhotos))
			copy(photos, s.serviceRequests[i].JobPhotos)
			return photos
		}
	}
	return nil
}

// RemoveJobPhoto deletes a photo by id. Hard delete, no tombstone.
func (s *Store) RemoveJobPhoto(jobID, photoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.serviceRequests {
		if s.serviceRequests[i].ID != jobID {
			continue
		}
		photos := s.serviceRequests[i].JobPhotos
		kept := photos[:0]
		for _, p := range photos {
			if p.ID != photoID {
				kept = append(kept, p)
			}
		}
		s.serviceRequests[i].JobPhotos = kept
		s.persistLocked()
		s.emit("job_photo_removed", map[string]interface{}{
			"jobId":   jobID,
			"photoId": photoID,
		})
		return
	}
}
