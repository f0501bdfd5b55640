package store

import (
	"sort"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

// AddMechanicVerification records an identity-document submission.
func (s *Store) AddMechanicVerification(v models.MechanicVerification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mechanicVerifications = append(s.mechanicVerifications, v)
	s.persistLocked()
	s.emit("mechanic_verification_added", map[string]interface{}{
		"verificationId": v.ID,
		"userId":         v.UserID,
		"status":         string(v.Status),
	})
}

// UpdateMechanicVerification applies a partial update via the mutator.
// Review decisions (approve/reject with notes) ride through here.
func (s *Store) UpdateMechanicVerification(id string, mutate func(*models.MechanicVerification)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.mechanicVerifications {
		if s.mechanicVerifications[i].ID == id {
			mutate(&s.mechanicVerifications[i])
			s.persistLocked()
			s.emit("mechanic_verification_updated", map[string]interface{}{
				"verificationId": id,
				"newStatus":      string(s.mechanicVerifications[i].Status),
			})
			return
		}
	}
}

// MechanicVerification returns the user's most recent submission, if any.
func (s *Store) MechanicVerification(userID string) (models.MechanicVerification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *models.MechanicVerification
	for i := range s.mechanicVerifications {
		v := &s.mechanicVerifications[i]
		if v.UserID != userID {
			continue
		}
		if latest == nil || v.SubmittedAt.After(latest.SubmittedAt) {
			latest = v
		}
	}
	if latest == nil {
		return models.MechanicVerification{}, false
	}
	return *latest, true
}

// AllVerifications lists every submission, newest first.
func (s *Store) AllVerifications() []models.MechanicVerification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MechanicVerification, len(s.mechanicVerifications))
	copy(out, s.mechanicVerifications)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out
}
