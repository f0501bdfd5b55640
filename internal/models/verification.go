package models

import "time"

// VerificationStatus tracks review of a mechanic's identity documents.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// MechanicVerification is an identity-document submission record.
type MechanicVerification struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	FullName    string             `json:"full_name"`
	PhotoURI    string             `json:"photo_uri"`
	IDURI       string             `json:"id_uri"`
	Status      VerificationStatus `json:"status"`
	SubmittedAt time.Time          `json:"submitted_at"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty"`
	ReviewedBy  string             `json:"reviewed_by,omitempty"`
	ReviewNotes string             `json:"review_notes,omitempty"`
}
