package dto

import "github.com/heinicus/mobile-mechanic-api/internal/models"

// SubmitVerificationRequest files a mechanic identity-document submission.
type SubmitVerificationRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	PhotoURI string `json:"photo_uri" binding:"required"`
	IDURI    string `json:"id_uri" binding:"required"`
}

// ReviewVerificationRequest records an admin review decision.
type ReviewVerificationRequest struct {
	Status      models.VerificationStatus `json:"status" binding:"required"`
	ReviewNotes string                    `json:"review_notes"`
}

// SetFlagRequest toggles one boolean runtime setting.
type SetFlagRequest struct {
	Key   string `json:"key" binding:"required"`
	Value bool   `json:"value"`
}

// SetRateRequest updates one numeric runtime setting.
type SetRateRequest struct {
	Key   string  `json:"key" binding:"required"`
	Value float64 `json:"value"`
}

// TravelFeeQuery computes the travel charge for a trip distance.
type TravelFeeQuery struct {
	Miles float64 `form:"miles" binding:"required"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// PlateDecodeRequest resolves a license plate to vehicle identity.
type PlateDecodeRequest struct {
	Plate string `json:"plate" binding:"required"`
	State string `json:"state" binding:"required"`
}
