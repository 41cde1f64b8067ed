package dto

import "github.com/talentgate/recruiting-backend/internal/models"

type CreateJobRequest struct {
	Department            string `json:"department"`
	ListingTitle          string `json:"listingTitle"`
	JobTitle              string `json:"jobTitle"`
	JobDescription        string `json:"jobDescription"`
	ExperienceLevel       string `json:"experienceLevel"`
	AdditionalInformation string `json:"additionalInformation"`
}

// UpdateJobRequest is a partial update; id, userId and dateListed are
// never writable through it.
type UpdateJobRequest struct {
	Department            *string `json:"department"`
	ListingTitle          *string `json:"listingTitle"`
	JobTitle              *string `json:"jobTitle"`
	JobDescription        *string `json:"jobDescription"`
	ExperienceLevel       *string `json:"experienceLevel"`
	AdditionalInformation *string `json:"additionalInformation"`
	ListingStatus         *string `json:"listingStatus"`
}

type TransferJobRequest struct {
	JobID      uint `json:"jobId"`
	FromUserID uint `json:"fromUserId"`
	ToUserID   uint `json:"toUserId"`
}

type JobListResponse struct {
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Items int          `json:"items"`
	Jobs  []models.Job `json:"jobs"`
}
