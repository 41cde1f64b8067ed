package dto

import "github.com/talentgate/recruiting-backend/internal/models"

type CreateApplicationRequest struct {
	JobID        uint   `json:"jobId"`
	CoverLetter  string `json:"coverLetter"`
	CustomResume string `json:"customResume"`
}

// UpdateApplicationRequest is the applicant-side partial update; only the
// submitted documents are writable.
type UpdateApplicationRequest struct {
	CoverLetter  *string `json:"coverLetter"`
	CustomResume *string `json:"customResume"`
}

type UpdateApplicationStatusRequest struct {
	ApplicationStatus string `json:"applicationStatus"`
}

// ApplicationRow is an application joined with the applicant's full name,
// as shown in the manager's review list.
type ApplicationRow struct {
	models.Application
	ApplicantName string `json:"applicantName"`
}

type ApplicationListResponse struct {
	Total        int64            `json:"total"`
	Page         int              `json:"page"`
	Items        int              `json:"items"`
	Applications []ApplicationRow `json:"applications"`
}
