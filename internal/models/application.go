package models

import "time"

const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusRejected = "rejected"
	StatusAccepted = "accepted"
)

// Application links an applicant to a job. Status starts at pending and is
// advanced only by the hiring manager owning the referenced job; accepting
// one closes the job.
type Application struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"userId"`
	JobID             uint      `gorm:"not null;index" json:"jobId"`
	DateApplied       time.Time `gorm:"not null" json:"dateApplied"`
	CoverLetter       string    `gorm:"type:text" json:"coverLetter"`
	CustomResume      string    `gorm:"type:text" json:"customResume"`
	ApplicationStatus string    `gorm:"size:20;not null;default:'pending'" json:"applicationStatus"`
}

func ValidApplicationStatus(status string) bool {
	switch status {
	case StatusPending, StatusReviewed, StatusRejected, StatusAccepted:
		return true
	}
	return false
}
