package models

import "time"

const (
	ListingOpen   = "open"
	ListingClosed = "closed"
)

// Job is a listing owned by a hiring manager. UserID must reference a
// hiring-manager at creation time; a transfer reassigns it without
// re-validating existing rows.
type Job struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	UserID                uint       `gorm:"not null;index" json:"userId"`
	Department            string     `gorm:"size:100;not null" json:"department"`
	ListingTitle          string     `gorm:"size:255;not null" json:"listingTitle"`
	JobTitle              string     `gorm:"size:255;not null" json:"jobTitle"`
	JobDescription        string     `gorm:"type:text;not null" json:"jobDescription"`
	ExperienceLevel       string     `gorm:"size:100;not null" json:"experienceLevel"`
	AdditionalInformation string     `gorm:"type:text" json:"additionalInformation,omitempty"`
	ListingStatus         string     `gorm:"size:20;not null;default:'open'" json:"listingStatus"`
	DateListed            time.Time  `gorm:"not null" json:"dateListed"`
	DateClosed            *time.Time `json:"dateClosed,omitempty"`
}
