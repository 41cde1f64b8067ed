package models

import "time"

// Portal roles. Every user holds exactly one.
const (
	RoleApplicant     = "applicant"
	RoleHiringManager = "hiring-manager"
	RoleAdmin         = "admin"
)

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"size:255;not null" json:"fullName"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"size:20;not null;default:'applicant'" json:"role"`
	Address    string    `gorm:"size:255" json:"address,omitempty"`
	Phone      string    `gorm:"size:50" json:"phone,omitempty"`
	Resume     string    `gorm:"type:text" json:"resume,omitempty"`
	Department string    `gorm:"size:100" json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleApplicant, RoleHiringManager, RoleAdmin:
		return true
	}
	return false
}
