package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/talentgate/recruiting-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed restores the fixed development dataset: three core accounts
// (applicant 1, hiring manager 2, admin 3), two extra accounts, three
// listings and one pending application. Skipped when users already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []struct {
		fullName   string
		email      string
		password   string
		role       string
		department string
	}{
		{"Avery Johnson", "avery.johnson@example.com", "applicant123", models.RoleApplicant, ""},
		{"Morgan Blake", "morgan.blake@example.com", "manager456", models.RoleHiringManager, "Engineering"},
		{"Riley Chen", "admin@example.com", "admin789", models.RoleAdmin, ""},
		{"Jordan Smith", "jordan.smith@example.com", "applicant123", models.RoleApplicant, ""},
		{"Sam Rivera", "sam.rivera@example.com", "manager456", models.RoleHiringManager, "Design"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i, u := range users {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash seed password: %w", err)
			}
			user := models.User{
				ID:         uint(i + 1),
				FullName:   u.fullName,
				Email:      u.email,
				Password:   string(hash),
				Role:       u.role,
				Department: u.department,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.email, err)
			}
		}

		now := time.Now().UTC()
		jobs := []models.Job{
			{
				ID:              1,
				UserID:          2,
				Department:      "Engineering",
				ListingTitle:    "Senior Backend Engineer — Platform Team",
				JobTitle:        "Senior Backend Engineer",
				JobDescription:  "Own the services powering the hiring pipeline.",
				ExperienceLevel: "senior",
				ListingStatus:   models.ListingOpen,
				DateListed:      now,
			},
			{
				ID:              2,
				UserID:          2,
				Department:      "Engineering",
				ListingTitle:    "Frontend Developer — Portal Team",
				JobTitle:        "Frontend Developer",
				JobDescription:  "Build the applicant-facing single-page app.",
				ExperienceLevel: "mid",
				ListingStatus:   models.ListingOpen,
				DateListed:      now,
			},
			{
				ID:              3,
				UserID:          5,
				Department:      "Design",
				ListingTitle:    "Product Designer",
				JobTitle:        "Product Designer",
				JobDescription:  "Shape the recruiting experience end to end.",
				ExperienceLevel: "mid",
				ListingStatus:   models.ListingOpen,
				DateListed:      now,
			},
		}
		for i := range jobs {
			if err := tx.Create(&jobs[i]).Error; err != nil {
				return fmt.Errorf("failed to seed job %d: %w", jobs[i].ID, err)
			}
		}

		application := models.Application{
			ID:                1,
			UserID:            1,
			JobID:             1,
			DateApplied:       now,
			CoverLetter:       "I have been building backend systems for six years.",
			CustomResume:      "Avery Johnson — Backend Engineer",
			ApplicationStatus: models.StatusPending,
		}
		if err := tx.Create(&application).Error; err != nil {
			return fmt.Errorf("failed to seed application: %w", err)
		}

		// Explicit ids do not advance the serial sequences on PostgreSQL;
		// move them past the seeded rows so the next insert does not collide.
		if tx.Dialector.Name() == "postgres" {
			for _, table := range []string{"users", "jobs", "applications"} {
				q := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))", table, table)
				if err := tx.Exec(q).Error; err != nil {
					return fmt.Errorf("failed to advance %s id sequence: %w", table, err)
				}
			}
		}

		slog.Info("development dataset seeded", "users", len(users), "jobs", len(jobs))
		return nil
	})
}
