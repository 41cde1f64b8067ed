package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/talentgate/recruiting-backend/internal/config"
	"github.com/talentgate/recruiting-backend/internal/models"
	"github.com/talentgate/recruiting-backend/internal/policy"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.RefreshToken{},
		&models.SystemLog{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, fullName, email, password, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{FullName: fullName, Email: email, Password: string(hash), Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createJob(t *testing.T, db *gorm.DB, ownerID uint, title string) models.Job {
	t.Helper()
	job := models.Job{
		UserID:          ownerID,
		Department:      "Engineering",
		ListingTitle:    title,
		JobTitle:        title,
		JobDescription:  "description",
		ExperienceLevel: "mid",
		ListingStatus:   models.ListingOpen,
		DateListed:      time.Now().UTC(),
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("failed to create job: %v", err)
	}
	return job
}

func createApplication(t *testing.T, db *gorm.DB, userID, jobID uint, status string) models.Application {
	t.Helper()
	app := models.Application{
		UserID:            userID,
		JobID:             jobID,
		DateApplied:       time.Now().UTC(),
		CoverLetter:       "cover letter",
		CustomResume:      "resume",
		ApplicationStatus: status,
	}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("failed to create application: %v", err)
	}
	return app
}

func asCaller(u models.User) policy.Caller {
	return policy.Caller{ID: u.ID, Role: u.Role}
}
