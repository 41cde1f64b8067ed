package services

import (
	"errors"
	"testing"

	"github.com/talentgate/recruiting-backend/internal/models"
)

func TestStatsRoleScopes(t *testing.T) {
	db := newTestDB(t)
	service := NewStatsService(db)
	applicant := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)
	other := createUser(t, db, "Jordan Smith", "jordan@example.com", "applicant123", models.RoleApplicant)
	manager := createUser(t, db, "Morgan Blake", "morgan@example.com", "manager456", models.RoleHiringManager)
	rival := createUser(t, db, "Sam Rivera", "sam@example.com", "manager456", models.RoleHiringManager)
	admin := createUser(t, db, "Riley Chen", "admin@example.com", "admin789", models.RoleAdmin)

	managerJob := createJob(t, db, manager.ID, "Backend Engineer")
	rivalJob := createJob(t, db, rival.ID, "Product Designer")
	db.Model(&models.Job{}).Where("id = ?", rivalJob.ID).Update("listing_status", models.ListingClosed)

	createApplication(t, db, applicant.ID, managerJob.ID, models.StatusPending)
	createApplication(t, db, applicant.ID, rivalJob.ID, models.StatusAccepted)
	createApplication(t, db, other.ID, managerJob.ID, models.StatusRejected)

	// Applicant sees only their own applications.
	applicantStats, err := service.Applicant(asCaller(applicant))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if applicantStats.Applications.Total != 2 ||
		applicantStats.Applications.Pending != 1 ||
		applicantStats.Applications.Accepted != 1 {
		t.Fatalf("unexpected applicant breakdown: %+v", applicantStats.Applications)
	}

	// Manager sees their listings and the applications to them.
	managerStats, err := service.Manager(asCaller(manager))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if managerStats.Jobs.Total != 1 || managerStats.Jobs.Open != 1 {
		t.Fatalf("unexpected manager job breakdown: %+v", managerStats.Jobs)
	}
	if managerStats.Applications.Total != 2 ||
		managerStats.Applications.Pending != 1 ||
		managerStats.Applications.Rejected != 1 {
		t.Fatalf("unexpected manager application breakdown: %+v", managerStats.Applications)
	}

	// Admin sees everything.
	adminStats, err := service.Admin(asCaller(admin))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if adminStats.Users.Total != 5 || adminStats.Users.Applicants != 2 ||
		adminStats.Users.HiringManagers != 2 || adminStats.Users.Admins != 1 {
		t.Fatalf("unexpected user breakdown: %+v", adminStats.Users)
	}
	if adminStats.Jobs.Total != 2 || adminStats.Jobs.Open != 1 || adminStats.Jobs.Closed != 1 {
		t.Fatalf("unexpected job breakdown: %+v", adminStats.Jobs)
	}
	if adminStats.Applications.Total != 3 {
		t.Fatalf("unexpected application breakdown: %+v", adminStats.Applications)
	}
}

func TestStatsWrongRoleForbidden(t *testing.T) {
	db := newTestDB(t)
	service := NewStatsService(db)
	applicant := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)
	manager := createUser(t, db, "Morgan Blake", "morgan@example.com", "manager456", models.RoleHiringManager)

	if _, err := service.Manager(asCaller(applicant)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := service.Admin(asCaller(manager)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := service.Applicant(asCaller(manager)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestManagerStatsWithNoJobs(t *testing.T) {
	db := newTestDB(t)
	service := NewStatsService(db)
	manager := createUser(t, db, "Morgan Blake", "morgan@example.com", "manager456", models.RoleHiringManager)

	stats, err := service.Manager(asCaller(manager))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if stats.Jobs.Total != 0 || stats.Applications.Total != 0 {
		t.Fatalf("expected empty breakdowns, got %+v", stats)
	}
}
