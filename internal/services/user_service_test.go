package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/talentgate/recruiting-backend/internal/dto"
	"github.com/talentgate/recruiting-backend/internal/models"
)

func TestGetUserVisibility(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	owner := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)
	other := createUser(t, db, "Jordan Smith", "jordan@example.com", "applicant123", models.RoleApplicant)
	admin := createUser(t, db, "Riley Chen", "admin@example.com", "admin789", models.RoleAdmin)

	if _, err := service.Get(asCaller(owner), owner.ID); err != nil {
		t.Fatalf("expected self read to succeed, got %v", err)
	}
	if _, err := service.Get(asCaller(admin), owner.ID); err != nil {
		t.Fatalf("expected admin read to succeed, got %v", err)
	}
	if _, err := service.Get(asCaller(other), owner.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other applicant, got %v", err)
	}
	if _, err := service.Get(asCaller(admin), 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserResponseNeverCarriesPassword(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	owner := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)

	user, err := service.Get(asCaller(owner), owner.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	body, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("failed to marshal user: %v", err)
	}
	if strings.Contains(strings.ToLower(string(body)), "password") {
		t.Fatalf("serialized user leaks password field: %s", body)
	}
}

func TestUpdateUserMergeSemantics(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	owner := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)

	phone := "555-0101"
	if _, err := service.Update(asCaller(owner), owner.ID, &dto.UpdateUserRequest{Phone: &phone}); err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}

	var stored models.User
	if err := db.First(&stored, "id = ?", owner.ID).Error; err != nil {
		t.Fatalf("expected user to exist: %v", err)
	}
	if stored.Phone != phone {
		t.Fatalf("expected phone %q, got %q", phone, stored.Phone)
	}
	if stored.FullName != "Avery Johnson" || stored.Email != "avery@example.com" {
		t.Fatal("fields absent from the partial update were mutated")
	}
	if stored.ID != owner.ID {
		t.Fatal("id was mutated by update")
	}
}

func TestUpdateUserRoleChangeIsAdminOnly(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	owner := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)
	admin := createUser(t, db, "Riley Chen", "admin@example.com", "admin789", models.RoleAdmin)

	role := models.RoleHiringManager
	if _, err := service.Update(asCaller(owner), owner.ID, &dto.UpdateUserRequest{Role: &role}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for self role change, got %v", err)
	}

	if _, err := service.Update(asCaller(admin), owner.ID, &dto.UpdateUserRequest{Role: &role}); err != nil {
		t.Fatalf("expected admin role change to succeed, got %v", err)
	}
	var stored models.User
	db.First(&stored, "id = ?", owner.ID)
	if stored.Role != models.RoleHiringManager {
		t.Fatalf("expected role hiring-manager, got %q", stored.Role)
	}

	bogus := "superuser"
	if _, err := service.Update(asCaller(admin), owner.ID, &dto.UpdateUserRequest{Role: &bogus}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown role, got %v", err)
	}
}

func TestGetUserStoreFailure(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	owner := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.Close()

	_, err = service.Get(asCaller(owner), owner.ID)
	if err == nil {
		t.Fatal("expected an error from a closed store")
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Fatalf("store failure reported as not found: %v", err)
	}
}

func TestUpdateUserForbiddenForOthers(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	owner := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)
	other := createUser(t, db, "Jordan Smith", "jordan@example.com", "applicant123", models.RoleApplicant)

	name := "Hacked"
	if _, err := service.Update(asCaller(other), owner.ID, &dto.UpdateUserRequest{FullName: &name}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	var stored models.User
	db.First(&stored, "id = ?", owner.ID)
	if stored.FullName != "Avery Johnson" {
		t.Fatal("record changed despite forbidden update")
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	applicant := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)
	manager := createUser(t, db, "Morgan Blake", "morgan@example.com", "manager456", models.RoleHiringManager)
	job := createJob(t, db, manager.ID, "Backend Engineer")
	createApplication(t, db, applicant.ID, job.ID, models.StatusPending)

	if err := service.Delete(asCaller(manager), manager.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}

	var jobCount, appCount int64
	db.Model(&models.Job{}).Where("user_id = ?", manager.ID).Count(&jobCount)
	if jobCount != 0 {
		t.Fatalf("expected manager's jobs to be removed, %d left", jobCount)
	}
	db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&appCount)
	if appCount != 0 {
		t.Fatalf("expected applications to the deleted jobs to be removed, %d left", appCount)
	}

	// Second delete of the same account reports not found.
	if err := service.Delete(asCaller(manager), manager.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on repeat delete, got %v", err)
	}
}

func TestDeleteUserForbiddenForOthers(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	owner := createUser(t, db, "Avery Johnson", "avery@example.com", "applicant123", models.RoleApplicant)
	other := createUser(t, db, "Jordan Smith", "jordan@example.com", "applicant123", models.RoleApplicant)

	if err := service.Delete(asCaller(other), owner.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	var count int64
	db.Model(&models.User{}).Where("id = ?", owner.ID).Count(&count)
	if count != 1 {
		t.Fatal("record deleted despite forbidden call")
	}
}
