package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/talentgate/recruiting-backend/internal/dto"
	"github.com/talentgate/recruiting-backend/internal/models"
	"github.com/talentgate/recruiting-backend/internal/pagination"
	"github.com/talentgate/recruiting-backend/internal/policy"
	"gorm.io/gorm"
)

type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// Create files an application for the calling applicant. The owner, status
// and application date are server-assigned. The job must exist and still be
// open.
func (s *ApplicationService) Create(caller policy.Caller, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if !policy.CanApply(caller) {
		return nil, ErrForbidden
	}

	var job models.Job
	if err := s.db.First(&job, "id = ?", req.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job.ListingStatus != models.ListingOpen {
		return nil, ErrJobClosed
	}

	app := models.Application{
		UserID:            caller.ID,
		JobID:             req.JobID,
		DateApplied:       time.Now().UTC(),
		CoverLetter:       req.CoverLetter,
		CustomResume:      req.CustomResume,
		ApplicationStatus: models.StatusPending,
	}

	if err := s.db.Create(&app).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &app, nil
}

// Get is visible to the owning applicant, any hiring manager and admins;
// other applicants are refused.
func (s *ApplicationService) Get(caller policy.Caller, appID uint) (*models.Application, error) {
	var app models.Application
	if err := s.db.First(&app, "id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	if !policy.CanViewApplication(caller, &app) {
		return nil, ErrForbidden
	}
	return &app, nil
}

// Update lets the owning applicant revise their submitted documents. Status
// changes go through UpdateStatus instead.
func (s *ApplicationService) Update(caller policy.Caller, appID uint, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	var app models.Application
	if err := s.db.First(&app, "id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	if !policy.CanModifyApplication(caller, &app) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.CoverLetter != nil {
		updates["cover_letter"] = *req.CoverLetter
	}
	if req.CustomResume != nil {
		updates["custom_resume"] = *req.CustomResume
	}

	if len(updates) > 0 {
		if err := s.db.Model(&app).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update application: %w", err)
		}
	}
	return &app, nil
}

// UpdateStatus moves an application through the review pipeline. Only the
// hiring manager owning the parent job may call it. Accepting closes the
// job in the same transaction, so the cascade can never half-apply.
func (s *ApplicationService) UpdateStatus(caller policy.Caller, appID uint, status string) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	var app models.Application
	if err := s.db.First(&app, "id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	var job models.Job
	if err := s.db.First(&job, "id = ?", app.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if !policy.CanReviewApplication(caller, &job) {
		return nil, ErrForbidden
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&app).Update("application_status", status).Error; err != nil {
			return err
		}
		if status == models.StatusAccepted {
			closedAt := time.Now().UTC()
			if err := tx.Model(&job).Updates(map[string]interface{}{
				"listing_status": models.ListingClosed,
				"date_closed":    closedAt,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return &app, nil
}

// Delete withdraws the application. Owner-applicant only; a second call on
// the same id reports not found.
func (s *ApplicationService) Delete(caller policy.Caller, appID uint) error {
	var app models.Application
	if err := s.db.First(&app, "id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("failed to load application: %w", err)
	}
	if !policy.CanDeleteApplication(caller, &app) {
		return ErrForbidden
	}
	return s.db.Delete(&app).Error
}

// ListByJob returns one page of a job's applications joined with each
// applicant's full name, for the owning manager's review screen.
func (s *ApplicationService) ListByJob(caller policy.Caller, jobID uint, p pagination.Params) (*dto.ApplicationListResponse, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if !policy.CanListJobApplications(caller, &job) {
		return nil, ErrForbidden
	}

	var total int64
	if err := s.db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	rows := []dto.ApplicationRow{}
	err := s.db.Table("applications").
		Select("applications.*, users.full_name AS applicant_name").
		Joins("JOIN users ON users.id = applications.user_id").
		Where("applications.job_id = ?", jobID).
		Order("applications.id").
		Limit(p.Items).
		Offset(p.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return &dto.ApplicationListResponse{
		Total:        total,
		Page:         p.Page,
		Items:        p.Items,
		Applications: rows,
	}, nil
}
