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

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// Create opens a listing owned by the calling hiring manager. Ownership and
// the listing date are server-assigned, never taken from the payload.
func (s *JobService) Create(caller policy.Caller, req *dto.CreateJobRequest) (*models.Job, error) {
	if !policy.CanCreateJob(caller) {
		return nil, ErrForbidden
	}
	if req.ListingTitle == "" || req.JobTitle == "" || req.Department == "" {
		return nil, fmt.Errorf("%w: department, listing title and job title are required", ErrValidation)
	}

	job := models.Job{
		UserID:                caller.ID,
		Department:            req.Department,
		ListingTitle:          req.ListingTitle,
		JobTitle:              req.JobTitle,
		JobDescription:        req.JobDescription,
		ExperienceLevel:       req.ExperienceLevel,
		AdditionalInformation: req.AdditionalInformation,
		ListingStatus:         models.ListingOpen,
		DateListed:            time.Now().UTC(),
	}

	if err := s.db.Create(&job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &job, nil
}

// Get is readable by any authenticated caller; listings are public inside
// the portal.
func (s *JobService) Get(jobID uint) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return &job, nil
}

// Update merges the non-nil request fields into the listing. ID, owner and
// dateListed are preserved unconditionally.
func (s *JobService) Update(caller policy.Caller, jobID uint, req *dto.UpdateJobRequest) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if !policy.CanModifyJob(caller, &job) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.ListingTitle != nil {
		updates["listing_title"] = *req.ListingTitle
	}
	if req.JobTitle != nil {
		updates["job_title"] = *req.JobTitle
	}
	if req.JobDescription != nil {
		updates["job_description"] = *req.JobDescription
	}
	if req.ExperienceLevel != nil {
		updates["experience_level"] = *req.ExperienceLevel
	}
	if req.AdditionalInformation != nil {
		updates["additional_information"] = *req.AdditionalInformation
	}
	if req.ListingStatus != nil {
		switch *req.ListingStatus {
		case models.ListingOpen:
			updates["listing_status"] = models.ListingOpen
			updates["date_closed"] = nil
		case models.ListingClosed:
			updates["listing_status"] = models.ListingClosed
			updates["date_closed"] = time.Now().UTC()
		default:
			return nil, fmt.Errorf("%w: unknown listing status %q", ErrValidation, *req.ListingStatus)
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&job).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update job: %w", err)
		}
	}
	return &job, nil
}

// Transfer reassigns a listing to another hiring manager. Admin-only; the
// (jobId, fromUserId) pair must match the current owner or the transfer is
// rejected as not found, which makes stale retries fail loudly.
func (s *JobService) Transfer(caller policy.Caller, req *dto.TransferJobRequest) (*models.Job, error) {
	if !policy.CanTransferJob(caller) {
		return nil, ErrForbidden
	}

	var target models.User
	if err := s.db.First(&target, "id = ?", req.ToUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if target.Role != models.RoleHiringManager {
		return nil, ErrNotManager
	}

	var job models.Job
	if err := s.db.Where("id = ? AND user_id = ?", req.JobID, req.FromUserID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	if err := s.db.Model(&job).Update("user_id", req.ToUserID).Error; err != nil {
		return nil, fmt.Errorf("failed to transfer job: %w", err)
	}
	return &job, nil
}

// Delete removes a listing and its applications. Second call on the same id
// reports not found.
func (s *JobService) Delete(caller policy.Caller, jobID uint) error {
	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to load job: %w", err)
	}
	if !policy.CanDeleteJob(caller, &job) {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
}

// List returns one page of listings ordered by id, plus the total count so
// the client can page through the whole collection without gaps.
func (s *JobService) List(p pagination.Params) (*dto.JobListResponse, error) {
	var total int64
	if err := s.db.Model(&models.Job{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	var jobs []models.Job
	if err := s.db.Order("id").Limit(p.Items).Offset(p.Offset()).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &dto.JobListResponse{
		Total: total,
		Page:  p.Page,
		Items: p.Items,
		Jobs:  jobs,
	}, nil
}
