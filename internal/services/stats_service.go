package services

import (
	"github.com/talentgate/recruiting-backend/internal/dto"
	"github.com/talentgate/recruiting-backend/internal/models"
	"github.com/talentgate/recruiting-backend/internal/policy"
	"gorm.io/gorm"
)

// StatsService computes the dashboard aggregates. Each role sees only its
// own slice of the data: applicants their applications, managers their
// listings, admins everything.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) Applicant(caller policy.Caller) (*dto.ApplicantStats, error) {
	if !caller.IsApplicant() {
		return nil, ErrForbidden
	}

	apps, err := s.applicationBreakdown(s.db.Model(&models.Application{}).Where("user_id = ?", caller.ID))
	if err != nil {
		return nil, err
	}
	return &dto.ApplicantStats{Applications: *apps}, nil
}

func (s *StatsService) Manager(caller policy.Caller) (*dto.ManagerStats, error) {
	if !caller.IsManager() {
		return nil, ErrForbidden
	}

	jobs, err := s.jobBreakdown(s.db.Model(&models.Job{}).Where("user_id = ?", caller.ID))
	if err != nil {
		return nil, err
	}

	var jobIDs []uint
	if err := s.db.Model(&models.Job{}).Where("user_id = ?", caller.ID).Pluck("id", &jobIDs).Error; err != nil {
		return nil, err
	}

	apps := &dto.ApplicationBreakdown{}
	if len(jobIDs) > 0 {
		apps, err = s.applicationBreakdown(s.db.Model(&models.Application{}).Where("job_id IN ?", jobIDs))
		if err != nil {
			return nil, err
		}
	}

	return &dto.ManagerStats{Jobs: *jobs, Applications: *apps}, nil
}

func (s *StatsService) Admin(caller policy.Caller) (*dto.AdminStats, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	users := dto.UserBreakdown{}
	userCounts := []struct {
		Role  string
		Total int64
	}{}
	if err := s.db.Model(&models.User{}).Select("role, count(*) as total").Group("role").Scan(&userCounts).Error; err != nil {
		return nil, err
	}
	for _, row := range userCounts {
		users.Total += row.Total
		switch row.Role {
		case models.RoleApplicant:
			users.Applicants = row.Total
		case models.RoleHiringManager:
			users.HiringManagers = row.Total
		case models.RoleAdmin:
			users.Admins = row.Total
		}
	}

	jobs, err := s.jobBreakdown(s.db.Model(&models.Job{}))
	if err != nil {
		return nil, err
	}
	apps, err := s.applicationBreakdown(s.db.Model(&models.Application{}))
	if err != nil {
		return nil, err
	}

	return &dto.AdminStats{Users: users, Jobs: *jobs, Applications: *apps}, nil
}

func (s *StatsService) applicationBreakdown(query *gorm.DB) (*dto.ApplicationBreakdown, error) {
	rows := []struct {
		ApplicationStatus string
		Total             int64
	}{}
	if err := query.Select("application_status, count(*) as total").Group("application_status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := dto.ApplicationBreakdown{}
	for _, row := range rows {
		out.Total += row.Total
		switch row.ApplicationStatus {
		case models.StatusPending:
			out.Pending = row.Total
		case models.StatusReviewed:
			out.Reviewed = row.Total
		case models.StatusRejected:
			out.Rejected = row.Total
		case models.StatusAccepted:
			out.Accepted = row.Total
		}
	}
	return &out, nil
}

func (s *StatsService) jobBreakdown(query *gorm.DB) (*dto.JobBreakdown, error) {
	rows := []struct {
		ListingStatus string
		Total         int64
	}{}
	if err := query.Select("listing_status, count(*) as total").Group("listing_status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := dto.JobBreakdown{}
	for _, row := range rows {
		out.Total += row.Total
		switch row.ListingStatus {
		case models.ListingOpen:
			out.Open = row.Total
		case models.ListingClosed:
			out.Closed = row.Total
		}
	}
	return &out, nil
}
