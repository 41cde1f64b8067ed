package services

import (
	"errors"
	"fmt"

	"github.com/talentgate/recruiting-backend/internal/dto"
	"github.com/talentgate/recruiting-backend/internal/models"
	"github.com/talentgate/recruiting-backend/internal/policy"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Get returns a profile visible to its owner or an admin. The password
// hash never leaves the service (the model hides it from JSON as well).
func (s *UserService) Get(caller policy.Caller, userID uint) (*models.User, error) {
	if !policy.CanViewUser(caller, userID) {
		return nil, ErrForbidden
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// Update merges the non-nil fields of the request into the profile. Fields
// absent from the request are untouched; the id is never writable. Role and
// email changes require an admin caller.
func (s *UserService) Update(caller policy.Caller, userID uint, req *dto.UpdateUserRequest) (*models.User, error) {
	if !policy.CanModifyUser(caller, userID) {
		return nil, ErrForbidden
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Resume != nil {
		updates["resume"] = *req.Resume
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}
	if req.Email != nil || req.Role != nil {
		if !policy.CanChangeUserRole(caller) {
			return nil, ErrForbidden
		}
		if req.Role != nil {
			if !models.ValidRole(*req.Role) {
				return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *req.Role)
			}
			updates["role"] = *req.Role
		}
		if req.Email != nil {
			var existing models.User
			err := s.db.Where("email = ? AND id <> ?", *req.Email, userID).First(&existing).Error
			if err == nil {
				return nil, ErrEmailTaken
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			updates["email"] = *req.Email
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return &user, nil
}

// Delete removes the account and everything hanging off it: refresh tokens,
// the user's applications, their jobs, and applications to those jobs. One
// transaction, so no orphaned foreign keys survive.
func (s *UserService) Delete(caller policy.Caller, userID uint) error {
	if !policy.CanDeleteUser(caller, userID) {
		return ErrForbidden
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var jobIDs []uint
		if err := tx.Model(&models.Job{}).Where("user_id = ?", userID).Pluck("id", &jobIDs).Error; err != nil {
			return err
		}
		if len(jobIDs) > 0 {
			if err := tx.Where("job_id IN ?", jobIDs).Delete(&models.Application{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&models.Job{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
