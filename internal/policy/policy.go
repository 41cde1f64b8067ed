// Package policy holds the portal's authorization matrix in one place.
// Services ask it yes/no questions; it never touches the store.
package policy

import "github.com/talentgate/recruiting-backend/internal/models"

// Caller is the identity resolved from the bearer credential.
type Caller struct {
	ID   uint
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

func (c Caller) IsManager() bool {
	return c.Role == models.RoleHiringManager
}

func (c Caller) IsApplicant() bool {
	return c.Role == models.RoleApplicant
}

// CanViewUser: a profile is visible to its owner and to admins.
func CanViewUser(caller Caller, userID uint) bool {
	return caller.ID == userID || caller.IsAdmin()
}

// CanModifyUser: self-service or admin.
func CanModifyUser(caller Caller, userID uint) bool {
	return caller.ID == userID || caller.IsAdmin()
}

// CanChangeUserRole: role and email reassignment are admin-only.
func CanChangeUserRole(caller Caller) bool {
	return caller.IsAdmin()
}

func CanDeleteUser(caller Caller, userID uint) bool {
	return caller.ID == userID || caller.IsAdmin()
}

func CanRegisterManager(caller Caller) bool {
	return caller.IsAdmin()
}

func CanCreateJob(caller Caller) bool {
	return caller.IsManager()
}

// CanModifyJob: the owning hiring manager only.
func CanModifyJob(caller Caller, job *models.Job) bool {
	return caller.IsManager() && caller.ID == job.UserID
}

func CanDeleteJob(caller Caller, job *models.Job) bool {
	return caller.IsManager() && caller.ID == job.UserID
}

func CanTransferJob(caller Caller) bool {
	return caller.IsAdmin()
}

func CanApply(caller Caller) bool {
	return caller.IsApplicant()
}

// CanViewApplication: the owning applicant, any hiring manager or an admin.
// Other applicants never see each other's applications.
func CanViewApplication(caller Caller, app *models.Application) bool {
	return caller.ID == app.UserID || caller.IsManager() || caller.IsAdmin()
}

// CanModifyApplication: the owning applicant edits their own documents.
func CanModifyApplication(caller Caller, app *models.Application) bool {
	return caller.IsApplicant() && caller.ID == app.UserID
}

func CanDeleteApplication(caller Caller, app *models.Application) bool {
	return caller.IsApplicant() && caller.ID == app.UserID
}

// CanReviewApplication: only the hiring manager owning the parent job may
// change an application's status.
func CanReviewApplication(caller Caller, job *models.Job) bool {
	return caller.IsManager() && caller.ID == job.UserID
}

// CanListJobApplications: the owning manager reviews the applicant list.
func CanListJobApplications(caller Caller, job *models.Job) bool {
	return caller.IsManager() && caller.ID == job.UserID
}
