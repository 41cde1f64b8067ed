package services

import "errors"

// Sentinel errors shared by the service layer. Handlers match them with
// errors.Is and map them onto HTTP statuses; messages are safe to show to
// end users verbatim.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrEmailTaken         = errors.New("email already registered")

	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("invalid request")

	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")

	ErrJobClosed     = errors.New("job listing is closed")
	ErrInvalidStatus = errors.New("invalid application status")
	ErrNotManager    = errors.New("target user is not a hiring manager")
)
