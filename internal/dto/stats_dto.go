package dto

type ApplicationBreakdown struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Reviewed int64 `json:"reviewed"`
	Rejected int64 `json:"rejected"`
	Accepted int64 `json:"accepted"`
}

type JobBreakdown struct {
	Total  int64 `json:"total"`
	Open   int64 `json:"open"`
	Closed int64 `json:"closed"`
}

type UserBreakdown struct {
	Total          int64 `json:"total"`
	Applicants     int64 `json:"applicants"`
	HiringManagers int64 `json:"hiringManagers"`
	Admins         int64 `json:"admins"`
}

// ApplicantStats covers the caller's own applications.
type ApplicantStats struct {
	Applications ApplicationBreakdown `json:"applications"`
}

// ManagerStats covers the caller's listings and the applications to them.
type ManagerStats struct {
	Jobs         JobBreakdown         `json:"jobs"`
	Applications ApplicationBreakdown `json:"applications"`
}

// AdminStats is portal-wide.
type AdminStats struct {
	Users        UserBreakdown        `json:"users"`
	Jobs         JobBreakdown         `json:"jobs"`
	Applications ApplicationBreakdown `json:"applications"`
}
