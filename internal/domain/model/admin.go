package model

import "time"

// AdminStats is the admin dashboard counters block.
type AdminStats struct {
	TotalUsers int64 `json:"totalUsers"`
	Recruiters int64 `json:"recruiters"`
	Candidates int64 `json:"candidates"`
	TotalJobs  int64 `json:"totalJobs"`
	OpenJobs   int64 `json:"openJobs"`
	ClosedJobs int64 `json:"closedJobs"`
}

// AdminUser is one row of the admin users listing.
type AdminUser struct {
	ID        int64      `json:"userId"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// AdminJob is one row of the admin jobs listing.
type AdminJob struct {
	ID             int64     `json:"jobId"`
	Title          string    `json:"title"`
	Location       string    `json:"location,omitempty"`
	Status         JobStatus `json:"status"`
	RecruiterName  string    `json:"recruiterName,omitempty"`
	RecruiterEmail string    `json:"recruiterEmail,omitempty"`
}
