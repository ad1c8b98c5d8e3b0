package models

// DashboardStats is the aggregate counters block of the admin dashboard.
type DashboardStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalOrganizers int64 `json:"totalOrganizers"`
	TotalAttendees  int64 `json:"totalAttendees"`
	TotalAdmins     int64 `json:"totalAdmins"`
	TotalEvents     int64 `json:"totalEvents"`
	PendingKyc      int64 `json:"pendingKyc"`
	ApprovedKyc     int64 `json:"approvedKyc"`
	RejectedKyc     int64 `json:"rejectedKyc"`
}

// ActivityEntry is one line of the recent-activity feed.
type ActivityEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// AdminDashboard is the full admin dashboard payload.
type AdminDashboard struct {
	Stats          DashboardStats  `json:"stats"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
}
