package models

type DashboardStats struct {
	TotalEvents        int     `json:"total_events"`
	TotalRegistrations int     `json:"total_registrations"`
	UpcomingEvents     int     `json:"upcoming_events"`
	RecentEvents       []Event `json:"recent_events"`
}
