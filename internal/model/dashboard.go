package model

// DashboardStats holds dashboard counters
type DashboardStats struct {
	TotalCustomers      int `json:"totalCustomers"`
	OpenFollowups       int `json:"openFollowups"`
	TodayFollowupsCount int `json:"todayFollowupsCount"`
}

// DashboardSummary is the result of dashboard reads
type DashboardSummary struct {
	Stats    DashboardStats      `json:"stats"`
	Today    []*CustomerFollowup `json:"today"`
	Upcoming []*CustomerFollowup `json:"upcoming"`
}
