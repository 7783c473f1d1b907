package models

// WeeklyStats is the dashboard snapshot: week-scoped figures computed over
// a Monday..Sunday window plus several all-time counts.
type WeeklyStats struct {
	TotalMembers       int     `json:"totalMembers"`
	ActiveMembers      int     `json:"activeMembers"`
	InactiveMembers    int     `json:"inactiveMembers"`
	ActiveMemberships  int     `json:"activeMemberships"`
	ExpiredMemberships int     `json:"expiredMemberships"`
	PendingRenewals    int     `json:"pendingRenewals"`
	TotalRevenue       float64 `json:"totalRevenue"`
	NewMembers         int     `json:"newMembers"`
	FulltimeMembers    int     `json:"fulltimeMembers"`
	OnetimeMembers     int     `json:"onetimeMembers"`
}
