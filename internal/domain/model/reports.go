package model

// DashboardStats backs the dashboard's headline numbers.
type DashboardStats struct {
	TotalMembers    int     `json:"total_members"`
	ActiveMembers   int     `json:"active_members"`
	ExpiringSoon    int     `json:"expiring_soon"`
	ExpiredMembers  int     `json:"expired_members"`
	TodayCheckIns   int     `json:"today_check_ins"`
	TodayCollection float64 `json:"today_collection"`
	MembersWithDues int     `json:"members_with_dues"`
	TotalDues       float64 `json:"total_dues"`
}

// MembershipStats aggregates membership lifecycle counts.
type MembershipStats struct {
	TotalActive       int `json:"total_active"`
	TotalPaused       int `json:"total_paused"`
	TotalExpired      int `json:"total_expired"`
	ExpiringThisWeek  int `json:"expiring_this_week"`
	ExpiringThisMonth int `json:"expiring_this_month"`
}

// ExpiringMemberInfo is a member whose membership ends within the report window.
type ExpiringMemberInfo struct {
	MemberID        string  `json:"member_id"`
	MemberName      string  `json:"member_name"`
	MemberPhone     string  `json:"member_phone"`
	PlanName        string  `json:"plan_name"`
	EndDate         string  `json:"end_date"` // YYYY-MM-DD
	DaysUntilExpiry int     `json:"days_until_expiry"`
	AmountDue       float64 `json:"amount_due"`
}

// CollectionBreakdownDay is one day's slice of a collection report.
type CollectionBreakdownDay struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// CollectionReport aggregates payments over a date range.
type CollectionReport struct {
	FromDate          string                   `json:"from_date"` // YYYY-MM-DD
	ToDate            string                   `json:"to_date"`   // YYYY-MM-DD
	TotalAmount       float64                  `json:"total_amount"`
	TotalTransactions int                      `json:"total_transactions"`
	ByMode            map[string]float64       `json:"by_mode"`
	DailyBreakdown    []CollectionBreakdownDay `json:"daily_breakdown"`
}

// DuesMemberInfo is a member carrying an outstanding balance.
type DuesMemberInfo struct {
	MemberID      string  `json:"member_id"`
	MemberName    string  `json:"member_name"`
	MemberPhone   string  `json:"member_phone"`
	TotalDue      float64 `json:"total_due"`
	MembershipEnd *string `json:"membership_end"` // YYYY-MM-DD
}
