package model

// Membership is one paid (or owing) period linking a member to a plan.
type Membership struct {
	ID          string           `json:"id"`
	GymID       string           `json:"gym_id"`
	MemberID    string           `json:"member_id"`
	PlanID      string           `json:"plan_id"`
	StartDate   string           `json:"start_date"` // YYYY-MM-DD
	EndDate     string           `json:"end_date"`   // YYYY-MM-DD
	AmountTotal float64          `json:"amount_total"`
	AmountPaid  float64          `json:"amount_paid"`
	AmountDue   float64          `json:"amount_due"`
	Status      MembershipStatus `json:"status"`
	Notes       *string          `json:"notes"`
	CreatedBy   *string          `json:"created_by"`

	// Denormalised display fields the API joins in.
	MemberName  *string `json:"member_name"`
	MemberPhone *string `json:"member_phone"`
	PlanName    *string `json:"plan_name"`
}

// MembershipSummary is the row shape of the memberships listing.
type MembershipSummary struct {
	ID         string           `json:"id"`
	MemberID   string           `json:"member_id"`
	MemberName string           `json:"member_name"`
	PlanName   string           `json:"plan_name"`
	StartDate  string           `json:"start_date"` // YYYY-MM-DD
	EndDate    string           `json:"end_date"`   // YYYY-MM-DD
	Status     MembershipStatus `json:"status"`
	AmountDue  float64          `json:"amount_due"`
}

// MembershipListResponse is the paginated memberships listing.
type MembershipListResponse struct {
	Items    []MembershipSummary `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// MembershipListQuery filters the memberships listing.
type MembershipListQuery struct {
	Status   string
	Page     int
	PageSize int
}

// CreateMembershipRequest starts a membership period for a member.
type CreateMembershipRequest struct {
	MemberID    string   `json:"member_id"`
	PlanID      string   `json:"plan_id"`
	StartDate   *string  `json:"start_date,omitempty"` // YYYY-MM-DD
	AmountTotal *float64 `json:"amount_total,omitempty"`
	AmountPaid  *float64 `json:"amount_paid,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// RenewMembershipRequest renews a member's membership, optionally on a new plan.
type RenewMembershipRequest struct {
	PlanID      *string  `json:"plan_id,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"` // YYYY-MM-DD
	AmountTotal *float64 `json:"amount_total,omitempty"`
	AmountPaid  *float64 `json:"amount_paid,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}
