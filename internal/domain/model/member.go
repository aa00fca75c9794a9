package model

// Member is a gym member record.
type Member struct {
	ID                    string  `json:"id"`
	GymID                 string  `json:"gym_id"`
	MemberCode            *string `json:"member_code"`
	Name                  string  `json:"name"`
	Email                 *string `json:"email"`
	Phone                 string  `json:"phone"`
	AlternatePhone        *string `json:"alternate_phone"`
	Gender                *Gender `json:"gender"`
	DateOfBirth           *string `json:"date_of_birth"` // YYYY-MM-DD
	Address               *string `json:"address"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	PhotoURL              *string `json:"photo_url"`
	JoinedDate            string  `json:"joined_date"` // YYYY-MM-DD
	Notes                 *string `json:"notes"`
	IsActive              bool    `json:"is_active"`
}

// MemberWithMembership decorates a member with their current membership state.
type MemberWithMembership struct {
	Member
	CurrentMembershipStatus *MembershipStatus `json:"current_membership_status"`
	CurrentMembershipEnd    *string           `json:"current_membership_end"` // YYYY-MM-DD
	CurrentPlanName         *string           `json:"current_plan_name"`
	AmountDue               *float64          `json:"amount_due"`
}

// MemberSummary is the row shape of the paginated members listing.
type MemberSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	MemberCode *string `json:"member_code"`
	JoinedDate string  `json:"joined_date"` // YYYY-MM-DD
	IsActive   bool    `json:"is_active"`
}

// MemberListResponse is the paginated members listing.
type MemberListResponse struct {
	Items      []MemberSummary `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// MemberListQuery filters the members listing.
type MemberListQuery struct {
	Query    string
	Status   string
	Page     int
	PageSize int
}

// CreateMemberRequest registers a new member.
type CreateMemberRequest struct {
	Name                  string  `json:"name"`
	Email                 *string `json:"email,omitempty"`
	Phone                 string  `json:"phone"`
	AlternatePhone        *string `json:"alternate_phone,omitempty"`
	Gender                *Gender `json:"gender,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Address               *string `json:"address,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	JoinedDate            *string `json:"joined_date,omitempty"` // YYYY-MM-DD
	Notes                 *string `json:"notes,omitempty"`
	MemberCode            *string `json:"member_code,omitempty"`
}

// UpdateMemberRequest carries a partial member update. Nil fields are untouched.
type UpdateMemberRequest struct {
	Name                  *string `json:"name,omitempty"`
	Email                 *string `json:"email,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	AlternatePhone        *string `json:"alternate_phone,omitempty"`
	Gender                *Gender `json:"gender,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Address               *string `json:"address,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
	MemberCode            *string `json:"member_code,omitempty"`
}
