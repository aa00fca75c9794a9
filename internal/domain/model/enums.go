package model

// UserRole represents a staff account's authorization role within a gym.
type UserRole string

const (
	RoleOwner   UserRole = "owner"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// Valid returns true if the role is one the API recognises.
func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleStaff:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r UserRole) String() string { return string(r) }

// Gender is the optional gender recorded on a member profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid returns true if the gender value is one the API recognises.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// MembershipStatus tracks the lifecycle of a membership period.
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipExpired   MembershipStatus = "expired"
	MembershipPaused    MembershipStatus = "paused"
	MembershipCancelled MembershipStatus = "cancelled"
)

// Valid returns true if the status is one the API recognises.
func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipActive, MembershipExpired, MembershipPaused, MembershipCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the membership status.
func (s MembershipStatus) String() string { return string(s) }

// PaymentMode is how a payment was collected at the front desk.
type PaymentMode string

const (
	PaymentCash         PaymentMode = "cash"
	PaymentUPI          PaymentMode = "upi"
	PaymentCard         PaymentMode = "card"
	PaymentBankTransfer PaymentMode = "bank_transfer"
	PaymentOther        PaymentMode = "other"
)

// Valid returns true if the payment mode is one the API recognises.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentBankTransfer, PaymentOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the payment mode.
func (m PaymentMode) String() string { return string(m) }

// SubscriptionStatus is the gym's own billing state on the platform.
type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)
