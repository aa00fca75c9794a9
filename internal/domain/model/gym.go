package model

// Gym is the tenant record every other resource is scoped to.
type Gym struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Slug               string             `json:"slug"`
	OwnerName          string             `json:"owner_name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	Address            *string            `json:"address"`
	City               *string            `json:"city"`
	State              *string            `json:"state"`
	Pincode            *string            `json:"pincode"`
	GSTNumber          *string            `json:"gst_number"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	SubscriptionStart  *string            `json:"subscription_start"` // YYYY-MM-DD
	SubscriptionEnd    *string            `json:"subscription_end"`   // YYYY-MM-DD
	SetupFeePaid       bool               `json:"setup_fee_paid"`
	BillingCycle       *string            `json:"billing_cycle"` // monthly or yearly
	Settings           map[string]any     `json:"settings"`
	IsActive           bool               `json:"is_active"`
}

// UpdateGymRequest carries a partial update of the gym profile.
// Nil fields are left untouched by the server.
type UpdateGymRequest struct {
	Name      *string `json:"name,omitempty"`
	OwnerName *string `json:"owner_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Pincode   *string `json:"pincode,omitempty"`
	GSTNumber *string `json:"gst_number,omitempty"`
}

// UpdateGymSettingsRequest replaces the gym's settings document.
type UpdateGymSettingsRequest struct {
	Settings map[string]any `json:"settings"`
}
