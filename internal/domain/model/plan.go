package model

// Plan is a subscription plan a gym sells (duration + price).
type Plan struct {
	ID           string  `json:"id"`
	GymID        string  `json:"gym_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DurationDays int     `json:"duration_days"`
	Price        float64 `json:"price"`
	IsActive     bool    `json:"is_active"`
}

// CreatePlanRequest creates a subscription plan.
type CreatePlanRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	DurationDays int     `json:"duration_days"`
	Price        float64 `json:"price"`
}

// UpdatePlanRequest carries a partial plan update. Nil fields are untouched.
type UpdatePlanRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	DurationDays *int     `json:"duration_days,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}
