package model

// Payment is a collected payment, optionally tied to a membership period.
type Payment struct {
	ID              string      `json:"id"`
	GymID           string      `json:"gym_id"`
	MemberID        string      `json:"member_id"`
	MembershipID    *string     `json:"membership_id"`
	Amount          float64     `json:"amount"`
	TaxAmount       float64     `json:"tax_amount"`
	TotalAmount     float64     `json:"total_amount"`
	PaymentMode     PaymentMode `json:"payment_mode"`
	PaymentDate     string      `json:"payment_date"` // YYYY-MM-DD
	ReferenceNumber *string     `json:"reference_number"`
	Notes           *string     `json:"notes"`
	ReceivedBy      *string     `json:"received_by"`

	// Denormalised display fields the API joins in.
	MemberName     *string `json:"member_name"`
	MemberPhone    *string `json:"member_phone"`
	ReceivedByName *string `json:"received_by_name"`
}

// PaymentSummary is the row shape of the payments listing.
type PaymentSummary struct {
	ID          string      `json:"id"`
	MemberName  string      `json:"member_name"`
	Amount      float64     `json:"amount"`
	PaymentMode PaymentMode `json:"payment_mode"`
	PaymentDate string      `json:"payment_date"` // YYYY-MM-DD
}

// PaymentListResponse is the paginated payments listing plus a running total.
type PaymentListResponse struct {
	Items       []PaymentSummary `json:"items"`
	Total       int              `json:"total"`
	TotalAmount float64          `json:"total_amount"`
	Page        int              `json:"page"`
	PageSize    int              `json:"page_size"`
}

// PaymentListQuery filters the payments listing.
type PaymentListQuery struct {
	MemberID    string
	FromDate    string // YYYY-MM-DD
	ToDate      string // YYYY-MM-DD
	PaymentMode string
	Page        int
	PageSize    int
}

// CreatePaymentRequest records a payment.
type CreatePaymentRequest struct {
	MemberID        string      `json:"member_id"`
	MembershipID    *string     `json:"membership_id,omitempty"`
	Amount          float64     `json:"amount"`
	TaxAmount       *float64    `json:"tax_amount,omitempty"`
	PaymentMode     PaymentMode `json:"payment_mode"`
	PaymentDate     *string     `json:"payment_date,omitempty"` // YYYY-MM-DD
	ReferenceNumber *string     `json:"reference_number,omitempty"`
	Notes           *string     `json:"notes,omitempty"`
}

// DailyCollectionSummary aggregates one day's collections.
type DailyCollectionSummary struct {
	Date         string             `json:"date"` // YYYY-MM-DD
	TotalAmount  float64            `json:"total_amount"`
	PaymentCount int                `json:"payment_count"`
	ByMode       map[string]float64 `json:"by_mode"`
}
