package api

import (
	"context"
	"net/url"

	"github.com/activehq/activehq-go/internal/domain/model"
)

// PaymentService records and reports collected payments.
type PaymentService struct {
	client *Client
}

// List returns a filtered, paginated payments listing.
func (s *PaymentService) List(ctx context.Context, q model.PaymentListQuery) (*model.PaymentListResponse, error) {
	query := url.Values{}
	setString(query, "member_id", q.MemberID)
	setString(query, "from_date", q.FromDate)
	setString(query, "to_date", q.ToDate)
	setString(query, "payment_mode", q.PaymentMode)
	setInt(query, "page", q.Page)
	setInt(query, "page_size", q.PageSize)

	var resp model.PaymentListResponse
	if err := s.client.get(ctx, "/payments", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get returns one payment.
func (s *PaymentService) Get(ctx context.Context, id string) (*model.Payment, error) {
	var payment model.Payment
	if err := s.client.get(ctx, "/payments/"+url.PathEscape(id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ForMember returns a member's payment history.
func (s *PaymentService) ForMember(ctx context.Context, memberID string) ([]model.Payment, error) {
	var payments []model.Payment
	if err := s.client.get(ctx, "/payments/member/"+url.PathEscape(memberID), nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Create records a payment.
func (s *PaymentService) Create(ctx context.Context, req model.CreatePaymentRequest) (*model.Payment, error) {
	var payment model.Payment
	if err := s.client.post(ctx, "/payments", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Daily returns one day's collection summary; date empty means today.
func (s *PaymentService) Daily(ctx context.Context, date string) (*model.DailyCollectionSummary, error) {
	query := url.Values{}
	setString(query, "target_date", date)

	var summary model.DailyCollectionSummary
	if err := s.client.get(ctx, "/payments/daily", query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CollectionRange returns daily collection summaries for a date range.
func (s *PaymentService) CollectionRange(ctx context.Context, fromDate, toDate string) ([]model.DailyCollectionSummary, error) {
	query := url.Values{}
	setString(query, "from_date", fromDate)
	setString(query, "to_date", toDate)

	var summaries []model.DailyCollectionSummary
	if err := s.client.get(ctx, "/payments/collection-range", query, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
