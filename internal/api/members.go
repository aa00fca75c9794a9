package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/activehq/activehq-go/internal/domain/model"
)

// MemberService manages gym member records.
type MemberService struct {
	client *Client
}

// List returns a filtered, paginated members listing.
func (s *MemberService) List(ctx context.Context, q model.MemberListQuery) (*model.MemberListResponse, error) {
	query := url.Values{}
	setString(query, "query", q.Query)
	setString(query, "status", q.Status)
	setInt(query, "page", q.Page)
	setInt(query, "page_size", q.PageSize)

	var resp model.MemberListResponse
	if err := s.client.get(ctx, "/members", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get returns one member together with their current membership state.
func (s *MemberService) Get(ctx context.Context, id string) (*model.MemberWithMembership, error) {
	var member model.MemberWithMembership
	if err := s.client.get(ctx, "/members/"+url.PathEscape(id), nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Create registers a new member.
func (s *MemberService) Create(ctx context.Context, req model.CreateMemberRequest) (*model.Member, error) {
	var member model.Member
	if err := s.client.post(ctx, "/members", req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Update applies a partial member update.
func (s *MemberService) Update(ctx context.Context, id string, req model.UpdateMemberRequest) (*model.Member, error) {
	var member model.Member
	if err := s.client.put(ctx, "/members/"+url.PathEscape(id), req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Delete soft-deletes a member.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/members/"+url.PathEscape(id))
}

// Reactivate restores a soft-deleted member.
func (s *MemberService) Reactivate(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	if err := s.client.post(ctx, "/members/"+url.PathEscape(id)+"/reactivate", nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Expiring returns members whose membership ends within the given days.
func (s *MemberService) Expiring(ctx context.Context, days int) ([]model.MemberWithMembership, error) {
	query := url.Values{}
	setInt(query, "days", days)

	var members []model.MemberWithMembership
	if err := s.client.get(ctx, "/members/expiring", query, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// WithDues returns members carrying an outstanding balance.
func (s *MemberService) WithDues(ctx context.Context) ([]model.MemberWithMembership, error) {
	var members []model.MemberWithMembership
	if err := s.client.get(ctx, "/members/with-dues", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setInt(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
