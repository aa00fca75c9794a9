package api

import (
	"context"
	"net/url"

	"github.com/activehq/activehq-go/internal/domain/model"
)

// MembershipService manages membership periods.
type MembershipService struct {
	client *Client
}

// List returns a filtered, paginated memberships listing.
func (s *MembershipService) List(ctx context.Context, q model.MembershipListQuery) (*model.MembershipListResponse, error) {
	query := url.Values{}
	setString(query, "status", q.Status)
	setInt(query, "page", q.Page)
	setInt(query, "page_size", q.PageSize)

	var resp model.MembershipListResponse
	if err := s.client.get(ctx, "/memberships", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get returns one membership.
func (s *MembershipService) Get(ctx context.Context, id string) (*model.Membership, error) {
	var membership model.Membership
	if err := s.client.get(ctx, "/memberships/"+url.PathEscape(id), nil, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// ForMember returns every membership a member has held.
func (s *MembershipService) ForMember(ctx context.Context, memberID string) ([]model.Membership, error) {
	var memberships []model.Membership
	if err := s.client.get(ctx, "/memberships/member/"+url.PathEscape(memberID), nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// Create starts a membership period.
func (s *MembershipService) Create(ctx context.Context, req model.CreateMembershipRequest) (*model.Membership, error) {
	var membership model.Membership
	if err := s.client.post(ctx, "/memberships", req, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// Renew renews a member's membership, optionally on a new plan.
func (s *MembershipService) Renew(ctx context.Context, memberID string, req model.RenewMembershipRequest) (*model.Membership, error) {
	path := "/memberships/member/" + url.PathEscape(memberID) + "/renew"
	var membership model.Membership
	if err := s.client.post(ctx, path, req, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// Pause pauses an active membership.
func (s *MembershipService) Pause(ctx context.Context, id string) (*model.Membership, error) {
	return s.transition(ctx, id, "pause")
}

// Resume resumes a paused membership.
func (s *MembershipService) Resume(ctx context.Context, id string) (*model.Membership, error) {
	return s.transition(ctx, id, "resume")
}

// Cancel cancels a membership.
func (s *MembershipService) Cancel(ctx context.Context, id string) (*model.Membership, error) {
	return s.transition(ctx, id, "cancel")
}

func (s *MembershipService) transition(ctx context.Context, id, action string) (*model.Membership, error) {
	var membership model.Membership
	path := "/memberships/" + url.PathEscape(id) + "/" + action
	if err := s.client.post(ctx, path, nil, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}
