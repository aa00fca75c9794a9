package api

import (
	"context"
	"net/url"

	"github.com/activehq/activehq-go/internal/domain/model"
)

// PlanService manages the gym's subscription plans.
type PlanService struct {
	client *Client
}

// List returns all plans, optionally including deactivated ones.
func (s *PlanService) List(ctx context.Context, includeInactive bool) ([]model.Plan, error) {
	query := url.Values{}
	if includeInactive {
		query.Set("include_inactive", "true")
	}

	var plans []model.Plan
	if err := s.client.get(ctx, "/plans", query, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Active returns only plans currently offered.
func (s *PlanService) Active(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	if err := s.client.get(ctx, "/plans/active", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Get returns one plan.
func (s *PlanService) Get(ctx context.Context, id string) (*model.Plan, error) {
	var plan model.Plan
	if err := s.client.get(ctx, "/plans/"+url.PathEscape(id), nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Create adds a plan.
func (s *PlanService) Create(ctx context.Context, req model.CreatePlanRequest) (*model.Plan, error) {
	var plan model.Plan
	if err := s.client.post(ctx, "/plans", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Update applies a partial plan update.
func (s *PlanService) Update(ctx context.Context, id string, req model.UpdatePlanRequest) (*model.Plan, error) {
	var plan model.Plan
	if err := s.client.put(ctx, "/plans/"+url.PathEscape(id), req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Delete deactivates a plan.
func (s *PlanService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/plans/"+url.PathEscape(id))
}
