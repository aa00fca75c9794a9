package api

import (
	"context"

	"github.com/activehq/activehq-go/internal/domain/model"
)

// GymService reads and updates the current gym profile.
type GymService struct {
	client *Client
}

// Current returns the gym the session belongs to.
func (s *GymService) Current(ctx context.Context) (*model.Gym, error) {
	var gym model.Gym
	if err := s.client.get(ctx, "/gym/current", nil, &gym); err != nil {
		return nil, err
	}
	return &gym, nil
}

// Update applies a partial update to the gym profile and refreshes the
// session's copy.
func (s *GymService) Update(ctx context.Context, req model.UpdateGymRequest) (*model.Gym, error) {
	var gym model.Gym
	if err := s.client.put(ctx, "/gym/current", req, &gym); err != nil {
		return nil, err
	}
	s.client.session.SetGym(ctx, &gym)
	return &gym, nil
}

// UpdateSettings replaces the gym's settings document.
func (s *GymService) UpdateSettings(ctx context.Context, settings map[string]any) (*model.Gym, error) {
	var gym model.Gym
	req := model.UpdateGymSettingsRequest{Settings: settings}
	if err := s.client.put(ctx, "/gym/current/settings", req, &gym); err != nil {
		return nil, err
	}
	s.client.session.SetGym(ctx, &gym)
	return &gym, nil
}
