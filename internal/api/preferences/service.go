package preferences

import (
	"context"

	"github.com/showforge/episodic/internal/store"
)

type preferenceStore interface {
	Upsert(ctx context.Context, prefs *store.Preferences) error
	Get(ctx context.Context, userID string) (*store.Preferences, error)
}

type Service struct {
	prefs preferenceStore
}

func NewService(prefs preferenceStore) *Service {
	return &Service{prefs: prefs}
}

func (s *Service) Get(ctx context.Context, userID string) (*store.Preferences, error) {
	return s.prefs.Get(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID string, req *UpdateRequest) (*store.Preferences, error) {
	prefs := &store.Preferences{
		UserID:       userID,
		Tone:         req.Tone,
		Style:        req.Style,
		SystemPrompt: req.SystemPrompt,
	}
	if err := s.prefs.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
