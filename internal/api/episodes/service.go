package episodes

import (
	"context"
	"time"

	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/prompts"
	"github.com/showforge/episodic/internal/store"
	"github.com/showforge/episodic/internal/utils"
)

const scriptEngineID = "script-engine-v1"

type generator interface {
	Generate(ctx context.Context, req generation.GenerationRequest) (*generation.GenerationResult, error)
}

type episodeStore interface {
	Insert(ctx context.Context, ep *store.Episode) error
	GetByID(ctx context.Context, id string) (*store.Episode, error)
	ListBySeries(ctx context.Context, series string, limit int) ([]store.Episode, error)
	UpdateContent(ctx context.Context, id, content string) (*store.Episode, error)
	SetLocked(ctx context.Context, id string, locked bool) (*store.Episode, error)
}

type auditSink interface {
	Enqueue(rec store.GenerationRecord)
}

type preferenceGetter interface {
	Get(ctx context.Context, userID string) (*store.Preferences, error)
}

type Service struct {
	orch     generator
	episodes episodeStore
	prefs    preferenceGetter
	audit    auditSink
}

func NewService(orch generator, episodes episodeStore, prefs preferenceGetter, audit auditSink) *Service {
	return &Service{orch: orch, episodes: episodes, prefs: prefs, audit: audit}
}

// Create generates a script for the premise and persists it as a new
// unlocked draft at version 1. Stored user preferences fill in the tone and
// system prompt when the request leaves them empty.
func (s *Service) Create(ctx context.Context, requestID string, req *CreateRequest) (*store.Episode, generation.Metadata, error) {
	forced, err := generation.ParseProviderID(req.ForcedProvider)
	if err != nil {
		return nil, generation.Metadata{}, err
	}

	tone := req.Tone
	systemPrompt := ""
	if req.UserID != "" {
		if userPrefs, err := s.prefs.Get(ctx, req.UserID); err == nil {
			if tone == "" {
				tone = userPrefs.Tone
			}
			systemPrompt = userPrefs.SystemPrompt
		}
	}

	prompt := prompts.Script(prompts.ScriptInput{
		Series:  req.Series,
		Title:   req.Title,
		Premise: req.Premise,
		Tone:    tone,
	})

	start := time.Now()
	res, genErr := s.orch.Generate(ctx, generation.GenerationRequest{
		Prompt:         prompt,
		SystemPrompt:   systemPrompt,
		EngineID:       scriptEngineID,
		ForcedProvider: forced,
	})

	rec := store.GenerationRecord{
		ID:         utils.NewID(),
		RequestID:  requestID,
		EngineID:   scriptEngineID,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if genErr != nil {
		msg := genErr.Error()
		rec.Outcome = "failure"
		rec.Error = &msg
	} else {
		rec.Outcome = "success"
		rec.Provider = string(res.Provider)
		rec.Model = res.Model
		rec.ContentLength = res.Metadata.ContentLength
	}
	s.audit.Enqueue(rec)

	if genErr != nil {
		return nil, generation.Metadata{}, genErr
	}

	ep := &store.Episode{
		ID:       utils.NewID(),
		Series:   req.Series,
		Title:    req.Title,
		Premise:  req.Premise,
		Content:  res.Content,
		EngineID: scriptEngineID,
		Provider: string(res.Provider),
		Model:    res.Model,
	}
	if err := s.episodes.Insert(ctx, ep); err != nil {
		return nil, generation.Metadata{}, err
	}
	return ep, res.Metadata, nil
}

func (s *Service) Get(ctx context.Context, id string) (*store.Episode, error) {
	return s.episodes.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, series string, limit int) ([]store.Episode, error) {
	return s.episodes.ListBySeries(ctx, series, limit)
}

func (s *Service) UpdateContent(ctx context.Context, id, content string) (*store.Episode, error) {
	return s.episodes.UpdateContent(ctx, id, content)
}

func (s *Service) SetLocked(ctx context.Context, id string, locked bool) (*store.Episode, error) {
	return s.episodes.SetLocked(ctx, id, locked)
}
