package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/prompts"
	"github.com/showforge/episodic/internal/store"
	"github.com/showforge/episodic/internal/utils"
)

// engineForKind routes each asset kind to the engine whose registry entry
// carries the right model family for it.
var engineForKind = map[Kind]string{
	KindStoryboard: "storyboard-engine-v1",
	KindProps:      "props-engine-v1",
	KindLocations:  "location-engine-v1",
	KindCasting:    "casting-engine-v1",
	KindMarketing:  "marketing-engine-v1",
}

type generator interface {
	Generate(ctx context.Context, req generation.GenerationRequest) (*generation.GenerationResult, error)
}

type episodeGetter interface {
	GetByID(ctx context.Context, id string) (*store.Episode, error)
}

type auditSink interface {
	Enqueue(rec store.GenerationRecord)
}

type Service struct {
	orch     generator
	episodes episodeGetter
	audit    auditSink
}

func NewService(orch generator, episodes episodeGetter, audit auditSink) *Service {
	return &Service{orch: orch, episodes: episodes, audit: audit}
}

// Generate produces one asset for a stored episode. The episode's script is
// the prompt source, so the asset always reflects the persisted draft.
func (s *Service) Generate(ctx context.Context, requestID string, kind Kind, req *Request) (*Response, error) {
	forced, err := generation.ParseProviderID(req.ForcedProvider)
	if err != nil {
		return nil, err
	}

	engineID, ok := engineForKind[kind]
	if !ok {
		return nil, fmt.Errorf("unknown asset kind %q", kind)
	}

	ep, err := s.episodes.GetByID(ctx, req.EpisodeID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, genErr := s.orch.Generate(ctx, generation.GenerationRequest{
		Prompt:         promptFor(kind, ep),
		EngineID:       engineID,
		ForcedProvider: forced,
	})

	rec := store.GenerationRecord{
		ID:         utils.NewID(),
		RequestID:  requestID,
		EngineID:   engineID,
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
		return nil, genErr
	}

	return &Response{
		EpisodeID: ep.ID,
		Kind:      kind,
		EngineID:  engineID,
		Content:   res.Content,
		Provider:  res.Provider,
		Model:     res.Model,
		Metadata:  res.Metadata,
	}, nil
}

func promptFor(kind Kind, ep *store.Episode) string {
	switch kind {
	case KindStoryboard:
		return prompts.Storyboard(ep.Content)
	case KindProps:
		return prompts.Props(ep.Content)
	case KindLocations:
		return prompts.Locations(ep.Content)
	case KindCasting:
		return prompts.Casting(ep.Content)
	case KindMarketing:
		return prompts.Marketing(ep.Series, ep.Title, ep.Premise)
	default:
		return ep.Content
	}
}
