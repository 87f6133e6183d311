package generate

import (
	"context"
	"time"

	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/store"
	"github.com/showforge/episodic/internal/utils"
)

// generator is the orchestrator surface the service needs.
type generator interface {
	Generate(ctx context.Context, req generation.GenerationRequest) (*generation.GenerationResult, error)
}

// auditSink receives one record per generation, success or not.
type auditSink interface {
	Enqueue(rec store.GenerationRecord)
}

type Service struct {
	orch  generator
	audit auditSink
}

func NewService(orch generator, audit auditSink) *Service {
	return &Service{orch: orch, audit: audit}
}

// Generate runs one generation and enqueues an audit record with the
// outcome. The audit write never blocks the response.
func (s *Service) Generate(ctx context.Context, requestID string, req *Request) (*generation.GenerationResult, error) {
	forced, err := generation.ParseProviderID(req.ForcedProvider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, genErr := s.orch.Generate(ctx, generation.GenerationRequest{
		Prompt:         req.Prompt,
		SystemPrompt:   req.SystemPrompt,
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
		EngineID:       req.EngineID,
		ForcedProvider: forced,
	})

	rec := store.GenerationRecord{
		ID:         utils.NewID(),
		RequestID:  requestID,
		EngineID:   req.EngineID,
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
	return res, nil
}
