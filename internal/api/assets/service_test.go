package assets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/store"
)

type stubGenerator struct {
	lastReq generation.GenerationRequest
	res     *generation.GenerationResult
	err     error
}

func (g *stubGenerator) Generate(_ context.Context, req generation.GenerationRequest) (*generation.GenerationResult, error) {
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return g.res, nil
}

type stubEpisodes struct {
	ep *store.Episode
}

func (s *stubEpisodes) GetByID(_ context.Context, id string) (*store.Episode, error) {
	if s.ep == nil || s.ep.ID != id {
		return nil, store.ErrNotFound
	}
	return s.ep, nil
}

type captureSink struct {
	records []store.GenerationRecord
}

func (s *captureSink) Enqueue(rec store.GenerationRecord) {
	s.records = append(s.records, rec)
}

func testEpisode() *store.Episode {
	return &store.Episode{
		ID:      "ep-1",
		Series:  "Harbor Lights",
		Title:   "The Long Tide",
		Premise: "A sealed letter washes ashore.",
		Content: "INT. LIGHTHOUSE - NIGHT\nMARA reads the letter.",
	}
}

func TestGenerateRoutesKindToEngine(t *testing.T) {
	tests := []struct {
		kind         Kind
		wantEngine   string
		wantInPrompt string
	}{
		{KindStoryboard, "storyboard-engine-v1", "MARA reads the letter."},
		{KindProps, "props-engine-v1", "MARA reads the letter."},
		{KindLocations, "location-engine-v1", "MARA reads the letter."},
		{KindCasting, "casting-engine-v1", "MARA reads the letter."},
		{KindMarketing, "marketing-engine-v1", "A sealed letter washes ashore."},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			gen := &stubGenerator{res: &generation.GenerationResult{
				Content:  "asset text",
				Provider: generation.ProviderGemini,
				Model:    "gemini-2.0-flash",
			}}
			svc := NewService(gen, &stubEpisodes{ep: testEpisode()}, &captureSink{})

			res, err := svc.Generate(context.Background(), "req-1", tt.kind, &Request{EpisodeID: "ep-1"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.EngineID != tt.wantEngine {
				t.Errorf("engine = %q, want %q", res.EngineID, tt.wantEngine)
			}
			if gen.lastReq.EngineID != tt.wantEngine {
				t.Errorf("engine routed to orchestrator = %q, want %q", gen.lastReq.EngineID, tt.wantEngine)
			}
			if !strings.Contains(gen.lastReq.Prompt, tt.wantInPrompt) {
				t.Errorf("prompt missing %q:\n%s", tt.wantInPrompt, gen.lastReq.Prompt)
			}
			if res.Kind != tt.kind || res.EpisodeID != "ep-1" {
				t.Errorf("response identity wrong: %+v", res)
			}
		})
	}
}

func TestGenerateUnknownEpisode(t *testing.T) {
	svc := NewService(&stubGenerator{}, &stubEpisodes{}, &captureSink{})

	_, err := svc.Generate(context.Background(), "req-2", KindStoryboard, &Request{EpisodeID: "missing"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerateAuditsFailure(t *testing.T) {
	gen := &stubGenerator{err: &generation.TotalFailureError{
		Primary:     generation.ProviderGemini,
		Fallback:    generation.ProviderOpenAI,
		PrimaryErr:  errors.New("quota"),
		FallbackErr: errors.New("down"),
	}}
	sink := &captureSink{}
	svc := NewService(gen, &stubEpisodes{ep: testEpisode()}, sink)

	_, err := svc.Generate(context.Background(), "req-3", KindCasting, &Request{EpisodeID: "ep-1"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(sink.records) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(sink.records))
	}
	rec := sink.records[0]
	if rec.Outcome != "failure" || rec.EngineID != "casting-engine-v1" {
		t.Errorf("unexpected audit record: %+v", rec)
	}
}

func TestGenerateRejectsUnknownProvider(t *testing.T) {
	sink := &captureSink{}
	svc := NewService(&stubGenerator{}, &stubEpisodes{ep: testEpisode()}, sink)

	_, err := svc.Generate(context.Background(), "req-4", KindProps, &Request{
		EpisodeID:      "ep-1",
		ForcedProvider: "mistral",
	})
	if !errors.Is(err, generation.ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
	if len(sink.records) != 0 {
		t.Fatalf("validation failure should not be audited, got %d", len(sink.records))
	}
}
