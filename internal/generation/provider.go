package generation

import (
	"context"
	"errors"
	"fmt"
)

// ProviderID identifies one of the two generative backends.
type ProviderID string

const (
	ProviderOpenAI ProviderID = "openai"
	ProviderGemini ProviderID = "gemini"
)

// ErrUnknownProvider marks a provider string outside the known set.
var ErrUnknownProvider = errors.New("unknown provider")

// ParseProviderID converts a request string into a ProviderID. An empty
// string means "not specified" and parses without error.
func ParseProviderID(s string) (ProviderID, error) {
	switch ProviderID(s) {
	case "", ProviderOpenAI, ProviderGemini:
		return ProviderID(s), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownProvider, s)
	}
}

func (p ProviderID) Valid() bool {
	return p == ProviderOpenAI || p == ProviderGemini
}

// Other returns the opposite backend, used for the cross-provider fallback.
func (p ProviderID) Other() ProviderID {
	if p == ProviderOpenAI {
		return ProviderGemini
	}
	return ProviderOpenAI
}

// GenerationRequest is the caller-facing input contract. Zero values for
// Temperature and MaxTokens mean "use the defaults".
type GenerationRequest struct {
	Prompt         string
	SystemPrompt   string
	Temperature    float64
	MaxTokens      int
	EngineID       string
	ForcedProvider ProviderID
}

// ExecRequest is the normalized input handed to a provider executor.
// Model, when set, is the registry-preferred model for this request;
// executors fall back to their own configured models when it is empty.
type ExecRequest struct {
	Prompt       string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
	Model        string
}

// Metadata carries accounting attached to every result.
type Metadata struct {
	ContentLength    int   `json:"contentLength"`
	CompletionTimeMs int64 `json:"completionTimeMs"`
	PromptTokenCount *int  `json:"promptTokenCount"`
}

// GenerationResult is returned only when a provider produced non-empty
// trimmed content. Model names the variant that actually produced the
// content, never one that was skipped.
type GenerationResult struct {
	Content  string     `json:"content"`
	Provider ProviderID `json:"provider"`
	Model    string     `json:"model"`
	Metadata Metadata   `json:"metadata"`
}

// Provider abstracts one backend. The orchestrator selects an implementation
// once per request and invokes it uniformly; no provider-conditional
// branching happens above this interface.
type Provider interface {
	ID() ProviderID
	Execute(ctx context.Context, req ExecRequest) (*GenerationResult, error)
}
