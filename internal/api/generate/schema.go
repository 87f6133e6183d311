package generate

import "github.com/showforge/episodic/internal/generation"

// Request is the raw generation endpoint payload. Only the prompt is
// required; everything else narrows routing or tunes the provider call.
type Request struct {
	Prompt         string  `json:"prompt" binding:"required"`
	SystemPrompt   string  `json:"systemPrompt,omitempty"`
	EngineID       string  `json:"engineId,omitempty"`
	ForcedProvider string  `json:"forcedProvider,omitempty"` // openai | gemini
	Temperature    float64 `json:"temperature,omitempty"`
	MaxTokens      int     `json:"maxTokens,omitempty"`
}

type Response struct {
	RequestID string                `json:"requestId,omitempty"`
	Content   string                `json:"content"`
	Provider  generation.ProviderID `json:"provider"`
	Model     string                `json:"model"`
	Metadata  generation.Metadata   `json:"metadata"`
}
