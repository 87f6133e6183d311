package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// OpenAI enforces its own parameter ceilings; values above them are capped
// silently, never rejected.
const (
	openAIMaxTemperature = 2.0
	openAIMaxTokens      = 4096
)

// OpenAIConfig configures the OpenAI-compatible executor.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultOpenAIConfig returns the standard endpoint and model settings.
func DefaultOpenAIConfig(apiKey string) OpenAIConfig {
	return OpenAIConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4o",
		Timeout: 60 * time.Second,
	}
}

// OpenAIExecutor calls an OpenAI-compatible chat-completions endpoint. It
// targets a single model per request, selected upstream or configured, and
// surfaces failures directly: there is no internal fallback chain on this
// backend.
type OpenAIExecutor struct {
	cfg    OpenAIConfig
	client *http.Client
	logger *zap.Logger
}

func NewOpenAIExecutor(cfg OpenAIConfig, logger *zap.Logger) (*OpenAIExecutor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai executor: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &OpenAIExecutor{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}

func (e *OpenAIExecutor) ID() ProviderID { return ProviderOpenAI }

func (e *OpenAIExecutor) Execute(ctx context.Context, req ExecRequest) (*GenerationResult, error) {
	model := req.Model
	if model == "" {
		model = e.cfg.Model
	}

	req.Temperature = clampTemperature(req.Temperature, openAIMaxTemperature)
	req.MaxTokens = clampTokens(req.MaxTokens, openAIMaxTokens)

	res, _, err := runChain(ctx, e.logger, []string{model}, func(ctx context.Context, model string) (*GenerationResult, error) {
		return e.attempt(ctx, model, req)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (e *OpenAIExecutor) attempt(ctx context.Context, model string, req ExecRequest) (*GenerationResult, error) {
	messages := make([]openAIMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(openAIChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Provider: ProviderOpenAI, Model: model, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &TransportError{
			Provider: ProviderOpenAI,
			Model:    model,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("%s", raw),
		}
	}

	var chat openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, &TransportError{Provider: ProviderOpenAI, Model: model, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("model %s: no choices returned: %w", model, ErrEmptyContent)
	}

	var promptTokens *int
	if chat.Usage != nil {
		n := chat.Usage.PromptTokens
		promptTokens = &n
	}

	return &GenerationResult{
		Content:  chat.Choices[0].Message.Content,
		Provider: ProviderOpenAI,
		Model:    model,
		Metadata: Metadata{PromptTokenCount: promptTokens},
	}, nil
}

// clampTemperature caps a temperature at the provider ceiling. Negative
// values collapse to zero.
func clampTemperature(t, ceiling float64) float64 {
	if t < 0 {
		return 0
	}
	if t > ceiling {
		return ceiling
	}
	return t
}

// clampTokens caps a token budget at the provider ceiling.
func clampTokens(n, ceiling int) int {
	if n > ceiling {
		return ceiling
	}
	return n
}
