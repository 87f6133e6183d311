package generation

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Gemini parameter ceilings. Values above them are capped silently.
const (
	geminiMaxTemperature = 1.0
	geminiMaxTokens      = 8192
)

// GeminiConfig configures the Gemini executor.
type GeminiConfig struct {
	APIKeys        []string
	FallbackModels []string
	Timeout        time.Duration
}

// geminiCaller performs one generation call against one model. The real
// implementation wraps a genai client bound to a single API key; tests
// substitute a fake.
type geminiCaller interface {
	generate(ctx context.Context, model string, req ExecRequest) (string, *int, error)
}

// GeminiExecutor owns the ordered fallback chain of Gemini model variants.
// Each attempt rotates to the next API key so a rate-limited key does not
// starve the whole chain.
type GeminiExecutor struct {
	callers  []geminiCaller
	keyIndex uint64
	chain    []string
	logger   *zap.Logger
}

func NewGeminiExecutor(ctx context.Context, cfg GeminiConfig, logger *zap.Logger) (*GeminiExecutor, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("gemini executor: at least one API key is required")
	}
	if len(cfg.FallbackModels) == 0 {
		cfg.FallbackModels = []string{"gemini-2.0-flash", "gemini-1.5-pro", "gemini-1.5-flash"}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	callers := make([]geminiCaller, 0, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     key,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: cfg.Timeout},
		})
		if err != nil {
			return nil, fmt.Errorf("gemini executor: failed to create client: %w", err)
		}
		callers = append(callers, &genaiCaller{client: client})
	}

	return newGeminiExecutorWithCallers(callers, cfg.FallbackModels, logger), nil
}

func newGeminiExecutorWithCallers(callers []geminiCaller, chain []string, logger *zap.Logger) *GeminiExecutor {
	return &GeminiExecutor{callers: callers, chain: chain, logger: logger}
}

func (e *GeminiExecutor) ID() ProviderID { return ProviderGemini }

func (e *GeminiExecutor) Execute(ctx context.Context, req ExecRequest) (*GenerationResult, error) {
	req.Temperature = clampTemperature(req.Temperature, geminiMaxTemperature)
	req.MaxTokens = clampTokens(req.MaxTokens, geminiMaxTokens)

	models := e.modelsFor(req.Model)

	res, attempts, err := runChain(ctx, e.logger, models, func(ctx context.Context, model string) (*GenerationResult, error) {
		return e.attempt(ctx, model, req)
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ChainExhaustedError{Provider: ProviderGemini, Attempts: attempts, Err: err}
	}
	return res, nil
}

// modelsFor places a registry-preferred Gemini model at the head of the
// chain. Models of another family are ignored here; the chain stays intact.
func (e *GeminiExecutor) modelsFor(preferred string) []string {
	if preferred == "" {
		return e.chain
	}
	if family, ok := FamilyOf(preferred); !ok || family != ProviderGemini {
		return e.chain
	}

	models := make([]string, 0, len(e.chain)+1)
	models = append(models, preferred)
	for _, m := range e.chain {
		if m != preferred {
			models = append(models, m)
		}
	}
	return models
}

// nextCaller returns the next API-key-bound caller using atomic round-robin.
func (e *GeminiExecutor) nextCaller() geminiCaller {
	if len(e.callers) == 1 {
		return e.callers[0]
	}
	idx := atomic.AddUint64(&e.keyIndex, 1)
	return e.callers[idx%uint64(len(e.callers))]
}

func (e *GeminiExecutor) attempt(ctx context.Context, model string, req ExecRequest) (*GenerationResult, error) {
	text, promptTokens, err := e.nextCaller().generate(ctx, model, req)
	if err != nil {
		return nil, &TransportError{Provider: ProviderGemini, Model: model, Err: err}
	}

	return &GenerationResult{
		Content:  text,
		Provider: ProviderGemini,
		Model:    model,
		Metadata: Metadata{PromptTokenCount: promptTokens},
	}, nil
}

// genaiCaller wraps one genai client bound to a single API key.
type genaiCaller struct {
	client *genai.Client
}

func (c *genaiCaller) generate(ctx context.Context, model string, req ExecRequest) (string, *int, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", nil, err
	}

	var promptTokens *int
	if resp.UsageMetadata != nil {
		n := int(resp.UsageMetadata.PromptTokenCount)
		promptTokens = &n
	}

	return resp.Text(), promptTokens, nil
}
