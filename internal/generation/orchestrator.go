package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/showforge/episodic/internal/metrics"
)

// Defaults applied to requests that leave the optional fields unset.
const (
	DefaultTemperature = 0.85
	DefaultMaxTokens   = 2000

	defaultSystemPrompt = "You are an experienced showrunner and story editor for serialized fiction. " +
		"Respond with polished, production-ready material."
)

// Orchestrator is the top-level entry point for generation. It selects a
// provider, runs the attempt, and on failure flips to the other provider
// exactly once. Each call is stateless with respect to every other call;
// the only shared state is the immutable selector configuration.
type Orchestrator struct {
	selector  *Selector
	providers map[ProviderID]Provider
	sem       chan struct{}
	logger    *zap.Logger
}

// NewOrchestrator wires the selector and both provider executors. Both
// backends must be present; maxConcurrency bounds the number of in-flight
// generations.
func NewOrchestrator(selector *Selector, logger *zap.Logger, maxConcurrency int, providers ...Provider) (*Orchestrator, error) {
	if selector == nil {
		return nil, fmt.Errorf("orchestrator: selector is required")
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 8
	}

	byID := make(map[ProviderID]Provider, len(providers))
	for _, p := range providers {
		byID[p.ID()] = p
	}
	for _, id := range []ProviderID{ProviderOpenAI, ProviderGemini} {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("orchestrator: missing executor for provider %s", id)
		}
	}

	return &Orchestrator{
		selector:  selector,
		providers: byID,
		sem:       make(chan struct{}, maxConcurrency),
		logger:    logger,
	}, nil
}

// Generate runs one request to completion. It fails only when both
// providers' attempts have failed, and then with a TotalFailureError naming
// both. CompletionTimeMs on the result is stamped here, wall clock from
// entry to return, overwriting anything an executor recorded.
func (o *Orchestrator) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	startTime := time.Now()

	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	select {
	case o.sem <- struct{}{}:
		defer func() { <-o.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	normalized := o.normalize(req)
	decision := o.selector.Decide(req)
	if decision.Reason == ReasonDefault {
		o.logger.Warn("engine id matched nothing, using default provider",
			zap.String("engine_id", req.EngineID),
			zap.String("provider", string(decision.Provider)))
	}

	normalized.Model = decision.Model

	o.logger.Info("dispatching generation",
		zap.String("provider", string(decision.Provider)),
		zap.String("reason", decision.Reason),
		zap.String("engine_id", req.EngineID),
		zap.String("model", decision.Model))

	result, primaryErr := o.providers[decision.Provider].Execute(ctx, normalized)
	if primaryErr != nil {
		if ctx.Err() != nil {
			metrics.GenerationsTotal.WithLabelValues(string(decision.Provider), "canceled").Inc()
			return nil, ctx.Err()
		}

		fallbackID := decision.Provider.Other()
		o.logger.Warn("primary provider failed, flipping provider",
			zap.String("primary", string(decision.Provider)),
			zap.String("fallback", string(fallbackID)),
			zap.Error(primaryErr))
		metrics.GenerationsTotal.WithLabelValues(string(decision.Provider), "failure").Inc()
		metrics.ProviderFallbacks.Inc()

		// The registry-preferred model belongs to the primary's family and
		// must not leak into the flipped attempt.
		normalized.Model = ""

		var fallbackErr error
		result, fallbackErr = o.providers[fallbackID].Execute(ctx, normalized)
		if fallbackErr != nil {
			if ctx.Err() != nil {
				metrics.GenerationsTotal.WithLabelValues(string(fallbackID), "canceled").Inc()
				return nil, ctx.Err()
			}
			metrics.GenerationsTotal.WithLabelValues(string(fallbackID), "failure").Inc()
			return nil, &TotalFailureError{
				Primary:     decision.Provider,
				Fallback:    fallbackID,
				PrimaryErr:  primaryErr,
				FallbackErr: fallbackErr,
			}
		}
	}

	result.Metadata.ContentLength = len(result.Content)
	result.Metadata.CompletionTimeMs = time.Since(startTime).Milliseconds()

	metrics.GenerationsTotal.WithLabelValues(string(result.Provider), "success").Inc()
	metrics.GenerationDuration.WithLabelValues(string(result.Provider)).Observe(time.Since(startTime).Seconds())

	o.logger.Info("generation complete",
		zap.String("provider", string(result.Provider)),
		zap.String("model", result.Model),
		zap.Int("content_length", result.Metadata.ContentLength),
		zap.Int64("completion_time_ms", result.Metadata.CompletionTimeMs))

	return result, nil
}

// normalize fills the optional request fields with their defaults.
func (o *Orchestrator) normalize(req GenerationRequest) ExecRequest {
	out := ExecRequest{
		Prompt:       req.Prompt,
		SystemPrompt: req.SystemPrompt,
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
	}
	if out.SystemPrompt == "" {
		out.SystemPrompt = defaultSystemPrompt
	}
	if out.Temperature == 0 {
		out.Temperature = DefaultTemperature
	}
	if out.MaxTokens == 0 {
		out.MaxTokens = DefaultMaxTokens
	}
	return out
}
