package generation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// attemptFunc performs one call against a single model and returns its raw
// result. Implementations must not retry internally.
type attemptFunc func(ctx context.Context, model string) (*GenerationResult, error)

// runChain walks an ordered list of models, invoking attempt for each until
// one produces non-empty trimmed content. Attempts are strictly sequential.
// It returns the successful result, the number of attempts made, and the
// last failure when every model failed. Whitespace-only content counts as a
// failure and advances the chain. Cancellation between attempts stops the
// walk immediately.
func runChain(ctx context.Context, logger *zap.Logger, models []string, attempt attemptFunc) (*GenerationResult, int, error) {
	if len(models) == 0 {
		return nil, 0, fmt.Errorf("no models configured: %w", ErrEmptyContent)
	}

	var lastErr error
	for i, model := range models {
		if err := ctx.Err(); err != nil {
			return nil, i, err
		}

		res, err := attempt(ctx, model)
		if err != nil {
			lastErr = err
			logger.Warn("model attempt failed, advancing chain",
				zap.String("model", model),
				zap.Int("attempt", i+1),
				zap.Error(err))
			continue
		}

		content := strings.TrimSpace(res.Content)
		if content == "" {
			lastErr = fmt.Errorf("model %s: %w", model, ErrEmptyContent)
			logger.Warn("model returned empty content, advancing chain",
				zap.String("model", model),
				zap.Int("attempt", i+1))
			continue
		}

		res.Content = content
		res.Model = model
		return res, i + 1, nil
	}

	return nil, len(models), lastErr
}
