package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Preferences are per-user generation defaults applied when a request leaves
// the matching fields empty.
type Preferences struct {
	UserID       string    `json:"userId"`
	Tone         string    `json:"tone"`
	Style        string    `json:"style"`
	SystemPrompt string    `json:"systemPrompt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PreferenceStore struct {
	pool *pgxpool.Pool
}

func NewPreferenceStore(pool *pgxpool.Pool) *PreferenceStore {
	return &PreferenceStore{pool: pool}
}

func (s *PreferenceStore) Upsert(ctx context.Context, prefs *Preferences) error {
	query := `
        INSERT INTO user_preferences (user_id, tone, style, system_prompt, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id)
        DO UPDATE SET
            tone = EXCLUDED.tone,
            style = EXCLUDED.style,
            system_prompt = EXCLUDED.system_prompt,
            updated_at = EXCLUDED.updated_at
    `

	prefs.UpdatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx, query, prefs.UserID, prefs.Tone, prefs.Style, prefs.SystemPrompt, prefs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return nil
}

func (s *PreferenceStore) Get(ctx context.Context, userID string) (*Preferences, error) {
	query := `
        SELECT user_id, tone, style, system_prompt, updated_at
        FROM user_preferences
        WHERE user_id = $1
    `

	var prefs Preferences
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&prefs.UserID, &prefs.Tone, &prefs.Style, &prefs.SystemPrompt, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &prefs, nil
}
