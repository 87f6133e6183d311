package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FeedbackRow records a reader's rating of a generated episode.
type FeedbackRow struct {
	ID        string
	EpisodeID string
	Rating    int16
	Comment   *string
	CreatedAt time.Time
}

type FeedbackStore struct {
	pool *pgxpool.Pool
}

func NewFeedbackStore(pool *pgxpool.Pool) *FeedbackStore {
	return &FeedbackStore{pool: pool}
}

func (s *FeedbackStore) Insert(ctx context.Context, row FeedbackRow) error {
	query := `
        INSERT INTO episode_feedback (id, episode_id, rating, comment, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx, query, row.ID, row.EpisodeID, row.Rating, row.Comment, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}
