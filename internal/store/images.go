package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ImageStore is the durable tier behind the redis image cache. Rows survive
// cache eviction so an asset is only ever rendered once per content hash.
type ImageStore struct {
	pool *pgxpool.Pool
}

func NewImageStore(pool *pgxpool.Pool) *ImageStore {
	return &ImageStore{pool: pool}
}

func (s *ImageStore) Save(ctx context.Context, contentHash, url string) error {
	query := `
        INSERT INTO image_assets (content_hash, url, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (content_hash) DO NOTHING
    `

	_, err := s.pool.Exec(ctx, query, contentHash, url, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save image asset: %w", err)
	}
	return nil
}

func (s *ImageStore) Get(ctx context.Context, contentHash string) (string, error) {
	query := `SELECT url FROM image_assets WHERE content_hash = $1`

	var url string
	err := s.pool.QueryRow(ctx, query, contentHash).Scan(&url)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get image asset: %w", err)
	}
	return url, nil
}
