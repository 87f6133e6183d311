package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEpisodeLocked gates edits on episodes marked locked.
	ErrEpisodeLocked = errors.New("episode is locked for editing")
)

// Episode is one generated installment of a series, versioned on every edit.
type Episode struct {
	ID        string    `json:"id"`
	Series    string    `json:"series"`
	Title     string    `json:"title"`
	Premise   string    `json:"premise"`
	Content   string    `json:"content"`
	Version   int       `json:"version"`
	Locked    bool      `json:"locked"`
	EngineID  string    `json:"engineId"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type EpisodeStore struct {
	pool *pgxpool.Pool
}

func NewEpisodeStore(pool *pgxpool.Pool) *EpisodeStore {
	return &EpisodeStore{pool: pool}
}

func (s *EpisodeStore) Insert(ctx context.Context, ep *Episode) error {
	query := `
        INSERT INTO episodes (
            id, series, title, premise, content, version, locked,
            engine_id, provider, model, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `

	now := time.Now().UTC()
	ep.Version = 1
	ep.CreatedAt = now
	ep.UpdatedAt = now

	_, err := s.pool.Exec(ctx, query,
		ep.ID, ep.Series, ep.Title, ep.Premise, ep.Content, ep.Version, ep.Locked,
		ep.EngineID, ep.Provider, ep.Model, ep.CreatedAt, ep.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert episode: %w", err)
	}
	return nil
}

func (s *EpisodeStore) GetByID(ctx context.Context, id string) (*Episode, error) {
	query := `
        SELECT id, series, title, premise, content, version, locked,
               engine_id, provider, model, created_at, updated_at
        FROM episodes
        WHERE id = $1
    `

	var ep Episode
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&ep.ID, &ep.Series, &ep.Title, &ep.Premise, &ep.Content, &ep.Version, &ep.Locked,
		&ep.EngineID, &ep.Provider, &ep.Model, &ep.CreatedAt, &ep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}
	return &ep, nil
}

func (s *EpisodeStore) ListBySeries(ctx context.Context, series string, limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
        SELECT id, series, title, premise, content, version, locked,
               engine_id, provider, model, created_at, updated_at
        FROM episodes
        WHERE series = $1
        ORDER BY created_at DESC
        LIMIT $2
    `

	rows, err := s.pool.Query(ctx, query, series, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		var ep Episode
		if err := rows.Scan(
			&ep.ID, &ep.Series, &ep.Title, &ep.Premise, &ep.Content, &ep.Version, &ep.Locked,
			&ep.EngineID, &ep.Provider, &ep.Model, &ep.CreatedAt, &ep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan episode row: %w", err)
		}
		episodes = append(episodes, ep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating episodes: %w", err)
	}
	return episodes, nil
}

// UpdateContent replaces an episode's content and bumps its version. The
// update only applies to unlocked episodes; a locked one returns
// ErrEpisodeLocked.
func (s *EpisodeStore) UpdateContent(ctx context.Context, id, content string) (*Episode, error) {
	query := `
        UPDATE episodes
        SET content = $2, version = version + 1, updated_at = $3
        WHERE id = $1 AND locked = false
        RETURNING id, series, title, premise, content, version, locked,
                  engine_id, provider, model, created_at, updated_at
    `

	var ep Episode
	err := s.pool.QueryRow(ctx, query, id, content, time.Now().UTC()).Scan(
		&ep.ID, &ep.Series, &ep.Title, &ep.Premise, &ep.Content, &ep.Version, &ep.Locked,
		&ep.EngineID, &ep.Provider, &ep.Model, &ep.CreatedAt, &ep.UpdatedAt,
	)
	if err == nil {
		return &ep, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update episode: %w", err)
	}

	// No row matched: distinguish a missing episode from a locked one.
	existing, getErr := s.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	if existing.Locked {
		return nil, ErrEpisodeLocked
	}
	return nil, fmt.Errorf("failed to update episode %s", id)
}

func (s *EpisodeStore) SetLocked(ctx context.Context, id string, locked bool) (*Episode, error) {
	query := `
        UPDATE episodes
        SET locked = $2, updated_at = $3
        WHERE id = $1
        RETURNING id, series, title, premise, content, version, locked,
                  engine_id, provider, model, created_at, updated_at
    `

	var ep Episode
	err := s.pool.QueryRow(ctx, query, id, locked, time.Now().UTC()).Scan(
		&ep.ID, &ep.Series, &ep.Title, &ep.Premise, &ep.Content, &ep.Version, &ep.Locked,
		&ep.EngineID, &ep.Provider, &ep.Model, &ep.CreatedAt, &ep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set episode lock: %w", err)
	}
	return &ep, nil
}
