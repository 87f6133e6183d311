package images

import (
	"context"

	"github.com/showforge/episodic/internal/cache"
)

type imageCache interface {
	Lookup(ctx context.Context, contentHash string) (string, bool, error)
	Store(ctx context.Context, contentHash, url string) error
}

type Service struct {
	cache imageCache
}

func NewService(cache imageCache) *Service {
	return &Service{cache: cache}
}

// Register hashes the content and stores the URL under that hash.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (string, error) {
	hash := cache.HashContent(req.Content)
	if err := s.cache.Store(ctx, hash, req.URL); err != nil {
		return "", err
	}
	return hash, nil
}

// Lookup resolves a previously registered hash to its URL.
func (s *Service) Lookup(ctx context.Context, hash string) (string, bool, error) {
	return s.cache.Lookup(ctx, hash)
}
