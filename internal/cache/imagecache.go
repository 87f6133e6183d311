package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/showforge/episodic/internal/loaders"
	"github.com/showforge/episodic/internal/metrics"
	"github.com/showforge/episodic/internal/store"
)

const (
	imageKeyPrefix  = "imgcache:"
	defaultImageTTL = 24 * time.Hour
)

// ImageCache keeps rendered asset URLs keyed by a hash of the content that
// produced them. Redis is the hot tier; every stored entry is also uploaded
// to the durable tier in the background so a hash is rendered at most once.
type ImageCache struct {
	rdb    *redis.Client
	assets *store.ImageStore
	ttl    time.Duration
	logger *zap.Logger
}

func NewImageCache(rdb *loaders.RedisClient, assets *store.ImageStore, logger *zap.Logger) *ImageCache {
	return &ImageCache{
		rdb:    rdb.Client(),
		assets: assets,
		ttl:    defaultImageTTL,
		logger: logger,
	}
}

// HashContent derives the cache key material for a piece of content.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func imageKey(contentHash string) string {
	return imageKeyPrefix + contentHash
}

// Lookup resolves a content hash to an asset URL. A redis miss falls through
// to the durable tier and backfills redis on a hit there.
func (c *ImageCache) Lookup(ctx context.Context, contentHash string) (string, bool, error) {
	url, err := c.rdb.Get(ctx, imageKey(contentHash)).Result()
	if err == nil {
		metrics.ImageCacheHits.WithLabelValues("hit").Inc()
		return url, true, nil
	}
	if !errors.Is(err, redis.Nil) {
		return "", false, fmt.Errorf("image cache lookup failed: %w", err)
	}

	url, err = c.assets.Get(ctx, contentHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.ImageCacheHits.WithLabelValues("miss").Inc()
			return "", false, nil
		}
		return "", false, err
	}

	metrics.ImageCacheHits.WithLabelValues("tier_hit").Inc()
	if err := c.rdb.Set(ctx, imageKey(contentHash), url, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to backfill image cache", zap.String("hash", contentHash), zap.Error(err))
	}
	return url, true, nil
}

// Store caches an asset URL and uploads it to the durable tier in the
// background.
func (c *ImageCache) Store(ctx context.Context, contentHash, url string) error {
	if err := c.rdb.Set(ctx, imageKey(contentHash), url, c.ttl).Err(); err != nil {
		return fmt.Errorf("image cache store failed: %w", err)
	}

	go func() {
		tierCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.assets.Save(tierCtx, contentHash, url); err != nil {
			c.logger.Error("failed to upload image asset to durable tier",
				zap.String("hash", contentHash),
				zap.Error(err))
		}
	}()

	return nil
}
