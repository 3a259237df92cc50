package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"career-guide/internal/domain/matching"
)

type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// CachedExtractor memoises extraction results per normalised text. Cache
// failures fall through to the wrapped extractor.
type CachedExtractor struct {
	next  matching.Extractor
	cache JSONCache
	ttl   time.Duration
	log   *log.Logger
}

func NewCachedExtractor(next matching.Extractor, cache JSONCache, ttl time.Duration, logger *log.Logger) matching.Extractor {
	if cache == nil {
		return next
	}
	if logger == nil {
		logger = log.Default()
	}
	return &CachedExtractor{next: next, cache: cache, ttl: ttl, log: logger}
}

func (c *CachedExtractor) Name() string { return c.next.Name() }

func (c *CachedExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	key := ExtractionCacheKey(c.next.Name(), text)

	var cached []string
	hit, err := c.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		c.log.Printf("[Cache] extraction get failed key=%s err=%v", key, err)
	}
	if hit && cached != nil {
		return cached, nil
	}

	skills, err := c.next.Extract(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := c.cache.SetJSON(ctx, key, skills, c.ttl); err != nil {
		c.log.Printf("[Cache] extraction set failed key=%s err=%v", key, err)
	}
	return skills, nil
}

// ExtractionCacheKey folds case, since matching is case-insensitive. Whitespace
// is kept as-is: it can split a multi-word skill.
func ExtractionCacheKey(extractor, text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(text)))
	return "extract:" + extractor + ":" + hex.EncodeToString(sum[:])
}
