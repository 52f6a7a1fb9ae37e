package capability

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// newCache builds a cache keyed by line text. A ttl <= 0 never expires.
// No janitor runs: expired entries are skipped by Get and overwritten by Set.
func newCache(ttl time.Duration) *gocache.Cache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return gocache.New(ttl, 0)
}

// CachedRecognizer memoizes an EntityRecognizer. Errors are not cached.
type CachedRecognizer struct {
	next  EntityRecognizer
	cache *gocache.Cache
}

// NewCachedRecognizer wraps next. A zero ttl keeps entries for the cache's lifetime.
func NewCachedRecognizer(next EntityRecognizer, ttl time.Duration) *CachedRecognizer {
	return &CachedRecognizer{
		next:  next,
		cache: newCache(ttl),
	}
}

// RecognizeEntities implements EntityRecognizer.
func (c *CachedRecognizer) RecognizeEntities(text string) ([]string, error) {
	if v, found := c.cache.Get(text); found {
		ents := v.([]string)
		out := make([]string, len(ents))
		copy(out, ents)
		return out, nil
	}
	ents, err := c.next.RecognizeEntities(text)
	if err != nil {
		return nil, err
	}
	stored := make([]string, len(ents))
	copy(stored, ents)
	c.cache.SetDefault(text, stored)
	return ents, nil
}

// CachedScorer memoizes a SentimentScorer. Errors are not cached.
type CachedScorer struct {
	next  SentimentScorer
	cache *gocache.Cache
}

// NewCachedScorer wraps next. A zero ttl keeps entries for the cache's lifetime.
func NewCachedScorer(next SentimentScorer, ttl time.Duration) *CachedScorer {
	return &CachedScorer{
		next:  next,
		cache: newCache(ttl),
	}
}

// Compound implements SentimentScorer.
func (c *CachedScorer) Compound(text string) (float64, error) {
	if v, found := c.cache.Get(text); found {
		return v.(float64), nil
	}
	score, err := c.next.Compound(text)
	if err != nil {
		return 0, err
	}
	c.cache.SetDefault(text, score)
	return score, nil
}

// Len reports how many distinct texts are memoized.
func (c *CachedScorer) Len() int {
	return c.cache.ItemCount()
}
