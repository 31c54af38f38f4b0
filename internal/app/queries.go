// Package app composes the domain services behind the HTTP surface:
// cached search queries and the CSV-to-MySQL ingestion command.
package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"housing_finder/internal/adapters/observability"
	"housing_finder/internal/domain"
	"housing_finder/internal/search"
)

// QueryService fronts the search engine with a result cache. Search itself is
// pure and in-memory; the cache keeps hot queries (the same chat question
// asked across sessions) from being rescored repeatedly.
type QueryService struct {
	engine   *search.Engine
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(e *search.Engine, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{engine: e, cache: c, cacheTTL: ttl}
}

// Search runs a filtered, ranked listing search, serving from cache when the
// same parameter set was seen recently.
func (s *QueryService) Search(ctx context.Context, p domain.SearchParams) []domain.ScoredListing {
	key := searchKey(p)
	if s.cache != nil {
		var cached []domain.ScoredListing
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached
		}
	}

	out := s.engine.Search(p)
	observability.ObserveSearch(len(out))

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out
}

// GetListing looks a listing up by id in the shared dataset.
func (s *QueryService) GetListing(id int64) (domain.Listing, error) {
	return s.engine.Dataset().ByID(id)
}

// searchKey derives a deterministic cache key from the parameter set.
func searchKey(p domain.SearchParams) string {
	b, _ := json.Marshal(p)
	sum := sha1.Sum(b)
	return "search:" + hex.EncodeToString(sum[:])
}
