package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"housing_finder/internal/app"
	"housing_finder/internal/dataset"
	"housing_finder/internal/domain"
	"housing_finder/internal/search"
)

// ---- fakes ----

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok2 := dst.(*[]domain.ScoredListing); ok2 {
		*d = v.([]domain.ScoredListing)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

type fakeRepo struct {
	mu      sync.Mutex
	batches [][]domain.Listing
	fail    bool
}

func (r *fakeRepo) UpsertListings(ctx context.Context, ls []domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("boom")
	}
	r.batches = append(r.batches, ls)
	return nil
}
func (r *fakeRepo) GetListing(ctx context.Context, id int64) (domain.Listing, error) {
	return domain.Listing{}, domain.ErrNotFound
}
func (r *fakeRepo) LoadAll(ctx context.Context) ([]domain.Listing, error) { return nil, nil }

func rent(f float64) *float64 { return &f }

func testEngine() *search.Engine {
	ds := dataset.FromListings([]domain.Listing{
		{ID: 1, Address: "10 Peach St", City: "Atlanta", State: "GA", MonthlyRent: rent(700), Bedrooms: 2},
		{ID: 2, Address: "22 Oak Ave", City: "Decatur", State: "GA", MonthlyRent: rent(950), Bedrooms: 1},
	})
	return search.New(ds, search.DefaultWeights())
}

// ---- tests ----

func TestSearch_CacheMissThenHit(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(testEngine(), cache, 10*time.Minute)

	params := domain.SearchParams{City: "Atlanta"}

	// Miss (first time, populates cache)
	out := q.Search(context.Background(), params)
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("unexpected results: %+v", out)
	}

	// Poison the cache; second read must come from it, not the engine.
	for k := range cache.store {
		cache.store[k] = []domain.ScoredListing{{Listing: domain.Listing{ID: 99}}}
	}
	out2 := q.Search(context.Background(), params)
	if len(out2) != 1 || out2[0].ID != 99 {
		t.Fatalf("expected cached result, got %+v", out2)
	}
}

func TestSearch_DifferentParamsDifferentKeys(t *testing.T) {
	cache := &fakeCache{}
	q := app.NewQueryService(testEngine(), cache, 10*time.Minute)

	q.Search(context.Background(), domain.SearchParams{City: "Atlanta"})
	q.Search(context.Background(), domain.SearchParams{City: "Decatur"})
	if len(cache.store) != 2 {
		t.Fatalf("expected 2 cache entries, got %d", len(cache.store))
	}
}

func TestGetListing_NotFound(t *testing.T) {
	q := app.NewQueryService(testEngine(), nil, time.Minute)
	if _, err := q.GetListing(404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIngestAll_Batches(t *testing.T) {
	repo := &fakeRepo{}
	ing := app.NewIngestionService(repo, 2)

	ls := make([]domain.Listing, 5)
	for i := range ls {
		ls[i] = domain.Listing{ID: int64(i + 1)}
	}
	if err := ing.IngestAll(context.Background(), ls, 2); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	total := 0
	for _, b := range repo.batches {
		total += len(b)
	}
	if len(repo.batches) != 3 || total != 5 {
		t.Fatalf("expected 3 batches covering 5 rows, got %d batches / %d rows", len(repo.batches), total)
	}
}

func TestIngestAll_SurfacesError(t *testing.T) {
	repo := &fakeRepo{fail: true}
	ing := app.NewIngestionService(repo, 2)
	if err := ing.IngestAll(context.Background(), []domain.Listing{{ID: 1}}, 1); err == nil {
		t.Fatalf("expected error")
	}
}
