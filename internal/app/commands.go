package app

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"housing_finder/internal/domain"
)

// IngestionService pushes normalized CSV listings into the MySQL repository
// in bounded-concurrency batches. Used by cmd/ingestor.
type IngestionService struct {
	repo    domain.ListingRepository
	workers int
}

func NewIngestionService(r domain.ListingRepository, workers int) *IngestionService {
	if workers <= 0 {
		workers = 4
	}
	return &IngestionService{repo: r, workers: workers}
}

// IngestAll upserts listings in batches of batchSize. The first batch error
// is returned after all in-flight batches finish.
func (s *IngestionService) IngestAll(ctx context.Context, ls []domain.Listing, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 50
	}

	sem := semaphore.NewWeighted(int64(s.workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for start := 0; start < len(ls); start += batchSize {
		end := start + batchSize
		if end > len(ls) {
			end = len(ls)
		}
		batch := ls[start:end]

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return fmt.Errorf("semaphore acquire failed: %w", err)
		}

		wg.Add(1)
		go func(batch []domain.Listing) {
			defer wg.Done()
			defer sem.Release(1)

			if err := s.repo.UpsertListings(ctx, batch); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(batch)
	}

	wg.Wait()
	return firstErr
}
