// Package engine orchestrates catalog refresh cycles: fetch, classify, diff
// against the previous snapshot, compose notifications and persist.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Veloruze/shop-comofootball-bot/internal/diff"
	"github.com/Veloruze/shop-comofootball-bot/internal/model"
	"github.com/Veloruze/shop-comofootball-bot/internal/notify"
	"github.com/Veloruze/shop-comofootball-bot/internal/service"
	"github.com/Veloruze/shop-comofootball-bot/internal/sizes"
)

// RefreshEngine runs refresh cycles against storage and the catalog fetcher.
// Cycles are serialized: a timer tick can never overlap a manual refresh, so
// the previous snapshot is always fully constructed before it is compared.
type RefreshEngine struct {
	storage service.Storage
	fetcher service.CatalogFetcher
	mu      sync.Mutex
}

// Result describes one completed refresh cycle.
type Result struct {
	TakenAt       time.Time
	Diff          model.DiffResult
	Messages      []string
	TotalProducts int
	Skipped       int // Products without an identifier, excluded from the snapshot
	FirstRun      bool
}

// New creates a refresh engine with the given dependencies.
func New(storage service.Storage, fetcher service.CatalogFetcher) *RefreshEngine {
	return &RefreshEngine{
		storage: storage,
		fetcher: fetcher,
	}
}

// Refresh executes a full refresh cycle and returns its result. The caller is
// responsible for delivering the result's messages.
func (e *RefreshEngine) Refresh(ctx context.Context) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	products, err := e.fetcher.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	annotated := make([]model.AnnotatedProduct, 0, len(products))
	skipped := 0
	for i := range products {
		p := products[i]
		if p.ID == "" {
			skipped++
			slog.Warn("Skipping malformed product without identifier", "title", p.Title)
			continue
		}
		annotated = append(annotated, model.AnnotatedProduct{
			Product: p,
			Verdict: sizes.Classify(p.SizeType, p.Sizes),
		})
	}

	current := model.NewSnapshot(time.Now(), annotated)

	previous, err := e.storage.GetLatestSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous snapshot: %w", err)
	}

	changes := diff.Diff(previous, current)
	messages := notify.Compose(changes)

	if err := e.storage.SaveSnapshot(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	slog.Info("Refresh cycle complete",
		"products", current.Len(),
		"skipped", skipped,
		"first_run", previous == nil,
		"new_products", len(changes.NewProducts),
		"new_discounts", len(changes.NewDiscounts),
		"sequence_transitions", len(changes.SequenceTransitions))

	return &Result{
		TakenAt:       current.TakenAt(),
		Diff:          changes,
		Messages:      messages,
		TotalProducts: current.Len(),
		Skipped:       skipped,
		FirstRun:      previous == nil,
	}, nil
}
