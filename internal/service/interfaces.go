// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veloruze/shop-comofootball-bot/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Snapshot operations. GetLatestSnapshot returns (nil, nil) when no
	// snapshot has been stored yet; SaveSnapshot prunes history so only the
	// two most recent snapshots are retained.
	SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error
	GetLatestSnapshot(ctx context.Context) (*model.Snapshot, error)

	// Subscriber operations. Subscribe and Unsubscribe report whether the
	// subscriber set actually changed.
	Subscribe(ctx context.Context, chatID int64) (bool, error)
	Unsubscribe(ctx context.Context, chatID int64) (bool, error)
	GetSubscribers(ctx context.Context) ([]int64, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// CatalogFetcher retrieves the full, fully-materialized product catalog from
// the shop. Implementations handle pagination and retries; the core never
// sees a partial catalog.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) ([]model.Product, error)
}

// Notifier delivers a rendered notification message to one chat.
type Notifier interface {
	SendMessage(chatID int64, text string) error
}

// RetryOptions configures retry behavior for transient failures.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
