package engine

import (
	"context"
	"sync"

	"github.com/Veloruze/shop-comofootball-bot/internal/model"
)

// mockStorage is an in-memory service.Storage for engine tests.
type mockStorage struct {
	mu          sync.Mutex
	snapshots   []model.Snapshot
	subscribers map[int64]struct{}
	saveErr     error
	loadErr     error
}

func newMockStorage() *mockStorage {
	return &mockStorage{subscribers: make(map[int64]struct{})}
}

func (m *mockStorage) SaveSnapshot(_ context.Context, snapshot model.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snapshots = append(m.snapshots, snapshot)
	if len(m.snapshots) > 2 {
		m.snapshots = m.snapshots[len(m.snapshots)-2:]
	}
	return nil
}

func (m *mockStorage) GetLatestSnapshot(_ context.Context) (*model.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	latest := m.snapshots[len(m.snapshots)-1]
	return &latest, nil
}

func (m *mockStorage) Subscribe(_ context.Context, chatID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subscribers[chatID]; ok {
		return false, nil
	}
	m.subscribers[chatID] = struct{}{}
	return true, nil
}

func (m *mockStorage) Unsubscribe(_ context.Context, chatID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subscribers[chatID]; !ok {
		return false, nil
	}
	delete(m.subscribers, chatID)
	return true, nil
}

func (m *mockStorage) GetSubscribers(_ context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int64, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }
func (m *mockStorage) Close() error                    { return nil }

// mockFetcher returns a configurable product list.
type mockFetcher struct {
	mu       sync.Mutex
	products []model.Product
	err      error
}

func (f *mockFetcher) FetchCatalog(_ context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *mockFetcher) setProducts(products []model.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = products
}
