package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Veloruze/shop-comofootball-bot/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jersey(id, title string, current, original string, sizes ...string) model.Product {
	p := model.Product{
		ID:           id,
		Title:        title,
		SizeType:     "Taglia",
		Sizes:        sizes,
		CurrentPrice: decimal.RequireFromString(current),
	}
	if original != "" {
		p.OriginalPrice = decimal.RequireFromString(original)
	}
	return p
}

func TestRefreshFirstRun(t *testing.T) {
	store := newMockStorage()
	fetcher := &mockFetcher{products: []model.Product{
		jersey("1", "Home Jersey", "89.99", "", "S", "M", "L"),
	}}

	eng := New(store, fetcher)
	result, err := eng.Refresh(context.Background())
	require.NoError(t, err)

	assert.True(t, result.FirstRun)
	assert.Equal(t, 1, result.TotalProducts)
	assert.True(t, result.Diff.Empty(), "first run must not report changes")
	assert.Empty(t, result.Messages)

	// Baseline was stored for the next cycle.
	saved, err := store.GetLatestSnapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 1, saved.Len())
}

func TestRefreshDetectsChanges(t *testing.T) {
	store := newMockStorage()
	fetcher := &mockFetcher{products: []model.Product{
		jersey("1", "Home Jersey", "89.99", "", "S", "M", "L"),
		jersey("2", "Away Jersey", "89.99", "", "S", "M", "L"),
	}}
	eng := New(store, fetcher)
	ctx := context.Background()

	_, err := eng.Refresh(ctx)
	require.NoError(t, err)

	// Next catalog: home jersey discounted, away jersey sizes break, plus a
	// brand new third kit.
	fetcher.setProducts([]model.Product{
		jersey("1", "Home Jersey", "59.99", "89.99", "S", "M", "L"),
		jersey("2", "Away Jersey", "89.99", "", "S", "L", "M"),
		jersey("3", "Third Jersey", "99.99", "", "S", "M", "L"),
	})

	result, err := eng.Refresh(ctx)
	require.NoError(t, err)

	assert.False(t, result.FirstRun)
	require.Len(t, result.Diff.NewProducts, 1)
	assert.Equal(t, "3", result.Diff.NewProducts[0].ID)

	require.Len(t, result.Diff.NewDiscounts, 1)
	assert.Equal(t, "1", result.Diff.NewDiscounts[0].ID)

	require.Len(t, result.Diff.SequenceTransitions, 1)
	assert.Equal(t, "2", result.Diff.SequenceTransitions[0].Product.ID)
	assert.Equal(t, model.VerdictSequential, result.Diff.SequenceTransitions[0].From)
	assert.Equal(t, model.VerdictNonSequential, result.Diff.SequenceTransitions[0].To)

	require.NotEmpty(t, result.Messages)
	assert.Contains(t, result.Messages[0], "Third Jersey")
}

func TestRefreshNoChangesStaysSilent(t *testing.T) {
	store := newMockStorage()
	fetcher := &mockFetcher{products: []model.Product{
		jersey("1", "Home Jersey", "89.99", "", "S", "M", "L"),
	}}
	eng := New(store, fetcher)
	ctx := context.Background()

	_, err := eng.Refresh(ctx)
	require.NoError(t, err)

	result, err := eng.Refresh(ctx)
	require.NoError(t, err)

	assert.True(t, result.Diff.Empty())
	assert.Empty(t, result.Messages)
}

func TestRefreshSkipsMalformedProducts(t *testing.T) {
	store := newMockStorage()
	fetcher := &mockFetcher{products: []model.Product{
		jersey("", "No identifier", "10.00", ""),
		jersey("1", "Home Jersey", "89.99", "", "S", "M"),
	}}
	eng := New(store, fetcher)

	result, err := eng.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalProducts)
	assert.Equal(t, 1, result.Skipped)
}

func TestRefreshFetchFailureDoesNotTouchStorage(t *testing.T) {
	store := newMockStorage()
	fetcher := &mockFetcher{err: errors.New("shop unreachable")}
	eng := New(store, fetcher)

	_, err := eng.Refresh(context.Background())
	require.Error(t, err)

	saved, err := store.GetLatestSnapshot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, saved, "a failed fetch must not produce a snapshot")
}
