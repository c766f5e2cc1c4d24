package notify

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Veloruze/shop-comofootball-bot/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeEmptyDiff(t *testing.T) {
	assert.Empty(t, Compose(model.DiffResult{}))
}

func TestComposeAllSections(t *testing.T) {
	diff := model.DiffResult{
		NewProducts: []model.Product{
			{ID: "1", Title: "Home Jersey 2025", CurrentPrice: decimal.NewFromFloat(89.99)},
		},
		NewDiscounts: []model.Product{
			{
				ID:            "2",
				Title:         "Away Jersey 2024",
				CurrentPrice:  decimal.NewFromFloat(60),
				OriginalPrice: decimal.NewFromFloat(90),
			},
		},
		SequenceTransitions: []model.VerdictTransition{
			{
				Product: model.Product{ID: "3", Title: "Training Top"},
				From:    model.VerdictSequential,
				To:      model.VerdictNonSequential,
			},
		},
	}

	messages := Compose(diff)
	require.Len(t, messages, 1)
	text := messages[0]

	assert.Contains(t, text, "🆕 New Products (1 found)")
	assert.Contains(t, text, "• Home Jersey 2025 - €89.99")

	assert.Contains(t, text, "💰 New Discounts (1 found)")
	assert.Contains(t, text, "• Away Jersey 2024")
	assert.Contains(t, text, "€60.00 (was €90.00) - 33.3%")

	assert.Contains(t, text, "📐 Size Sequence Changes (1 found)")
	assert.Contains(t, text, "• Training Top - ❌ Broken")

	// Sections appear in diff order.
	assert.Less(t, strings.Index(text, "New Products"), strings.Index(text, "New Discounts"))
	assert.Less(t, strings.Index(text, "New Discounts"), strings.Index(text, "Size Sequence Changes"))
}

func TestComposeFixedTransition(t *testing.T) {
	diff := model.DiffResult{
		SequenceTransitions: []model.VerdictTransition{
			{
				Product: model.Product{ID: "1", Title: "Scarf"},
				From:    model.VerdictNonSequential,
				To:      model.VerdictSequential,
			},
		},
	}

	messages := Compose(diff)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "• Scarf - ✅ Fixed")
}

func TestComposeSplitsLongNotifications(t *testing.T) {
	var diff model.DiffResult
	for i := 0; i < 300; i++ {
		diff.NewProducts = append(diff.NewProducts, model.Product{
			ID:           fmt.Sprintf("p%d", i),
			Title:        fmt.Sprintf("Limited Edition Retro Jersey Number %d", i),
			CurrentPrice: decimal.NewFromFloat(99.99),
		})
	}

	messages := Compose(diff)
	require.Greater(t, len(messages), 1)
	for _, msg := range messages {
		assert.LessOrEqual(t, len(msg), maxMessageLen)
	}

	// No lines lost in the split.
	joined := strings.Join(messages, "")
	assert.Equal(t, 300, strings.Count(joined, "• "))
}

func TestComposeIsDeterministic(t *testing.T) {
	diff := model.DiffResult{
		NewProducts: []model.Product{
			{ID: "1", Title: "Jersey", CurrentPrice: decimal.NewFromFloat(50)},
		},
	}

	first := Compose(diff)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Compose(diff))
	}
}
