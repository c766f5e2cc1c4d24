package bot

import (
	"fmt"
	"testing"
	"time"

	"github.com/Veloruze/shop-comofootball-bot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annotated(id, title, sizeType string, verdict model.Verdict, sizes ...string) model.AnnotatedProduct {
	return model.AnnotatedProduct{
		Product: model.Product{ID: id, Title: title, SizeType: sizeType, Sizes: sizes},
		Verdict: verdict,
	}
}

func TestFormatNonSequential(t *testing.T) {
	snapshot := model.NewSnapshot(time.Now(), []model.AnnotatedProduct{
		annotated("1", "Home Jersey", "Taglia", model.VerdictNonSequential, "S", "L"),
		annotated("2", "Away Jersey", "Taglia", model.VerdictSequential, "S", "M", "L"),
		annotated("3", "Add Your Name/Number", "option", model.VerdictNonSequential, "Choose"),
	})

	messages := formatNonSequential(&snapshot)
	require.Len(t, messages, 1)

	assert.Contains(t, messages[0], "Non-Sequential Size Products (1 found)")
	assert.Contains(t, messages[0], "• Home Jersey (S,L)")
	assert.NotContains(t, messages[0], "Away Jersey")
	assert.NotContains(t, messages[0], "Add Your Name/Number", "customization products are excluded")
}

func TestFormatNonSequentialAllClean(t *testing.T) {
	snapshot := model.NewSnapshot(time.Now(), []model.AnnotatedProduct{
		annotated("1", "Home Jersey", "Taglia", model.VerdictSequential, "S", "M"),
	})

	messages := formatNonSequential(&snapshot)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "All products have sequential sizes")
}

func TestFormatNonSequentialNoSnapshot(t *testing.T) {
	messages := formatNonSequential(nil)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "No product data yet")
}

func TestFormatSizeType(t *testing.T) {
	snapshot := model.NewSnapshot(time.Now(), []model.AnnotatedProduct{
		annotated("1", "Retro Shirt", "option", model.VerdictSequential, "S", "M"),
		annotated("2", "Home Jersey", "Taglia", model.VerdictSequential, "S", "M"),
	})

	messages := formatSizeType(&snapshot, "option")
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Products with 'option' Size Type (1 found)")
	assert.Contains(t, messages[0], "• Retro Shirt")
	assert.NotContains(t, messages[0], "Home Jersey")
}

func TestFormatSizeTypeNoMatches(t *testing.T) {
	snapshot := model.NewSnapshot(time.Now(), []model.AnnotatedProduct{
		annotated("1", "Home Jersey", "Taglia", model.VerdictSequential, "S", "M"),
	})

	messages := formatSizeType(&snapshot, "option")
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "No products found with 'option' size type")
}

func TestChunkLinesSplitsLongListings(t *testing.T) {
	var products []model.AnnotatedProduct
	for i := 0; i < 400; i++ {
		products = append(products, annotated(
			fmt.Sprintf("p%d", i),
			fmt.Sprintf("Limited Edition Commemorative Jersey Number %d", i),
			"Taglia",
			model.VerdictNonSequential,
			"S", "L",
		))
	}
	snapshot := model.NewSnapshot(time.Now(), products)

	messages := formatNonSequential(&snapshot)
	require.Greater(t, len(messages), 1)
	for _, msg := range messages {
		assert.LessOrEqual(t, len(msg), maxMessageLen)
	}
}

func TestIsCustomizationTitle(t *testing.T) {
	assert.True(t, isCustomizationTitle("Add Your Name/Number"))
	assert.True(t, isCustomizationTitle("choose a player patch"))
	assert.False(t, isCustomizationTitle("Home Jersey 2025"))
}
