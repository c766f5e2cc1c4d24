package bot

import (
	"fmt"
	"strings"

	"github.com/Veloruze/shop-comofootball-bot/internal/engine"
	"github.com/Veloruze/shop-comofootball-bot/internal/model"
)

// maxMessageLen leaves headroom under Telegram's 4096-character limit.
const maxMessageLen = 3500

// customizationKeywords mark products that are printing/patch options rather
// than real garments; listing commands exclude them.
var customizationKeywords = []string{
	"add your name/number",
	"add name/number",
	"choose a player",
	"choose a patch",
}

func isCustomizationTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, keyword := range customizationKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func formatWelcome() string {
	return `🏟️ Como 1907 Products Bot

Available commands:
/sizesequence - Show products with non-sequential sizes
/sizetype - Show products with 'option' size type
/refresh - Manually update data
/subscribe - Get automatic notifications
/unsubscribe - Stop notifications

📊 Notifications: New products, size changes, discounts

Data from Como Football official shop`
}

func formatHelp() string {
	return `🏟️ Como 1907 Products Bot - Help

🔍 /sizesequence
Show products with non-sequential sizes

📊 /sizetype
Show products with 'option' size type

🔄 /refresh
Update data from Como Football shop

🔔 /subscribe
Get automatic change notifications

🔕 /unsubscribe
Stop notifications

❓ /help
Show this help message

📋 /start
Welcome message and basic info`
}

// formatNonSequential lists products whose current verdict is NonSequential,
// excluding customization products, split into sendable chunks.
func formatNonSequential(snapshot *model.Snapshot) []string {
	if snapshot == nil {
		return []string{"❌ No product data yet. Use /refresh first."}
	}

	var lines []string
	for _, ap := range snapshot.Products() {
		if ap.Verdict != model.VerdictNonSequential || isCustomizationTitle(ap.Product.Title) {
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s (%s)", ap.Product.Title, strings.Join(ap.Product.Sizes, ",")))
	}

	if len(lines) == 0 {
		return []string{"✅ All products have sequential sizes!"}
	}

	header := fmt.Sprintf("🔍 Non-Sequential Size Products (%d found)\n", len(lines))
	return chunkLines(header, lines)
}

// formatSizeType lists products carrying the given size-type label, excluding
// customization products.
func formatSizeType(snapshot *model.Snapshot, sizeType string) []string {
	if snapshot == nil {
		return []string{"❌ No product data yet. Use /refresh first."}
	}

	var lines []string
	for _, ap := range snapshot.Products() {
		if ap.Product.SizeType != sizeType || isCustomizationTitle(ap.Product.Title) {
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s", ap.Product.Title))
	}

	if len(lines) == 0 {
		return []string{fmt.Sprintf("❌ No products found with '%s' size type.", sizeType)}
	}

	header := fmt.Sprintf("📊 Products with '%s' Size Type (%d found)\n", sizeType, len(lines))
	return chunkLines(header, lines)
}

func formatRefreshSummary(result *engine.Result) string {
	summary := fmt.Sprintf("✅ Data refreshed successfully!\n\nTotal products: %d", result.TotalProducts)
	if result.FirstRun {
		summary += "\n\nFirst refresh: baseline saved, changes will be reported from the next refresh."
	}
	return summary
}

// chunkLines joins a header and bullet lines into messages that each fit the
// Telegram size limit.
func chunkLines(header string, lines []string) []string {
	var messages []string
	var b strings.Builder
	b.WriteString(header)

	for _, line := range lines {
		if b.Len()+len(line)+1 > maxMessageLen {
			messages = append(messages, b.String())
			b.Reset()
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	if b.Len() > 0 {
		messages = append(messages, b.String())
	}
	return messages
}
