// Package notify renders diff results into deliverable notification messages
// and sends them to Telegram subscribers.
package notify

import (
	"fmt"
	"strings"

	"github.com/Veloruze/shop-comofootball-bot/internal/model"
)

// maxMessageLen leaves headroom under Telegram's 4096-character limit.
const maxMessageLen = 3500

// Compose renders a diff into independently deliverable messages. An empty
// diff produces no messages so a no-change refresh stays silent. The result is
// one aggregate notification, split into several messages only when it would
// exceed the Telegram size limit.
func Compose(diff model.DiffResult) []string {
	if diff.Empty() {
		return nil
	}

	var b strings.Builder

	if len(diff.NewProducts) > 0 {
		fmt.Fprintf(&b, "🆕 New Products (%d found)\n\n", len(diff.NewProducts))
		for _, p := range diff.NewProducts {
			fmt.Fprintf(&b, "• %s - €%s\n", p.Title, p.CurrentPrice.StringFixed(2))
		}
	}

	if len(diff.NewDiscounts) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "💰 New Discounts (%d found)\n\n", len(diff.NewDiscounts))
		for _, p := range diff.NewDiscounts {
			fmt.Fprintf(&b, "• %s\n  €%s (was €%s) - %s%%\n",
				p.Title,
				p.CurrentPrice.StringFixed(2),
				p.OriginalPrice.StringFixed(2),
				p.DiscountPercent().StringFixed(1))
		}
	}

	if len(diff.SequenceTransitions) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "📐 Size Sequence Changes (%d found)\n\n", len(diff.SequenceTransitions))
		for _, t := range diff.SequenceTransitions {
			fmt.Fprintf(&b, "• %s - %s\n", t.Product.Title, transitionStatus(t))
		}
	}

	return splitMessage(b.String())
}

func transitionStatus(t model.VerdictTransition) string {
	switch t.To {
	case model.VerdictSequential:
		return "✅ Fixed"
	case model.VerdictNonSequential:
		return "❌ Broken"
	default:
		return "➖ No longer applicable"
	}
}

// splitMessage breaks a rendered notification on line boundaries so that every
// chunk fits in a single Telegram message.
func splitMessage(text string) []string {
	if text == "" {
		return nil
	}
	if len(text) <= maxMessageLen {
		return []string{text}
	}

	var messages []string
	var chunk strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if chunk.Len()+len(line) > maxMessageLen && chunk.Len() > 0 {
			messages = append(messages, chunk.String())
			chunk.Reset()
		}
		chunk.WriteString(line)
	}
	if chunk.Len() > 0 {
		messages = append(messages, chunk.String())
	}
	return messages
}
