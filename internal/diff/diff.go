// Package diff computes the structured changes between two consecutive
// catalog snapshots.
package diff

import (
	"github.com/Veloruze/shop-comofootball-bot/internal/model"
)

// Diff compares the previous and current snapshots and returns the changes.
//
// A nil previous snapshot means this is the first refresh; the result is empty
// so the first run never floods notifications. Products without an identifier
// are skipped and never abort the rest of the comparison. Comparing a snapshot
// against itself yields an empty result.
func Diff(previous *model.Snapshot, current model.Snapshot) model.DiffResult {
	var result model.DiffResult
	if previous == nil {
		return result
	}

	for _, cur := range current.Products() {
		if cur.Product.ID == "" {
			continue
		}

		prev, existed := previous.Get(cur.Product.ID)
		if !existed {
			result.NewProducts = append(result.NewProducts, cur.Product)
			continue
		}

		// Only the appearance of a discount is reported; a discount whose
		// amount changed is not a new discount.
		if !prev.Product.HasDiscount() && cur.Product.HasDiscount() {
			result.NewDiscounts = append(result.NewDiscounts, cur.Product)
		}

		if prev.Verdict != cur.Verdict {
			result.SequenceTransitions = append(result.SequenceTransitions, model.VerdictTransition{
				Product: cur.Product,
				From:    prev.Verdict,
				To:      cur.Verdict,
			})
		}
	}
	return result
}
