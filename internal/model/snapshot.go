package model

import "time"

// AnnotatedProduct pairs a product with its size-sequence verdict for one
// snapshot.
type AnnotatedProduct struct {
	Product Product
	Verdict Verdict
}

// Snapshot is an immutable point-in-time view of the full catalog with
// per-product verdicts attached. Construct one with NewSnapshot; it is never
// mutated afterwards.
type Snapshot struct {
	takenAt  time.Time
	products []AnnotatedProduct
	byID     map[string]int
}

// NewSnapshot builds a snapshot from annotated products, preserving their
// order. Products without an identifier are kept in the listing but cannot be
// looked up and are ignored by the diff engine.
func NewSnapshot(takenAt time.Time, products []AnnotatedProduct) Snapshot {
	byID := make(map[string]int, len(products))
	copied := make([]AnnotatedProduct, len(products))
	copy(copied, products)
	for i, ap := range copied {
		if ap.Product.ID == "" {
			continue
		}
		if _, exists := byID[ap.Product.ID]; !exists {
			byID[ap.Product.ID] = i
		}
	}
	return Snapshot{takenAt: takenAt, products: copied, byID: byID}
}

// TakenAt returns the refresh time of the snapshot.
func (s Snapshot) TakenAt() time.Time {
	return s.takenAt
}

// Len returns the number of products in the snapshot.
func (s Snapshot) Len() int {
	return len(s.products)
}

// Products returns the annotated products in catalog order. Callers must not
// modify the returned slice.
func (s Snapshot) Products() []AnnotatedProduct {
	return s.products
}

// Get looks up a product by identifier.
func (s Snapshot) Get(id string) (AnnotatedProduct, bool) {
	i, ok := s.byID[id]
	if !ok {
		return AnnotatedProduct{}, false
	}
	return s.products[i], true
}
