package model

// VerdictTransition records a product whose size-sequence verdict changed
// between two consecutive snapshots.
type VerdictTransition struct {
	Product Product
	From    Verdict
	To      Verdict
}

// DiffResult holds the changes detected between two consecutive snapshots.
// It is built once per refresh cycle and never mutated afterwards.
type DiffResult struct {
	NewProducts         []Product
	NewDiscounts        []Product
	SequenceTransitions []VerdictTransition
}

// Empty reports whether the diff contains no changes at all.
func (d DiffResult) Empty() bool {
	return len(d.NewProducts) == 0 && len(d.NewDiscounts) == 0 && len(d.SequenceTransitions) == 0
}
