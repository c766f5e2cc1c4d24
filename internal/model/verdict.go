package model

// Verdict classifies the ordering of a product's size listing.
type Verdict string

// Verdict constants.
const (
	// VerdictSequential means every size token parsed and the sequence is in
	// non-decreasing order with no skipped clothing rank.
	VerdictSequential Verdict = "SEQUENTIAL"
	// VerdictNonSequential means the sequence is out of order or skips a
	// defined intermediate clothing rank.
	VerdictNonSequential Verdict = "NON_SEQUENTIAL"
	// VerdictNotApplicable means the product has no real size axis: a
	// non-variant size type, fewer than two tokens, or tokens that are not
	// sizes at all.
	VerdictNotApplicable Verdict = "NOT_APPLICABLE"
)
