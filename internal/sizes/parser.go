// Package sizes parses raw catalog size tokens and classifies the ordering of
// a product's size listing.
package sizes

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind discriminates the parsed forms of a size token.
type Kind int

// Parsed token kinds.
const (
	KindUnparseable Kind = iota
	KindClothing
	KindRange
	KindAge
)

// ParsedSize is the tagged result of parsing one raw size token. Key is the
// comparison key and is only meaningful when Kind is not KindUnparseable. High
// carries the upper bound for range and age tokens.
type ParsedSize struct {
	Raw  string
	Kind Kind
	Key  int
	High int
}

// clothingRanks is the enumerated total order of letter sizes. XXL and 2XL
// share a rank; the shop uses both spellings interchangeably.
var clothingRanks = map[string]int{
	"XXXS": 1,
	"XXS":  2,
	"XS":   3,
	"S":    4,
	"M":    5,
	"L":    6,
	"XL":   7,
	"XXL":  8,
	"2XL":  8,
	"3XL":  9,
	"4XL":  10,
}

var (
	numericRangeRe = regexp.MustCompile(`^(\d+)[/-](\d+)$`)
	ageSeparatedRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[A-Z]?$`)
	ageJoinedRe    = regexp.MustCompile(`^(\d{2,4})([A-Z])?$`)
	digitsRe       = regexp.MustCompile(`^\d+$`)
)

// Parse normalizes one raw size token into a comparable form. Rules are tried
// in a fixed precedence order and the first match wins; anything that matches
// nothing is Unparseable. Parse is a pure function of the token text and never
// panics.
func Parse(token string) ParsedSize {
	raw := strings.TrimSpace(token)
	if raw == "" {
		return ParsedSize{Raw: raw, Kind: KindUnparseable}
	}
	upper := strings.ToUpper(raw)

	// Exact clothing-size label.
	if rank, ok := clothingRanks[upper]; ok {
		return ParsedSize{Raw: raw, Kind: KindClothing, Key: rank}
	}

	// Numeric range such as "36/37" or "38-39", keyed by the lower bound.
	if m := numericRangeRe.FindStringSubmatch(upper); m != nil {
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			if hi < lo {
				lo, hi = hi, lo
			}
			return ParsedSize{Raw: raw, Kind: KindRange, Key: lo, High: hi}
		}
	}

	// Age range such as "5-6A", "7/8A", "910A" or "1314".
	if p, ok := parseAge(raw, upper); ok {
		return p
	}

	// Mixed letter/number such as "S/46"; the number is metadata, the letter
	// ordinal orders the token.
	if left, right, ok := strings.Cut(upper, "/"); ok {
		leftRank, leftIsClothing := clothingRanks[left]
		rightRank, rightIsClothing := clothingRanks[right]
		switch {
		case leftIsClothing && rightIsClothing:
			// Combination token such as "S/M", keyed by the lower member.
			if rightRank < leftRank {
				leftRank = rightRank
			}
			return ParsedSize{Raw: raw, Kind: KindClothing, Key: leftRank}
		case leftIsClothing && digitsRe.MatchString(right):
			return ParsedSize{Raw: raw, Kind: KindClothing, Key: leftRank}
		}
	}

	return ParsedSize{Raw: raw, Kind: KindUnparseable}
}

// parseAge handles age-range tokens: two 1-2 digit numbers joined by "-", "/"
// or nothing at all, optionally followed by a trailing letter. A valid age
// range has its first number no greater than the second.
func parseAge(raw, upper string) (ParsedSize, bool) {
	if m := agesFromSeparated(upper); m != nil {
		return ParsedSize{Raw: raw, Kind: KindAge, Key: m[0], High: m[1]}, true
	}

	m := ageJoinedRe.FindStringSubmatch(upper)
	if m == nil {
		return ParsedSize{}, false
	}
	digits, letter := m[1], m[2]

	// Without a separator a trailing letter is required to disambiguate from a
	// plain number, except for four-digit runs like "1314" which can only be an
	// age pair.
	if letter == "" && len(digits) != 4 {
		return ParsedSize{}, false
	}

	var lo, hi int
	switch len(digits) {
	case 2:
		lo, _ = strconv.Atoi(digits[:1])
		hi, _ = strconv.Atoi(digits[1:])
	case 3:
		// "910" splits 1/2 as 9-10; the 2/1 split can never satisfy lo <= hi.
		lo, _ = strconv.Atoi(digits[:1])
		hi, _ = strconv.Atoi(digits[1:])
	case 4:
		lo, _ = strconv.Atoi(digits[:2])
		hi, _ = strconv.Atoi(digits[2:])
	default:
		return ParsedSize{}, false
	}
	if lo > hi {
		return ParsedSize{}, false
	}
	return ParsedSize{Raw: raw, Kind: KindAge, Key: lo, High: hi}, true
}

func agesFromSeparated(upper string) []int {
	m := ageSeparatedRe.FindStringSubmatch(upper)
	if m == nil {
		return nil
	}
	lo, _ := strconv.Atoi(m[1])
	hi, _ := strconv.Atoi(m[2])
	if lo > hi {
		return nil
	}
	return []int{lo, hi}
}
