package sizes

import (
	"strings"

	"github.com/Veloruze/shop-comofootball-bot/internal/model"
)

// nonVariantSizeTypes are option labels that carry no real size axis.
var nonVariantSizeTypes = map[string]struct{}{
	"Default Title": {},
	"Default":       {},
}

// instructionPhrases mark customization tokens that look like variants but are
// not sizes, e.g. jersey printing options.
var instructionPhrases = []string{
	"add your name/number",
	"add name/number",
	"choose a player",
	"choose a patch",
}

// Classify yields the size-sequence verdict for one product's size listing.
// It depends only on the size type and the ordered tokens; identical inputs
// always produce the identical verdict.
func Classify(sizeType string, tokens []string) model.Verdict {
	if _, ok := nonVariantSizeTypes[sizeType]; ok {
		return model.VerdictNotApplicable
	}
	if len(tokens) <= 1 {
		return model.VerdictNotApplicable
	}

	parsed := make([]ParsedSize, len(tokens))
	for i, token := range tokens {
		if isInstruction(token) {
			return model.VerdictNotApplicable
		}
		p := Parse(token)
		if p.Kind == KindUnparseable {
			// Order cannot be judged on non-size data.
			return model.VerdictNotApplicable
		}
		parsed[i] = p
	}

	for i := 1; i < len(parsed); i++ {
		prev, cur := parsed[i-1], parsed[i]
		if cur.Key < prev.Key {
			return model.VerdictNonSequential
		}
		// A clothing run that skips a defined intermediate rank, such as
		// "S,L", counts as broken even though it is ascending.
		if prev.Kind == KindClothing && cur.Kind == KindClothing && cur.Key-prev.Key >= 2 {
			return model.VerdictNonSequential
		}
	}
	return model.VerdictSequential
}

func isInstruction(token string) bool {
	lower := strings.ToLower(strings.TrimSpace(token))
	for _, phrase := range instructionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
