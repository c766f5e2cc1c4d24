package sizes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantKind Kind
		wantKey  int
		wantHigh int
	}{
		{
			name:     "exact clothing size",
			token:    "XS",
			wantKind: KindClothing,
			wantKey:  3,
		},
		{
			name:     "lowercase clothing size",
			token:    "s",
			wantKind: KindClothing,
			wantKey:  4,
		},
		{
			name:     "clothing size with whitespace",
			token:    "  M  ",
			wantKind: KindClothing,
			wantKey:  5,
		},
		{
			name:     "XXL and 2XL share a rank",
			token:    "2XL",
			wantKind: KindClothing,
			wantKey:  8,
		},
		{
			name:     "3XL follows the shared rank",
			token:    "3XL",
			wantKind: KindClothing,
			wantKey:  9,
		},
		{
			name:     "slash numeric range keyed by lower bound",
			token:    "36/37",
			wantKind: KindRange,
			wantKey:  36,
			wantHigh: 37,
		},
		{
			name:     "dash numeric range",
			token:    "38-39",
			wantKind: KindRange,
			wantKey:  38,
			wantHigh: 39,
		},
		{
			name:     "age range with dash and suffix",
			token:    "5-6A",
			wantKind: KindAge,
			wantKey:  5,
			wantHigh: 6,
		},
		{
			name:     "age range with slash and suffix",
			token:    "7/8A",
			wantKind: KindAge,
			wantKey:  7,
			wantHigh: 8,
		},
		{
			name:     "joined three-digit age run",
			token:    "910A",
			wantKind: KindAge,
			wantKey:  9,
			wantHigh: 10,
		},
		{
			name:     "joined two-digit age run",
			token:    "56A",
			wantKind: KindAge,
			wantKey:  5,
			wantHigh: 6,
		},
		{
			name:     "joined four-digit age run without suffix",
			token:    "1314",
			wantKind: KindAge,
			wantKey:  13,
			wantHigh: 14,
		},
		{
			name:     "mixed letter and number keyed by letter",
			token:    "S/46",
			wantKind: KindClothing,
			wantKey:  4,
		},
		{
			name:     "letter pair keyed by lower member",
			token:    "S/M",
			wantKind: KindClothing,
			wantKey:  4,
		},
		{
			name:     "reversed letter pair still keyed by lower member",
			token:    "M/S",
			wantKind: KindClothing,
			wantKey:  4,
		},
		{
			name:     "empty string",
			token:    "",
			wantKind: KindUnparseable,
		},
		{
			name:     "bare numeric is ambiguous",
			token:    "46",
			wantKind: KindUnparseable,
		},
		{
			name:     "bare three-digit numeric without suffix is ambiguous",
			token:    "910",
			wantKind: KindUnparseable,
		},
		{
			name:     "instruction text",
			token:    "Add name/number",
			wantKind: KindUnparseable,
		},
		{
			name:     "default variant title",
			token:    "Default Title",
			wantKind: KindUnparseable,
		},
		{
			name:     "descending joined digits are not an age",
			token:    "96A",
			wantKind: KindUnparseable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.token)
			assert.Equal(t, tt.wantKind, got.Kind)
			if tt.wantKind != KindUnparseable {
				assert.Equal(t, tt.wantKey, got.Key)
			}
			if tt.wantHigh != 0 {
				assert.Equal(t, tt.wantHigh, got.High)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	tokens := []string{"XS", "36/37", "910A", "S/46", "garbage", ""}
	for _, token := range tokens {
		first := Parse(token)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Parse(token), "token %q", token)
		}
	}
}
