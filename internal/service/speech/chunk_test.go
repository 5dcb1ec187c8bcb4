package speech

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{"empty", "   ", 10, nil},
		{"short", "Bonjour à tous", 200, []string{"Bonjour à tous"}},
		{"exact", "abcde", 5, []string{"abcde"}},
		{"word boundary", "un deux trois", 8, []string{"un deux", "trois"}},
		{"space at window edge", "abcd efgh", 4, []string{"abcd", "efgh"}},
		{"no whitespace", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"runes not bytes", "éééé éééé", 4, []string{"éééé", "éééé"}},
		{"collapses gaps", "aa    bb", 3, []string{"aa", "bb"}},
		{"no limit", "a b c", 0, []string{"a b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitChunks(tt.text, tt.max))
		})
	}
}

func TestSplitChunks_LongText(t *testing.T) {
	text := strings.Repeat("abcd ", 90)
	require.Equal(t, 450, len(text))

	chunks := SplitChunks(text, 200)
	require.Len(t, chunks, 3)

	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 200)
		for _, w := range strings.Fields(c) {
			assert.Equal(t, "abcd", w, "word split across chunks")
		}
	}
	assert.Equal(t, strings.TrimSpace(text), strings.Join(chunks, " "))
}
