package speech

import (
	"strings"
	"unicode"
)

// SplitChunks cuts text into pieces of at most max runes, breaking at the
// last whitespace of each window. A window without whitespace is cut at max.
func SplitChunks(text string, max int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if max <= 0 {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > 0 {
		if len(runes) <= max {
			chunks = appendChunk(chunks, runes)
			break
		}

		cut := max
		for i := max; i > 0; i-- {
			if unicode.IsSpace(runes[i]) {
				cut = i
				break
			}
		}

		chunks = appendChunk(chunks, runes[:cut])
		runes = []rune(strings.TrimLeftFunc(string(runes[cut:]), unicode.IsSpace))
	}
	return chunks
}

func appendChunk(chunks []string, runes []rune) []string {
	chunk := strings.TrimSpace(string(runes))
	if chunk == "" {
		return chunks
	}
	return append(chunks, chunk)
}
