package slugify

import (
	"strings"
	"unicode/utf8"
)

// smartTruncate joins tokens with the separator, keeping the result
// within maxLength characters without ever splitting a token or leaving
// a trailing separator. With saveOrder the result is a strict prefix of
// the token sequence; without it, tokens that do not fit are skipped and
// later tokens may still be used to fill the remaining room.
func smartTruncate(tokens []string, separator string, maxLength int, saveOrder bool) string {
	if len(tokens) == 0 {
		return ""
	}
	joined := strings.Join(tokens, separator)
	if maxLength <= 0 || utf8.RuneCountInString(joined) <= maxLength {
		return joined
	}

	sepLen := utf8.RuneCountInString(separator)
	var b strings.Builder
	used := 0
	for _, tok := range tokens {
		need := utf8.RuneCountInString(tok)
		if used > 0 {
			need += sepLen
		}
		if used+need > maxLength {
			if saveOrder {
				break
			}
			continue
		}
		if used > 0 {
			b.WriteString(separator)
		}
		b.WriteString(tok)
		used += need
	}
	return b.String()
}
