package slugify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// marksRemover strips combining marks after compatibility decomposition,
// turning "é" into "e" and "ﬁ" into "fi". It is stateless and shared by
// all invocations.
var marksRemover = runes.Remove(runes.In(unicode.Mn))

// transliterate performs the best-effort ASCII pass: optional symbol
// transliteration, compatibility decomposition with combining marks
// dropped, and folding of Latin letters that have no ASCII decomposition.
// Characters that still have no ASCII form (ideographs, uncovered
// scripts) pass through unchanged and are left to the allowed-character
// policy. Curated script tables are deliberately not consulted here;
// they only apply via the explicit pre-translation pass.
func (s *Slugifier) transliterate(text string) string {
	if s.translitIcons {
		text = translateIcons(text)
	}

	decomposed, _, err := transform.String(transform.Chain(norm.NFKD, marksRemover, norm.NFC), text)
	if err == nil {
		text = decomposed
	}

	if !strings.ContainsFunc(text, isFoldable) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if folded, ok := latinFold[r]; ok {
			b.WriteString(folded)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isFoldable(r rune) bool {
	_, ok := latinFold[r]
	return ok
}

// translateIcons replaces symbol and emoji sequences with their ASCII
// names from the Symbols table. Replacements are padded with spaces so
// adjacent text cannot merge with the name ("a♥b" -> "a-love-b").
func translateIcons(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if repl, n, ok := Symbols.matchPrefix(text[i:]); ok {
			b.WriteByte(' ')
			b.WriteString(repl)
			b.WriteByte(' ')
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// latinFold covers Latin letters whose compatibility decomposition does
// not yield an ASCII base letter.
var latinFold = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
	'ł': "l", 'Ł': "L",
	'ħ': "h", 'Ħ': "H",
	'ŋ': "ng", 'Ŋ': "NG",
	'ĸ': "k",
	'ı': "i",
}
