package slugify

import (
	"crypto/rand"
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Patterns for HTML character references and quote handling, compiled once.
var (
	entityPattern  = regexp.MustCompile(`&[A-Za-z][A-Za-z0-9]*;`)
	decimalPattern = regexp.MustCompile(`&#[0-9]+;`)
	hexPattern     = regexp.MustCompile(`&#x[0-9a-fA-F]+;`)
	quotePattern   = regexp.MustCompile(`'+`)
)

// Make creates a URL-safe slug from the input string, validating the
// options first. It is a convenience wrapper around New and Slugify for
// one-off calls; build a Slugifier once when slugifying in a loop.
func Make(text string, opts ...Option) (string, error) {
	s, err := New(opts...)
	if err != nil {
		return "", err
	}
	return s.Slugify(text), nil
}

// Slugify converts text into a slug according to the configuration.
// It is total over all UTF-8 input: an input with no surviving token
// yields an empty string, never an error.
func (s *Slugifier) Slugify(text string) string {
	if len(s.preTables) > 0 {
		text = ApplyPreTranslations(text, s.preTables...)
	}

	for _, p := range s.replacements {
		text = strings.ReplaceAll(text, p.Old, p.New)
	}

	// Literal apostrophe runs become a word boundary before entity
	// decoding; apostrophes introduced by the decoding itself are
	// deleted afterwards ("don&#39;t" -> "dont", but "don't" -> "don-t").
	text = quotePattern.ReplaceAllString(text, " ")
	text = s.decodeReferences(text)
	text = strings.ReplaceAll(text, "'", "")

	if s.stripChars != "" {
		text = strings.Map(func(r rune) rune {
			if strings.ContainsRune(s.stripChars, r) {
				return -1
			}
			return r
		}, text)
	}

	text = s.transliterate(text)
	text = stripDigitCommas(text)

	tokens := s.collapse(text)
	tokens = s.dropStopwords(tokens)
	if s.pattern != nil {
		tokens = normalizeTokens(tokens, s.separator)
	}

	result := smartTruncate(tokens, s.separator, s.maxLength, s.saveOrder)
	if s.suffixLength > 0 {
		result = s.appendSuffix(result, tokens)
	}

	switch {
	case s.lowercase:
		result = strings.ToLower(result)
	case s.uppercase:
		result = strings.ToUpper(result)
	}
	return result
}

// decodeReferences decodes named entities and numeric character
// references according to the configuration.
func (s *Slugifier) decodeReferences(text string) string {
	if s.entities && strings.Contains(text, "&") {
		text = entityPattern.ReplaceAllStringFunc(text, html.UnescapeString)
	}
	if s.decimal && strings.Contains(text, "&#") {
		text = decimalPattern.ReplaceAllStringFunc(text, func(m string) string {
			n, err := strconv.ParseInt(m[2:len(m)-1], 10, 32)
			if err != nil || !utf8.ValidRune(rune(n)) {
				return ""
			}
			return string(rune(n))
		})
	}
	if s.hexadecimal && strings.Contains(text, "&#x") {
		text = hexPattern.ReplaceAllStringFunc(text, func(m string) string {
			n, err := strconv.ParseInt(m[3:len(m)-1], 16, 32)
			if err != nil || !utf8.ValidRune(rune(n)) {
				return ""
			}
			return string(rune(n))
		})
	}
	return text
}

// stripDigitCommas removes thousands separators so "1,000" slugs as one
// token instead of two.
func stripDigitCommas(text string) string {
	if !strings.Contains(text, ",") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	prevDigit := false
	for i, r := range text {
		if r == ',' {
			next, _ := utf8.DecodeRuneInString(text[i+1:])
			if prevDigit && next >= '0' && next <= '9' {
				continue
			}
			prevDigit = false
			b.WriteRune(r)
			continue
		}
		prevDigit = r >= '0' && r <= '9'
		b.WriteRune(r)
	}
	return b.String()
}

// allowed reports whether a character may appear in a token. The policy
// has exactly two variants: the default ASCII alphanumeric set, or the
// custom pattern which fully replaces it. The rune is judged as the case
// policy will emit it, so a lowercase-only pattern works on mixed-case
// input.
func (s *Slugifier) allowed(r rune) bool {
	if s.pattern != nil {
		switch {
		case s.lowercase:
			r = unicode.ToLower(r)
		case s.uppercase:
			r = unicode.ToUpper(r)
		}
		return !s.pattern.MatchString(string(r))
	}
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// collapse splits text into tokens: maximal runs of allowed characters.
// Runs of disallowed characters form a single boundary; leading and
// trailing boundaries produce no token. With word-boundary mode on,
// case and digit/letter transitions split an allowed run further, never
// crossing a disallowed boundary.
func (s *Slugifier) collapse(text string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	var prev rune
	inToken := false
	for _, r := range text {
		if !s.allowed(r) {
			flush()
			inToken = false
			continue
		}
		if s.wordBoundary && inToken && splitsWords(prev, r) {
			flush()
		}
		cur.WriteRune(r)
		prev = r
		inToken = true
	}
	flush()
	return tokens
}

func splitsWords(prev, r rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	}
	return false
}

// dropStopwords removes tokens whose case-folded form exactly equals a
// stopword. Substring matches never drop a token.
func (s *Slugifier) dropStopwords(tokens []string) []string {
	if len(s.stopwords) == 0 {
		return tokens
	}
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, drop := s.stopwords[strings.ToLower(tok)]; drop {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// normalizeTokens cleans up separator characters that a custom pattern
// let into tokens: runs collapse to one occurrence and token edges shed
// them, so joining can never produce doubled or dangling separators.
func normalizeTokens(tokens []string, sep string) []string {
	kept := tokens[:0]
	for _, tok := range tokens {
		if strings.Contains(tok, sep) {
			for strings.Contains(tok, sep+sep) {
				tok = strings.ReplaceAll(tok, sep+sep, sep)
			}
			tok = strings.Trim(tok, sep)
		}
		if tok == "" {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// appendSuffix attaches the random suffix, re-truncating the base slug
// at token granularity when MaxLength leaves it no room.
func (s *Slugifier) appendSuffix(result string, tokens []string) string {
	suffixLen := s.suffixLength
	if s.maxLength > 0 && suffixLen > s.maxLength {
		suffixLen = s.maxLength
	}
	suffix := randomSuffix(suffixLen, s.lowercase)

	if s.maxLength > 0 {
		budget := s.maxLength - suffixLen - utf8.RuneCountInString(s.separator)
		if budget <= 0 {
			return suffix
		}
		if utf8.RuneCountInString(result) > budget {
			result = smartTruncate(tokens, s.separator, budget, s.saveOrder)
		}
	}

	if result == "" {
		return suffix
	}
	return result + s.separator + suffix
}

// randomSuffix creates a random alphanumeric suffix of the given length.
func randomSuffix(length int, lowercase bool) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	const charsMixed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	charset := chars
	if !lowercase {
		charset = charsMixed
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// Fallback to deterministic suffix on rand.Read failure
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}
	return string(b)
}
