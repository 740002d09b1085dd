package slugify

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSeparator is the separator used when none is configured.
const DefaultSeparator = "-"

// Replacement is a single literal substitution applied before normalization.
// Pairs are applied in declaration order, each once over the whole input, so
// a later pair may act on text introduced by an earlier one.
type Replacement struct {
	Old string
	New string
}

// Option configures the slug generation behavior.
type Option func(*draft)

// draft accumulates options before validation. It is never used by the
// pipeline directly; New turns it into an immutable Slugifier.
type draft struct {
	separator     string
	lowercase     bool
	lowercaseSet  bool
	uppercase     bool
	maxLength     int
	replacements  []Replacement
	stopwords     []string
	pattern       string
	patternSet    bool
	wordBoundary  bool
	translitIcons bool
	entities      bool
	decimal       bool
	hexadecimal   bool
	saveOrder     bool
	stripChars    string
	suffixLength  int
	preTables     []*Table
}

func defaultDraft() *draft {
	return &draft{
		separator:   DefaultSeparator,
		lowercase:   true,
		maxLength:   0, // no limit
		entities:    true,
		decimal:     true,
		hexadecimal: true,
		saveOrder:   true,
	}
}

// Separator sets the separator character for the slug.
// It must be a single printable character. Default is "-".
func Separator(s string) Option {
	return func(d *draft) {
		d.separator = s
	}
}

// Lowercase controls whether the result is folded to lowercase.
// Default is true. Enabling it together with Uppercase is a
// configuration error.
func Lowercase(enabled bool) Option {
	return func(d *draft) {
		d.lowercase = enabled
		d.lowercaseSet = true
	}
}

// Uppercase controls whether the result is folded to uppercase.
// Default is false. Enabling it disables the default lowercase folding
// unless Lowercase(true) was requested explicitly, which is a
// configuration error.
func Uppercase(enabled bool) Option {
	return func(d *draft) {
		d.uppercase = enabled
	}
}

// MaxLength sets the maximum length of the generated slug in characters.
// Truncation is token-aware: the result never ends mid-token and never
// ends with a separator. Zero means no limit.
func MaxLength(n int) Option {
	return func(d *draft) {
		d.maxLength = n
	}
}

// Replacements sets ordered literal substitutions applied before
// normalization. For example: {"&", "and"}, {"@", "at"}.
func Replacements(pairs ...Replacement) Option {
	return func(d *draft) {
		d.replacements = append(d.replacements, pairs...)
	}
}

// Stopwords sets tokens that are dropped from the slug entirely.
// Matching is whole-token and case-insensitive; a stopword that is a
// substring of a longer token never matches.
func Stopwords(words ...string) Option {
	return func(d *draft) {
		d.stopwords = append(d.stopwords, words...)
	}
}

// RegexPattern replaces the default allowed-character policy (ASCII
// letters and digits) with a custom one. The pattern matches the
// characters to be stripped, so re-include anything you want to keep,
// e.g. "[^-a-z0-9_]+" preserves underscores. The pattern and the default
// policy are mutually exclusive, not additive. An empty or non-compiling
// pattern is a configuration error.
func RegexPattern(pattern string) Option {
	return func(d *draft) {
		d.pattern = pattern
		d.patternSet = true
	}
}

// WordBoundary additionally splits tokens at letter-case transitions
// (lower to upper) and digit/letter transitions, so "CamelCase2Slug"
// becomes "camel-case-2-slug". Splits never cross a disallowed-character
// boundary. Default is false.
func WordBoundary(enabled bool) Option {
	return func(d *draft) {
		d.wordBoundary = enabled
	}
}

// TransliterateIcons controls whether emoji and symbol characters are
// transliterated through the Symbols table ("🚀" becomes "rocket")
// instead of being dropped. Default is false.
func TransliterateIcons(enabled bool) Option {
	return func(d *draft) {
		d.translitIcons = enabled
	}
}

// Entities controls decoding of named HTML entities such as "&amp;"
// before normalization. Default is true.
func Entities(enabled bool) Option {
	return func(d *draft) {
		d.entities = enabled
	}
}

// Decimal controls decoding of decimal character references such as
// "&#381;" before normalization. Default is true.
func Decimal(enabled bool) Option {
	return func(d *draft) {
		d.decimal = enabled
	}
}

// Hexadecimal controls decoding of hexadecimal character references such
// as "&#x17D;" before normalization. Default is true.
func Hexadecimal(enabled bool) Option {
	return func(d *draft) {
		d.hexadecimal = enabled
	}
}

// SaveOrder controls truncation semantics when MaxLength is set.
// When true (the default) the result is a prefix of the token sequence.
// When false, tokens that do not fit are skipped and later shorter
// tokens may still be used to fill the remaining room.
func SaveOrder(enabled bool) Option {
	return func(d *draft) {
		d.saveOrder = enabled
	}
}

// StripChars sets characters that are deleted outright before
// tokenization, instead of becoming separator boundaries.
func StripChars(chars string) Option {
	return func(d *draft) {
		d.stripChars = chars
	}
}

// WithSuffix adds a random alphanumeric suffix to reduce collision
// possibility. The suffix is separated by the configured separator and
// budgeted inside MaxLength.
// Example: "hello-world-x7g3k2" (with length=6)
func WithSuffix(length int) Option {
	return func(d *draft) {
		d.suffixLength = length
	}
}

// PreTranslate applies the given special-mapping tables to the input
// before any other stage, in the given order. This is the configured
// form of ApplyPreTranslations; tables are never applied implicitly.
func PreTranslate(tables ...*Table) Option {
	return func(d *draft) {
		d.preTables = append(d.preTables, tables...)
	}
}

// Slugifier is a validated, immutable slug configuration. It is safe for
// concurrent use; Slugify never mutates it.
type Slugifier struct {
	separator     string
	lowercase     bool
	uppercase     bool
	maxLength     int
	replacements  []Replacement
	stopwords     map[string]struct{}
	pattern       *regexp.Regexp
	wordBoundary  bool
	translitIcons bool
	entities      bool
	decimal       bool
	hexadecimal   bool
	saveOrder     bool
	stripChars    string
	suffixLength  int
	preTables     []*Table
}

// New validates the options and returns an immutable Slugifier.
// Validation is exhaustive and fails fast: a malformed configuration
// never reaches the pipeline.
func New(opts ...Option) (*Slugifier, error) {
	d := defaultDraft()
	for _, opt := range opts {
		opt(d)
	}

	if d.uppercase && d.lowercase && d.lowercaseSet {
		return nil, ErrConflictingCase
	}
	if d.uppercase {
		d.lowercase = false
	}

	r, size := utf8.DecodeRuneInString(d.separator)
	if r == utf8.RuneError || size != len(d.separator) || !unicode.IsPrint(r) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, d.separator)
	}

	if d.maxLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxLength, d.maxLength)
	}
	if d.suffixLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSuffixLength, d.suffixLength)
	}

	var pattern *regexp.Regexp
	if d.patternSet {
		if d.pattern == "" {
			return nil, fmt.Errorf("%w: pattern is empty", ErrInvalidPattern)
		}
		var err error
		if pattern, err = regexp.Compile(d.pattern); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
	}

	var stopwords map[string]struct{}
	if len(d.stopwords) > 0 {
		stopwords = make(map[string]struct{}, len(d.stopwords))
		for _, w := range d.stopwords {
			stopwords[strings.ToLower(w)] = struct{}{}
		}
	}

	return &Slugifier{
		separator:     d.separator,
		lowercase:     d.lowercase,
		uppercase:     d.uppercase,
		maxLength:     d.maxLength,
		replacements:  d.replacements,
		stopwords:     stopwords,
		pattern:       pattern,
		wordBoundary:  d.wordBoundary,
		translitIcons: d.translitIcons,
		entities:      d.entities,
		decimal:       d.decimal,
		hexadecimal:   d.hexadecimal,
		saveOrder:     d.saveOrder,
		stripChars:    d.stripChars,
		suffixLength:  d.suffixLength,
		preTables:     d.preTables,
	}, nil
}
