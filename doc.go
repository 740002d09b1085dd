// Package slugify converts arbitrary text into canonical, URL-safe slugs:
// lowercase by default, ASCII-only, separator-delimited strings suitable
// for URLs, filenames and identifiers.
//
// The transformation is a deterministic pipeline: optional pre-translation
// through curated script tables, ordered literal replacements, HTML
// character reference decoding, Unicode compatibility decomposition with
// combining marks stripped, tokenization under an allowed-character
// policy, stopword filtering, token-aware length enforcement and a final
// case policy.
//
// # Features
//
//   - Unicode normalization (diacritics fold to their ASCII base letters)
//   - Curated special-mapping tables for Cyrillic, German, Greek and
//     emoji/symbols, applied only on explicit request
//   - Configurable separator, case policy and maximum length
//   - Ordered custom replacements (e.g. "&" → "and") and stopword sets
//   - Custom allowed-character patterns that fully replace the default
//     alphanumeric policy
//   - Word-boundary splitting for camel-case and digit transitions
//   - HTML entity and numeric character reference decoding
//   - Random suffix generation for collision avoidance
//
// # Usage
//
// One-off calls validate options and slugify in one step:
//
//	out, err := slugify.Make("Hello World!")
//	// out: "hello-world"
//
// When slugifying in a loop, build the configuration once:
//
//	s, err := slugify.New(
//		slugify.MaxLength(40),
//		slugify.Stopwords("a", "the"),
//	)
//	if err != nil {
//		// configuration error: invalid pattern, separator or case conflict
//	}
//	out := s.Slugify("The Quick Brown Fox") // "quick-brown-fox"
//
// Curated tables are never applied implicitly. Use them through the
// explicit pre-pass or the PreTranslate option:
//
//	text := slugify.ApplyPreTranslations("Über Fluß", slugify.German)
//	out, _ := slugify.Make(text) // "ueber-fluss"
//
// # Error Handling
//
// All validation happens in New (or the Make wrapper): conflicting case
// options, a separator that is not a single printable character, a
// negative length or a non-compiling pattern are reported as errors that
// match the package sentinels with errors.Is. Once a Slugifier is built,
// Slugify is total over all UTF-8 input and always returns a string,
// possibly empty.
//
// # Thread Safety
//
// A Slugifier is immutable after New and safe for concurrent use. The
// built-in tables are read-only process-wide data; no synchronization is
// required.
package slugify
