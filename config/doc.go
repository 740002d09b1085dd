// Package config sources slugify option drafts from the environment or
// from YAML documents.
//
// It is the in-process home for the recognized option names (separator,
// lowercase, uppercase, max_length, replacements, stopwords,
// regex_pattern, word_boundary, transliterate_icons, pre_translate) so
// that CLI front-ends and host-language bindings can stay thin: they
// hand over a Config and receive a validated Slugifier. The package does
// no flag parsing and owns no process conventions.
//
// # Usage
//
// From SLUGIFY_* environment variables (a .env file in the working
// directory is honored once, if present):
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//		// malformed environment value
//	}
//	s, err := cfg.Slugifier()
//
// From a YAML document:
//
//	cfg, err := config.FromFile("slugify.yaml")
//
// with a document such as:
//
//	separator: "_"
//	max_length: 40
//	stopwords: [a, an, the]
//	replacements:
//	  - {old: "&", new: "and"}
//	pre_translate: [german]
//
// Unknown pre-translation table names and malformed replacement pairs
// are rejected when resolving options; all remaining validation happens
// in slugify.New.
package config
