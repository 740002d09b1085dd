package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/slugify"
)

// Replacement is one ordered literal substitution in a YAML document.
type Replacement struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// Config is an unvalidated slugify option draft sourced from the
// environment or a YAML document. Field names mirror the stable option
// surface of the slugify package; validation still happens in
// slugify.New, never here.
type Config struct {
	Separator          string        `env:"SLUGIFY_SEPARATOR" envDefault:"-" yaml:"separator"`
	Lowercase          bool          `env:"SLUGIFY_LOWERCASE" envDefault:"true" yaml:"lowercase"`
	Uppercase          bool          `env:"SLUGIFY_UPPERCASE" envDefault:"false" yaml:"uppercase"`
	MaxLength          int           `env:"SLUGIFY_MAX_LENGTH" envDefault:"0" yaml:"max_length"`
	WordBoundary       bool          `env:"SLUGIFY_WORD_BOUNDARY" envDefault:"false" yaml:"word_boundary"`
	TransliterateIcons bool          `env:"SLUGIFY_TRANSLITERATE_ICONS" envDefault:"false" yaml:"transliterate_icons"`
	RegexPattern       string        `env:"SLUGIFY_REGEX_PATTERN" yaml:"regex_pattern"`
	Stopwords          []string      `env:"SLUGIFY_STOPWORDS" envSeparator:"," yaml:"stopwords"`
	Replacements       []Replacement `env:"-" yaml:"replacements"`
	ReplacementPairs   []string      `env:"SLUGIFY_REPLACEMENTS" envSeparator:"," yaml:"-"`
	PreTranslate       []string      `env:"SLUGIFY_PRE_TRANSLATE" envSeparator:"," yaml:"pre_translate"`
}

func defaults() Config {
	return Config{
		Separator: slugify.DefaultSeparator,
		Lowercase: true,
	}
}

// defaultEnvLoaded guards the one-time .env load, mirroring how the rest
// of the stack sources its environment.
var defaultEnvLoaded sync.Once

// FromEnv builds a Config from SLUGIFY_* environment variables. A .env
// file in the working directory is loaded once if present; a missing
// file is not an error.
func FromEnv() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrParsingConfig, err)
	}
	return cfg, nil
}

// FromFile builds a Config from a YAML document. Absent keys keep their
// defaults (separator "-", lowercase on).
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrParsingConfig, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrParsingConfig, err)
	}
	return cfg, nil
}

// Options resolves the draft into slugify options. Table names and
// environment replacement pairs are resolved here; everything else is
// validated by slugify.New.
func (c Config) Options() ([]slugify.Option, error) {
	opts := []slugify.Option{
		slugify.Separator(c.Separator),
		slugify.MaxLength(c.MaxLength),
		slugify.WordBoundary(c.WordBoundary),
		slugify.TransliterateIcons(c.TransliterateIcons),
	}

	// The env default keeps Lowercase on, so an uppercase draft cannot be
	// distinguished from an explicit lowercase+uppercase conflict here;
	// uppercase takes precedence and conflict detection stays with the
	// direct API.
	if c.Uppercase {
		opts = append(opts, slugify.Uppercase(true))
	} else if !c.Lowercase {
		opts = append(opts, slugify.Lowercase(false))
	}

	if c.RegexPattern != "" {
		opts = append(opts, slugify.RegexPattern(c.RegexPattern))
	}
	if len(c.Stopwords) > 0 {
		opts = append(opts, slugify.Stopwords(c.Stopwords...))
	}

	pairs := make([]slugify.Replacement, 0, len(c.Replacements)+len(c.ReplacementPairs))
	for _, r := range c.Replacements {
		pairs = append(pairs, slugify.Replacement{Old: r.Old, New: r.New})
	}
	for _, raw := range c.ReplacementPairs {
		old, new, ok := strings.Cut(raw, "=")
		if !ok || old == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidReplacement, raw)
		}
		pairs = append(pairs, slugify.Replacement{Old: old, New: new})
	}
	if len(pairs) > 0 {
		opts = append(opts, slugify.Replacements(pairs...))
	}

	if len(c.PreTranslate) > 0 {
		tables := make([]*slugify.Table, 0, len(c.PreTranslate))
		for _, name := range c.PreTranslate {
			t, ok := slugify.TableByName(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
			}
			tables = append(tables, t)
		}
		opts = append(opts, slugify.PreTranslate(tables...))
	}

	return opts, nil
}

// Slugifier resolves the draft and builds a validated Slugifier in one
// step.
func (c Config) Slugifier() (*slugify.Slugifier, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return slugify.New(opts...)
}
