package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify"
	"github.com/dmitrymomot/slugify/config"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "-", cfg.Separator)
	assert.True(t, cfg.Lowercase)
	assert.False(t, cfg.Uppercase)
	assert.Zero(t, cfg.MaxLength)
	assert.Empty(t, cfg.Stopwords)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SLUGIFY_SEPARATOR", "_")
	t.Setenv("SLUGIFY_MAX_LENGTH", "24")
	t.Setenv("SLUGIFY_STOPWORDS", "a,an,the")
	t.Setenv("SLUGIFY_REPLACEMENTS", "&=and,@=at")
	t.Setenv("SLUGIFY_PRE_TRANSLATE", "german")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "_", cfg.Separator)
	assert.Equal(t, 24, cfg.MaxLength)
	assert.Equal(t, []string{"a", "an", "the"}, cfg.Stopwords)
	assert.Equal(t, []string{"&=and", "@=at"}, cfg.ReplacementPairs)
	assert.Equal(t, []string{"german"}, cfg.PreTranslate)

	s, err := cfg.Slugifier()
	require.NoError(t, err)
	assert.Equal(t, "fish_and_chips_at_home", s.Slugify("The Fish & Chips @ Home"))
}

func TestFromEnvParseError(t *testing.T) {
	t.Setenv("SLUGIFY_MAX_LENGTH", "not-a-number")

	_, err := config.FromEnv()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestFromFile(t *testing.T) {
	doc := `
separator: "_"
max_length: 40
stopwords: [a, an, the]
replacements:
  - {old: "&", new: "and"}
pre_translate: [german]
`
	path := filepath.Join(t.TempDir(), "slugify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "_", cfg.Separator)
	assert.Equal(t, 40, cfg.MaxLength)
	assert.True(t, cfg.Lowercase, "absent keys keep defaults")

	s, err := cfg.Slugifier()
	require.NoError(t, err)
	assert.Equal(t, "fish_and_chips", s.Slugify("The Fish & Chips"))
	assert.Equal(t, "ueber_uns", s.Slugify("Über uns"))
}

func TestFromFileErrors(t *testing.T) {
	_, err := config.FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: [\n"), 0o600))
	_, err = config.FromFile(path)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestOptionsResolution(t *testing.T) {
	t.Run("unknown table", func(t *testing.T) {
		cfg := config.Config{Separator: "-", Lowercase: true, PreTranslate: []string{"klingon"}}
		_, err := cfg.Options()
		assert.ErrorIs(t, err, config.ErrUnknownTable)
	})

	t.Run("malformed replacement pair", func(t *testing.T) {
		cfg := config.Config{Separator: "-", Lowercase: true, ReplacementPairs: []string{"no-equals-sign"}}
		_, err := cfg.Options()
		assert.ErrorIs(t, err, config.ErrInvalidReplacement)
	})

	t.Run("uppercase draft", func(t *testing.T) {
		cfg := config.Config{Separator: "-", Lowercase: true, Uppercase: true}
		s, err := cfg.Slugifier()
		require.NoError(t, err)
		assert.Equal(t, "HELLO-WORLD", s.Slugify("hello world"))
	})

	t.Run("invalid draft values surface from New", func(t *testing.T) {
		cfg := config.Config{Separator: "--", Lowercase: true}
		_, err := cfg.Slugifier()
		assert.ErrorIs(t, err, slugify.ErrInvalidSeparator)
	})
}
