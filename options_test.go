package slugify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []slugify.Option
		wantErr error
	}{
		{
			name: "defaults are valid",
		},
		{
			name:    "conflicting case",
			opts:    []slugify.Option{slugify.Lowercase(true), slugify.Uppercase(true)},
			wantErr: slugify.ErrConflictingCase,
		},
		{
			name: "uppercase alone is valid",
			opts: []slugify.Option{slugify.Uppercase(true)},
		},
		{
			name: "neither case is valid",
			opts: []slugify.Option{slugify.Lowercase(false)},
		},
		{
			name:    "empty separator",
			opts:    []slugify.Option{slugify.Separator("")},
			wantErr: slugify.ErrInvalidSeparator,
		},
		{
			name:    "multi character separator",
			opts:    []slugify.Option{slugify.Separator("--")},
			wantErr: slugify.ErrInvalidSeparator,
		},
		{
			name:    "non printable separator",
			opts:    []slugify.Option{slugify.Separator("\n")},
			wantErr: slugify.ErrInvalidSeparator,
		},
		{
			name: "unicode separator is a single character",
			opts: []slugify.Option{slugify.Separator("·")},
		},
		{
			name:    "negative max length",
			opts:    []slugify.Option{slugify.MaxLength(-1)},
			wantErr: slugify.ErrInvalidMaxLength,
		},
		{
			name:    "negative suffix length",
			opts:    []slugify.Option{slugify.WithSuffix(-1)},
			wantErr: slugify.ErrInvalidSuffixLength,
		},
		{
			name:    "empty pattern",
			opts:    []slugify.Option{slugify.RegexPattern("")},
			wantErr: slugify.ErrInvalidPattern,
		},
		{
			name:    "non compiling pattern",
			opts:    []slugify.Option{slugify.RegexPattern("[unclosed")},
			wantErr: slugify.ErrInvalidPattern,
		},
		{
			name: "valid pattern",
			opts: []slugify.Option{slugify.RegexPattern("[^a-z]+")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := slugify.New(tt.opts...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestMakePropagatesConfigErrors(t *testing.T) {
	_, err := slugify.Make("hello", slugify.Separator(""))
	assert.ErrorIs(t, err, slugify.ErrInvalidSeparator)

	_, err = slugify.Make("hello", slugify.RegexPattern("("))
	assert.ErrorIs(t, err, slugify.ErrInvalidPattern)
}
