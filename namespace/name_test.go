package namespace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "test", nil},
		{"dots_and_dashes", "my-file.v2_final", nil},
		{"unicode", "café", nil},
		{"max_length", strings.Repeat("x", 256), nil},
		{"empty", "", ErrNameTooShort},
		{"too_long", strings.Repeat("x", 1000), ErrNameTooLong},
		{"just_over", strings.Repeat("x", 257), ErrNameTooLong},
		{"star", "*", ErrInvalidCharacter},
		{"space", "a b", ErrInvalidCharacter},
		{"slash", "a/b", ErrInvalidCharacter},
		{"backslash", `a\b`, ErrInvalidCharacter},
		{"colon", "c:", ErrInvalidCharacter},
		{"backtick", "`", ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.input, 256)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateName_EveryInvalidChar(t *testing.T) {
	t.Parallel()

	for _, c := range InvalidNameChars {
		err := ValidateName("a"+string(c)+"b", 256)
		require.ErrorIs(t, err, ErrInvalidCharacter, "char %q must be rejected", c)
		assert.Contains(t, err.Error(), string(c))
	}
}

func TestValidateName_CheckOrder(t *testing.T) {
	t.Parallel()

	// Invalid character beats length
	err := ValidateName(strings.Repeat("x", 300)+"*", 256)
	assert.ErrorIs(t, err, ErrInvalidCharacter)
	assert.NotErrorIs(t, err, ErrNameTooLong)

	// First listed rule character is reported
	err = ValidateName("a*b c", 256)
	require.ErrorIs(t, err, ErrInvalidCharacter)
	assert.Contains(t, err.Error(), `' '`)
}

func TestValidateName_CountsCharactersNotBytes(t *testing.T) {
	t.Parallel()

	// 4 runes, 8 bytes
	assert.NoError(t, ValidateName("éééé", 4))
	assert.ErrorIs(t, ValidateName("ééééé", 4), ErrNameTooLong)
}

func TestValidateName_TooLongMessage(t *testing.T) {
	t.Parallel()

	err := ValidateName("abcdef", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1-5 characters")
}
