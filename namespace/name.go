package namespace

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// InvalidNameChars lists every character rejected in an entry name, in the
// order they are checked.
const InvalidNameChars = " /\\#@<>{}$?+`|=%*:"

// ValidateName checks a name proposed for a new entry.
// Emptiness is checked first, then characters, then length (in characters).
func ValidateName(name string, maxLen int) error {
	if name == "" {
		return ErrNameTooShort
	}
	if err := checkChars(name, ErrInvalidCharacter); err != nil {
		return err
	}
	if utf8.RuneCountInString(name) > maxLen {
		return fmt.Errorf("%w, must be 1-%d characters", ErrNameTooLong, maxLen)
	}
	return nil
}

// checkChars reports the first character of InvalidNameChars found in s, wrapped in kind
func checkChars(s string, kind error) error {
	for _, c := range InvalidNameChars {
		if strings.ContainsRune(s, c) {
			return fmt.Errorf("%w: %q", kind, c)
		}
	}
	return nil
}
