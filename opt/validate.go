package opt

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Named validators shared by the sharutils tools. Each is a pure function
// from a candidate raw value to nil or a rejection message; none consumes
// tokens or touches parser state.

// ValidateVersionMode accepts the version banner modes recognized by the
// tools: "version", "copyright", and "notice" (matched by their first
// letter, case-insensitively, as in the historical sharutils).
func ValidateVersionMode(value string) error {
	if value == "" {
		return errors.New("empty version mode")
	}

	first := unicode.ToLower([]rune(value)[0])
	switch first {
	case 'v', 'c', 'n':
		return nil
	}

	return fmt.Errorf(
		"invalid version mode %q (valid modes: version, copyright, notice)",
		value,
	)
}

// ValidateFilePath rejects values unusable as file paths: empty strings
// and strings containing a NUL byte. Existence is deliberately not
// checked; output paths need not exist yet.
func ValidateFilePath(value string) error {
	if value == "" {
		return errors.New("empty file path")
	}

	if strings.ContainsRune(value, 0) {
		return errors.New("file path contains a NUL byte")
	}

	return nil
}
