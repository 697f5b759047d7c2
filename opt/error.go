package opt

import (
	"fmt"
	"log/slog"
)

// Category classifies a parse failure. The set is closed: every failed
// parse produces exactly one category, the first violation found in
// left-to-right scan order.
type Category int

const (
	// UnknownOption is a short or long trigger with no catalog entry.
	UnknownOption Category = iota
	// MissingValue is a value-taking option that reached the end of value
	// resolution with no token and no default.
	MissingValue
	// InvalidFlagCombination is a value-taking short flag in a non-final
	// position within a combined group.
	InvalidFlagCombination
	// DuplicateOption is the same option recorded twice in one invocation,
	// or a flag/name collision detected during catalog compilation.
	DuplicateOption
	// ValidationError is a validator rejecting a syntactically valid value,
	// or a value supplied to an option that does not accept one.
	ValidationError
)

// String returns the category name used in rendered diagnostics.
func (c Category) String() string {
	switch c {
	case UnknownOption:
		return "unknown option"
	case MissingValue:
		return "missing value"
	case InvalidFlagCombination:
		return "invalid flag combination"
	case DuplicateOption:
		return "duplicate option"
	case ValidationError:
		return "validation error"
	default:
		return fmt.Sprintf("parse error(%d)", int(c))
	}
}

// Error is the failure result of a single parse attempt or catalog
// compilation. At most one is produced per attempt; the engine performs no
// local recovery and returns no partial result.
type Error struct {
	// Category is the closed classification of the failure.
	Category Category
	// Detail describes the offending trigger or value.
	Detail string
	// Cause is the underlying validator error for ValidationError, nil
	// otherwise.
	Cause error
}

// Error renders the failure as "<category>: <detail>".
func (e *Error) Error() string {
	return e.Category.String() + ": " + e.Detail
}

// Unwrap returns the validator error wrapped by a ValidationError.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an [*Error] with the same category.
// This lets callers branch on categories with errors.Is against a
// zero-detail probe value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Category == e.Category
}

// LogValue implements slog.LogValuer for structured diagnostics.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("category", e.Category.String()),
		slog.String("detail", e.Detail),
	}

	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}

	return slog.GroupValue(attrs...)
}

func errUnknown(trigger string) *Error {
	return &Error{Category: UnknownOption, Detail: trigger}
}

func errMissingValue(trigger string) *Error {
	return &Error{
		Category: MissingValue,
		Detail:   trigger + " requires a value and none was supplied",
	}
}

func errCombination(flag rune) *Error {
	return &Error{
		Category: InvalidFlagCombination,
		Detail: fmt.Sprintf(
			"-%c requires a value and must be last in a combined group", flag,
		),
	}
}

func errDuplicate(trigger string) *Error {
	return &Error{Category: DuplicateOption, Detail: trigger}
}

func errValidation(trigger string, cause error) *Error {
	return &Error{
		Category: ValidationError,
		Detail:   trigger + ": " + cause.Error(),
		Cause:    cause,
	}
}
