// Package chronerr defines the structured error type shared by every package
// in the chronon library.
//
// Errors carry the operation that failed, a Kind that categorizes the failure,
// and an optional underlying error. All errors are compatible with errors.Is()
// and errors.As(), and each Kind has a matching sentinel error:
//
//	d, err := civil.DateOf(2023, time.February, 30)
//	if errors.Is(err, chronerr.ErrInvalidValue) {
//	    // day 30 does not exist in February
//	}
package chronerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds produced by the library.
var (
	// ErrInvalidValue indicates a field value outside its legal range, or
	// components that do not form a valid civil date or time.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedField indicates a field that is not part of the
	// queried type's supported field set.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrUnsupportedUnit indicates a unit that is not part of the
	// queried type's supported unit set.
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrOverflow indicates an arithmetic or field-set operation pushed a
	// value outside the representable range.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrParse indicates text that could not be parsed as a date, time or
	// offset value.
	ErrParse = errors.New("unparseable text")
)

// Error kinds categorize errors by their type.
const (
	// KindInvalidValue represents out-of-range or non-existent values.
	KindInvalidValue = "invalid_value"

	// KindUnsupportedField represents access to an unsupported field.
	KindUnsupportedField = "unsupported_field"

	// KindUnsupportedUnit represents access to an unsupported unit.
	KindUnsupportedUnit = "unsupported_unit"

	// KindOverflow represents arithmetic overflow.
	KindOverflow = "overflow"

	// KindParse represents text boundary parse failures.
	KindParse = "parse"
)

// Error is a structured error that wraps underlying errors with the
// operation that failed and the category of failure.
//
// Example usage:
//
//	err := &chronerr.Error{
//		Op:   "DateTime.With",
//		Kind: chronerr.KindUnsupportedField,
//		Err:  chronerr.ErrUnsupportedField,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "OffsetDate.PlusMonths").
	Op string

	// Kind categorizes the error (e.g., KindInvalidValue).
	Kind string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface, returning a formatted message that
// includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("chronon: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("chronon: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error. Two Errors match when their Kinds
// are equal and the target's Op is either empty or equal; otherwise matching
// is delegated to the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// InvalidValue creates an Error with KindInvalidValue. The message describes
// the offending value and is attached beneath ErrInvalidValue.
func InvalidValue(op, format string, args ...any) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidValue,
		Err:  fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...)),
	}
}

// UnsupportedField creates an Error with KindUnsupportedField naming the
// rejected field.
func UnsupportedField(op string, field fmt.Stringer) *Error {
	return &Error{
		Op:   op,
		Kind: KindUnsupportedField,
		Err:  fmt.Errorf("%w: %s", ErrUnsupportedField, field),
	}
}

// UnsupportedUnit creates an Error with KindUnsupportedUnit naming the
// rejected unit.
func UnsupportedUnit(op string, unit fmt.Stringer) *Error {
	return &Error{
		Op:   op,
		Kind: KindUnsupportedUnit,
		Err:  fmt.Errorf("%w: %s", ErrUnsupportedUnit, unit),
	}
}

// Overflow creates an Error with KindOverflow.
func Overflow(op, format string, args ...any) *Error {
	return &Error{
		Op:   op,
		Kind: KindOverflow,
		Err:  fmt.Errorf("%w: %s", ErrOverflow, fmt.Sprintf(format, args...)),
	}
}

// Parse creates an Error with KindParse. The offending text is quoted in the
// message.
func Parse(op, text, format string, args ...any) *Error {
	return &Error{
		Op:   op,
		Kind: KindParse,
		Err:  fmt.Errorf("%w %q: %s", ErrParse, text, fmt.Sprintf(format, args...)),
	}
}
