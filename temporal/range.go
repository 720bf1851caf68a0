package temporal

import (
	"fmt"
	"math"

	"github.com/chronon-dev/chronon/chronerr"
)

// ValueRange describes the inclusive range of valid values for a field.
type ValueRange struct {
	Min int64
	Max int64
}

// RangeOf creates a ValueRange with the given inclusive bounds.
func RangeOf(min, max int64) ValueRange {
	return ValueRange{Min: min, Max: max}
}

// String renders the range as "min..max".
func (r ValueRange) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// Contains reports whether value lies within the range.
func (r ValueRange) Contains(value int64) bool {
	return value >= r.Min && value <= r.Max
}

// FitsInInt reports whether every value of the range fits in an int32, which
// decides whether the field may be read through the int accessor.
func (r ValueRange) FitsInInt() bool {
	return r.Min >= math.MinInt32 && r.Max <= math.MaxInt32
}

// Check validates value against the range, failing with KindInvalidValue.
func (r ValueRange) Check(op string, field Field, value int64) error {
	if !r.Contains(value) {
		return chronerr.InvalidValue(op, "%s %d outside range %s", field, value, r)
	}
	return nil
}

// CheckInt validates value against the range and narrows it to an int.
// Fields whose range exceeds 32 bits are not part of the int accessor's
// supported set; they fail with KindUnsupportedField and must be read through
// GetLong instead.
func (r ValueRange) CheckInt(op string, field Field, value int64) (int, error) {
	if !r.FitsInInt() {
		return 0, &chronerr.Error{
			Op:   op,
			Kind: chronerr.KindUnsupportedField,
			Err:  fmt.Errorf("%w: %s does not fit in an int, use GetLong", chronerr.ErrUnsupportedField, field),
		}
	}
	if err := r.Check(op, field, value); err != nil {
		return 0, err
	}
	return int(value), nil
}
