package temporal

import (
	"math"

	"github.com/chronon-dev/chronon/chronerr"
)

// AddInt64 returns a+b, failing with KindOverflow if the sum does not fit in
// an int64.
func AddInt64(a, b int64) (int64, error) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, chronerr.Overflow("AddInt64", "%d + %d overflows int64", a, b)
	}
	return sum, nil
}

// SubInt64 returns a-b, failing with KindOverflow if the difference does not
// fit in an int64.
func SubInt64(a, b int64) (int64, error) {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
		return 0, chronerr.Overflow("SubInt64", "%d - %d overflows int64", a, b)
	}
	return diff, nil
}

// MulInt64 returns a*b, failing with KindOverflow if the product does not fit
// in an int64.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt64 / -1 wraps to MinInt64, so the division check below cannot
	// catch this pair.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, chronerr.Overflow("MulInt64", "%d * %d overflows int64", a, b)
	}
	product := a * b
	if product/b != a {
		return 0, chronerr.Overflow("MulInt64", "%d * %d overflows int64", a, b)
	}
	return product, nil
}

// FloorDiv returns the floor of a/b, rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the floor modulus of a and b; the result has the same sign
// as b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}

// CompareInt64 returns -1, 0 or +1 comparing a against b.
func CompareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
