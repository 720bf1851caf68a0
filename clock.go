package chronon

import "time"

// Clock supplies the current instant to the "now" factory functions. It is
// an interface so tests can pin time without mutating process state.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}

// nowIn resolves the wall-clock instant for a "now" factory: a nil Clock
// means the system clock, a nil location means the clock's own location.
func nowIn(c Clock, loc *time.Location) time.Time {
	if c == nil {
		c = systemClock{}
	}
	t := c.Now()
	if loc != nil {
		t = t.In(loc)
	}
	return t
}
