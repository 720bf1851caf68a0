package civil

import (
	"fmt"
	"strings"
	"time"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/temporal"
)

const (
	nanosPerSecond = int64(1_000_000_000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour
)

// LocalTime is a wall-clock time-of-day with nanosecond precision and no
// offset. The zero value is midnight.
type LocalTime struct {
	hour   int
	minute int
	second int
	nano   int
}

// Midnight is the start of the day, 00:00:00.
var Midnight = LocalTime{}

// TimeOf creates a LocalTime from hour, minute, second and nano-of-second.
func TimeOf(hour, minute, second, nano int) (LocalTime, error) {
	const op = "TimeOf"
	if hour < 0 || hour > 23 {
		return LocalTime{}, chronerr.InvalidValue(op, "hour %d outside range 0..23", hour)
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, chronerr.InvalidValue(op, "minute %d outside range 0..59", minute)
	}
	if second < 0 || second > 59 {
		return LocalTime{}, chronerr.InvalidValue(op, "second %d outside range 0..59", second)
	}
	if nano < 0 || nano > 999_999_999 {
		return LocalTime{}, chronerr.InvalidValue(op, "nano %d outside range 0..999999999", nano)
	}
	return LocalTime{hour: hour, minute: minute, second: second, nano: nano}, nil
}

// MustTimeOf is like TimeOf but panics on invalid components. Intended for
// constants and tests.
func MustTimeOf(hour, minute, second, nano int) LocalTime {
	t, err := TimeOf(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeFromNanoOfDay creates a LocalTime from a nano-of-day count.
func TimeFromNanoOfDay(nanoOfDay int64) (LocalTime, error) {
	if nanoOfDay < 0 || nanoOfDay >= nanosPerDay {
		return LocalTime{}, chronerr.InvalidValue("TimeFromNanoOfDay", "nano-of-day %d outside range 0..%d", nanoOfDay, nanosPerDay-1)
	}
	return LocalTime{
		hour:   int(nanoOfDay / nanosPerHour),
		minute: int(nanoOfDay / nanosPerMinute % 60),
		second: int(nanoOfDay / nanosPerSecond % 60),
		nano:   int(nanoOfDay % nanosPerSecond),
	}, nil
}

// TimeFromTime extracts the wall-clock reading of t in t's location.
func TimeFromTime(t time.Time) LocalTime {
	h, m, s := t.Clock()
	return LocalTime{hour: h, minute: m, second: s, nano: t.Nanosecond()}
}

// Hour returns the hour-of-day.
func (t LocalTime) Hour() int { return t.hour }

// Minute returns the minute-of-hour.
func (t LocalTime) Minute() int { return t.minute }

// Second returns the second-of-minute.
func (t LocalTime) Second() int { return t.second }

// Nano returns the nano-of-second.
func (t LocalTime) Nano() int { return t.nano }

// SecondOfDay returns the count of seconds since midnight.
func (t LocalTime) SecondOfDay() int {
	return t.hour*3600 + t.minute*60 + t.second
}

// NanoOfDay returns the count of nanoseconds since midnight.
func (t LocalTime) NanoOfDay() int64 {
	return int64(t.SecondOfDay())*nanosPerSecond + int64(t.nano)
}

// PlusHours returns a copy of the time with hours added, wrapping around
// midnight.
func (t LocalTime) PlusHours(hours int64) LocalTime {
	return t.plusWrapped(temporal.FloorMod(hours, 24) * nanosPerHour)
}

// PlusMinutes returns a copy of the time with minutes added, wrapping around
// midnight.
func (t LocalTime) PlusMinutes(minutes int64) LocalTime {
	return t.plusWrapped(temporal.FloorMod(minutes, 24*60) * nanosPerMinute)
}

// PlusSeconds returns a copy of the time with seconds added, wrapping around
// midnight.
func (t LocalTime) PlusSeconds(seconds int64) LocalTime {
	return t.plusWrapped(temporal.FloorMod(seconds, 86_400) * nanosPerSecond)
}

// PlusNanos returns a copy of the time with nanoseconds added, wrapping
// around midnight.
func (t LocalTime) PlusNanos(nanos int64) LocalTime {
	return t.plusWrapped(temporal.FloorMod(nanos, nanosPerDay))
}

func (t LocalTime) plusWrapped(nanos int64) LocalTime {
	nod := temporal.FloorMod(t.NanoOfDay()+nanos, nanosPerDay)
	nt, _ := TimeFromNanoOfDay(nod)
	return nt
}

// Plus returns a copy of the time with the amount of the given time-based
// unit added, wrapping around midnight. Date-based units are unsupported.
func (t LocalTime) Plus(amount int64, unit temporal.Unit) (LocalTime, error) {
	unitNanos, ok := unit.Nanos()
	if !ok || unit == temporal.UnitDays {
		return LocalTime{}, chronerr.UnsupportedUnit("LocalTime.Plus", unit)
	}
	return t.plusWrapped(temporal.FloorMod(amount, nanosPerDay/unitNanos) * unitNanos), nil
}

// WithHour returns a copy of the time with the hour changed.
func (t LocalTime) WithHour(hour int) (LocalTime, error) {
	return TimeOf(hour, t.minute, t.second, t.nano)
}

// WithMinute returns a copy of the time with the minute changed.
func (t LocalTime) WithMinute(minute int) (LocalTime, error) {
	return TimeOf(t.hour, minute, t.second, t.nano)
}

// WithSecond returns a copy of the time with the second changed.
func (t LocalTime) WithSecond(second int) (LocalTime, error) {
	return TimeOf(t.hour, t.minute, second, t.nano)
}

// WithNano returns a copy of the time with the nano-of-second changed.
func (t LocalTime) WithNano(nano int) (LocalTime, error) {
	return TimeOf(t.hour, t.minute, t.second, nano)
}

// TruncatedTo returns a copy of the time with all fields smaller than the
// unit set to zero. UnitDays yields midnight.
func (t LocalTime) TruncatedTo(unit temporal.Unit) (LocalTime, error) {
	unitNanos, ok := unit.Nanos()
	if !ok {
		return LocalTime{}, chronerr.UnsupportedUnit("LocalTime.TruncatedTo", unit)
	}
	nod := t.NanoOfDay() / unitNanos * unitNanos
	return TimeFromNanoOfDay(nod)
}

// Compare returns -1, 0 or +1 comparing two times chronologically.
func (t LocalTime) Compare(other LocalTime) int {
	return temporal.CompareInt64(t.NanoOfDay(), other.NanoOfDay())
}

// Equal reports whether two times are the same wall-clock reading.
func (t LocalTime) Equal(other LocalTime) bool {
	return t == other
}

// fractionString renders a nano-of-second as a dot-prefixed fraction trimmed
// to three, six or nine digits, or "" for zero.
func fractionString(nano int) string {
	if nano == 0 {
		return ""
	}
	s := fmt.Sprintf(".%09d", nano)
	for strings.HasSuffix(s, "000") {
		s = s[:len(s)-3]
	}
	return s
}

// String renders the time in canonical form, e.g. "10:15:30" or
// "10:15:30.500".
func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d%s", t.hour, t.minute, t.second, fractionString(t.nano))
}

// atoi2 parses exactly two decimal digits.
func atoi2(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// ParseTime parses a time such as "10:15", "10:15:30" or "10:15:30.500".
func ParseTime(s string) (LocalTime, error) {
	const op = "ParseTime"
	if len(s) < 5 || s[2] != ':' {
		return LocalTime{}, chronerr.Parse(op, s, "time must look like hh:mm[:ss[.fraction]]")
	}
	hour, ok := atoi2(s[:2])
	if !ok {
		return LocalTime{}, chronerr.Parse(op, s, "non-numeric hour")
	}
	minute, ok := atoi2(s[3:5])
	if !ok {
		return LocalTime{}, chronerr.Parse(op, s, "non-numeric minute")
	}
	second, nano := 0, 0
	if len(s) > 5 {
		if s[5] != ':' || len(s) < 8 {
			return LocalTime{}, chronerr.Parse(op, s, "malformed seconds")
		}
		if second, ok = atoi2(s[6:8]); !ok {
			return LocalTime{}, chronerr.Parse(op, s, "non-numeric second")
		}
		if len(s) > 8 {
			if s[8] != '.' || len(s) == 9 || len(s) > 18 {
				return LocalTime{}, chronerr.Parse(op, s, "malformed fraction")
			}
			frac := s[9:]
			for i := 0; i < len(frac); i++ {
				if frac[i] < '0' || frac[i] > '9' {
					return LocalTime{}, chronerr.Parse(op, s, "non-numeric fraction")
				}
				nano = nano*10 + int(frac[i]-'0')
			}
			for i := len(frac); i < 9; i++ {
				nano *= 10
			}
		}
	}
	t, err := TimeOf(hour, minute, second, nano)
	if err != nil {
		return LocalTime{}, chronerr.Parse(op, s, "%v", err)
	}
	return t, nil
}
