package civil

import (
	"strings"
	"time"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/temporal"
)

// LocalDateTime is a calendar date combined with a wall-clock time, without
// an offset. The zero value is not a valid date-time; use DateTimeOf.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// DateTimeOf combines a date and a time into a LocalDateTime.
func DateTimeOf(date LocalDate, t LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: t}
}

// DateTimeFromEpochSecond creates a LocalDateTime from a count of seconds
// since the epoch, a nano-of-second and the offset in which the civil fields
// should be expressed.
func DateTimeFromEpochSecond(epochSecond int64, nano int, offset Offset) (LocalDateTime, error) {
	const op = "DateTimeFromEpochSecond"
	if nano < 0 || nano > 999_999_999 {
		return LocalDateTime{}, chronerr.InvalidValue(op, "nano %d outside range 0..999999999", nano)
	}
	localSecond, err := temporal.AddInt64(epochSecond, int64(offset.TotalSeconds()))
	if err != nil {
		return LocalDateTime{}, err
	}
	epochDay := temporal.FloorDiv(localSecond, secondsPerDay)
	secondOfDay := temporal.FloorMod(localSecond, secondsPerDay)
	date, err := DateFromEpochDay(epochDay)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := TimeFromNanoOfDay(secondOfDay*nanosPerSecond + int64(nano))
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: date, time: t}, nil
}

// DateTimeFromTime extracts the civil date-time of t in t's location.
func DateTimeFromTime(t time.Time) LocalDateTime {
	return LocalDateTime{date: DateFromTime(t), time: TimeFromTime(t)}
}

// Date returns the date part.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// Time returns the time part.
func (dt LocalDateTime) Time() LocalTime { return dt.time }

// WithDate returns a copy with the date part replaced.
func (dt LocalDateTime) WithDate(date LocalDate) LocalDateTime {
	return LocalDateTime{date: date, time: dt.time}
}

// WithTime returns a copy with the time part replaced.
func (dt LocalDateTime) WithTime(t LocalTime) LocalDateTime {
	return LocalDateTime{date: dt.date, time: t}
}

// EpochSecond returns the count of seconds since the epoch when the civil
// fields are interpreted at the given offset.
func (dt LocalDateTime) EpochSecond(offset Offset) int64 {
	return dt.date.EpochDay()*secondsPerDay + int64(dt.time.SecondOfDay()) - int64(offset.TotalSeconds())
}

// PlusDays returns a copy with calendar days added.
func (dt LocalDateTime) PlusDays(days int64) (LocalDateTime, error) {
	d, err := dt.date.PlusDays(days)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

// PlusWeeks returns a copy with weeks added.
func (dt LocalDateTime) PlusWeeks(weeks int64) (LocalDateTime, error) {
	d, err := dt.date.PlusWeeks(weeks)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

// PlusMonths returns a copy with months added, clamping the day-of-month.
func (dt LocalDateTime) PlusMonths(months int64) (LocalDateTime, error) {
	d, err := dt.date.PlusMonths(months)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

// PlusYears returns a copy with years added, clamping February 29.
func (dt LocalDateTime) PlusYears(years int64) (LocalDateTime, error) {
	d, err := dt.date.PlusYears(years)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

// PlusHours returns a copy with hours added, rolling the date as needed.
func (dt LocalDateTime) PlusHours(hours int64) (LocalDateTime, error) {
	return dt.plusClock(hours, 0, 0, 0)
}

// PlusMinutes returns a copy with minutes added, rolling the date as needed.
func (dt LocalDateTime) PlusMinutes(minutes int64) (LocalDateTime, error) {
	return dt.plusClock(0, minutes, 0, 0)
}

// PlusSeconds returns a copy with seconds added, rolling the date as needed.
func (dt LocalDateTime) PlusSeconds(seconds int64) (LocalDateTime, error) {
	return dt.plusClock(0, 0, seconds, 0)
}

// PlusNanos returns a copy with nanoseconds added, rolling the date as
// needed.
func (dt LocalDateTime) PlusNanos(nanos int64) (LocalDateTime, error) {
	return dt.plusClock(0, 0, 0, nanos)
}

// plusClock adds clock-based amounts by splitting each into whole days and a
// sub-day remainder, so that arbitrarily large int64 amounts never overflow
// the nanosecond accumulation.
func (dt LocalDateTime) plusClock(hours, minutes, seconds, nanos int64) (LocalDateTime, error) {
	totalDays := hours/24 + minutes/(24*60) + seconds/secondsPerDay + nanos/nanosPerDay
	totalNanos := hours%24*nanosPerHour +
		minutes%(24*60)*nanosPerMinute +
		seconds%secondsPerDay*nanosPerSecond +
		nanos%nanosPerDay +
		dt.time.NanoOfDay()
	totalDays += temporal.FloorDiv(totalNanos, nanosPerDay)
	newTime, err := TimeFromNanoOfDay(temporal.FloorMod(totalNanos, nanosPerDay))
	if err != nil {
		return LocalDateTime{}, err
	}
	newDate, err := dt.date.PlusDays(totalDays)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: newDate, time: newTime}, nil
}

// Plus returns a copy with the amount of the given unit added. Date-based
// units go through calendar arithmetic; time-based units roll the date.
func (dt LocalDateTime) Plus(amount int64, unit temporal.Unit) (LocalDateTime, error) {
	switch unit {
	case temporal.UnitNanos:
		return dt.PlusNanos(amount)
	case temporal.UnitMicros:
		// Split to avoid overflowing the nanosecond conversion.
		days := amount / (nanosPerDay / 1_000)
		rem := amount % (nanosPerDay / 1_000) * 1_000
		step, err := dt.PlusDays(days)
		if err != nil {
			return LocalDateTime{}, err
		}
		return step.PlusNanos(rem)
	case temporal.UnitMillis:
		days := amount / (nanosPerDay / 1_000_000)
		rem := amount % (nanosPerDay / 1_000_000) * 1_000_000
		step, err := dt.PlusDays(days)
		if err != nil {
			return LocalDateTime{}, err
		}
		return step.PlusNanos(rem)
	case temporal.UnitSeconds:
		return dt.PlusSeconds(amount)
	case temporal.UnitMinutes:
		return dt.PlusMinutes(amount)
	case temporal.UnitHours:
		return dt.PlusHours(amount)
	default:
		d, err := dt.date.Plus(amount, unit)
		if err != nil {
			return LocalDateTime{}, err
		}
		return LocalDateTime{date: d, time: dt.time}, nil
	}
}

// TruncatedTo returns a copy with all fields smaller than the unit set to
// zero. UnitDays yields midnight of the same date.
func (dt LocalDateTime) TruncatedTo(unit temporal.Unit) (LocalDateTime, error) {
	t, err := dt.time.TruncatedTo(unit)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: dt.date, time: t}, nil
}

// Compare returns -1, 0 or +1 comparing two date-times chronologically.
func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// Equal reports whether two date-times are the same civil reading.
func (dt LocalDateTime) Equal(other LocalDateTime) bool {
	return dt == other
}

// String renders the date-time in canonical ISO-8601 form with a "T"
// separator, e.g. "2023-03-01T10:15:30".
func (dt LocalDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// ParseDateTime parses a canonical ISO-8601 date-time such as
// "2023-03-01T10:15:30.500".
func ParseDateTime(s string) (LocalDateTime, error) {
	const op = "ParseDateTime"
	sep := strings.IndexByte(s, 'T')
	if sep < 0 {
		return LocalDateTime{}, chronerr.Parse(op, s, "missing T separator")
	}
	date, err := ParseDate(s[:sep])
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := ParseTime(s[sep+1:])
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: date, time: t}, nil
}
