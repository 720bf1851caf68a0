package chronon

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/civil"
	"github.com/chronon-dev/chronon/format"
	"github.com/chronon-dev/chronon/optional"
	"github.com/chronon-dev/chronon/temporal"
)

// Time is an immutable wall-clock time-of-day whose UTC offset may be
// absent, matching serialization formats where "10:15:30" and
// "10:15:30+02:00" are both valid renderings of the same field. The zero
// value is midnight without an offset.
//
// Instant-based operations anchor the time on the epoch reference day, the
// convention for offset times without a date.
type Time struct {
	time   civil.LocalTime
	offset optional.Option[civil.Offset]
}

// refDate anchors offset resolution and instant comparison for times without
// a date.
var refDate = civil.MustDateOf(1970, time.January, 1)

// NewTime combines an already-valid civil time with an optional offset.
func NewTime(t civil.LocalTime, offset optional.Option[civil.Offset]) Time {
	return Time{time: t, offset: offset}
}

// TimeOf creates a Time without an offset from its components.
func TimeOf(hour, minute, second, nano int) (Time, error) {
	t, err := civil.TimeOf(hour, minute, second, nano)
	if err != nil {
		return Time{}, err
	}
	return Time{time: t}, nil
}

// TimeNow reads the clock in the given location; the offset is present,
// derived from the location's rule at that instant.
func TimeNow(c Clock, loc *time.Location) Time {
	return TimeFromTime(nowIn(c, loc))
}

// TimeFromTime extracts the wall-clock reading and offset of t in t's
// location. The offset is always present; use ClearOffset to drop it.
func TimeFromTime(t time.Time) Time {
	return Time{time: civil.TimeFromTime(t), offset: optional.Some(civil.OffsetFromTime(t))}
}

// TimeFromAccessor assembles a Time from a generic accessor. A missing
// offset is not an error.
func TimeFromAccessor(acc temporal.Accessor) (Time, error) {
	t, err := localTimeFromAccessor("TimeFromAccessor", acc)
	if err != nil {
		return Time{}, err
	}
	off, ok, err := offsetFromAccessor(acc)
	if err != nil {
		return Time{}, err
	}
	if !ok {
		return Time{time: t}, nil
	}
	return Time{time: t, offset: optional.Some(off)}, nil
}

// ParseTime parses "10:15:30" with an optional fraction and trailing offset.
// Offset absence in the text becomes offset absence in the value.
func ParseTime(s string) (Time, error) {
	return ParseTimeWith(format.ISOTime, s)
}

// ParseTimeWith parses text using the supplied formatter.
func ParseTimeWith(f format.Formatter, s string) (Time, error) {
	p, err := f.Parse(s)
	if err != nil {
		return Time{}, err
	}
	return TimeFromAccessor(p)
}

// LocalTime returns the civil time, dropping the offset.
func (t Time) LocalTime() civil.LocalTime { return t.time }

// Offset returns the optional offset.
func (t Time) Offset() optional.Option[civil.Offset] { return t.offset }

// HasOffset reports whether an offset is present.
func (t Time) HasOffset() bool { return t.offset.IsSome() }

// OffsetOrUTC returns the stored offset, or UTC when absent. This is the
// provider-free resolution used by Compare and SameInstant.
func (t Time) OffsetOrUTC() civil.Offset {
	return t.offset.OrElse(civil.UTC)
}

// Hour returns the hour-of-day.
func (t Time) Hour() int { return t.time.Hour() }

// Minute returns the minute-of-hour.
func (t Time) Minute() int { return t.time.Minute() }

// Second returns the second-of-minute.
func (t Time) Second() int { return t.time.Second() }

// Nano returns the nano-of-second.
func (t Time) Nano() int { return t.time.Nano() }

// IsFieldSupported reports whether the field can be read from and set on
// this type: the time fields plus offset-seconds.
func (t Time) IsFieldSupported(f temporal.Field) bool {
	return timeCaps.fieldSupported(f)
}

// IsUnitSupported reports whether the unit can be used in arithmetic on this
// type: the time-based units.
func (t Time) IsUnitSupported(u temporal.Unit) bool {
	return timeCaps.unitSupported(u)
}

// Range returns the range of valid values for the field on this time.
func (t Time) Range(f temporal.Field) (temporal.ValueRange, error) {
	if !t.IsFieldSupported(f) {
		return temporal.ValueRange{}, chronerr.UnsupportedField("Time.Range", f)
	}
	return f.Range(), nil
}

// Get returns the value of the field as an int. Nano-of-day must use
// GetLong. An absent offset reads as zero offset-seconds.
func (t Time) Get(f temporal.Field) (int, error) {
	v, err := t.GetLong(f)
	if err != nil {
		return 0, err
	}
	return f.Range().CheckInt("Time.Get", f, v)
}

// GetLong returns the value of the field as an int64.
func (t Time) GetLong(f temporal.Field) (int64, error) {
	if f == temporal.FieldOffsetSeconds {
		return int64(t.OffsetOrUTC().TotalSeconds()), nil
	}
	if v, ok := timeFieldValue(t.time, f); ok {
		return v, nil
	}
	return 0, chronerr.UnsupportedField("Time.GetLong", f)
}

// Query answers the generic capability queries. The offset and zone queries
// answer only while an offset is present.
func (t Time) Query(q temporal.Query) (any, bool) {
	switch q {
	case temporal.QueryChronology:
		return temporal.ChronologyISO, true
	case temporal.QueryPrecision:
		return temporal.UnitNanos, true
	case temporal.QueryOffset:
		if off, ok := t.offset.Get(); ok {
			return off, true
		}
		return nil, false
	case temporal.QueryZone:
		if off, ok := t.offset.Get(); ok {
			return off.Location(), true
		}
		return nil, false
	case temporal.QueryLocalTime:
		return t.time, true
	default:
		return nil, false
	}
}

// PlusHours returns a copy with hours added, wrapping around midnight;
// offset state is untouched.
func (t Time) PlusHours(hours int64) Time {
	return Time{time: t.time.PlusHours(hours), offset: t.offset}
}

// PlusMinutes returns a copy with minutes added, wrapping around midnight;
// offset state is untouched.
func (t Time) PlusMinutes(minutes int64) Time {
	return Time{time: t.time.PlusMinutes(minutes), offset: t.offset}
}

// PlusSeconds returns a copy with seconds added, wrapping around midnight;
// offset state is untouched.
func (t Time) PlusSeconds(seconds int64) Time {
	return Time{time: t.time.PlusSeconds(seconds), offset: t.offset}
}

// PlusNanos returns a copy with nanoseconds added, wrapping around midnight;
// offset state is untouched.
func (t Time) PlusNanos(nanos int64) Time {
	return Time{time: t.time.PlusNanos(nanos), offset: t.offset}
}

// Plus returns a copy with the amount of the given time-based unit added,
// wrapping around midnight.
func (t Time) Plus(amount int64, unit temporal.Unit) (Time, error) {
	if !t.IsUnitSupported(unit) {
		return Time{}, chronerr.UnsupportedUnit("Time.Plus", unit)
	}
	nt, err := t.time.Plus(amount, unit)
	if err != nil {
		return Time{}, err
	}
	return Time{time: nt, offset: t.offset}, nil
}

// Minus returns a copy with the amount of the given unit subtracted.
func (t Time) Minus(amount int64, unit temporal.Unit) (Time, error) {
	negated, err := temporal.SubInt64(0, amount)
	if err != nil {
		return Time{}, err
	}
	return t.Plus(negated, unit)
}

// WithHour returns a copy with the hour changed; offset state is untouched.
func (t Time) WithHour(hour int) (Time, error) {
	nt, err := t.time.WithHour(hour)
	if err != nil {
		return Time{}, err
	}
	return Time{time: nt, offset: t.offset}, nil
}

// WithMinute returns a copy with the minute changed; offset state is
// untouched.
func (t Time) WithMinute(minute int) (Time, error) {
	nt, err := t.time.WithMinute(minute)
	if err != nil {
		return Time{}, err
	}
	return Time{time: nt, offset: t.offset}, nil
}

// WithSecond returns a copy with the second changed; offset state is
// untouched.
func (t Time) WithSecond(second int) (Time, error) {
	nt, err := t.time.WithSecond(second)
	if err != nil {
		return Time{}, err
	}
	return Time{time: nt, offset: t.offset}, nil
}

// WithNano returns a copy with the nano-of-second changed; offset state is
// untouched.
func (t Time) WithNano(nano int) (Time, error) {
	nt, err := t.time.WithNano(nano)
	if err != nil {
		return Time{}, err
	}
	return Time{time: nt, offset: t.offset}, nil
}

// With returns a copy with the given field set to value. Setting
// offset-seconds makes the offset present without moving the wall clock.
func (t Time) With(f temporal.Field, value int64) (Time, error) {
	const op = "Time.With"
	if f == temporal.FieldOffsetSeconds {
		if err := f.Range().Check(op, f, value); err != nil {
			return Time{}, err
		}
		off, err := civil.OffsetOfSeconds(int(value))
		if err != nil {
			return Time{}, err
		}
		return t.WithOffsetSameLocal(off), nil
	}
	nt, handled, err := withTimeField(op, t.time, f, value)
	if err != nil {
		return Time{}, err
	}
	if !handled {
		return Time{}, chronerr.UnsupportedField(op, f)
	}
	return Time{time: nt, offset: t.offset}, nil
}

// TruncatedTo returns a copy with all fields smaller than the unit set to
// zero; offset state is untouched.
func (t Time) TruncatedTo(unit temporal.Unit) (Time, error) {
	nt, err := t.time.TruncatedTo(unit)
	if err != nil {
		return Time{}, err
	}
	return Time{time: nt, offset: t.offset}, nil
}

// WithOffsetSameLocal returns a copy with the offset present and set to the
// given value, keeping the wall clock unchanged.
func (t Time) WithOffsetSameLocal(offset civil.Offset) Time {
	return Time{time: t.time, offset: optional.Some(offset)}
}

// WithOffsetSameInstant returns a copy with the offset present and set to
// the given value, shifting the wall clock by the offset delta and wrapping
// around midnight. An absent current offset resolves as UTC.
func (t Time) WithOffsetSameInstant(offset civil.Offset) Time {
	delta := int64(offset.TotalSeconds()) - int64(t.OffsetOrUTC().TotalSeconds())
	return Time{time: t.time.PlusSeconds(delta), offset: optional.Some(offset)}
}

// ClearOffset returns a copy with the offset absent; the wall clock is
// untouched.
func (t Time) ClearOffset() Time {
	return Time{time: t.time}
}

// AtDate combines the time with a date into a DateTime, carrying the offset
// state through.
func (t Time) AtDate(d civil.LocalDate) DateTime {
	return DateTime{dt: civil.DateTimeOf(d, t.time), offset: t.offset}
}

// epochNano is the instant key on the reference day: nano-of-day shifted by
// the offset resolved as stored-or-UTC.
func (t Time) epochNano() int64 {
	off := resolveOffset(t.offset, civil.DateTimeOf(refDate, t.time), nil)
	return t.time.NanoOfDay() - int64(off.TotalSeconds())*1_000_000_000
}

// Compare orders two times by instant on the reference day under the
// stored-offset-or-UTC resolution, tie-breaking on the wall clock and then
// on offset presence so the order is total and provider-independent.
func (t Time) Compare(other Time) int {
	if c := temporal.CompareInt64(t.epochNano(), other.epochNano()); c != 0 {
		return c
	}
	if c := t.time.Compare(other.time); c != 0 {
		return c
	}
	switch {
	case t.offset.IsSome() == other.offset.IsSome():
		return 0
	case t.offset.IsSome():
		return 1
	default:
		return -1
	}
}

// Equal reports whether the wall clocks and the offset states are both
// equal. A present offset never equals an absent one, even when both resolve
// to the same instant.
func (t Time) Equal(other Time) bool {
	return t.time.Equal(other.time) && optional.Equal(t.offset, other.offset)
}

// SameInstant reports whether the two times denote the same instant on the
// reference day under the stored-offset-or-UTC resolution.
func (t Time) SameInstant(other Time) bool {
	return t.epochNano() == other.epochNano()
}

// IsBefore reports whether this time's instant is before the other's,
// resolving absent offsets as UTC.
func (t Time) IsBefore(other Time) bool {
	return t.epochNano() < other.epochNano()
}

// IsAfter reports whether this time's instant is after the other's,
// resolving absent offsets as UTC.
func (t Time) IsAfter(other Time) bool {
	return t.epochNano() > other.epochNano()
}

// String renders the wall clock immediately followed by the offset when
// present, e.g. "10:15:30+02:00" or "10:15:30".
func (t Time) String() string {
	if off, ok := t.offset.Get(); ok {
		return t.time.String() + off.String()
	}
	return t.time.String()
}

// Format renders the time through the supplied formatter.
func (t Time) Format(f format.Formatter) (string, error) {
	return f.Format(t)
}

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Time) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Time) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}
