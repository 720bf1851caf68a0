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

// DateTime is an immutable civil date-time whose UTC offset may be absent,
// matching serialization formats where "2023-03-01T10:15:30" and
// "2023-03-01T10:15:30+02:00" are both valid renderings of the same field.
//
// Arithmetic and field mutation operate on the civil clock and never touch
// the offset. The offset changes only through the explicit offset mutators,
// of which two distinct flavors exist: WithOffsetSameLocal keeps the wall
// clock and shifts the instant, WithOffsetSameInstant keeps the instant and
// shifts the wall clock.
type DateTime struct {
	dt     civil.LocalDateTime
	offset optional.Option[civil.Offset]
}

// NewDateTime combines an already-valid civil date-time with an optional
// offset.
func NewDateTime(dt civil.LocalDateTime, offset optional.Option[civil.Offset]) DateTime {
	return DateTime{dt: dt, offset: offset}
}

// DateTimeOf creates a DateTime without an offset from its components.
func DateTimeOf(year int, month time.Month, day, hour, minute, second, nano int) (DateTime, error) {
	d, err := civil.DateOf(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := civil.TimeOf(hour, minute, second, nano)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{dt: civil.DateTimeOf(d, t)}, nil
}

// DateTimeNow reads the clock in the given location; the offset is present,
// derived from the location's rule at that instant.
func DateTimeNow(c Clock, loc *time.Location) DateTime {
	return DateTimeFromTime(nowIn(c, loc))
}

// DateTimeFromTime extracts the civil date-time and offset of t in t's
// location. The offset is always present; use ClearOffset to drop it.
func DateTimeFromTime(t time.Time) DateTime {
	return DateTime{
		dt:     civil.DateTimeFromTime(t),
		offset: optional.Some(civil.OffsetFromTime(t)),
	}
}

// DateTimeFromEpochSecond creates a DateTime whose civil fields express the
// given epoch second at the given offset. The offset is present.
func DateTimeFromEpochSecond(epochSecond int64, nano int, offset civil.Offset) (DateTime, error) {
	dt, err := civil.DateTimeFromEpochSecond(epochSecond, nano, offset)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{dt: dt, offset: optional.Some(offset)}, nil
}

// DateTimeFromAccessor assembles a DateTime from a generic accessor. A
// missing offset is not an error.
func DateTimeFromAccessor(acc temporal.Accessor) (DateTime, error) {
	const op = "DateTimeFromAccessor"
	d, err := localDateFromAccessor(op, acc)
	if err != nil {
		return DateTime{}, err
	}
	t, err := localTimeFromAccessor(op, acc)
	if err != nil {
		return DateTime{}, err
	}
	off, ok, err := offsetFromAccessor(acc)
	if err != nil {
		return DateTime{}, err
	}
	v := DateTime{dt: civil.DateTimeOf(d, t)}
	if ok {
		v.offset = optional.Some(off)
	}
	return v, nil
}

// ParseDateTime parses "2023-03-01T10:15:30" with an optional fraction and
// trailing offset. Offset absence in the text becomes offset absence in the
// value.
func ParseDateTime(s string) (DateTime, error) {
	return ParseDateTimeWith(format.ISODateTime, s)
}

// ParseDateTimeWith parses text using the supplied formatter.
func ParseDateTimeWith(f format.Formatter, s string) (DateTime, error) {
	p, err := f.Parse(s)
	if err != nil {
		return DateTime{}, err
	}
	return DateTimeFromAccessor(p)
}

// LocalDateTime returns the civil date-time, dropping the offset.
func (v DateTime) LocalDateTime() civil.LocalDateTime { return v.dt }

// Date returns the date part.
func (v DateTime) Date() civil.LocalDate { return v.dt.Date() }

// Time returns the time part.
func (v DateTime) Time() civil.LocalTime { return v.dt.Time() }

// Offset returns the optional offset.
func (v DateTime) Offset() optional.Option[civil.Offset] { return v.offset }

// HasOffset reports whether an offset is present.
func (v DateTime) HasOffset() bool { return v.offset.IsSome() }

// OffsetOrUTC returns the stored offset, or UTC when absent. This is the
// provider-free resolution used by Compare and SameInstant.
func (v DateTime) OffsetOrUTC() civil.Offset {
	return v.offset.OrElse(civil.UTC)
}

// Year returns the proleptic year.
func (v DateTime) Year() int { return v.dt.Date().Year() }

// Month returns the month-of-year.
func (v DateTime) Month() time.Month { return v.dt.Date().Month() }

// Day returns the day-of-month.
func (v DateTime) Day() int { return v.dt.Date().Day() }

// Hour returns the hour-of-day.
func (v DateTime) Hour() int { return v.dt.Time().Hour() }

// Minute returns the minute-of-hour.
func (v DateTime) Minute() int { return v.dt.Time().Minute() }

// Second returns the second-of-minute.
func (v DateTime) Second() int { return v.dt.Time().Second() }

// Nano returns the nano-of-second.
func (v DateTime) Nano() int { return v.dt.Time().Nano() }

// IsFieldSupported reports whether the field can be read from and set on
// this type: every field, including instant-seconds.
func (v DateTime) IsFieldSupported(f temporal.Field) bool {
	return dateTimeCaps.fieldSupported(f)
}

// IsUnitSupported reports whether the unit can be used in arithmetic on this
// type: every unit except UnitForever.
func (v DateTime) IsUnitSupported(u temporal.Unit) bool {
	return dateTimeCaps.unitSupported(u)
}

// Range returns the range of valid values for the field on this date-time.
func (v DateTime) Range(f temporal.Field) (temporal.ValueRange, error) {
	if !v.IsFieldSupported(f) {
		return temporal.ValueRange{}, chronerr.UnsupportedField("DateTime.Range", f)
	}
	if f.IsDateBased() {
		return dateFieldRange(v.dt.Date(), f), nil
	}
	return f.Range(), nil
}

// Get returns the value of the field as an int. Fields wider than 32 bits
// (epoch-day, nano-of-day, instant-seconds) must use GetLong. An absent
// offset reads as zero offset-seconds.
func (v DateTime) Get(f temporal.Field) (int, error) {
	n, err := v.GetLong(f)
	if err != nil {
		return 0, err
	}
	return f.Range().CheckInt("DateTime.Get", f, n)
}

// GetLong returns the value of the field as an int64. Instant-seconds uses
// the stored-offset-or-UTC resolution.
func (v DateTime) GetLong(f temporal.Field) (int64, error) {
	switch f {
	case temporal.FieldOffsetSeconds:
		return int64(v.OffsetOrUTC().TotalSeconds()), nil
	case temporal.FieldInstantSeconds:
		return v.EpochSecond(nil), nil
	}
	if n, ok := dateFieldValue(v.dt.Date(), f); ok {
		return n, nil
	}
	if n, ok := timeFieldValue(v.dt.Time(), f); ok {
		return n, nil
	}
	return 0, chronerr.UnsupportedField("DateTime.GetLong", f)
}

// Query answers the generic capability queries. The offset and zone queries
// answer only while an offset is present.
func (v DateTime) Query(q temporal.Query) (any, bool) {
	switch q {
	case temporal.QueryChronology:
		return temporal.ChronologyISO, true
	case temporal.QueryPrecision:
		return temporal.UnitNanos, true
	case temporal.QueryOffset:
		if off, ok := v.offset.Get(); ok {
			return off, true
		}
		return nil, false
	case temporal.QueryZone:
		if off, ok := v.offset.Get(); ok {
			return off.Location(), true
		}
		return nil, false
	case temporal.QueryLocalDate:
		return v.dt.Date(), true
	case temporal.QueryLocalTime:
		return v.dt.Time(), true
	default:
		return nil, false
	}
}

func (v DateTime) withCivil(dt civil.LocalDateTime, err error) (DateTime, error) {
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{dt: dt, offset: v.offset}, nil
}

// PlusYears returns a copy with years added; offset state is untouched.
func (v DateTime) PlusYears(years int64) (DateTime, error) {
	return v.withCivil(v.dt.PlusYears(years))
}

// PlusMonths returns a copy with months added, clamping the day-of-month;
// offset state is untouched.
func (v DateTime) PlusMonths(months int64) (DateTime, error) {
	return v.withCivil(v.dt.PlusMonths(months))
}

// PlusWeeks returns a copy with weeks added; offset state is untouched.
func (v DateTime) PlusWeeks(weeks int64) (DateTime, error) {
	return v.withCivil(v.dt.PlusWeeks(weeks))
}

// PlusDays returns a copy with calendar days added; offset state is
// untouched.
func (v DateTime) PlusDays(days int64) (DateTime, error) {
	return v.withCivil(v.dt.PlusDays(days))
}

// PlusHours returns a copy with hours added, rolling the date as needed;
// offset state is untouched.
func (v DateTime) PlusHours(hours int64) (DateTime, error) {
	return v.withCivil(v.dt.PlusHours(hours))
}

// PlusMinutes returns a copy with minutes added; offset state is untouched.
func (v DateTime) PlusMinutes(minutes int64) (DateTime, error) {
	return v.withCivil(v.dt.PlusMinutes(minutes))
}

// PlusSeconds returns a copy with seconds added; offset state is untouched.
func (v DateTime) PlusSeconds(seconds int64) (DateTime, error) {
	return v.withCivil(v.dt.PlusSeconds(seconds))
}

// PlusNanos returns a copy with nanoseconds added; offset state is
// untouched.
func (v DateTime) PlusNanos(nanos int64) (DateTime, error) {
	return v.withCivil(v.dt.PlusNanos(nanos))
}

// Plus returns a copy with the amount of the given unit added.
func (v DateTime) Plus(amount int64, unit temporal.Unit) (DateTime, error) {
	if !v.IsUnitSupported(unit) {
		return DateTime{}, chronerr.UnsupportedUnit("DateTime.Plus", unit)
	}
	return v.withCivil(v.dt.Plus(amount, unit))
}

// Minus returns a copy with the amount of the given unit subtracted.
func (v DateTime) Minus(amount int64, unit temporal.Unit) (DateTime, error) {
	negated, err := temporal.SubInt64(0, amount)
	if err != nil {
		return DateTime{}, err
	}
	return v.Plus(negated, unit)
}

// WithDate returns a copy with the date part replaced; offset state is
// untouched.
func (v DateTime) WithDate(d civil.LocalDate) DateTime {
	return DateTime{dt: v.dt.WithDate(d), offset: v.offset}
}

// WithTime returns a copy with the time part replaced; offset state is
// untouched.
func (v DateTime) WithTime(t civil.LocalTime) DateTime {
	return DateTime{dt: v.dt.WithTime(t), offset: v.offset}
}

// WithYear returns a copy with the year changed; offset state is untouched.
func (v DateTime) WithYear(year int) (DateTime, error) {
	d, err := v.dt.Date().WithYear(year)
	if err != nil {
		return DateTime{}, err
	}
	return v.WithDate(d), nil
}

// WithMonth returns a copy with the month changed, clamping the day-of-month;
// offset state is untouched.
func (v DateTime) WithMonth(month time.Month) (DateTime, error) {
	d, err := v.dt.Date().WithMonth(month)
	if err != nil {
		return DateTime{}, err
	}
	return v.WithDate(d), nil
}

// WithDay returns a copy with the day-of-month changed; offset state is
// untouched.
func (v DateTime) WithDay(day int) (DateTime, error) {
	d, err := v.dt.Date().WithDay(day)
	if err != nil {
		return DateTime{}, err
	}
	return v.WithDate(d), nil
}

// WithHour returns a copy with the hour changed; offset state is untouched.
func (v DateTime) WithHour(hour int) (DateTime, error) {
	t, err := v.dt.Time().WithHour(hour)
	if err != nil {
		return DateTime{}, err
	}
	return v.WithTime(t), nil
}

// WithMinute returns a copy with the minute changed; offset state is
// untouched.
func (v DateTime) WithMinute(minute int) (DateTime, error) {
	t, err := v.dt.Time().WithMinute(minute)
	if err != nil {
		return DateTime{}, err
	}
	return v.WithTime(t), nil
}

// WithSecond returns a copy with the second changed; offset state is
// untouched.
func (v DateTime) WithSecond(second int) (DateTime, error) {
	t, err := v.dt.Time().WithSecond(second)
	if err != nil {
		return DateTime{}, err
	}
	return v.WithTime(t), nil
}

// WithNano returns a copy with the nano-of-second changed; offset state is
// untouched.
func (v DateTime) WithNano(nano int) (DateTime, error) {
	t, err := v.dt.Time().WithNano(nano)
	if err != nil {
		return DateTime{}, err
	}
	return v.WithTime(t), nil
}

// With returns a copy with the given field set to value. Setting
// offset-seconds makes the offset present without moving the wall clock;
// setting instant-seconds rebuilds the civil fields from the epoch second at
// the current stored-or-UTC offset, keeping the nano-of-second.
func (v DateTime) With(f temporal.Field, value int64) (DateTime, error) {
	const op = "DateTime.With"
	switch f {
	case temporal.FieldOffsetSeconds:
		if err := f.Range().Check(op, f, value); err != nil {
			return DateTime{}, err
		}
		off, err := civil.OffsetOfSeconds(int(value))
		if err != nil {
			return DateTime{}, err
		}
		return v.WithOffsetSameLocal(off), nil
	case temporal.FieldInstantSeconds:
		dt, err := civil.DateTimeFromEpochSecond(value, v.Nano(), v.OffsetOrUTC())
		if err != nil {
			return DateTime{}, err
		}
		return DateTime{dt: dt, offset: v.offset}, nil
	}
	if d, handled, err := withDateField(op, v.dt.Date(), f, value); handled {
		if err != nil {
			return DateTime{}, err
		}
		return v.WithDate(d), nil
	}
	if t, handled, err := withTimeField(op, v.dt.Time(), f, value); handled {
		if err != nil {
			return DateTime{}, err
		}
		return v.WithTime(t), nil
	}
	return DateTime{}, chronerr.UnsupportedField(op, f)
}

// TruncatedTo returns a copy with all time fields smaller than the unit set
// to zero; offset state is untouched.
func (v DateTime) TruncatedTo(unit temporal.Unit) (DateTime, error) {
	return v.withCivil(v.dt.TruncatedTo(unit))
}

// WithOffsetSameLocal returns a copy with the offset present and set to the
// given value, keeping the wall clock unchanged. The represented instant
// shifts by the offset delta.
func (v DateTime) WithOffsetSameLocal(offset civil.Offset) DateTime {
	return DateTime{dt: v.dt, offset: optional.Some(offset)}
}

// WithOffsetSameInstant returns a copy with the offset present and set to
// the given value, shifting the wall clock so the represented instant is
// unchanged. An absent current offset resolves as UTC.
func (v DateTime) WithOffsetSameInstant(offset civil.Offset) (DateTime, error) {
	delta := int64(offset.TotalSeconds()) - int64(v.OffsetOrUTC().TotalSeconds())
	dt, err := v.dt.PlusSeconds(delta)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{dt: dt, offset: optional.Some(offset)}, nil
}

// ClearOffset returns a copy with the offset absent; the wall clock is
// untouched.
func (v DateTime) ClearOffset() DateTime {
	return DateTime{dt: v.dt}
}

// EpochSecond returns the count of seconds since the epoch. A missing offset
// resolves through the provider for this civil date-time, then UTC; nil is
// the explicit way to spell the UTC fallback.
func (v DateTime) EpochSecond(zp ZoneProvider) int64 {
	off := resolveOffset(v.offset, v.dt, zp)
	return v.dt.EpochSecond(off)
}

// Instant returns the represented instant as a time.Time in UTC, resolving a
// missing offset through the provider, then UTC.
func (v DateTime) Instant(zp ZoneProvider) time.Time {
	return time.Unix(v.EpochSecond(zp), int64(v.Nano())).UTC()
}

// AtZoneSameInstant converts to the offset the location uses at this value's
// instant, keeping the instant and shifting the wall clock. A missing offset
// resolves as UTC first.
func (v DateTime) AtZoneSameInstant(loc *time.Location) DateTime {
	if loc == nil {
		loc = time.UTC
	}
	return DateTimeFromTime(time.Unix(v.EpochSecond(nil), int64(v.Nano())).In(loc))
}

// AtZoneSameLocal stamps the value with the offset the location uses for
// this wall-clock reading, keeping the wall clock and shifting the instant.
func (v DateTime) AtZoneSameLocal(loc *time.Location) DateTime {
	return v.WithOffsetSameLocal(LocationZone(loc).OffsetAt(v.dt))
}

// instantCompare orders by epoch second under the stored-or-UTC resolution,
// then nano-of-second. The nano never shifts with the offset, so it is a
// clean secondary key.
func (v DateTime) instantCompare(other DateTime) int {
	if c := temporal.CompareInt64(v.EpochSecond(nil), other.EpochSecond(nil)); c != 0 {
		return c
	}
	return temporal.CompareInt64(int64(v.Nano()), int64(other.Nano()))
}

// Compare orders two date-times by instant under the stored-offset-or-UTC
// resolution, tie-breaking on the civil reading and then on offset presence
// so the order is total and provider-independent.
func (v DateTime) Compare(other DateTime) int {
	if c := v.instantCompare(other); c != 0 {
		return c
	}
	if c := v.dt.Compare(other.dt); c != 0 {
		return c
	}
	switch {
	case v.offset.IsSome() == other.offset.IsSome():
		return 0
	case v.offset.IsSome():
		return 1
	default:
		return -1
	}
}

// Equal reports whether the civil readings and the offset states are both
// equal. A present offset never equals an absent one, even when both resolve
// to the same instant.
func (v DateTime) Equal(other DateTime) bool {
	return v.dt.Equal(other.dt) && optional.Equal(v.offset, other.offset)
}

// SameInstant reports whether the two values denote the same instant under
// the stored-offset-or-UTC resolution.
func (v DateTime) SameInstant(other DateTime) bool {
	return v.instantCompare(other) == 0
}

// IsBefore reports whether this value's instant is before the other's,
// resolving absent offsets as UTC.
func (v DateTime) IsBefore(other DateTime) bool {
	return v.instantCompare(other) < 0
}

// IsAfter reports whether this value's instant is after the other's,
// resolving absent offsets as UTC.
func (v DateTime) IsAfter(other DateTime) bool {
	return v.instantCompare(other) > 0
}

// DatePart returns the date with the same offset state.
func (v DateTime) DatePart() Date {
	return Date{date: v.dt.Date(), offset: v.offset}
}

// TimePart returns the time-of-day with the same offset state.
func (v DateTime) TimePart() Time {
	return Time{time: v.dt.Time(), offset: v.offset}
}

// ToOffsetDate converts the date part to the mandatory-offset variant,
// resolving a missing offset through the provider, then UTC.
func (v DateTime) ToOffsetDate(zp ZoneProvider) OffsetDate {
	return OffsetDate{date: v.dt.Date(), offset: resolveOffset(v.offset, v.dt, zp)}
}

// String renders the civil date-time immediately followed by the offset when
// present, e.g. "2023-03-01T10:15:30+02:00" or "2023-03-01T10:15:30".
func (v DateTime) String() string {
	if off, ok := v.offset.Get(); ok {
		return v.dt.String() + off.String()
	}
	return v.dt.String()
}

// Format renders the date-time through the supplied formatter.
func (v DateTime) Format(f format.Formatter) (string, error) {
	return f.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v DateTime) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *DateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v DateTime) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *DateTime) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}
