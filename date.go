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

// Date is an immutable civil date whose UTC offset may be absent, matching
// serialization formats where "2023-03-01" and "2023-03-01+02:00" are both
// valid renderings of the same field.
//
// The offset's present/absent state survives every operation except the
// explicit offset mutators. Operations that need an absolute instant resolve
// a missing offset through the fallback order documented on ZoneProvider.
type Date struct {
	date   civil.LocalDate
	offset optional.Option[civil.Offset]
}

// NewDate combines an already-valid civil date with an optional offset.
func NewDate(date civil.LocalDate, offset optional.Option[civil.Offset]) Date {
	return Date{date: date, offset: offset}
}

// DateOf creates a Date without an offset from year, month and day.
func DateOf(year int, month time.Month, day int) (Date, error) {
	d, err := civil.DateOf(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{date: d}, nil
}

// DateNow reads the clock in the given location; the offset is present,
// derived from the location's rule at that instant.
func DateNow(c Clock, loc *time.Location) Date {
	return DateFromTime(nowIn(c, loc))
}

// DateFromTime extracts the calendar date and offset of t in t's location.
// The offset is always present; use ClearOffset to drop it.
func DateFromTime(t time.Time) Date {
	return Date{date: civil.DateFromTime(t), offset: optional.Some(civil.OffsetFromTime(t))}
}

// DateFromAccessor assembles a Date from a generic accessor. A missing
// offset is not an error.
func DateFromAccessor(acc temporal.Accessor) (Date, error) {
	d, err := localDateFromAccessor("DateFromAccessor", acc)
	if err != nil {
		return Date{}, err
	}
	off, ok, err := offsetFromAccessor(acc)
	if err != nil {
		return Date{}, err
	}
	if !ok {
		return Date{date: d}, nil
	}
	return Date{date: d, offset: optional.Some(off)}, nil
}

// ParseDate parses "2023-03-01" with an optional trailing offset. Offset
// absence in the text becomes offset absence in the value.
func ParseDate(s string) (Date, error) {
	return ParseDateWith(format.ISODate, s)
}

// ParseDateWith parses text using the supplied formatter.
func ParseDateWith(f format.Formatter, s string) (Date, error) {
	p, err := f.Parse(s)
	if err != nil {
		return Date{}, err
	}
	return DateFromAccessor(p)
}

// LocalDate returns the civil date, dropping the offset.
func (d Date) LocalDate() civil.LocalDate { return d.date }

// Offset returns the optional offset.
func (d Date) Offset() optional.Option[civil.Offset] { return d.offset }

// HasOffset reports whether an offset is present.
func (d Date) HasOffset() bool { return d.offset.IsSome() }

// OffsetOrUTC returns the stored offset, or UTC when absent. This is the
// provider-free resolution used by Compare and SameInstant.
func (d Date) OffsetOrUTC() civil.Offset {
	return d.offset.OrElse(civil.UTC)
}

// Year returns the proleptic year.
func (d Date) Year() int { return d.date.Year() }

// Month returns the month-of-year.
func (d Date) Month() time.Month { return d.date.Month() }

// Day returns the day-of-month.
func (d Date) Day() int { return d.date.Day() }

// IsFieldSupported reports whether the field can be read from and set on
// this type. Offset-seconds is supported even while the offset is absent:
// supported means settable.
func (d Date) IsFieldSupported(f temporal.Field) bool {
	return dateCaps.fieldSupported(f)
}

// IsUnitSupported reports whether the unit can be used in arithmetic on this
// type.
func (d Date) IsUnitSupported(u temporal.Unit) bool {
	return dateCaps.unitSupported(u)
}

// Range returns the range of valid values for the field on this date.
func (d Date) Range(f temporal.Field) (temporal.ValueRange, error) {
	if !d.IsFieldSupported(f) {
		return temporal.ValueRange{}, chronerr.UnsupportedField("Date.Range", f)
	}
	if f == temporal.FieldOffsetSeconds {
		return f.Range(), nil
	}
	return dateFieldRange(d.date, f), nil
}

// Get returns the value of the field as an int. An absent offset reads as
// zero offset-seconds.
func (d Date) Get(f temporal.Field) (int, error) {
	v, err := d.GetLong(f)
	if err != nil {
		return 0, err
	}
	return f.Range().CheckInt("Date.Get", f, v)
}

// GetLong returns the value of the field as an int64.
func (d Date) GetLong(f temporal.Field) (int64, error) {
	if f == temporal.FieldOffsetSeconds {
		return int64(d.OffsetOrUTC().TotalSeconds()), nil
	}
	if v, ok := dateFieldValue(d.date, f); ok {
		return v, nil
	}
	return 0, chronerr.UnsupportedField("Date.GetLong", f)
}

// Query answers the generic capability queries. The offset and zone queries
// answer only while an offset is present, which is how offset absence
// propagates through FromAccessor conversions.
func (d Date) Query(q temporal.Query) (any, bool) {
	switch q {
	case temporal.QueryChronology:
		return temporal.ChronologyISO, true
	case temporal.QueryPrecision:
		return temporal.UnitDays, true
	case temporal.QueryOffset:
		if off, ok := d.offset.Get(); ok {
			return off, true
		}
		return nil, false
	case temporal.QueryZone:
		if off, ok := d.offset.Get(); ok {
			return off.Location(), true
		}
		return nil, false
	case temporal.QueryLocalDate:
		return d.date, true
	default:
		return nil, false
	}
}

// PlusYears returns a copy with years added; offset state is untouched.
func (d Date) PlusYears(years int64) (Date, error) {
	nd, err := d.date.PlusYears(years)
	if err != nil {
		return Date{}, err
	}
	return Date{date: nd, offset: d.offset}, nil
}

// PlusMonths returns a copy with months added; offset state is untouched.
func (d Date) PlusMonths(months int64) (Date, error) {
	nd, err := d.date.PlusMonths(months)
	if err != nil {
		return Date{}, err
	}
	return Date{date: nd, offset: d.offset}, nil
}

// PlusWeeks returns a copy with weeks added; offset state is untouched.
func (d Date) PlusWeeks(weeks int64) (Date, error) {
	nd, err := d.date.PlusWeeks(weeks)
	if err != nil {
		return Date{}, err
	}
	return Date{date: nd, offset: d.offset}, nil
}

// PlusDays returns a copy with days added; offset state is untouched.
func (d Date) PlusDays(days int64) (Date, error) {
	nd, err := d.date.PlusDays(days)
	if err != nil {
		return Date{}, err
	}
	return Date{date: nd, offset: d.offset}, nil
}

// Plus returns a copy with the amount of the given date-based unit added.
func (d Date) Plus(amount int64, unit temporal.Unit) (Date, error) {
	if !d.IsUnitSupported(unit) {
		return Date{}, chronerr.UnsupportedUnit("Date.Plus", unit)
	}
	nd, err := d.date.Plus(amount, unit)
	if err != nil {
		return Date{}, err
	}
	return Date{date: nd, offset: d.offset}, nil
}

// Minus returns a copy with the amount of the given unit subtracted.
func (d Date) Minus(amount int64, unit temporal.Unit) (Date, error) {
	negated, err := temporal.SubInt64(0, amount)
	if err != nil {
		return Date{}, err
	}
	return d.Plus(negated, unit)
}

// WithYear returns a copy with the year changed; offset state is untouched.
func (d Date) WithYear(year int) (Date, error) {
	nd, err := d.date.WithYear(year)
	if err != nil {
		return Date{}, err
	}
	return Date{date: nd, offset: d.offset}, nil
}

// WithMonth returns a copy with the month changed; offset state is
// untouched.
func (d Date) WithMonth(month time.Month) (Date, error) {
	nd, err := d.date.WithMonth(month)
	if err != nil {
		return Date{}, err
	}
	return Date{date: nd, offset: d.offset}, nil
}

// WithDay returns a copy with the day-of-month changed; offset state is
// untouched.
func (d Date) WithDay(day int) (Date, error) {
	nd, err := d.date.WithDay(day)
	if err != nil {
		return Date{}, err
	}
	return Date{date: nd, offset: d.offset}, nil
}

// WithDayOfYear returns a copy with the day-of-year changed; offset state is
// untouched.
func (d Date) WithDayOfYear(dayOfYear int) (Date, error) {
	nd, err := d.date.WithDayOfYear(dayOfYear)
	if err != nil {
		return Date{}, err
	}
	return Date{date: nd, offset: d.offset}, nil
}

// WithOffset returns a copy with the offset present and set to the given
// value; the civil date is untouched.
func (d Date) WithOffset(offset civil.Offset) Date {
	return Date{date: d.date, offset: optional.Some(offset)}
}

// ClearOffset returns a copy with the offset absent; the civil date is
// untouched.
func (d Date) ClearOffset() Date {
	return Date{date: d.date}
}

// With returns a copy with the given field set to value. Setting
// offset-seconds makes the offset present.
func (d Date) With(f temporal.Field, value int64) (Date, error) {
	const op = "Date.With"
	if f == temporal.FieldOffsetSeconds {
		if err := f.Range().Check(op, f, value); err != nil {
			return Date{}, err
		}
		off, err := civil.OffsetOfSeconds(int(value))
		if err != nil {
			return Date{}, err
		}
		return d.WithOffset(off), nil
	}
	nd, handled, err := withDateField(op, d.date, f, value)
	if err != nil {
		return Date{}, err
	}
	if !handled {
		return Date{}, chronerr.UnsupportedField(op, f)
	}
	return Date{date: nd, offset: d.offset}, nil
}

// MidnightEpochSecond returns the epoch second of midnight at the start of
// this date. A missing offset resolves through the provider, then UTC.
func (d Date) MidnightEpochSecond(zp ZoneProvider) int64 {
	off := resolveOffset(d.offset, d.date.At(civil.Midnight), zp)
	return d.date.EpochDay()*86_400 - int64(off.TotalSeconds())
}

// Compare orders two dates by the instant of their midnights under the
// stored-offset-or-UTC resolution, tie-breaking on the civil date and then
// on offset presence so the order is total and provider-independent.
func (d Date) Compare(other Date) int {
	if c := temporal.CompareInt64(d.MidnightEpochSecond(nil), other.MidnightEpochSecond(nil)); c != 0 {
		return c
	}
	if c := d.date.Compare(other.date); c != 0 {
		return c
	}
	switch {
	case d.offset.IsSome() == other.offset.IsSome():
		return 0
	case d.offset.IsSome():
		return 1
	default:
		return -1
	}
}

// Equal reports whether the civil dates and the offset states are both
// equal. A present offset never equals an absent one, even when both resolve
// to the same instant.
func (d Date) Equal(other Date) bool {
	return d.date.Equal(other.date) && optional.Equal(d.offset, other.offset)
}

// SameInstant reports whether the midnights coincide on the absolute
// timeline under the stored-offset-or-UTC resolution.
func (d Date) SameInstant(other Date) bool {
	return d.MidnightEpochSecond(nil) == other.MidnightEpochSecond(nil)
}

// IsBefore reports whether this date's midnight instant is before the
// other's, resolving absent offsets as UTC.
func (d Date) IsBefore(other Date) bool {
	return d.MidnightEpochSecond(nil) < other.MidnightEpochSecond(nil)
}

// IsAfter reports whether this date's midnight instant is after the other's,
// resolving absent offsets as UTC.
func (d Date) IsAfter(other Date) bool {
	return d.MidnightEpochSecond(nil) > other.MidnightEpochSecond(nil)
}

// ToOffsetDate converts to the mandatory-offset variant, resolving a missing
// offset through the provider, then UTC.
func (d Date) ToOffsetDate(zp ZoneProvider) OffsetDate {
	off := resolveOffset(d.offset, d.date.At(civil.Midnight), zp)
	return OffsetDate{date: d.date, offset: off}
}

// AtTime combines the date with a time-of-day into a DateTime, carrying the
// offset state through.
func (d Date) AtTime(t civil.LocalTime) DateTime {
	return NewDateTime(d.date.At(t), d.offset)
}

// String renders the civil date immediately followed by the offset when
// present, e.g. "2023-03-01+02:00" or "2023-03-01".
func (d Date) String() string {
	if off, ok := d.offset.Get(); ok {
		return d.date.String() + off.String()
	}
	return d.date.String()
}

// Format renders the date through the supplied formatter.
func (d Date) Format(f format.Formatter) (string, error) {
	return f.Format(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
