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

// OffsetDate is an immutable civil date with a mandatory UTC offset, such as
// "2023-03-01+02:00". The zero value is not a valid date; use a constructor.
//
// Date arithmetic carries the offset through unchanged: adding one day means
// the same wall-clock date one day later at the same offset, not 24 hours
// later on the absolute timeline.
type OffsetDate struct {
	date   civil.LocalDate
	offset civil.Offset
}

// NewOffsetDate combines an already-valid civil date and offset.
func NewOffsetDate(date civil.LocalDate, offset civil.Offset) OffsetDate {
	return OffsetDate{date: date, offset: offset}
}

// OffsetDateOf creates an OffsetDate from year, month, day and offset,
// validating the date components.
func OffsetDateOf(year int, month time.Month, day int, offset civil.Offset) (OffsetDate, error) {
	d, err := civil.DateOf(year, month, day)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: d, offset: offset}, nil
}

// OffsetDateNow reads the clock in the given location and derives the offset
// from the location's rule at that instant. A nil clock means the system
// clock; a nil location keeps the clock's own location.
func OffsetDateNow(c Clock, loc *time.Location) OffsetDate {
	return OffsetDateFromTime(nowIn(c, loc))
}

// OffsetDateFromTime extracts the calendar date and offset of t in t's
// location.
func OffsetDateFromTime(t time.Time) OffsetDate {
	return OffsetDate{date: civil.DateFromTime(t), offset: civil.OffsetFromTime(t)}
}

// OffsetDateFromAccessor assembles an OffsetDate from a generic accessor,
// typically a parse result. The offset is mandatory here; parsing text
// without an offset fails.
func OffsetDateFromAccessor(acc temporal.Accessor) (OffsetDate, error) {
	const op = "OffsetDateFromAccessor"
	d, err := localDateFromAccessor(op, acc)
	if err != nil {
		return OffsetDate{}, err
	}
	off, ok, err := offsetFromAccessor(acc)
	if err != nil {
		return OffsetDate{}, err
	}
	if !ok {
		return OffsetDate{}, chronerr.UnsupportedField(op, temporal.FieldOffsetSeconds)
	}
	return OffsetDate{date: d, offset: off}, nil
}

// ParseOffsetDate parses the canonical form "2023-03-01+02:00".
func ParseOffsetDate(s string) (OffsetDate, error) {
	return ParseOffsetDateWith(format.ISODate, s)
}

// ParseOffsetDateWith parses text using the supplied formatter.
func ParseOffsetDateWith(f format.Formatter, s string) (OffsetDate, error) {
	p, err := f.Parse(s)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDateFromAccessor(p)
}

// LocalDate returns the civil date, dropping the offset.
func (d OffsetDate) LocalDate() civil.LocalDate { return d.date }

// Offset returns the UTC offset.
func (d OffsetDate) Offset() civil.Offset { return d.offset }

// Year returns the proleptic year.
func (d OffsetDate) Year() int { return d.date.Year() }

// Month returns the month-of-year.
func (d OffsetDate) Month() time.Month { return d.date.Month() }

// Day returns the day-of-month.
func (d OffsetDate) Day() int { return d.date.Day() }

// IsFieldSupported reports whether the field can be read from and set on
// this type: the date fields plus offset-seconds.
func (d OffsetDate) IsFieldSupported(f temporal.Field) bool {
	return dateCaps.fieldSupported(f)
}

// IsUnitSupported reports whether the unit can be used in arithmetic on this
// type: the date-based units, excluding UnitForever.
func (d OffsetDate) IsUnitSupported(u temporal.Unit) bool {
	return dateCaps.unitSupported(u)
}

// Range returns the range of valid values for the field on this date.
func (d OffsetDate) Range(f temporal.Field) (temporal.ValueRange, error) {
	if !d.IsFieldSupported(f) {
		return temporal.ValueRange{}, chronerr.UnsupportedField("OffsetDate.Range", f)
	}
	if f == temporal.FieldOffsetSeconds {
		return f.Range(), nil
	}
	return dateFieldRange(d.date, f), nil
}

// Get returns the value of the field as an int. Fields wider than 32 bits
// (epoch-day) must use GetLong.
func (d OffsetDate) Get(f temporal.Field) (int, error) {
	v, err := d.GetLong(f)
	if err != nil {
		return 0, err
	}
	return f.Range().CheckInt("OffsetDate.Get", f, v)
}

// GetLong returns the value of the field as an int64.
func (d OffsetDate) GetLong(f temporal.Field) (int64, error) {
	if f == temporal.FieldOffsetSeconds {
		return int64(d.offset.TotalSeconds()), nil
	}
	if v, ok := dateFieldValue(d.date, f); ok {
		return v, nil
	}
	return 0, chronerr.UnsupportedField("OffsetDate.GetLong", f)
}

// Query answers the generic capability queries.
func (d OffsetDate) Query(q temporal.Query) (any, bool) {
	switch q {
	case temporal.QueryChronology:
		return temporal.ChronologyISO, true
	case temporal.QueryPrecision:
		return temporal.UnitDays, true
	case temporal.QueryOffset:
		return d.offset, true
	case temporal.QueryZone:
		return d.offset.Location(), true
	case temporal.QueryLocalDate:
		return d.date, true
	default:
		return nil, false
	}
}

// PlusYears returns a copy with years added; the offset is untouched.
func (d OffsetDate) PlusYears(years int64) (OffsetDate, error) {
	nd, err := d.date.PlusYears(years)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// PlusMonths returns a copy with months added; the offset is untouched.
func (d OffsetDate) PlusMonths(months int64) (OffsetDate, error) {
	nd, err := d.date.PlusMonths(months)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// PlusWeeks returns a copy with weeks added; the offset is untouched.
func (d OffsetDate) PlusWeeks(weeks int64) (OffsetDate, error) {
	nd, err := d.date.PlusWeeks(weeks)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// PlusDays returns a copy with days added; the offset is untouched.
func (d OffsetDate) PlusDays(days int64) (OffsetDate, error) {
	nd, err := d.date.PlusDays(days)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// Plus returns a copy with the amount of the given date-based unit added.
func (d OffsetDate) Plus(amount int64, unit temporal.Unit) (OffsetDate, error) {
	if !d.IsUnitSupported(unit) {
		return OffsetDate{}, chronerr.UnsupportedUnit("OffsetDate.Plus", unit)
	}
	nd, err := d.date.Plus(amount, unit)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// Minus returns a copy with the amount of the given unit subtracted.
func (d OffsetDate) Minus(amount int64, unit temporal.Unit) (OffsetDate, error) {
	negated, err := temporal.SubInt64(0, amount)
	if err != nil {
		return OffsetDate{}, err
	}
	return d.Plus(negated, unit)
}

// WithYear returns a copy with the year changed; the offset is untouched.
func (d OffsetDate) WithYear(year int) (OffsetDate, error) {
	nd, err := d.date.WithYear(year)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// WithMonth returns a copy with the month changed; the offset is untouched.
func (d OffsetDate) WithMonth(month time.Month) (OffsetDate, error) {
	nd, err := d.date.WithMonth(month)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// WithDay returns a copy with the day-of-month changed; the offset is
// untouched.
func (d OffsetDate) WithDay(day int) (OffsetDate, error) {
	nd, err := d.date.WithDay(day)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// WithDayOfYear returns a copy with the day-of-year changed; the offset is
// untouched.
func (d OffsetDate) WithDayOfYear(dayOfYear int) (OffsetDate, error) {
	nd, err := d.date.WithDayOfYear(dayOfYear)
	if err != nil {
		return OffsetDate{}, err
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// WithOffset returns a copy with only the offset changed; the civil date is
// untouched. This is the one mutator that legitimately changes the offset
// without changing the wall-clock date.
func (d OffsetDate) WithOffset(offset civil.Offset) OffsetDate {
	return OffsetDate{date: d.date, offset: offset}
}

// With returns a copy with the given field set to value. Setting
// offset-seconds changes only the offset; every other supported field
// changes only the civil date.
func (d OffsetDate) With(f temporal.Field, value int64) (OffsetDate, error) {
	const op = "OffsetDate.With"
	if f == temporal.FieldOffsetSeconds {
		if err := f.Range().Check(op, f, value); err != nil {
			return OffsetDate{}, err
		}
		off, err := civil.OffsetOfSeconds(int(value))
		if err != nil {
			return OffsetDate{}, err
		}
		return d.WithOffset(off), nil
	}
	nd, handled, err := withDateField(op, d.date, f, value)
	if err != nil {
		return OffsetDate{}, err
	}
	if !handled {
		return OffsetDate{}, chronerr.UnsupportedField(op, f)
	}
	return OffsetDate{date: nd, offset: d.offset}, nil
}

// MidnightEpochSecond returns the epoch second of midnight at the start of
// this date at its offset.
func (d OffsetDate) MidnightEpochSecond() int64 {
	return d.date.EpochDay()*86_400 - int64(d.offset.TotalSeconds())
}

// Compare orders two dates by the instant of their midnights, tie-breaking
// on the raw civil date so that values at the same instant with different
// offsets still sort deterministically.
func (d OffsetDate) Compare(other OffsetDate) int {
	if c := temporal.CompareInt64(d.MidnightEpochSecond(), other.MidnightEpochSecond()); c != 0 {
		return c
	}
	return d.date.Compare(other.date)
}

// Equal reports whether civil date and offset are both equal. This is
// strictly finer than SameInstant.
func (d OffsetDate) Equal(other OffsetDate) bool {
	return d == other
}

// SameInstant reports whether the midnights of the two dates coincide on the
// absolute timeline; the offsets may differ.
func (d OffsetDate) SameInstant(other OffsetDate) bool {
	return d.MidnightEpochSecond() == other.MidnightEpochSecond()
}

// IsBefore reports whether this date's midnight instant is before the
// other's.
func (d OffsetDate) IsBefore(other OffsetDate) bool {
	return d.MidnightEpochSecond() < other.MidnightEpochSecond()
}

// IsAfter reports whether this date's midnight instant is after the other's.
func (d OffsetDate) IsAfter(other OffsetDate) bool {
	return d.MidnightEpochSecond() > other.MidnightEpochSecond()
}

// WithOptionalOffset converts to the optional-offset Date variant; the
// offset is preserved, now optional-but-present.
func (d OffsetDate) WithOptionalOffset() Date {
	return NewDate(d.date, optional.Some(d.offset))
}

// AtTime combines the date with a time-of-day into a DateTime at this
// offset.
func (d OffsetDate) AtTime(t civil.LocalTime) DateTime {
	return NewDateTime(d.date.At(t), optional.Some(d.offset))
}

// String renders the canonical form: the civil date immediately followed by
// the offset, e.g. "2023-03-01+02:00".
func (d OffsetDate) String() string {
	return d.date.String() + d.offset.String()
}

// Format renders the date through the supplied formatter.
func (d OffsetDate) Format(f format.Formatter) (string, error) {
	return f.Format(d)
}

// MarshalText implements encoding.TextMarshaler.
func (d OffsetDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *OffsetDate) UnmarshalText(text []byte) error {
	parsed, err := ParseOffsetDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d OffsetDate) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *OffsetDate) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
