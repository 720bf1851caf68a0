package civil

import (
	"fmt"
	"strconv"
	"time"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/temporal"
)

const secondsPerDay = 86_400

// LocalDate is a calendar date in the proleptic ISO calendar without a time
// or offset. The zero value is not a valid date; use DateOf.
type LocalDate struct {
	year  int
	month time.Month
	day   int
}

// isLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth is the number of days for non-leap years in each calendar
// month starting at 1.
var daysInMonth = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysIn(m time.Month, year int) int {
	if m == time.February && isLeap(year) {
		return 29
	}
	return daysInMonth[int(m)]
}

// DateOf creates a LocalDate from year, month and day, validating that the
// components form an existing calendar date.
func DateOf(year int, month time.Month, day int) (LocalDate, error) {
	const op = "DateOf"
	if year < temporal.MinYear || year > temporal.MaxYear {
		return LocalDate{}, chronerr.InvalidValue(op, "year %d outside range %d..%d", year, temporal.MinYear, temporal.MaxYear)
	}
	if month < time.January || month > time.December {
		return LocalDate{}, chronerr.InvalidValue(op, "month %d outside range 1..12", int(month))
	}
	if day < 1 || day > daysIn(month, year) {
		return LocalDate{}, chronerr.InvalidValue(op, "day %d does not exist in %s %d", day, month, year)
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// MustDateOf is like DateOf but panics on invalid components. Intended for
// constants and tests.
func MustDateOf(year int, month time.Month, day int) LocalDate {
	d, err := DateOf(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromEpochDay creates a LocalDate from a count of days since
// 1970-01-01.
func DateFromEpochDay(epochDay int64) (LocalDate, error) {
	if epochDay < temporal.MinEpochDay || epochDay > temporal.MaxEpochDay {
		return LocalDate{}, chronerr.Overflow("DateFromEpochDay", "epoch day %d outside range %d..%d",
			epochDay, int64(temporal.MinEpochDay), int64(temporal.MaxEpochDay))
	}
	t := time.Unix(epochDay*secondsPerDay, 0).UTC()
	y, m, d := t.Date()
	return LocalDate{year: y, month: m, day: d}, nil
}

// DateFromTime extracts the calendar date of t in t's location.
func DateFromTime(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{year: y, month: m, day: d}
}

// Year returns the proleptic year.
func (d LocalDate) Year() int { return d.year }

// Month returns the month-of-year.
func (d LocalDate) Month() time.Month { return d.month }

// Day returns the day-of-month.
func (d LocalDate) Day() int { return d.day }

// Weekday returns the day-of-week.
func (d LocalDate) Weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

// ISOWeekday returns the ISO-8601 day-of-week, 1 (Monday) to 7 (Sunday).
func (d LocalDate) ISOWeekday() int {
	return (int(d.Weekday())+6)%7 + 1
}

// DayOfYear returns the ordinal day within the year, 1 to 365/366.
func (d LocalDate) DayOfYear() int {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).YearDay()
}

// IsLeapYear reports whether the date's year is a leap year.
func (d LocalDate) IsLeapYear() bool { return isLeap(d.year) }

// LengthOfMonth returns the number of days in the date's month.
func (d LocalDate) LengthOfMonth() int { return daysIn(d.month, d.year) }

// LengthOfYear returns 365 or 366.
func (d LocalDate) LengthOfYear() int {
	if isLeap(d.year) {
		return 366
	}
	return 365
}

// EpochDay returns the count of days since 1970-01-01.
func (d LocalDate) EpochDay() int64 {
	t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
	// Midnight UTC is always an exact multiple of 86400 seconds.
	return t.Unix() / secondsPerDay
}

// PlusDays returns a copy of the date with days added.
func (d LocalDate) PlusDays(days int64) (LocalDate, error) {
	if days == 0 {
		return d, nil
	}
	ed, err := temporal.AddInt64(d.EpochDay(), days)
	if err != nil {
		return LocalDate{}, err
	}
	return DateFromEpochDay(ed)
}

// PlusWeeks returns a copy of the date with weeks added.
func (d LocalDate) PlusWeeks(weeks int64) (LocalDate, error) {
	days, err := temporal.MulInt64(weeks, 7)
	if err != nil {
		return LocalDate{}, err
	}
	return d.PlusDays(days)
}

// PlusMonths returns a copy of the date with months added. The day-of-month
// is clamped to the last valid day of the resulting month.
func (d LocalDate) PlusMonths(months int64) (LocalDate, error) {
	if months == 0 {
		return d, nil
	}
	cur := int64(d.year)*12 + int64(d.month) - 1
	total, err := temporal.AddInt64(cur, months)
	if err != nil {
		return LocalDate{}, err
	}
	year := temporal.FloorDiv(total, 12)
	month := time.Month(temporal.FloorMod(total, 12) + 1)
	if year < temporal.MinYear || year > temporal.MaxYear {
		return LocalDate{}, chronerr.Overflow("LocalDate.PlusMonths", "result year %d outside range", year)
	}
	return resolveClamped(int(year), month, d.day)
}

// PlusYears returns a copy of the date with years added, clamping February 29
// to February 28 in non-leap result years.
func (d LocalDate) PlusYears(years int64) (LocalDate, error) {
	if years == 0 {
		return d, nil
	}
	year, err := temporal.AddInt64(int64(d.year), years)
	if err != nil {
		return LocalDate{}, err
	}
	if year < temporal.MinYear || year > temporal.MaxYear {
		return LocalDate{}, chronerr.Overflow("LocalDate.PlusYears", "result year %d outside range", year)
	}
	return resolveClamped(int(year), d.month, d.day)
}

// resolveClamped builds a date clamping the day to the month's length.
func resolveClamped(year int, month time.Month, day int) (LocalDate, error) {
	if max := daysIn(month, year); day > max {
		day = max
	}
	return DateOf(year, month, day)
}

// Plus returns a copy of the date with the amount of the given date-based
// unit added. Time-based units and UnitForever are unsupported.
func (d LocalDate) Plus(amount int64, unit temporal.Unit) (LocalDate, error) {
	switch unit {
	case temporal.UnitDays:
		return d.PlusDays(amount)
	case temporal.UnitWeeks:
		return d.PlusWeeks(amount)
	case temporal.UnitMonths:
		return d.PlusMonths(amount)
	case temporal.UnitYears:
		return d.PlusYears(amount)
	case temporal.UnitDecades:
		years, err := temporal.MulInt64(amount, 10)
		if err != nil {
			return LocalDate{}, err
		}
		return d.PlusYears(years)
	case temporal.UnitCenturies:
		years, err := temporal.MulInt64(amount, 100)
		if err != nil {
			return LocalDate{}, err
		}
		return d.PlusYears(years)
	case temporal.UnitMillennia:
		years, err := temporal.MulInt64(amount, 1000)
		if err != nil {
			return LocalDate{}, err
		}
		return d.PlusYears(years)
	default:
		return LocalDate{}, chronerr.UnsupportedUnit("LocalDate.Plus", unit)
	}
}

// WithYear returns a copy of the date with the year changed, clamping
// February 29 to February 28 when the new year is not a leap year.
func (d LocalDate) WithYear(year int) (LocalDate, error) {
	if year < temporal.MinYear || year > temporal.MaxYear {
		return LocalDate{}, chronerr.InvalidValue("LocalDate.WithYear", "year %d outside range", year)
	}
	return resolveClamped(year, d.month, d.day)
}

// WithMonth returns a copy of the date with the month changed, clamping the
// day to the new month's length.
func (d LocalDate) WithMonth(month time.Month) (LocalDate, error) {
	if month < time.January || month > time.December {
		return LocalDate{}, chronerr.InvalidValue("LocalDate.WithMonth", "month %d outside range 1..12", int(month))
	}
	return resolveClamped(d.year, month, d.day)
}

// WithDay returns a copy of the date with the day-of-month changed. Unlike
// the year and month mutators this does not clamp; an invalid day fails.
func (d LocalDate) WithDay(day int) (LocalDate, error) {
	return DateOf(d.year, d.month, day)
}

// WithDayOfYear returns a copy of the date with the day-of-year changed.
func (d LocalDate) WithDayOfYear(dayOfYear int) (LocalDate, error) {
	if dayOfYear < 1 || dayOfYear > d.LengthOfYear() {
		return LocalDate{}, chronerr.InvalidValue("LocalDate.WithDayOfYear", "day-of-year %d does not exist in %d", dayOfYear, d.year)
	}
	first := LocalDate{year: d.year, month: time.January, day: 1}
	return first.PlusDays(int64(dayOfYear) - 1)
}

// Compare returns -1, 0 or +1 comparing two dates chronologically.
func (d LocalDate) Compare(other LocalDate) int {
	if c := temporal.CompareInt64(int64(d.year), int64(other.year)); c != 0 {
		return c
	}
	if c := temporal.CompareInt64(int64(d.month), int64(other.month)); c != 0 {
		return c
	}
	return temporal.CompareInt64(int64(d.day), int64(other.day))
}

// Equal reports whether two dates are the same calendar date.
func (d LocalDate) Equal(other LocalDate) bool {
	return d == other
}

// At combines the date with a time-of-day into a LocalDateTime.
func (d LocalDate) At(t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// yearString renders a proleptic year: zero-padded to four digits within
// 0..9999, otherwise signed.
func yearString(year int) string {
	if year >= 0 && year <= 9999 {
		return fmt.Sprintf("%04d", year)
	}
	if year > 9999 {
		return fmt.Sprintf("+%d", year)
	}
	return strconv.Itoa(year)
}

// String renders the date in canonical ISO-8601 form, e.g. "2023-03-01".
func (d LocalDate) String() string {
	return fmt.Sprintf("%s-%02d-%02d", yearString(d.year), int(d.month), d.day)
}

// ParseDate parses a canonical ISO-8601 date such as "2023-03-01" or
// "-0044-03-15". Years outside 0..9999 carry an explicit sign.
func ParseDate(s string) (LocalDate, error) {
	const op = "ParseDate"
	if len(s) < 10 || s[len(s)-3] != '-' || s[len(s)-6] != '-' {
		return LocalDate{}, chronerr.Parse(op, s, "date must look like yyyy-mm-dd")
	}
	yearStr := s[:len(s)-6]
	digits := yearStr
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if len(digits) < 4 {
		return LocalDate{}, chronerr.Parse(op, s, "year needs at least four digits")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return LocalDate{}, chronerr.Parse(op, s, "non-numeric year")
	}
	month, err := strconv.Atoi(s[len(s)-5 : len(s)-3])
	if err != nil {
		return LocalDate{}, chronerr.Parse(op, s, "non-numeric month")
	}
	day, err := strconv.Atoi(s[len(s)-2:])
	if err != nil {
		return LocalDate{}, chronerr.Parse(op, s, "non-numeric day")
	}
	d, err := DateOf(year, time.Month(month), day)
	if err != nil {
		return LocalDate{}, chronerr.Parse(op, s, "%v", err)
	}
	return d, nil
}
