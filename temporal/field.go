package temporal

import "math"

// Field enumerates the standard fields of the ISO calendar system understood
// by the chronon value types, ordered from smallest to largest.
type Field int

const (
	// FieldNanoOfSecond is the nano-of-second, 0 to 999,999,999.
	FieldNanoOfSecond Field = iota

	// FieldNanoOfDay is the nano-of-day, 0 to 86,399,999,999,999. GetLong only.
	FieldNanoOfDay

	// FieldMicroOfSecond is the micro-of-second, 0 to 999,999.
	FieldMicroOfSecond

	// FieldMilliOfSecond is the milli-of-second, 0 to 999.
	FieldMilliOfSecond

	// FieldSecondOfMinute is the second-of-minute, 0 to 59.
	FieldSecondOfMinute

	// FieldSecondOfDay is the second-of-day, 0 to 86,399.
	FieldSecondOfDay

	// FieldMinuteOfHour is the minute-of-hour, 0 to 59.
	FieldMinuteOfHour

	// FieldMinuteOfDay is the minute-of-day, 0 to 1,439.
	FieldMinuteOfDay

	// FieldHourOfDay is the hour-of-day, 0 to 23.
	FieldHourOfDay

	// FieldDayOfWeek is the ISO day-of-week, 1 (Monday) to 7 (Sunday).
	FieldDayOfWeek

	// FieldDayOfMonth is the day-of-month, 1 to 28/29/30/31.
	FieldDayOfMonth

	// FieldDayOfYear is the day-of-year, 1 to 365/366.
	FieldDayOfYear

	// FieldEpochDay is the count of days since 1970-01-01. GetLong only.
	FieldEpochDay

	// FieldMonthOfYear is the month-of-year, 1 (January) to 12 (December).
	FieldMonthOfYear

	// FieldYear is the proleptic year, MinYear to MaxYear.
	FieldYear

	// FieldOffsetSeconds is the UTC offset in seconds, -64,800 to +64,800.
	FieldOffsetSeconds

	// FieldInstantSeconds is the count of seconds since the epoch
	// 1970-01-01T00:00:00Z. GetLong only.
	FieldInstantSeconds
)

// Supported year range of the proleptic ISO calendar.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// Legal UTC offset range in seconds (+/-18:00).
const (
	MinOffsetSeconds = -18 * 60 * 60
	MaxOffsetSeconds = 18 * 60 * 60
)

// Exact epoch-day range corresponding to MinYear-01-01..MaxYear-12-31.
const (
	MinEpochDay = -365_243_219_162
	MaxEpochDay = 365_241_780_471
)

var fieldNames = [...]string{
	FieldNanoOfSecond:   "NanoOfSecond",
	FieldNanoOfDay:      "NanoOfDay",
	FieldMicroOfSecond:  "MicroOfSecond",
	FieldMilliOfSecond:  "MilliOfSecond",
	FieldSecondOfMinute: "SecondOfMinute",
	FieldSecondOfDay:    "SecondOfDay",
	FieldMinuteOfHour:   "MinuteOfHour",
	FieldMinuteOfDay:    "MinuteOfDay",
	FieldHourOfDay:      "HourOfDay",
	FieldDayOfWeek:      "DayOfWeek",
	FieldDayOfMonth:     "DayOfMonth",
	FieldDayOfYear:      "DayOfYear",
	FieldEpochDay:       "EpochDay",
	FieldMonthOfYear:    "MonthOfYear",
	FieldYear:           "Year",
	FieldOffsetSeconds:  "OffsetSeconds",
	FieldInstantSeconds: "InstantSeconds",
}

// String returns the field's name.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "Unknown"
	}
	return fieldNames[f]
}

// IsValid reports whether f is one of the defined fields.
func (f Field) IsValid() bool {
	return f >= FieldNanoOfSecond && f <= FieldInstantSeconds
}

// IsDateBased reports whether the field measures part of a date.
// FieldOffsetSeconds and FieldInstantSeconds are neither date nor time based.
func (f Field) IsDateBased() bool {
	return f >= FieldDayOfWeek && f <= FieldYear
}

// IsTimeBased reports whether the field measures part of a time-of-day.
func (f Field) IsTimeBased() bool {
	return f >= FieldNanoOfSecond && f <= FieldHourOfDay
}

var fieldRanges = [...]ValueRange{
	FieldNanoOfSecond:   {0, 999_999_999},
	FieldNanoOfDay:      {0, 86_399_999_999_999},
	FieldMicroOfSecond:  {0, 999_999},
	FieldMilliOfSecond:  {0, 999},
	FieldSecondOfMinute: {0, 59},
	FieldSecondOfDay:    {0, 86_399},
	FieldMinuteOfHour:   {0, 59},
	FieldMinuteOfDay:    {0, 1_439},
	FieldHourOfDay:      {0, 23},
	FieldDayOfWeek:      {1, 7},
	FieldDayOfMonth:     {1, 31},
	FieldDayOfYear:      {1, 366},
	FieldEpochDay:       {MinEpochDay, MaxEpochDay},
	FieldMonthOfYear:    {1, 12},
	FieldYear:           {MinYear, MaxYear},
	FieldOffsetSeconds:  {MinOffsetSeconds, MaxOffsetSeconds},
	FieldInstantSeconds: {math.MinInt64, math.MaxInt64},
}

// Range returns the outer range of valid values for the field. Fields with
// value-dependent ranges (day-of-month, day-of-year) report the widest range;
// value types narrow it for a concrete date.
func (f Field) Range() ValueRange {
	return fieldRanges[f]
}
