package temporal

// Unit enumerates the standard units of the ISO calendar system, ordered from
// smallest to largest. UnitForever is a sentinel that no value type supports.
type Unit int

const (
	// UnitNanos is one nanosecond.
	UnitNanos Unit = iota

	// UnitMicros is one microsecond.
	UnitMicros

	// UnitMillis is one millisecond.
	UnitMillis

	// UnitSeconds is one second.
	UnitSeconds

	// UnitMinutes is 60 seconds.
	UnitMinutes

	// UnitHours is 60 minutes.
	UnitHours

	// UnitDays is one calendar day.
	UnitDays

	// UnitWeeks is 7 days.
	UnitWeeks

	// UnitMonths is one calendar month.
	UnitMonths

	// UnitYears is one calendar year.
	UnitYears

	// UnitDecades is 10 years.
	UnitDecades

	// UnitCenturies is 100 years.
	UnitCenturies

	// UnitMillennia is 1000 years.
	UnitMillennia

	// UnitForever is the artificial unit of eternity, never supported by
	// any value type.
	UnitForever
)

var unitNames = [...]string{
	UnitNanos:     "Nanos",
	UnitMicros:    "Micros",
	UnitMillis:    "Millis",
	UnitSeconds:   "Seconds",
	UnitMinutes:   "Minutes",
	UnitHours:     "Hours",
	UnitDays:      "Days",
	UnitWeeks:     "Weeks",
	UnitMonths:    "Months",
	UnitYears:     "Years",
	UnitDecades:   "Decades",
	UnitCenturies: "Centuries",
	UnitMillennia: "Millennia",
	UnitForever:   "Forever",
}

// String returns the unit's name.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "Unknown"
	}
	return unitNames[u]
}

// IsValid reports whether u is one of the defined units.
func (u Unit) IsValid() bool {
	return u >= UnitNanos && u <= UnitForever
}

// IsTimeBased reports whether the unit measures time-of-day with an exact
// duration.
func (u Unit) IsTimeBased() bool {
	return u >= UnitNanos && u <= UnitHours
}

// IsDateBased reports whether the unit measures calendar dates.
func (u Unit) IsDateBased() bool {
	return u >= UnitDays && u <= UnitMillennia
}

// Nanos returns the exact length of the unit in nanoseconds. The second
// result is false for units without a fixed nanosecond length (months and
// larger, and UnitForever). Days are treated as exactly 24 hours, which is
// valid for civil-clock arithmetic where no zone transitions apply.
func (u Unit) Nanos() (int64, bool) {
	switch u {
	case UnitNanos:
		return 1, true
	case UnitMicros:
		return 1_000, true
	case UnitMillis:
		return 1_000_000, true
	case UnitSeconds:
		return 1_000_000_000, true
	case UnitMinutes:
		return 60_000_000_000, true
	case UnitHours:
		return 3_600_000_000_000, true
	case UnitDays:
		return 86_400_000_000_000, true
	default:
		return 0, false
	}
}
