package chronon

import (
	"time"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/civil"
	"github.com/chronon-dev/chronon/temporal"
)

// localDateFromAccessor assembles a civil date from a generic accessor,
// preferring the direct query, then epoch-day, then the year/month/day
// triple.
func localDateFromAccessor(op string, acc temporal.Accessor) (civil.LocalDate, error) {
	if v, ok := acc.Query(temporal.QueryLocalDate); ok {
		return v.(civil.LocalDate), nil
	}
	if acc.IsFieldSupported(temporal.FieldEpochDay) {
		ed, err := acc.GetLong(temporal.FieldEpochDay)
		if err != nil {
			return civil.LocalDate{}, err
		}
		return civil.DateFromEpochDay(ed)
	}
	year, err := acc.GetLong(temporal.FieldYear)
	if err != nil {
		return civil.LocalDate{}, chronerr.UnsupportedField(op, temporal.FieldYear)
	}
	month, err := acc.GetLong(temporal.FieldMonthOfYear)
	if err != nil {
		return civil.LocalDate{}, chronerr.UnsupportedField(op, temporal.FieldMonthOfYear)
	}
	day, err := acc.GetLong(temporal.FieldDayOfMonth)
	if err != nil {
		return civil.LocalDate{}, chronerr.UnsupportedField(op, temporal.FieldDayOfMonth)
	}
	return civil.DateOf(int(year), time.Month(month), int(day))
}

// localTimeFromAccessor assembles a civil time from a generic accessor,
// preferring the direct query, then nano-of-day, then the field quadruple.
// Second and nano default to zero when absent so reduced-precision parse
// results assemble cleanly.
func localTimeFromAccessor(op string, acc temporal.Accessor) (civil.LocalTime, error) {
	if v, ok := acc.Query(temporal.QueryLocalTime); ok {
		return v.(civil.LocalTime), nil
	}
	if acc.IsFieldSupported(temporal.FieldNanoOfDay) {
		nod, err := acc.GetLong(temporal.FieldNanoOfDay)
		if err != nil {
			return civil.LocalTime{}, err
		}
		return civil.TimeFromNanoOfDay(nod)
	}
	hour, err := acc.GetLong(temporal.FieldHourOfDay)
	if err != nil {
		return civil.LocalTime{}, chronerr.UnsupportedField(op, temporal.FieldHourOfDay)
	}
	minute, err := acc.GetLong(temporal.FieldMinuteOfHour)
	if err != nil {
		return civil.LocalTime{}, chronerr.UnsupportedField(op, temporal.FieldMinuteOfHour)
	}
	var second, nano int64
	if acc.IsFieldSupported(temporal.FieldSecondOfMinute) {
		if second, err = acc.GetLong(temporal.FieldSecondOfMinute); err != nil {
			return civil.LocalTime{}, err
		}
	}
	if acc.IsFieldSupported(temporal.FieldNanoOfSecond) {
		if nano, err = acc.GetLong(temporal.FieldNanoOfSecond); err != nil {
			return civil.LocalTime{}, err
		}
	}
	return civil.TimeOf(int(hour), int(minute), int(second), int(nano))
}

// offsetFromAccessor extracts the offset if the accessor carries one. The
// bool result is false when no offset is present, which is not an error for
// the optional-offset types.
//
// The offset query is authoritative for full value types: they support the
// offset-seconds field even while the offset is absent, so field presence
// only decides for plain field bags, recognized by not answering the
// precision query.
func offsetFromAccessor(acc temporal.Accessor) (civil.Offset, bool, error) {
	if v, ok := acc.Query(temporal.QueryOffset); ok {
		return v.(civil.Offset), true, nil
	}
	if _, ok := acc.Query(temporal.QueryPrecision); ok {
		return civil.UTC, false, nil
	}
	if !acc.IsFieldSupported(temporal.FieldOffsetSeconds) {
		return civil.UTC, false, nil
	}
	sec, err := acc.GetLong(temporal.FieldOffsetSeconds)
	if err != nil {
		return civil.UTC, false, err
	}
	off, err := civil.OffsetOfSeconds(int(sec))
	if err != nil {
		return civil.UTC, false, err
	}
	return off, true, nil
}
