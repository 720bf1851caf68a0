package chronon

import (
	"time"

	"github.com/chronon-dev/chronon/civil"
	"github.com/chronon-dev/chronon/temporal"
)

// dateFieldValue reads a date-based field from a civil date. The second
// result is false when the field is not date-based.
func dateFieldValue(d civil.LocalDate, f temporal.Field) (int64, bool) {
	switch f {
	case temporal.FieldDayOfWeek:
		return int64(d.ISOWeekday()), true
	case temporal.FieldDayOfMonth:
		return int64(d.Day()), true
	case temporal.FieldDayOfYear:
		return int64(d.DayOfYear()), true
	case temporal.FieldEpochDay:
		return d.EpochDay(), true
	case temporal.FieldMonthOfYear:
		return int64(d.Month()), true
	case temporal.FieldYear:
		return int64(d.Year()), true
	default:
		return 0, false
	}
}

// timeFieldValue reads a time-based field from a civil time.
func timeFieldValue(t civil.LocalTime, f temporal.Field) (int64, bool) {
	switch f {
	case temporal.FieldNanoOfSecond:
		return int64(t.Nano()), true
	case temporal.FieldNanoOfDay:
		return t.NanoOfDay(), true
	case temporal.FieldMicroOfSecond:
		return int64(t.Nano()) / 1_000, true
	case temporal.FieldMilliOfSecond:
		return int64(t.Nano()) / 1_000_000, true
	case temporal.FieldSecondOfMinute:
		return int64(t.Second()), true
	case temporal.FieldSecondOfDay:
		return int64(t.SecondOfDay()), true
	case temporal.FieldMinuteOfHour:
		return int64(t.Minute()), true
	case temporal.FieldMinuteOfDay:
		return int64(t.Hour()*60 + t.Minute()), true
	case temporal.FieldHourOfDay:
		return int64(t.Hour()), true
	default:
		return 0, false
	}
}

// dateFieldRange narrows the base range of value-dependent date fields to
// the concrete date.
func dateFieldRange(d civil.LocalDate, f temporal.Field) temporal.ValueRange {
	switch f {
	case temporal.FieldDayOfMonth:
		return temporal.RangeOf(1, int64(d.LengthOfMonth()))
	case temporal.FieldDayOfYear:
		return temporal.RangeOf(1, int64(d.LengthOfYear()))
	default:
		return f.Range()
	}
}

// withDateField applies a generic with(field, value) to a civil date. The
// bool result is false when the field is not a settable date field.
func withDateField(op string, d civil.LocalDate, f temporal.Field, v int64) (civil.LocalDate, bool, error) {
	check := func() error { return f.Range().Check(op, f, v) }
	switch f {
	case temporal.FieldDayOfWeek:
		if err := check(); err != nil {
			return civil.LocalDate{}, true, err
		}
		nd, err := d.PlusDays(v - int64(d.ISOWeekday()))
		return nd, true, err
	case temporal.FieldDayOfMonth:
		if err := check(); err != nil {
			return civil.LocalDate{}, true, err
		}
		nd, err := d.WithDay(int(v))
		return nd, true, err
	case temporal.FieldDayOfYear:
		if err := check(); err != nil {
			return civil.LocalDate{}, true, err
		}
		nd, err := d.WithDayOfYear(int(v))
		return nd, true, err
	case temporal.FieldEpochDay:
		if err := check(); err != nil {
			return civil.LocalDate{}, true, err
		}
		nd, err := civil.DateFromEpochDay(v)
		return nd, true, err
	case temporal.FieldMonthOfYear:
		if err := check(); err != nil {
			return civil.LocalDate{}, true, err
		}
		nd, err := d.WithMonth(time.Month(v))
		return nd, true, err
	case temporal.FieldYear:
		if err := check(); err != nil {
			return civil.LocalDate{}, true, err
		}
		nd, err := d.WithYear(int(v))
		return nd, true, err
	default:
		return civil.LocalDate{}, false, nil
	}
}

// withTimeField applies a generic with(field, value) to a civil time.
func withTimeField(op string, t civil.LocalTime, f temporal.Field, v int64) (civil.LocalTime, bool, error) {
	if f.IsTimeBased() {
		if err := f.Range().Check(op, f, v); err != nil {
			return civil.LocalTime{}, true, err
		}
	}
	switch f {
	case temporal.FieldNanoOfSecond:
		nt, err := t.WithNano(int(v))
		return nt, true, err
	case temporal.FieldNanoOfDay:
		nt, err := civil.TimeFromNanoOfDay(v)
		return nt, true, err
	case temporal.FieldMicroOfSecond:
		nt, err := t.WithNano(int(v) * 1_000)
		return nt, true, err
	case temporal.FieldMilliOfSecond:
		nt, err := t.WithNano(int(v) * 1_000_000)
		return nt, true, err
	case temporal.FieldSecondOfMinute:
		nt, err := t.WithSecond(int(v))
		return nt, true, err
	case temporal.FieldSecondOfDay:
		nt, err := civil.TimeFromNanoOfDay(v*1_000_000_000 + int64(t.Nano()))
		return nt, true, err
	case temporal.FieldMinuteOfHour:
		nt, err := t.WithMinute(int(v))
		return nt, true, err
	case temporal.FieldMinuteOfDay:
		nod := v*60_000_000_000 + int64(t.Second())*1_000_000_000 + int64(t.Nano())
		nt, err := civil.TimeFromNanoOfDay(nod)
		return nt, true, err
	case temporal.FieldHourOfDay:
		nt, err := t.WithHour(int(v))
		return nt, true, err
	default:
		return civil.LocalTime{}, false, nil
	}
}
