package format

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/civil"
	"github.com/chronon-dev/chronon/temporal"
)

// stubAccessor answers exactly the queries it was built with; Format only
// uses the query surface.
type stubAccessor struct {
	date    civil.LocalDate
	hasDate bool
	time    civil.LocalTime
	hasTime bool
	offset  civil.Offset
	hasOff  bool
}

func (s stubAccessor) IsFieldSupported(temporal.Field) bool { return false }

func (s stubAccessor) Range(f temporal.Field) (temporal.ValueRange, error) {
	return temporal.ValueRange{}, chronerr.UnsupportedField("stub.Range", f)
}

func (s stubAccessor) Get(f temporal.Field) (int, error) {
	return 0, chronerr.UnsupportedField("stub.Get", f)
}

func (s stubAccessor) GetLong(f temporal.Field) (int64, error) {
	return 0, chronerr.UnsupportedField("stub.GetLong", f)
}

func (s stubAccessor) Query(q temporal.Query) (any, bool) {
	switch q {
	case temporal.QueryLocalDate:
		if s.hasDate {
			return s.date, true
		}
	case temporal.QueryLocalTime:
		if s.hasTime {
			return s.time, true
		}
	case temporal.QueryOffset:
		if s.hasOff {
			return s.offset, true
		}
	}
	return nil, false
}

func dateAcc(y int, m time.Month, d int) stubAccessor {
	return stubAccessor{date: civil.MustDateOf(y, m, d), hasDate: true}
}

func (s stubAccessor) at(h, min, sec, nano int) stubAccessor {
	s.time = civil.MustTimeOf(h, min, sec, nano)
	s.hasTime = true
	return s
}

func (s stubAccessor) offsetBy(h, m, sec int) stubAccessor {
	s.offset = civil.MustOffsetOf(h, m, sec)
	s.hasOff = true
	return s
}

func TestISODateFormat(t *testing.T) {
	tests := []struct {
		name string
		acc  stubAccessor
		want string
	}{
		{"plain", dateAcc(2023, time.March, 1), "2023-03-01"},
		{"positive offset", dateAcc(2023, time.March, 1).offsetBy(2, 0, 0), "2023-03-01+02:00"},
		{"utc offset", dateAcc(2023, time.March, 1).offsetBy(0, 0, 0), "2023-03-01Z"},
		{"negative year", dateAcc(-44, time.March, 15), "-0044-03-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ISODate.Format(tt.acc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestISODateFormatWithoutDate(t *testing.T) {
	_, err := ISODate.Format(stubAccessor{})
	assert.ErrorIs(t, err, chronerr.ErrUnsupportedField)
}

func TestISODateTimeFormat(t *testing.T) {
	acc := dateAcc(2023, time.March, 1).at(10, 15, 30, 500_000_000).offsetBy(-5, -30, 0)
	got, err := ISODateTime.Format(acc)
	require.NoError(t, err)
	assert.Equal(t, "2023-03-01T10:15:30.500-05:30", got)
}

func TestBasicISODateFormat(t *testing.T) {
	got, err := BasicISODate.Format(dateAcc(2023, time.March, 1).offsetBy(2, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "20230301+0200", got)
}

func TestISODateParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantYMD    [3]int64
		wantOffset int64
		hasOffset  bool
	}{
		{"plain", "2023-03-01", [3]int64{2023, 3, 1}, 0, false},
		{"offset", "2023-03-01+02:00", [3]int64{2023, 3, 1}, 7_200, true},
		{"offset with seconds", "2023-03-01+02:00:30", [3]int64{2023, 3, 1}, 7_230, true},
		{"zulu", "2023-03-01Z", [3]int64{2023, 3, 1}, 0, true},
		{"negative year", "-0044-03-15", [3]int64{-44, 3, 15}, 0, false},
		{"negative year with offset", "-0044-03-15-01:00", [3]int64{-44, 3, 15}, -3_600, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ISODate.Parse(tt.text)
			require.NoError(t, err)

			year, err := p.GetLong(temporal.FieldYear)
			require.NoError(t, err)
			month, err := p.GetLong(temporal.FieldMonthOfYear)
			require.NoError(t, err)
			day, err := p.GetLong(temporal.FieldDayOfMonth)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYMD, [3]int64{year, month, day})

			assert.Equal(t, tt.hasOffset, p.Has(temporal.FieldOffsetSeconds))
			if tt.hasOffset {
				off, err := p.GetLong(temporal.FieldOffsetSeconds)
				require.NoError(t, err)
				assert.Equal(t, tt.wantOffset, off)
			}
		})
	}
}

func TestISODateParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"offset only", "Z"},
		{"short month", "2023-3-01"},
		{"trailing junk", "2023-03-01x"},
		{"time instead of date", "10:15:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ISODate.Parse(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestISOTimeParse(t *testing.T) {
	p, err := ISOTime.Parse("10:15:30.5Z")
	require.NoError(t, err)

	hour, _ := p.GetLong(temporal.FieldHourOfDay)
	minute, _ := p.GetLong(temporal.FieldMinuteOfHour)
	second, _ := p.GetLong(temporal.FieldSecondOfMinute)
	nano, _ := p.GetLong(temporal.FieldNanoOfSecond)
	off, _ := p.GetLong(temporal.FieldOffsetSeconds)
	assert.Equal(t, int64(10), hour)
	assert.Equal(t, int64(15), minute)
	assert.Equal(t, int64(30), second)
	assert.Equal(t, int64(500_000_000), nano)
	assert.Equal(t, int64(0), off)
}

func TestISOTimeParseReducedPrecision(t *testing.T) {
	p, err := ISOTime.Parse("10:15")
	require.NoError(t, err)
	second, err := p.GetLong(temporal.FieldSecondOfMinute)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second)
}

func TestISODateTimeParse(t *testing.T) {
	p, err := ISODateTime.Parse("2023-01-01T10:00:00+01:00")
	require.NoError(t, err)

	year, _ := p.GetLong(temporal.FieldYear)
	hour, _ := p.GetLong(temporal.FieldHourOfDay)
	off, _ := p.GetLong(temporal.FieldOffsetSeconds)
	assert.Equal(t, int64(2023), year)
	assert.Equal(t, int64(10), hour)
	assert.Equal(t, int64(3_600), off)
}

func TestISODateTimeParseMissingSeparator(t *testing.T) {
	_, err := ISODateTime.Parse("2023-01-01 10:00:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, chronerr.ErrParse)

	var cerr *chronerr.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, chronerr.KindParse, cerr.Kind)
}

func TestBasicISODateParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantYMD    [3]int64
		wantOffset int64
		hasOffset  bool
	}{
		{"plain", "20230301", [3]int64{2023, 3, 1}, 0, false},
		{"offset", "20230301+0200", [3]int64{2023, 3, 1}, 7_200, true},
		{"zulu", "20230301Z", [3]int64{2023, 3, 1}, 0, true},
		{"long year", "+100000101", [3]int64{10_000, 1, 1}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BasicISODate.Parse(tt.text)
			require.NoError(t, err)

			year, _ := p.GetLong(temporal.FieldYear)
			month, _ := p.GetLong(temporal.FieldMonthOfYear)
			day, _ := p.GetLong(temporal.FieldDayOfMonth)
			assert.Equal(t, tt.wantYMD, [3]int64{year, month, day})
			assert.Equal(t, tt.hasOffset, p.Has(temporal.FieldOffsetSeconds))
			if tt.hasOffset {
				off, _ := p.GetLong(temporal.FieldOffsetSeconds)
				assert.Equal(t, tt.wantOffset, off)
			}
		})
	}
}

func TestBasicISODateParseTooShort(t *testing.T) {
	_, err := BasicISODate.Parse("202303")
	assert.ErrorIs(t, err, chronerr.ErrParse)
}
