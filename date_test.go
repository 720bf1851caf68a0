package chronon

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/civil"
	"github.com/chronon-dev/chronon/optional"
	"github.com/chronon-dev/chronon/temporal"
)

func TestDateOf(t *testing.T) {
	d, err := DateOf(2023, time.March, 1)
	require.NoError(t, err)
	assert.False(t, d.HasOffset())
	assert.Equal(t, "2023-03-01", d.String())

	_, err = DateOf(2023, time.April, 31)
	assert.ErrorIs(t, err, chronerr.ErrInvalidValue)
}

func TestDateParsePreservesOffsetState(t *testing.T) {
	plain, err := ParseDate("2023-03-01")
	require.NoError(t, err)
	assert.False(t, plain.HasOffset())

	withOff, err := ParseDate("2023-03-01+02:00")
	require.NoError(t, err)
	require.True(t, withOff.HasOffset())
	assert.Equal(t, civil.MustOffsetOf(2, 0, 0), withOff.Offset().MustGet())

	zulu, err := ParseDate("2023-03-01Z")
	require.NoError(t, err)
	assert.True(t, zulu.HasOffset())
	assert.Equal(t, civil.UTC, zulu.OffsetOrUTC())
}

func TestDateArithmeticPreservesAbsence(t *testing.T) {
	d, err := DateOf(2023, time.January, 31)
	require.NoError(t, err)

	got, err := d.PlusMonths(1)
	require.NoError(t, err)
	assert.Equal(t, "2023-02-28", got.String())
	assert.False(t, got.HasOffset())

	got, err = d.PlusWeeks(2)
	require.NoError(t, err)
	assert.Equal(t, "2023-02-14", got.String())
	assert.False(t, got.HasOffset())

	withOff := d.WithOffset(civil.MustOffsetOf(-5, 0, 0))
	got, err = withOff.PlusYears(1)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31-05:00", got.String())
}

func TestDateOffsetMutators(t *testing.T) {
	d, err := DateOf(2023, time.March, 1)
	require.NoError(t, err)

	present := d.WithOffset(civil.MustOffsetOf(2, 0, 0))
	assert.True(t, present.HasOffset())
	assert.Equal(t, d.LocalDate(), present.LocalDate())

	cleared := present.ClearOffset()
	assert.False(t, cleared.HasOffset())
	assert.True(t, cleared.Equal(d))

	set, err := d.With(temporal.FieldOffsetSeconds, 3_600)
	require.NoError(t, err)
	assert.Equal(t, "2023-03-01+01:00", set.String())
}

func TestDateEqualVersusSameInstant(t *testing.T) {
	absent, err := DateOf(2023, time.March, 1)
	require.NoError(t, err)
	zulu := absent.WithOffset(civil.UTC)

	// Absent resolves to UTC for the instant, so the midnights coincide,
	// but the offset states differ.
	assert.True(t, absent.SameInstant(zulu))
	assert.False(t, absent.Equal(zulu))
	assert.False(t, zulu.Equal(absent))
	assert.True(t, absent.Equal(absent))
}

func TestDateCompare(t *testing.T) {
	absent, err := DateOf(2023, time.March, 1)
	require.NoError(t, err)
	zulu := absent.WithOffset(civil.UTC)
	plus2 := absent.WithOffset(civil.MustOffsetOf(2, 0, 0))

	// Same instant and same civil date: absent sorts before present.
	assert.Equal(t, -1, absent.Compare(zulu))
	assert.Equal(t, 1, zulu.Compare(absent))
	assert.Equal(t, 0, zulu.Compare(zulu))

	// The +02:00 midnight is the earliest instant of the three.
	assert.Equal(t, -1, plus2.Compare(zulu))
	assert.True(t, plus2.IsBefore(zulu))
	assert.True(t, zulu.IsAfter(plus2))

	next, err := absent.PlusDays(1)
	require.NoError(t, err)
	assert.Equal(t, -1, absent.Compare(next))
}

func TestDateMidnightEpochSecond(t *testing.T) {
	absent, err := DateOf(2023, time.March, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(19_417)*86_400, absent.MidnightEpochSecond(nil))

	// A provider only applies while the offset is absent.
	berlin := FixedZone(civil.MustOffsetOf(1, 0, 0))
	assert.Equal(t, int64(19_417)*86_400-3_600, absent.MidnightEpochSecond(berlin))

	stored := absent.WithOffset(civil.MustOffsetOf(2, 0, 0))
	assert.Equal(t, int64(19_417)*86_400-7_200, stored.MidnightEpochSecond(berlin))
}

func TestDateToOffsetDate(t *testing.T) {
	absent, err := DateOf(2023, time.March, 1)
	require.NoError(t, err)

	assert.Equal(t, "2023-03-01Z", absent.ToOffsetDate(nil).String())

	zp := FixedZone(civil.MustOffsetOf(2, 0, 0))
	assert.Equal(t, "2023-03-01+02:00", absent.ToOffsetDate(zp).String())

	stored := absent.WithOffset(civil.MustOffsetOf(-5, 0, 0))
	assert.Equal(t, "2023-03-01-05:00", stored.ToOffsetDate(zp).String())
}

func TestDateFields(t *testing.T) {
	absent, err := DateOf(2023, time.March, 1)
	require.NoError(t, err)

	// An absent offset reads as zero offset-seconds, not an error.
	sec, err := absent.GetLong(temporal.FieldOffsetSeconds)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sec)
	assert.True(t, absent.IsFieldSupported(temporal.FieldOffsetSeconds))

	doy, err := absent.Get(temporal.FieldDayOfYear)
	require.NoError(t, err)
	assert.Equal(t, 60, doy)

	_, ok := absent.Query(temporal.QueryOffset)
	assert.False(t, ok)

	v, ok := absent.WithOffset(civil.UTC).Query(temporal.QueryOffset)
	require.True(t, ok)
	assert.Equal(t, civil.UTC, v)
}

func TestDateAtTime(t *testing.T) {
	d, err := DateOf(2023, time.March, 1)
	require.NoError(t, err)

	dt := d.AtTime(civil.MustTimeOf(10, 15, 30, 0))
	assert.Equal(t, "2023-03-01T10:15:30", dt.String())
	assert.False(t, dt.HasOffset())

	dt = d.WithOffset(civil.UTC).AtTime(civil.Midnight)
	assert.Equal(t, "2023-03-01T00:00:00Z", dt.String())
}

func TestDateJSON(t *testing.T) {
	type doc struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}

	start, err := ParseDate("2023-03-01+02:00")
	require.NoError(t, err)
	end, err := ParseDate("2023-03-05")
	require.NoError(t, err)

	b, err := json.Marshal(doc{Start: start, End: end})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2023-03-01+02:00","end":"2023-03-05"}`, string(b))

	var back doc
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Start.Equal(start))
	assert.True(t, back.End.Equal(end))
	assert.False(t, back.End.HasOffset())
}

func TestDateYAML(t *testing.T) {
	d, err := ParseDate("2023-03-01+02:00")
	require.NoError(t, err)

	b, err := yaml.Marshal(d)
	require.NoError(t, err)

	var back Date
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.True(t, back.Equal(d))

	var absent Date
	require.NoError(t, yaml.Unmarshal([]byte(`"2023-03-05"`), &absent))
	assert.False(t, absent.HasOffset())
	assert.Equal(t, "2023-03-05", absent.String())
}

func TestDateFromAccessorOptionEquality(t *testing.T) {
	a, err := ParseDate("2023-03-01+02:00")
	require.NoError(t, err)
	b, err := DateFromAccessor(a)
	require.NoError(t, err)
	assert.True(t, optional.Equal(a.Offset(), b.Offset()))
	assert.True(t, a.Equal(b))

	plain, err := ParseDate("2023-03-01")
	require.NoError(t, err)
	c, err := DateFromAccessor(plain)
	require.NoError(t, err)
	assert.False(t, c.HasOffset())
}
