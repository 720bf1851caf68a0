package civil

import (
	"errors"
	"testing"
	"time"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/temporal"
)

func mustDateTime(t *testing.T, s string) LocalDateTime {
	t.Helper()
	dt, err := ParseDateTime(s)
	if err != nil {
		t.Fatalf("ParseDateTime(%q) failed: %v", s, err)
	}
	return dt
}

func TestDateTime_EpochSecond(t *testing.T) {
	dt := MustDateOf(1970, time.January, 1).At(Midnight)
	if got := dt.EpochSecond(UTC); got != 0 {
		t.Errorf("EpochSecond(UTC) = %d, want 0", got)
	}
	if got := dt.EpochSecond(MustOffsetOf(2, 0, 0)); got != -7200 {
		t.Errorf("EpochSecond(+02:00) = %d, want -7200", got)
	}
	if got := dt.EpochSecond(MustOffsetOf(-5, 0, 0)); got != 18000 {
		t.Errorf("EpochSecond(-05:00) = %d, want 18000", got)
	}
}

func TestDateTimeFromEpochSecond(t *testing.T) {
	dt, err := DateTimeFromEpochSecond(0, 0, UTC)
	if err != nil {
		t.Fatal(err)
	}
	if !dt.Equal(MustDateOf(1970, time.January, 1).At(Midnight)) {
		t.Errorf("FromEpochSecond(0, UTC) = %v, want 1970-01-01T00:00:00", dt)
	}

	// The same instant expressed at +02:00 reads two hours later on the wall.
	dt, err = DateTimeFromEpochSecond(0, 0, MustOffsetOf(2, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !dt.Equal(MustDateOf(1970, time.January, 1).At(MustTimeOf(2, 0, 0, 0))) {
		t.Errorf("FromEpochSecond(0, +02:00) = %v, want 1970-01-01T02:00:00", dt)
	}

	// Negative instants land on the previous day west of Greenwich.
	dt, err = DateTimeFromEpochSecond(-1, 500, UTC)
	if err != nil {
		t.Fatal(err)
	}
	if !dt.Equal(MustDateOf(1969, time.December, 31).At(MustTimeOf(23, 59, 59, 500))) {
		t.Errorf("FromEpochSecond(-1, UTC) = %v, want 1969-12-31T23:59:59.000000500", dt)
	}

	if _, err := DateTimeFromEpochSecond(0, 1_000_000_000, UTC); !errors.Is(err, chronerr.ErrInvalidValue) {
		t.Errorf("expected invalid value error for nano overflow, got %v", err)
	}
}

func TestDateTime_EpochSecondRoundTrip(t *testing.T) {
	offsets := []Offset{UTC, MustOffsetOf(2, 0, 0), MustOffsetOf(-9, -30, 0)}
	values := []LocalDateTime{
		MustDateOf(2023, time.March, 1).At(MustTimeOf(10, 15, 30, 0)),
		MustDateOf(1969, time.July, 20).At(MustTimeOf(20, 17, 40, 0)),
		MustDateOf(1, time.January, 1).At(Midnight),
	}

	for _, off := range offsets {
		for _, v := range values {
			sec := v.EpochSecond(off)
			back, err := DateTimeFromEpochSecond(sec, v.Time().Nano(), off)
			if err != nil {
				t.Fatalf("round trip of %v at %v failed: %v", v, off, err)
			}
			if !back.Equal(v) {
				t.Errorf("round trip of %v at %v yielded %v", v, off, back)
			}
		}
	}
}

func TestDateTime_PlusClockRollsDate(t *testing.T) {
	dt := mustDateTime(t, "2023-03-01T23:30:00")

	got, err := dt.PlusHours(2)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2023-03-02T01:30:00" {
		t.Errorf("PlusHours(2) = %v, want 2023-03-02T01:30:00", got)
	}

	got, err = dt.PlusMinutes(-31 * 60)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2023-02-28T16:30:00" {
		t.Errorf("PlusMinutes(-1860) = %v, want 2023-02-28T16:30:00", got)
	}

	got, err = dt.PlusSeconds(30 * 60)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2023-03-02T00:00:00" {
		t.Errorf("PlusSeconds(1800) = %v, want 2023-03-02T00:00:00", got)
	}

	got, err = dt.PlusNanos(-1)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2023-03-01T23:29:59.999999999" {
		t.Errorf("PlusNanos(-1) = %v, want 2023-03-01T23:29:59.999999999", got)
	}
}

func TestDateTime_Plus_Units(t *testing.T) {
	dt := mustDateTime(t, "2023-01-31T12:00:00")

	tests := []struct {
		unit   temporal.Unit
		amount int64
		want   string
	}{
		{temporal.UnitNanos, 500, "2023-01-31T12:00:00.0000005"},
		{temporal.UnitMicros, 250, "2023-01-31T12:00:00.00025"},
		{temporal.UnitMillis, 1_500, "2023-01-31T12:00:01.5"},
		{temporal.UnitSeconds, 86_400, "2023-02-01T12:00:00"},
		{temporal.UnitMinutes, -30, "2023-01-31T11:30:00"},
		{temporal.UnitHours, 13, "2023-02-01T01:00:00"},
		{temporal.UnitDays, 1, "2023-02-01T12:00:00"},
		{temporal.UnitMonths, 1, "2023-02-28T12:00:00"},
		{temporal.UnitYears, 1, "2024-01-31T12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got, err := dt.Plus(tt.amount, tt.unit)
			if err != nil {
				t.Fatal(err)
			}
			want := mustDateTime(t, tt.want)
			if !got.Equal(want) {
				t.Errorf("Plus(%d, %v) = %v, want %v", tt.amount, tt.unit, got, want)
			}
		})
	}

	if _, err := dt.Plus(1, temporal.UnitForever); !errors.Is(err, chronerr.ErrUnsupportedUnit) {
		t.Errorf("expected unsupported unit error, got %v", err)
	}
}

func TestDateTime_TruncatedTo(t *testing.T) {
	dt := mustDateTime(t, "2023-03-01T10:15:30.123456789")

	got, err := dt.TruncatedTo(temporal.UnitHours)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2023-03-01T10:00:00" {
		t.Errorf("TruncatedTo(Hours) = %v, want 2023-03-01T10:00:00", got)
	}

	got, err = dt.TruncatedTo(temporal.UnitDays)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2023-03-01T00:00:00" {
		t.Errorf("TruncatedTo(Days) = %v, want midnight", got)
	}

	if _, err := dt.TruncatedTo(temporal.UnitMonths); !errors.Is(err, chronerr.ErrUnsupportedUnit) {
		t.Errorf("expected unsupported unit error, got %v", err)
	}
}

func TestDateTime_Compare(t *testing.T) {
	a := mustDateTime(t, "2023-03-01T10:00:00")
	b := mustDateTime(t, "2023-03-01T11:00:00")
	c := mustDateTime(t, "2023-03-02T09:00:00")

	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare should order by time within a day")
	}
	if b.Compare(c) != -1 {
		t.Error("Compare should order by date first")
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "2023-03-01T10:15:30"},
		{input: "2023-03-01T10:15:30.5"},
		{input: "-0044-03-15T12:00"},
		{input: "2023-03-01 10:15:30", wantErr: true},
		{input: "2023-03-01", wantErr: true},
		{input: "T10:15:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDateTime(tt.input)
			if tt.wantErr {
				if !errors.Is(err, chronerr.ErrParse) {
					t.Errorf("expected parse error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDateTimeFromTime(t *testing.T) {
	ref := time.Date(2023, time.March, 1, 10, 15, 30, 500, time.FixedZone("", 7200))
	dt := DateTimeFromTime(ref)
	want := MustDateOf(2023, time.March, 1).At(MustTimeOf(10, 15, 30, 500))
	if !dt.Equal(want) {
		t.Errorf("DateTimeFromTime() = %v, want %v", dt, want)
	}
}
