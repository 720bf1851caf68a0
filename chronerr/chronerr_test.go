package chronerr

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with underlying error",
			err:  &Error{Op: "DateOf", Kind: KindInvalidValue, Err: errors.New("day out of range")},
			want: "chronon: DateOf (invalid_value): day out of range",
		},
		{
			name: "without underlying error",
			err:  &Error{Op: "DateTime.Get", Kind: KindUnsupportedField},
			want: "chronon: DateTime.Get: unsupported_field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidValue("DateOf", "day %d out of range", 32)

	if !errors.Is(err, ErrInvalidValue) {
		t.Error("expected errors.Is to match ErrInvalidValue")
	}
	if errors.Is(err, ErrOverflow) {
		t.Error("expected errors.Is not to match ErrOverflow")
	}
	if !errors.Is(err, &Error{Kind: KindInvalidValue}) {
		t.Error("expected kind-only target to match")
	}
	if !errors.Is(err, &Error{Op: "DateOf", Kind: KindInvalidValue}) {
		t.Error("expected op+kind target to match")
	}
	if errors.Is(err, &Error{Op: "TimeOf", Kind: KindInvalidValue}) {
		t.Error("expected mismatched op not to match")
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &Error{Op: "op", Kind: KindOverflow, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected unwrapping to reach the inner error")
	}
}

type fakeField string

func (f fakeField) String() string { return string(f) }

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantKind string
		sentinel error
		contains string
	}{
		{
			name:     "invalid value",
			err:      InvalidValue("TimeOf", "hour %d out of range 0..23", 24),
			wantKind: KindInvalidValue,
			sentinel: ErrInvalidValue,
			contains: "hour 24 out of range",
		},
		{
			name:     "unsupported field",
			err:      UnsupportedField("Time.Get", fakeField("EpochDay")),
			wantKind: KindUnsupportedField,
			sentinel: ErrUnsupportedField,
			contains: "EpochDay",
		},
		{
			name:     "unsupported unit",
			err:      UnsupportedUnit("Time.Plus", fakeField("Months")),
			wantKind: KindUnsupportedUnit,
			sentinel: ErrUnsupportedUnit,
			contains: "Months",
		},
		{
			name:     "overflow",
			err:      Overflow("LocalDate.PlusYears", "year exceeds %d", 999999999),
			wantKind: KindOverflow,
			sentinel: ErrOverflow,
			contains: "999999999",
		},
		{
			name:     "parse",
			err:      Parse("ParseOffset", "+19:00", "offset out of range"),
			wantKind: KindParse,
			sentinel: ErrParse,
			contains: `"+19:00"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.wantKind)
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("expected sentinel %v to match", tt.sentinel)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("message %q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
