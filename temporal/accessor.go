package temporal

// Accessor is the read-only surface every chronon value type exposes for
// type-agnostic field access. Get is limited to fields whose range fits in an
// int32; wider fields (epoch-day, instant-seconds, nano-of-day) are readable
// through GetLong only.
//
// Requesting an unsupported field fails with KindUnsupportedField; it never
// returns a sentinel value.
type Accessor interface {
	IsFieldSupported(field Field) bool
	Range(field Field) (ValueRange, error)
	Get(field Field) (int, error)
	GetLong(field Field) (int64, error)
	Query(query Query) (any, bool)
}

// Temporal extends Accessor with unit support, implemented by the
// arithmetic-capable value types.
type Temporal interface {
	Accessor
	IsUnitSupported(unit Unit) bool
}

// Query identifies a capability a generic caller can ask a value for without
// knowing its concrete type.
type Query int

const (
	// QueryChronology yields the calendar system name, always ChronologyISO.
	QueryChronology Query = iota

	// QueryPrecision yields the smallest Unit the value distinguishes.
	QueryPrecision

	// QueryOffset yields the civil.Offset when one is present.
	QueryOffset

	// QueryZone yields a *time.Location derived from the offset, if any.
	QueryZone

	// QueryLocalDate yields the civil.LocalDate of date-bearing values.
	QueryLocalDate

	// QueryLocalTime yields the civil.LocalTime of time-bearing values.
	QueryLocalTime
)

// ChronologyISO is the only calendar system implemented by this library.
const ChronologyISO = "ISO"

var queryNames = [...]string{
	QueryChronology: "Chronology",
	QueryPrecision:  "Precision",
	QueryOffset:     "Offset",
	QueryZone:       "Zone",
	QueryLocalDate:  "LocalDate",
	QueryLocalTime:  "LocalTime",
}

// String returns the query's name.
func (q Query) String() string {
	if q < 0 || int(q) >= len(queryNames) {
		return "Unknown"
	}
	return queryNames[q]
}

// FieldSpec is implemented by application-defined fields. Support and access
// decisions for such fields are delegated to the spec itself rather than
// guessed at by the value types.
type FieldSpec interface {
	IsSupportedBy(acc Accessor) bool
	GetFrom(acc Accessor) (int64, error)
}

// UnitSpec is implemented by application-defined units.
type UnitSpec interface {
	IsSupportedBy(t Temporal) bool
}

// FieldSupported reports whether the accessor supports the given field spec.
// Standard Field values are answered by the accessor directly; custom specs
// answer for themselves.
func FieldSupported(acc Accessor, spec FieldSpec) bool {
	if f, ok := spec.(Field); ok {
		return acc.IsFieldSupported(f)
	}
	return spec.IsSupportedBy(acc)
}

// UnitSupported reports whether the temporal supports the given unit spec.
func UnitSupported(t Temporal, spec UnitSpec) bool {
	if u, ok := spec.(Unit); ok {
		return t.IsUnitSupported(u)
	}
	return spec.IsSupportedBy(t)
}

// IsSupportedBy implements FieldSpec for the standard fields.
func (f Field) IsSupportedBy(acc Accessor) bool {
	return acc.IsFieldSupported(f)
}

// GetFrom implements FieldSpec for the standard fields.
func (f Field) GetFrom(acc Accessor) (int64, error) {
	return acc.GetLong(f)
}

// IsSupportedBy implements UnitSpec for the standard units.
func (u Unit) IsSupportedBy(t Temporal) bool {
	return t.IsUnitSupported(u)
}
