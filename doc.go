// Package chronon provides immutable date and time value types that extend
// the civil date-time model with an optional UTC offset, as required by
// schema-style serialization where a timezone offset may or may not be
// present.
//
// # Value types
//
// The family has four members:
//
//   - OffsetDate: a civil date with a mandatory UTC offset
//   - Date: a civil date with an optional UTC offset
//   - DateTime: a civil date-time with an optional UTC offset
//   - Time: a wall-clock time with an optional UTC offset
//
// All four are immutable values: every arithmetic, adjustment or conversion
// operation returns a new instance, and instances are safe to share across
// concurrent readers without synchronization.
//
// # Offset semantics
//
// Arithmetic and field mutation are pure civil-clock operations: adding one
// day means the same wall-clock reading one day later at the same offset,
// not 24 hours later on the absolute timeline. The offset's present/absent
// state and value survive every operation except explicit offset-field
// mutation. Two distinct offset-changing operations exist on DateTime and
// Time:
//
//   - WithOffsetSameLocal replaces the offset and keeps the wall clock
//     unchanged, shifting the represented instant.
//   - WithOffsetSameInstant replaces the offset and shifts the wall clock so
//     the represented instant is unchanged.
//
// # Fallback resolution
//
// Operations that need an absolute instant from a value whose offset is
// absent resolve one deterministically: the stored offset if present, else
// the offset a supplied ZoneProvider derives for that specific civil
// date-time (re-derived per value, so daylight-saving transitions are
// honored), else UTC. Ordering operations such as Compare take no provider
// and use the stored-offset-or-UTC resolution so results never depend on
// ambient configuration.
//
// # Equality is a three-way family
//
//	a.Equal(b)       // civil fields AND offset state both equal
//	a.SameInstant(b) // derived instants coincide; offsets may differ
//	a.Compare(b)     // instant ordering, civil tie-break
//
// An absent offset is never Equal to a present one, even when both resolve
// to the same instant under fallback.
//
// # Construction and text
//
//	d, err := chronon.OffsetDateOf(2023, time.March, 1, civil.MustOffsetOf(2, 0, 0))
//	d, err = d.PlusMonths(1) // 2023-04-01+02:00, offset untouched
//
//	dt, err := chronon.ParseDateTime("2023-01-01T10:00:00")
//	dt.HasOffset() // false: absence survives parsing
//
// Every type implements encoding.TextMarshaler/TextUnmarshaler (used by
// encoding/json) and yaml.Marshaler/Unmarshaler, rendering the civil form
// immediately followed by the offset when present and nothing otherwise.
package chronon
