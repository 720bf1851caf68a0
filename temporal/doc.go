// Package temporal provides the field and unit dispatch core shared by the
// chronon value types.
//
// Every value type in the library answers the same three questions through
// this package: which fields and units it supports, what the value of a given
// field is, and what range of values a field accepts. The Accessor interface
// captures the read-only side of that contract; Temporal extends it with unit
// support for arithmetic-capable types.
//
// # Fields and Units
//
// Field and Unit are closed enums covering the ISO calendar system, from
// FieldNanoOfSecond up to FieldYear, plus the offset-seconds and
// instant-seconds pseudo-fields. Application-defined fields and units
// implement FieldSpec or UnitSpec and are consulted through the
// FieldSupported and UnitSupported helpers, which delegate support decisions
// to the spec itself.
//
// # Parsed values
//
// Parsed is a plain bag of field values implementing Accessor. The text
// boundary produces a Parsed from input text; each value type assembles an
// instance from it via its FromAccessor constructor.
//
// # Checked arithmetic
//
// AddInt64, SubInt64 and MulInt64 are overflow-detecting helpers used by all
// calendrical arithmetic in the library. They fail with KindOverflow instead
// of wrapping around.
package temporal
