// Package civil provides the civil (offset-free) primitives underneath the
// chronon value types: LocalDate, LocalTime, LocalDateTime and the UTC
// Offset.
//
// A civil value is a calendar date and/or wall-clock reading in the proleptic
// ISO calendar with no attached zone or offset. The standard library's
// time.Time is always an instant in a zone, so these types exist to carry
// partial information without inventing a zone for it. Conversions to and
// from time.Time are provided at the edges; internal date arithmetic runs on
// epoch days and nano-of-day.
//
// All types are immutable values. Constructors validate their inputs and fail
// with KindInvalidValue rather than building an out-of-range value; the zero
// LocalTime is midnight and valid, while the zero LocalDate and LocalDateTime
// are not valid values and must come from a constructor.
package civil
