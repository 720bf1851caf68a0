// Package format implements the text boundary of the chronon value types.
//
// A Formatter renders a value through the generic temporal.Accessor surface
// and parses text back into a temporal.Parsed field bag, which the value
// types assemble into instances via their FromAccessor constructors. The
// formatter never constructs value types itself, so it works uniformly for
// every member of the family.
//
// The package ships the canonical ISO-8601/XML-schema formatters (ISODate,
// ISOTime, ISODateTime) in which the offset part is optional on both the
// format and parse sides, plus BasicISODate for the compact digits-only date
// form.
package format
