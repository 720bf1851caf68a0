package chronon

import "github.com/chronon-dev/chronon/temporal"

// caps parameterizes the shared field/unit dispatch by which parts a value
// type carries. The offset-seconds field is supported by every member of the
// family regardless of whether an offset is currently present: supported
// means settable, not currently non-absent.
type caps struct {
	hasDate bool
	hasTime bool
}

var (
	dateCaps     = caps{hasDate: true}
	timeCaps     = caps{hasTime: true}
	dateTimeCaps = caps{hasDate: true, hasTime: true}
)

func (c caps) fieldSupported(f temporal.Field) bool {
	switch {
	case !f.IsValid():
		return false
	case f == temporal.FieldOffsetSeconds:
		return true
	case f == temporal.FieldInstantSeconds:
		// An instant needs both a date and a time-of-day.
		return c.hasDate && c.hasTime
	case f.IsDateBased():
		return c.hasDate
	default:
		return c.hasTime
	}
}

func (c caps) unitSupported(u temporal.Unit) bool {
	switch {
	case !u.IsValid() || u == temporal.UnitForever:
		return false
	case u.IsDateBased():
		return c.hasDate
	default:
		return c.hasTime
	}
}
