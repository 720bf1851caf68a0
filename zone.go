package chronon

import (
	"time"

	"github.com/chronon-dev/chronon/civil"
	"github.com/chronon-dev/chronon/optional"
)

// ZoneProvider derives the UTC offset in effect for a specific civil
// date-time. It is the fallback used when a value stores no offset of its
// own; passing it explicitly keeps fallback resolution deterministic and
// testable instead of depending on process-wide configuration.
//
// A nil ZoneProvider everywhere means UTC, the last-resort fallback.
type ZoneProvider interface {
	OffsetAt(dt civil.LocalDateTime) civil.Offset
}

type locationZone struct {
	loc *time.Location
}

// LocationZone returns a ZoneProvider backed by a time.Location. The offset
// is re-derived for every civil date-time asked about, so values on either
// side of a daylight-saving transition resolve to different offsets. Gaps
// and overlaps at the transition itself resolve by the location's own rule,
// as implemented by time.Date.
func LocationZone(loc *time.Location) ZoneProvider {
	if loc == nil {
		loc = time.UTC
	}
	return locationZone{loc: loc}
}

func (z locationZone) OffsetAt(dt civil.LocalDateTime) civil.Offset {
	d, t := dt.Date(), dt.Time()
	ref := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), t.Nano(), z.loc)
	return civil.OffsetFromTime(ref)
}

type fixedZone struct {
	offset civil.Offset
}

// FixedZone returns a ZoneProvider that reports the same offset for every
// civil date-time.
func FixedZone(offset civil.Offset) ZoneProvider {
	return fixedZone{offset: offset}
}

func (z fixedZone) OffsetAt(civil.LocalDateTime) civil.Offset {
	return z.offset
}

// resolveOffset applies the fallback order: stored offset, then the
// provider's offset for this civil date-time, then UTC.
func resolveOffset(stored optional.Option[civil.Offset], dt civil.LocalDateTime, zp ZoneProvider) civil.Offset {
	if off, ok := stored.Get(); ok {
		return off
	}
	if zp != nil {
		return zp.OffsetAt(dt)
	}
	return civil.UTC
}
