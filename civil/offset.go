package civil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/temporal"
)

// Offset is a fixed UTC offset in signed seconds east of Greenwich, bounded
// to +/-18:00. The zero value is UTC.
type Offset int32

// UTC is the zero offset.
const UTC Offset = 0

// OffsetOfSeconds creates an Offset from a total number of seconds.
func OffsetOfSeconds(seconds int) (Offset, error) {
	if seconds < temporal.MinOffsetSeconds || seconds > temporal.MaxOffsetSeconds {
		return 0, chronerr.InvalidValue("OffsetOfSeconds", "offset %d outside range %d..%d seconds",
			seconds, temporal.MinOffsetSeconds, temporal.MaxOffsetSeconds)
	}
	return Offset(seconds), nil
}

// OffsetOf creates an Offset from hour, minute and second components. The
// components must share one sign and stay within +/-18:00.
func OffsetOf(hours, minutes, seconds int) (Offset, error) {
	const op = "OffsetOf"
	if hours > 0 && (minutes < 0 || seconds < 0) ||
		hours < 0 && (minutes > 0 || seconds > 0) ||
		minutes > 0 && seconds < 0 ||
		minutes < 0 && seconds > 0 {
		return 0, chronerr.InvalidValue(op, "offset components %d:%d:%d have mixed signs", hours, minutes, seconds)
	}
	if minutes < -59 || minutes > 59 {
		return 0, chronerr.InvalidValue(op, "offset minutes %d outside range -59..59", minutes)
	}
	if seconds < -59 || seconds > 59 {
		return 0, chronerr.InvalidValue(op, "offset seconds %d outside range -59..59", seconds)
	}
	return OffsetOfSeconds(hours*3600 + minutes*60 + seconds)
}

// MustOffsetOf is like OffsetOf but panics on invalid components. Intended
// for constants and tests.
func MustOffsetOf(hours, minutes, seconds int) Offset {
	o, err := OffsetOf(hours, minutes, seconds)
	if err != nil {
		panic(err)
	}
	return o
}

// TotalSeconds returns the offset as signed seconds east of UTC.
func (o Offset) TotalSeconds() int {
	return int(o)
}

// Location returns an offset-only *time.Location equivalent to o.
func (o Offset) Location() *time.Location {
	if o == 0 {
		return time.UTC
	}
	return time.FixedZone("", int(o))
}

// OffsetFromTime extracts the fixed offset in effect for t in its location.
func OffsetFromTime(t time.Time) Offset {
	_, sec := t.Zone()
	return Offset(sec)
}

// Compare returns -1, 0 or +1 comparing the total seconds of two offsets.
func (o Offset) Compare(other Offset) int {
	return temporal.CompareInt64(int64(o), int64(other))
}

// String renders the offset in canonical form: "Z" for UTC, otherwise
// +/-hh:mm with a :ss part only when the offset has a seconds component.
func (o Offset) String() string {
	if o == 0 {
		return "Z"
	}
	sec := int(o)
	sign := "+"
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	if sec%60 == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, sec/3600, sec/60%60)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, sec/3600, sec/60%60, sec%60)
}

// ParseOffset parses an offset in canonical or basic form: "Z", "+hh:mm",
// "+hh:mm:ss", "+hhmm" or "+hhmmss".
func ParseOffset(s string) (Offset, error) {
	const op = "ParseOffset"
	if s == "Z" || s == "z" {
		return UTC, nil
	}
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return 0, chronerr.Parse(op, s, "offset must be Z or start with a sign")
	}
	negative := s[0] == '-'
	body := strings.ReplaceAll(s[1:], ":", "")
	if len(body) != 2 && len(body) != 4 && len(body) != 6 {
		return 0, chronerr.Parse(op, s, "offset digits must form hh, hhmm or hhmmss")
	}
	var parts [3]int
	for i := 0; i*2 < len(body); i++ {
		v, err := strconv.Atoi(body[i*2 : i*2+2])
		if err != nil {
			return 0, chronerr.Parse(op, s, "non-numeric offset component")
		}
		parts[i] = v
	}
	if parts[1] > 59 || parts[2] > 59 {
		return 0, chronerr.Parse(op, s, "offset minutes and seconds must be 00..59")
	}
	total := parts[0]*3600 + parts[1]*60 + parts[2]
	if negative {
		total = -total
	}
	o, err := OffsetOfSeconds(total)
	if err != nil {
		return 0, chronerr.Parse(op, s, "offset outside range +/-18:00")
	}
	return o, nil
}
