package format

import (
	"regexp"
	"strings"

	"github.com/chronon-dev/chronon/chronerr"
	"github.com/chronon-dev/chronon/civil"
	"github.com/chronon-dev/chronon/temporal"
)

// Formatter renders values through the generic accessor surface and parses
// text into a field bag. A formatter capable of representing the offset part
// emits it when present and accepts its absence on parse.
type Formatter interface {
	Format(acc temporal.Accessor) (string, error)
	Parse(text string) (*temporal.Parsed, error)
}

// Canonical ISO-8601 formatters with optional offset part.
var (
	// ISODate formats and parses "2023-03-01" optionally followed by an
	// offset, e.g. "2023-03-01+02:00".
	ISODate Formatter = iso{date: true}

	// ISOTime formats and parses "10:15:30" optionally followed by an
	// offset, e.g. "10:15:30Z".
	ISOTime Formatter = iso{time: true}

	// ISODateTime formats and parses "2023-03-01T10:15:30" optionally
	// followed by an offset.
	ISODateTime Formatter = iso{date: true, time: true}

	// BasicISODate formats and parses the compact date form "20230301"
	// with an optional colon-free offset, e.g. "20230301+0200".
	BasicISODate Formatter = iso{date: true, basic: true}
)

// offsetSuffix matches a trailing extended-form offset. The mandatory colon
// keeps it from matching the hyphens of a date body.
var offsetSuffix = regexp.MustCompile(`(Z|z|[+-]\d{2}:\d{2}(?::\d{2})?)$`)

// basicOffsetSuffix matches a trailing colon-free offset after a basic date
// body.
var basicOffsetSuffix = regexp.MustCompile(`(Z|z|[+-]\d{2}(?:\d{2}){0,2})$`)

type iso struct {
	date  bool
	time  bool
	basic bool
}

func (f iso) Format(acc temporal.Accessor) (string, error) {
	const op = "format.Format"
	var b strings.Builder
	if f.date {
		v, ok := acc.Query(temporal.QueryLocalDate)
		if !ok {
			return "", chronerr.UnsupportedField(op, temporal.FieldEpochDay)
		}
		d := v.(civil.LocalDate)
		if f.basic {
			s := d.String()
			b.WriteString(strings.ReplaceAll(s, "-", ""))
		} else {
			b.WriteString(d.String())
		}
	}
	if f.time {
		v, ok := acc.Query(temporal.QueryLocalTime)
		if !ok {
			return "", chronerr.UnsupportedField(op, temporal.FieldNanoOfDay)
		}
		if f.date {
			b.WriteByte('T')
		}
		b.WriteString(v.(civil.LocalTime).String())
	}
	if v, ok := acc.Query(temporal.QueryOffset); ok {
		off := v.(civil.Offset).String()
		if f.basic {
			off = strings.ReplaceAll(off, ":", "")
		}
		b.WriteString(off)
	}
	return b.String(), nil
}

func (f iso) Parse(text string) (*temporal.Parsed, error) {
	const op = "format.Parse"
	body := text
	var offsetStr string

	suffix := offsetSuffix
	if f.basic {
		suffix = basicOffsetSuffix
	}
	if loc := suffix.FindStringIndex(body); loc != nil {
		// A leading sign is a year sign, not an offset.
		if loc[0] > 0 {
			offsetStr = body[loc[0]:]
			body = body[:loc[0]]
		} else if body[0] == 'Z' || body[0] == 'z' {
			return nil, chronerr.Parse(op, text, "value is only an offset")
		}
	}

	p := temporal.NewParsed()
	if f.date {
		dateStr := body
		if f.time {
			sep := strings.IndexByte(body, 'T')
			if sep < 0 {
				return nil, chronerr.Parse(op, text, "missing T separator")
			}
			dateStr = body[:sep]
			body = body[sep+1:]
		}
		if f.basic {
			var err error
			if dateStr, err = expandBasicDate(dateStr); err != nil {
				return nil, chronerr.Parse(op, text, "%v", err)
			}
		}
		d, err := civil.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		putDate(p, d)
	}
	if f.time {
		t, err := civil.ParseTime(body)
		if err != nil {
			return nil, err
		}
		putTime(p, t)
	}
	if offsetStr != "" {
		off, err := civil.ParseOffset(offsetStr)
		if err != nil {
			return nil, err
		}
		if err := p.Put(temporal.FieldOffsetSeconds, int64(off.TotalSeconds())); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// expandBasicDate rewrites "20230301" as "2023-03-01". Years longer than four
// digits keep their explicit sign, e.g. "+100000101".
func expandBasicDate(s string) (string, error) {
	digits := s
	sign := ""
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		sign = string(digits[0])
		digits = digits[1:]
	}
	if len(digits) < 8 {
		return "", chronerr.Parse("expandBasicDate", s, "basic date needs at least eight digits")
	}
	yearLen := len(digits) - 4
	return sign + digits[:yearLen] + "-" + digits[yearLen:yearLen+2] + "-" + digits[yearLen+2:], nil
}

func putDate(p *temporal.Parsed, d civil.LocalDate) {
	// Values from civil.ParseDate are already range-valid.
	_ = p.Put(temporal.FieldYear, int64(d.Year()))
	_ = p.Put(temporal.FieldMonthOfYear, int64(d.Month()))
	_ = p.Put(temporal.FieldDayOfMonth, int64(d.Day()))
}

func putTime(p *temporal.Parsed, t civil.LocalTime) {
	_ = p.Put(temporal.FieldHourOfDay, int64(t.Hour()))
	_ = p.Put(temporal.FieldMinuteOfHour, int64(t.Minute()))
	_ = p.Put(temporal.FieldSecondOfMinute, int64(t.Second()))
	_ = p.Put(temporal.FieldNanoOfSecond, int64(t.Nano()))
}
