package chronon

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/chronon-dev/chronon/civil"
	"github.com/chronon-dev/chronon/optional"
	"github.com/chronon-dev/chronon/temporal"
)

// buildDateTime assembles a DateTime from raw generator output. The ranges
// used by the properties keep every combination constructible.
func buildDateTime(epochDay, nanoOfDay int64, offsetSeconds int, present bool) (DateTime, bool) {
	d, err := civil.DateFromEpochDay(epochDay)
	if err != nil {
		return DateTime{}, false
	}
	tm, err := civil.TimeFromNanoOfDay(nanoOfDay)
	if err != nil {
		return DateTime{}, false
	}
	off := optional.None[civil.Offset]()
	if present {
		o, err := civil.OffsetOfSeconds(offsetSeconds)
		if err != nil {
			return DateTime{}, false
		}
		off = optional.Some(o)
	}
	return NewDateTime(civil.DateTimeOf(d, tm), off), true
}

var (
	genEpochDay  = gen.Int64Range(-2_000_000, 2_000_000)
	genNanoOfDay = gen.Int64Range(0, 86_399_999_999_999)
	genOffsetSec = gen.IntRange(int(temporal.MinOffsetSeconds), int(temporal.MaxOffsetSeconds))
)

func TestDateTimeTextRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("ParseDateTime(v.String()) equals v", prop.ForAll(
		func(epochDay, nanoOfDay int64, offsetSeconds int, present bool) bool {
			v, ok := buildDateTime(epochDay, nanoOfDay, offsetSeconds, present)
			if !ok {
				return false
			}
			back, err := ParseDateTime(v.String())
			return err == nil && v.Equal(back)
		},
		genEpochDay, genNanoOfDay, genOffsetSec, gen.Bool(),
	))

	properties.Property("ParseOffset(off.String()) equals off", prop.ForAll(
		func(offsetSeconds int) bool {
			off, err := civil.OffsetOfSeconds(offsetSeconds)
			if err != nil {
				return false
			}
			back, err := civil.ParseOffset(off.String())
			return err == nil && back == off
		},
		genOffsetSec,
	))

	properties.TestingRun(t)
}

func TestArithmeticNeverTouchesOffset(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("Plus keeps offset state and inverts cleanly", prop.ForAll(
		func(epochDay, nanoOfDay int64, offsetSeconds int, present bool, amount int64, unitIdx int) bool {
			v, ok := buildDateTime(epochDay, nanoOfDay, offsetSeconds, present)
			if !ok {
				return false
			}
			units := []temporal.Unit{
				temporal.UnitNanos, temporal.UnitSeconds, temporal.UnitMinutes,
				temporal.UnitHours, temporal.UnitDays, temporal.UnitWeeks,
			}
			unit := units[unitIdx%len(units)]
			moved, err := v.Plus(amount, unit)
			if err != nil {
				return false
			}
			if !optional.Equal(moved.Offset(), v.Offset()) {
				return false
			}
			back, err := moved.Minus(amount, unit)
			return err == nil && back.Equal(v)
		},
		genEpochDay, genNanoOfDay, genOffsetSec, gen.Bool(),
		gen.Int64Range(-1_000_000, 1_000_000), gen.IntRange(0, 5),
	))

	properties.Property("TruncatedTo keeps offset state", prop.ForAll(
		func(epochDay, nanoOfDay int64, offsetSeconds int, present bool) bool {
			v, ok := buildDateTime(epochDay, nanoOfDay, offsetSeconds, present)
			if !ok {
				return false
			}
			tr, err := v.TruncatedTo(temporal.UnitMinutes)
			return err == nil &&
				optional.Equal(tr.Offset(), v.Offset()) &&
				tr.Second() == 0 && tr.Nano() == 0
		},
		genEpochDay, genNanoOfDay, genOffsetSec, gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestOffsetMutatorContracts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("WithOffsetSameLocal keeps the wall clock", prop.ForAll(
		func(epochDay, nanoOfDay int64, offsetSeconds int, present bool, newOffsetSeconds int) bool {
			v, ok := buildDateTime(epochDay, nanoOfDay, offsetSeconds, present)
			if !ok {
				return false
			}
			off, err := civil.OffsetOfSeconds(newOffsetSeconds)
			if err != nil {
				return false
			}
			moved := v.WithOffsetSameLocal(off)
			return moved.LocalDateTime().Equal(v.LocalDateTime()) && moved.HasOffset()
		},
		genEpochDay, genNanoOfDay, genOffsetSec, gen.Bool(), genOffsetSec,
	))

	properties.Property("WithOffsetSameInstant keeps the instant", prop.ForAll(
		func(epochDay, nanoOfDay int64, offsetSeconds int, present bool, newOffsetSeconds int) bool {
			v, ok := buildDateTime(epochDay, nanoOfDay, offsetSeconds, present)
			if !ok {
				return false
			}
			off, err := civil.OffsetOfSeconds(newOffsetSeconds)
			if err != nil {
				return false
			}
			moved, err := v.WithOffsetSameInstant(off)
			return err == nil &&
				moved.EpochSecond(nil) == v.EpochSecond(nil) &&
				moved.Nano() == v.Nano()
		},
		genEpochDay, genNanoOfDay, genOffsetSec, gen.Bool(), genOffsetSec,
	))

	properties.TestingRun(t)
}

func TestComparisonFamilyConsistency(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("Equal implies SameInstant and Compare zero", prop.ForAll(
		func(epochDay, nanoOfDay int64, offsetSeconds int, present bool) bool {
			v, ok := buildDateTime(epochDay, nanoOfDay, offsetSeconds, present)
			if !ok {
				return false
			}
			w, _ := buildDateTime(epochDay, nanoOfDay, offsetSeconds, present)
			return v.Equal(w) && v.SameInstant(w) && v.Compare(w) == 0
		},
		genEpochDay, genNanoOfDay, genOffsetSec, gen.Bool(),
	))

	properties.Property("Compare is antisymmetric and instant-consistent", prop.ForAll(
		func(ed1, nod1 int64, off1 int, p1 bool, ed2, nod2 int64, off2 int, p2 bool) bool {
			v, ok := buildDateTime(ed1, nod1, off1, p1)
			if !ok {
				return false
			}
			w, ok := buildDateTime(ed2, nod2, off2, p2)
			if !ok {
				return false
			}
			if v.Compare(w) != -w.Compare(v) {
				return false
			}
			if v.SameInstant(w) != (!v.IsBefore(w) && !v.IsAfter(w)) {
				return false
			}
			// Ordering by instant always dominates.
			if v.IsBefore(w) && v.Compare(w) >= 0 {
				return false
			}
			return true
		},
		genEpochDay, genNanoOfDay, genOffsetSec, gen.Bool(),
		genEpochDay, genNanoOfDay, genOffsetSec, gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestTimeWrapProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("PlusHours wraps and inverts", prop.ForAll(
		func(nanoOfDay, hours int64, offsetSeconds int, present bool) bool {
			tm, err := civil.TimeFromNanoOfDay(nanoOfDay)
			if err != nil {
				return false
			}
			off := optional.None[civil.Offset]()
			if present {
				o, err := civil.OffsetOfSeconds(offsetSeconds)
				if err != nil {
					return false
				}
				off = optional.Some(o)
			}
			v := NewTime(tm, off)
			moved := v.PlusHours(hours)
			return optional.Equal(moved.Offset(), v.Offset()) &&
				moved.PlusHours(-hours).Equal(v)
		},
		genNanoOfDay, gen.Int64Range(-1_000_000, 1_000_000), genOffsetSec, gen.Bool(),
	))

	properties.TestingRun(t)
}
