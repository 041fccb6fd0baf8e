// Package date generates uniformly distributed random instants and durations
// inside caller-specified or default intervals, plus locale-driven month,
// weekday and timezone names. Fixing SystemClock and supplying a fixed Source
// makes every entry point fully deterministic.
package date

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniformly distributed doubles in [0,1), one per call.
// *rand.Rand from math/rand/v2 satisfies it. Implementations shared across
// goroutines must provide their own synchronization.
type Source interface {
	Float64() float64
}

// LocaleData supplies ordered string lists by dotted category key
// (e.g. "month.wide", "weekday.abbr", "address.time_zone").
type LocaleData interface {
	// Has reports whether the key resolves to a list. It never fails.
	Has(key string) bool
	// GetArray returns the ordered list for the key, or an error when the
	// key is unknown or the list is empty.
	GetArray(key string) ([]string, error)
}

// Package-level default source to keep New(data, nil) usable without setup.
var defaultSource Source = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

// Dataset samples dates, times, durations and calendar names. Construct with
// New; the zero value is not usable.
type Dataset struct {
	src  Source
	data LocaleData

	// Capability flags probed once at construction, immutable afterwards.
	hasMonthWideContext   bool
	hasMonthAbbrContext   bool
	hasWeekdayWideContext bool
	hasWeekdayAbbrContext bool
}

// New returns a Dataset drawing from src and resolving calendar names through
// data. A nil src falls back to a package-wide PCG seeded from wall time.
// data may be nil when only interval sampling is needed; the categorical
// entry points then fail.
func New(data LocaleData, src Source) *Dataset {
	if src == nil {
		src = defaultSource
	}
	d := &Dataset{src: src, data: data}
	if data != nil {
		d.hasMonthWideContext = data.Has("month.wide_context")
		d.hasMonthAbbrContext = data.Has("month.abbr_context")
		d.hasWeekdayWideContext = data.Has("weekday.wide_context")
		d.hasWeekdayAbbrContext = data.Has("weekday.abbr_context")
	}
	return d
}

// sampleWithin is the single randomness chokepoint for interval sampling: a
// uniformly distributed fraction of span, truncated to nanosecond ticks.
// Non-positive spans yield zero, so zero-length intervals return their bound.
func (d *Dataset) sampleWithin(span time.Duration) time.Duration {
	if span <= 0 {
		return 0
	}
	return time.Duration(d.src.Float64() * float64(span))
}

// span returns max-min, failing loudly when the difference exceeds the
// representable duration range (time.Sub clamps instead of wrapping).
func span(min, max time.Time) time.Duration {
	total := max.Sub(min)
	if !min.Add(total).Equal(max) {
		panic("date: interval exceeds the representable duration range")
	}
	return total
}

func refOrNow(ref []time.Time) time.Time {
	if len(ref) > 0 {
		return ref[0]
	}
	return SystemClock()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Between returns a random instant in [start, end] (inclusive). Inverted
// arguments are normalized transparently. The result is expressed in the
// first argument's Location even when end is the chronological minimum: the
// caller-supplied zone wins over the normalized ordering.
func (d *Dataset) Between(start, end time.Time) time.Time {
	minDate, maxDate := start, end
	if end.Before(start) {
		minDate, maxDate = end, start
	}
	total := span(minDate, maxDate)
	return minDate.Add(d.sampleWithin(total)).In(start.Location())
}

// Past returns a random instant up to years calendar years before ref. When
// ref is omitted the system clock is consulted. The result never exceeds ref.
func (d *Dataset) Past(years int, ref ...time.Time) time.Time {
	maxDate := refOrNow(ref)
	minDate := maxDate.AddDate(-years, 0, 0)
	return maxDate.Add(-d.sampleWithin(span(minDate, maxDate)))
}

// Future returns a random instant up to years calendar years after ref. When
// ref is omitted the system clock is consulted. The result is never before ref.
func (d *Dataset) Future(years int, ref ...time.Time) time.Time {
	minDate := refOrNow(ref)
	maxDate := minDate.AddDate(years, 0, 0)
	return minDate.Add(d.sampleWithin(span(minDate, maxDate)))
}

// Soon returns a random instant within days calendar days after ref.
func (d *Dataset) Soon(days int, ref ...time.Time) time.Time {
	minDate := refOrNow(ref)
	return d.Between(minDate, minDate.AddDate(0, 0, days))
}

// Recent returns a random instant within days calendar days before ref.
// With days == 0 the lower bound is the start of the clock's current day
// rather than ref itself, so Recent(0) still spans the elapsed part of today.
func (d *Dataset) Recent(days int, ref ...time.Time) time.Time {
	maxDate := refOrNow(ref)
	var minDate time.Time
	if days == 0 {
		minDate = startOfDay(SystemClock())
	} else {
		minDate = maxDate.AddDate(0, 0, -days)
	}
	return maxDate.Add(-d.sampleWithin(span(minDate, maxDate)))
}

// DefaultTimespanLimit bounds Timespan when no explicit maximum is given.
const DefaultTimespanLimit = 7 * 24 * time.Hour

// Timespan returns a random duration in [0, max], defaulting max to
// DefaultTimespanLimit.
func (d *Dataset) Timespan(max ...time.Duration) time.Duration {
	limit := DefaultTimespanLimit
	if len(max) > 0 {
		limit = max[0]
	}
	return d.sampleWithin(limit)
}
