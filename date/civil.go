package date

import (
	"fmt"
	"time"
)

// DateOnly is a calendar date without time-of-day or zone information, a
// coarse view over time.Time for callers that only care about the day.
type DateOnly struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOnlyOf truncates t to its calendar date.
func DateOnlyOf(t time.Time) DateOnly {
	y, m, d := t.Date()
	return DateOnly{Year: y, Month: m, Day: d}
}

// In returns the date at midnight in the given location.
func (d DateOnly) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d DateOnly) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TimeOnly is a time of day without date or zone information.
type TimeOnly struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// TimeOnlyOf truncates t to its time of day.
func TimeOnlyOf(t time.Time) TimeOnly {
	h, m, s := t.Clock()
	return TimeOnly{Hour: h, Minute: m, Second: s, Nanosecond: t.Nanosecond()}
}

// On places the time of day on the given instant's calendar day and location.
func (tm TimeOnly) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		tm.Hour, tm.Minute, tm.Second, tm.Nanosecond, day.Location())
}

func (tm TimeOnly) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", tm.Hour, tm.Minute, tm.Second)
}

// refDateAnchor resolves a variadic DateOnly reference to a midnight-anchored
// instant. Explicit dates anchor in the local zone; the default reads the
// clock once and floors it in the clock's own zone.
func refDateAnchor(ref []DateOnly) time.Time {
	if len(ref) > 0 {
		return ref[0].In(time.Local)
	}
	return startOfDay(SystemClock())
}

// BetweenDateOnly returns a random date in [start, end], in either order.
func (d *Dataset) BetweenDateOnly(start, end DateOnly) DateOnly {
	return DateOnlyOf(d.Between(start.In(time.Local), end.In(time.Local)))
}

// PastDateOnly returns a random date up to years calendar years before ref.
func (d *Dataset) PastDateOnly(years int, ref ...DateOnly) DateOnly {
	return DateOnlyOf(d.Past(years, refDateAnchor(ref)))
}

// FutureDateOnly returns a random date up to years calendar years after ref.
func (d *Dataset) FutureDateOnly(years int, ref ...DateOnly) DateOnly {
	return DateOnlyOf(d.Future(years, refDateAnchor(ref)))
}

// SoonDateOnly returns a random date within days calendar days after ref.
func (d *Dataset) SoonDateOnly(days int, ref ...DateOnly) DateOnly {
	return DateOnlyOf(d.Soon(days, refDateAnchor(ref)))
}

// RecentDateOnly returns a random date within days calendar days before ref.
func (d *Dataset) RecentDateOnly(days int, ref ...DateOnly) DateOnly {
	return DateOnlyOf(d.Recent(days, refDateAnchor(ref)))
}

// BetweenTimeOnly returns a random time of day in [start, end], both anchored
// to the clock's current day.
func (d *Dataset) BetweenTimeOnly(start, end TimeOnly) TimeOnly {
	day := startOfDay(SystemClock())
	return TimeOnlyOf(d.Between(start.On(day), end.On(day)))
}

// SoonTimeOnly returns a random time of day within mins minutes after ref.
// The working instant is always built on the clock's current day plus the
// reference time of day, never on any day the reference may have come from;
// spans crossing midnight wrap through the projection.
func (d *Dataset) SoonTimeOnly(mins int, ref ...TimeOnly) TimeOnly {
	now := SystemClock()
	refTime := TimeOnlyOf(now)
	if len(ref) > 0 {
		refTime = ref[0]
	}
	anchor := refTime.On(now)
	return TimeOnlyOf(d.Between(anchor, anchor.Add(time.Duration(mins)*time.Minute)))
}

// RecentTimeOnly returns a random time of day within mins minutes before ref,
// anchored to the clock's current day like SoonTimeOnly.
func (d *Dataset) RecentTimeOnly(mins int, ref ...TimeOnly) TimeOnly {
	now := SystemClock()
	refTime := TimeOnlyOf(now)
	if len(ref) > 0 {
		refTime = ref[0]
	}
	anchor := refTime.On(now)
	return TimeOnlyOf(d.Between(anchor.Add(-time.Duration(mins)*time.Minute), anchor))
}
