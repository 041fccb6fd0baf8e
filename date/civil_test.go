package date

import (
	"math/rand/v2"
	"testing"
	"time"
)

func TestDateOnly_String(t *testing.T) {
	d := DateOnly{Year: 2020, Month: time.March, Day: 7}
	if got := d.String(); got != "2020-03-07" {
		t.Errorf("String() = %q, want %q", got, "2020-03-07")
	}
}

func TestTimeOnly_String(t *testing.T) {
	tm := TimeOnly{Hour: 9, Minute: 5, Second: 3}
	if got := tm.String(); got != "09:05:03" {
		t.Errorf("String() = %q, want %q", got, "09:05:03")
	}
}

func TestDateOnlyOf_Truncates(t *testing.T) {
	at := time.Date(2021, time.November, 30, 23, 59, 59, 999, time.UTC)
	want := DateOnly{Year: 2021, Month: time.November, Day: 30}
	if got := DateOnlyOf(at); got != want {
		t.Errorf("DateOnlyOf = %v, want %v", got, want)
	}
}

func TestBetweenDateOnly_Bounds(t *testing.T) {
	d := New(nil, rand.New(rand.NewPCG(21, 22)))
	start := DateOnly{Year: 2018, Month: time.March, Day: 5}
	end := DateOnly{Year: 2018, Month: time.September, Day: 20}

	for i := 0; i < 200; i++ {
		got := d.BetweenDateOnly(start, end)
		gt := got.In(time.UTC)
		if gt.Before(start.In(time.UTC)) || gt.After(end.In(time.UTC)) {
			t.Fatalf("BetweenDateOnly = %v, outside [%v, %v]", got, start, end)
		}
	}
}

func TestBetweenDateOnly_ZeroSpan(t *testing.T) {
	d := New(nil, rand.New(rand.NewPCG(23, 24)))
	day := DateOnly{Year: 2018, Month: time.March, Day: 5}
	if got := d.BetweenDateOnly(day, day); got != day {
		t.Errorf("BetweenDateOnly(day, day) = %v, want %v", got, day)
	}
}

func TestPastDateOnly_Bounds(t *testing.T) {
	d := New(nil, rand.New(rand.NewPCG(25, 26)))
	ref := DateOnly{Year: 2020, Month: time.June, Day: 15}
	floor := DateOnly{Year: 2019, Month: time.June, Day: 15}

	for i := 0; i < 200; i++ {
		got := d.PastDateOnly(1, ref)
		gt := got.In(time.UTC)
		if gt.After(ref.In(time.UTC)) || gt.Before(floor.In(time.UTC)) {
			t.Fatalf("PastDateOnly = %v, outside [%v, %v]", got, floor, ref)
		}
	}
}

func TestFutureDateOnly_Bounds(t *testing.T) {
	d := New(nil, rand.New(rand.NewPCG(27, 28)))
	ref := DateOnly{Year: 2020, Month: time.June, Day: 15}
	ceil := DateOnly{Year: 2021, Month: time.June, Day: 15}

	for i := 0; i < 200; i++ {
		got := d.FutureDateOnly(1, ref)
		gt := got.In(time.UTC)
		if gt.Before(ref.In(time.UTC)) || gt.After(ceil.In(time.UTC)) {
			t.Fatalf("FutureDateOnly = %v, outside [%v, %v]", got, ref, ceil)
		}
	}
}

func TestSoonDateOnly_DefaultRefUsesClockDay(t *testing.T) {
	fixClock(t, time.Date(2020, time.June, 15, 23, 45, 0, 0, time.UTC))
	d := New(nil, fixedSource{0.0})

	want := DateOnly{Year: 2020, Month: time.June, Day: 15}
	if got := d.SoonDateOnly(3); got != want {
		t.Errorf("SoonDateOnly(3) with source 0 = %v, want %v", got, want)
	}
}

func TestRecentDateOnly_ZeroSample(t *testing.T) {
	d := New(nil, fixedSource{0.0})
	ref := DateOnly{Year: 2020, Month: time.June, Day: 15}
	if got := d.RecentDateOnly(3, ref); got != ref {
		t.Errorf("RecentDateOnly(3, ref) with source 0 = %v, want %v", got, ref)
	}
}

func TestBetweenTimeOnly_Bounds(t *testing.T) {
	fixClock(t, time.Date(2021, time.March, 15, 10, 0, 0, 0, time.UTC))
	d := New(nil, rand.New(rand.NewPCG(29, 30)))
	start := TimeOnly{Hour: 9}
	end := TimeOnly{Hour: 17}

	for i := 0; i < 200; i++ {
		got := d.BetweenTimeOnly(start, end)
		if got.Hour < 9 || got.Hour > 17 || (got.Hour == 17 && (got.Minute > 0 || got.Second > 0 || got.Nanosecond > 0)) {
			t.Fatalf("BetweenTimeOnly = %v, outside [09:00, 17:00]", got)
		}
	}
}

func TestSoonTimeOnly_AnchorsToCurrentDay(t *testing.T) {
	fixClock(t, time.Date(2021, time.March, 15, 10, 0, 0, 0, time.UTC))
	d := New(nil, fixedSource{0.5})

	// Anchor is today 23:30; half of the 60-minute span crosses midnight and
	// wraps through the time-of-day projection.
	got := d.SoonTimeOnly(60, TimeOnly{Hour: 23, Minute: 30})
	want := TimeOnly{Hour: 0, Minute: 0}
	if got != want {
		t.Errorf("SoonTimeOnly(60, 23:30) = %v, want %v", got, want)
	}
}

func TestSoonTimeOnly_DefaultRefIsClockTime(t *testing.T) {
	fixClock(t, time.Date(2021, time.March, 15, 12, 0, 0, 0, time.UTC))
	d := New(nil, fixedSource{0.0})

	got := d.SoonTimeOnly(30)
	want := TimeOnly{Hour: 12}
	if got != want {
		t.Errorf("SoonTimeOnly(30) with source 0 = %v, want %v", got, want)
	}
}

func TestRecentTimeOnly_HalfSpan(t *testing.T) {
	fixClock(t, time.Date(2021, time.March, 15, 10, 0, 0, 0, time.UTC))
	d := New(nil, fixedSource{0.5})

	got := d.RecentTimeOnly(60, TimeOnly{Hour: 10})
	want := TimeOnly{Hour: 9, Minute: 30}
	if got != want {
		t.Errorf("RecentTimeOnly(60, 10:00) = %v, want %v", got, want)
	}
}
