package status

import (
	"testing"
	"time"

	"github.com/autolytix/fleetcare/core/model"
)

func days(now time.Time, n int) *time.Time {
	d := now.AddDate(0, 0, n)
	return &d
}

func km(v float64) *float64 { return &v }

func TestClassify_OverrideWins(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)
	// The due date is far in the past, yet the pinned state is returned.
	got := Classify(model.DueSpec{Date: days(now, -300)}, km(50000), model.StateCompleted, now)
	if got != model.StateCompleted {
		t.Fatalf("expected completado got %s", got)
	}
	got = Classify(model.DueSpec{}, nil, model.StateUpToDate, now)
	if got != model.StateUpToDate {
		t.Fatalf("expected al-dia got %s", got)
	}
}

func TestClassify_DateBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 30, 0, 0, time.Local)
	cases := []struct {
		name string
		due  *time.Time
		want model.ItemState
	}{
		{"yesterday overdue", days(now, -1), model.StateOverdue},
		{"today upcoming", days(now, 0), model.StateUpcoming},
		{"window edge upcoming", days(now, 7), model.StateUpcoming},
		{"past window up to date", days(now, 8), model.StateUpToDate},
		{"far future up to date", days(now, 200), model.StateUpToDate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(model.DueSpec{Date: c.due}, nil, "", now)
			if got != c.want {
				t.Fatalf("expected %s got %s", c.want, got)
			}
		})
	}
}

func TestClassify_DateIgnoresClockTime(t *testing.T) {
	// An item due early tomorrow morning is one day away regardless of the
	// current wall-clock time.
	now := time.Date(2026, 3, 15, 23, 59, 0, 0, time.Local)
	due := time.Date(2026, 3, 16, 0, 30, 0, 0, time.Local)
	if got := Classify(model.DueSpec{Date: &due}, nil, "", now); got != model.StateUpcoming {
		t.Fatalf("expected proximo got %s", got)
	}
}

func TestClassify_OdometerBoundaries(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name    string
		current float64
		due     float64
		want    model.ItemState
	}{
		{"past reading overdue", 50001, 50000, model.StateOverdue},
		{"at reading upcoming", 50000, 50000, model.StateUpcoming},
		{"inside margin upcoming", 49600, 50000, model.StateUpcoming},
		{"at margin up to date", 49500, 50000, model.StateUpToDate},
		{"far below up to date", 10000, 50000, model.StateUpToDate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(model.DueSpec{Odometer: km(c.due)}, km(c.current), "", now)
			if got != c.want {
				t.Fatalf("expected %s got %s", c.want, got)
			}
		})
	}
}

func TestClassify_OdometerWithoutCurrentReading(t *testing.T) {
	got := Classify(model.DueSpec{Odometer: km(50000)}, nil, "", time.Now())
	if got != model.StateUpcoming {
		t.Fatalf("expected proximo got %s", got)
	}
}

func TestClassify_DateTakesPrecedenceOverOdometer(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)
	// The odometer rule alone would say overdue; the far-away date wins.
	got := Classify(model.DueSpec{Date: days(now, 60), Odometer: km(40000)}, km(45000), "", now)
	if got != model.StateUpToDate {
		t.Fatalf("expected al-dia got %s", got)
	}
}

func TestClassify_NoDueInformation(t *testing.T) {
	if got := Classify(model.DueSpec{}, km(42000), "", time.Now()); got != model.StateUpcoming {
		t.Fatalf("expected proximo got %s", got)
	}
}

func TestClassifyAtSave(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	if got := ClassifyAtSave(nil, now); got != model.StateUpcoming {
		t.Fatalf("missing date: expected proximo got %s", got)
	}
	if got := ClassifyAtSave(days(now, -1), now); got != model.StateOverdue {
		t.Fatalf("yesterday: expected vencido got %s", got)
	}
	if got := ClassifyAtSave(days(now, 0), now); got != model.StateUpcoming {
		t.Fatalf("today: expected proximo got %s", got)
	}
	// The save-time rule never settles a freshly scheduled item: a date far
	// in the future still reads upcoming, where Classify would say al-dia.
	if got := ClassifyAtSave(days(now, 120), now); got != model.StateUpcoming {
		t.Fatalf("far future: expected proximo got %s", got)
	}
	if got := Classify(model.DueSpec{Date: days(now, 120)}, nil, "", now); got != model.StateUpToDate {
		t.Fatalf("read-time far future: expected al-dia got %s", got)
	}
}

func TestDaysBetween_DST(t *testing.T) {
	// Across a spring DST shift a calendar day is 23 hours long; rounding
	// must still count it as one day.
	a := time.Date(2026, 3, 28, 12, 0, 0, 0, time.Local)
	b := time.Date(2026, 3, 29, 12, 0, 0, 0, time.Local)
	if got := daysBetween(a, b); got != 1 {
		t.Fatalf("expected 1 day got %d", got)
	}
}
