// Package status holds the pure rules that classify a maintenance item's
// state and aggregate per-vehicle health from the maintenance set. Functions
// here are total: absent inputs degrade to defined defaults, never errors.
package status

import (
	"math"
	"time"

	"github.com/autolytix/fleetcare/core/model"
)

// UpcomingWindowDays is the number of days ahead of a due date during which
// an item counts as upcoming rather than up to date.
const UpcomingWindowDays = 7

// UpcomingWindowKM is the odometer margin, in km short of the due reading,
// during which an item counts as upcoming.
const UpcomingWindowKM = 500

// Classify returns the state of a maintenance item given its due descriptor,
// the vehicle's current odometer and an optional manual override. The
// override always wins. A date rule takes precedence over the odometer rule;
// an unusable descriptor defaults to upcoming.
func Classify(due model.DueSpec, currentOdometer *float64, override model.ItemState, now time.Time) model.ItemState {
	if override != "" {
		return override
	}
	switch due.Kind() {
	case model.DueByDate, model.DueByBoth:
		days := daysBetween(now, *due.Date)
		switch {
		case days < 0:
			return model.StateOverdue
		case days <= UpcomingWindowDays:
			return model.StateUpcoming
		default:
			return model.StateUpToDate
		}
	case model.DueByOdometer:
		if currentOdometer == nil {
			return model.StateUpcoming
		}
		delta := *currentOdometer - *due.Odometer
		switch {
		case delta > 0:
			return model.StateOverdue
		case delta > -UpcomingWindowKM:
			return model.StateUpcoming
		default:
			return model.StateUpToDate
		}
	default:
		return model.StateUpcoming
	}
}

// ClassifyAtSave is the narrower save-time rule applied when the user asks
// for an automatic state: a target date strictly before today is overdue,
// anything else (including a missing date) is upcoming. A freshly scheduled
// item is never silently settled, so this intentionally never returns
// completed or up to date. Keep it separate from Classify; the two rules
// diverge on purpose.
func ClassifyAtSave(dueDate *time.Time, now time.Time) model.ItemState {
	if dueDate == nil {
		return model.StateUpcoming
	}
	if midnight(*dueDate).Before(midnight(now)) {
		return model.StateOverdue
	}
	return model.StateUpcoming
}

// daysBetween returns the whole calendar days from a to b, comparing both at
// local midnight. Rounding absorbs DST offsets.
func daysBetween(a, b time.Time) int {
	diff := midnight(b).Sub(midnight(a))
	return int(math.Round(diff.Hours() / 24))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
