// Package recommend produces the fleet-renewal advisory for a vehicle from
// its age, mileage and maintenance cost history. The engine is pure and
// read-only; insufficient data is a named result, not an error.
package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/autolytix/fleetcare/core/model"
)

// Level is the advisory bucket. The values are wire identifiers.
type Level string

const (
	LevelKeep         Level = "mantener"
	LevelWatch        Level = "vigilar"
	LevelReplace      Level = "valorar-cambio"
	LevelInsufficient Level = "insuficientes"
)

// Metrics are the figures a recommendation was derived from.
type Metrics struct {
	AgeYears         int     `json:"age_years"`
	TotalCost        float64 `json:"total_cost"`
	AvgAnnualCost    float64 `json:"avg_annual_cost"`
	Last12MonthsCost float64 `json:"last_12_months_cost"`
	CostRatio        float64 `json:"cost_ratio"`
	YearsWithData    int     `json:"years_with_data"`
}

// Recommendation is an ephemeral, non-persisted advisory for one vehicle.
type Recommendation struct {
	Level   Level   `json:"level"`
	Reason  string  `json:"reason"`
	Metrics Metrics `json:"metrics"`
}

// Thresholds tune the decision guards. Zero values are filled by
// SetDefaults, so a partially specified configuration is usable.
type Thresholds struct {
	// ReplaceAge is the vehicle age, in years, at which replacement should
	// be considered.
	ReplaceAge int `json:"replace_age"`
	// ReplaceRatio is the cost ratio (trailing 12 months over historical
	// annual average) that triggers the replacement advice.
	ReplaceRatio float64 `json:"replace_ratio"`
	// ReplaceMileage is the odometer reading, in km, that triggers the
	// replacement advice.
	ReplaceMileage float64 `json:"replace_mileage"`
	// WatchRatio is the cost ratio that puts a vehicle under watch.
	WatchRatio float64 `json:"watch_ratio"`
	// WatchAgeMin and WatchAgeMax bound the age range, in years, where
	// repairs tend to increase.
	WatchAgeMin int `json:"watch_age_min"`
	WatchAgeMax int `json:"watch_age_max"`
}

// SetDefaults fills unset thresholds with the standard values.
func (t *Thresholds) SetDefaults() {
	if t.ReplaceAge == 0 {
		t.ReplaceAge = 8
	}
	if t.ReplaceRatio == 0 {
		t.ReplaceRatio = 1.5
	}
	if t.ReplaceMileage == 0 {
		t.ReplaceMileage = 150000
	}
	if t.WatchRatio == 0 {
		t.WatchRatio = 1.3
	}
	if t.WatchAgeMin == 0 {
		t.WatchAgeMin = 5
	}
	if t.WatchAgeMax == 0 {
		t.WatchAgeMax = 7
	}
}

// Validate checks threshold consistency.
func (t Thresholds) Validate() error {
	if t.WatchAgeMin > t.WatchAgeMax {
		return fmt.Errorf("watch_age_min %d exceeds watch_age_max %d", t.WatchAgeMin, t.WatchAgeMax)
	}
	if t.WatchRatio > t.ReplaceRatio {
		return fmt.Errorf("watch_ratio %.2f exceeds replace_ratio %.2f", t.WatchRatio, t.ReplaceRatio)
	}
	return nil
}

// Engine evaluates recommendations against a set of thresholds.
type Engine struct {
	t Thresholds
}

// NewEngine returns an engine using the given thresholds, filling defaults.
func NewEngine(t Thresholds) Engine {
	t.SetDefaults()
	return Engine{t: t}
}

// Recommend derives the advisory for the vehicle from the full maintenance
// collection. The guards short-circuit in order: insufficient history,
// consider replacement, watch, keep. When several sub-conditions of the same
// level hold, all are named in the justification.
func (e Engine) Recommend(v model.Vehicle, items []model.Maintenance, now time.Time) Recommendation {
	m := computeMetrics(v, items, now)
	mileage := v.Mileage()

	if m.YearsWithData < 1 {
		return Recommendation{
			Level:   LevelInsufficient,
			Reason:  "Not enough maintenance history to offer guidance yet. Keep recording operations to get a recommendation.",
			Metrics: m,
		}
	}

	if m.AgeYears >= e.t.ReplaceAge || m.CostRatio >= e.t.ReplaceRatio || mileage >= e.t.ReplaceMileage {
		var reasons []string
		if m.AgeYears >= e.t.ReplaceAge {
			reasons = append(reasons, fmt.Sprintf("an age of %d years", m.AgeYears))
		}
		if m.CostRatio >= e.t.ReplaceRatio {
			reasons = append(reasons, "recent spend well above the historical average")
		}
		if mileage >= e.t.ReplaceMileage {
			reasons = append(reasons, "high mileage")
		}
		return Recommendation{
			Level: LevelReplace,
			Reason: fmt.Sprintf("Given %s, it may be time to consider replacing this vehicle. This advice is indicative; the decision depends on your situation and usage.",
				strings.Join(reasons, ", ")),
			Metrics: m,
		}
	}

	if m.CostRatio >= e.t.WatchRatio || (m.AgeYears >= e.t.WatchAgeMin && m.AgeYears <= e.t.WatchAgeMax) {
		var reasons []string
		if m.CostRatio >= e.t.WatchRatio {
			reasons = append(reasons, "spend over the last 12 months exceeds the historical average")
		}
		if m.AgeYears >= e.t.WatchAgeMin && m.AgeYears <= e.t.WatchAgeMax {
			reasons = append(reasons, "its age is in a range where repairs tend to increase")
		}
		return Recommendation{
			Level: LevelWatch,
			Reason: fmt.Sprintf("This vehicle deserves attention: %s. Planning inspections and reviewing the maintenance budget may help.",
				strings.Join(reasons, "; ")),
			Metrics: m,
		}
	}

	return Recommendation{
		Level:   LevelKeep,
		Reason:  "Maintenance spend remains stable and within expectations for the vehicle's age and usage. No signals suggest a replacement.",
		Metrics: m,
	}
}

func computeMetrics(v model.Vehicle, items []model.Maintenance, now time.Time) Metrics {
	var total float64
	years := map[int]struct{}{}
	cutoff := now.AddDate(0, -12, 0)
	var last12 float64
	for _, m := range items {
		if m.VehicleID != v.ID || m.Cost == nil {
			continue
		}
		total += *m.Cost
		if m.DueDate == nil {
			continue
		}
		years[m.DueDate.Year()] = struct{}{}
		if !m.DueDate.Before(cutoff) && !m.DueDate.After(now) {
			last12 += *m.Cost
		}
	}
	avg := 0.0
	if len(years) > 0 {
		avg = total / float64(len(years))
	}
	ratio := 0.0
	if avg > 0 {
		ratio = last12 / avg
	}
	return Metrics{
		AgeYears:         now.Year() - v.Year,
		TotalCost:        total,
		AvgAnnualCost:    avg,
		Last12MonthsCost: last12,
		CostRatio:        ratio,
		YearsWithData:    len(years),
	}
}
