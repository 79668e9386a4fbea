package recommend

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/autolytix/fleetcare/core/model"
)

// YearCost is a vehicle's maintenance spend for one calendar year.
type YearCost struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// YearlyCosts aggregates a vehicle's cost-bearing, dated maintenance items
// into per-year totals, sorted by year.
func YearlyCosts(vehicleID int64, items []model.Maintenance) []YearCost {
	byYear := map[int]float64{}
	for _, m := range items {
		if m.VehicleID != vehicleID || m.Cost == nil || m.DueDate == nil {
			continue
		}
		byYear[m.DueDate.Year()] += *m.Cost
	}
	series := make([]YearCost, 0, len(byYear))
	for y, total := range byYear {
		series = append(series, YearCost{Year: y, Total: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series
}

// SpendTrend fits a least-squares line over the yearly totals and returns the
// slope in currency units per year. It reports ok=false when fewer than two
// years of data are available.
func SpendTrend(series []YearCost) (slope float64, ok bool) {
	if len(series) < 2 {
		return 0, false
	}
	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, yc := range series {
		xs[i] = float64(yc.Year)
		ys[i] = yc.Total
	}
	_, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, true
}
