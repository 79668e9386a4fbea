package model

import "time"

// Maintenance represents a single scheduled or completed service obligation
// tied to one vehicle. Dates serialize as RFC 3339 strings.
type Maintenance struct {
	ID          int64      `json:"id"`
	VehicleID   int64      `json:"vehicle_id"`
	Type        string     `json:"type"`
	DueLabel    string     `json:"due_label"` // human-readable due descriptor
	State       ItemState  `json:"state"`
	StateText   string     `json:"state_text"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	DueOdometer *float64   `json:"due_odometer,omitempty"`
	Cost        *float64   `json:"cost,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// Due returns the item's due descriptor as a DueSpec.
func (m Maintenance) Due() DueSpec {
	return DueSpec{Date: m.DueDate, Odometer: m.DueOdometer}
}

// DueKind discriminates the shapes a due descriptor can take.
type DueKind int

const (
	DueUnspecified DueKind = iota
	DueByDate
	DueByOdometer
	DueByBoth
)

// DueSpec is the due descriptor of a maintenance item: a target date, a
// target odometer reading, both, or neither.
type DueSpec struct {
	Date     *time.Time
	Odometer *float64
}

// Kind returns the variant of the descriptor.
func (d DueSpec) Kind() DueKind {
	switch {
	case d.Date != nil && d.Odometer != nil:
		return DueByBoth
	case d.Date != nil:
		return DueByDate
	case d.Odometer != nil:
		return DueByOdometer
	default:
		return DueUnspecified
	}
}
