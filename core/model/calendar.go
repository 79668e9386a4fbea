package model

import "time"

// CalendarTask is a denormalized, calendar-facing mirror of a due maintenance
// obligation. MaintenanceID links the task to the item it mirrors; tasks
// created directly through the calendar surface carry no link.
type CalendarTask struct {
	ID            int64     `json:"id"`
	MaintenanceID int64     `json:"maintenance_id,omitempty"`
	VehicleID     int64     `json:"vehicle_id"`
	VehicleLabel  string    `json:"vehicle"`
	Type          string    `json:"type"`
	Date          time.Time `json:"date"`
	Odometer      *float64  `json:"odometer,omitempty"`
	State         ItemState `json:"state"`
}
