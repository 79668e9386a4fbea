package fleet

import (
	"time"

	"github.com/autolytix/fleetcare/core/model"
)

// StatusEvent describes a vehicle status transition. EventID is assigned by
// the publisher.
type StatusEvent struct {
	EventID   string              `json:"event_id,omitempty"`
	VehicleID int64               `json:"vehicle_id"`
	Plate     string              `json:"plate"`
	Previous  model.VehicleStatus `json:"previous"`
	Current   model.VehicleStatus `json:"current"`
	Time      time.Time           `json:"time"`
}

// StatusPublisher notifies external consumers of vehicle status transitions.
type StatusPublisher interface {
	PublishStatusChange(StatusEvent) error
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChange(StatusEvent) error { return nil }
