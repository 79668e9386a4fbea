// Package metrics defines the observability events emitted by the fleet
// engine and the sink interface implemented by the infra adapters.
package metrics

import (
	"time"

	"github.com/autolytix/fleetcare/core/model"
)

// MutationEvent records a completed create/update/delete of a fleet entity.
type MutationEvent struct {
	Entity    string // "vehicle" or "maintenance"
	Op        string // "create", "update" or "delete"
	VehicleID int64
	Time      time.Time
}

// StatusChangeEvent records a vehicle status transition produced by the
// aggregator.
type StatusChangeEvent struct {
	VehicleID int64
	Previous  model.VehicleStatus
	Current   model.VehicleStatus
	Time      time.Time
}

// SnapshotEvent records a snapshot save attempt.
type SnapshotEvent struct {
	Vehicles    int
	Maintenance int
	Duration    time.Duration
	Failed      bool
	Time        time.Time
}

// Sink records fleet engine events for observability purposes.
type Sink interface {
	RecordMutation(MutationEvent) error
	RecordStatusChange(StatusChangeEvent) error
	RecordSnapshot(SnapshotEvent) error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RecordMutation(MutationEvent) error         { return nil }
func (NopSink) RecordStatusChange(StatusChangeEvent) error { return nil }
func (NopSink) RecordSnapshot(SnapshotEvent) error         { return nil }
