package fleet

import "github.com/autolytix/fleetcare/core/model"

// Snapshot is the whole persisted state: two independently keyed arrays.
// Calendar tasks are a rebuildable mirror and are not part of it.
type Snapshot struct {
	Vehicles    []model.Vehicle     `json:"vehicles"`
	Maintenance []model.Maintenance `json:"maintenance"`
}

// SnapshotStore is the persistence collaborator. Writes are synchronous and
// whole-snapshot; Load is expected to fall back to a seed dataset rather
// than fail on missing or corrupt data.
type SnapshotStore interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}
