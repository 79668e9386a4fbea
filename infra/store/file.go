// Package store persists the fleet snapshot as two independently keyed JSON
// array files on disk. There is no schema version: loading tolerates
// array-shaped, non-empty JSON and otherwise falls back to seeding the demo
// fleet, never overwriting user data that parsed correctly.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/autolytix/fleetcare/core/fleet"
	"github.com/autolytix/fleetcare/core/model"
	"github.com/autolytix/fleetcare/infra/logger"
)

const (
	vehiclesFile    = "vehicles.json"
	maintenanceFile = "maintenance.json"
)

// FileStore implements fleet.SnapshotStore on a data directory.
type FileStore struct {
	dir string
	log logger.Logger
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, log: logger.New("store")}
}

// Load restores the snapshot from disk. Missing, corrupt or empty files fall
// back to the seed dataset, which is persisted immediately so the next load
// finds it.
func (s *FileStore) Load() (fleet.Snapshot, error) {
	var (
		vehicles []model.Vehicle
		items    []model.Maintenance
	)
	vOK := readArray(filepath.Join(s.dir, vehiclesFile), &vehicles) && len(vehicles) > 0
	mOK := readArray(filepath.Join(s.dir, maintenanceFile), &items) && len(items) > 0
	if vOK && mOK {
		return fleet.Snapshot{Vehicles: vehicles, Maintenance: items}, nil
	}
	s.log.Infof("no usable snapshot in %s, seeding demo fleet", s.dir)
	seed := SeedSnapshot()
	if err := s.Save(seed); err != nil {
		return fleet.Snapshot{}, fmt.Errorf("persist seed: %w", err)
	}
	return seed, nil
}

// Save writes both arrays atomically (temp file + rename per file).
func (s *FileStore) Save(snap fleet.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := writeArray(filepath.Join(s.dir, vehiclesFile), snap.Vehicles); err != nil {
		return fmt.Errorf("write vehicles: %w", err)
	}
	if err := writeArray(filepath.Join(s.dir, maintenanceFile), snap.Maintenance); err != nil {
		return fmt.Errorf("write maintenance: %w", err)
	}
	return nil
}

func readArray(path string, out any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func writeArray(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
