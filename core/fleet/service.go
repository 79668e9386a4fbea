// Package fleet is the orchestration layer of the maintenance engine. Every
// mutation runs the same pipeline: write the record, synchronize the
// calendar mirror, re-aggregate the owning vehicle's status, persist the
// snapshot. The pipeline executes under one mutex so that a concurrent
// caller can never interleave between the read and the write-back.
package fleet

import (
	"fmt"
	"sync"
	"time"

	"github.com/autolytix/fleetcare/core/metrics"
	"github.com/autolytix/fleetcare/core/model"
	"github.com/autolytix/fleetcare/core/recommend"
	"github.com/autolytix/fleetcare/core/status"
	"github.com/autolytix/fleetcare/infra/logger"
)

// Service coordinates the repositories, the derivation rules and the
// persistence collaborator.
type Service struct {
	mu       sync.Mutex
	vehicles VehicleRepository
	maint    MaintenanceRepository
	calendar CalendarRepository
	store    SnapshotStore
	engine   recommend.Engine
	sink     metrics.Sink
	pub      StatusPublisher
	log      logger.Logger
	now      func() time.Time
}

// New assembles a Service. Nil sink, publisher or logger degrade to no-ops.
func New(
	vehicles VehicleRepository,
	maint MaintenanceRepository,
	calendar CalendarRepository,
	store SnapshotStore,
	engine recommend.Engine,
	sink metrics.Sink,
	pub StatusPublisher,
	log logger.Logger,
) *Service {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if pub == nil {
		pub = NopPublisher{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{
		vehicles: vehicles,
		maint:    maint,
		calendar: calendar,
		store:    store,
		engine:   engine,
		sink:     sink,
		pub:      pub,
		log:      log,
		now:      time.Now,
	}
}

// SetNowFunc overrides the clock. Intended for tests.
func (s *Service) SetNowFunc(fn func() time.Time) { s.now = fn }

// Load installs the persisted snapshot into the repositories.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("%w: load snapshot: %v", ErrPersistence, err)
	}
	s.vehicles.ReplaceAll(snap.Vehicles)
	s.maint.ReplaceAll(snap.Maintenance)
	// Calendar tasks are not part of the snapshot; rebuild the mirror from
	// the dated maintenance records.
	for _, m := range s.maint.List() {
		s.syncCalendar(m)
	}
	s.log.Infof("snapshot loaded: %d vehicles, %d maintenance records", len(snap.Vehicles), len(snap.Maintenance))
	return nil
}

// NewVehicle carries the user-editable fields of a vehicle registration.
type NewVehicle struct {
	Model    string
	Category string
	Year     int
	Plate    string
	VIN      string
	Odometer *float64
}

func (n NewVehicle) validate() error {
	if n.Model == "" {
		return fmt.Errorf("%w: vehicle model is required", ErrValidation)
	}
	if n.Plate == "" {
		return fmt.Errorf("%w: vehicle plate is required", ErrValidation)
	}
	if n.Odometer != nil && *n.Odometer < 0 {
		return fmt.Errorf("%w: odometer must not be negative", ErrValidation)
	}
	return nil
}

// AddVehicle registers a vehicle. Its status is derived, not taken from the
// caller; a vehicle with no maintenance set starts up to date.
func (s *Service) AddVehicle(n NewVehicle) (model.Vehicle, error) {
	if err := n.validate(); err != nil {
		return model.Vehicle{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// A fresh vehicle has no maintenance set, so it starts up to date.
	v := s.vehicles.Add(model.Vehicle{
		Model:      n.Model,
		Category:   n.Category,
		Year:       n.Year,
		Plate:      n.Plate,
		VIN:        n.VIN,
		Odometer:   n.Odometer,
		Status:     model.VehicleUpToDate,
		StatusText: model.VehicleUpToDate.Text(),
	})
	s.recordMutation("vehicle", "create", v.ID)
	return v, s.saveSnapshot()
}

// VehicleUpdate is a partial edit; nil fields are left unchanged.
type VehicleUpdate struct {
	Model    *string
	Category *string
	Year     *int
	Plate    *string
	VIN      *string
	Odometer *float64
}

// UpdateVehicle applies a partial edit and re-derives the vehicle's status.
func (s *Service) UpdateVehicle(id int64, upd VehicleUpdate) (model.Vehicle, error) {
	if upd.Odometer != nil && *upd.Odometer < 0 {
		return model.Vehicle{}, fmt.Errorf("%w: odometer must not be negative", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vehicles.Find(id)
	if !ok {
		return model.Vehicle{}, fmt.Errorf("%w: vehicle %d", ErrNotFound, id)
	}
	if upd.Model != nil {
		v.Model = *upd.Model
	}
	if upd.Category != nil {
		v.Category = *upd.Category
	}
	if upd.Year != nil {
		v.Year = *upd.Year
	}
	if upd.Plate != nil {
		v.Plate = *upd.Plate
	}
	if upd.VIN != nil {
		v.VIN = *upd.VIN
	}
	if upd.Odometer != nil {
		v.Odometer = upd.Odometer
	}
	s.vehicles.Update(v)
	v = s.refreshVehicleStatus(id)
	s.recordMutation("vehicle", "update", id)
	return v, s.saveSnapshot()
}

// DeleteVehicle removes a vehicle and cascades to its maintenance records
// and calendar tasks, so no orphans survive.
func (s *Service) DeleteVehicle(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles.Find(id); !ok {
		return fmt.Errorf("%w: vehicle %d", ErrNotFound, id)
	}
	for _, m := range s.maint.ByVehicle(id) {
		s.maint.Delete(m.ID)
	}
	for _, t := range s.calendar.ByVehicle(id) {
		s.calendar.Delete(t.ID)
	}
	s.vehicles.Delete(id)
	s.recordMutation("vehicle", "delete", id)
	return s.saveSnapshot()
}

// NewMaintenance carries the fields of a maintenance registration. State is
// the optional user-pinned value; when empty the save-time rule decides.
type NewMaintenance struct {
	VehicleID   int64
	Type        string
	DueLabel    string
	DueDate     *time.Time
	DueOdometer *float64
	Cost        *float64
	Notes       string
	State       model.ItemState
}

func (n NewMaintenance) validate() error {
	if n.Type == "" {
		return fmt.Errorf("%w: maintenance type is required", ErrValidation)
	}
	if n.DueOdometer != nil && *n.DueOdometer < 0 {
		return fmt.Errorf("%w: due odometer must not be negative", ErrValidation)
	}
	if n.Cost != nil && *n.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", ErrValidation)
	}
	return nil
}

// AddMaintenance registers a maintenance item and runs the full pipeline:
// calendar sync (when a due date is present), vehicle status re-aggregation,
// snapshot persistence.
func (s *Service) AddMaintenance(n NewMaintenance) (model.Maintenance, error) {
	if err := n.validate(); err != nil {
		return model.Maintenance{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles.Find(n.VehicleID); !ok {
		return model.Maintenance{}, fmt.Errorf("%w: vehicle %d", ErrNotFound, n.VehicleID)
	}
	st := n.State
	if st == "" {
		st = status.ClassifyAtSave(n.DueDate, s.now())
	}
	m := s.maint.Add(model.Maintenance{
		VehicleID:   n.VehicleID,
		Type:        n.Type,
		DueLabel:    n.DueLabel,
		State:       st,
		StateText:   st.Text(),
		DueDate:     n.DueDate,
		DueOdometer: n.DueOdometer,
		Cost:        n.Cost,
		Notes:       n.Notes,
	})
	s.syncCalendar(m)
	s.refreshVehicleStatus(m.VehicleID)
	s.recordMutation("maintenance", "create", m.VehicleID)
	return m, s.saveSnapshot()
}

// MaintenanceUpdate is a partial edit; nil fields are left unchanged. A nil
// State with a provided DueDate re-runs the save-time classifier; a non-nil
// State pins the user's choice verbatim.
type MaintenanceUpdate struct {
	Type        *string
	DueLabel    *string
	DueDate     *time.Time
	DueOdometer *float64
	Cost        *float64
	Notes       *string
	State       *model.ItemState
}

// UpdateMaintenance applies a partial edit and runs the pipeline. The
// calendar mirror is synchronized only when the patch carries a due date.
func (s *Service) UpdateMaintenance(id int64, upd MaintenanceUpdate) (model.Maintenance, error) {
	if upd.DueOdometer != nil && *upd.DueOdometer < 0 {
		return model.Maintenance{}, fmt.Errorf("%w: due odometer must not be negative", ErrValidation)
	}
	if upd.Cost != nil && *upd.Cost < 0 {
		return model.Maintenance{}, fmt.Errorf("%w: cost must not be negative", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.maint.Find(id)
	if !ok {
		return model.Maintenance{}, fmt.Errorf("%w: maintenance %d", ErrNotFound, id)
	}
	if upd.Type != nil {
		m.Type = *upd.Type
	}
	if upd.DueLabel != nil {
		m.DueLabel = *upd.DueLabel
	}
	dueChanged := upd.DueDate != nil
	if dueChanged {
		m.DueDate = upd.DueDate
	}
	if upd.DueOdometer != nil {
		m.DueOdometer = upd.DueOdometer
	}
	if upd.Cost != nil {
		m.Cost = upd.Cost
	}
	if upd.Notes != nil {
		m.Notes = *upd.Notes
	}
	switch {
	case upd.State != nil:
		m.State = *upd.State
	case dueChanged:
		m.State = status.ClassifyAtSave(m.DueDate, s.now())
	}
	m.StateText = m.State.Text()
	s.maint.Update(m)
	if dueChanged {
		s.syncCalendar(m)
	}
	s.refreshVehicleStatus(m.VehicleID)
	s.recordMutation("maintenance", "update", m.VehicleID)
	return m, s.saveSnapshot()
}

// DeleteMaintenance removes an item, prunes its calendar task and
// re-aggregates the vehicle it belonged to, so removing the last overdue
// item heals the vehicle.
func (s *Service) DeleteMaintenance(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.maint.Find(id)
	if !ok {
		return fmt.Errorf("%w: maintenance %d", ErrNotFound, id)
	}
	s.maint.Delete(id)
	s.calendar.DeleteByMaintenance(id)
	s.refreshVehicleStatus(m.VehicleID)
	s.recordMutation("maintenance", "delete", m.VehicleID)
	return s.saveSnapshot()
}

// Recommend derives the fleet-renewal advisory for a vehicle.
func (s *Service) Recommend(vehicleID int64) (recommend.Recommendation, error) {
	v, ok := s.vehicles.Find(vehicleID)
	if !ok {
		return recommend.Recommendation{}, fmt.Errorf("%w: vehicle %d", ErrNotFound, vehicleID)
	}
	return s.engine.Recommend(v, s.maint.List(), s.now()), nil
}

// CostReport is the per-year spend series of a vehicle with an optional
// linear trend (currency units per year).
type CostReport struct {
	Series       []recommend.YearCost `json:"series"`
	TrendPerYear *float64             `json:"trend_per_year,omitempty"`
}

// Costs aggregates a vehicle's yearly maintenance spend.
func (s *Service) Costs(vehicleID int64) (CostReport, error) {
	if _, ok := s.vehicles.Find(vehicleID); !ok {
		return CostReport{}, fmt.Errorf("%w: vehicle %d", ErrNotFound, vehicleID)
	}
	series := recommend.YearlyCosts(vehicleID, s.maint.List())
	rep := CostReport{Series: series}
	if slope, ok := recommend.SpendTrend(series); ok {
		rep.TrendPerYear = &slope
	}
	return rep, nil
}

// Vehicles lists all vehicles.
func (s *Service) Vehicles() []model.Vehicle { return s.vehicles.List() }

// Vehicle looks up a vehicle.
func (s *Service) Vehicle(id int64) (model.Vehicle, bool) { return s.vehicles.Find(id) }

// MaintenanceItems lists all maintenance items, optionally for one vehicle.
func (s *Service) MaintenanceItems(vehicleID int64) []model.Maintenance {
	if vehicleID != 0 {
		return s.maint.ByVehicle(vehicleID)
	}
	return s.maint.List()
}

// MaintenanceItem looks up a maintenance item.
func (s *Service) MaintenanceItem(id int64) (model.Maintenance, bool) { return s.maint.Find(id) }

// CalendarTasks lists calendar tasks, optionally for one vehicle.
func (s *Service) CalendarTasks(vehicleID int64) []model.CalendarTask {
	if vehicleID != 0 {
		return s.calendar.ByVehicle(vehicleID)
	}
	return s.calendar.List()
}

// AddCalendarTask creates a task directly on the calendar surface. Manual
// tasks carry no maintenance link and are not part of the persisted
// snapshot.
func (s *Service) AddCalendarTask(t model.CalendarTask) (model.CalendarTask, error) {
	if t.Type == "" {
		return model.CalendarTask{}, fmt.Errorf("%w: task type is required", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t.MaintenanceID = 0
	return s.calendar.Add(t), nil
}

// DeleteCalendarTask removes a calendar task.
func (s *Service) DeleteCalendarTask(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.calendar.Delete(id) {
		return fmt.Errorf("%w: calendar task %d", ErrNotFound, id)
	}
	return nil
}

// refreshVehicleStatus re-runs the aggregator over the current maintenance
// collection and writes the result back onto the vehicle. Transitions are
// reported to the sink and the status publisher. Callers hold s.mu.
func (s *Service) refreshVehicleStatus(vehicleID int64) model.Vehicle {
	v, ok := s.vehicles.Find(vehicleID)
	if !ok {
		return model.Vehicle{}
	}
	prev := v.Status
	st := status.DeriveVehicleStatus(vehicleID, s.maint.List())
	v.Status = st
	v.StatusText = st.Text()
	s.vehicles.Update(v)
	if prev != st {
		now := s.now()
		if err := s.sink.RecordStatusChange(metrics.StatusChangeEvent{
			VehicleID: vehicleID, Previous: prev, Current: st, Time: now,
		}); err != nil {
			s.log.Warnf("record status change: %v", err)
		}
		if err := s.pub.PublishStatusChange(StatusEvent{
			VehicleID: vehicleID, Plate: v.Plate, Previous: prev, Current: st, Time: now,
		}); err != nil {
			s.log.Warnf("publish status change: %v", err)
		}
	}
	return v
}

// saveSnapshot persists the whole state. On failure the in-memory state
// stays applied and the caller gets an ErrPersistence; there is no rollback.
// Callers hold s.mu.
func (s *Service) saveSnapshot() error {
	snap := Snapshot{Vehicles: s.vehicles.List(), Maintenance: s.maint.List()}
	start := time.Now()
	err := s.store.Save(snap)
	if serr := s.sink.RecordSnapshot(metrics.SnapshotEvent{
		Vehicles:    len(snap.Vehicles),
		Maintenance: len(snap.Maintenance),
		Duration:    time.Since(start),
		Failed:      err != nil,
		Time:        s.now(),
	}); serr != nil {
		s.log.Warnf("record snapshot: %v", serr)
	}
	if err != nil {
		s.log.Errorf("save snapshot: %v", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *Service) recordMutation(entity, op string, vehicleID int64) {
	if err := s.sink.RecordMutation(metrics.MutationEvent{
		Entity: entity, Op: op, VehicleID: vehicleID, Time: s.now(),
	}); err != nil {
		s.log.Warnf("record mutation: %v", err)
	}
}
