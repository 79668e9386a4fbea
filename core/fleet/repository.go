package fleet

import (
	"sort"
	"sync"

	"github.com/autolytix/fleetcare/core/model"
)

// VehicleRepository owns the vehicle collection.
type VehicleRepository interface {
	List() []model.Vehicle
	Find(id int64) (model.Vehicle, bool)
	Add(v model.Vehicle) model.Vehicle
	Update(v model.Vehicle) bool
	Delete(id int64) bool
	ReplaceAll(vs []model.Vehicle)
}

// MaintenanceRepository owns the maintenance collection.
type MaintenanceRepository interface {
	List() []model.Maintenance
	Find(id int64) (model.Maintenance, bool)
	ByVehicle(vehicleID int64) []model.Maintenance
	Add(m model.Maintenance) model.Maintenance
	Update(m model.Maintenance) bool
	Delete(id int64) bool
	ReplaceAll(ms []model.Maintenance)
}

// CalendarRepository owns the mirrored calendar tasks.
type CalendarRepository interface {
	List() []model.CalendarTask
	Find(id int64) (model.CalendarTask, bool)
	ByVehicle(vehicleID int64) []model.CalendarTask
	FindByMaintenance(maintenanceID int64) (model.CalendarTask, bool)
	FindByVehicleType(vehicleID int64, typ string) (model.CalendarTask, bool)
	Add(t model.CalendarTask) model.CalendarTask
	Update(t model.CalendarTask) bool
	Delete(id int64) bool
	DeleteByMaintenance(maintenanceID int64) bool
}

// MemoryVehicles is an in-memory VehicleRepository. IDs are assigned
// sequentially; ReplaceAll resets the counter past the highest loaded ID.
type MemoryVehicles struct {
	mu     sync.RWMutex
	data   map[int64]model.Vehicle
	nextID int64
}

// NewMemoryVehicles returns an empty repository.
func NewMemoryVehicles() *MemoryVehicles {
	return &MemoryVehicles{data: map[int64]model.Vehicle{}, nextID: 1}
}

func (r *MemoryVehicles) List() []model.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]model.Vehicle, 0, len(r.data))
	for _, v := range r.data {
		res = append(res, v)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *MemoryVehicles) Find(id int64) (model.Vehicle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[id]
	return v, ok
}

func (r *MemoryVehicles) Add(v model.Vehicle) model.Vehicle {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.nextID
	r.nextID++
	r.data[v.ID] = v
	return v
}

func (r *MemoryVehicles) Update(v model.Vehicle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[v.ID]; !ok {
		return false
	}
	r.data[v.ID] = v
	return true
}

func (r *MemoryVehicles) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return false
	}
	delete(r.data, id)
	return true
}

func (r *MemoryVehicles) ReplaceAll(vs []model.Vehicle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[int64]model.Vehicle, len(vs))
	r.nextID = 1
	for _, v := range vs {
		r.data[v.ID] = v
		if v.ID >= r.nextID {
			r.nextID = v.ID + 1
		}
	}
}

// MemoryMaintenance is an in-memory MaintenanceRepository.
type MemoryMaintenance struct {
	mu     sync.RWMutex
	data   map[int64]model.Maintenance
	nextID int64
}

// NewMemoryMaintenance returns an empty repository.
func NewMemoryMaintenance() *MemoryMaintenance {
	return &MemoryMaintenance{data: map[int64]model.Maintenance{}, nextID: 1}
}

func (r *MemoryMaintenance) List() []model.Maintenance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]model.Maintenance, 0, len(r.data))
	for _, m := range r.data {
		res = append(res, m)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *MemoryMaintenance) Find(id int64) (model.Maintenance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.data[id]
	return m, ok
}

func (r *MemoryMaintenance) ByVehicle(vehicleID int64) []model.Maintenance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []model.Maintenance
	for _, m := range r.data {
		if m.VehicleID == vehicleID {
			res = append(res, m)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *MemoryMaintenance) Add(m model.Maintenance) model.Maintenance {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	r.data[m.ID] = m
	return m
}

func (r *MemoryMaintenance) Update(m model.Maintenance) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[m.ID]; !ok {
		return false
	}
	r.data[m.ID] = m
	return true
}

func (r *MemoryMaintenance) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return false
	}
	delete(r.data, id)
	return true
}

func (r *MemoryMaintenance) ReplaceAll(ms []model.Maintenance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[int64]model.Maintenance, len(ms))
	r.nextID = 1
	for _, m := range ms {
		r.data[m.ID] = m
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
	}
}

// MemoryCalendar is an in-memory CalendarRepository.
type MemoryCalendar struct {
	mu     sync.RWMutex
	data   map[int64]model.CalendarTask
	nextID int64
}

// NewMemoryCalendar returns an empty repository.
func NewMemoryCalendar() *MemoryCalendar {
	return &MemoryCalendar{data: map[int64]model.CalendarTask{}, nextID: 1}
}

func (r *MemoryCalendar) List() []model.CalendarTask {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]model.CalendarTask, 0, len(r.data))
	for _, t := range r.data {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *MemoryCalendar) Find(id int64) (model.CalendarTask, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.data[id]
	return t, ok
}

func (r *MemoryCalendar) ByVehicle(vehicleID int64) []model.CalendarTask {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []model.CalendarTask
	for _, t := range r.data {
		if t.VehicleID == vehicleID {
			res = append(res, t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *MemoryCalendar) FindByMaintenance(maintenanceID int64) (model.CalendarTask, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.data {
		if t.MaintenanceID == maintenanceID && maintenanceID != 0 {
			return t, true
		}
	}
	return model.CalendarTask{}, false
}

func (r *MemoryCalendar) FindByVehicleType(vehicleID int64, typ string) (model.CalendarTask, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var (
		best  model.CalendarTask
		found bool
	)
	for _, t := range r.data {
		if t.VehicleID == vehicleID && t.Type == typ {
			if !found || t.ID < best.ID {
				best = t
				found = true
			}
		}
	}
	return best, found
}

func (r *MemoryCalendar) Add(t model.CalendarTask) model.CalendarTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextID
	r.nextID++
	r.data[t.ID] = t
	return t
}

func (r *MemoryCalendar) Update(t model.CalendarTask) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[t.ID]; !ok {
		return false
	}
	r.data[t.ID] = t
	return true
}

func (r *MemoryCalendar) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return false
	}
	delete(r.data, id)
	return true
}

func (r *MemoryCalendar) DeleteByMaintenance(maintenanceID int64) bool {
	if maintenanceID == 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.data {
		if t.MaintenanceID == maintenanceID {
			delete(r.data, id)
			return true
		}
	}
	return false
}
