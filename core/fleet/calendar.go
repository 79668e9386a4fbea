package fleet

import "github.com/autolytix/fleetcare/core/model"

// calendarState maps a maintenance state onto the coarse calendar status.
// Anything that is not overdue or completed shows as upcoming.
func calendarState(st model.ItemState) model.ItemState {
	switch st {
	case model.StateOverdue, model.StateCompleted:
		return st
	default:
		return model.StateUpcoming
	}
}

// syncCalendar upserts the mirrored calendar task for a maintenance item
// that carries a due date. The task is matched by its maintenance foreign
// key; tasks created directly through the calendar surface have no key and
// are matched by (vehicle, type) instead, so a manual entry gets adopted
// rather than duplicated. Callers run this after the maintenance write and
// before re-aggregating the vehicle status.
func (s *Service) syncCalendar(m model.Maintenance) {
	if m.DueDate == nil {
		return
	}
	v, ok := s.vehicles.Find(m.VehicleID)
	if !ok {
		return
	}
	task, found := s.calendar.FindByMaintenance(m.ID)
	if !found {
		// Only an unlinked task may be adopted; a task already owned by
		// another maintenance item keeps its own mirror.
		if t, ok := s.calendar.FindByVehicleType(m.VehicleID, m.Type); ok && t.MaintenanceID == 0 {
			task, found = t, true
		}
	}
	if found {
		task.MaintenanceID = m.ID
		task.VehicleID = m.VehicleID
		task.VehicleLabel = v.Model
		task.Type = m.Type
		task.Date = *m.DueDate
		task.Odometer = m.DueOdometer
		task.State = calendarState(m.State)
		s.calendar.Update(task)
		return
	}
	s.calendar.Add(model.CalendarTask{
		MaintenanceID: m.ID,
		VehicleID:     m.VehicleID,
		VehicleLabel:  v.Model,
		Type:          m.Type,
		Date:          *m.DueDate,
		Odometer:      m.DueOdometer,
		State:         calendarState(m.State),
	})
}
