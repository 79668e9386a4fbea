package status

import "github.com/autolytix/fleetcare/core/model"

// DeriveVehicleStatus reduces a vehicle's maintenance items to one aggregate
// status. Completed items never influence the result. Overdue strictly
// dominates upcoming, which strictly dominates up to date: a single overdue
// item flags the whole vehicle. The caller writes the result back onto the
// vehicle together with its display text.
func DeriveVehicleStatus(vehicleID int64, items []model.Maintenance) model.VehicleStatus {
	hasUpcoming := false
	active := 0
	for _, m := range items {
		if m.VehicleID != vehicleID || m.State == model.StateCompleted {
			continue
		}
		active++
		switch m.State {
		case model.StateOverdue:
			return model.VehicleOverdue
		case model.StateUpcoming:
			hasUpcoming = true
		}
	}
	if active == 0 || !hasUpcoming {
		return model.VehicleUpToDate
	}
	return model.VehicleUpcoming
}
