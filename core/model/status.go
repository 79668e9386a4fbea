package model

// ItemState classifies a single maintenance obligation. The values are the
// wire identifiers used in persisted snapshots and API payloads.
type ItemState string

const (
	StateUpToDate  ItemState = "al-dia"
	StateUpcoming  ItemState = "proximo"
	StateOverdue   ItemState = "vencido"
	StateCompleted ItemState = "completado"
)

// Text returns the display label for the state.
func (s ItemState) Text() string {
	switch s {
	case StateOverdue:
		return "Vencido"
	case StateUpcoming:
		return "Próximo"
	case StateCompleted:
		return "Completado"
	default:
		return "Al día"
	}
}

// VehicleStatus is the aggregate health status derived from a vehicle's
// maintenance set. It is never set directly by a user-facing edit.
type VehicleStatus string

const (
	VehicleUpToDate VehicleStatus = "al-dia"
	VehicleUpcoming VehicleStatus = "proximo"
	VehicleOverdue  VehicleStatus = "vencido"
)

// Text returns the display label for the status.
func (s VehicleStatus) Text() string {
	switch s {
	case VehicleOverdue:
		return "Vencido"
	case VehicleUpcoming:
		return "Próximo"
	default:
		return "Al día"
	}
}
