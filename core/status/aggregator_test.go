package status

import (
	"testing"

	"github.com/autolytix/fleetcare/core/model"
)

func item(vehicleID int64, st model.ItemState) model.Maintenance {
	return model.Maintenance{VehicleID: vehicleID, Type: "itv", State: st}
}

func TestDeriveVehicleStatus_NoItems(t *testing.T) {
	if got := DeriveVehicleStatus(1, nil); got != model.VehicleUpToDate {
		t.Fatalf("expected al-dia got %s", got)
	}
}

func TestDeriveVehicleStatus_CompletedNeverCounts(t *testing.T) {
	items := []model.Maintenance{
		item(1, model.StateCompleted),
		item(1, model.StateCompleted),
	}
	if got := DeriveVehicleStatus(1, items); got != model.VehicleUpToDate {
		t.Fatalf("expected al-dia got %s", got)
	}
}

func TestDeriveVehicleStatus_OverdueDominates(t *testing.T) {
	items := []model.Maintenance{
		item(1, model.StateUpToDate),
		item(1, model.StateUpcoming),
		item(1, model.StateOverdue),
		item(1, model.StateUpcoming),
	}
	if got := DeriveVehicleStatus(1, items); got != model.VehicleOverdue {
		t.Fatalf("expected vencido got %s", got)
	}
}

func TestDeriveVehicleStatus_UpcomingBeatsUpToDate(t *testing.T) {
	items := []model.Maintenance{
		item(1, model.StateUpToDate),
		item(1, model.StateUpcoming),
	}
	if got := DeriveVehicleStatus(1, items); got != model.VehicleUpcoming {
		t.Fatalf("expected proximo got %s", got)
	}
}

func TestDeriveVehicleStatus_IgnoresOtherVehicles(t *testing.T) {
	items := []model.Maintenance{
		item(2, model.StateOverdue),
		item(1, model.StateUpToDate),
	}
	if got := DeriveVehicleStatus(1, items); got != model.VehicleUpToDate {
		t.Fatalf("expected al-dia got %s", got)
	}
}

func TestDeriveVehicleStatus_Idempotent(t *testing.T) {
	items := []model.Maintenance{
		item(1, model.StateUpcoming),
		item(1, model.StateCompleted),
	}
	first := DeriveVehicleStatus(1, items)
	second := DeriveVehicleStatus(1, items)
	if first != second {
		t.Fatalf("expected stable result, got %s then %s", first, second)
	}
}
