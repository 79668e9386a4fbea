package fleet

import (
	"testing"
	"time"

	"github.com/autolytix/fleetcare/core/model"
)

func TestMemoryVehicles_SequentialIDs(t *testing.T) {
	r := NewMemoryVehicles()
	a := r.Add(model.Vehicle{Model: "A"})
	b := r.Add(model.Vehicle{Model: "B"})
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected sequential IDs got %d, %d", a.ID, b.ID)
	}
}

func TestMemoryVehicles_ReplaceAllResetsCounter(t *testing.T) {
	r := NewMemoryVehicles()
	r.Add(model.Vehicle{Model: "A"})
	r.ReplaceAll([]model.Vehicle{{ID: 7, Model: "B"}, {ID: 3, Model: "C"}})
	next := r.Add(model.Vehicle{Model: "D"})
	if next.ID != 8 {
		t.Fatalf("expected ID 8 after reload got %d", next.ID)
	}
	list := r.List()
	if len(list) != 3 || list[0].ID != 3 || list[2].ID != 8 {
		t.Fatalf("expected sorted listing got %+v", list)
	}
}

func TestMemoryMaintenance_ByVehicle(t *testing.T) {
	r := NewMemoryMaintenance()
	r.Add(model.Maintenance{VehicleID: 1, Type: "itv"})
	r.Add(model.Maintenance{VehicleID: 2, Type: "aceite"})
	r.Add(model.Maintenance{VehicleID: 1, Type: "frenos"})
	got := r.ByVehicle(1)
	if len(got) != 2 {
		t.Fatalf("expected 2 items got %d", len(got))
	}
	if got[0].Type != "itv" || got[1].Type != "frenos" {
		t.Fatalf("expected insertion order by ID got %+v", got)
	}
}

func TestMemoryCalendar_FindByMaintenance(t *testing.T) {
	r := NewMemoryCalendar()
	r.Add(model.CalendarTask{VehicleID: 1, Type: "itv"}) // manual, no FK
	linked := r.Add(model.CalendarTask{MaintenanceID: 9, VehicleID: 1, Type: "itv"})

	if _, ok := r.FindByMaintenance(0); ok {
		t.Fatal("a zero key must never match")
	}
	got, ok := r.FindByMaintenance(9)
	if !ok || got.ID != linked.ID {
		t.Fatalf("expected task %d got %+v ok=%v", linked.ID, got, ok)
	}
}

func TestMemoryCalendar_FindByVehicleTypePrefersLowestID(t *testing.T) {
	r := NewMemoryCalendar()
	first := r.Add(model.CalendarTask{VehicleID: 1, Type: "itv"})
	r.Add(model.CalendarTask{VehicleID: 1, Type: "itv"})
	got, ok := r.FindByVehicleType(1, "itv")
	if !ok || got.ID != first.ID {
		t.Fatalf("expected task %d got %+v", first.ID, got)
	}
	if _, ok := r.FindByVehicleType(1, "frenos"); ok {
		t.Fatal("expected no match for unknown type")
	}
}

func TestMemoryCalendar_DeleteByMaintenance(t *testing.T) {
	r := NewMemoryCalendar()
	r.Add(model.CalendarTask{MaintenanceID: 4, VehicleID: 1, Type: "itv", Date: time.Now()})
	if !r.DeleteByMaintenance(4) {
		t.Fatal("expected deletion")
	}
	if r.DeleteByMaintenance(4) {
		t.Fatal("expected nothing left to delete")
	}
	if r.DeleteByMaintenance(0) {
		t.Fatal("a zero key must never delete")
	}
}
