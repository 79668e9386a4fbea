package maintenance

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/autolytix/fleetcare/core/fleet"
	"github.com/autolytix/fleetcare/core/model"
	"github.com/autolytix/fleetcare/core/recommend"
)

type nopStore struct{}

func (nopStore) Load() (fleet.Snapshot, error) { return fleet.Snapshot{}, nil }
func (nopStore) Save(fleet.Snapshot) error     { return nil }

func newService(t *testing.T) (*fleet.Service, model.Vehicle) {
	t.Helper()
	svc := fleet.New(
		fleet.NewMemoryVehicles(),
		fleet.NewMemoryMaintenance(),
		fleet.NewMemoryCalendar(),
		nopStore{},
		recommend.NewEngine(recommend.Thresholds{}),
		nil, nil, nil,
	)
	svc.SetNowFunc(func() time.Time {
		return time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	})
	v, err := svc.AddVehicle(fleet.NewVehicle{Model: "Renault Kangoo", Plate: "4567-JKL", Year: 2021})
	if err != nil {
		t.Fatalf("add vehicle: %v", err)
	}
	return svc, v
}

func TestCreateMaintenance(t *testing.T) {
	svc, v := newService(t)
	body := fmt.Sprintf(`{"vehicle_id":%d,"type":"ITV","due_label":"junio 2026","due_date":"2026-06-10"}`, v.ID)
	rec := httptest.NewRecorder()
	NewHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/maintenance", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var got model.Maintenance
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 2026-06-10 is before the fixed clock, so the save-time rule applies.
	if got.State != model.StateOverdue {
		t.Fatalf("expected vencido got %s", got.State)
	}
	if got.DueDate == nil || got.DueDate.Day() != 10 {
		t.Fatalf("unexpected due date %v", got.DueDate)
	}
}

func TestCreateMaintenance_BadDate(t *testing.T) {
	svc, v := newService(t)
	body := fmt.Sprintf(`{"vehicle_id":%d,"type":"ITV","due_date":"10/06/2026"}`, v.ID)
	rec := httptest.NewRecorder()
	NewHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/maintenance", strings.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCreateMaintenance_UnknownVehicle(t *testing.T) {
	svc, _ := newService(t)
	rec := httptest.NewRecorder()
	NewHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/maintenance",
		strings.NewReader(`{"vehicle_id":99,"type":"ITV"}`)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestListMaintenance_ByVehicle(t *testing.T) {
	svc, v := newService(t)
	if _, err := svc.AddMaintenance(fleet.NewMaintenance{VehicleID: v.ID, Type: "ITV"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	rec := httptest.NewRecorder()
	NewHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/maintenance?vehicle_id=%d", v.ID), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var got []model.Maintenance
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Type != "ITV" {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestUpdateMaintenance_PinnedState(t *testing.T) {
	svc, v := newService(t)
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)
	m, err := svc.AddMaintenance(fleet.NewMaintenance{VehicleID: v.ID, Type: "ITV", DueDate: &due})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	rec := httptest.NewRecorder()
	NewHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/maintenance?id=%d", m.ID), strings.NewReader(`{"state":"completado"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var got model.Maintenance
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.State != model.StateCompleted {
		t.Fatalf("expected completado got %s", got.State)
	}
}

func TestDeleteMaintenance(t *testing.T) {
	svc, v := newService(t)
	m, err := svc.AddMaintenance(fleet.NewMaintenance{VehicleID: v.ID, Type: "ITV"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	rec := httptest.NewRecorder()
	NewHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/maintenance?id=%d", m.ID), nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	NewHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/maintenance?id=%d", m.ID), nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
