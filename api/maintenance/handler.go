// Package maintenance exposes CRUD over the maintenance records of the fleet.
package maintenance

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/autolytix/fleetcare/core/fleet"
	"github.com/autolytix/fleetcare/core/model"
)

const dateLayout = "2006-01-02"

// createRequest is the wire form of a new maintenance record.
type createRequest struct {
	VehicleID   int64           `json:"vehicle_id"`
	Type        string          `json:"type"`
	DueLabel    string          `json:"due_label"`
	State       model.ItemState `json:"state"`
	DueDate     string          `json:"due_date"`
	DueOdometer *float64        `json:"due_odometer"`
	Cost        *float64        `json:"cost"`
	Notes       string          `json:"notes"`
}

// updateRequest carries the mutable fields of an existing record. Pointer
// fields distinguish "not sent" from an explicit value.
type updateRequest struct {
	Type        *string          `json:"type"`
	DueLabel    *string          `json:"due_label"`
	State       *model.ItemState `json:"state"`
	DueDate     *string          `json:"due_date"`
	DueOdometer *float64         `json:"due_odometer"`
	Cost        *float64         `json:"cost"`
	Notes       *string          `json:"notes"`
}

// NewHandler returns a handler serving the maintenance collection:
//
//	GET    /api/maintenance?vehicle_id=N  list (all when vehicle_id omitted)
//	POST   /api/maintenance               create
//	PUT    /api/maintenance?id=N          update
//	DELETE /api/maintenance?id=N          delete
func NewHandler(svc *fleet.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list(svc, w, r)
		case http.MethodPost:
			create(svc, w, r)
		case http.MethodPut:
			update(svc, w, r)
		case http.MethodDelete:
			remove(svc, w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}

func list(svc *fleet.Service, w http.ResponseWriter, r *http.Request) {
	var vehicleID int64
	if raw := r.URL.Query().Get("vehicle_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid vehicle_id", http.StatusBadRequest)
			return
		}
		vehicleID = id
	}
	writeJSON(w, svc.MaintenanceItems(vehicleID))
}

func create(svc *fleet.Service, w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	in := fleet.NewMaintenance{
		VehicleID:   req.VehicleID,
		Type:        req.Type,
		DueLabel:    req.DueLabel,
		State:       req.State,
		DueOdometer: req.DueOdometer,
		Cost:        req.Cost,
		Notes:       req.Notes,
	}
	if req.DueDate != "" {
		due, err := time.ParseInLocation(dateLayout, req.DueDate, time.Local)
		if err != nil {
			http.Error(w, "invalid due_date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		in.DueDate = &due
	}
	m, err := svc.AddMaintenance(in)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(m); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func update(svc *fleet.Service, w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	upd := fleet.MaintenanceUpdate{
		Type:        req.Type,
		DueLabel:    req.DueLabel,
		State:       req.State,
		DueOdometer: req.DueOdometer,
		Cost:        req.Cost,
		Notes:       req.Notes,
	}
	if req.DueDate != nil {
		due, err := time.ParseInLocation(dateLayout, *req.DueDate, time.Local)
		if err != nil {
			http.Error(w, "invalid due_date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		upd.DueDate = &due
	}
	m, err := svc.UpdateMaintenance(id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, m)
}

func remove(svc *fleet.Service, w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := svc.DeleteMaintenance(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fleet.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, fleet.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
