// Package vehicles exposes the vehicle collection, the derived status view
// and the per-vehicle recommendation over HTTP.
package vehicles

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/autolytix/fleetcare/core/fleet"
	"github.com/autolytix/fleetcare/core/model"
)

// createRequest is the wire form of a vehicle registration.
type createRequest struct {
	Model    string   `json:"model"`
	Category string   `json:"category"`
	Year     int      `json:"year"`
	Plate    string   `json:"plate"`
	VIN      string   `json:"vin"`
	Odometer *float64 `json:"odometer"`
}

// updateRequest carries the mutable fields of a vehicle. Pointer fields
// distinguish "not sent" from an explicit value.
type updateRequest struct {
	Model    *string  `json:"model"`
	Category *string  `json:"category"`
	Year     *int     `json:"year"`
	Plate    *string  `json:"plate"`
	VIN      *string  `json:"vin"`
	Odometer *float64 `json:"odometer"`
}

// NewHandler returns a handler serving the vehicle collection:
//
//	GET    /api/vehicles       list
//	POST   /api/vehicles       register
//	PUT    /api/vehicles?id=N  update
//	DELETE /api/vehicles?id=N  delete with its maintenance and calendar rows
func NewHandler(svc *fleet.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, svc.Vehicles())
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

func create(svc *fleet.Service, w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	v, err := svc.AddVehicle(fleet.NewVehicle{
		Model:    req.Model,
		Category: req.Category,
		Year:     req.Year,
		Plate:    req.Plate,
		VIN:      req.VIN,
		Odometer: req.Odometer,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(v); err != nil {
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
	v, err := svc.UpdateVehicle(id, fleet.VehicleUpdate{
		Model:    req.Model,
		Category: req.Category,
		Year:     req.Year,
		Plate:    req.Plate,
		VIN:      req.VIN,
		Odometer: req.Odometer,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, v)
}

func remove(svc *fleet.Service, w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := svc.DeleteVehicle(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StatusEntry is the compact status view of one vehicle.
type StatusEntry struct {
	ID         int64               `json:"id"`
	Plate      string              `json:"plate"`
	Model      string              `json:"model"`
	Status     model.VehicleStatus `json:"status"`
	StatusText string              `json:"status_text"`
}

// NewStatusHandler returns a handler serving the derived status of every
// vehicle via GET /api/vehicles/status. An optional status query parameter
// filters the result.
func NewStatusHandler(svc *fleet.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		filter := model.VehicleStatus(r.URL.Query().Get("status"))
		entries := []StatusEntry{}
		for _, v := range svc.Vehicles() {
			if filter != "" && v.Status != filter {
				continue
			}
			entries = append(entries, StatusEntry{
				ID: v.ID, Plate: v.Plate, Model: v.Model,
				Status: v.Status, StatusText: v.StatusText,
			})
		}
		writeJSON(w, entries)
	})
}

// NewRecommendationHandler serves GET /api/vehicles/recommendation?id=N.
func NewRecommendationHandler(svc *fleet.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid vehicle id", http.StatusBadRequest)
			return
		}
		rec, err := svc.Recommend(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, rec)
	})
}

// NewCostsHandler serves GET /api/vehicles/costs?id=N: the per-year spend
// series with its linear trend.
func NewCostsHandler(svc *fleet.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid vehicle id", http.StatusBadRequest)
			return
		}
		rep, err := svc.Costs(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, rep)
	})
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
	case errors.Is(err, fleet.ErrPersistence):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
