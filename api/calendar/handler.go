// Package calendar exposes the maintenance calendar mirror over HTTP.
package calendar

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/autolytix/fleetcare/core/fleet"
	"github.com/autolytix/fleetcare/core/model"
)

// NewHandler returns a handler serving GET /api/calendar. An optional
// vehicle_id query parameter restricts the listing to one vehicle.
func NewHandler(svc *fleet.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var vehicleID int64
		if raw := r.URL.Query().Get("vehicle_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid vehicle_id", http.StatusBadRequest)
				return
			}
			vehicleID = id
		}
		tasks := svc.CalendarTasks(vehicleID)
		if tasks == nil {
			tasks = []model.CalendarTask{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tasks); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
