package model

// Vehicle represents a fleet vehicle with its derived maintenance status.
type Vehicle struct {
	ID         int64         `json:"id"`
	Model      string        `json:"model"`
	Category   string        `json:"category"`
	Year       int           `json:"year"`
	Plate      string        `json:"plate"`
	VIN        string        `json:"vin,omitempty"`
	Odometer   *float64      `json:"odometer,omitempty"` // current reading in km
	Status     VehicleStatus `json:"status"`
	StatusText string        `json:"status_text"`
}

// Mileage returns the current odometer reading, defaulting to 0 when absent.
func (v Vehicle) Mileage() float64 {
	if v.Odometer == nil {
		return 0
	}
	return *v.Odometer
}
