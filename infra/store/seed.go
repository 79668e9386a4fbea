package store

import (
	"time"

	"github.com/autolytix/fleetcare/core/fleet"
	"github.com/autolytix/fleetcare/core/model"
)

// SeedSnapshot returns the demo fleet: ten vehicles covering the
// new/stable/problematic/veteran profiles, with maintenance histories from
// 2021 to 2024 costing between 80 and 900 currency units.
func SeedSnapshot() fleet.Snapshot {
	return fleet.Snapshot{Vehicles: seedVehicles(), Maintenance: seedMaintenance()}
}

func seedVehicles() []model.Vehicle {
	v := func(id int64, mdl, cat string, year int, plate string, st model.VehicleStatus, km float64) model.Vehicle {
		return model.Vehicle{
			ID: id, Model: mdl, Category: cat, Year: year, Plate: plate,
			Status: st, StatusText: st.Text(), Odometer: ptr(km),
		}
	}
	return []model.Vehicle{
		v(1, "Seat León", "Turismo", 2023, "1234-ABC", model.VehicleUpToDate, 12000),
		v(2, "Toyota Hilux", "Pickup", 2023, "2345-DEF", model.VehicleUpToDate, 15000),
		v(3, "VW Golf", "Turismo", 2022, "3456-GHI", model.VehicleUpToDate, 35000),
		v(4, "Renault Kangoo", "Furgoneta", 2021, "4567-JKL", model.VehicleUpcoming, 45000),
		v(5, "Peugeot Partner", "Furgoneta", 2020, "5678-MNO", model.VehicleUpToDate, 52000),
		v(6, "Ford Transit", "Furgoneta", 2020, "6789-PQR", model.VehicleUpcoming, 95000),
		v(7, "Mercedes Sprinter", "Furgoneta", 2019, "7890-STU", model.VehicleOverdue, 110000),
		v(8, "Fiat Ducato", "Furgoneta", 2018, "8901-VWX", model.VehicleUpcoming, 78000),
		v(9, "Hino 300 Series", "Camión", 2016, "9012-YZA", model.VehicleOverdue, 185000),
		v(10, "Iveco Daily", "Camión", 2015, "0123-BCD", model.VehicleOverdue, 210000),
	}
}

func seedMaintenance() []model.Maintenance {
	m := func(id, vehicleID int64, typ, label string, st model.ItemState, due time.Time, km, cost float64) model.Maintenance {
		return model.Maintenance{
			ID: id, VehicleID: vehicleID, Type: typ, DueLabel: label,
			State: st, StateText: st.Text(),
			DueDate: ptrTime(due), DueOdometer: ptr(km), Cost: ptr(cost),
		}
	}
	done := model.StateCompleted
	return []model.Maintenance{
		// Vehicle 1 (new, keep)
		m(1, 1, "Cambio de aceite", "15.000 km", done, date(2024, 1, 10), 15000, 95),
		m(2, 1, "Revisión general", "10.000 km", done, date(2023, 6, 20), 10000, 180),
		// Vehicle 2 (new, keep)
		m(3, 2, "Cambio de aceite", "15.000 km", done, date(2024, 2, 5), 15000, 120),
		m(4, 2, "Filtro de aire", "15.000 km", done, date(2023, 8, 1), 15000, 85),
		// Vehicle 3 (stable, keep)
		m(5, 3, "Cambio de aceite", "30.000 km", done, date(2024, 3, 1), 35000, 90),
		m(6, 3, "Revisión general", "30.000 km", done, date(2023, 4, 15), 30000, 220),
		m(7, 3, "Pastillas de freno", "25.000 km", done, date(2022, 9, 10), 25000, 180),
		m(8, 3, "Cambio de aceite", "20.000 km", done, date(2022, 2, 20), 20000, 85),
		// Vehicle 4 (stable, keep)
		m(9, 4, "Cambio de aceite", "45.000 km", model.StateUpcoming, date(2024, 5, 1), 45000, 0),
		m(10, 4, "Revisión general", "40.000 km", done, date(2023, 7, 15), 40000, 195),
		m(11, 4, "Filtro de habitáculo", "30.000 km", done, date(2022, 3, 10), 30000, 65),
		// Vehicle 5 (stable, keep)
		m(12, 5, "Cambio de aceite", "50.000 km", done, date(2023, 10, 5), 50000, 88),
		m(13, 5, "ITV", "Oct 2023", done, date(2023, 10, 20), 48000, 42),
		m(14, 5, "Revisión general", "40.000 km", done, date(2022, 5, 12), 40000, 175),
		// Vehicle 6 (problematic, watch: recent spend high)
		m(15, 6, "Correa de distribución", "90.000 km", done, date(2024, 1, 15), 95000, 520),
		m(16, 6, "Pastillas de freno", "85.000 km", done, date(2023, 11, 1), 85000, 210),
		m(17, 6, "Cambio de aceite", "80.000 km", done, date(2023, 6, 10), 80000, 95),
		m(18, 6, "Revisión general", "75.000 km", done, date(2022, 12, 20), 75000, 240),
		m(19, 6, "Discos de freno", "70.000 km", done, date(2022, 4, 5), 70000, 310),
		// Vehicle 7 (problematic, watch)
		m(20, 7, "ITV", "Ene 2024", model.StateOverdue, date(2024, 1, 10), 110000, 0),
		m(21, 7, "Cambio de aceite", "105.000 km", done, date(2023, 9, 15), 105000, 130),
		m(22, 7, "Embrague", "100.000 km", done, date(2023, 3, 1), 100000, 680),
		m(23, 7, "Revisión general", "95.000 km", done, date(2022, 7, 10), 95000, 255),
		m(24, 7, "Pastillas de freno", "90.000 km", done, date(2022, 1, 20), 90000, 195),
		// Vehicle 8 (watch: six years old)
		m(25, 8, "Cambio de aceite", "75.000 km", done, date(2023, 12, 5), 78000, 98),
		m(26, 8, "ITV", "Jun 2023", done, date(2023, 6, 15), 72000, 38),
		m(27, 8, "Revisión general", "60.000 km", done, date(2022, 5, 1), 60000, 210),
		m(28, 8, "Filtro de aire", "50.000 km", done, date(2021, 10, 10), 50000, 72),
		// Vehicle 9 (veteran, consider replacement)
		m(29, 9, "Revisión general", "180.000 km", done, date(2024, 1, 20), 185000, 420),
		m(30, 9, "Correa de distribución", "175.000 km", done, date(2023, 7, 10), 175000, 580),
		m(31, 9, "Pastillas y discos", "170.000 km", done, date(2023, 2, 5), 170000, 390),
		m(32, 9, "Cambio de aceite", "165.000 km", done, date(2022, 8, 15), 165000, 145),
		m(33, 9, "Batería", "160.000 km", done, date(2022, 3, 1), 160000, 125),
		m(34, 9, "ITV", "Mar 2022", done, date(2022, 3, 15), 158000, 55),
		// Vehicle 10 (veteran, consider replacement)
		m(35, 10, "Revisión general", "210.000 km", done, date(2024, 2, 10), 210000, 485),
		m(36, 10, "Embrague", "205.000 km", done, date(2023, 9, 20), 205000, 720),
		m(37, 10, "Correa de distribución", "200.000 km", done, date(2023, 3, 5), 200000, 610),
		m(38, 10, "Cambio de aceite", "195.000 km", done, date(2022, 10, 1), 195000, 155),
		m(39, 10, "Pastillas de freno", "190.000 km", done, date(2022, 5, 15), 190000, 265),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func ptr(v float64) *float64 { return &v }

func ptrTime(t time.Time) *time.Time { return &t }
