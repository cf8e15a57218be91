package converter

import (
	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/table"
)

// SummaryTable assembles summary records into a table.
func SummaryTable(recs []SummaryRecord) (*table.Table, error) {
	ids := make([]string, len(recs))
	tu := make([]bool, len(recs))
	vp := make([]bool, len(recs))
	al := make([]bool, len(recs))
	for i, r := range recs {
		ids[i] = r.EntityID
		tu[i] = r.HasTripUpdate
		vp[i] = r.HasVehiclePosition
		al[i] = r.HasAlert
	}
	return table.New(
		table.Strings(SummaryColumns[0], ids),
		table.Bools(SummaryColumns[1], tu),
		table.Bools(SummaryColumns[2], vp),
		table.Bools(SummaryColumns[3], al),
	)
}

// TripUpdateTable assembles trip update records into a table.
func TripUpdateTable(recs []TripUpdateRecord) (*table.Table, error) {
	n := len(recs)
	ids, trips, routes := make([]string, n), make([]string, n), make([]string, n)
	startTimes, startDates := make([]string, n), make([]string, n)
	stops := make([]int64, n)
	for i, r := range recs {
		ids[i] = r.EntityID
		trips[i] = r.TripID
		routes[i] = r.RouteID
		startTimes[i] = r.StartTime
		startDates[i] = r.StartDate
		stops[i] = r.NumStopUpdates
	}
	return table.New(
		table.Strings(TripUpdateColumns[0], ids),
		table.Strings(TripUpdateColumns[1], trips),
		table.Strings(TripUpdateColumns[2], routes),
		table.Strings(TripUpdateColumns[3], startTimes),
		table.Strings(TripUpdateColumns[4], startDates),
		table.Ints(TripUpdateColumns[5], stops),
	)
}

// VehiclePositionTable assembles vehicle position records into a table.
func VehiclePositionTable(recs []VehiclePositionRecord) (*table.Table, error) {
	n := len(recs)
	ids, vehIDs, labels := make([]string, n), make([]string, n), make([]string, n)
	lats, lons := make([]float64, n), make([]float64, n)
	bearings, speeds := make([]float64, n), make([]float64, n)
	trips, routes := make([]string, n), make([]string, n)
	for i, r := range recs {
		ids[i] = r.EntityID
		vehIDs[i] = r.VehicleID
		labels[i] = r.VehicleLabel
		lats[i] = r.Latitude
		lons[i] = r.Longitude
		bearings[i] = r.Bearing
		speeds[i] = r.Speed
		trips[i] = r.TripID
		routes[i] = r.RouteID
	}
	return table.New(
		table.Strings(VehiclePositionColumns[0], ids),
		table.Strings(VehiclePositionColumns[1], vehIDs),
		table.Strings(VehiclePositionColumns[2], labels),
		table.Floats(VehiclePositionColumns[3], lats),
		table.Floats(VehiclePositionColumns[4], lons),
		table.Floats(VehiclePositionColumns[5], bearings),
		table.Floats(VehiclePositionColumns[6], speeds),
		table.Strings(VehiclePositionColumns[7], trips),
		table.Strings(VehiclePositionColumns[8], routes),
	)
}

// ErrorTable is the degenerate one-row table standing in for a feed that
// could not be processed.
func ErrorTable(message string) *table.Table {
	// a single named column cannot fail validation
	t, _ := table.New(table.Strings(ErrorColumn, []string{message}))
	return t
}
