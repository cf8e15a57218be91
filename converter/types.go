package converter

// SummaryRecord is one row of the feeds summary table.
type SummaryRecord struct {
	EntityID           string
	HasTripUpdate      bool
	HasVehiclePosition bool
	HasAlert           bool
}

// TripUpdateRecord is one row of the trip updates table.
type TripUpdateRecord struct {
	EntityID       string
	TripID         string
	RouteID        string
	StartTime      string
	StartDate      string
	NumStopUpdates int64
}

// VehiclePositionRecord is one row of the vehicle positions table.
type VehiclePositionRecord struct {
	EntityID     string
	VehicleID    string
	VehicleLabel string
	Latitude     float64
	Longitude    float64
	Bearing      float64
	Speed        float64
	TripID       string
	RouteID      string
}

// FeedInfo describes the header of a decoded feed.
type FeedInfo struct {
	Version   string
	Timestamp uint64
	Entities  int
}

// Column names, in table order.
var (
	SummaryColumns = []string{
		"entity_id", "has_trip_update", "has_vehicle_position", "has_alert",
	}
	TripUpdateColumns = []string{
		"entity_id", "trip_id", "route_id", "start_time", "start_date", "num_stop_updates",
	}
	VehiclePositionColumns = []string{
		"entity_id", "vehicle_id", "vehicle_label", "latitude", "longitude",
		"bearing", "speed", "trip_id", "route_id",
	}
)

// ErrorColumn is the only column of a degenerate table.
const ErrorColumn = "error"
