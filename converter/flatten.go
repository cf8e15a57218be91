package converter

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// FlattenSummary emits one record per entity.
func FlattenSummary(fm *gtfsrtpb.FeedMessage) []SummaryRecord {
	out := make([]SummaryRecord, 0, len(fm.GetEntity()))
	for _, e := range fm.GetEntity() {
		out = append(out, SummaryRecord{
			EntityID:           entityID(e),
			HasTripUpdate:      e.TripUpdate != nil,
			HasVehiclePosition: e.Vehicle != nil,
			HasAlert:           e.Alert != nil,
		})
	}
	return out
}

// FlattenTripUpdates emits one record per entity carrying a TripUpdate.
// Entities without one are skipped.
func FlattenTripUpdates(fm *gtfsrtpb.FeedMessage) []TripUpdateRecord {
	var out []TripUpdateRecord
	for _, e := range fm.GetEntity() {
		tu := e.TripUpdate
		if tu == nil {
			continue
		}
		trip := tripFieldsOf(tu.Trip)
		out = append(out, TripUpdateRecord{
			EntityID:       entityID(e),
			TripID:         trip.TripID,
			RouteID:        trip.RouteID,
			StartTime:      trip.StartTime,
			StartDate:      trip.StartDate,
			NumStopUpdates: int64(len(tu.StopTimeUpdate)),
		})
	}
	return out
}

// FlattenVehiclePositions emits one record per entity carrying a
// VehiclePosition. Entities without one are skipped.
func FlattenVehiclePositions(fm *gtfsrtpb.FeedMessage) []VehiclePositionRecord {
	var out []VehiclePositionRecord
	for _, e := range fm.GetEntity() {
		vp := e.Vehicle
		if vp == nil {
			continue
		}
		veh := vehicleFieldsOf(vp.Vehicle)
		pos := positionFieldsOf(vp.Position)
		trip := tripFieldsOf(vp.Trip)
		out = append(out, VehiclePositionRecord{
			EntityID:     entityID(e),
			VehicleID:    veh.ID,
			VehicleLabel: veh.Label,
			Latitude:     pos.Latitude,
			Longitude:    pos.Longitude,
			Bearing:      pos.Bearing,
			Speed:        pos.Speed,
			TripID:       trip.TripID,
			RouteID:      trip.RouteID,
		})
	}
	return out
}

// Info summarizes the feed header.
func Info(fm *gtfsrtpb.FeedMessage) FeedInfo {
	return FeedInfo{
		Version:   fm.GetHeader().GetGtfsRealtimeVersion(),
		Timestamp: fm.GetHeader().GetTimestamp(),
		Entities:  len(fm.GetEntity()),
	}
}
