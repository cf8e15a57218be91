package converter

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// tripFields holds the TripDescriptor values copied into output rows.
type tripFields struct {
	TripID    string
	RouteID   string
	StartTime string
	StartDate string
}

// tripFieldsOf returns the descriptor's values, each defaulting to "" when
// unset. A nil descriptor yields all defaults.
func tripFieldsOf(td *gtfsrtpb.TripDescriptor) tripFields {
	if td == nil {
		return tripFields{}
	}
	var f tripFields
	if td.TripId != nil {
		f.TripID = *td.TripId
	}
	if td.RouteId != nil {
		f.RouteID = *td.RouteId
	}
	if td.StartTime != nil {
		f.StartTime = *td.StartTime
	}
	if td.StartDate != nil {
		f.StartDate = *td.StartDate
	}
	return f
}

// vehicleFields holds the VehicleDescriptor values copied into output rows.
type vehicleFields struct {
	ID    string
	Label string
}

func vehicleFieldsOf(vd *gtfsrtpb.VehicleDescriptor) vehicleFields {
	if vd == nil {
		return vehicleFields{}
	}
	var f vehicleFields
	if vd.Id != nil {
		f.ID = *vd.Id
	}
	if vd.Label != nil {
		f.Label = *vd.Label
	}
	return f
}

// positionFields holds the Position values copied into output rows.
type positionFields struct {
	Latitude  float64
	Longitude float64
	Bearing   float64
	Speed     float64
}

// positionFieldsOf returns the position's values. A nil position yields all
// zeros. Inside a present position latitude and longitude fall back to the
// schema default (0) and bearing and speed default to 0 independently.
func positionFieldsOf(p *gtfsrtpb.Position) positionFields {
	if p == nil {
		return positionFields{}
	}
	f := positionFields{
		Latitude:  float64(p.GetLatitude()),
		Longitude: float64(p.GetLongitude()),
	}
	if p.Bearing != nil {
		f.Bearing = float64(*p.Bearing)
	}
	if p.Speed != nil {
		f.Speed = float64(*p.Speed)
	}
	return f
}

// entityID returns the entity id or "" when unset.
func entityID(e *gtfsrtpb.FeedEntity) string {
	if e.Id == nil {
		return ""
	}
	return *e.Id
}
