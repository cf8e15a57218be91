package converter

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

func newFeed(entities ...*gtfsrtpb.FeedEntity) *gtfsrtpb.FeedMessage {
	return &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: entities,
	}
}

func tripUpdateEntity(id string, trip *gtfsrtpb.TripDescriptor, stops int) *gtfsrtpb.FeedEntity {
	tu := &gtfsrtpb.TripUpdate{Trip: trip}
	for i := 0; i < stops; i++ {
		tu.StopTimeUpdate = append(tu.StopTimeUpdate, &gtfsrtpb.TripUpdate_StopTimeUpdate{
			StopSequence: proto.Uint32(uint32(i + 1)),
		})
	}
	return &gtfsrtpb.FeedEntity{Id: proto.String(id), TripUpdate: tu}
}

func vehicleEntity(id string, vp *gtfsrtpb.VehiclePosition) *gtfsrtpb.FeedEntity {
	return &gtfsrtpb.FeedEntity{Id: proto.String(id), Vehicle: vp}
}

func fullTrip() *gtfsrtpb.TripDescriptor {
	return &gtfsrtpb.TripDescriptor{
		TripId:    proto.String("1_123^N+"),
		RouteId:   proto.String("16"),
		StartTime: proto.String("07:15:00"),
		StartDate: proto.String("20241015"),
	}
}

func fullVehicle() *gtfsrtpb.VehiclePosition {
	return &gtfsrtpb.VehiclePosition{
		Vehicle: &gtfsrtpb.VehicleDescriptor{
			Id:    proto.String("1401"),
			Label: proto.String("16/3"),
		},
		Position: &gtfsrtpb.Position{
			Latitude:  proto.Float32(52.40625),
			Longitude: proto.Float32(16.9375),
			Bearing:   proto.Float32(90),
			Speed:     proto.Float32(12.5),
		},
		Trip: &gtfsrtpb.TripDescriptor{
			TripId:  proto.String("1_123^N+"),
			RouteId: proto.String("16"),
		},
	}
}

func mustMarshal(fm *gtfsrtpb.FeedMessage) []byte {
	b, err := proto.Marshal(fm)
	if err != nil {
		panic(err)
	}
	return b
}
