package converter

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

// mixedFeed has A with only a trip update, B with only a vehicle position and
// C with both.
func mixedFeed() *gtfsrtpb.FeedMessage {
	c := tripUpdateEntity("C", fullTrip(), 2)
	c.Vehicle = fullVehicle()
	return newFeed(
		tripUpdateEntity("A", fullTrip(), 3),
		vehicleEntity("B", fullVehicle()),
		c,
	)
}

func TestFlatten_MixedEntities(t *testing.T) {
	fm := mixedFeed()

	summary := FlattenSummary(fm)
	require.Len(t, summary, 3)
	assert.Equal(t, SummaryRecord{EntityID: "A", HasTripUpdate: true}, summary[0])
	assert.Equal(t, SummaryRecord{EntityID: "B", HasVehiclePosition: true}, summary[1])
	assert.Equal(t, SummaryRecord{EntityID: "C", HasTripUpdate: true, HasVehiclePosition: true}, summary[2])

	trips := FlattenTripUpdates(fm)
	require.Len(t, trips, 2)
	assert.Equal(t, "A", trips[0].EntityID)
	assert.Equal(t, int64(3), trips[0].NumStopUpdates)
	assert.Equal(t, "C", trips[1].EntityID)
	assert.Equal(t, int64(2), trips[1].NumStopUpdates)

	vehicles := FlattenVehiclePositions(fm)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "B", vehicles[0].EntityID)
	assert.Equal(t, "C", vehicles[1].EntityID)
}

func TestFlattenSummary_RowCountEqualsEntityCount(t *testing.T) {
	fm := newFeed(
		&gtfsrtpb.FeedEntity{Id: proto.String("empty")},
		&gtfsrtpb.FeedEntity{Id: proto.String("alert"), Alert: &gtfsrtpb.Alert{}},
		&gtfsrtpb.FeedEntity{Id: proto.String("alert")}, // duplicate ids pass through
		tripUpdateEntity("tu", nil, 0),
	)

	recs := FlattenSummary(fm)
	require.Len(t, recs, len(fm.Entity))
	assert.Equal(t, SummaryRecord{EntityID: "empty"}, recs[0])
	assert.True(t, recs[1].HasAlert)
	assert.Equal(t, "alert", recs[2].EntityID)
	assert.False(t, recs[2].HasAlert)
}

func TestFlattenSummary_MissingEntityID(t *testing.T) {
	recs := FlattenSummary(newFeed(&gtfsrtpb.FeedEntity{Alert: &gtfsrtpb.Alert{}}))
	require.Len(t, recs, 1)
	assert.Equal(t, "", recs[0].EntityID)
	assert.True(t, recs[0].HasAlert)
}

func TestFlatten_EmptyFeed(t *testing.T) {
	fm := newFeed()
	assert.Empty(t, FlattenSummary(fm))
	assert.Empty(t, FlattenTripUpdates(fm))
	assert.Empty(t, FlattenVehiclePositions(fm))
}

func TestFlattenTripUpdates_CopiesDescriptor(t *testing.T) {
	recs := FlattenTripUpdates(newFeed(tripUpdateEntity("e1", fullTrip(), 1)))
	require.Len(t, recs, 1)
	assert.Equal(t, TripUpdateRecord{
		EntityID:       "e1",
		TripID:         "1_123^N+",
		RouteID:        "16",
		StartTime:      "07:15:00",
		StartDate:      "20241015",
		NumStopUpdates: 1,
	}, recs[0])
}

func TestFlattenTripUpdates_AbsentDescriptor(t *testing.T) {
	recs := FlattenTripUpdates(newFeed(
		tripUpdateEntity("none", nil, 0),
		tripUpdateEntity("four", nil, 4),
	))
	require.Len(t, recs, 2)
	assert.Equal(t, TripUpdateRecord{EntityID: "none"}, recs[0])
	assert.Equal(t, TripUpdateRecord{EntityID: "four", NumStopUpdates: 4}, recs[1])
}

func TestFlattenTripUpdates_PartialDescriptor(t *testing.T) {
	trip := &gtfsrtpb.TripDescriptor{RouteId: proto.String("5"), StartDate: proto.String("20241015")}
	recs := FlattenTripUpdates(newFeed(tripUpdateEntity("p", trip, 0)))
	require.Len(t, recs, 1)
	assert.Equal(t, "", recs[0].TripID)
	assert.Equal(t, "5", recs[0].RouteID)
	assert.Equal(t, "", recs[0].StartTime)
	assert.Equal(t, "20241015", recs[0].StartDate)
}

func TestFlattenVehiclePositions_CopiesAllFields(t *testing.T) {
	recs := FlattenVehiclePositions(newFeed(vehicleEntity("v", fullVehicle())))
	require.Len(t, recs, 1)
	assert.Equal(t, VehiclePositionRecord{
		EntityID:     "v",
		VehicleID:    "1401",
		VehicleLabel: "16/3",
		Latitude:     52.40625,
		Longitude:    16.9375,
		Bearing:      90,
		Speed:        12.5,
		TripID:       "1_123^N+",
		RouteID:      "16",
	}, recs[0])
}

func TestFlattenVehiclePositions_AbsentStructures(t *testing.T) {
	recs := FlattenVehiclePositions(newFeed(vehicleEntity("bare", &gtfsrtpb.VehiclePosition{})))
	require.Len(t, recs, 1)
	assert.Equal(t, VehiclePositionRecord{EntityID: "bare"}, recs[0])
}

func TestFlattenVehiclePositions_PositionWithoutOptionalFields(t *testing.T) {
	vp := &gtfsrtpb.VehiclePosition{
		Position: &gtfsrtpb.Position{
			Latitude:  proto.Float32(52.5),
			Longitude: proto.Float32(17),
		},
	}
	recs := FlattenVehiclePositions(newFeed(vehicleEntity("p", vp)))
	require.Len(t, recs, 1)
	assert.Equal(t, 52.5, recs[0].Latitude)
	assert.Equal(t, 17.0, recs[0].Longitude)
	assert.Zero(t, recs[0].Bearing)
	assert.Zero(t, recs[0].Speed)
}

func TestInfo(t *testing.T) {
	info := Info(mixedFeed())
	assert.Equal(t, FeedInfo{Version: "2.0", Timestamp: 1700000000, Entities: 3}, info)
}
