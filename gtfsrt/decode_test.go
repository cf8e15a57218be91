package gtfsrt

import (
	"errors"
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func sampleFeed() *gtfsrtpb.FeedMessage {
	return &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("1"),
				TripUpdate: &gtfsrtpb.TripUpdate{
					Trip: &gtfsrtpb.TripDescriptor{TripId: proto.String("T1")},
				},
			},
			{
				Id: proto.String("2"),
				Vehicle: &gtfsrtpb.VehiclePosition{
					Vehicle: &gtfsrtpb.VehicleDescriptor{Id: proto.String("V2")},
				},
			},
		},
	}
}

func TestDecode_Valid(t *testing.T) {
	b, err := proto.Marshal(sampleFeed())
	require.NoError(t, err)

	fm, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, fm.GetEntity(), 2)
	assert.Equal(t, "1", fm.GetEntity()[0].GetId())
	assert.Equal(t, "T1", fm.GetEntity()[0].GetTripUpdate().GetTrip().GetTripId())
	assert.Equal(t, "V2", fm.GetEntity()[1].GetVehicle().GetVehicle().GetId())
	assert.Equal(t, uint64(1700000000), fm.GetHeader().GetTimestamp())
}

func TestDecode_Malformed(t *testing.T) {
	fm, err := Decode([]byte{0xff, 0xff, 0xff, 0xff})
	assert.Nil(t, fm)

	var de *DecodeError
	require.True(t, errors.As(err, &de), "expected *DecodeError, got %T", err)
	assert.Error(t, de.Unwrap())
}

func TestDecode_Truncated(t *testing.T) {
	b, err := proto.Marshal(sampleFeed())
	require.NoError(t, err)

	fm, err := Decode(b[:len(b)-1])
	assert.Nil(t, fm)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestDecode_MissingRequiredHeader(t *testing.T) {
	// An empty payload is a FeedMessage without its required header.
	fm, err := Decode(nil)
	assert.Nil(t, fm)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestDecode_Deterministic(t *testing.T) {
	b, err := proto.Marshal(sampleFeed())
	require.NoError(t, err)

	a, err := Decode(b)
	require.NoError(t, err)
	c, err := Decode(b)
	require.NoError(t, err)
	assert.True(t, proto.Equal(a, c))
}
