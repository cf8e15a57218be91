package converter

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/proto"
)

func TestTripFieldsOf(t *testing.T) {
	tests := []struct {
		name     string
		input    *gtfsrtpb.TripDescriptor
		expected tripFields
	}{
		{
			name:     "nil descriptor",
			input:    nil,
			expected: tripFields{},
		},
		{
			name:     "empty descriptor",
			input:    &gtfsrtpb.TripDescriptor{},
			expected: tripFields{},
		},
		{
			name:     "only start time",
			input:    &gtfsrtpb.TripDescriptor{StartTime: proto.String("25:10:00")},
			expected: tripFields{StartTime: "25:10:00"},
		},
		{
			name:  "full descriptor",
			input: fullTrip(),
			expected: tripFields{
				TripID:    "1_123^N+",
				RouteID:   "16",
				StartTime: "07:15:00",
				StartDate: "20241015",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tripFieldsOf(tt.input))
		})
	}
}

func TestVehicleFieldsOf(t *testing.T) {
	assert.Equal(t, vehicleFields{}, vehicleFieldsOf(nil), "nil descriptor should default")
	got := vehicleFieldsOf(&gtfsrtpb.VehicleDescriptor{Label: proto.String("L")})
	assert.Equal(t, vehicleFields{Label: "L"}, got)
}

func TestPositionFieldsOf(t *testing.T) {
	tests := []struct {
		name     string
		input    *gtfsrtpb.Position
		expected positionFields
	}{
		{
			name:     "nil position",
			input:    nil,
			expected: positionFields{},
		},
		{
			name:     "unset coordinates use schema default",
			input:    &gtfsrtpb.Position{Speed: proto.Float32(3)},
			expected: positionFields{Speed: 3},
		},
		{
			name: "bearing without speed",
			input: &gtfsrtpb.Position{
				Latitude:  proto.Float32(1.5),
				Longitude: proto.Float32(-2.5),
				Bearing:   proto.Float32(180),
			},
			expected: positionFields{Latitude: 1.5, Longitude: -2.5, Bearing: 180},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, positionFieldsOf(tt.input))
		})
	}
}
