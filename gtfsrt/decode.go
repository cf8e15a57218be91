package gtfsrt

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Decode parses a GTFS-RT protobuf payload. Truncated or malformed input and
// messages missing required fields (header, entity id) fail with a
// *DecodeError; no partially populated message is ever returned.
func Decode(b []byte) (*gtfsrtpb.FeedMessage, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &fm, nil
}
