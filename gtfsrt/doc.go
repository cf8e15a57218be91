// Package gtfsrt retrieves and decodes GTFS-Realtime payloads.
//
// Client fetches the raw bytes of a fixed list of resources in parallel,
// either over HTTP or from local files. Decode turns a protobuf payload into
// a FeedMessage from the MobilityData bindings.
//
// Both stages are all-or-nothing: FetchAll returns every payload or the
// first error, and Decode returns a complete FeedMessage or a *DecodeError.
package gtfsrt
