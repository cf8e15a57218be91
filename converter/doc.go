// Package converter flattens decoded GTFS-Realtime feeds into tables.
//
// Three flatteners walk FeedMessage.Entity once, in order:
//
//   - FlattenSummary: one row per entity with presence flags for the trip
//     update, vehicle position and alert payloads. Never drops rows.
//   - FlattenTripUpdates: one row per entity carrying a TripUpdate.
//   - FlattenVehiclePositions: one row per entity carrying a VehiclePosition.
//
// Optional nested structures are replaced by explicit defaults (see
// defaults.go): strings default to "" and numbers to 0.
//
// An entity may carry more than one payload. The feed is accepted as is and
// the entity appears in every table whose filter it matches.
//
// Converter.Convert wraps decoding and flattening for one payload. A payload
// that does not decode yields a Result holding the error and a one-row
// table with a single "error" column; it never aborts the other feeds.
package converter
