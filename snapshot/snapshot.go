// Package snapshot runs one retrieval of the agency's four resources and
// turns them into tables.
//
// Fetch and dictionary failures are fatal and returned as *FatalError. Feed
// decode failures are isolated per feed by the converter and only show up as
// degenerate tables.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/converter"
	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/dictionary"
	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/formatter"
	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/table"
)

// Resource positions in the fetch list.
const (
	ResourceFeeds = iota
	ResourceTripUpdates
	ResourceVehiclePositions
	ResourceVehicleDictionary
	resourceCount
)

// Fetcher retrieves payloads index-aligned with resources, or fails as a
// whole. *gtfsrt.Client implements it.
type Fetcher interface {
	FetchAll(ctx context.Context, resources []string) ([][]byte, error)
}

// FatalError aborts a run. Stage is "fetch" or "dictionary".
type FatalError struct {
	Stage string
	Err   error
}

func (e *FatalError) Error() string { return e.Stage + ": " + e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

// Snapshot holds the tables produced by one run.
type Snapshot struct {
	Dictionary       *table.Table
	Feeds            converter.Result
	TripUpdates      converter.Result
	VehiclePositions converter.Result
	FetchElapsed     time.Duration
	BuildElapsed     time.Duration
}

// Runner wires a fetcher and a converter together.
type Runner struct {
	fetcher   Fetcher
	converter *converter.Converter
	logger    zerolog.Logger
	comma     rune
	now       func() time.Time
}

// NewRunner creates a runner. comma is the dictionary delimiter.
func NewRunner(f Fetcher, logger zerolog.Logger, comma rune) *Runner {
	return &Runner{
		fetcher:   f,
		converter: converter.NewConverter(logger),
		logger:    logger,
		comma:     comma,
		now:       time.Now,
	}
}

// Run fetches the four resources (feeds, trip updates, vehicle positions,
// vehicle dictionary, in that order) and builds every table. Decoding starts
// only after all payloads are available.
func (r *Runner) Run(ctx context.Context, resources []string) (*Snapshot, error) {
	if len(resources) != resourceCount {
		return nil, fmt.Errorf("expected %d resources, got %d", resourceCount, len(resources))
	}

	start := r.now()
	payloads, err := r.fetcher.FetchAll(ctx, resources)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to fetch resources")
		return nil, &FatalError{Stage: "fetch", Err: err}
	}
	snap := &Snapshot{FetchElapsed: r.now().Sub(start)}
	r.logger.Info().Dur("elapsed", snap.FetchElapsed).Int("resources", len(payloads)).Msg("fetched resources")

	start = r.now()
	snap.Dictionary, err = dictionary.Load(payloads[ResourceVehicleDictionary], dictionary.WithComma(r.comma))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to load vehicle dictionary")
		return nil, &FatalError{Stage: "dictionary", Err: err}
	}
	snap.Feeds = r.converter.Convert(converter.KindSummary, payloads[ResourceFeeds])
	snap.TripUpdates = r.converter.Convert(converter.KindTripUpdates, payloads[ResourceTripUpdates])
	snap.VehiclePositions = r.converter.Convert(converter.KindVehiclePositions, payloads[ResourceVehiclePositions])
	snap.BuildElapsed = r.now().Sub(start)

	r.logger.Info().
		Dur("elapsed", snap.BuildElapsed).
		Int("dictionary_rows", snap.Dictionary.Height()).
		Int("feed_rows", snap.Feeds.Table.Height()).
		Int("trip_update_rows", snap.TripUpdates.Table.Height()).
		Int("vehicle_position_rows", snap.VehiclePositions.Table.Height()).
		Msg("constructed tables")
	return snap, nil
}

// Failures returns the feeds that were replaced by error tables.
func (s *Snapshot) Failures() []converter.Result {
	var out []converter.Result
	for _, res := range []converter.Result{s.Feeds, s.TripUpdates, s.VehiclePositions} {
		if res.Failed() {
			out = append(out, res)
		}
	}
	return out
}

// Report arranges the tables in print order.
func (s *Snapshot) Report() formatter.Report {
	return formatter.Report{
		Sections: []formatter.Section{
			{Title: "Vehicle Dictionary", Slug: "vehicle_dictionary", Table: s.Dictionary},
			{Title: "Feeds", Slug: "feeds", Table: s.Feeds.Table},
			{Title: "Trip Updates", Slug: "trip_updates", Table: s.TripUpdates.Table},
			{Title: "Vehicle Positions", Slug: "vehicle_positions", Table: s.VehiclePositions.Table},
		},
		MeanSpeed:    formatter.MeanOf(s.VehiclePositions.Table, "speed"),
		FetchElapsed: s.FetchElapsed,
		BuildElapsed: s.BuildElapsed,
	}
}
