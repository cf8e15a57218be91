package converter

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/gtfsrt"
	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/table"
)

// FeedKind selects the flattener applied to a feed.
type FeedKind int

const (
	KindSummary FeedKind = iota
	KindTripUpdates
	KindVehiclePositions
)

// String returns the human-readable feed name used in logs and messages.
func (k FeedKind) String() string {
	switch k {
	case KindSummary:
		return "feeds"
	case KindTripUpdates:
		return "trip updates"
	case KindVehiclePositions:
		return "vehicle positions"
	}
	return fmt.Sprintf("FeedKind(%d)", int(k))
}

// FailureMessage is the text stored in the degenerate table of a feed that
// failed to parse.
func (k FeedKind) FailureMessage() string {
	return "Failed to parse " + k.String()
}

// Result is the outcome of converting one feed. When Err is nil, Table holds
// the flattened rows; otherwise Table is the degenerate error table.
type Result struct {
	Kind  FeedKind
	Table *table.Table
	Info  FeedInfo
	Err   error
}

// Failed reports whether the feed was replaced by an error table.
func (r Result) Failed() bool { return r.Err != nil }

// Converter decodes and flattens feeds, isolating failures per feed.
type Converter struct {
	logger zerolog.Logger
}

// NewConverter creates a new converter instance
func NewConverter(logger zerolog.Logger) *Converter {
	return &Converter{logger: logger}
}

// Convert decodes payload and flattens it with the flattener for kind. A
// decode failure is logged and returned inside the Result; it is never
// propagated as an error.
func (c *Converter) Convert(kind FeedKind, payload []byte) Result {
	fm, err := gtfsrt.Decode(payload)
	if err != nil {
		c.logger.Error().Err(err).Str("feed", kind.String()).Msg(kind.FailureMessage())
		return Result{Kind: kind, Table: ErrorTable(kind.FailureMessage()), Err: err}
	}
	return c.ConvertMessage(kind, fm)
}

// ConvertMessage flattens an already decoded feed.
func (c *Converter) ConvertMessage(kind FeedKind, fm *gtfsrtpb.FeedMessage) Result {
	info := Info(fm)
	c.logger.Debug().
		Str("feed", kind.String()).
		Str("version", info.Version).
		Uint64("timestamp", info.Timestamp).
		Int("entities", info.Entities).
		Msg("decoded feed")

	warnings := NewWarningAggregator()
	warnings.Inspect(kind, fm)
	warnings.LogAll(c.logger, kind.String())

	var (
		tbl *table.Table
		err error
	)
	switch kind {
	case KindSummary:
		tbl, err = SummaryTable(FlattenSummary(fm))
	case KindTripUpdates:
		tbl, err = TripUpdateTable(FlattenTripUpdates(fm))
	case KindVehiclePositions:
		tbl, err = VehiclePositionTable(FlattenVehiclePositions(fm))
	default:
		err = fmt.Errorf("unknown feed kind %d", int(kind))
	}
	if err != nil {
		c.logger.Error().Err(err).Str("feed", kind.String()).Msg("failed to assemble table")
		return Result{Kind: kind, Table: ErrorTable(kind.FailureMessage()), Info: info, Err: err}
	}
	return Result{Kind: kind, Table: tbl, Info: info}
}
