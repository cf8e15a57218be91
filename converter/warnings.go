package converter

import (
	"sort"
	"strconv"
	"strings"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog"
)

// Warning type constants
const (
	WarningNoTripDescriptor    = "no_trip_descriptor"
	WarningNoVehicleDescriptor = "no_vehicle_descriptor"
	WarningNoPosition          = "no_position"
	WarningMultiplePayloads    = "multiple_payloads"
	WarningEmptyEntityID       = "empty_entity_id"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects default substitutions and feed oddities seen
// while flattening and logs one consolidated line per warning type.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example entity ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many times a warning type was recorded.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll writes every collected warning, sorted by type.
func (w *WarningAggregator) LogAll(logger zerolog.Logger, feed string) {
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		info := w.warnings[t]
		logger.Warn().
			Str("feed", feed).
			Str("warning", t).
			Int("count", info.count).
			Str("examples", strings.Join(info.examples, ", ")).
			Msg(describeWarning(t))
	}
}

func describeWarning(warningType string) string {
	switch warningType {
	case WarningNoTripDescriptor:
		return "entities without trip descriptor, trip columns defaulted"
	case WarningNoVehicleDescriptor:
		return "entities without vehicle descriptor, vehicle columns defaulted"
	case WarningNoPosition:
		return "entities without position, coordinates defaulted to 0"
	case WarningMultiplePayloads:
		return "entities carrying more than one payload"
	case WarningEmptyEntityID:
		return "entities with empty id"
	}
	return warningType
}

// Inspect records default substitutions and payload co-occurrence for the
// entities a flattener of the given kind emits.
func (w *WarningAggregator) Inspect(kind FeedKind, fm *gtfsrtpb.FeedMessage) {
	for i, e := range fm.GetEntity() {
		id := entityID(e)
		if id == "" {
			id = "#" + strconv.Itoa(i)
		}
		switch kind {
		case KindSummary:
			if entityID(e) == "" {
				w.Add(WarningEmptyEntityID, id)
			}
			n := 0
			for _, has := range []bool{e.TripUpdate != nil, e.Vehicle != nil, e.Alert != nil} {
				if has {
					n++
				}
			}
			if n > 1 {
				w.Add(WarningMultiplePayloads, id)
			}
		case KindTripUpdates:
			if e.TripUpdate != nil && e.TripUpdate.Trip == nil {
				w.Add(WarningNoTripDescriptor, id)
			}
		case KindVehiclePositions:
			if e.Vehicle == nil {
				continue
			}
			if e.Vehicle.Vehicle == nil {
				w.Add(WarningNoVehicleDescriptor, id)
			}
			if e.Vehicle.Position == nil {
				w.Add(WarningNoPosition, id)
			}
			if e.Vehicle.Trip == nil {
				w.Add(WarningNoTripDescriptor, id)
			}
		}
	}
}
