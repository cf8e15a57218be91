package formatter

import (
	"time"

	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/table"
)

// Section is one titled table of a report.
type Section struct {
	Title string // e.g. "Vehicle Positions"
	Slug  string // file-name friendly name, e.g. "vehicle_positions"
	Table *table.Table
}

// Report is everything printed at the end of a run.
type Report struct {
	Sections     []Section
	MeanSpeed    *float64 // nil when the speed column is missing or empty
	FetchElapsed time.Duration
	BuildElapsed time.Duration
}

// MeanOf returns the mean of the named column, or nil when the column does
// not exist or has no non-null numeric values.
func MeanOf(t *table.Table, column string) *float64 {
	col, err := t.Column(column)
	if err != nil {
		return nil
	}
	mean, ok := col.Mean()
	if !ok {
		return nil
	}
	return &mean
}
