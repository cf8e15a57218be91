// Package dictionary loads the vehicle dictionary, a delimited text file with
// a header row, into a table whose column types are detected from every row.
package dictionary

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/table"
)

// ErrEmpty is returned for input without a header row.
var ErrEmpty = errors.New("vehicle dictionary: no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type options struct {
	comma rune
}

// Option configures Load.
type Option func(*options)

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// Load parses data into a table. Empty cells become nulls. Column types are
// detected by gota over every row: any text makes a column Utf8, otherwise
// true/false makes it Bool, then any decimal makes it Float64, else Int64.
// A column with no values is Utf8. Malformed input is returned as an error.
func Load(data []byte, opts ...Option) (*table.Table, error) {
	o := options{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.Comma = o.comma
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("vehicle dictionary: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	head := records[0]
	for j, name := range head {
		head[j] = strings.TrimSpace(name)
	}
	if err := table.CheckNames(head); err != nil {
		return nil, fmt.Errorf("vehicle dictionary: %w", err)
	}

	// gota refuses a header without rows
	if len(records) == 1 {
		cols := make([]*table.Column, len(head))
		for j, name := range head {
			cols[j] = table.Strings(name, nil)
		}
		return table.New(cols...)
	}

	for _, row := range records[1:] {
		for j, cell := range row {
			if cell == "" {
				row[j] = "NaN"
			}
		}
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	t, err := table.FromDataFrame(df)
	if err != nil {
		return nil, fmt.Errorf("vehicle dictionary: %w", err)
	}
	return t, nil
}
