package formatter

import (
	"encoding/json"
	"io"
	"math"

	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/table"
)

type jsonColumn struct {
	Name  string `json:"name"`
	DType string `json:"dtype"`
}

type jsonTable struct {
	Name    string       `json:"name"`
	Columns []jsonColumn `json:"columns"`
	Height  int          `json:"height"`
	Rows    [][]any      `json:"rows"`
}

type jsonReport struct {
	Tables         []jsonTable `json:"tables"`
	MeanSpeed      *float64    `json:"mean_speed"`
	FetchElapsedMS int64       `json:"fetch_elapsed_ms"`
	BuildElapsedMS int64       `json:"build_elapsed_ms"`
}

// WriteJSON serializes the full report, every row included.
func WriteJSON(w io.Writer, r Report) error {
	out := jsonReport{
		Tables:         make([]jsonTable, 0, len(r.Sections)),
		MeanSpeed:      r.MeanSpeed,
		FetchElapsedMS: r.FetchElapsed.Milliseconds(),
		BuildElapsedMS: r.BuildElapsed.Milliseconds(),
	}
	for _, s := range r.Sections {
		out.Tables = append(out.Tables, toJSONTable(s))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONTable(s Section) jsonTable {
	jt := jsonTable{
		Name:    s.Title,
		Columns: make([]jsonColumn, 0, s.Table.Width()),
		Height:  s.Table.Height(),
		Rows:    make([][]any, 0, s.Table.Height()),
	}
	for _, c := range s.Table.Columns() {
		jt.Columns = append(jt.Columns, jsonColumn{Name: c.Name(), DType: c.Kind().String()})
	}
	for i := 0; i < s.Table.Height(); i++ {
		jt.Rows = append(jt.Rows, jsonRow(s.Table, i))
	}
	return jt
}

// jsonRow replaces non-finite floats, which JSON cannot carry, with null.
func jsonRow(t *table.Table, i int) []any {
	row := t.Row(i)
	for j, v := range row {
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			row[j] = nil
		}
	}
	return row
}
