package formatter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/table"
)

// ExportCSV writes every section to dir/<slug>.csv, creating dir if needed.
// Nulls are written as empty cells.
func ExportCSV(dir string, r Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	for _, s := range r.Sections {
		path := filepath.Join(dir, s.Slug+".csv")
		if err := writeCSVFile(path, s.Table); err != nil {
			return fmt.Errorf("export %s: %w", s.Slug, err)
		}
	}
	return nil
}

func writeCSVFile(path string, t *table.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.Names()); err != nil {
		return err
	}
	cols := t.Columns()
	record := make([]string, len(cols))
	for i := 0; i < t.Height(); i++ {
		for j, c := range cols {
			if c.IsNull(i) {
				record[j] = ""
				continue
			}
			record[j] = c.Format(i)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
