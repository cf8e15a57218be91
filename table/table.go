package table

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	ErrColumnLength    = errors.New("column length mismatch")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrNoColumn        = errors.New("column not found")
	ErrNoColumns       = errors.New("table has no columns")
)

// Table is an immutable set of equally sized, uniquely named columns.
type Table struct {
	df      dataframe.DataFrame
	columns []*Column
	index   map[string]int
}

// New assembles a table from columns. All columns must have the same length
// and distinct names.
func New(columns ...*Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	ss := make([]series.Series, len(columns))
	names := make([]string, len(columns))
	for i, c := range columns {
		if c.Len() != columns[0].Len() {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", c.Name(), c.Len(), columns[0].Len(), ErrColumnLength)
		}
		ss[i] = c.s
		names[i] = c.Name()
	}
	if err := CheckNames(names); err != nil {
		return nil, err
	}
	return FromDataFrame(dataframe.New(ss...))
}

// FromDataFrame wraps a gota DataFrame. Its column names must be distinct.
func FromDataFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("build table: %w", df.Err)
	}
	names := df.Names()
	if err := CheckNames(names); err != nil {
		return nil, err
	}
	t := &Table{
		df:      df,
		columns: make([]*Column, len(names)),
		index:   make(map[string]int, len(names)),
	}
	for i, name := range names {
		col, err := FromSeries(df.Col(name))
		if err != nil {
			return nil, err
		}
		t.columns[i] = col
		t.index[name] = i
	}
	return t, nil
}

// CheckNames reports the first repeated column name.
func CheckNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return fmt.Errorf("column %q: %w", n, ErrDuplicateColumn)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// DataFrame returns the backing gota DataFrame.
func (t *Table) DataFrame() dataframe.DataFrame { return t.df }

// Height returns the number of rows.
func (t *Table) Height() int { return t.df.Nrow() }

// Width returns the number of columns.
func (t *Table) Width() int { return t.df.Ncol() }

// Names returns the column names in order.
func (t *Table) Names() []string { return t.df.Names() }

// Columns returns the columns in order.
func (t *Table) Columns() []*Column { return t.columns }

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrNoColumn)
	}
	return t.columns[i], nil
}

// Row returns row i as one value per column, nil for nulls.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.Value(i)
	}
	return row
}
