package table

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/series"
)

// Kind is the data type of a Column.
type Kind int

const (
	Utf8 Kind = iota
	Int64
	Float64
	Bool
)

func (k Kind) String() string {
	switch k {
	case Utf8:
		return "str"
	case Int64:
		return "i64"
	case Float64:
		return "f64"
	case Bool:
		return "bool"
	}
	return "unknown"
}

func kindOf(t series.Type) Kind {
	switch t {
	case series.Int:
		return Int64
	case series.Float:
		return Float64
	case series.Bool:
		return Bool
	}
	return Utf8
}

// nullCell is the value gota parses as a missing element for every type.
const nullCell = "NaN"

// Column is a named, typed sequence of values backed by a gota Series.
type Column struct {
	s series.Series
}

// Strings creates a Utf8 column with no nulls.
func Strings(name string, values []string) *Column {
	return &Column{s: series.New(values, series.String, name)}
}

// Ints creates an Int64 column with no nulls.
func Ints(name string, values []int64) *Column {
	vals := make([]int, len(values))
	for i, v := range values {
		vals[i] = int(v)
	}
	return &Column{s: series.New(vals, series.Int, name)}
}

// Floats creates a Float64 column with no nulls.
func Floats(name string, values []float64) *Column {
	return &Column{s: series.New(values, series.Float, name)}
}

// Bools creates a Bool column with no nulls.
func Bools(name string, values []bool) *Column {
	return &Column{s: series.New(values, series.Bool, name)}
}

// FromSeries wraps an existing series.
func FromSeries(s series.Series) (*Column, error) {
	if s.Err != nil {
		return nil, fmt.Errorf("column %q: %w", s.Name, s.Err)
	}
	return &Column{s: s}, nil
}

// WithNulls returns a copy of the column where every row with valid[i] false
// is null. The mask must have the same length as the column.
func (c *Column) WithNulls(valid []bool) (*Column, error) {
	if len(valid) != c.Len() {
		return nil, fmt.Errorf("column %q: validity mask has %d entries, want %d: %w", c.Name(), len(valid), c.Len(), ErrColumnLength)
	}
	s := c.s.Copy()
	for i, ok := range valid {
		if !ok {
			s.Elem(i).Set(nullCell)
		}
	}
	return &Column{s: s}, nil
}

func (c *Column) Name() string { return c.s.Name }
func (c *Column) Kind() Kind   { return kindOf(c.s.Type()) }

// Series returns the backing gota series.
func (c *Column) Series() series.Series { return c.s }

// Len returns the number of values, nulls included.
func (c *Column) Len() int { return c.s.Len() }

// IsNull reports whether row i holds a missing value.
func (c *Column) IsNull(i int) bool { return c.s.Elem(i).IsNA() }

// NullCount returns the number of missing values.
func (c *Column) NullCount() int {
	n := 0
	for _, na := range c.s.IsNaN() {
		if na {
			n++
		}
	}
	return n
}

// Value returns row i as a Go value, or nil for a null.
func (c *Column) Value(i int) any {
	e := c.s.Elem(i)
	if e.IsNA() {
		return nil
	}
	switch c.Kind() {
	case Int64:
		v, _ := e.Int()
		return int64(v)
	case Float64:
		return e.Float()
	case Bool:
		v, _ := e.Bool()
		return v
	}
	return e.String()
}

// Format renders row i as text. Nulls render as "null".
func (c *Column) Format(i int) string {
	switch v := c.Value(i).(type) {
	case nil:
		return "null"
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// Mean returns the arithmetic mean of the non-null values of a numeric
// column. ok is false when the column is not numeric or holds no values.
func (c *Column) Mean() (mean float64, ok bool) {
	if k := c.Kind(); k != Int64 && k != Float64 {
		return 0, false
	}
	na := c.s.IsNaN()
	vals := make([]float64, 0, c.Len())
	for i, f := range c.s.Float() {
		if na[i] || math.IsNaN(f) {
			continue
		}
		vals = append(vals, f)
	}
	if len(vals) == 0 {
		return 0, false
	}
	return series.Floats(vals).Mean(), true
}
