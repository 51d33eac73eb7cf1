// Package frame provides a minimal column-typed table used to carry
// generated observations between the sampler and the assembler.
package frame

import (
	"fmt"
)

// Kind identifies the storage type of a column.
type Kind int

// Supported column kinds.
const (
	Float Kind = iota
	String
	Int
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case String:
		return "string"
	case Int:
		return "int"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column is a single named, typed column. Exactly one of the value slices is
// populated, matching Kind.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
	Ints    []int
}

// Len returns the number of values stored in the column.
func (c Column) Len() int {
	switch c.Kind {
	case Float:
		return len(c.Floats)
	case String:
		return len(c.Strings)
	case Int:
		return len(c.Ints)
	default:
		return 0
	}
}

// ColumnType describes a column's identity for schema comparison.
type ColumnType struct {
	Name string
	Kind Kind
}

// Frame is an ordered collection of equal-length columns.
type Frame struct {
	cols   []Column
	byName map[string]int
	rows   int
}

// New builds a Frame from the given columns. All columns must have the same
// length and distinct names.
func New(cols ...Column) (*Frame, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidFrame)
	}
	byName := make(map[string]int, len(cols))
	rows := cols[0].Len()
	for i, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrInvalidFrame, i)
		}
		if _, ok := byName[c.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidFrame, c.Name)
		}
		if c.Len() != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrInvalidFrame, c.Name, c.Len(), rows)
		}
		byName[c.Name] = i
	}
	return &Frame{cols: cols, byName: byName, rows: rows}, nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return f.rows }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// Schema returns the ordered column identities.
func (f *Frame) Schema() []ColumnType {
	schema := make([]ColumnType, len(f.cols))
	for i, c := range f.cols {
		schema[i] = ColumnType{Name: c.Name, Kind: c.Kind}
	}
	return schema
}

// Column returns the column with the given name.
func (f *Frame) Column(name string) (Column, error) {
	i, ok := f.byName[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}
	return f.cols[i], nil
}

// Floats returns the float values of a named column.
func (f *Frame) Floats(name string) ([]float64, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Float {
		return nil, fmt.Errorf("%w: column %q is %s, want float", ErrColumnKind, name, c.Kind)
	}
	return c.Floats, nil
}

// Strings returns the string values of a named column.
func (f *Frame) Strings(name string) ([]string, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != String {
		return nil, fmt.Errorf("%w: column %q is %s, want string", ErrColumnKind, name, c.Kind)
	}
	return c.Strings, nil
}

// Ints returns the int values of a named column.
func (f *Frame) Ints(name string) ([]int, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Int {
		return nil, fmt.Errorf("%w: column %q is %s, want int", ErrColumnKind, name, c.Kind)
	}
	return c.Ints, nil
}

// SameSchema reports whether two frames have identical column names, kinds,
// and ordering. On mismatch it returns a description of the first difference.
func SameSchema(a, b *Frame) (bool, string) {
	if a.NumCols() != b.NumCols() {
		return false, fmt.Sprintf("column count %d vs %d", a.NumCols(), b.NumCols())
	}
	sa, sb := a.Schema(), b.Schema()
	for i := range sa {
		if sa[i].Name != sb[i].Name {
			return false, fmt.Sprintf("column %d named %q vs %q", i, sa[i].Name, sb[i].Name)
		}
		if sa[i].Kind != sb[i].Kind {
			return false, fmt.Sprintf("column %q typed %s vs %s", sa[i].Name, sa[i].Kind, sb[i].Kind)
		}
	}
	return true, ""
}
