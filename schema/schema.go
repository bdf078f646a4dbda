package schema

import (
	"fmt"

	"github.com/go-sif/sifprep"
)

// column describes the position of a field in a Row.
type column struct {
	idx int
}

// Clone returns a copy of this Column
func (c *column) Clone() sifprep.Column {
	return &column{c.idx}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// SetIndex modifies the index of this Column within a Schema
func (c *column) SetIndex(newIndex int) {
	c.idx = newIndex
}

// Schema is an ordered mapping from column names to positions
// within a Row. It allows one to obtain positions by name,
// define new columns, move columns, remove columns, etc.
type schema struct {
	schema map[string]sifprep.Column
}

// CreateSchema is a factory for Schemas
func CreateSchema() sifprep.Schema {
	return &schema{
		schema: make(map[string]sifprep.Column),
	}
}

// FromColumnNames creates a Schema whose columns appear in the given order.
// Column names must be unique.
func FromColumnNames(names []string) (sifprep.Schema, error) {
	s := CreateSchema()
	for _, name := range names {
		if _, err := s.CreateColumn(name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema sifprep.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, offset sifprep.Column) error {
		otherOffset, err := otherSchema.GetOffset(name)
		if err != nil {
			return err
		}
		if offset.Index() != otherOffset.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() sifprep.Schema {
	newSchema := make(map[string]sifprep.Column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	return &schema{schema: newSchema}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.schema)
}

// GetOffset returns the position of a particular column within a row.
func (s *schema) GetOffset(colName string) (offset sifprep.Column, err error) {
	offset, ok := s.schema[colName]
	if !ok {
		err = fmt.Errorf("Schema does not contain column with name %s", colName)
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// CreateColumn defines a new column at the end of the Schema
func (s *schema) CreateColumn(colName string) (newSchema sifprep.Schema, err error) {
	return s.InsertColumn(colName, len(s.schema))
}

// InsertColumn defines a new column at a specific position within the Schema.
// Columns at or after that position are shifted one place to the right.
func (s *schema) InsertColumn(colName string, pos int) (newSchema sifprep.Schema, err error) {
	if _, containsOffset := s.schema[colName]; containsOffset {
		return nil, fmt.Errorf("Schema already contains column with name %s", colName)
	}
	if pos < 0 || pos > len(s.schema) {
		return nil, fmt.Errorf("Cannot insert column %s at position %d of a Schema with %d columns", colName, pos, len(s.schema))
	}
	for _, col := range s.schema {
		if col.Index() >= pos {
			col.SetIndex(col.Index() + 1)
		}
	}
	s.schema[colName] = &column{pos}
	return s, nil
}

// MoveColumn moves an existing column to a new position within the Schema.
// The relative order of all other columns is retained.
func (s *schema) MoveColumn(colName string, pos int) (newSchema sifprep.Schema, err error) {
	if _, err = s.GetOffset(colName); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= len(s.schema) {
		return nil, fmt.Errorf("Cannot move column %s to position %d of a Schema with %d columns", colName, pos, len(s.schema))
	}
	s.RemoveColumn(colName)
	return s.InsertColumn(colName, pos)
}

// RenameColumn renames a column within the Schema, retaining its position
func (s *schema) RenameColumn(oldName string, newName string) (newSchema sifprep.Schema, err error) {
	if _, err = s.GetOffset(oldName); err != nil {
		return nil, err
	}
	if oldName == newName {
		return s, nil
	}
	if s.HasColumn(newName) {
		return nil, fmt.Errorf("Schema already contains column with name %s", newName)
	}
	s.schema[newName] = s.schema[oldName]
	delete(s.schema, oldName)
	return s, nil
}

// RemoveColumn removes a column from the Schema. Columns after it are shifted one place to the left.
func (s *schema) RemoveColumn(colName string) (sifprep.Schema, bool) {
	removed, ok := s.schema[colName]
	if !ok {
		return s, false
	}
	delete(s.schema, colName)
	for _, col := range s.schema {
		if col.Index() > removed.Index() {
			col.SetIndex(col.Index() - 1)
		}
	}
	return s, true
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.schema))
	for k, v := range s.schema {
		names[v.Index()] = k
	}
	return names
}

// ForEachColumn iterates over the columns in this Schema, in index order.
func (s *schema) ForEachColumn(fn func(name string, col sifprep.Column) error) error {
	for _, name := range s.ColumnNames() {
		err := fn(name, s.schema[name])
		if err != nil {
			return err
		}
	}
	return nil
}
