package schema

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
)

// Column describes the position and type
// of a field in a Row.
type column struct {
	idx     int
	colType dsformat.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() dsformat.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// SetIndex modifies the index of this Column within a Schema
func (c *column) SetIndex(newIndex int) {
	c.idx = newIndex
}

// Type returns the ColumnType of this Column
func (c *column) Type() dsformat.ColumnType {
	return c.colType
}

// Schema is a mapping from column names to positions
// within a Row. It allows one to obtain columns by name,
// define new columns, remove columns, etc.
type schema struct {
	schema   map[string]dsformat.Column
	toRemove map[string]bool
}

// CreateSchema is a factory for Schemas
func CreateSchema() dsformat.Schema {
	return &schema{
		schema:   make(map[string]dsformat.Column),
		toRemove: make(map[string]bool),
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema dsformat.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, offset dsformat.Column) error {
		otherOffset, err := otherSchema.GetOffset(name)
		if err != nil {
			return err
		}
		if offset.Index() != otherOffset.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(offset.Type()) != reflect.TypeOf(otherOffset.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() dsformat.Schema {
	newSchema := make(map[string]dsformat.Column)
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	newRemoved := make(map[string]bool)
	for k, v := range s.toRemove {
		newRemoved[k] = v
	}
	return &schema{schema: newSchema, toRemove: newRemoved}
}

// NumColumns returns the number of columns in this Schema, including those marked for removal
func (s *schema) NumColumns() int {
	return len(s.schema)
}

// NumRemovedColumns returns the number of removed columns in this Schema
func (s *schema) NumRemovedColumns() int {
	return len(s.toRemove)
}

// Repack produces a compacted Schema, dropping columns marked for removal and closing gaps in column indices.
func (s *schema) Repack() (newSchema dsformat.Schema) {
	newSchema = CreateSchema()
	// we need the column names in index order
	cols := make([]string, 0, len(s.schema)-s.NumRemovedColumns())
	for k := range s.schema {
		if !s.toRemove[k] {
			cols = append(cols, k)
		}
	}
	sort.Slice(cols, func(i, j int) bool {
		return s.schema[cols[i]].Index() < s.schema[cols[j]].Index()
	})
	// re-insert into fresh schema in original index order
	for _, name := range cols {
		newSchema, _ = newSchema.CreateColumn(name, s.schema[name].Type())
	}
	return
}

// GetOffset returns the Column with the given name
func (s *schema) GetOffset(colName string) (offset dsformat.Column, err error) {
	offset, ok := s.schema[colName]
	if !ok {
		err = errors.MissingColumnError{Name: colName}
	}
	return
}

// HasColumn returns true iff this schema contains a column with the given name which has not been removed
func (s *schema) HasColumn(colName string) bool {
	_, err := s.GetOffset(colName)
	return err == nil && !s.IsMarkedForRemoval(colName)
}

// CreateColumn defines a new column within the Schema
func (s *schema) CreateColumn(colName string, columnType dsformat.ColumnType) (newSchema dsformat.Schema, err error) {
	_, containsOffset := s.schema[colName]
	if containsOffset {
		err = errors.DuplicateColumnError{Name: colName}
	} else {
		s.schema[colName] = &column{len(s.schema), columnType}
		newSchema = s
	}
	return
}

// RenameColumn renames a column within the Schema
func (s *schema) RenameColumn(oldName string, newName string) (newSchema dsformat.Schema, err error) {
	if s.IsMarkedForRemoval(oldName) {
		return nil, fmt.Errorf("Cannot rename removed column %s", oldName)
	}
	if oldName == newName {
		_, err = s.GetOffset(oldName)
		return s, err
	}
	if _, exists := s.schema[newName]; exists {
		return nil, errors.DuplicateColumnError{Name: newName}
	}
	_, err = s.GetOffset(oldName)
	if err == nil {
		s.schema[newName] = s.schema[oldName]
		delete(s.schema, oldName)
		newSchema = s
	}
	return
}

// RetypeColumn changes the ColumnType of an existing column. Row data is not altered.
func (s *schema) RetypeColumn(colName string, columnType dsformat.ColumnType) (newSchema dsformat.Schema, err error) {
	if s.IsMarkedForRemoval(colName) {
		return nil, fmt.Errorf("Cannot retype removed column %s", colName)
	}
	offset, err := s.GetOffset(colName)
	if err != nil {
		return nil, err
	}
	s.schema[colName] = &column{offset.Index(), columnType}
	return s, nil
}

// RemoveColumn marks a column for removal from the Schema, at a convenient time
// This does not alter the schema, other than to mark the column for later removal
func (s *schema) RemoveColumn(colName string) (dsformat.Schema, bool) {
	if _, ok := s.schema[colName]; !ok {
		return s, false
	}
	s.toRemove[colName] = true
	return s, true
}

// IsMarkedForRemoval returns true iff the given column has been marked for removal
func (s *schema) IsMarkedForRemoval(colName string) bool {
	_, marked := s.toRemove[colName]
	return marked
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.schema))
	for k, v := range s.schema {
		names[v.Index()] = k
	}
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []dsformat.ColumnType {
	types := make([]dsformat.ColumnType, len(s.schema))
	for _, v := range s.schema {
		types[v.Index()] = v.Type()
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema. Does not necessarily iterate in order of column index.
func (s *schema) ForEachColumn(fn func(name string, col dsformat.Column) error) error {
	for k, v := range s.schema {
		err := fn(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateSchemaFromColumns is a factory for Schemas, creating columns in the order given. names and types must have equal lengths.
func CreateSchemaFromColumns(names []string, types []dsformat.ColumnType) (dsformat.Schema, error) {
	if len(names) != len(types) {
		return nil, fmt.Errorf("Got %d column names but %d column types", len(names), len(types))
	}
	s := CreateSchema()
	for i, name := range names {
		if _, err := s.CreateColumn(name, types[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}
