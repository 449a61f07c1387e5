package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
)

// rowImpl is a representation of a single row of columnar data,
// (a slice of a Dataset), along with a reference to the
// Schema for that row (a mapping of column names to positions).
type rowImpl struct {
	values []interface{} // likely a slice of a dataset's row storage
	schema dsformat.Schema
}

// Schema returns a read-only copy of the schema for a row
func (r *rowImpl) Schema() dsformat.Schema {
	return r.schema.Clone()
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	for _, name := range r.schema.ColumnNames() {
		if r.schema.IsMarkedForRemoval(name) {
			continue
		}
		offset, err := r.schema.GetOffset(name)
		if err != nil {
			continue
		}
		val := "nil"
		if v := r.value(offset); v != nil {
			val = toDisplayString(offset.Type(), v)
		}
		fmt.Fprintf(&res, "\"%s\": %s,", name, val)
	}
	fmt.Fprint(&res, "}")
	return res.String()
}

// toDisplayString renders a value with its column type, falling back to %v
// for values which have not yet been converted to that type (e.g. mid-retype)
func toDisplayString(colType dsformat.ColumnType, v interface{}) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("%v", v)
		}
	}()
	return colType.ToString(v)
}

// ToMap returns the values of this row keyed by column name
func (r *rowImpl) ToMap() map[string]interface{} {
	result := make(map[string]interface{}, r.schema.NumColumns())
	r.schema.ForEachColumn(func(name string, col dsformat.Column) error {
		if !r.schema.IsMarkedForRemoval(name) {
			result[name] = r.value(col)
		}
		return nil
	})
	return result
}

// value returns the stored value for a column. Columns added after this row was built read as nil.
func (r *rowImpl) value(offset dsformat.Column) interface{} {
	if offset.Index() >= len(r.values) {
		return nil
	}
	return r.values[offset.Index()]
}

func (r *rowImpl) getOffset(colName string) (dsformat.Column, error) {
	if r.schema.IsMarkedForRemoval(colName) {
		return nil, errors.MissingColumnError{Name: colName}
	}
	return r.schema.GetOffset(colName)
}

// IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
func (r *rowImpl) IsNil(colName string) bool {
	offset, err := r.getOffset(colName)
	if err != nil {
		return false
	}
	return r.value(offset) == nil
}

// SetNil sets the given column value to nil within this row
func (r *rowImpl) SetNil(colName string) error {
	offset, err := r.getOffset(colName)
	if err != nil {
		return err
	}
	r.store(offset, nil)
	return nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *rowImpl) Get(colName string) (col interface{}, err error) {
	offset, err := r.getOffset(colName)
	if err != nil {
		return nil, err
	}
	return r.value(offset), nil
}

// getNonNil retrieves a value, failing if it is nil
func (r *rowImpl) getNonNil(colName string) (interface{}, error) {
	v, err := r.Get(colName)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.NilValueError{Name: colName}
	}
	return v, nil
}

func typeMismatch(colName string, expected string, v interface{}) error {
	return errors.IncompatibleColumnTypeError{Name: colName, Expected: expected, Actual: fmt.Sprintf("%T", v)}
}

// GetBool retrieves a single bool from the column with the given name.
func (r *rowImpl) GetBool(colName string) (col bool, err error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return
	}
	col, ok := v.(bool)
	if !ok {
		err = typeMismatch(colName, "bool", v)
	}
	return
}

// GetInt32 retrieves a single int32 from the column with the given name
func (r *rowImpl) GetInt32(colName string) (col int32, err error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return
	}
	col, ok := v.(int32)
	if !ok {
		err = typeMismatch(colName, "int32", v)
	}
	return
}

// GetInt64 retrieves a single int64 from the column with the given name
func (r *rowImpl) GetInt64(colName string) (col int64, err error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return
	}
	col, ok := v.(int64)
	if !ok {
		err = typeMismatch(colName, "int64", v)
	}
	return
}

// GetFloat32 retrieves a single float32 from the column with the given name
func (r *rowImpl) GetFloat32(colName string) (col float32, err error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return
	}
	col, ok := v.(float32)
	if !ok {
		err = typeMismatch(colName, "float32", v)
	}
	return
}

// GetFloat64 retrieves a single float64 from the column with the given name
func (r *rowImpl) GetFloat64(colName string) (col float64, err error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return
	}
	col, ok := v.(float64)
	if !ok {
		err = typeMismatch(colName, "float64", v)
	}
	return
}

// GetTime retrieves a single Time from the column with the given name
func (r *rowImpl) GetTime(colName string) (col time.Time, err error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return
	}
	col, ok := v.(time.Time)
	if !ok {
		err = typeMismatch(colName, "time", v)
	}
	return
}

// GetVarString retrieves a single string from the column with the given name
func (r *rowImpl) GetVarString(colName string) (col string, err error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return
	}
	col, ok := v.(string)
	if !ok {
		err = typeMismatch(colName, "string", v)
	}
	return
}

// Set converts value to the column's type and stores it
func (r *rowImpl) Set(colName string, value interface{}) (err error) {
	offset, err := r.getOffset(colName)
	if err != nil {
		return err
	}
	converted, err := offset.Type().Convert(value)
	if err != nil {
		return errors.ConversionError{Column: colName, Value: value, Type: offset.Type().Name(), Err: err}
	}
	r.store(offset, converted)
	return nil
}

// store places a value at a column's index, growing the row if the column was added after the row was built
func (r *rowImpl) store(offset dsformat.Column, v interface{}) {
	for offset.Index() >= len(r.values) {
		r.values = append(r.values, nil)
	}
	r.values[offset.Index()] = v
}
