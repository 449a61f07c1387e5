package accumulators

import (
	"fmt"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
)

// Adder returns a new Sum Accumulator. nil values are skipped.
func Adder(colName string) dsformat.AccumulatorFactory {
	return func() dsformat.Accumulator {
		return &Sum{col: numericColumn{name: colName}}
	}
}

// Sum Sums records
type Sum struct {
	col numericColumn
	sum float64
}

// GetSum returns the row Sum from this Accumulator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// Accumulate adds a row to this Accumulator
func (a *Sum) Accumulate(row dsformat.Row) error {
	v, ok, err := a.col.value(row)
	if err != nil || !ok {
		return err
	}
	a.sum += v
	return nil
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o dsformat.Accumulator) error {
	ca, ok := o.(*Sum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	a.sum += ca.sum
	return nil
}

// numericColumn reads a numeric column as float64 values. The column's type is
// resolved from the first row and reused for the rest.
type numericColumn struct {
	name    string
	colType dsformat.ColumnType
}

func (c *numericColumn) resolve(row dsformat.Row) error {
	if c.colType != nil {
		return nil
	}
	offset, err := row.Schema().GetOffset(c.name)
	if err != nil {
		return err
	}
	if !dsformat.IsNumeric(offset.Type()) {
		return errors.IncompatibleColumnTypeError{Name: c.name, Expected: "numeric", Actual: offset.Type().Name()}
	}
	c.colType = offset.Type()
	return nil
}

// value returns the column's value in row. ok is false for nil values.
func (c *numericColumn) value(row dsformat.Row) (v float64, ok bool, err error) {
	if err = c.resolve(row); err != nil {
		return
	}
	if row.IsNil(c.name) {
		return
	}
	switch c.colType.(type) {
	case *dsformat.Int32ColumnType:
		var iv int32
		iv, err = row.GetInt32(c.name)
		v = float64(iv)
	case *dsformat.Int64ColumnType:
		var iv int64
		iv, err = row.GetInt64(c.name)
		v = float64(iv)
	case *dsformat.Float32ColumnType:
		var fv float32
		fv, err = row.GetFloat32(c.name)
		v = float64(fv)
	case *dsformat.Float64ColumnType:
		v, err = row.GetFloat64(c.name)
	}
	ok = err == nil
	return
}
