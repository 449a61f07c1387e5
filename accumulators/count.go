package accumulators

import (
	"fmt"

	"github.com/go-sif/dsformat"
)

// Counter returns a new Count Accumulator
func Counter() dsformat.Accumulator {
	return new(Count)
}

// NonNilCounter returns a factory for Count Accumulators which only count rows where colName is not nil
func NonNilCounter(colName string) dsformat.AccumulatorFactory {
	return func() dsformat.Accumulator {
		return &Count{colName: colName}
	}
}

// Count counts records
type Count struct {
	colName string
	count   uint64
}

// GetCount returns the row count from this Accumulator
func (a *Count) GetCount() uint64 {
	return a.count
}

// Accumulate adds a row to this Accumulator
func (a *Count) Accumulate(row dsformat.Row) error {
	if a.colName != "" {
		v, err := row.Get(a.colName)
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
	}
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Count) Merge(o dsformat.Accumulator) error {
	ca, ok := o.(*Count)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Count Accumulator")
	}
	a.count += ca.count
	return nil
}
