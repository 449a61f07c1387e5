package util

import (
	"github.com/go-sif/dsformat"
)

// Accumulate siphons every Row of a Dataset into a fresh Accumulator, returning it
func Accumulate(d dsformat.Dataset, facc dsformat.AccumulatorFactory) (dsformat.Accumulator, error) {
	acc := facc()
	err := d.ForEachRow(func(row dsformat.Row) error {
		return acc.Accumulate(row)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}
