// Package memory builds Datasets from values already held in memory.
package memory

import (
	"fmt"
	"sort"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
	"github.com/go-sif/dsformat/internal/dataset"
	"github.com/hashicorp/go-multierror"
)

// CreateDataset is a factory for in-memory Datasets. Each row maps column names to
// values, which are converted to the types declared in the Schema. Columns absent
// from a row are nil. A key which is not part of the Schema is an error.
func CreateDataset(schema dsformat.Schema, rows ...map[string]interface{}) (dsformat.OperableDataset, error) {
	var multierr *multierror.Error
	data := make([][]interface{}, len(rows))
	for i, r := range rows {
		values, err := buildRow(schema, r)
		if err != nil {
			multierr = multierror.Append(multierr, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		data[i] = values
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return dataset.CreateDataset(schema, data), nil
}

func buildRow(schema dsformat.Schema, r map[string]interface{}) ([]interface{}, error) {
	// visit keys in a stable order, so that errors are reported deterministically
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]interface{}, schema.NumColumns())
	for _, k := range keys {
		if !schema.HasColumn(k) {
			return nil, errors.MissingColumnError{Name: k}
		}
		offset, err := schema.GetOffset(k)
		if err != nil {
			return nil, err
		}
		converted, err := offset.Type().Convert(r[k])
		if err != nil {
			return nil, errors.ConversionError{Column: k, Value: r[k], Type: offset.Type().Name(), Err: err}
		}
		values[offset.Index()] = converted
	}
	return values, nil
}
