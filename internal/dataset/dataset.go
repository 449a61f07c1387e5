package dataset

import (
	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
	"github.com/hashicorp/go-multierror"
)

// datasetImpl is the internal, in-memory implementation of OperableDataset.
// Rows are stored as slices of values in schema index order. Row storage is
// never modified by the operations below: each of them builds fresh rows.
type datasetImpl struct {
	schema dsformat.Schema
	rows   [][]interface{}
}

// CreateDataset creates a new Dataset from rows of values which are already
// in the Go representation of their column types, in schema index order
func CreateDataset(schema dsformat.Schema, rows [][]interface{}) dsformat.OperableDataset {
	if rows == nil {
		rows = make([][]interface{}, 0)
	}
	return &datasetImpl{schema: schema, rows: rows}
}

// GetSchema returns the Schema of this Dataset
func (d *datasetImpl) GetSchema() dsformat.Schema {
	return d.schema
}

// NumRows returns the number of Rows in this Dataset
func (d *datasetImpl) NumRows() int {
	return len(d.rows)
}

// GetRow retrieves a specific row from this Dataset
func (d *datasetImpl) GetRow(rowNum int) dsformat.Row {
	return &rowImpl{values: d.rows[rowNum], schema: d.schema}
}

// ForEachRow iterates over Rows in this Dataset
func (d *datasetImpl) ForEachRow(fn func(row dsformat.Row) error) error {
	row := &rowImpl{schema: d.schema}
	for i := range d.rows {
		row.values = d.rows[i]
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// Column returns all values of a column, in row order
func (d *datasetImpl) Column(colName string) ([]interface{}, error) {
	if !d.schema.HasColumn(colName) {
		return nil, errors.MissingColumnError{Name: colName}
	}
	offset, err := d.schema.GetOffset(colName)
	if err != nil {
		return nil, err
	}
	row := &rowImpl{schema: d.schema}
	result := make([]interface{}, len(d.rows))
	for i := range d.rows {
		row.values = d.rows[i]
		result[i] = row.value(offset)
	}
	return result, nil
}

// To applies a chain of DatasetOperations, returning the final Dataset.
// If any operation fails, the receiver is unaffected and no Dataset is returned.
func (d *datasetImpl) To(ops ...dsformat.DatasetOperation) (dsformat.Dataset, error) {
	var next dsformat.OperableDataset = d
	for _, op := range ops {
		var err error
		next, err = op(next)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}

// copyRow produces a copy of a row's values, padded to the width of the current Schema
func (d *datasetImpl) copyRow(rowNum int) []interface{} {
	width := d.schema.NumColumns()
	if len(d.rows[rowNum]) > width {
		width = len(d.rows[rowNum])
	}
	values := make([]interface{}, width)
	copy(values, d.rows[rowNum])
	return values
}

// MapRows runs a MapOperation on a copy of each row in this Dataset. Row errors are
// collected for every row, after which the operation fails without producing a Dataset.
func (d *datasetImpl) MapRows(fn dsformat.MapOperation) (dsformat.OperableDataset, error) {
	var multierr *multierror.Error
	result := make([][]interface{}, len(d.rows))
	for i := range d.rows {
		row := &rowImpl{values: d.copyRow(i), schema: d.schema}
		if err := fn(row); err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		result[i] = row.values
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &datasetImpl{schema: d.schema, rows: result}, nil
}

// FilterRows filters the Rows in the current Dataset, creating a new one
func (d *datasetImpl) FilterRows(fn dsformat.FilterOperation) (dsformat.OperableDataset, error) {
	var multierr *multierror.Error
	result := make([][]interface{}, 0, len(d.rows))
	for i := range d.rows {
		row := &rowImpl{values: d.copyRow(i), schema: d.schema}
		shouldKeep, err := fn(row)
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		if shouldKeep {
			result = append(result, row.values)
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &datasetImpl{schema: d.schema, rows: result}, nil
}

// UpdateSchema returns a Dataset sharing this one's row storage under a new Schema
func (d *datasetImpl) UpdateSchema(newSchema dsformat.Schema) dsformat.OperableDataset {
	return &datasetImpl{schema: newSchema, rows: d.rows}
}

// Repack rebuilds every row to match newSchema, copying values by column name.
// Columns of newSchema which are unknown to the current Schema read as nil.
func (d *datasetImpl) Repack(newSchema dsformat.Schema) (dsformat.OperableDataset, error) {
	names := newSchema.ColumnNames()
	sources := make([]dsformat.Column, len(names))
	for i, name := range names {
		if d.schema.IsMarkedForRemoval(name) {
			continue
		}
		if offset, err := d.schema.GetOffset(name); err == nil {
			sources[i] = offset
		}
	}
	row := &rowImpl{schema: d.schema}
	result := make([][]interface{}, len(d.rows))
	for i := range d.rows {
		row.values = d.rows[i]
		values := make([]interface{}, len(names))
		for j, name := range names {
			if sources[j] == nil {
				continue
			}
			target, err := newSchema.GetOffset(name)
			if err != nil {
				return nil, err
			}
			values[target.Index()] = row.value(sources[j])
		}
		result[i] = values
	}
	return &datasetImpl{schema: newSchema, rows: result}, nil
}

// Concat joins Datasets which share a Schema, preserving row order
func Concat(schema dsformat.Schema, parts ...dsformat.Dataset) (dsformat.OperableDataset, error) {
	total := 0
	for _, part := range parts {
		if err := schema.Equals(part.GetSchema()); err != nil {
			return nil, err
		}
		total += part.NumRows()
	}
	rows := make([][]interface{}, 0, total)
	for _, part := range parts {
		if impl, ok := part.(*datasetImpl); ok {
			rows = append(rows, impl.rows...)
			continue
		}
		err := part.ForEachRow(func(row dsformat.Row) error {
			values := make([]interface{}, schema.NumColumns())
			for i, name := range schema.ColumnNames() {
				v, err := row.Get(name)
				if err != nil {
					return err
				}
				values[i] = v
			}
			rows = append(rows, values)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return CreateDataset(schema, rows), nil
}
