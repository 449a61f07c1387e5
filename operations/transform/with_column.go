package transform

import "github.com/go-sif/dsformat"

// AddColumn declares that a new (empty) column with a
// specific type and name should be available to the
// next operation of the Dataset pipeline
func AddColumn(colName string, colType dsformat.ColumnType) dsformat.DatasetOperation {
	return func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
		newSchema, err := d.GetSchema().Clone().CreateColumn(colName, colType)
		if err != nil {
			return nil, err
		}
		return d.UpdateSchema(newSchema), nil
	}
}

// WithColumn is AddColumn, except that an existing column of the same
// name keeps its position and only has its type replaced. Its values
// are not converted, so WithColumn must be followed by a Map which
// overwrites every value of the column.
func WithColumn(colName string, colType dsformat.ColumnType) dsformat.DatasetOperation {
	return func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
		if !d.GetSchema().HasColumn(colName) {
			return AddColumn(colName, colType)(d)
		}
		newSchema, err := d.GetSchema().Clone().RetypeColumn(colName, colType)
		if err != nil {
			return nil, err
		}
		return d.UpdateSchema(newSchema), nil
	}
}
