package transform

import "github.com/go-sif/dsformat"

// RetypeColumn changes the type of an existing column and converts
// every non-nil value to it. A single unconvertible value fails the
// whole operation.
func RetypeColumn(colName string, colType dsformat.ColumnType) dsformat.DatasetOperation {
	return func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
		newSchema, err := d.GetSchema().Clone().RetypeColumn(colName, colType)
		if err != nil {
			return nil, err
		}
		return Map(func(row dsformat.Row) error {
			v, err := row.Get(colName)
			if err != nil || v == nil {
				return err
			}
			return row.Set(colName, v)
		})(d.UpdateSchema(newSchema))
	}
}
