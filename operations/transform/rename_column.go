package transform

import (
	"github.com/go-sif/dsformat"
)

// RenameColumn renames an existing column. Row data is untouched.
func RenameColumn(oldName string, newName string) dsformat.DatasetOperation {
	return func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
		newSchema, err := d.GetSchema().Clone().RenameColumn(oldName, newName)
		if err != nil {
			return nil, err
		}
		return d.UpdateSchema(newSchema), nil
	}
}
