package transform

import (
	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
)

// RemoveColumn removes existing columns, repacking the Dataset
func RemoveColumn(oldNames ...string) dsformat.DatasetOperation {
	return func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
		newSchema := d.GetSchema().Clone()
		for _, oldName := range oldNames {
			if !newSchema.HasColumn(oldName) {
				return nil, errors.MissingColumnError{Name: oldName}
			}
			newSchema, _ = newSchema.RemoveColumn(oldName)
		}
		return d.Repack(newSchema.Repack())
	}
}
