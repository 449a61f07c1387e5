package transform

import "github.com/go-sif/dsformat"

// Repack rearranges the layout of rows to respect a compacted version of the current Schema
func Repack() dsformat.DatasetOperation {
	return func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
		return d.Repack(d.GetSchema().Repack())
	}
}
