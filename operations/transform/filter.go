package transform

import (
	"github.com/go-sif/dsformat"
	iutil "github.com/go-sif/dsformat/internal/util"
)

// Filter filters Rows out of a Dataset, creating a new one
func Filter(fn dsformat.FilterOperation) dsformat.DatasetOperation {
	safeFn := iutil.SafeFilterOperation(fn)
	return func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
		return d.FilterRows(safeFn)
	}
}
