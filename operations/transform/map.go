package transform

import (
	"github.com/go-sif/dsformat"
	iutil "github.com/go-sif/dsformat/internal/util"
)

// Map transforms a copy of each Row
func Map(fn dsformat.MapOperation) dsformat.DatasetOperation {
	safeFn := iutil.SafeMapOperation(fn)
	return func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
		return d.MapRows(safeFn)
	}
}
