package transform

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/dsformat"
	iutil "github.com/go-sif/dsformat/internal/util"
)

// Distinct keeps the first Row for each distinct key, preserving Row order
func Distinct(keyFn dsformat.KeyingOperation) dsformat.DatasetOperation {
	safeKeyFn := iutil.SafeKeyingOperation(keyFn)
	return func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
		seen := make(map[uint64][][]byte)
		return d.FilterRows(func(row dsformat.Row) (bool, error) {
			key, err := safeKeyFn(row)
			if err != nil {
				return false, err
			}
			h := xxhash.Sum64(key)
			for _, k := range seen[h] {
				if bytes.Equal(k, key) {
					return false, nil
				}
			}
			seen[h] = append(seen[h], key)
			return true, nil
		})
	}
}
