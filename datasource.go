package dsformat

import "io"

// A DatasetParser is capable of parsing raw data into a Dataset which respects a Schema
type DatasetParser interface {
	Parse(r io.Reader, schema Schema) (OperableDataset, error)
}
