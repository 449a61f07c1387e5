package dsformat

// A Dataset is an ordered sequence of Rows sharing a single Schema.
// Datasets are treated as immutable values: transformations applied
// via To produce a new Dataset and leave the receiver untouched.
type Dataset interface {
	GetSchema() Schema                            // GetSchema returns the Schema of a Dataset
	NumRows() int                                 // NumRows returns the number of Rows in a Dataset
	GetRow(rowNum int) Row                        // GetRow returns a specific Row. The Row shares storage with the Dataset.
	ForEachRow(fn func(row Row) error) error      // ForEachRow iterates over Rows in order, stopping at the first error
	Column(colName string) ([]interface{}, error) // Column returns all values of a column, in row order
	To(ops ...DatasetOperation) (Dataset, error)  // To is a "functional operations" factory method for Datasets, chaining operations onto the current one.
}

// An OperableDataset exposes the primitives which DatasetOperations are built from.
// Every method returns a new OperableDataset; none of them alter the receiver.
type OperableDataset interface {
	Dataset
	MapRows(fn MapOperation) (OperableDataset, error)       // MapRows runs a MapOperation on a copy of each Row. Any Row error aborts the whole operation.
	FilterRows(fn FilterOperation) (OperableDataset, error) // FilterRows retains the Rows for which fn returns true, preserving their order
	UpdateSchema(newSchema Schema) OperableDataset          // UpdateSchema swaps the Schema without touching row data (column added, renamed or retyped)
	Repack(newSchema Schema) (OperableDataset, error)       // Repack rebuilds every Row to match a compacted Schema
}
