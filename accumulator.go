package dsformat

// An Accumulator siphons data from the Rows of a Dataset into a custom
// data structure. Accumulators are run with operations/util.Accumulate,
// and are how column-wide results (counts, sums, summaries) are computed.
type Accumulator interface {
	Accumulate(row Row) error  // Accumulate adds a row to this Accumulator
	Merge(o Accumulator) error // Merge merges another Accumulator into this one
}
