package accumulators

import (
	"testing"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/datasource/memory"
	"github.com/go-sif/dsformat/errors"
	"github.com/go-sif/dsformat/operations/util"
	"github.com/go-sif/dsformat/schema"
	"github.com/stretchr/testify/require"
)

func createTestDataset(t *testing.T, values ...interface{}) dsformat.OperableDataset {
	s, err := schema.CreateSchemaFromColumns(
		[]string{"num", "label"},
		[]dsformat.ColumnType{&dsformat.Int64ColumnType{}, &dsformat.VarStringColumnType{}},
	)
	require.Nil(t, err)
	rows := make([]map[string]interface{}, len(values))
	for i, v := range values {
		rows[i] = map[string]interface{}{"num": v, "label": "row"}
	}
	ds, err := memory.CreateDataset(s, rows...)
	require.Nil(t, err)
	return ds
}

func TestCount(t *testing.T) {
	ds := createTestDataset(t, 1, nil, 3)
	acc, err := util.Accumulate(ds, Counter)
	require.Nil(t, err)
	require.Equal(t, uint64(3), acc.(*Count).GetCount())

	acc, err = util.Accumulate(ds, NonNilCounter("num"))
	require.Nil(t, err)
	require.Equal(t, uint64(2), acc.(*Count).GetCount())

	_, err = util.Accumulate(ds, NonNilCounter("missing"))
	require.ErrorAs(t, err, &errors.MissingColumnError{})
}

func TestSum(t *testing.T) {
	ds := createTestDataset(t, 1, nil, 3)
	acc, err := util.Accumulate(ds, Adder("num"))
	require.Nil(t, err)
	require.Equal(t, 4.0, acc.(*Sum).GetSum())

	other, err := util.Accumulate(createTestDataset(t, 10), Adder("num"))
	require.Nil(t, err)
	require.Nil(t, acc.Merge(other))
	require.Equal(t, 14.0, acc.(*Sum).GetSum())
	require.NotNil(t, acc.Merge(new(Count)))

	_, err = util.Accumulate(ds, Adder("label"))
	require.ErrorAs(t, err, &errors.IncompatibleColumnTypeError{})
}

func TestSummary(t *testing.T) {
	acc, err := util.Accumulate(createTestDataset(t, 1, 2, 3, 4, 5), Summarizer("num"))
	require.Nil(t, err)
	summary, err := acc.(*SummaryAccumulator).GetSummary()
	require.Nil(t, err)
	require.Equal(t, 3.0, summary.Mean)
	require.Equal(t, 3.0, summary.Median)
	require.InDelta(t, 1.414, summary.Std, 0.001)
	require.Equal(t, map[string]float64{"mean": 3.0, "median": 3.0, "std": summary.Std}, summary.ToMap())
}

func TestSummaryEvenAndNil(t *testing.T) {
	acc, err := util.Accumulate(createTestDataset(t, 4, nil, 1, 3, 2), Summarizer("num"))
	require.Nil(t, err)
	require.Equal(t, 4, acc.(*SummaryAccumulator).Len())
	summary, err := acc.(*SummaryAccumulator).GetSummary()
	require.Nil(t, err)
	require.Equal(t, 2.5, summary.Median)
	require.Equal(t, 2.5, summary.Mean)
}

func TestSummaryPopulationStd(t *testing.T) {
	acc, err := util.Accumulate(createTestDataset(t, 2, 4, 4, 4, 5, 5, 7, 9), Summarizer("num"))
	require.Nil(t, err)
	summary, err := acc.(*SummaryAccumulator).GetSummary()
	require.Nil(t, err)
	require.InDelta(t, 5.0, summary.Mean, 1e-12)
	require.InDelta(t, 2.0, summary.Std, 1e-12)
	require.Equal(t, 4.5, summary.Median)
}

// schemaCountingRow counts calls to Schema, which copies the schema
type schemaCountingRow struct {
	dsformat.Row
	calls *int
}

func (r schemaCountingRow) Schema() dsformat.Schema {
	*r.calls++
	return r.Row.Schema()
}

func TestNumericColumnResolvedOnce(t *testing.T) {
	ds := createTestDataset(t, 1, nil, 3, 4)
	for _, factory := range []dsformat.AccumulatorFactory{Summarizer("num"), Adder("num")} {
		acc := factory()
		calls := 0
		err := ds.ForEachRow(func(row dsformat.Row) error {
			return acc.Accumulate(schemaCountingRow{Row: row, calls: &calls})
		})
		require.Nil(t, err)
		require.Equal(t, 1, calls)
	}
}

func TestSummaryEmpty(t *testing.T) {
	acc, err := util.Accumulate(createTestDataset(t, nil, nil), Summarizer("num"))
	require.Nil(t, err)
	_, err = acc.(*SummaryAccumulator).GetSummary()
	var empty errors.EmptyColumnError
	require.ErrorAs(t, err, &empty)
	require.Equal(t, "num", empty.Name)
}

func TestCompose(t *testing.T) {
	ds := createTestDataset(t, 1, nil, 3)
	acc, err := util.Accumulate(ds, Compose(Counter, Adder("num")))
	require.Nil(t, err)
	results := acc.(*Composed).GetResults()
	require.Equal(t, uint64(3), results[0].(*Count).GetCount())
	require.Equal(t, 4.0, results[1].(*Sum).GetSum())

	other, err := util.Accumulate(ds, Compose(Counter, Adder("num")))
	require.Nil(t, err)
	require.Nil(t, acc.Merge(other))
	require.Equal(t, uint64(6), results[0].(*Count).GetCount())
	require.NotNil(t, acc.Merge(Compose(Counter)()))
}
