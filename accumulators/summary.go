package accumulators

import (
	"fmt"
	"sort"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics for a numeric column
type Summary struct {
	Mean   float64
	Median float64
	Std    float64 // population standard deviation
}

// ToMap returns this Summary keyed by statistic name
func (s Summary) ToMap() map[string]float64 {
	return map[string]float64{
		"mean":   s.Mean,
		"median": s.Median,
		"std":    s.Std,
	}
}

// Summarizer returns a factory for Summary Accumulators over a numeric column. nil values are skipped.
func Summarizer(colName string) dsformat.AccumulatorFactory {
	return func() dsformat.Accumulator {
		return &SummaryAccumulator{col: numericColumn{name: colName}, values: make([]float64, 0)}
	}
}

// SummaryAccumulator retains the non-nil values of a column in order to summarize them
type SummaryAccumulator struct {
	col    numericColumn
	values []float64
}

// Accumulate adds a row to this Accumulator
func (a *SummaryAccumulator) Accumulate(row dsformat.Row) error {
	v, ok, err := a.col.value(row)
	if err != nil || !ok {
		return err
	}
	a.values = append(a.values, v)
	return nil
}

// Merge merges another Accumulator into this one
func (a *SummaryAccumulator) Merge(o dsformat.Accumulator) error {
	sa, ok := o.(*SummaryAccumulator)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Summary Accumulator")
	}
	a.values = append(a.values, sa.values...)
	return nil
}

// Len returns the number of values seen by this Accumulator
func (a *SummaryAccumulator) Len() int {
	return len(a.values)
}

// GetSummary computes the Summary of all values seen so far
func (a *SummaryAccumulator) GetSummary() (Summary, error) {
	n := len(a.values)
	if n == 0 {
		return Summary{}, errors.EmptyColumnError{Name: a.col.name}
	}
	sorted := make([]float64, n)
	copy(sorted, a.values)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)
	// stat.Quantile picks a single element, so even-length medians are averaged here
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return Summary{
		Mean:   mean,
		Median: median,
		Std:    std,
	}, nil
}
