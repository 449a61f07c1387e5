package cli

import (
	"fmt"

	"github.com/go-sif/dsformat/accumulators"
	"github.com/go-sif/dsformat/formatter"
	"github.com/go-sif/dsformat/operations/util"
	"github.com/spf13/cobra"
)

// summaryCommand prints the mean, median and standard deviation of a numeric column
func summaryCommand(opts *options) *cobra.Command {
	var column string
	cmd := &cobra.Command{
		Use:   "summary INPUT",
		Short: "Summarize a numeric column",
		Long:  "Prints the row count, non-nil count, mean, median and population standard deviation of a numeric column of the files matching INPUT.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load(args[0])
			if err != nil {
				return err
			}
			f, err := opts.newFormatter(ds, &formatter.Conf{})
			if err != nil {
				return err
			}
			summary, err := f.ComputeSummary(column)
			if err != nil {
				return err
			}
			acc, err := util.Accumulate(ds, accumulators.Compose(accumulators.Counter, accumulators.NonNilCounter(column)))
			if err != nil {
				return err
			}
			counts := acc.(*accumulators.Composed).GetResults()
			fmt.Fprintf(opts.stdout, "rows\t%d\n", counts[0].(*accumulators.Count).GetCount())
			fmt.Fprintf(opts.stdout, "count\t%d\n", counts[1].(*accumulators.Count).GetCount())
			fmt.Fprintf(opts.stdout, "mean\t%g\n", summary.Mean)
			fmt.Fprintf(opts.stdout, "median\t%g\n", summary.Median)
			fmt.Fprintf(opts.stdout, "std\t%g\n", summary.Std)
			return nil
		},
	}
	cmd.Flags().StringVarP(&column, "column", "c", "", "numeric column to summarize")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}
