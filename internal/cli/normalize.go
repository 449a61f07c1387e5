package cli

import (
	"github.com/go-sif/dsformat/formatter"
	"github.com/spf13/cobra"
)

// normalizeCommand lower-cases and trims a text column
func normalizeCommand(opts *options) *cobra.Command {
	var column, target, output string
	var dedup bool
	cmd := &cobra.Command{
		Use:   "normalize INPUT",
		Short: "Normalize a text column",
		Long:  "Lower-cases and strips surrounding whitespace from a string column of the files matching INPUT.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load(args[0])
			if err != nil {
				return err
			}
			f, err := opts.newFormatter(ds, &formatter.Conf{Inplace: true})
			if err != nil {
				return err
			}
			if _, err := f.NormalizeText(column, target); err != nil {
				return err
			}
			if dedup {
				dedupColumn := target
				if dedupColumn == "" {
					dedupColumn = column
				}
				if _, err := f.DropDuplicates(dedupColumn); err != nil {
					return err
				}
			}
			return opts.save(f.Dataset(), output)
		},
	}
	cmd.Flags().StringVarP(&column, "column", "c", "", "string column to normalize")
	cmd.Flags().StringVar(&target, "target", "", "column receiving normalized text, defaults to --column")
	cmd.Flags().BoolVar(&dedup, "dedup", false, "drop rows whose normalized text was already seen")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, defaults to stdout")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}
