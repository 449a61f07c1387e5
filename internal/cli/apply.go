package cli

import (
	"github.com/go-sif/dsformat/formatter"
	"github.com/spf13/cobra"
)

// applyCommand adds hash and UUID columns to a dataset
func applyCommand(opts *options) *cobra.Command {
	conf := &formatter.Conf{}
	var output string
	cmd := &cobra.Command{
		Use:   "apply INPUT",
		Short: "Add hash and UUID columns",
		Long:  "Adds a SHA-256 hash of the source column and a random UUID to every row of the files matching INPUT.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load(args[0])
			if err != nil {
				return err
			}
			f, err := opts.newFormatter(ds, conf)
			if err != nil {
				return err
			}
			result, err := f.Apply(conf.HashColumn, conf.UUIDColumn)
			if err != nil {
				return err
			}
			return opts.save(result, output)
		},
	}
	cmd.Flags().StringVar(&conf.SourceColumn, "source", formatter.DefaultSourceColumn, "column to hash")
	cmd.Flags().StringVar(&conf.HashColumn, "hash-column", formatter.DefaultHashColumn, "column receiving hashes")
	cmd.Flags().StringVar(&conf.UUIDColumn, "uuid-column", formatter.DefaultUUIDColumn, "column receiving UUIDs")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, defaults to stdout")
	return cmd
}
