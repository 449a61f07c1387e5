// Package cli implements the dsformat command line interface.
package cli

import (
	"io"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	formatJSONL = "jsonl"
	formatCSV   = "csv"
)

// options holds the values of persistent flags, resolved before any subcommand runs
type options struct {
	logLevel    string
	schemaSpec  string
	format      string
	headerLines int
	lz4         bool

	schema dsformat.Schema
	logger *zap.SugaredLogger
	stdout io.Writer
}

// NewRootCommand builds the dsformat command tree, writing results to stdout and logs to stderr
func NewRootCommand(stdout io.Writer, stderr io.Writer) *cobra.Command {
	opts := &options{stdout: stdout}
	root := &cobra.Command{
		Use:           "dsformat",
		Short:         "Format tabular datasets",
		Long:          "dsformat derives hash and UUID columns, normalizes text and summarizes columns of JSONL or CSV datasets.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logging.CreateLoggerTo(stderr, level)
			if opts.format != formatJSONL && opts.format != formatCSV {
				return errUnknownFormat(opts.format)
			}
			opts.schema, err = ParseSchema(opts.schemaSpec)
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error or fatal")
	flags.StringVar(&opts.schemaSpec, "schema", "document:string", "columns of the input, as name:type pairs separated by commas")
	flags.StringVar(&opts.format, "format", formatJSONL, "format of the input and output: jsonl or csv")
	flags.IntVar(&opts.headerLines, "header-lines", 0, "number of lines to skip at the start of each input file")
	flags.BoolVar(&opts.lz4, "lz4", false, "read and write LZ4 compressed JSONL")

	root.AddCommand(
		applyCommand(opts),
		normalizeCommand(opts),
		summaryCommand(opts),
	)
	return root
}
