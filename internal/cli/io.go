package cli

import (
	"os"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/datasource/file"
	"github.com/go-sif/dsformat/datasource/parser/dsv"
	"github.com/go-sif/dsformat/datasource/parser/jsonl"
	"github.com/go-sif/dsformat/formatter"
)

// load parses every file matching glob into a single Dataset
func (o *options) load(glob string) (dsformat.OperableDataset, error) {
	var parser dsformat.DatasetParser
	switch o.format {
	case formatCSV:
		parser = dsv.CreateParser(&dsv.ParserConf{HeaderLines: o.headerLines})
	default:
		parser = jsonl.CreateParser(&jsonl.ParserConf{HeaderLines: o.headerLines, Compressed: o.lz4})
	}
	ds, err := file.Load(glob, parser, o.schema)
	if err != nil {
		return nil, err
	}
	o.logger.Debugw("loaded dataset", "glob", glob, "rows", ds.NumRows())
	return ds, nil
}

// save writes a Dataset to path, or to stdout when path is empty
func (o *options) save(d dsformat.Dataset, path string) (err error) {
	w := o.stdout
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	switch o.format {
	case formatCSV:
		err = dsv.Write(w, d, &dsv.WriterConf{Header: o.headerLines > 0})
	default:
		err = jsonl.Write(w, d, &jsonl.WriterConf{Compressed: o.lz4})
	}
	if err == nil && path != "" {
		o.logger.Infow("wrote dataset", "path", path, "rows", d.NumRows())
	}
	return err
}

// newFormatter builds a Formatter which reports through the CLI's logger
func (o *options) newFormatter(d dsformat.OperableDataset, conf *formatter.Conf) (*formatter.Formatter, error) {
	conf.ReportTime = true
	conf.Logger = o.logger
	return formatter.CreateFormatter(d, conf)
}
