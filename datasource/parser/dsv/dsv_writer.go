package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/dsformat"
)

// WriterConf configures DSV output
type WriterConf struct {
	Delimiter rune   // The delimiter separating columns. Defaults to ,
	Header    bool   // Whether to write a header line of column names. Defaults to false.
	NilValue  string // Written in place of nil values. Defaults to "" (the empty string).
}

// Write writes each Row of a Dataset as a line of delimiter-separated values, in schema index order
func Write(w io.Writer, d dsformat.Dataset, conf *WriterConf) error {
	if conf == nil {
		conf = &WriterConf{}
	}
	cw := csv.NewWriter(w)
	if conf.Delimiter != 0 {
		cw.Comma = conf.Delimiter
	}
	names := make([]string, 0, d.GetSchema().NumColumns())
	for _, name := range d.GetSchema().ColumnNames() {
		if !d.GetSchema().IsMarkedForRemoval(name) {
			names = append(names, name)
		}
	}
	if conf.Header {
		if err := cw.Write(names); err != nil {
			return err
		}
	}
	record := make([]string, len(names))
	err := d.ForEachRow(func(row dsformat.Row) error {
		for i, name := range names {
			v, err := row.Get(name)
			if err != nil {
				return err
			}
			if v == nil {
				record[i] = conf.NilValue
			} else {
				record[i] = dsformat.FormatValue(v)
			}
		}
		return cw.Write(record)
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
