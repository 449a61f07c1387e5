package jsonl

import (
	"bufio"
	"io"

	"github.com/go-sif/dsformat"
	jsoniter "github.com/json-iterator/go"
	"github.com/pierrec/lz4/v4"
)

// WriterConf configures Write
type WriterConf struct {
	Compressed bool // Whether to wrap the output in an LZ4 frame. Defaults to false.
}

// Write serializes a Dataset as JSON Lines, one object per Row with keys in sorted order
func Write(w io.Writer, d dsformat.Dataset, conf *WriterConf) (err error) {
	if conf == nil {
		conf = &WriterConf{}
	}
	if conf.Compressed {
		zw := lz4.NewWriter(w)
		defer func() {
			if cerr := zw.Close(); err == nil {
				err = cerr
			}
		}()
		w = zw
	}
	bw := bufio.NewWriter(w)
	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(bw)
	err = d.ForEachRow(func(row dsformat.Row) error {
		return encoder.Encode(row.ToMap())
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
