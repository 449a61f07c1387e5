package dsv

import (
	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
)

// Parses a slice of strings into row values, according to a schema
func scanRow(conf *ParserConf, names []string, colTypes []dsformat.ColumnType, rowStrings []string) ([]interface{}, error) {
	values := make([]interface{}, len(names))
	for i := 0; i < len(rowStrings); i++ {
		colVal := rowStrings[i]
		// check for a nil value
		if len(colVal) == 0 || colVal == conf.NilValue {
			continue
		}
		v, err := colTypes[i].Convert(colVal)
		if err != nil {
			return nil, errors.ConversionError{Column: names[i], Value: colVal, Type: colTypes[i].Name(), Err: err}
		}
		values[i] = v
	}
	return values, nil
}
