package jsonl

import (
	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
	"github.com/tidwall/gjson"
)

// ParseJSONRow extracts the value of each column from a parsed JSON object, in schema index order.
// Missing keys and JSON nulls produce nil values.
func ParseJSONRow(colNames []string, colTypes []dsformat.ColumnType, json gjson.Result) ([]interface{}, error) {
	values := make([]interface{}, len(colNames))
	for i, colName := range colNames {
		res := json.Get(colName)
		if !res.Exists() || res.Type == gjson.Null {
			continue
		}
		raw := rawValue(colTypes[i], res)
		v, err := colTypes[i].Convert(raw)
		if err != nil {
			return nil, errors.ConversionError{Column: colName, Value: raw, Type: colTypes[i].Name(), Err: err}
		}
		values[i] = v
	}
	return values, nil
}

// rawValue picks the gjson accessor which preserves the most precision for a column type
func rawValue(colType dsformat.ColumnType, res gjson.Result) interface{} {
	switch colType.(type) {
	case *dsformat.Int32ColumnType, *dsformat.Int64ColumnType:
		if res.Type == gjson.Number && !isFractional(res.Raw) {
			return res.Int()
		}
	case *dsformat.VarStringColumnType:
		if res.IsObject() || res.IsArray() {
			return res.Raw
		}
		if res.Type == gjson.Number {
			return res.Raw
		}
	}
	return res.Value()
}

func isFractional(raw string) bool {
	for _, c := range raw {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}
