package dsformat

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatValue produces the plain string form of a value: strings as-is,
// numbers in base 10 (floats in their shortest round-trip form), bools as
// true/false, times as RFC3339Nano and nil as the empty string.
func FormatValue(v interface{}) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case []byte:
		return string(tv)
	case bool:
		return strconv.FormatBool(tv)
	case int:
		return strconv.FormatInt(int64(tv), 10)
	case int8:
		return strconv.FormatInt(int64(tv), 10)
	case int16:
		return strconv.FormatInt(int64(tv), 10)
	case int32:
		return strconv.FormatInt(int64(tv), 10)
	case int64:
		return strconv.FormatInt(tv, 10)
	case uint8:
		return strconv.FormatUint(uint64(tv), 10)
	case uint16:
		return strconv.FormatUint(uint64(tv), 10)
	case uint32:
		return strconv.FormatUint(uint64(tv), 10)
	case uint64:
		return strconv.FormatUint(tv, 10)
	case float32:
		return strconv.FormatFloat(float64(tv), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(tv, 'g', -1, 64)
	case time.Time:
		return tv.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return tv.String()
	default:
		return fmt.Sprint(v)
	}
}

// InferColumnType returns the built-in ColumnType best suited to store v.
// Unknown types, and nil, are stored as strings.
func InferColumnType(v interface{}) ColumnType {
	switch v.(type) {
	case bool:
		return &BoolColumnType{}
	case int8, int16, int32, uint8, uint16:
		return &Int32ColumnType{}
	case int, int64, uint32, uint64:
		return &Int64ColumnType{}
	case float32:
		return &Float32ColumnType{}
	case float64:
		return &Float64ColumnType{}
	case time.Time:
		return &TimeColumnType{}
	default:
		return &VarStringColumnType{}
	}
}

// ColumnTypeByName resolves a type name such as "int64" or "string" to a built-in ColumnType
func ColumnTypeByName(name string) (ColumnType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bool", "boolean":
		return &BoolColumnType{}, nil
	case "int32":
		return &Int32ColumnType{}, nil
	case "int", "int64":
		return &Int64ColumnType{}, nil
	case "float32":
		return &Float32ColumnType{}, nil
	case "float", "float64":
		return &Float64ColumnType{}, nil
	case "str", "string":
		return &VarStringColumnType{}, nil
	case "time":
		return &TimeColumnType{}, nil
	default:
		return nil, fmt.Errorf("unknown column type %q", name)
	}
}

// IsNumeric returns true iff colType stores numbers
func IsNumeric(colType ColumnType) bool {
	switch colType.(type) {
	case *Int32ColumnType, *Int64ColumnType, *Float32ColumnType, *Float64ColumnType:
		return true
	default:
		return false
	}
}
