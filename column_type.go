package dsformat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ColumnType is an interface which is implemented to define supported column types.
// A variety of built-in types are provided in this package.
type ColumnType interface {
	Name() string                               // Name returns the name of this type, as accepted by ColumnTypeByName
	ToString(v interface{}) string              // produces a string representation of a value of this type
	Convert(v interface{}) (interface{}, error) // coerces a value into this type's Go representation. nil converts to nil.
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name of a BoolColumnType
func (b *BoolColumnType) Name() string {
	return "bool"
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Convert coerces a value into a bool. Numbers are true iff they are non-zero.
func (b *BoolColumnType) Convert(v interface{}) (interface{}, error) {
	switch tv := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return tv, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(tv))
	default:
		f, err := toFloat64(v)
		if err != nil {
			return nil, err
		}
		return f != 0, nil
	}
}

// Int32ColumnType is a column type which stores a int32 value
type Int32ColumnType struct{}

// Name of an Int32ColumnType
func (b *Int32ColumnType) Name() string {
	return "int32"
}

// ToString produces a string representation of a value of a Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// Convert coerces a value into an int32, failing if it is out of range
func (b *Int32ColumnType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	i, err := toInt64(v)
	if err != nil {
		return nil, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return nil, fmt.Errorf("value %d overflows int32", i)
	}
	return int32(i), nil
}

// Int64ColumnType is a column type which stores a int64 value
type Int64ColumnType struct{}

// Name of an Int64ColumnType
func (b *Int64ColumnType) Name() string {
	return "int64"
}

// ToString produces a string representation of a value of a Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Convert coerces a value into an int64. Floats are truncated towards zero.
func (b *Int64ColumnType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return toInt64(v)
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Name of a Float32ColumnType
func (b *Float32ColumnType) Name() string {
	return "float32"
}

// ToString produces a string representation of a value of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float32))
}

// Convert coerces a value into a float32
func (b *Float32ColumnType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return nil, err
	}
	return float32(f), nil
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name of a Float64ColumnType
func (b *Float64ColumnType) Name() string {
	return "float64"
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float64))
}

// Convert coerces a value into a float64
func (b *Float64ColumnType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return toFloat64(v)
}

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{}

// Name of a VarStringColumnType
func (b *VarStringColumnType) Name() string {
	return "string"
}

// ToString produces a string representation of a value of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// Convert produces the string form of any value (see FormatValue)
func (b *VarStringColumnType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return FormatValue(v), nil
}

// TimeColumnType is a column type which stores a time.Time value. Strings are parsed
// using Format, which defaults to time.RFC3339.
type TimeColumnType struct {
	Format string
}

// Name of a TimeColumnType
func (b *TimeColumnType) Name() string {
	return "time"
}

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(time.Time).String())
}

// Convert coerces a time.Time or a formatted string into a time.Time
func (b *TimeColumnType) Convert(v interface{}) (interface{}, error) {
	switch tv := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return tv, nil
	case string:
		format := b.Format
		if format == "" {
			format = time.RFC3339
		}
		t, err := time.Parse(format, tv)
		if err != nil {
			return nil, fmt.Errorf("%q could not be parsed as datetime with format %s", tv, format)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to time", v)
	}
}

func toInt64(v interface{}) (int64, error) {
	switch tv := v.(type) {
	case int:
		return int64(tv), nil
	case int8:
		return int64(tv), nil
	case int16:
		return int64(tv), nil
	case int32:
		return int64(tv), nil
	case int64:
		return tv, nil
	case uint8:
		return int64(tv), nil
	case uint16:
		return int64(tv), nil
	case uint32:
		return int64(tv), nil
	case uint64:
		if tv > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", tv)
		}
		return int64(tv), nil
	case float32:
		return floatToInt64(float64(tv))
	case float64:
		return floatToInt64(tv)
	case bool:
		if tv {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(tv), 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to an integer", v)
	}
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %v to an integer", f)
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("value %v overflows int64", f)
	}
	return int64(t), nil
}

func toFloat64(v interface{}) (float64, error) {
	switch tv := v.(type) {
	case float32:
		return float64(tv), nil
	case float64:
		return tv, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(tv), 64)
	default:
		i, err := toInt64(v)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %T to a number", v)
		}
		return float64(i), nil
	}
}
