package dsformat

import "time"

// Row is a representation of a single row of columnar data,
// along with a reference to the Schema for that row (a mapping
// of column names to positions). In practice, users of Row will
// call its getter and setter methods to retrieve, manipulate and
// store data
type Row interface {
	Schema() Schema                                      // Schema returns a read-only copy of the schema for a row
	ToString() string                                    // ToString returns a string representation of this row
	ToMap() map[string]interface{}                       // ToMap returns the values of this row keyed by column name
	IsNil(colName string) bool                           // IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
	SetNil(colName string) error                         // SetNil sets the given column value to nil within this row
	Get(colName string) (col interface{}, err error)     // Get returns the value of any column as an interface{}, if it exists
	GetBool(colName string) (col bool, err error)        // GetBool retrieves a single bool from the column with the given name.
	GetInt32(colName string) (col int32, err error)      // GetInt32 retrieves a single int32 from the column with the given name
	GetInt64(colName string) (col int64, err error)      // GetInt64 retrieves a single int64 from the column with the given name
	GetFloat32(colName string) (col float32, err error)  // GetFloat32 retrieves a single float32 from the column with the given name
	GetFloat64(colName string) (col float64, err error)  // GetFloat64 retrieves a single float64 from the column with the given name
	GetTime(colName string) (col time.Time, err error)   // GetTime retrieves a single Time from the column with the given name
	GetVarString(colName string) (col string, err error) // GetVarString retrieves a single string from the column with the given name
	Set(colName string, value interface{}) (err error)   // Set converts value to the column's type and stores it
}
