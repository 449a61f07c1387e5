package errors

import (
	"fmt"
)

// NotADatasetError occurs when a value which does not satisfy the Dataset contract is handed to a Formatter
type NotADatasetError struct{ Value interface{} }

// Error returns a textual representation of this NotADatasetError
func (e NotADatasetError) Error() string {
	return fmt.Sprintf("Expected an OperableDataset, got %T", e.Value)
}

// MissingColumnError occurs when a referenced column does not exist in a Schema
type MissingColumnError struct{ Name string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Column '%s' does not exist in the dataset", e.Name)
}

// DuplicateColumnError occurs when a column is created or renamed onto a name which is already in use
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// ConversionError occurs when a value cannot be coerced to a column's type
type ConversionError struct {
	Column string
	Value  interface{}
	Type   string
	Err    error
}

// Error returns a textual representation of this ConversionError
func (e ConversionError) Error() string {
	return fmt.Sprintf("Cannot convert value %#v of column %s to %s: %v", e.Value, e.Column, e.Type, e.Err)
}

// Unwrap returns the underlying conversion failure
func (e ConversionError) Unwrap() error {
	return e.Err
}

// NilValueError occurs when a value in a Row is null
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// IncompatibleColumnTypeError occurs when an operation requires a column of a different type
type IncompatibleColumnTypeError struct {
	Name     string
	Expected string
	Actual   string
}

// Error returns a textual representation of this IncompatibleColumnTypeError
func (e IncompatibleColumnTypeError) Error() string {
	return fmt.Sprintf("Column %s has type %s, expected %s", e.Name, e.Actual, e.Expected)
}

// EmptyColumnError occurs when a summary is requested for a column without any non-nil values
type EmptyColumnError struct{ Name string }

// Error returns a textual representation of this EmptyColumnError
func (e EmptyColumnError) Error() string {
	return fmt.Sprintf("Column %s contains no values to summarize", e.Name)
}
