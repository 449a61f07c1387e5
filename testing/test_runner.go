// Package testing provides fixture Datasets and helpers for tests of dsformat pipelines.
// It is conventionally imported as dstest, to avoid shadowing the standard library.
package testing

import (
	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/datasource/memory"
	"github.com/go-sif/dsformat/schema"
)

// CreateDocumentDataset builds a Dataset with a single string column named "document"
func CreateDocumentDataset(documents ...string) (dsformat.OperableDataset, error) {
	values := make([]interface{}, len(documents))
	for i, d := range documents {
		values[i] = d
	}
	return CreateColumnDataset("document", &dsformat.VarStringColumnType{}, values...)
}

// CreateColumnDataset builds a Dataset with a single column, one row per value
func CreateColumnDataset(colName string, colType dsformat.ColumnType, values ...interface{}) (dsformat.OperableDataset, error) {
	s, err := schema.CreateSchemaFromColumns([]string{colName}, []dsformat.ColumnType{colType})
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]interface{}, len(values))
	for i, v := range values {
		rows[i] = map[string]interface{}{colName: v}
	}
	return memory.CreateDataset(s, rows...)
}
