package cli

import (
	"fmt"
	"strings"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/schema"
)

func errUnknownFormat(format string) error {
	return fmt.Errorf("unknown format %q, expected %s or %s", format, formatJSONL, formatCSV)
}

// ParseSchema parses a comma-separated list of name:type pairs, such as
// "document:string,score:float64", into a Schema. A pair without a type is a string column.
func ParseSchema(spec string) (dsformat.Schema, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("schema must declare at least one column")
	}
	pairs := strings.Split(spec, ",")
	names := make([]string, len(pairs))
	types := make([]dsformat.ColumnType, len(pairs))
	for i, pair := range pairs {
		name, typeName, found := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("schema column %d has no name", i)
		}
		if !found {
			typeName = "string"
		}
		colType, err := dsformat.ColumnTypeByName(typeName)
		if err != nil {
			return nil, fmt.Errorf("schema column %s: %w", name, err)
		}
		names[i] = name
		types[i] = colType
	}
	return schema.CreateSchemaFromColumns(names, types)
}
