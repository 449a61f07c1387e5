package dsv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/internal/dataset"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines int    // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Delimiter   rune   // The delimiter separating columns in the file. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
}

// Parser produces Datasets from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data to produce a Dataset. Columns are read positionally, in schema index order.
func (p *Parser) Parse(r io.Reader, schema dsformat.Schema) (dsformat.OperableDataset, error) {
	// start parsing by creating a reader
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = schema.NumColumns()
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		_, err := reader.Read()
		if err == io.EOF {
			return dataset.CreateDataset(schema, nil), nil
		} else if err != nil {
			return nil, err
		}
	}

	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	rows := make([][]interface{}, 0)
	for {
		rowStrings, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		values, err := scanRow(p.conf, colNames, colTypes, rowStrings)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("unable to parse line %d: %w", line, err)
		}
		rows = append(rows, values)
	}
	return dataset.CreateDataset(schema, rows), nil
}
