package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/internal/dataset"
	"github.com/pierrec/lz4/v4"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	HeaderLines   int  // The number of lines to ignore from the beginning of each file. Defaults to 0.
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the file
	Compressed    bool // Whether the input is an LZ4 frame. Defaults to false.
}

// Parser produces Datasets from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are parsed from each row of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a Schema column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a Dataset. Blank lines are skipped.
func (p *Parser) Parse(r io.Reader, schema dsformat.Schema) (dsformat.OperableDataset, error) {
	if p.conf.Compressed {
		r = lz4.NewReader(r)
	}
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	lineNum := 0
	// ignore header lines, if configured to do so
	for ; lineNum < p.conf.HeaderLines; lineNum++ {
		if !scanner.Scan() {
			break
		}
	}
	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	rows := make([][]interface{}, 0)
	for scanner.Scan() {
		lineNum++
		rowString := scanner.Text()
		if len(strings.TrimSpace(rowString)) == 0 {
			continue
		}
		if !gjson.Valid(rowString) {
			return nil, fmt.Errorf("line %d is not valid JSON", lineNum)
		}
		values, err := ParseJSONRow(colNames, colTypes, gjson.Parse(rowString))
		if err != nil {
			return nil, fmt.Errorf("unable to parse line %d: %w", lineNum, err)
		}
		rows = append(rows, values)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dataset.CreateDataset(schema, rows), nil
}
