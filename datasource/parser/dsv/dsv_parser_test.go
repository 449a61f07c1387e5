package dsv

import (
	"strings"
	"testing"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
	"github.com/go-sif/dsformat/schema"
	"github.com/stretchr/testify/require"
)

func createTestSchema(t *testing.T) dsformat.Schema {
	s, err := schema.CreateSchemaFromColumns(
		[]string{"id", "name", "price", "in_stock"},
		[]dsformat.ColumnType{
			&dsformat.Int64ColumnType{},
			&dsformat.VarStringColumnType{},
			&dsformat.Float64ColumnType{},
			&dsformat.BoolColumnType{},
		},
	)
	require.Nil(t, err)
	return s
}

func TestDSVParser(t *testing.T) {
	data := "id,name,price,in_stock\n" +
		"1,Widget,2.50,true\n" +
		"# discontinued\n" +
		"2,Gadget,NA,false\n" +
		"3,,10,\n"
	parser := CreateParser(&ParserConf{HeaderLines: 1, Comment: '#', NilValue: "NA"})
	ds, err := parser.Parse(strings.NewReader(data), createTestSchema(t))
	require.Nil(t, err)
	require.Equal(t, 3, ds.NumRows())
	require.Equal(t, map[string]interface{}{
		"id":       int64(1),
		"name":     "Widget",
		"price":    2.5,
		"in_stock": true,
	}, ds.GetRow(0).ToMap())
	require.True(t, ds.GetRow(1).IsNil("price"))
	require.True(t, ds.GetRow(2).IsNil("name"))
	require.True(t, ds.GetRow(2).IsNil("in_stock"))
	price, err := ds.GetRow(2).GetFloat64("price")
	require.Nil(t, err)
	require.Equal(t, 10.0, price)
}

func TestDSVParserDelimiter(t *testing.T) {
	parser := CreateParser(&ParserConf{Delimiter: '\t'})
	ds, err := parser.Parse(strings.NewReader("7\tTab\t1\tfalse\n"), createTestSchema(t))
	require.Nil(t, err)
	name, err := ds.GetRow(0).GetVarString("name")
	require.Nil(t, err)
	require.Equal(t, "Tab", name)
}

func TestDSVParserErrors(t *testing.T) {
	parser := CreateParser(nil)
	_, err := parser.Parse(strings.NewReader("1,Widget,2.50,true\nx,Gadget,1,false\n"), createTestSchema(t))
	var convErr errors.ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "id", convErr.Column)
	require.Contains(t, err.Error(), "line 2")

	_, err = parser.Parse(strings.NewReader("1,Widget\n"), createTestSchema(t))
	require.NotNil(t, err)
}

func TestDSVParserOnlyHeader(t *testing.T) {
	ds, err := CreateParser(&ParserConf{HeaderLines: 2}).Parse(strings.NewReader("id,name,price,in_stock\n"), createTestSchema(t))
	require.Nil(t, err)
	require.Equal(t, 0, ds.NumRows())
}

func TestDSVRoundTrip(t *testing.T) {
	data := "1,Widget,2.5,true\n2,,NA,false\n"
	s := createTestSchema(t)
	ds, err := CreateParser(&ParserConf{NilValue: "NA"}).Parse(strings.NewReader(data), s)
	require.Nil(t, err)

	var out strings.Builder
	require.Nil(t, Write(&out, ds, &WriterConf{Header: true, NilValue: "NA"}))
	require.Equal(t, "id,name,price,in_stock\n1,Widget,2.5,true\n2,NA,NA,false\n", out.String())

	again, err := CreateParser(&ParserConf{HeaderLines: 1, NilValue: "NA"}).Parse(strings.NewReader(out.String()), s)
	require.Nil(t, err)
	require.Equal(t, ds.GetRow(1).ToMap(), again.GetRow(1).ToMap())
}
