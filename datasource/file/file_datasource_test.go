package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/datasource/parser/dsv"
	"github.com/go-sif/dsformat/datasource/parser/jsonl"
	"github.com/go-sif/dsformat/schema"
	"github.com/stretchr/testify/require"
)

func createTestSchema(t *testing.T) dsformat.Schema {
	s, err := schema.CreateSchemaFromColumns(
		[]string{"id", "word"},
		[]dsformat.ColumnType{&dsformat.Int64ColumnType{}, &dsformat.VarStringColumnType{}},
	)
	require.Nil(t, err)
	return s
}

func TestLoadDSV(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("id,word\n3,three\n"), 0600))
	require.Nil(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("id,word\n1,one\n2,two\n"), 0600))

	parser := dsv.CreateParser(&dsv.ParserConf{HeaderLines: 1})
	ds, err := Load(filepath.Join(dir, "*.csv"), parser, createTestSchema(t))
	require.Nil(t, err)
	words, err := ds.Column("word")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"one", "two", "three"}, words)
}

func TestLoadJSONL(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, "part-0.jsonl"), []byte("{\"id\": 1, \"word\": \"one\"}\n"), 0600))
	ds, err := Load(filepath.Join(dir, "*.jsonl"), jsonl.CreateParser(nil), createTestSchema(t))
	require.Nil(t, err)
	require.Equal(t, 1, ds.NumRows())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "*.csv"), dsv.CreateParser(nil), createTestSchema(t))
	require.EqualError(t, err, "glob "+filepath.Join(dir, "*.csv")+" produced 0 files")

	require.Nil(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte("x,one\n"), 0600))
	_, err = Load(filepath.Join(dir, "*.csv"), dsv.CreateParser(nil), createTestSchema(t))
	require.Contains(t, err.Error(), "bad.csv")
}
