package memory

import (
	"testing"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
	"github.com/go-sif/dsformat/schema"
	"github.com/stretchr/testify/require"
)

func TestCreateDataset(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("document", &dsformat.VarStringColumnType{})
	s.CreateColumn("pages", &dsformat.Int64ColumnType{})

	ds, err := CreateDataset(s,
		map[string]interface{}{"document": "Code civil", "pages": 42},
		map[string]interface{}{"document": "Code pénal"},
	)
	require.Nil(t, err)
	require.Equal(t, 2, ds.NumRows())
	pages, err := ds.GetRow(0).GetInt64("pages")
	require.Nil(t, err)
	require.Equal(t, int64(42), pages)
	require.True(t, ds.GetRow(1).IsNil("pages"))
}

func TestCreateDatasetErrors(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("pages", &dsformat.Int64ColumnType{})

	_, err := CreateDataset(s, map[string]interface{}{"other": 1})
	require.ErrorAs(t, err, &errors.MissingColumnError{})

	_, err = CreateDataset(s,
		map[string]interface{}{"pages": "many"},
		map[string]interface{}{"pages": "12"},
	)
	var convErr errors.ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "pages", convErr.Column)
	require.Contains(t, err.Error(), "row 0")
	require.NotContains(t, err.Error(), "row 1")
}
