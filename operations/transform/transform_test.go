package transform

import (
	"testing"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/datasource/memory"
	"github.com/go-sif/dsformat/errors"
	"github.com/go-sif/dsformat/schema"
	"github.com/stretchr/testify/require"
)

func createTestDataset(t *testing.T) dsformat.OperableDataset {
	s, err := schema.CreateSchemaFromColumns(
		[]string{"id", "name", "score"},
		[]dsformat.ColumnType{&dsformat.Int64ColumnType{}, &dsformat.VarStringColumnType{}, &dsformat.VarStringColumnType{}},
	)
	require.Nil(t, err)
	ds, err := memory.CreateDataset(s,
		map[string]interface{}{"id": 1, "name": "a", "score": "1.5"},
		map[string]interface{}{"id": 2, "name": "b", "score": nil},
		map[string]interface{}{"id": 3, "name": "a", "score": "4"},
	)
	require.Nil(t, err)
	return ds
}

func TestRenameAndRemoveColumn(t *testing.T) {
	ds := createTestDataset(t)
	result, err := ds.To(RenameColumn("name", "label"), RemoveColumn("id"))
	require.Nil(t, err)
	require.Equal(t, []string{"label", "score"}, result.GetSchema().ColumnNames())
	require.Equal(t, map[string]interface{}{"label": "b", "score": nil}, result.GetRow(1).ToMap())

	_, err = ds.To(RemoveColumn("missing"))
	require.ErrorAs(t, err, &errors.MissingColumnError{})
	_, err = ds.To(RenameColumn("name", "id"))
	require.ErrorAs(t, err, &errors.DuplicateColumnError{})
}

func TestRetypeColumn(t *testing.T) {
	ds := createTestDataset(t)
	result, err := ds.To(RetypeColumn("score", &dsformat.Float64ColumnType{}))
	require.Nil(t, err)
	scores, err := result.Column("score")
	require.Nil(t, err)
	require.Equal(t, []interface{}{1.5, nil, 4.0}, scores)

	_, err = ds.To(RetypeColumn("name", &dsformat.Int64ColumnType{}))
	var convErr errors.ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "name", convErr.Column)
}

func TestWithColumn(t *testing.T) {
	ds := createTestDataset(t)
	result, err := ds.To(
		WithColumn("id", &dsformat.VarStringColumnType{}),
		Map(func(row dsformat.Row) error {
			return row.Set("id", "x")
		}),
		WithColumn("flag", &dsformat.BoolColumnType{}),
	)
	require.Nil(t, err)
	require.Equal(t, []string{"id", "name", "score", "flag"}, result.GetSchema().ColumnNames())
	require.Equal(t, map[string]interface{}{"id": "x", "name": "a", "score": "1.5", "flag": nil}, result.GetRow(0).ToMap())

	_, err = ds.To(AddColumn("id", &dsformat.BoolColumnType{}))
	require.ErrorAs(t, err, &errors.DuplicateColumnError{})
}

func TestDistinct(t *testing.T) {
	ds := createTestDataset(t)
	result, err := ds.To(Distinct(func(row dsformat.Row) ([]byte, error) {
		name, err := row.GetVarString("name")
		return []byte(name), err
	}))
	require.Nil(t, err)
	ids, err := result.Column("id")
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), int64(2)}, ids)
}

func TestMapRecoversPanics(t *testing.T) {
	ds := createTestDataset(t)
	_, err := ds.To(Map(func(row dsformat.Row) error {
		panic("boom")
	}))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Map Panic: boom")
	require.Contains(t, err.Error(), "\"name\": \"b\"")
}

func TestFilterAndRepack(t *testing.T) {
	ds := createTestDataset(t)
	result, err := ds.To(
		Filter(func(row dsformat.Row) (bool, error) {
			return !row.IsNil("score"), nil
		}),
		Repack(),
	)
	require.Nil(t, err)
	require.Equal(t, 2, result.NumRows())
}
