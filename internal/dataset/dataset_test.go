package dataset

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/errors"
	"github.com/go-sif/dsformat/schema"
	"github.com/stretchr/testify/require"
)

func createTestDataset(t *testing.T) dsformat.OperableDataset {
	s, err := schema.CreateSchemaFromColumns(
		[]string{"name", "score"},
		[]dsformat.ColumnType{&dsformat.VarStringColumnType{}, &dsformat.Float64ColumnType{}},
	)
	require.Nil(t, err)
	return CreateDataset(s, [][]interface{}{
		{"Sean", 1.5},
		{"Chris", nil},
		{"Phil", 3.0},
	})
}

func TestGetRow(t *testing.T) {
	ds := createTestDataset(t)
	require.Equal(t, 3, ds.NumRows())
	row := ds.GetRow(1)
	name, err := row.GetVarString("name")
	require.Nil(t, err)
	require.Equal(t, "Chris", name)
	require.True(t, row.IsNil("score"))
	_, err = row.GetFloat64("score")
	require.ErrorAs(t, err, &errors.NilValueError{})
	_, err = row.GetInt64("name")
	require.ErrorAs(t, err, &errors.IncompatibleColumnTypeError{})
	_, err = row.Get("nope")
	require.ErrorAs(t, err, &errors.MissingColumnError{})
	require.False(t, row.IsNil("nope"))
	require.Equal(t, map[string]interface{}{"name": "Chris", "score": nil}, row.ToMap())
	require.Equal(t, "{\"name\": \"Chris\",\"score\": nil,}", row.ToString())
}

func TestSetConverts(t *testing.T) {
	ds := createTestDataset(t)
	next, err := ds.MapRows(func(row dsformat.Row) error {
		return row.Set("score", "2.25")
	})
	require.Nil(t, err)
	v, err := next.GetRow(0).GetFloat64("score")
	require.Nil(t, err)
	require.Equal(t, 2.25, v)

	_, err = ds.MapRows(func(row dsformat.Row) error {
		return row.Set("score", "not a number")
	})
	var convErr errors.ConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "score", convErr.Column)
	require.Equal(t, "float64", convErr.Type)
}

func TestMapRowsDoesNotMutateSource(t *testing.T) {
	ds := createTestDataset(t)
	next, err := ds.MapRows(func(row dsformat.Row) error {
		return row.Set("name", "x")
	})
	require.Nil(t, err)
	for i := 0; i < ds.NumRows(); i++ {
		v, err := next.GetRow(i).GetVarString("name")
		require.Nil(t, err)
		require.Equal(t, "x", v)
	}
	original, err := ds.Column("name")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"Sean", "Chris", "Phil"}, original)
}

func TestMapRowsAggregatesErrors(t *testing.T) {
	ds := createTestDataset(t)
	calls := 0
	_, err := ds.MapRows(func(row dsformat.Row) error {
		calls++
		name, err := row.GetVarString("name")
		if err != nil {
			return err
		}
		if name != "Chris" {
			return fmt.Errorf("bad row %s", name)
		}
		return nil
	})
	require.NotNil(t, err)
	require.Equal(t, 3, calls)
	require.Contains(t, err.Error(), "bad row Sean")
	require.Contains(t, err.Error(), "bad row Phil")
}

func TestFilterRowsPreservesOrder(t *testing.T) {
	ds := createTestDataset(t)
	next, err := ds.FilterRows(func(row dsformat.Row) (bool, error) {
		return !row.IsNil("score"), nil
	})
	require.Nil(t, err)
	names, err := next.Column("name")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"Sean", "Phil"}, names)
	require.Equal(t, 3, ds.NumRows())
}

func TestUpdateSchemaAddsNilColumn(t *testing.T) {
	ds := createTestDataset(t)
	newSchema, err := ds.GetSchema().Clone().CreateColumn("when", &dsformat.TimeColumnType{})
	require.Nil(t, err)
	next := ds.UpdateSchema(newSchema)
	require.True(t, next.GetRow(0).IsNil("when"))
	require.False(t, ds.GetSchema().HasColumn("when"))

	now := time.Now()
	mapped, err := next.MapRows(func(row dsformat.Row) error {
		return row.Set("when", now)
	})
	require.Nil(t, err)
	when, err := mapped.GetRow(2).GetTime("when")
	require.Nil(t, err)
	require.True(t, now.Equal(when))
}

func TestRepack(t *testing.T) {
	ds := createTestDataset(t)
	newSchema := ds.GetSchema().Clone()
	newSchema, removed := newSchema.RemoveColumn("name")
	require.True(t, removed)
	repacked, err := ds.Repack(newSchema.Repack())
	require.Nil(t, err)
	require.Equal(t, []string{"score"}, repacked.GetSchema().ColumnNames())
	require.Equal(t, map[string]interface{}{"score": 3.0}, repacked.GetRow(2).ToMap())
}

func TestTo(t *testing.T) {
	ds := createTestDataset(t)
	result, err := ds.To(
		func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
			return d.FilterRows(func(row dsformat.Row) (bool, error) {
				return !row.IsNil("score"), nil
			})
		},
		func(d dsformat.OperableDataset) (dsformat.OperableDataset, error) {
			return nil, fmt.Errorf("stop")
		},
	)
	require.Nil(t, result)
	require.EqualError(t, err, "stop")
	require.Equal(t, 3, ds.NumRows())
}

func TestConcat(t *testing.T) {
	first := createTestDataset(t)
	second := createTestDataset(t)
	joined, err := Concat(first.GetSchema(), first, second)
	require.Nil(t, err)
	require.Equal(t, 6, joined.NumRows())
	names, err := joined.Column("name")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"Sean", "Chris", "Phil", "Sean", "Chris", "Phil"}, names)

	other, err := schema.CreateSchemaFromColumns([]string{"name"}, []dsformat.ColumnType{&dsformat.VarStringColumnType{}})
	require.Nil(t, err)
	_, err = Concat(other, first)
	require.NotNil(t, err)
}
