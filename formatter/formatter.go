package formatter

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/accumulators"
	"github.com/go-sif/dsformat/errors"
	iutil "github.com/go-sif/dsformat/internal/util"
	"github.com/go-sif/dsformat/operations/transform"
	"github.com/go-sif/dsformat/operations/util"
	"github.com/go-sif/dsformat/stats"
	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Formatter wraps a single Dataset, deriving new Datasets from it
type Formatter struct {
	dataset   dsformat.OperableDataset
	conf      *Conf
	lastStats *stats.OperationStats
}

// CreateFormatter is a factory for Formatters. dataset must implement dsformat.OperableDataset.
func CreateFormatter(dataset interface{}, conf *Conf) (*Formatter, error) {
	ds, ok := dataset.(dsformat.OperableDataset)
	if !ok || ds == nil {
		return nil, errors.NotADatasetError{Value: dataset}
	}
	if conf == nil {
		conf = &Conf{}
	}
	conf.fillDefaults()
	return &Formatter{dataset: ds, conf: conf}, nil
}

// Dataset returns the Dataset currently held by this Formatter
func (f *Formatter) Dataset() dsformat.OperableDataset {
	return f.dataset
}

// Stats returns statistics for the most recent instrumented operation, or nil if there hasn't been one
func (f *Formatter) Stats() *stats.OperationStats {
	return f.lastStats
}

func (f *Formatter) requireColumns(colNames ...string) error {
	for _, name := range colNames {
		if !f.dataset.GetSchema().HasColumn(name) {
			return errors.MissingColumnError{Name: name}
		}
	}
	return nil
}

// run applies a chain of operations to the held Dataset. Instrumented runs record stats.
func (f *Formatter) run(name string, instrumented bool, ops ...dsformat.DatasetOperation) (dsformat.OperableDataset, error) {
	var s *stats.OperationStats
	if instrumented {
		s = stats.Start(name, f.dataset.NumRows(), f.conf.ReportMemory)
	}
	result, err := f.dataset.To(ops...)
	if err != nil {
		f.logFailure(name, err)
		return nil, err
	}
	next, ok := result.(dsformat.OperableDataset)
	if !ok {
		return nil, errors.NotADatasetError{Value: result}
	}
	if s != nil {
		f.finish(s, next.NumRows())
	}
	if f.conf.Inplace {
		f.dataset = next
	}
	return next, nil
}

func (f *Formatter) finish(s *stats.OperationStats, rowsOut int) {
	s.Finish(rowsOut)
	f.lastStats = s
	if f.conf.ReportTime {
		f.conf.Logger.Infow("operation finished",
			"operation", s.Name,
			"runtime", s.Runtime,
			"rows_in", s.RowsIn,
			"rows_out", s.RowsOut,
		)
	}
	if f.conf.ReportMemory {
		f.conf.Logger.Infow("operation memory",
			"operation", s.Name,
			"allocated_bytes", s.AllocatedBytes,
			"heap_in_use", s.HeapInUse,
		)
	}
}

func (f *Formatter) logFailure(name string, err error) {
	if merr, ok := err.(*multierror.Error); ok {
		f.conf.Logger.Debugw("operation failed", "operation", name, "rows_failed", len(merr.Errors), "errors", iutil.FormatMultiError(merr.Errors))
		return
	}
	f.conf.Logger.Debugw("operation failed", "operation", name, "error", err)
}

// Hash adds a column containing the hex SHA-256 digest of the string form of
// sourceCol. Empty names fall back to the Conf's SourceColumn and HashColumn.
// nil values hash as the empty string.
func (f *Formatter) Hash(sourceCol string, hashCol string) (dsformat.OperableDataset, error) {
	if sourceCol == "" {
		sourceCol = f.conf.SourceColumn
	}
	if hashCol == "" {
		hashCol = f.conf.HashColumn
	}
	if err := f.requireColumns(sourceCol); err != nil {
		return nil, err
	}
	return f.run("hash", true,
		transform.WithColumn(hashCol, &dsformat.VarStringColumnType{}),
		transform.Map(func(row dsformat.Row) error {
			v, err := row.Get(sourceCol)
			if err != nil {
				return err
			}
			return row.Set(hashCol, HashValue(v))
		}),
	)
}

// HashValue returns the hex SHA-256 digest of the UTF-8 bytes of the string form of v
func HashValue(v interface{}) string {
	sum := sha256.Sum256([]byte(dsformat.FormatValue(v)))
	return hex.EncodeToString(sum[:])
}

// UUID adds a column containing a random (version 4) UUID per row.
// An empty name falls back to the Conf's UUIDColumn.
func (f *Formatter) UUID(uuidCol string) (dsformat.OperableDataset, error) {
	if uuidCol == "" {
		uuidCol = f.conf.UUIDColumn
	}
	return f.run("uuid", true,
		transform.WithColumn(uuidCol, &dsformat.VarStringColumnType{}),
		transform.Map(func(row dsformat.Row) error {
			id, err := uuid.NewV4()
			if err != nil {
				return err
			}
			return row.Set(uuidCol, id.String())
		}),
	)
}

// NormalizeText lower-cases the values of a string column and strips surrounding
// whitespace, writing to targetCol (or back to sourceCol if targetCol is empty).
func (f *Formatter) NormalizeText(sourceCol string, targetCol string) (dsformat.OperableDataset, error) {
	if targetCol == "" {
		targetCol = sourceCol
	}
	if err := f.requireColumns(sourceCol); err != nil {
		return nil, err
	}
	offset, err := f.dataset.GetSchema().GetOffset(sourceCol)
	if err != nil {
		return nil, err
	}
	if _, ok := offset.Type().(*dsformat.VarStringColumnType); !ok {
		return nil, errors.IncompatibleColumnTypeError{Name: sourceCol, Expected: "string", Actual: offset.Type().Name()}
	}
	lower := cases.Lower(language.Und)
	return f.run("normalize_text", true,
		transform.WithColumn(targetCol, &dsformat.VarStringColumnType{}),
		transform.Map(func(row dsformat.Row) error {
			if row.IsNil(sourceCol) {
				return row.SetNil(targetCol)
			}
			text, err := row.GetVarString(sourceCol)
			if err != nil {
				return err
			}
			return row.Set(targetCol, strings.TrimSpace(lower.String(text)))
		}),
	)
}

// FilterRows keeps only the rows for which fn returns true, preserving their order
func (f *Formatter) FilterRows(fn dsformat.FilterOperation) (dsformat.OperableDataset, error) {
	return f.run("filter_rows", true, transform.Filter(fn))
}

// RenameColumn renames a column, preserving its values
func (f *Formatter) RenameColumn(oldName string, newName string) (dsformat.OperableDataset, error) {
	if err := f.requireColumns(oldName); err != nil {
		return nil, err
	}
	return f.run("rename_column", false, transform.RenameColumn(oldName, newName))
}

// DropColumn removes a column
func (f *Formatter) DropColumn(colName string) (dsformat.OperableDataset, error) {
	if err := f.requireColumns(colName); err != nil {
		return nil, err
	}
	return f.run("drop_column", false, transform.RemoveColumn(colName))
}

// AddConstantColumn adds a column holding value in every row. The column type is
// inferred from value. An existing column of the same name is overwritten.
func (f *Formatter) AddConstantColumn(colName string, value interface{}) (dsformat.OperableDataset, error) {
	return f.run("add_constant_column", false,
		transform.WithColumn(colName, dsformat.InferColumnType(value)),
		transform.Map(func(row dsformat.Row) error {
			return row.Set(colName, value)
		}),
	)
}

// ConvertColumnType converts every non-nil value of a column to colType
func (f *Formatter) ConvertColumnType(colName string, colType dsformat.ColumnType) (dsformat.OperableDataset, error) {
	if err := f.requireColumns(colName); err != nil {
		return nil, err
	}
	return f.run("convert_column_type", true, transform.RetypeColumn(colName, colType))
}

// FillMissing replaces the nil values of a column with value, converted to the column's type
func (f *Formatter) FillMissing(colName string, value interface{}) (dsformat.OperableDataset, error) {
	if err := f.requireColumns(colName); err != nil {
		return nil, err
	}
	offset, err := f.dataset.GetSchema().GetOffset(colName)
	if err != nil {
		return nil, err
	}
	fill, err := offset.Type().Convert(value)
	if err != nil {
		return nil, errors.ConversionError{Column: colName, Value: value, Type: offset.Type().Name(), Err: err}
	}
	return f.run("fill_missing", true, transform.Map(func(row dsformat.Row) error {
		if !row.IsNil(colName) {
			return nil
		}
		return row.Set(colName, fill)
	}))
}

// ComputeSummary computes the mean, median and population standard deviation
// of the non-nil values of a numeric column
func (f *Formatter) ComputeSummary(colName string) (accumulators.Summary, error) {
	if err := f.requireColumns(colName); err != nil {
		return accumulators.Summary{}, err
	}
	s := stats.Start("compute_summary", f.dataset.NumRows(), f.conf.ReportMemory)
	acc, err := util.Accumulate(f.dataset, accumulators.Summarizer(colName))
	if err != nil {
		f.logFailure("compute_summary", err)
		return accumulators.Summary{}, err
	}
	summary, err := acc.(*accumulators.SummaryAccumulator).GetSummary()
	if err != nil {
		return accumulators.Summary{}, err
	}
	f.finish(s, f.dataset.NumRows())
	return summary, nil
}

// DropDuplicates keeps the first row for each distinct string form of a column's values
func (f *Formatter) DropDuplicates(colName string) (dsformat.OperableDataset, error) {
	if err := f.requireColumns(colName); err != nil {
		return nil, err
	}
	return f.run("drop_duplicates", true, transform.Distinct(func(row dsformat.Row) ([]byte, error) {
		v, err := row.Get(colName)
		if err != nil {
			return nil, err
		}
		// tag nil and non-nil keys so nil never collides with a string value
		if v == nil {
			return []byte{0}, nil
		}
		return append([]byte{1}, dsformat.FormatValue(v)...), nil
	}))
}

// Apply adds a hash column (of the Conf's SourceColumn) and then a UUID column,
// replacing the held Dataset after each step. If either step fails, the held
// Dataset is left as it was.
func (f *Formatter) Apply(hashCol string, uuidCol string) (result dsformat.OperableDataset, err error) {
	s := stats.Start("apply", f.dataset.NumRows(), f.conf.ReportMemory)
	previous := f.dataset
	defer func() {
		if err != nil {
			f.dataset = previous
		}
	}()
	hashed, err := f.Hash("", hashCol)
	if err != nil {
		return nil, err
	}
	f.dataset = hashed
	identified, err := f.UUID(uuidCol)
	if err != nil {
		return nil, err
	}
	f.dataset = identified
	f.finish(s, f.dataset.NumRows())
	return f.dataset, nil
}
