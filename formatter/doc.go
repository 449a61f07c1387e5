// Package formatter wraps a single Dataset and derives new Datasets from it: hash and UUID
// columns, normalized text, renamed, dropped, constant and retyped columns, imputed missing
// values and column summaries.
//
//	f, err := formatter.CreateFormatter(ds, &formatter.Conf{ReportTime: true, Logger: logger})
//	if err != nil {
//		return err
//	}
//	withIDs, err := f.Apply("hash", "uuid")
package formatter
