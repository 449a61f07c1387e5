// Package dsformat contains the core components of dsformat, a toolkit for decorating and cleaning
// columnar datasets. This root package defines the types which are employed during the regular use of
// the toolkit (Dataset, Schema, Row, ColumnType and the operation function types), as well as in its
// extension, and is an excellent overview of its key concepts. The formatter package builds on these
// to add hash and UUID columns, normalize text, impute missing values and summarize columns.
package dsformat
