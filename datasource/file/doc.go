// Package file provides a DataSource which reads data from a set of files on disk.
// Files matching a glob are parsed in lexical order and concatenated into a single Dataset.
package file
