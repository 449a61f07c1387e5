// Package jsonl reads and writes JSON Lines Datasets. Parsing uses https://github.com/tidwall/gjson,
// and supports Schema column names formatted as gjson paths. Both directions optionally use LZ4 framing.
package jsonl
