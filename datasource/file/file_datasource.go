package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-sif/dsformat"
	"github.com/go-sif/dsformat/internal/dataset"
)

// Load parses every file matching glob with the given parser, producing a single Dataset
func Load(glob string, parser dsformat.DatasetParser, schema dsformat.Schema) (dsformat.OperableDataset, error) {
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", glob)
	}
	sort.Strings(matches)
	parts := make([]dsformat.Dataset, 0, len(matches))
	for _, path := range matches {
		part, err := loadFile(path, parser, schema)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return dataset.Concat(schema, parts...)
}

func loadFile(path string, parser dsformat.DatasetParser, schema dsformat.Schema) (dsformat.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := parser.Parse(f, schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
