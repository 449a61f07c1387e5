package formatter

import "go.uber.org/zap"

const (
	// DefaultSourceColumn is the column hashed when no source column is named
	DefaultSourceColumn = "document"
	// DefaultHashColumn is the column receiving hashes when no target column is named
	DefaultHashColumn = "hash"
	// DefaultUUIDColumn is the column receiving UUIDs when no target column is named
	DefaultUUIDColumn = "uuid"
)

// Conf configures a Formatter
type Conf struct {
	SourceColumn string             // The column hashed by Hash and Apply. Defaults to "document".
	HashColumn   string             // The column Hash writes to. Defaults to "hash".
	UUIDColumn   string             // The column UUID writes to. Defaults to "uuid".
	Inplace      bool               // Whether every successful transformation replaces the Formatter's Dataset. Apply always does. Defaults to false.
	ReportTime   bool               // Whether instrumented operations log their runtime. Defaults to false.
	ReportMemory bool               // Whether instrumented operations measure and log memory usage. Defaults to false.
	Logger       *zap.SugaredLogger // Destination for reports. Defaults to a no-op logger.
}

func (c *Conf) fillDefaults() {
	if c.SourceColumn == "" {
		c.SourceColumn = DefaultSourceColumn
	}
	if c.HashColumn == "" {
		c.HashColumn = DefaultHashColumn
	}
	if c.UUIDColumn == "" {
		c.UUIDColumn = DefaultUUIDColumn
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop().Sugar()
	}
}
