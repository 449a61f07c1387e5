package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.Nil(t, err)
	require.Equal(t, WarnLevel, level)
	level, err = ParseLevel(" DEBUG ")
	require.Nil(t, err)
	require.Equal(t, DebugLevel, level)
	level, err = ParseLevel("trace")
	require.Nil(t, err)
	require.Equal(t, TraceLevel, level)
	_, err = ParseLevel("loud")
	require.NotNil(t, err)
}

func TestCreateLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger := CreateLoggerTo(&buf, WarnLevel)
	logger.Infow("hidden")
	logger.Warnw("operation finished", "operation", "hash")
	require.Nil(t, logger.Sync())
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "WARN")
	require.Contains(t, buf.String(), "operation finished")
	require.Contains(t, buf.String(), "\"operation\": \"hash\"")
}
