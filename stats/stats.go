// Package stats records the runtime and memory footprint of Formatter operations.
package stats

import (
	"runtime"
	"time"
)

// OperationStats contains statistics about a single Formatter operation
type OperationStats struct {
	Name           string        // the name of the operation
	StartTime      time.Time     // when the operation began
	Runtime        time.Duration // how long the operation ran for
	RowsIn         int           // rows in the Dataset the operation was given
	RowsOut        int           // rows in the Dataset the operation produced
	AllocatedBytes uint64        // bytes allocated while the operation ran. Zero unless memory tracking was requested.
	HeapInUse      uint64        // bytes of heap in use once the operation finished. Zero unless memory tracking was requested.

	trackMemory bool
	startAlloc  uint64
	finished    bool
}

// Start triggers statistics tracking for an operation
func Start(name string, rowsIn int, trackMemory bool) *OperationStats {
	ops := &OperationStats{
		Name:        name,
		RowsIn:      rowsIn,
		trackMemory: trackMemory,
	}
	if trackMemory {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		ops.startAlloc = m.TotalAlloc
	}
	ops.StartTime = time.Now()
	return ops
}

// Finish completes statistics tracking. Subsequent calls have no effect.
func (ops *OperationStats) Finish(rowsOut int) {
	if ops.finished {
		return
	}
	ops.Runtime = time.Since(ops.StartTime)
	ops.RowsOut = rowsOut
	if ops.trackMemory {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		ops.AllocatedBytes = m.TotalAlloc - ops.startAlloc
		ops.HeapInUse = m.HeapInuse
	}
	ops.finished = true
}

// IsFinished returns true iff Finish has been called
func (ops *OperationStats) IsFinished() bool {
	return ops.finished
}
