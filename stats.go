package sjpeg

import "github.com/puzpuzpuz/xsync/v4"

// Each BitWriter is single-owner, but encoders routinely run many in
// parallel (one per restart interval, one per tile). These process-wide
// totals are the only state shared across those goroutines, updated
// once per Finalize rather than per byte.
var (
	emittedBytes = xsync.NewCounter()
	stuffedBytes = xsync.NewCounter()
)

// EmittedBytes returns the total output bytes committed by all
// finalized BitWriters in this process.
func EmittedBytes() int64 { return emittedBytes.Value() }

// StuffedBytes returns how many of those were 0x00 guards inserted by
// the stuffing rule.
func StuffedBytes() int64 { return stuffedBytes.Value() }
