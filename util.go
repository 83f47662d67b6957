package sjpeg

import "golang.org/x/exp/constraints"

const (
	// GROW_QUANTUM is the allocation granularity of the growable sinks.
	// Must be a power of two.
	GROW_QUANTUM = 1024

	// MAX_BYTES_PER_CODE is the worst-case number of output bytes one
	// PutBits call can produce: up to 3 accumulator bytes flushed, each
	// possibly followed by a stuffing guard.
	MAX_BYTES_PER_CODE = 6
)

// Roundup rounds n up to the nearest multiple of align (a power of two).
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// ReserveHint returns a sink headroom large enough for 'codes' calls to
// PutBits/PutPackedCode plus 'raw' whole bytes written via PutByte or
// PutBytes. Reserving this much makes the unchecked hot path safe. A
// trailing Flush counts as one more code.
func ReserveHint(codes, raw int) int { return codes*MAX_BYTES_PER_CODE + raw }
