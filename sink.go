package sjpeg

// ByteSink is the capability a BitWriter drives: a byte region is
// requested and made permanent in rounds, so the sink decides how
// storage is owned and grown while the writer only fills regions.
//
// Protocol:
//   - Commit(used, extra): declares that 'used' bytes were written into
//     the region returned by the previous Commit (0 on the first call),
//     and requests a fresh region of at least 'extra' writable bytes.
//     'extra' may be 0. The returned slice starts at the sink's logical
//     write position and is invalidated by the next Commit.
//   - Finalize(): seals the output at its final length. Called once,
//     after the last Commit.
//   - Reset(): releases resources and returns the sink to an empty
//     state; the teardown path after an error.
//
// A nil region plus a non-nil error means the stream is dead: no more
// writes are possible and the caller must abandon it.
type ByteSink interface {
	Commit(used, extra int) ([]byte, error)
	Finalize() error
	Reset()
}

var (
	_ ByteSink = (*MemorySink)(nil)
	_ ByteSink = (*BufferSink)(nil)
	_ ByteSink = (*FixedSink)(nil)
	_ ByteSink = (*StreamSink)(nil)
)
