package sjpeg

import "errors"

var (
	// ErrSinkFull indicates that a FixedSink ran out of room for a
	// requested region. The stream cannot continue; callers should
	// Reset the sink and start over with a larger buffer.
	ErrSinkFull = errors.New("sjpeg: sink capacity exhausted")

	// ErrSinkReleased indicates a Commit on a MemorySink whose buffer
	// was already handed out via Release.
	ErrSinkReleased = errors.New("sjpeg: sink used after Release")

	// ErrNilTarget indicates that NewStreamSink/NewBufferSink was
	// called with a nil destination.
	ErrNilTarget = errors.New("sjpeg: sink constructed with a nil target")

	// ErrShortWrite indicates that a StreamSink's underlying io.Writer
	// accepted fewer bytes than it was given without reporting an error.
	ErrShortWrite = errors.New("sjpeg: underlying writer accepted a short write")
)
