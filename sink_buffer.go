package sjpeg

// BufferSink is a ByteSink that appends to a caller-owned byte slice.
// The sink borrows the slice, it never owns it: the caller is
// responsible for its lifetime and must not mutate it mid-stream.
// Capacity only ever grows while writing; Finalize truncates the slice
// to the exact bytes committed.
type BufferSink struct {
	buf *[]byte
	pos int
}

// NewBufferSink creates a BufferSink appending after the current
// contents of *buf.
func NewBufferSink(buf *[]byte) (*BufferSink, error) {
	if buf == nil {
		return nil, ErrNilTarget
	}
	return &BufferSink{buf: buf, pos: len(*buf)}, nil
}

// Commit implements ByteSink.
func (s *BufferSink) Commit(used, extra int) ([]byte, error) {
	s.pos += used
	b := *s.buf
	if need := s.pos + extra; need > cap(b) {
		next := make([]byte, Roundup(max(need, cap(b)+cap(b)/2), GROW_QUANTUM))
		copy(next, b[:s.pos])
		*s.buf = next
	} else {
		// Expose the full capacity while the stream is open; Finalize
		// trims the tail back off.
		*s.buf = b[:cap(b)]
	}
	return (*s.buf)[s.pos:], nil
}

// Finalize implements ByteSink, truncating the caller's slice to the
// committed length.
func (s *BufferSink) Finalize() error {
	*s.buf = (*s.buf)[:s.pos]
	return nil
}

// Reset implements ByteSink, emptying the caller's slice.
func (s *BufferSink) Reset() {
	*s.buf = (*s.buf)[:0]
	s.pos = 0
}

// Len returns the number of committed bytes, including whatever the
// caller's slice held before the stream started.
func (s *BufferSink) Len() int { return s.pos }
