package sjpeg

// MemorySink is a ByteSink that owns a growable buffer. The buffer is
// grown geometrically so a long write costs O(n) amortized copying, and
// is handed out exactly-sized via Release when the stream is done.
type MemorySink struct {
	buf      []byte // committed prefix is buf[:pos]
	pos      int
	released bool
}

// NewMemorySink creates a MemorySink pre-sized for expectedSize bytes
// of output. expectedSize is a hint, not a limit; 0 is fine.
func NewMemorySink(expectedSize int) *MemorySink {
	s := &MemorySink{}
	if expectedSize > 0 {
		s.buf = make([]byte, expectedSize)
	}
	return s
}

// Commit implements ByteSink.
func (s *MemorySink) Commit(used, extra int) ([]byte, error) {
	if s.released {
		return nil, ErrSinkReleased
	}
	s.pos += used
	if need := s.pos + extra; need > len(s.buf) {
		s.grow(need)
	}
	return s.buf[s.pos:], nil
}

// grow reallocates to at least need bytes, by half steps rounded to the
// allocation quantum, preserving the committed prefix.
func (s *MemorySink) grow(need int) {
	next := make([]byte, Roundup(max(need, len(s.buf)+len(s.buf)/2), GROW_QUANTUM))
	copy(next, s.buf[:s.pos])
	s.buf = next
}

// Finalize implements ByteSink. The committed length is already exact.
func (s *MemorySink) Finalize() error { return nil }

// Reset implements ByteSink, dropping the buffer and all state.
func (s *MemorySink) Reset() {
	s.buf = nil
	s.pos = 0
	s.released = false
}

// Release transfers ownership of the committed bytes to the caller.
// The sink keeps nothing: any later Commit fails with ErrSinkReleased
// and cannot touch the returned slice.
func (s *MemorySink) Release() []byte {
	out := s.buf[:s.pos]
	s.buf = nil
	s.pos = 0
	s.released = true
	return out
}

// Len returns the number of committed bytes.
func (s *MemorySink) Len() int { return s.pos }

// Cap returns the current allocation size.
func (s *MemorySink) Cap() int { return len(s.buf) }

// Bytes returns a view of the committed bytes. Valid until the next
// Commit, which may reallocate.
func (s *MemorySink) Bytes() []byte { return s.buf[:s.pos] }
