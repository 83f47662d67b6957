package sjpeg

// FixedSink is a ByteSink over a pre-allocated byte slice. It never
// grows: when a requested region does not fit, Commit fails with
// ErrSinkFull and the stream is dead. Useful for embedded callers with
// a hard output budget, and as the deterministic failure path in tests.
type FixedSink struct {
	b   []byte
	pos int
}

// NewFixedSink creates a FixedSink writing over p's full capacity.
func NewFixedSink(p []byte) *FixedSink {
	return &FixedSink{b: p[:cap(p)]}
}

// Commit implements ByteSink.
func (s *FixedSink) Commit(used, extra int) ([]byte, error) {
	s.pos += used
	if s.pos+extra > len(s.b) {
		return nil, ErrSinkFull
	}
	return s.b[s.pos:], nil
}

// Finalize implements ByteSink.
func (s *FixedSink) Finalize() error { return nil }

// Reset implements ByteSink. The underlying slice stays usable for
// another stream.
func (s *FixedSink) Reset() { s.pos = 0 }

// Len returns the number of committed bytes.
func (s *FixedSink) Len() int { return s.pos }

// Available returns the space left for further regions.
func (s *FixedSink) Available() int { return len(s.b) - s.pos }

// Bytes returns a view of the committed bytes.
func (s *FixedSink) Bytes() []byte { return s.b[:s.pos] }
