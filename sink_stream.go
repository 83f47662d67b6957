package sjpeg

import "io"

// StreamSink is a ByteSink over an io.Writer (a file, a socket, ...).
// It keeps a scratch region for the writer to fill and pushes the used
// prefix downstream on every Commit, so only one region's worth of
// output is ever buffered here. The destination must not already be
// buffered by the caller if exact flush timing matters.
//
// The first write error is latched: every later Commit and Finalize
// reports it.
type StreamSink struct {
	w       io.Writer
	scratch []byte
	count   int64 // bytes pushed downstream
	err     error
}

// NewStreamSink creates a StreamSink writing to w.
func NewStreamSink(w io.Writer) (*StreamSink, error) {
	if w == nil {
		return nil, ErrNilTarget
	}
	return &StreamSink{w: w}, nil
}

// Commit implements ByteSink.
func (s *StreamSink) Commit(used, extra int) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if used > 0 {
		n, err := s.w.Write(s.scratch[:used])
		s.count += int64(n)
		if err == nil && n < used {
			err = ErrShortWrite
		}
		if err != nil {
			s.err = err
			return nil, err
		}
	}
	if extra > len(s.scratch) {
		s.scratch = make([]byte, Roundup(extra, GROW_QUANTUM))
	}
	return s.scratch, nil
}

// Finalize implements ByteSink. If the destination is flushable (e.g. a
// bufio.Writer), it is flushed so the stream is fully on the wire.
func (s *StreamSink) Finalize() error {
	if s.err != nil {
		return s.err
	}
	if f, ok := s.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			s.err = err
			return err
		}
	}
	return nil
}

// Reset implements ByteSink, dropping the scratch region and the
// latched error. The destination writer is untouched.
func (s *StreamSink) Reset() {
	s.scratch = nil
	s.count = 0
	s.err = nil
}

// Count returns the number of bytes pushed to the destination so far.
// Bytes sitting in the current region are not included until the next
// Commit.
func (s *StreamSink) Count() int64 { return s.count }

// Err returns the latched write error, if any.
func (s *StreamSink) Err() error { return s.err }
