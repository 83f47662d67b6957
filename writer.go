package sjpeg

// BitWriter accumulates variable-length codes most-significant-bit
// first and emits them through a ByteSink, applying the stuffing rule
// (0xFF is always followed by a 0x00 guard) to every flushed byte.
//
// The append hot path is deliberately unchecked: PutBits, PutByte and
// friends never test the region bounds. The caller must Reserve enough
// headroom first — ReserveHint gives the worst case. After a failed
// Reserve or Finalize the writer is unusable; Reset the sink and start
// over.
//
// A BitWriter is exclusively owned by one logical write; there is no
// internal locking.
type BitWriter struct {
	sink ByteSink
	acc  accum

	buf []byte // region granted by the last Reserve
	pos int    // bytes written into buf since then

	total   int64 // committed output bytes, all regions
	stuffed int64 // 0x00 guards among them
	err     error // first sink error; later Reserve/Finalize are no-ops
}

// NewBitWriter creates a BitWriter over sink. The writer holds no
// region yet: Reserve must be called before the first Put.
func NewBitWriter(sink ByteSink) *BitWriter {
	return &BitWriter{sink: sink}
}

// Reserve commits everything written so far and requests a region of
// at least size writable bytes from the sink. The region is private to
// the writer until the next Reserve. On error the stream is dead.
func (w *BitWriter) Reserve(size int) error {
	if w.err != nil {
		return w.err
	}
	buf, err := w.sink.Commit(w.pos, size)
	w.total += int64(w.pos)
	w.pos = 0
	if err != nil {
		w.buf = nil
		w.err = err
		return err
	}
	w.buf = buf
	return nil
}

func (w *BitWriter) emit(b byte) {
	w.buf[w.pos] = b
	w.pos++
}

// FlushBits drains all complete bytes from the accumulator into the
// region, stuffing as it goes. At most 6 bytes come out (3 accumulator
// bytes, each possibly guarded); no bounds are checked.
func (w *BitWriter) FlushBits() {
	w.stuffed += int64(w.acc.drain(w.emit))
}

// PutBits appends the low nb bits of bits, 0 < nb <= 24, MSB first.
// bits must have no set bits at or above position nb. Complete bytes
// are flushed first so the 32-bit accumulator always has room.
func (w *BitWriter) PutBits(bits uint32, nb int) {
	if nb <= 0 || nb > 24 {
		panic("sjpeg: PutBits length out of range")
	}
	if bits&^(1<<uint(nb)-1) != 0 {
		panic("sjpeg: PutBits value wider than its length")
	}
	w.FlushBits()
	w.acc.push(bits, nb)
}

// PutPackedCode appends a packed code: bit pattern in the upper 16
// bits, length in the low 8.
func (w *BitWriter) PutPackedCode(code uint32) { w.PutBits(code>>16, int(code&0xff)) }

// PutByte appends one verbatim byte, with no stuffing. The accumulator
// must be byte-aligned (FlushBits leaves it so only when the stream is
// at a byte boundary).
func (w *BitWriter) PutByte(value byte) {
	if w.acc.nbits != 0 {
		panic("sjpeg: PutByte with unflushed bits pending")
	}
	w.emit(value)
}

// PutBytes appends a run of verbatim bytes, with no stuffing. Same
// alignment requirement as PutByte.
func (w *BitWriter) PutBytes(p []byte) {
	if w.acc.nbits != 0 {
		panic("sjpeg: PutBytes with unflushed bits pending")
	}
	w.pos += copy(w.buf[w.pos:], p)
}

// Flush pads any pending bits up to the next byte boundary with 1s and
// emits the completed byte, stuffed like any other.
func (w *BitWriter) Flush() {
	w.FlushBits()
	if pad := w.acc.padding(); pad > 0 {
		w.acc.push(1<<uint(pad)-1, pad)
		w.FlushBits()
	}
}

// Finalize commits the last region with no further headroom and seals
// the sink. To be called last; the writer is done afterwards.
func (w *BitWriter) Finalize() error {
	if err := w.Reserve(0); err != nil {
		return err
	}
	if err := w.sink.Finalize(); err != nil {
		w.err = err
		return err
	}
	emittedBytes.Add(w.total)
	stuffedBytes.Add(w.stuffed)
	return nil
}

// Err returns the first sink error seen by Reserve or Finalize.
func (w *BitWriter) Err() error { return w.err }
