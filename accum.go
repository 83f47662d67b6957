package sjpeg

// accum holds bits not yet emitted as whole bytes, left-justified in a
// 32-bit register: the most-significant bits are the next to go out.
// Between operations 0 <= nbits <= 31 (at most 7 pending bits plus one
// 24-bit push).
//
// BitWriter and BitCounter share this type so the stuffing arithmetic
// lives in exactly one place; the two must agree byte for byte on the
// output length.
type accum struct {
	bits  uint32
	nbits int
}

// push appends the low nb bits of bits below the pending ones.
// The caller guarantees nb > 0, nb <= 24 and room in the register.
func (a *accum) push(bits uint32, nb int) {
	a.nbits += nb
	a.bits |= bits << (32 - a.nbits)
}

// drain pops complete bytes off the top of the register, invoking emit
// for every output byte including the 0x00 guards required by the
// stuffing rule (a literal 0xFF must be followed by 0x00 so it cannot
// be mistaken for a marker). Returns the number of guards inserted.
// Leaves nbits < 8.
func (a *accum) drain(emit func(b byte)) int {
	guards := 0
	for a.nbits >= 8 {
		b := byte(a.bits >> 24)
		emit(b)
		if b == 0xFF {
			emit(0x00)
			guards++
		}
		a.bits <<= 8
		a.nbits -= 8
	}
	return guards
}

// padding returns the number of filler bits needed to reach the next
// byte boundary, 0 if already aligned.
func (a *accum) padding() int { return -a.nbits & 7 }
