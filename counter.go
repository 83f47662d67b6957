package sjpeg

// BitCounter answers "how many bytes would this code sequence occupy"
// without materializing any of them. It replays the BitWriter's exact
// accounting — including stuffing guards — through the shared
// accumulator, so its Size matches the finalized sink length byte for
// byte when driven with the same calls.
//
// A counter is ephemeral: create one per estimation pass, or Reset it.
type BitCounter struct {
	acc  accum
	size int
}

func (c *BitCounter) count(byte) { c.size++ }

// AddBits accounts for PutBits(bits, nbits): a synthesized 0xFF byte
// counts for 2 (its guard included), any other byte for 1.
func (c *BitCounter) AddBits(bits uint32, nbits int) {
	if nbits <= 0 || nbits > 24 {
		panic("sjpeg: AddBits length out of range")
	}
	if bits&^(1<<uint(nbits)-1) != 0 {
		panic("sjpeg: AddBits value wider than its length")
	}
	c.acc.drain(c.count)
	c.acc.push(bits, nbits)
}

// AddPackedCode accounts for PutPackedCode(code).
func (c *BitCounter) AddPackedCode(code uint32) { c.AddBits(code>>16, int(code&0xff)) }

// AddBytes accounts for n verbatim bytes (PutByte/PutBytes). Like the
// writer, it requires byte alignment.
func (c *BitCounter) AddBytes(n int) {
	if c.acc.nbits != 0 {
		panic("sjpeg: AddBytes with unflushed bits pending")
	}
	c.size += n
}

// Flush accounts for the writer's Flush: pending bits are padded with
// 1s to the byte boundary and the result counted, stuffing included.
// Without it, Size reports completed bytes only.
func (c *BitCounter) Flush() {
	c.acc.drain(c.count)
	if pad := c.acc.padding(); pad > 0 {
		c.acc.push(1<<uint(pad)-1, pad)
		c.acc.drain(c.count)
	}
}

// Size returns the running total in bytes.
func (c *BitCounter) Size() int { return c.size }

// Reset makes the counter fresh for another pass.
func (c *BitCounter) Reset() { *c = BitCounter{} }
