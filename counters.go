package huffman

// maxSymbols is the alphabet size: every byte value is a symbol.
const maxSymbols = 256

// counters tracks byte frequencies for one Train call.
//
// Counts are kept dense (one uint64 slot per byte value) so counting is a single
// indexed increment; the sparse view the tree builder needs is produced by next,
// which skips zero slots in ascending symbol order.
type counters struct {
	single   [maxSymbols]uint64 // occurrences per byte value
	distinct int                // number of non-zero slots
}

// count adds every byte of input.
func (c *counters) count(input []byte) {
	for _, b := range input {
		if c.single[b] == 0 {
			c.distinct++
		}
		c.single[b]++
	}
}

// next advances sym to the next symbol with a non-zero count and returns it.
// Returns 0 if no more non-zero counts exist.
func (c *counters) next(sym *uint32) uint64 {
	s := *sym
	for s < maxSymbols {
		if n := c.single[s]; n != 0 {
			*sym = s
			return n
		}
		s++
	}
	*sym = s
	return 0
}

// total returns the number of counted bytes.
func (c *counters) total() uint64 {
	var n uint64
	for _, f := range c.single {
		n += f
	}
	return n
}

// Frequencies returns the number of occurrences of each byte value present in
// input. Absent byte values have no entry; empty input yields an empty map.
func Frequencies(input []byte) map[byte]uint64 {
	var c counters
	c.count(input)
	out := make(map[byte]uint64, c.distinct)
	for sym := uint32(0); sym < maxSymbols; sym++ {
		n := c.next(&sym)
		if n == 0 {
			break
		}
		out[byte(sym)] = n
	}
	return out
}
