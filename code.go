package huffman

import (
	"fmt"
	"strings"
)

// Core constants for the code representation.
const (
	maxCodeLen = 255 // code length is stored in one byte
	codeWords  = 4   // 4×64 bits hold any code up to maxCodeLen
)

// Code is the bit string assigned to one symbol. Bits are stored MSB-first:
// bit i of the code lives in words[i/64] at position 63-i%64.
type Code struct {
	words [codeWords]uint64
	n     uint8
}

// Len returns the number of bits in the code.
func (c Code) Len() int { return int(c.n) }

// Bit reports whether bit i (0 = first bit written) is set.
func (c Code) Bit(i int) bool {
	return c.words[i>>6]>>(63-uint(i&63))&1 == 1
}

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// appendBit returns c extended by one bit. The caller guarantees c.Len() < maxCodeLen.
func (c Code) appendBit(bit bool) Code {
	i := int(c.n)
	if bit {
		c.words[i>>6] |= 1 << (63 - uint(i&63))
	}
	c.n++
	return c
}

// packedLen returns the number of bytes the code occupies when bit-packed.
func (c Code) packedLen() int { return (c.Len() + 7) / 8 }

// packedByte returns byte k of the MSB-first packed form, zero padded.
func (c Code) packedByte(k int) byte {
	return byte(c.words[k>>3] >> (56 - 8*uint(k&7)))
}

// codeFromPacked rebuilds a code of n bits from its packed form. Padding bits
// past n are ignored.
func codeFromPacked(packed []byte, n int) Code {
	var c Code
	for k, b := range packed {
		c.words[k>>3] |= uint64(b) << (56 - 8*uint(k&7))
	}
	c.n = uint8(n)
	c.clearTail()
	return c
}

// clearTail zeroes every bit past Len so equal codes compare equal.
func (c *Code) clearTail() {
	for w := range c.words {
		lo := w * 64
		switch {
		case int(c.n) <= lo:
			c.words[w] = 0
		case int(c.n) < lo+64:
			c.words[w] &^= ^uint64(0) >> uint(int(c.n)-lo)
		}
	}
}

// generateCodes walks the tree from the root, appending 0 on every left edge
// and 1 on every right edge, and records the path of each leaf. A root that is
// itself a leaf gets the one-bit code 0 so it can still be walked on decode.
func (t *tree) generateCodes() (*Table, error) {
	tbl := &Table{}
	if t.nodes[t.root].isLeaf() {
		tbl.set(t.nodes[t.root].sym, Code{}.appendBit(false))
		return tbl, nil
	}

	type frame struct {
		idx  int32
		code Code
	}
	// explicit stack; right is pushed first so left subtrees are visited first
	stack := []frame{{idx: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[f.idx]
		if n.isLeaf() {
			tbl.set(n.sym, f.code)
			continue
		}
		if f.code.Len() == maxCodeLen {
			return nil, fmt.Errorf("%w: code deeper than %d bits", ErrOverflow, maxCodeLen)
		}
		if n.right != noChild {
			stack = append(stack, frame{idx: n.right, code: f.code.appendBit(true)})
		}
		if n.left != noChild {
			stack = append(stack, frame{idx: n.left, code: f.code.appendBit(false)})
		}
	}
	return tbl, nil
}
