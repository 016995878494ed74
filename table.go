package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Table holds the code of every symbol present in one input.
// A Table is created via Train or read back from a Container and can encode
// or decode payloads. It is immutable once returned and safe for concurrent use.
type Table struct {
	codes   [maxSymbols]Code // symbol -> code
	present [maxSymbols]bool // symbol has a code
	n       int              // number of symbols with a code

	// dec is the tree rebuilt from codes alone; decoding never looks at the
	// tree the codes were generated from.
	dec *tree
}

// Train counts the bytes of input, builds the Huffman tree and derives a code
// for every byte value present. Empty input yields an empty Table.
//
// Ties between equal weights are broken by creation order: leaves in
// ascending symbol order first, merged nodes after every node that existed
// when they were created. Training is therefore deterministic.
func Train(input []byte) (*Table, error) {
	var c counters
	c.count(input)
	if c.distinct == 0 {
		return &Table{}, nil
	}
	tbl, err := buildTree(&c).generateCodes()
	if err != nil {
		return nil, err
	}
	if err := tbl.finalize(); err != nil {
		return nil, err
	}
	return tbl, nil
}

func (t *Table) set(sym byte, c Code) {
	if !t.present[sym] {
		t.present[sym] = true
		t.n++
	}
	t.codes[sym] = c
}

// finalize rebuilds the decode tree from the codes. It fails if the codes are
// not prefix-free.
func (t *Table) finalize() error {
	dec := newDecodeTree()
	for sym := range maxSymbols {
		if !t.present[sym] {
			continue
		}
		if err := dec.insert(byte(sym), t.codes[sym]); err != nil {
			return err
		}
	}
	t.dec = dec
	return nil
}

// Len returns the number of symbols with a code.
func (t *Table) Len() int { return t.n }

// Code returns the code assigned to sym.
func (t *Table) Code(sym byte) (Code, bool) {
	return t.codes[sym], t.present[sym]
}

// Symbols returns the symbols with a code in ascending order.
func (t *Table) Symbols() []byte {
	out := make([]byte, 0, t.n)
	for sym := range maxSymbols {
		if t.present[sym] {
			out = append(out, byte(sym))
		}
	}
	return out
}

// EncodedBits returns the exact payload length in bits of input encoded with t.
// Symbols without a code contribute nothing.
func (t *Table) EncodedBits(input []byte) uint64 {
	var c counters
	c.count(input)
	var bits uint64
	for sym := uint32(0); sym < maxSymbols; sym++ {
		n := c.next(&sym)
		if n == 0 {
			break
		}
		bits += n * uint64(t.codes[sym].Len())
	}
	return bits
}

// String returns a human-readable dump of the dictionary, one symbol per line.
func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "dictionary: %d symbols\n", t.n)
	for _, sym := range t.Symbols() {
		code := t.codes[sym]
		fmt.Fprintf(&sb, "%3d %-6q %3d %s\n", sym, sym, code.Len(), code)
	}
	return sb.String()
}

// WriteTo serializes the dictionary on its own: a 2-byte little-endian entry
// count (0..256) followed by the entries. A Container stores the same entries
// behind its own header instead.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var (
		n    int64
		buf2 [2]byte
	)
	binary.LittleEndian.PutUint16(buf2[:], uint16(t.n))
	nn, err := w.Write(buf2[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}
	m, err := t.writeEntries(w)
	return n + m, err
}

// ReadFrom deserializes a dictionary written by WriteTo and replaces t.
// On error t is left unchanged.
func (t *Table) ReadFrom(r io.Reader) (int64, error) {
	var (
		n    int64
		buf2 [2]byte
	)
	if _, err := io.ReadFull(r, buf2[:]); err != nil {
		return n, formatError(err, "dictionary size")
	}
	n += 2
	count := int(binary.LittleEndian.Uint16(buf2[:]))
	if count > maxSymbols {
		return n, fmt.Errorf("%w: %d dictionary entries", ErrFormat, count)
	}
	if count == 0 {
		*t = Table{}
		return n, nil
	}
	tbl, m, err := readEntries(r, count)
	n += m
	if err != nil {
		return n, err
	}
	*t = *tbl
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Table) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Table) UnmarshalBinary(data []byte) error {
	_, err := t.ReadFrom(bytes.NewReader(data))
	return err
}

// writeEntries writes the dictionary entries in ascending symbol order.
// Layout per entry:
//   - 1 byte symbol
//   - 1 byte code length L (1..255)
//   - ceil(L/8) bytes of code bits, MSB-first, zero padded
func (t *Table) writeEntries(w io.Writer) (int64, error) {
	var (
		n   int64
		buf [2 + (maxCodeLen+7)/8]byte
	)
	for _, sym := range t.Symbols() {
		code := t.codes[sym]
		if code.Len() == 0 || code.Len() > maxCodeLen {
			return n, fmt.Errorf("%w: symbol %d has a %d-bit code", ErrOverflow, sym, code.Len())
		}
		buf[0] = sym
		buf[1] = byte(code.Len())
		size := 2 + code.packedLen()
		for k := range code.packedLen() {
			buf[2+k] = code.packedByte(k)
		}
		nn, err := w.Write(buf[:size])
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// readEntries reads count dictionary entries into a fresh Table and rebuilds
// its decode tree.
func readEntries(r io.Reader, count int) (*Table, int64, error) {
	var (
		t   = &Table{}
		n   int64
		hdr [2]byte
		buf [(maxCodeLen + 7) / 8]byte
	)
	for i := range count {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return nil, n, formatError(err, fmt.Sprintf("dictionary entry %d", i))
		}
		n += 2
		sym, length := hdr[0], int(hdr[1])
		if length == 0 {
			return nil, n, fmt.Errorf("%w: symbol %d has an empty code", ErrFormat, sym)
		}
		if t.present[sym] {
			return nil, n, fmt.Errorf("%w: symbol %d listed twice", ErrFormat, sym)
		}
		packed := buf[:(length+7)/8]
		if _, err := io.ReadFull(r, packed); err != nil {
			return nil, n, formatError(err, fmt.Sprintf("code of dictionary entry %d", i))
		}
		n += int64(len(packed))
		t.set(sym, codeFromPacked(packed, length))
	}
	if err := t.finalize(); err != nil {
		return nil, n, err
	}
	return t, n, nil
}
