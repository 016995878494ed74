package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

const (
	containerMagic   = "HUF"
	containerVersion = 1
	headerSize       = 3 + 1 + 1 + 8 // magic, version, entry count, symbol count
)

// Container is the persisted form of one compressed input: the dictionary,
// the number of encoded symbols and the packed payload.
//
// Layout:
//   - 3 bytes magic "HUF"
//   - 1 byte version
//   - 1 byte dictionary entry count (0 stands for 256 when Count > 0)
//   - 8 bytes symbol count, little-endian
//   - dictionary entries (see Table)
//   - payload: code bits MSB-first, last byte zero padded
//
// The symbol count is the only stop condition on decode; the payload length is
// never used to infer how many symbols it holds.
type Container struct {
	Table   *Table
	Count   uint64
	Payload []byte
}

// WriteTo serializes c to w. The whole container is assembled in memory and
// handed to w in a single Write, so w sees either all of it or nothing
// produced by a failed encode.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	entries := 0
	if c.Table != nil {
		entries = c.Table.Len()
	}
	if (entries == 0) != (c.Count == 0) {
		return 0, fmt.Errorf("%w: %d dictionary entries and %d symbols", ErrInconsistent, entries, c.Count)
	}

	var (
		buf bytes.Buffer
		hdr [headerSize]byte
	)
	copy(hdr[:], containerMagic)
	hdr[3] = containerVersion
	hdr[4] = byte(entries) // 256 wraps to 0
	binary.LittleEndian.PutUint64(hdr[5:], c.Count)
	buf.Write(hdr[:])
	if entries > 0 {
		if _, err := c.Table.writeEntries(&buf); err != nil {
			return 0, err
		}
	}
	buf.Write(c.Payload)

	nn, err := w.Write(buf.Bytes())
	return int64(nn), err
}

// ReadFrom deserializes a container from r, consuming r to EOF. The payload is
// everything after the dictionary.
func (c *Container) ReadFrom(r io.Reader) (int64, error) {
	var (
		n   int64
		hdr [headerSize]byte
	)
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return n, formatError(err, "header")
	}
	n += headerSize
	if string(hdr[:3]) != containerMagic {
		return n, ErrBadMagic
	}
	if hdr[3] != containerVersion {
		return n, fmt.Errorf("%w: %d", ErrBadVersion, hdr[3])
	}
	entries := int(hdr[4])
	count := binary.LittleEndian.Uint64(hdr[5:])
	switch {
	case entries == 0 && count > 0:
		entries = maxSymbols
	case entries > 0 && count == 0:
		return n, fmt.Errorf("%w: %d dictionary entries for an empty input", ErrFormat, entries)
	}

	tbl := &Table{}
	if entries > 0 {
		var (
			nn  int64
			err error
		)
		tbl, nn, err = readEntries(r, entries)
		n += nn
		if err != nil {
			return n, err
		}
	}

	payload, err := io.ReadAll(r)
	n += int64(len(payload))
	if err != nil {
		return n, err
	}
	c.Table, c.Count, c.Payload = tbl, count, payload
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Container) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Container) UnmarshalBinary(data []byte) error {
	_, err := c.ReadFrom(bytes.NewReader(data))
	return err
}

// Encode packs the codes of input, in order, into bytes MSB-first and zero
// pads the last byte. Every byte of input must have a code in t.
func (t *Table) Encode(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(int((t.EncodedBits(input) + 7) / 8))
	w := bitio.NewWriter(&buf)
	for i, b := range input {
		if !t.present[b] {
			return nil, fmt.Errorf("%w: byte %d at offset %d", ErrUnknownSymbol, b, i)
		}
		if err := t.codes[b].writeTo(w); err != nil {
			return nil, err
		}
	}
	// flushes the partial last byte with zero padding
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeTo writes the code bits, at most 64 per call.
func (c Code) writeTo(w *bitio.Writer) error {
	rem := c.Len()
	for i := 0; rem > 0; i++ {
		k := min(rem, 64)
		if err := w.WriteBits(c.words[i]>>(64-uint(k)), uint8(k)); err != nil {
			return err
		}
		rem -= k
	}
	return nil
}

// Decode walks payload bit by bit from the root of the decode tree and emits
// a symbol at each leaf until count symbols have been produced.
//
// Decode fails with ErrFormat if the payload ends before count symbols, if a
// bit leads to a missing child, or if whole bytes remain after the last symbol.
func (t *Table) Decode(payload []byte, count uint64) ([]byte, error) {
	if count == 0 {
		if len(payload) != 0 {
			return nil, fmt.Errorf("%w: %d payload bytes for an empty input", ErrFormat, len(payload))
		}
		return []byte{}, nil
	}
	if t.n == 0 || t.dec == nil {
		return nil, fmt.Errorf("%w: %d symbols declared with an empty dictionary", ErrFormat, count)
	}
	// every symbol takes at least one bit
	if avail := uint64(len(payload)) * 8; count > avail {
		return nil, fmt.Errorf("%w: %d symbols declared but payload holds %d bits", ErrFormat, count, avail)
	}

	var (
		out   = make([]byte, 0, count)
		nodes = t.dec.nodes
		root  = t.dec.root
		r     = bitio.NewReader(bytes.NewReader(payload))
		used  uint64
	)
	for uint64(len(out)) < count {
		cur := root
		for !nodes[cur].isLeaf() {
			bit, err := r.ReadBool()
			if err != nil {
				return nil, formatError(err, fmt.Sprintf("payload after %d of %d symbols", len(out), count))
			}
			used++
			next := nodes[cur].left
			if bit {
				next = nodes[cur].right
			}
			if next == noChild {
				return nil, fmt.Errorf("%w: bit %d leads to a missing child", ErrFormat, used-1)
			}
			cur = next
		}
		out = append(out, nodes[cur].sym)
	}
	if consumed := (used + 7) / 8; consumed != uint64(len(payload)) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", ErrFormat, uint64(len(payload))-consumed)
	}
	return out, nil
}

// Compress encodes input into a self-contained container holding the
// dictionary, the symbol count and the packed payload. Empty input yields a
// container with an empty dictionary and no payload.
func Compress(input []byte) ([]byte, error) {
	tbl, err := Train(input)
	if err != nil {
		return nil, err
	}
	payload, err := tbl.Encode(input)
	if err != nil {
		return nil, err
	}
	c := Container{Table: tbl, Count: uint64(len(input)), Payload: payload}
	return c.MarshalBinary()
}

// Decompress decodes a container produced by Compress. It rebuilds the tree
// from the persisted dictionary only. Malformed input yields an error wrapping
// ErrFormat.
func Decompress(data []byte) ([]byte, error) {
	var c Container
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return c.Table.Decode(c.Payload, c.Count)
}
