// Package huffman provides lossless byte-stream compression with static
// Huffman coding.
//
// # Overview
//
// Compress counts the bytes of its input, builds an optimal binary prefix tree
// from those counts, assigns each present byte the bit path to its leaf and
// packs the codes of the whole input into bytes. The result is a
// self-contained container: the dictionary, the number of encoded symbols and
// the payload. Decompress rebuilds an equivalent tree from the dictionary alone
// and walks the payload back into the original bytes.
//
// # When to Use
//
// The codec targets small text and telemetry buffers compressed once before
// storage or transfer:
//   - Logs, JSON, CSV and sensor readings with a skewed byte distribution
//   - Payloads where a simple, dependency-light format matters more than ratio
//
// It is not a general archive format. There is no adaptive coding, no
// streaming mode and no error correction; each container holds one input.
//
// # Basic Usage
//
//	container, err := huffman.Compress([]byte("aaab"))
//	if err != nil {
//	    return err
//	}
//	original, err := huffman.Decompress(container)
//
//	// Inspect the code table
//	tbl, _ := huffman.Train([]byte("aaab"))
//	fmt.Print(tbl) // one line per symbol with its code
//
// # Container Layout
//
//	"HUF" | version (1) | entry count (1) | symbol count (8, little-endian)
//	entries: symbol (1) | code length (1) | code bits, MSB-first, ceil(len/8) bytes
//	payload: code bits, MSB-first, last byte zero padded
//
// An entry count of 0 stands for 256 entries when the symbol count is
// non-zero. The symbol count is the only stop condition on decode, so the zero
// padding of the last payload byte is never mistaken for data.
//
// # Determinism
//
// Nodes of equal weight leave the priority queue in creation order: leaves in
// ascending byte order, then merged nodes in the order they were built. The
// first node taken becomes the 0 branch. Compressing the same input twice
// yields identical containers.
//
// # Errors
//
// Malformed or truncated containers yield errors wrapping ErrFormat. A code
// longer than 255 bits, which the format cannot store, yields ErrOverflow. A
// Container whose dictionary and symbol count disagree cannot be written and
// yields ErrInconsistent.
// Errors from the file system are wrapped and returned as is.
package huffman
