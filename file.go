package huffman

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

const outputPerm = 0o644

// CompressFile compresses the file at src into a container written to dst.
// dst is replaced atomically: on any error it is left untouched.
func CompressFile(src, dst string) error {
	return transformFile(src, dst, Compress)
}

// DecompressFile decompresses the container at src into dst.
// dst is replaced atomically: on any error it is left untouched.
func DecompressFile(src, dst string) error {
	return transformFile(src, dst, Decompress)
}

func transformFile(src, dst string, fn func([]byte) ([]byte, error)) error {
	in, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("huffman: read input: %w", err)
	}
	out, err := fn(in)
	if err != nil {
		return fmt.Errorf("huffman: %s: %w", src, err)
	}
	if err := renameio.WriteFile(dst, out, outputPerm); err != nil {
		return fmt.Errorf("huffman: write output: %w", err)
	}
	return nil
}
