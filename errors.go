package huffman

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrFormat indicates a malformed or truncated container or dictionary.
	ErrFormat = errors.New("huffman: malformed container")

	// ErrBadMagic indicates the input does not start with the container magic.
	// It wraps ErrFormat.
	ErrBadMagic = fmt.Errorf("%w: bad magic", ErrFormat)

	// ErrBadVersion indicates the container version is not supported.
	// It wraps ErrFormat.
	ErrBadVersion = fmt.Errorf("%w: unsupported version", ErrFormat)

	// ErrUnknownSymbol indicates Encode was given a byte the Table has no code for.
	ErrUnknownSymbol = errors.New("huffman: symbol not in table")

	// ErrInconsistent indicates a Container whose dictionary and symbol count
	// disagree: symbols without a dictionary, or a dictionary without symbols.
	ErrInconsistent = errors.New("huffman: dictionary and symbol count disagree")

	// ErrOverflow indicates a generated code is longer than the container
	// format can represent.
	ErrOverflow = errors.New("huffman: code length exceeds format limit")
)

// formatError maps short reads to ErrFormat and passes other errors through
// unchanged.
func formatError(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated %s", ErrFormat, what)
	}
	return err
}
