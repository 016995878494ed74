// Command huffpack compresses and decompresses files with static Huffman coding.
//
// Usage:
//
//	huffpack [-d] [-dump] [-o output] input
//
// Without -d the input is compressed to input.huf; with -d a .huf container is
// decompressed to the input name without the extension.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/axiomhq/huffman"
)

const ext = ".huf"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: huffpack [-d] [-dump] [-o output] input\n")
	flag.PrintDefaults()
}

func main() {
	var (
		decompress = flag.Bool("d", false, "decompress instead of compress")
		dump       = flag.Bool("dump", false, "print the frequency table and dictionary to stderr")
		output     = flag.String("o", "", "output path (default derived from input)")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	log.SetFlags(0)
	log.SetPrefix("huffpack: ")

	input := flag.Arg(0)
	dst := *output
	if dst == "" {
		dst = outputName(input, *decompress)
	}

	if *dump {
		if err := dumpTables(os.Stderr, input, *decompress); err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
	}

	op, fn := "compressed", huffman.CompressFile
	if *decompress {
		op, fn = "decompressed", huffman.DecompressFile
	}
	if err := fn(input, dst); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("[INFO] %s %s -> %s", op, input, dst)
}

func outputName(input string, decompress bool) string {
	if !decompress {
		return input + ext
	}
	if name, ok := strings.CutSuffix(input, ext); ok && name != "" {
		return name
	}
	return input + ".out"
}

// dumpTables prints the frequency table of the original bytes and the
// dictionary used to encode them. With decompress the dictionary is the one
// stored in the container.
func dumpTables(w io.Writer, input string, decompress bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	var tbl *huffman.Table
	if decompress {
		var c huffman.Container
		if err := c.UnmarshalBinary(data); err != nil {
			return err
		}
		if data, err = c.Table.Decode(c.Payload, c.Count); err != nil {
			return err
		}
		tbl = c.Table
	} else if tbl, err = huffman.Train(data); err != nil {
		return err
	}
	freqs := huffman.Frequencies(data)
	fmt.Fprintf(w, "frequencies: %d symbols\n", len(freqs))
	for sym := range 256 {
		if n, ok := freqs[byte(sym)]; ok {
			fmt.Fprintf(w, "%3d %-6q %d\n", sym, byte(sym), n)
		}
	}
	fmt.Fprint(w, tbl)
	return nil
}
