package huffman

import (
	"errors"
	"os"
	"testing"

	"github.com/klauspost/compress/huff0"
)

// BenchmarkCorpusCompression compares this codec against huff0, a
// length-limited Huffman coder, on the telemetry corpus.
func BenchmarkCorpusCompression(b *testing.B) {
	data, err := os.ReadFile("testdata/telemetry.txt")
	if err != nil {
		b.Skipf("missing corpus: %v", err)
	}

	b.Run("compress", func(b *testing.B) {
		b.ReportAllocs()
		comp, err := Compress(data)
		if err != nil {
			b.Fatalf("compress: %v", err)
		}
		b.SetBytes(int64(len(data)))
		b.ResetTimer()
		for b.Loop() {
			_, _ = Compress(data)
		}
		b.ReportMetric(float64(len(comp))/float64(len(data)), "ratio")
	})

	comp, err := Compress(data)
	if err != nil {
		b.Fatalf("compress: %v", err)
	}

	b.Run("decompress", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		b.ResetTimer()
		for b.Loop() {
			if _, err := Decompress(comp); err != nil {
				b.Fatalf("decompress: %v", err)
			}
		}
	})

	b.Run("huff0", func(b *testing.B) {
		b.ReportAllocs()
		var s huff0.Scratch
		out, _, err := huff0.Compress1X(data, &s)
		if errors.Is(err, huff0.ErrIncompressible) || errors.Is(err, huff0.ErrUseRLE) {
			b.Skipf("huff0: %v", err)
		}
		if err != nil {
			b.Fatalf("huff0: %v", err)
		}
		ratio := float64(len(out)) / float64(len(data))
		b.SetBytes(int64(len(data)))
		b.ResetTimer()
		for b.Loop() {
			_, _, _ = huff0.Compress1X(data, &s)
		}
		b.ReportMetric(ratio, "ratio")
	})
}

func BenchmarkCompressSmall(b *testing.B) {
	record := []byte(`2024-03-11T00:00:00.000Z INFO router {"device":"dev-125","temp_c":26.46}`)
	b.ReportAllocs()
	b.SetBytes(int64(len(record)))
	for b.Loop() {
		_, _ = Compress(record)
	}
}
