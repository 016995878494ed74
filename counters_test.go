package huffman

import "testing"

func TestCountersBasic(t *testing.T) {
	var c counters

	c.count([]byte("abracadabra"))
	if c.distinct != 5 {
		t.Fatalf("distinct: expected 5, got %d", c.distinct)
	}
	if c.single['a'] != 5 || c.single['b'] != 2 || c.single['r'] != 2 {
		t.Fatalf("unexpected counts a=%d b=%d r=%d", c.single['a'], c.single['b'], c.single['r'])
	}
	if c.total() != 11 {
		t.Fatalf("total: expected 11, got %d", c.total())
	}

	// next skips absent symbols and walks in ascending order
	sym := uint32('c')
	if n := c.next(&sym); n != 1 || sym != 'c' {
		t.Fatalf("next at present symbol: sym=%d count=%d", sym, n)
	}
	sym = 'e'
	if n := c.next(&sym); n != 2 || sym != 'r' {
		t.Fatalf("next skipping gap: sym=%d count=%d", sym, n)
	}
	sym = 's'
	if n := c.next(&sym); n != 0 || sym != maxSymbols {
		t.Fatalf("next past last: sym=%d count=%d", sym, n)
	}

	// counting is additive across calls
	c.count([]byte{0, 0, 255})
	if c.distinct != 7 || c.single[0] != 2 || c.single[255] != 1 {
		t.Fatalf("additive count failed: distinct=%d", c.distinct)
	}
}

func TestFrequencies(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  map[byte]uint64
	}{
		{"empty", nil, map[byte]uint64{}},
		{"single", []byte("x"), map[byte]uint64{'x': 1}},
		{"aaab", []byte("aaab"), map[byte]uint64{'a': 3, 'b': 1}},
		{"zero_and_max", []byte{0, 255, 0}, map[byte]uint64{0: 2, 255: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Frequencies(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d entries, got %d (%v)", len(tt.want), len(got), got)
			}
			for sym, n := range tt.want {
				if got[sym] != n {
					t.Fatalf("symbol %d: expected %d, got %d", sym, n, got[sym])
				}
			}
		})
	}
}
