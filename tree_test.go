package huffman

import (
	"errors"
	"testing"
)

func countersOf(s string) *counters {
	var c counters
	c.count([]byte(s))
	return &c
}

func TestBuildTreeTwoSymbols(t *testing.T) {
	tr := buildTree(countersOf("aaab"))
	root := tr.nodes[tr.root]
	if root.weight != 4 {
		t.Fatalf("root weight: expected 4, got %d", root.weight)
	}
	left, right := tr.nodes[root.left], tr.nodes[root.right]
	if !left.isLeaf() || left.sym != 'b' || left.weight != 1 {
		t.Fatalf("left child: expected leaf b/1, got sym=%q weight=%d", left.sym, left.weight)
	}
	if !right.isLeaf() || right.sym != 'a' || right.weight != 3 {
		t.Fatalf("right child: expected leaf a/3, got sym=%q weight=%d", right.sym, right.weight)
	}
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	tr := buildTree(countersOf("zzzz"))
	if len(tr.nodes) != 1 {
		t.Fatalf("expected a lone leaf, got %d nodes", len(tr.nodes))
	}
	root := tr.nodes[tr.root]
	if !root.isLeaf() || root.sym != 'z' || root.weight != 4 {
		t.Fatalf("unexpected root %+v", root)
	}
}

func TestBuildTreeTieBreak(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[byte]string
	}{
		// equal leaves pair up in symbol order
		{"uniform", "abcd", map[byte]string{'a': "00", 'b': "01", 'c': "10", 'd': "11"}},
		// a leaf created before a merged node of equal weight pops first
		{"leaf_before_merge", "abcc", map[byte]string{'c': "0", 'a': "10", 'b': "11"}},
		// symbol order, not input order, decides between equal leaves
		{"input_order_ignored", "dcba", map[byte]string{'a': "00", 'b': "01", 'c': "10", 'd': "11"}},
		{"skewed", "aaaabbc", map[byte]string{'a': "1", 'c': "00", 'b': "01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := buildTree(countersOf(tt.input)).generateCodes()
			if err != nil {
				t.Fatalf("generateCodes: %v", err)
			}
			if tbl.Len() != len(tt.want) {
				t.Fatalf("expected %d codes, got %d", len(tt.want), tbl.Len())
			}
			for sym, want := range tt.want {
				code, ok := tbl.Code(sym)
				if !ok || code.String() != want {
					t.Fatalf("symbol %q: expected %s, got %s (present=%v)", sym, want, code, ok)
				}
			}
		})
	}
}

func TestBuildTreeWeightsSum(t *testing.T) {
	c := countersOf("the quick brown fox jumps over the lazy dog")
	tr := buildTree(c)
	if got, want := len(tr.nodes), 2*c.distinct-1; got != want {
		t.Fatalf("expected %d nodes, got %d", want, got)
	}
	for i, n := range tr.nodes {
		if n.isLeaf() {
			continue
		}
		if n.left == noChild || n.right == noChild {
			t.Fatalf("node %d: internal node with one child", i)
		}
		if n.weight != tr.nodes[n.left].weight+tr.nodes[n.right].weight {
			t.Fatalf("node %d: weight %d is not the sum of its children", i, n.weight)
		}
	}
	if tr.nodes[tr.root].weight != c.total() {
		t.Fatalf("root weight %d != input length %d", tr.nodes[tr.root].weight, c.total())
	}
}

func TestDecodeTreeInsert(t *testing.T) {
	tr := newDecodeTree()
	if err := tr.insert('a', codeOf("0")); err != nil {
		t.Fatalf("insert a: %v", err)
	}
	if err := tr.insert('b', codeOf("10")); err != nil {
		t.Fatalf("insert b: %v", err)
	}

	tests := []struct {
		name string
		code string
	}{
		{"extends_leaf", "01"},
		{"same_path", "10"},
		{"prefix_of_existing", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tr.insert('c', codeOf(tt.code))
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("expected ErrFormat, got %v", err)
			}
		})
	}

	if err := tr.insert('c', codeOf("11")); err != nil {
		t.Fatalf("insert c: %v", err)
	}
}
