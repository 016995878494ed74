package huffman

import (
	"container/heap"
	"fmt"
)

const noChild = -1

// node is an arena entry of a Huffman tree. Leaves have no children and carry
// sym; internal nodes carry the summed weight of their leaves.
type node struct {
	weight      uint64
	left, right int32 // arena indices, noChild if absent
	sym         byte
}

func (n *node) isLeaf() bool { return n.left == noChild && n.right == noChild }

// tree is a Huffman tree stored as an arena of nodes addressed by index.
// Children are referenced by index only, so the structure is acyclic and no
// subtree is shared.
type tree struct {
	nodes []node
	root  int32
}

func (t *tree) add(n node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// nodeHeap is a min-heap of arena indices ordered by weight, breaking ties by
// arena index. Leaves are added in ascending symbol order and merged nodes are
// appended after them, so equal weights pop in creation order.
type nodeHeap struct {
	idx   []int32
	nodes []node
}

// Len implements heap.Interface and returns the number of elements.
func (h *nodeHeap) Len() int { return len(h.idx) }

// Less implements heap.Interface ordering by ascending weight, then by
// ascending arena index.
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.idx[i], h.idx[j]
	if wa, wb := h.nodes[a].weight, h.nodes[b].weight; wa != wb {
		return wa < wb
	}
	return a < b
}

// Swap implements heap.Interface swap.
func (h *nodeHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

// Push implements heap.Interface push.
func (h *nodeHeap) Push(x any) { h.idx = append(h.idx, x.(int32)) }

// Pop implements heap.Interface pop.
func (h *nodeHeap) Pop() any {
	old := h.idx
	n := len(old)
	x := old[n-1]
	h.idx = old[0 : n-1]
	return x
}

// buildTree merges the present symbols of c into a Huffman tree. The first
// node popped becomes the left child, the second the right child. A single
// present symbol yields a tree whose root is that leaf.
//
// c must contain at least one symbol.
func buildTree(c *counters) *tree {
	t := &tree{nodes: make([]node, 0, 2*c.distinct-1)}
	for sym := uint32(0); sym < maxSymbols; sym++ {
		n := c.next(&sym)
		if n == 0 {
			break
		}
		t.add(node{weight: n, left: noChild, right: noChild, sym: byte(sym)})
	}

	h := &nodeHeap{idx: make([]int32, len(t.nodes))}
	for i := range h.idx {
		h.idx[i] = int32(i)
	}
	h.nodes = t.nodes
	heap.Init(h)

	for h.Len() > 1 {
		left := heap.Pop(h).(int32)
		right := heap.Pop(h).(int32)
		merged := t.add(node{
			weight: t.nodes[left].weight + t.nodes[right].weight,
			left:   left,
			right:  right,
		})
		// append may have reallocated the arena
		h.nodes = t.nodes
		heap.Push(h, merged)
	}
	t.root = heap.Pop(h).(int32)
	return t
}

// newDecodeTree returns a tree holding only an empty root, ready for insert.
func newDecodeTree() *tree {
	t := &tree{nodes: make([]node, 0, 2*maxSymbols)}
	t.root = t.add(node{left: noChild, right: noChild})
	return t
}

// insert walks code from the root, creating internal nodes as needed, and
// places a leaf for sym at the end of the path. Only placed leaves carry a
// non-zero weight in a decode tree. It fails if the path crosses a placed leaf
// or ends on a node that already exists, which is what a dictionary that is
// not prefix-free looks like.
func (t *tree) insert(sym byte, c Code) error {
	cur := t.root
	for i := 0; i < c.Len(); i++ {
		if t.nodes[cur].weight != 0 {
			return fmt.Errorf("%w: code for symbol %d extends the code of symbol %d", ErrFormat, sym, t.nodes[cur].sym)
		}
		next := t.nodes[cur].left
		if c.Bit(i) {
			next = t.nodes[cur].right
		}
		if next == noChild {
			next = t.add(node{left: noChild, right: noChild})
			if c.Bit(i) {
				t.nodes[cur].right = next
			} else {
				t.nodes[cur].left = next
			}
		}
		cur = next
	}
	n := &t.nodes[cur]
	if !n.isLeaf() || n.weight != 0 {
		return fmt.Errorf("%w: code for symbol %d collides with another code", ErrFormat, sym)
	}
	n.weight = 1
	n.sym = sym
	return nil
}
