package automaton

type handle int32

const (
	rootHandle handle = 0
	noHandle   handle = -1
)

type node struct {
	children map[byte]handle
	depth    int32
	symbol   byte
	pattern  int32 // -1 unless the prefix is an input pattern
	length   int32
	fail     handle
	dict     handle
}

func newNode(depth int32, symbol byte) node {
	return node{
		depth:   depth,
		symbol:  symbol,
		pattern: -1,
		fail:    noHandle,
		dict:    noHandle,
	}
}

func (n *node) isEnd() bool {
	return n.pattern >= 0
}

func (n *node) child(c byte) (handle, bool) {
	h, ok := n.children[c]
	return h, ok
}
