package automaton

import (
	"iter"
	"slices"
)

// Link describes the failure and dictionary targets of a trie node. Nodes are
// identified by depth and the symbol on their incoming edge.
type Link struct {
	Depth      int
	Symbol     byte
	FailDepth  int
	FailSymbol byte
	HasDict    bool
	DictDepth  int
	DictSymbol byte
}

// Links walks the non-root nodes breadth first, children in symbol order.
func (a *Automaton) Links() iter.Seq[Link] {
	return func(yield func(Link) bool) {
		queue := []handle{rootHandle}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, c := range sortedSymbols(a.nodes[cur].children) {
				ch := a.nodes[cur].children[c]
				queue = append(queue, ch)
				if !yield(a.describe(ch)) {
					return
				}
			}
		}
	}
}

func (a *Automaton) describe(h handle) Link {
	n := &a.nodes[h]
	f := &a.nodes[n.fail]
	l := Link{
		Depth:      int(n.depth),
		Symbol:     n.symbol,
		FailDepth:  int(f.depth),
		FailSymbol: f.symbol,
	}
	if n.dict != noHandle {
		d := &a.nodes[n.dict]
		l.HasDict = true
		l.DictDepth = int(d.depth)
		l.DictSymbol = d.symbol
	}
	return l
}

// Patterns yields the distinct patterns in lexicographic order.
func (a *Automaton) Patterns() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		a.walkPatterns(rootHandle, yield)
	}
}

func (a *Automaton) walkPatterns(h handle, yield func([]byte) bool) bool {
	n := &a.nodes[h]
	if n.isEnd() && !yield(a.patterns[n.pattern]) {
		return false
	}
	for _, c := range sortedSymbols(n.children) {
		if !a.walkPatterns(n.children[c], yield) {
			return false
		}
	}
	return true
}

func sortedSymbols(children map[byte]handle) []byte {
	if len(children) == 0 {
		return nil
	}
	syms := make([]byte, 0, len(children))
	for c := range children {
		syms = append(syms, c)
	}
	slices.Sort(syms)
	return syms
}
