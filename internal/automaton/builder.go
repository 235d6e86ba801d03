package automaton

import (
	"errors"
	"fmt"
)

var (
	ErrNoPatterns   = errors.New("automaton: empty pattern set")
	ErrEmptyPattern = errors.New("automaton: empty pattern")
)

// Automaton is an immutable Aho-Corasick automaton over bytes. It is safe for
// concurrent use by multiple goroutines once New returns.
type Automaton struct {
	nodes    []node
	patterns [][]byte
}

// New builds and links an automaton from patterns. Duplicated patterns are
// kept once; the id of a pattern is the index of its first occurrence among
// the distinct patterns.
func New(patterns [][]byte) (*Automaton, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	a := &Automaton{
		nodes: make([]node, 1, len(patterns)*4+1),
	}
	a.nodes[rootHandle] = newNode(0, 0)
	for idx, p := range patterns {
		if len(p) == 0 {
			return nil, fmt.Errorf("pattern index:%d, err:%w", idx, ErrEmptyPattern)
		}
		a.insert(p)
	}
	a.link()
	return a, nil
}

// NewFromStrings is New for string patterns.
func NewFromStrings(patterns ...string) (*Automaton, error) {
	bs := make([][]byte, 0, len(patterns))
	for _, p := range patterns {
		bs = append(bs, []byte(p))
	}
	return New(bs)
}

func (a *Automaton) insert(pattern []byte) {
	cur := rootHandle
	for _, c := range pattern {
		next, ok := a.nodes[cur].child(c)
		if !ok {
			next = a.addChild(cur, c)
		}
		cur = next
	}
	n := &a.nodes[cur]
	if n.isEnd() {
		return
	}
	n.pattern = int32(len(a.patterns))
	n.length = int32(len(pattern))
	a.patterns = append(a.patterns, append([]byte(nil), pattern...))
}

func (a *Automaton) addChild(parent handle, c byte) handle {
	h := handle(len(a.nodes))
	a.nodes = append(a.nodes, newNode(a.nodes[parent].depth+1, c))
	p := &a.nodes[parent]
	if p.children == nil {
		p.children = make(map[byte]handle)
	}
	p.children[c] = h
	return h
}

// NumPatterns returns the number of distinct patterns.
func (a *Automaton) NumPatterns() int {
	return len(a.patterns)
}

// NumNodes returns the number of trie nodes including the root.
func (a *Automaton) NumNodes() int {
	return len(a.nodes)
}

// Pattern returns the pattern with the given id. The returned slice must not
// be modified.
func (a *Automaton) Pattern(id int) []byte {
	return a.patterns[id]
}
