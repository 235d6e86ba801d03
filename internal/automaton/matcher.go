package automaton

import "iter"

// Match is one occurrence of a pattern in the scanned text, text[Start:End].
type Match struct {
	Pattern int
	Start   int
	End     int
}

func (m Match) Len() int {
	return m.End - m.Start
}

// Matches yields every occurrence in order of increasing end offset. Matches
// sharing an end offset come longest first.
func (a *Automaton) Matches(text []byte) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		cur := rootHandle
		for i, c := range text {
			cur = a.step(cur, c)
			n := &a.nodes[cur]
			if n.isEnd() && !yield(matchAt(n, i)) {
				return
			}
			for d := n.dict; d != noHandle; d = a.nodes[d].dict {
				if !yield(matchAt(&a.nodes[d], i)) {
					return
				}
			}
		}
	}
}

func (a *Automaton) step(cur handle, c byte) handle {
	for {
		if next, ok := a.nodes[cur].child(c); ok {
			return next
		}
		if cur == rootHandle {
			return rootHandle
		}
		cur = a.nodes[cur].fail
	}
}

func matchAt(n *node, i int) Match {
	return Match{
		Pattern: int(n.pattern),
		Start:   i - int(n.length) + 1,
		End:     i + 1,
	}
}

// FindAll returns every occurrence of every pattern in text.
func (a *Automaton) FindAll(text []byte) []Match {
	var rs []Match
	for m := range a.Matches(text) {
		rs = append(rs, m)
	}
	return rs
}

// Count returns the number of occurrences without materialising them.
func (a *Automaton) Count(text []byte) int {
	cnt := 0
	cur := rootHandle
	for _, c := range text {
		cur = a.step(cur, c)
		n := &a.nodes[cur]
		if n.isEnd() {
			cnt++
		}
		for d := n.dict; d != noHandle; d = a.nodes[d].dict {
			cnt++
		}
	}
	return cnt
}
