package automaton

// trieOnly restarts from the root at every text offset and follows trie edges
// only. It never touches failure or dictionary links, which makes it a useful
// reference for them.
func (a *Automaton) trieOnly(text []byte) []Match {
	var rs []Match
	for i := range text {
		cur := rootHandle
		for j := i; j < len(text); j++ {
			next, ok := a.nodes[cur].child(text[j])
			if !ok {
				break
			}
			cur = next
			if n := &a.nodes[cur]; n.isEnd() {
				rs = append(rs, Match{Pattern: int(n.pattern), Start: i, End: j + 1})
			}
		}
	}
	return rs
}
