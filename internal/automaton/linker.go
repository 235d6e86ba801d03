package automaton

// link assigns failure and dictionary links in breadth first order. A node's
// failure target is always shallower than the node, so by the time a node is
// dequeued the whole failure chain above it is final.
func (a *Automaton) link() {
	root := &a.nodes[rootHandle]
	root.fail = rootHandle
	queue := make([]handle, 0, len(a.nodes))
	for _, h := range root.children {
		a.nodes[h].fail = rootHandle
		queue = append(queue, h)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for c, ch := range a.nodes[cur].children {
			queue = append(queue, ch)
			child := &a.nodes[ch]
			child.fail = a.failTarget(a.nodes[cur].fail, c)
			f := &a.nodes[child.fail]
			if f.isEnd() {
				child.dict = child.fail
			} else {
				child.dict = f.dict
			}
		}
	}
}

func (a *Automaton) failTarget(f handle, c byte) handle {
	for {
		if next, ok := a.nodes[f].child(c); ok {
			return next
		}
		if f == rootHandle {
			return rootHandle
		}
		f = a.nodes[f].fail
	}
}
