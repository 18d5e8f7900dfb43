package Trees

// A node in the Tree. A node exclusively owns its children; there are no
// parent pointers.
type node struct {
	k    byte
	v    int
	l, r *node
}

// items collects node references in the order a traversal visits them.
// It refers into the tree that filled it, so it must be consumed before
// that tree is disposed.
type items struct {
	nodes []*node
}

func (it *items) add(n *node) {
	it.nodes = append(it.nodes, n)
}

func (it *items) size() int {
	return len(it.nodes)
}

// pairs copies the collected nodes into a new slice that doesn't depend on
// the tree.
func (it *items) pairs() []Pair {
	ps := make([]Pair, len(it.nodes))
	for i, n := range it.nodes {
		ps[i] = Pair{n.k, n.v}
	}
	return ps
}

// release drops the references so the collector can't be used to reach
// nodes of a disposed tree.
func (it *items) release() {
	clear(it.nodes)
	it.nodes = it.nodes[:0]
}
