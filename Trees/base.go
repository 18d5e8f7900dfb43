package Trees

// walker is implemented by each Tree variant. It supplies the operations
// that the shared parts in base are built from.
type walker interface {
	//collect appends the nodes of the subtree at root to it in the order o.
	collect(o Order, root *node, it *items)
	//insert k,v into the subtree at link. Returns true if a node was created.
	insert(link **node, k byte, v int) bool
	//dispose of the subtree at link, leaving *link nil.
	dispose(link **node)
}

// base is the shared parts of IterTree and RecTree.
// The zero value is an empty tree.
type base struct {
	root *node
	sz   uint
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base) Size() uint {
	return u.sz
}

// Init [Tree.Init]
// The nodes are dropped without being visited.
// Time: O(1); Space: O(1)
func (u *base) Init() {
	u.root, u.sz = nil, 0
}

func (u *base) traverse(w walker, o Order) []Pair {
	it := items{make([]*node, 0, u.sz)}
	w.collect(o, u.root, &it)
	return it.pairs()
}

func (u *base) each(w walker, o Order, f func(Pair) bool) {
	it := items{make([]*node, 0, u.sz)}
	w.collect(o, u.root, &it)
	for _, n := range it.nodes {
		if !f(Pair{n.k, n.v}) {
			break
		}
	}
}

// Height [Tree.Height]
// Time: O(n); Space: O(D)
func (u *base) Height() uint {
	h, _ := measure(u.root)
	return h
}

// Balanced [Tree.Balanced]
// Time: O(n); Space: O(D)
func (u *base) Balanced() bool {
	_, b := measure(u.root)
	return b
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(n)
func (u *base) Corrupt() bool {
	var it items
	walkInOrder(u.root, &it)
	for i := 1; i < it.size(); i++ {
		if it.nodes[i-1].k >= it.nodes[i].k {
			return true
		}
	}
	return uint(it.size()) != u.sz
}

func (u *base) _Print(c *node, d uint) {
	if c == nil {
		return
	} else {
		println("key", string(rune(c.k)), "value", c.v, "depth", d)
		u._Print(c.l, d+1)
		u._Print(c.r, d+1)
	}
}

// Print every node with its depth in preorder. Recursive.
func (u *base) Print() {
	u._Print(u.root, 0)
}
