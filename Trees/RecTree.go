package Trees

// RecTree is a Tree whose Search, Insert, Delete, Dispose and traversals are
// implemented recursively. The call depth grows with the depth of the tree,
// so prefer IterTree when keys may arrive in sorted order. Height, Balanced
// and Corrupt are shared with IterTree.
// The zero value is an empty tree.
type RecTree struct {
	base
}

// NewRecTree returns an empty RecTree.
func NewRecTree() *RecTree {
	return new(RecTree)
}

func (u *RecTree) search(cur *node, k byte) (int, bool) {
	if cur == nil {
		return 0, false
	} else if k < cur.k {
		return u.search(cur.l, k)
	} else if k == cur.k {
		return cur.v, true
	} else {
		return u.search(cur.r, k)
	}
}

// Search [Tree.Search]. Recursive.
// Time: O(D)
func (u *RecTree) Search(k byte) (int, bool) {
	return u.search(u.root, k)
}

func (u *RecTree) insert(link **node, k byte, v int) bool {
	if cur := *link; cur == nil {
		*link = &node{k: k, v: v}
		return true
	} else if k < cur.k {
		return u.insert(&cur.l, k, v)
	} else if k == cur.k {
		cur.v = v
		return false
	} else {
		return u.insert(&cur.r, k, v)
	}
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *RecTree) Insert(k byte, v int) bool {
	if u.insert(&u.root, k, v) {
		u.sz++
		return true
	}
	return false
}

// replaceByRightmost overwrites the key and value of target with those of
// the rightmost node in the subtree at link, then removes that node. Its
// left child, if any, takes its place. *link mustn't be nil.
func (u *RecTree) replaceByRightmost(target *node, link **node) {
	if cur := *link; cur.r != nil {
		u.replaceByRightmost(target, &cur.r)
	} else {
		target.k, target.v = cur.k, cur.v
		*link, cur.l = cur.l, nil
	}
}

func (u *RecTree) delete(link **node, k byte) bool {
	if cur := *link; cur == nil {
		return false
	} else if k < cur.k {
		return u.delete(&cur.l, k)
	} else if k > cur.k {
		return u.delete(&cur.r, k)
	} else {
		if cur.l != nil && cur.r != nil {
			u.replaceByRightmost(cur, &cur.l)
		} else if cur.l == nil {
			*link, cur.r = cur.r, nil
		} else {
			*link, cur.l = cur.l, nil
		}
		return true
	}
}

// Delete [Tree.Delete]. Recursive.
// Time: O(D)
func (u *RecTree) Delete(k byte) bool {
	if u.delete(&u.root, k) {
		u.sz--
		return true
	}
	return false
}

func (u *RecTree) dispose(link **node) {
	if cur := *link; cur != nil {
		u.dispose(&cur.l)
		u.dispose(&cur.r)
		*link = nil
	}
}

// Dispose [Tree.Dispose]. Recursive.
// Time: O(n)
func (u *RecTree) Dispose() {
	u.dispose(&u.root)
	u.sz = 0
}

func (u *RecTree) preOrder(cur *node, it *items) {
	if cur != nil {
		it.add(cur)
		u.preOrder(cur.l, it)
		u.preOrder(cur.r, it)
	}
}

func (u *RecTree) inOrder(cur *node, it *items) {
	if cur != nil {
		u.inOrder(cur.l, it)
		it.add(cur)
		u.inOrder(cur.r, it)
	}
}

func (u *RecTree) postOrder(cur *node, it *items) {
	if cur != nil {
		u.postOrder(cur.l, it)
		u.postOrder(cur.r, it)
		it.add(cur)
	}
}

func (u *RecTree) collect(o Order, root *node, it *items) {
	switch o {
	case PreOrder:
		u.preOrder(root, it)
	case InOrder:
		u.inOrder(root, it)
	case PostOrder:
		u.postOrder(root, it)
	}
}

// PreOrder [Tree.PreOrder]. Recursive.
func (u *RecTree) PreOrder() []Pair {
	return u.traverse(u, PreOrder)
}

// InOrder [Tree.InOrder]. Recursive.
func (u *RecTree) InOrder() []Pair {
	return u.traverse(u, InOrder)
}

// PostOrder [Tree.PostOrder]. Recursive.
func (u *RecTree) PostOrder() []Pair {
	return u.traverse(u, PostOrder)
}

// Each [Tree.Each]. Recursive.
func (u *RecTree) Each(o Order, f func(Pair) bool) {
	u.each(u, o, f)
}

// Rebalance [Tree.Rebalance]. Recursive.
// Time: O(n log n)
func (u *RecTree) Rebalance() {
	u.rebalance(u)
}
