package Trees

import "github.com/g-m-twostay/go-bstree/Stacks"

// initial capacity of the explicit stacks. They grow as needed.
const stackCap = 16

// IterTree is a Tree implemented without recursion. Search, Insert and
// Delete follow links with a pointer to the link being examined; traversals
// and Dispose simulate the call stack with Stacks.ArrayStack, so the Go call
// depth doesn't grow with the depth of the tree even when it degenerates
// into a list.
// The zero value is an empty tree.
type IterTree struct {
	base
}

// NewIterTree returns an empty IterTree.
func NewIterTree() *IterTree {
	return new(IterTree)
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *IterTree) Search(k byte) (int, bool) {
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return cur.v, true
		} else {
			cur = cur.r
		}
	}
	return 0, false
}

func (u *IterTree) insert(link **node, k byte, v int) bool {
	for *link != nil {
		if cur := *link; k < cur.k {
			link = &cur.l
		} else if k == cur.k {
			cur.v = v
			return false
		} else {
			link = &cur.r
		}
	}
	*link = &node{k: k, v: v}
	return true
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *IterTree) Insert(k byte, v int) bool {
	if u.insert(&u.root, k, v) {
		u.sz++
		return true
	}
	return false
}

// replaceByRightmost overwrites the key and value of target with those of
// the rightmost node in the subtree at link, then removes that node. Its
// left child, if any, takes its place. *link mustn't be nil.
func (u *IterTree) replaceByRightmost(target *node, link **node) {
	for (*link).r != nil {
		link = &(*link).r
	}
	rm := *link
	target.k, target.v = rm.k, rm.v
	*link, rm.l = rm.l, nil
}

// Delete [Tree.Delete]
// A node with two children takes the key and value of its in-order
// predecessor, which is removed instead.
// Time: O(D); Space: O(1)
func (u *IterTree) Delete(k byte) bool {
	for link := &u.root; *link != nil; {
		if cur := *link; k < cur.k {
			link = &cur.l
		} else if k > cur.k {
			link = &cur.r
		} else {
			if cur.l != nil && cur.r != nil {
				u.replaceByRightmost(cur, &cur.l)
			} else if cur.l == nil {
				*link, cur.r = cur.r, nil
			} else {
				*link, cur.l = cur.l, nil
			}
			u.sz--
			return true
		}
	}
	return false
}

func (u *IterTree) dispose(link **node) {
	if *link == nil {
		return
	}
	st := Stacks.MakeArrayStack[*node](stackCap)
	st.Push(*link)
	*link = nil
	for !st.Empty() {
		cur, _ := st.Pop()
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
		cur.l, cur.r = nil, nil
	}
}

// Dispose [Tree.Dispose]
// Every node is unlinked from its children, so references that outlived
// the tree can't reach the rest of it.
// Time: O(n); Space: O(D)
func (u *IterTree) Dispose() {
	u.dispose(&u.root)
	u.sz = 0
}

// leftmostPreOrder walks from n to the leftmost node of its subtree, adding
// every node passed to it and pushing it on toVisit.
func leftmostPreOrder(n *node, toVisit *Stacks.ArrayStack[*node], it *items) {
	for ; n != nil; n = n.l {
		toVisit.Push(n)
		it.add(n)
	}
}

func walkPreOrder(root *node, it *items) {
	toVisit := Stacks.MakeArrayStack[*node](stackCap)
	leftmostPreOrder(root, toVisit, it)
	for !toVisit.Empty() {
		n, _ := toVisit.Pop()
		leftmostPreOrder(n.r, toVisit, it)
	}
}

// leftmostInOrder walks from n to the leftmost node of its subtree, pushing
// every node passed on toVisit.
func leftmostInOrder(n *node, toVisit *Stacks.ArrayStack[*node]) {
	for ; n != nil; n = n.l {
		toVisit.Push(n)
	}
}

func walkInOrder(root *node, it *items) {
	toVisit := Stacks.MakeArrayStack[*node](stackCap)
	leftmostInOrder(root, toVisit)
	for !toVisit.Empty() {
		n, _ := toVisit.Pop()
		it.add(n)
		leftmostInOrder(n.r, toVisit)
	}
}

// leftmostPostOrder walks from n to the leftmost node of its subtree,
// pushing every node passed on toVisit and true on firstVisit.
func leftmostPostOrder(n *node, toVisit *Stacks.ArrayStack[*node], firstVisit *Stacks.ArrayStack[bool]) {
	for ; n != nil; n = n.l {
		toVisit.Push(n)
		firstVisit.Push(true)
	}
}

// walkPostOrder keeps a marker for every node on toVisit. A node seen for
// the first time stays on the stack while its right subtree is walked; it's
// added on the second time.
func walkPostOrder(root *node, it *items) {
	toVisit, firstVisit := Stacks.MakeArrayStack[*node](stackCap), Stacks.MakeArrayStack[bool](stackCap)
	leftmostPostOrder(root, toVisit, firstVisit)
	for !toVisit.Empty() {
		n, _ := toVisit.Peek()
		if first, _ := firstVisit.Pop(); first {
			firstVisit.Push(false)
			leftmostPostOrder(n.r, toVisit, firstVisit)
		} else {
			toVisit.Pop()
			it.add(n)
		}
	}
}

func (u *IterTree) collect(o Order, root *node, it *items) {
	switch o {
	case PreOrder:
		walkPreOrder(root, it)
	case InOrder:
		walkInOrder(root, it)
	case PostOrder:
		walkPostOrder(root, it)
	}
}

// PreOrder [Tree.PreOrder]
// Time: O(n); Space: O(n)
func (u *IterTree) PreOrder() []Pair {
	return u.traverse(u, PreOrder)
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(n)
func (u *IterTree) InOrder() []Pair {
	return u.traverse(u, InOrder)
}

// PostOrder [Tree.PostOrder]
// Time: O(n); Space: O(n)
func (u *IterTree) PostOrder() []Pair {
	return u.traverse(u, PostOrder)
}

// Each [Tree.Each]
func (u *IterTree) Each(o Order, f func(Pair) bool) {
	u.each(u, o, f)
}

// Rebalance [Tree.Rebalance]
// Time: O(n log n); Space: O(n)
func (u *IterTree) Rebalance() {
	u.rebalance(u)
}
