package Trees

import (
	"github.com/g-m-twostay/go-bstree/Stacks"
	"golang.org/x/exp/constraints"
)

// mid is equivalent to (start+end)/2 for 0<=start<=end but can't overflow.
func mid[S constraints.Integer](start, end S) S {
	return start + (end-start)>>1
}

// absDiff returns |a-b| for unsigned values.
func absDiff[S constraints.Unsigned](a, b S) S {
	if a > b {
		return a - b
	}
	return b - a
}

// rebalance the tree rooted at u.root. The inorder sequence of the old tree
// is copied into a new tree by inserting the middle of every range before
// both of its halves, then the old tree is disposed and replaced.
// Time: O(n log n); Space: O(n)
func (u *base) rebalance(w walker) {
	it := items{make([]*node, 0, u.sz)}
	w.collect(InOrder, u.root, &it)
	var balanced *node
	build(w, &balanced, &it, 0, it.size())
	it.release()
	w.dispose(&u.root)
	u.root = balanced
}

// build inserts it.nodes[start:end] into the tree at link so that the
// inserted nodes form a subtree of minimal height. Recursive, but the depth
// is only log2(end-start).
func build(w walker, link **node, it *items, start, end int) {
	if start >= end {
		return
	}
	m := mid(start, end)
	w.insert(link, it.nodes[m].k, it.nodes[m].v)
	build(w, link, it, start, m)
	build(w, link, it, m+1, end)
}

// measure the subtree at root in postorder with explicit stacks. Returns its
// height and whether the subtree heights of every node differ by at most 1.
// An empty subtree has height 0.
func measure(root *node) (height uint, balanced bool) {
	if root == nil {
		return 0, true
	}
	balanced = true
	toVisit, firstVisit := Stacks.MakeArrayStack[*node](stackCap), Stacks.MakeArrayStack[bool](stackCap)
	hs := Stacks.MakeArrayStack[uint](stackCap) //heights of finished subtrees, right sibling on top.
	leftmostPostOrder(root, toVisit, firstVisit)
	for !toVisit.Empty() {
		n, _ := toVisit.Peek()
		if first, _ := firstVisit.Pop(); first {
			firstVisit.Push(false)
			leftmostPostOrder(n.r, toVisit, firstVisit)
		} else {
			toVisit.Pop()
			var hl, hr uint
			if n.r != nil {
				hr, _ = hs.Pop()
			}
			if n.l != nil {
				hl, _ = hs.Pop()
			}
			if absDiff(hl, hr) > 1 {
				balanced = false
			}
			hs.Push(max(hl, hr) + 1)
		}
	}
	height, _ = hs.Pop()
	return
}
