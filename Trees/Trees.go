package Trees

// Tree is a binary search tree keyed by single characters and holding int
// values. Keys are unique: for every node, all keys in its left subtree are
// smaller and all keys in its right subtree are larger.
// The zero value of every implementation is an empty tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree interface {
	//Init resets the tree to the empty state, dropping every node it owns.
	Init()
	//Search returns the value stored under k.
	Search(k byte) (int, bool)
	//Insert v under k. If k is already in the Tree its value is
	//overwritten and false is returned; true means a new node was created.
	Insert(k byte, v int) bool
	//Delete the node with key k. Returns false when k isn't in the Tree.
	Delete(k byte) bool
	//Dispose of every node. The tree is empty afterward.
	Dispose()
	//PreOrder returns the pairs in node, left, right order.
	PreOrder() []Pair
	//InOrder returns the pairs in left, node, right order, which is
	//ascending key order.
	InOrder() []Pair
	//PostOrder returns the pairs in left, right, node order.
	PostOrder() []Pair
	//Each calls f for every pair in the given order until f returns false.
	//The tree must not be modified by f.
	Each(o Order, f func(Pair) bool)
	//Rebalance replaces the tree with a tree of minimal height holding the
	//same pairs.
	Rebalance()
	//Size of the tree.
	Size() uint
	//Height of the tree. The empty tree has height 0.
	Height() uint
	//Balanced reports whether the heights of the two subtrees of every node
	//differ by at most 1.
	Balanced() bool
	//Corrupt returns whether the keys violate the ordering of the Tree or
	//the node count disagrees with Size.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var (
	_ Tree = (*IterTree)(nil)
	_ Tree = (*RecTree)(nil)
)

// Pair is a key and its value, copied out of a Tree.
type Pair struct {
	Key   byte
	Value int
}

// Order of a traversal.
type Order byte

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	}
	return "unknown"
}
