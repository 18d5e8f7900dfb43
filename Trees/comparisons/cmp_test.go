package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bstree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/emirpasic/gods, https://github.com/google/btree
// and https://github.com/petar/GoLLRB. These are self balancing, so the trees here
// are checked to hold the same content and, after Rebalance, to be no taller.
const (
	opCount = 1 << 13
	degree  = 4
)

type op struct {
	del bool
	k   byte
	v   int
}

func makeOps(seed int64) []op {
	rg := rand.New(rand.NewSource(seed))
	ops := make([]op, opCount)
	for i := range ops {
		ops[i] = op{rg.Intn(3) == 0, byte(rg.Intn(256)), rg.Int()}
	}
	return ops
}

// sorted inserts, which degenerate an unbalanced tree into a list.
func makeSortedOps() []op {
	ops := make([]op, 256)
	for i := range ops {
		ops[i] = op{false, byte(i), i}
	}
	return ops
}

func pairLess(a, b Trees.Pair) bool {
	return a.Key < b.Key
}

type llrbPair Trees.Pair

func (a llrbPair) Less(than llrb.Item) bool {
	return a.Key < than.(llrbPair).Key
}

var variants = []struct {
	name string
	make func() Trees.Tree
}{
	{"IterTree", func() Trees.Tree { return Trees.NewIterTree() }},
	{"RecTree", func() Trees.Tree { return Trees.NewRecTree() }},
}

func apply(tree Trees.Tree, ops []op) {
	for _, o := range ops {
		if o.del {
			tree.Delete(o.k)
		} else {
			tree.Insert(o.k, o.v)
		}
	}
}

func TestTree_VsRedBlackTree(t *testing.T) {
	for _, vr := range variants {
		for seed, ops := range [][]op{makeOps(1), makeSortedOps()} {
			tree, R := vr.make(), redblacktree.NewWithIntComparator()
			for _, o := range ops {
				if o.del {
					_, in := R.Get(int(o.k))
					if tree.Delete(o.k) != in {
						t.Errorf("%s delete of %d returned %v", vr.name, o.k, !in)
					}
					R.Remove(int(o.k))
				} else {
					tree.Insert(o.k, o.v)
					R.Put(int(o.k), o.v)
				}
			}
			ps := tree.InOrder()
			if len(ps) != R.Size() {
				t.Fatalf("%s %d: tree size is %d, want %d", vr.name, seed, len(ps), R.Size())
			}
			it := R.Iterator()
			for i := 0; it.Next(); i++ {
				if want := (Trees.Pair{Key: byte(it.Key().(int)), Value: it.Value().(int)}); ps[i] != want {
					t.Errorf("%s %d: pair %d is %v, want %v", vr.name, seed, i, ps[i], want)
				}
			}
		}
	}
}

func TestTree_VsAVLTree(t *testing.T) {
	for _, vr := range variants {
		tree, R := vr.make(), avltree.NewWithIntComparator()
		for _, o := range makeOps(2) {
			if o.del {
				tree.Delete(o.k)
				R.Remove(int(o.k))
			} else {
				tree.Insert(o.k, o.v)
				R.Put(int(o.k), o.v)
			}
		}
		for k := 0; k < 256; k++ {
			x, xok := tree.Search(byte(k))
			y, yok := R.Get(k)
			if xok != yok || (yok && x != y.(int)) {
				t.Errorf("%s key %d: got (%v,%v), want (%v,%v)", vr.name, k, x, xok, y, yok)
			}
		}
	}
}

func TestTree_VsBTree(t *testing.T) {
	for _, vr := range variants {
		for seed, ops := range [][]op{makeOps(3), makeSortedOps()} {
			tree, R := vr.make(), btree.NewG[Trees.Pair](degree, pairLess)
			for _, o := range ops {
				if o.del {
					_, in := R.Delete(Trees.Pair{Key: o.k})
					if tree.Delete(o.k) != in {
						t.Errorf("%s delete of %d returned %v", vr.name, o.k, !in)
					}
				} else {
					_, replaced := R.ReplaceOrInsert(Trees.Pair{Key: o.k, Value: o.v})
					if tree.Insert(o.k, o.v) == replaced {
						t.Errorf("%s insert of %d returned %v", vr.name, o.k, replaced)
					}
				}
			}
			want := make([]Trees.Pair, 0, R.Len())
			R.Ascend(func(p Trees.Pair) bool {
				want = append(want, p)
				return true
			})
			tree.Rebalance()
			got := tree.InOrder()
			if len(got) != len(want) {
				t.Fatalf("%s %d: tree size is %d, want %d", vr.name, seed, len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("%s %d: pair %d is %v, want %v", vr.name, seed, i, got[i], want[i])
				}
			}
		}
	}
}

func TestTree_VsLLRB(t *testing.T) {
	for _, vr := range variants {
		tree, R := vr.make(), llrb.New()
		for _, o := range makeSortedOps() {
			tree.Insert(o.k, o.v)
			R.ReplaceOrInsert(llrbPair{o.k, o.v})
		}
		for _, o := range makeOps(4) {
			if o.del {
				tree.Delete(o.k)
				R.Delete(llrbPair{Key: o.k})
			} else {
				tree.Insert(o.k, o.v)
				R.ReplaceOrInsert(llrbPair{o.k, o.v})
			}
		}
		if tree.Size() != uint(R.Len()) {
			t.Errorf("%s tree size is %d, want %d", vr.name, tree.Size(), R.Len())
		}
		tree.Rebalance()
		ps := tree.InOrder()
		i, depth := 0, 0
		R.AscendGreaterOrEqual(R.Min(), func(it llrb.Item) bool {
			if want := Trees.Pair(it.(llrbPair)); ps[i] != want {
				t.Errorf("%s pair %d is %v, want %v", vr.name, i, ps[i], want)
			}
			_, d := R.GetHeight(it)
			i, depth = i+1, max(depth, d)
			return true
		})
		// a tree of minimal height is never taller than a left leaning red black tree.
		if tree.Height() > uint(depth)+1 {
			t.Errorf("%s rebalanced height is %d, llrb height is %d", vr.name, tree.Height(), depth+1)
		}
	}
}

func BenchmarkIterTree(b *testing.B) {
	ops := makeOps(5)
	b.ResetTimer()
	for rangeN, rangeI := b.N, 0; rangeI < rangeN; rangeI++ {
		tree := Trees.NewIterTree()
		apply(tree, ops)
		tree.Rebalance()
	}
}

func BenchmarkRecTree(b *testing.B) {
	ops := makeOps(5)
	b.ResetTimer()
	for rangeN, rangeI := b.N, 0; rangeI < rangeN; rangeI++ {
		tree := Trees.NewRecTree()
		apply(tree, ops)
		tree.Rebalance()
	}
}

func BenchmarkRedBlackTree(b *testing.B) {
	ops := makeOps(5)
	b.ResetTimer()
	for rangeN, rangeI := b.N, 0; rangeI < rangeN; rangeI++ {
		R := redblacktree.NewWithIntComparator()
		for _, o := range ops {
			if o.del {
				R.Remove(int(o.k))
			} else {
				R.Put(int(o.k), o.v)
			}
		}
	}
}

func BenchmarkBTree(b *testing.B) {
	ops := makeOps(5)
	b.ResetTimer()
	for rangeN, rangeI := b.N, 0; rangeI < rangeN; rangeI++ {
		R := btree.NewG[Trees.Pair](degree, pairLess)
		for _, o := range ops {
			if o.del {
				R.Delete(Trees.Pair{Key: o.k})
			} else {
				R.ReplaceOrInsert(Trees.Pair{Key: o.k, Value: o.v})
			}
		}
	}
}

func BenchmarkLLRB(b *testing.B) {
	ops := makeOps(5)
	b.ResetTimer()
	for rangeN, rangeI := b.N, 0; rangeI < rangeN; rangeI++ {
		R := llrb.New()
		for _, o := range ops {
			if o.del {
				R.Delete(llrbPair{Key: o.k})
			} else {
				R.ReplaceOrInsert(llrbPair{o.k, o.v})
			}
		}
	}
}
