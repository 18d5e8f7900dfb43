// Package ChainTable implements a hash table with separately chained
// buckets. The number of buckets is fixed when the table is made and the
// table never rehashes. New items are linked at the head of their bucket.
// Keys are compared by content. It isn't safe for concurrent use.
package ChainTable

import (
	"fmt"

	"github.com/g-m-twostay/go-bstree/Maps"
)

var _ Maps.Table[float32] = (*ChainTable)(nil)

// ChainTable maps string keys to float32 values.
type ChainTable struct {
	buckets []*Item
	hash    HashFunc
	size    uint
}

// InvalidSizeError is the panic value of New when asked for 0 buckets.
type InvalidSizeError struct {
	Size uint
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("ChainTable needs at least 1 bucket, got %d.", e.Size)
}

// New returns an empty table with size buckets that places keys with hash.
// SumHash is used when hash is nil. Panics with *InvalidSizeError if size
// is 0.
func New(size uint, hash HashFunc) *ChainTable {
	if size == 0 {
		panic(&InvalidSizeError{size})
	}
	if hash == nil {
		hash = SumHash
	}
	return &ChainTable{make([]*Item, size), hash, 0}
}

func (u *ChainTable) index(k string) uint {
	return u.hash(k) % uint(len(u.buckets))
}

// Size is the number of items in the table.
func (u *ChainTable) Size() uint {
	return u.size
}

// Buckets is the number of buckets the table was made with.
func (u *ChainTable) Buckets() uint {
	return uint(len(u.buckets))
}

// Search returns the item holding k, or nil.
// Time: O(chain length)
func (u *ChainTable) Search(k string) *Item {
	for cur := u.buckets[u.index(k)]; cur != nil; cur = cur.next {
		if cur.Key == k {
			return cur
		}
	}
	return nil
}

// Insert v under k. An existing item with key k gets its value replaced,
// otherwise a new item is linked at the head of the bucket. Returns true if
// an item was created.
func (u *ChainTable) Insert(k string, v float32) bool {
	if it := u.Search(k); it != nil {
		it.Value = v
		return false
	}
	i := u.index(k)
	u.buckets[i] = &Item{k, v, u.buckets[i]}
	u.size++
	return true
}

// Get the value stored under k.
func (u *ChainTable) Get(k string) (float32, bool) {
	if it := u.Search(k); it != nil {
		return it.Value, true
	}
	return 0, false
}

// Delete the item with key k. Returns false if there's none.
func (u *ChainTable) Delete(k string) bool {
	for link := &u.buckets[u.index(k)]; *link != nil; link = &(*link).next {
		if cur := *link; cur.Key == k {
			*link, cur.next = cur.next, nil
			u.size--
			return true
		}
	}
	return false
}

// DeleteAll items. The table keeps its buckets and is as New made it.
func (u *ChainTable) DeleteAll() {
	for i, cur := range u.buckets {
		for cur != nil {
			next := cur.next
			cur.next = nil
			cur = next
		}
		u.buckets[i] = nil
	}
	u.size = 0
}

// Range calls f for every item, bucket by bucket and from head to tail
// within a bucket, until f returns false. The table must not be modified
// by f.
func (u *ChainTable) Range(f func(k string, v float32) bool) {
	for _, cur := range u.buckets {
		for ; cur != nil; cur = cur.next {
			if !f(cur.Key, cur.Value) {
				return
			}
		}
	}
}
