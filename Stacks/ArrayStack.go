package Stacks

// ArrayStack is a Stack backed by a slice that grows by half of its length
// whenever it's pushed full. It never shrinks on its own.
type ArrayStack[T any] struct {
	sz      uint
	content []T
}

// MakeArrayStack returns an empty stack able to hold initCap items before
// the first resize.
func MakeArrayStack[T any](initCap uint) *ArrayStack[T] {
	return &ArrayStack[T]{0, make([]T, initCap)}
}

func (u *ArrayStack[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayStack[T]) Size() uint {
	return u.sz
}

func (u *ArrayStack[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	copy(nc, u.content[:u.sz])
	u.content = nc
}

// Clear the stack. Released slots are zeroed so that popped references
// can be collected.
func (u *ArrayStack[T]) Clear() {
	clear(u.content[:u.sz])
	u.sz = 0
}

func (u *ArrayStack[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[u.sz] = item
	u.sz++
}

func (u *ArrayStack[T]) Pop() (item T, e error) {
	if u.Empty() {
		return *new(T), &EmptyStackError{}
	}
	u.sz--
	item = u.content[u.sz]
	u.content[u.sz] = *new(T)
	return item, nil
}

func (u *ArrayStack[T]) Peek() (item T, e error) {
	if u.Empty() {
		return *new(T), &EmptyStackError{}
	}
	return u.content[u.sz-1], nil
}
