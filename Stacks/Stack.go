package Stacks

// Stack is a last-in-first-out container.
// Pop and Peek return an *EmptyStackError when called on an empty stack.
type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
	Size() uint
	Clear()
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop or Peek."
}
