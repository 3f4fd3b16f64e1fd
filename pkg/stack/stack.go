package stack

type Stack[T any] struct {
	xs []T
}

func New[T any](n int) Stack[T] {
	return Stack[T]{make([]T, 0, n)}
}

func (s *Stack[T]) Push(x T) {
	s.xs = append(s.xs, x)
}

// Peek returns a pointer to the top of the stack so that it may be updated
// in place, or nil if the stack is empty.
func (s Stack[T]) Peek() *T {
	if len(s.xs) == 0 {
		return nil
	}
	return &s.xs[len(s.xs)-1]
}

func (s Stack[T]) Len() int {
	return len(s.xs)
}
