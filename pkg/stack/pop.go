package stack

func (s *Stack[T]) Pop() *T {
	if len(s.xs) == 0 {
		return nil
	}
	n := len(s.xs) - 1
	x := s.xs[n]
	s.xs = s.xs[:n]
	return &x
}
