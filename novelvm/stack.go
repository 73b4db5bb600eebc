package novelvm

import "slices"

type Stack[T any] struct {
	data []T
}

func (s *Stack[T]) Push(e T) {
	s.data = append(s.data, e)
}

func (s *Stack[T]) Pop() (T, error) {
	if len(s.data) == 0 {
		return *new(T), ErrEmptyStack
	}
	last := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return last, nil
}

func (s *Stack[T]) Len() int {
	return len(s.data)
}

func (s *Stack[T]) Clear() {
	clear(s.data)
	s.data = s.data[:0]
}

// Values returns a copy, bottom first.
func (s *Stack[T]) Values() []T {
	return slices.Clone(s.data)
}
