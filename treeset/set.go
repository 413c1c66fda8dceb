// Package treeset is an ordered persistent set backed by avl.Map.
package treeset

import (
	"jsouthworth.net/go/avl"
)

type Set[T any] struct {
	impl *avl.Map[T, struct{}]
}

func Empty[T any](cmp func(a, b T) int) *Set[T] {
	return &Set[T]{
		impl: avl.Empty(cmp, func(_, _ struct{}) bool {
			return true
		}),
	}
}

func (s *Set[T]) Contains(elem T) bool {
	return s.impl.Contains(elem)
}

func (s *Set[T]) Add(elem T) *Set[T] {
	nimpl := s.impl.Insert(elem, struct{}{})
	if nimpl == s.impl {
		return s
	}
	return &Set[T]{
		impl: nimpl,
	}
}

func (s *Set[T]) Len() int {
	return s.impl.Length()
}

func (s *Set[T]) String() string {
	return s.impl.String()
}
