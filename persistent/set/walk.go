package set

import (
	"iter"
	"strings"

	"github.com/npillmayer/pset/maybe"
)

// Len returns the number of elements in s.
func (s *Set[K]) Len() int {
	s.assertLive()
	return s.size
}

// Contains reports whether key is an element of s. Other than Find, Contains
// does not hand out an iterator.
func (s *Set[K]) Contains(key K) bool {
	s.assertLive()
	n, _ := descend(s.root, key, s.compare, nil)
	return n != nil
}

// Min returns the smallest element of s, or Nothing for an empty set.
func (s *Set[K]) Min() maybe.Maybe[K] {
	s.assertLive()
	if s.root.left == nil {
		return maybe.Nothing[K]()
	}
	return maybe.Just(s.root.left.minimum().key)
}

// Max returns the largest element of s, or Nothing for an empty set.
func (s *Set[K]) Max() maybe.Maybe[K] {
	s.assertLive()
	if s.root.left == nil {
		return maybe.Nothing[K]()
	}
	return maybe.Just(s.root.left.maximum().key)
}

// All returns an iterator over the elements of s in ascending order.
// The sequence reflects the version of s at the time All has been called.
func (s *Set[K]) All() iter.Seq[K] {
	first, end := s.Begin(), s.End()
	return func(yield func(K) bool) {
		for it := first; !it.Equal(end); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of s in descending order.
// The sequence reflects the version of s at the time Backward has been called.
func (s *Set[K]) Backward() iter.Seq[K] {
	first, end := s.Begin(), s.End()
	return func(yield func(K) bool) {
		if first.Equal(end) {
			return
		}
		it := end
		for {
			it.Prev()
			if !yield(it.Key()) || it.Equal(first) {
				return
			}
		}
	}
}

// String returns the tree of s in parenthesised in-order notation, e.g. "((1)2(3))"
// for a root 2 with children 1 and 3.
func (s *Set[K]) String() string {
	if s == nil || s.root == nil {
		return "<released>"
	}
	var sb strings.Builder
	s.root.left.inorder(&sb)
	return sb.String()
}
