package set

// Iterator denotes a position in a version of a set. It is a pair of a node and the
// version root (anchor) the node has been found from. Nodes do not know their parents,
// thus moving upwards requires a search from the anchor, which is O(height).
//
// Iterators returned by Set.Find and Set.Insert are tracked by their set and become
// invalid with the next structural change of the set. Iterators created by Set.Begin
// and Set.End are untracked. They keep navigating the version they were created for.
type Iterator[K any] struct {
	pos        *node[K]
	anchor     *node[K]
	compare    Comparator[K]
	owner      *Set[K] // nil for untracked iterators
	generation uint64
}

// Valid is false for iterators invalidated by a modification of their set.
func (it Iterator[K]) Valid() bool {
	if it.pos == nil {
		return false
	}
	return it.owner == nil || it.owner.reg.isCurrent(it.generation)
}

// IsEnd is true if it is positioned behind the last element of its version.
func (it Iterator[K]) IsEnd() bool {
	return it.pos != nil && it.pos == it.anchor
}

// Key returns the element at the position of it.
// Calling Key on an invalid iterator or on End() panics.
func (it Iterator[K]) Key() K {
	it.assertUsable("dereference")
	assertThat(!it.IsEnd(), "attempt to dereference end()")
	return it.pos.key
}

// Equal is true if it and other are positioned at the same node of the same version.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.pos == other.pos && it.anchor == other.anchor
}

// Next moves it to the next larger element, or to End(). It returns the updated iterator.
// Calling Next on End() panics.
func (it *Iterator[K]) Next() Iterator[K] {
	it.assertUsable("increment")
	assertThat(!it.IsEnd(), "attempt to increment end()")
	if it.pos.right != nil {
		it.pos = it.pos.right.minimum()
		return *it
	}
	path := it.ancestors()
	for len(path) > 0 && path.last().dir == toRight {
		path = path.dropLast()
	}
	// the anchor is always left via its left edge
	assertThat(len(path) > 0, "internal inconsistency: no successor for %v", it.pos)
	it.pos = path.last().node
	return *it
}

// Prev moves it to the next smaller element. It returns the updated iterator.
// Calling Prev on Begin() panics.
func (it *Iterator[K]) Prev() Iterator[K] {
	it.assertUsable("decrement")
	if it.pos.left != nil {
		it.pos = it.pos.left.maximum()
		return *it
	}
	assertThat(!it.IsEnd(), "attempt to decrement begin() of empty set")
	path := it.ancestors()
	for len(path) > 0 && path.last().dir == toLeft {
		path = path.dropLast()
	}
	assertThat(len(path) > 0, "attempt to decrement begin()")
	it.pos = path.last().node
	return *it
}

// PostNext moves it to the next larger element, returning the iterator as it was
// before the move.
func (it *Iterator[K]) PostNext() Iterator[K] {
	prev := *it
	it.Next()
	return prev
}

// PostPrev moves it to the next smaller element, returning the iterator as it was
// before the move.
func (it *Iterator[K]) PostPrev() Iterator[K] {
	prev := *it
	it.Prev()
	return prev
}

func (it Iterator[K]) String() string {
	if !it.Valid() {
		return "⟨invalid⟩"
	}
	return "⟨" + it.pos.String() + "⟩"
}

// ancestors re-descends from the anchor to the position of it, recording the path.
func (it Iterator[K]) ancestors() slotPath[K] {
	n, path := descend(it.anchor, it.pos.key, it.compare, nil)
	assertThat(n == it.pos, "iterator at %v does not belong to its version", it.pos)
	tracer().Debugf("ancestors of %v = %s", it.pos, path)
	return path
}

func (it Iterator[K]) assertUsable(op string) {
	assertThat(it.Valid(), "attempt to %s an invalid iterator", op)
}
