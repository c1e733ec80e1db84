package set

import (
	"cmp"
)

// Set is a persistent ordered set of keys. The zero value is not usable; create sets
// with New or NewFunc.
//
// Sets have to be handled by pointer, as iterators returned from Find and Insert are
// tied to their set.
type Set[K any] struct {
	root    *node[K] // sentinel of the current version
	compare Comparator[K]
	size    int
	name    string
	reg     registry
}

// New creates an empty set for an ordered key type.
//
//	s := set.New[int]()
func New[K cmp.Ordered](opts ...Option[K]) *Set[K] {
	return NewFunc(cmp.Compare[K], opts...)
}

// NewFunc creates an empty set, ordering keys by compare. compare has to implement a
// total order on K.
func NewFunc[K any](compare func(a, b K) int, opts ...Option[K]) *Set[K] {
	assertThat(compare != nil, "comparator for set may not be nil")
	s := &Set[K]{
		compare: compare,
		name:    "set",
	}
	for _, option := range opts {
		option(s)
	}
	s.root = newSentinel[K](nil)
	s.root.acquire()
	return s
}

// Option is a type to help initializing sets at creation time.
type Option[K any] func(*Set[K])

// Named is an option to give a set a name. The name is used in trace output only.
//
//	s := set.New(set.Named[string]("dictionary"))
func Named[K any](name string) Option[K] {
	return func(s *Set[K]) {
		s.name = name
	}
}

// --- API -------------------------------------------------------------------

// Find locates key and returns an iterator positioned at it. If key is not contained
// in s, the iterator returned is equal to s.End().
//
// The iterator will be invalidated by the next structural change of s.
func (s *Set[K]) Find(key K) Iterator[K] {
	it, _ := s.find(key)
	return it
}

// find registers an iterator for key, like Find, and additionally returns the path
// of ancestors leading to key or to the empty edge where key belongs.
func (s *Set[K]) find(key K) (Iterator[K], slotPath[K]) {
	s.assertLive()
	n, path := descend(s.root, key, s.compare, nil)
	if n == nil {
		n = s.root
	}
	return s.track(n), path
}

// Insert adds key to s. If key is already present, s is left unchanged, and an iterator
// to the present element is returned together with false. Otherwise a new version of s
// is created, all iterators issued by s are invalidated, and an iterator at the new element
// is returned together with true.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	it, path := s.find(key)
	if !it.IsEnd() {
		return it, false
	}
	s.invalidate("insert")
	leaf := newNode(key, nil, nil)
	cow := path.foldR(cloneSeam[K], leaf)
	tracer().Debugf("%s: inserted %v below path %s", s.name, key, path)
	s.swapRoot(cow)
	s.size++
	return s.track(leaf), true
}

// Erase removes the element at it from s, creating a new version of s.
// it has to be a valid iterator positioned at an element of the current version of s.
// All iterators issued by s are invalidated.
func (s *Set[K]) Erase(it Iterator[K]) {
	s.assertLive()
	assertThat(it.Valid(), "attempt to erase at invalid iterator")
	assertThat(!it.IsEnd(), "attempt to erase at end()")
	assertThat(it.anchor == s.root, "iterator does not belong to current version of %s", s.name)
	target, path := descend(it.anchor, it.pos.key, s.compare, nil)
	assertThat(target == it.pos, "iterator does not denote an element of %s", s.name)
	s.invalidate("erase")
	cow := path.foldR(cloneSeam[K], withoutNode(target))
	tracer().Debugf("%s: erased %v below path %s", s.name, target, path)
	s.swapRoot(cow)
	s.size--
}

// Clone returns a copy of s in O(1). The copy shares all elements with s, but
// changes to either one of them are not visible to the other.
// Unless opts name the copy, it is called like s, with a prime appended.
func (s *Set[K]) Clone(opts ...Option[K]) *Set[K] {
	s.assertLive()
	c := &Set[K]{
		compare: s.compare,
		size:    s.size,
		name:    s.name + "'",
	}
	for _, option := range opts {
		option(c)
	}
	c.root = newSentinel(s.root.left)
	c.root.acquire()
	tracer().Infof("%s: cloned to %s with %d elements", s.name, c.name, s.size)
	return c
}

// Assign replaces the contents of s by the contents of other, which will be shared
// between the two. All iterators issued by s are invalidated, including End().
func (s *Set[K]) Assign(other *Set[K]) {
	s.assertLive()
	other.assertLive()
	s.invalidate("assign")
	s.swapRoot(newSentinel(other.root.left))
	s.compare = other.compare
	s.size = other.size
	tracer().Infof("%s: assigned %d elements from %s", s.name, s.size, other.name)
}

// Release destroys s, giving up all references to nodes. Iterators issued by s are
// invalidated. s may not be used afterwards.
func (s *Set[K]) Release() {
	s.assertLive()
	s.invalidate("release")
	s.root.release()
	s.root = nil
	s.size = 0
	tracer().Infof("%s: released", s.name)
}

// Begin returns an iterator positioned at the smallest element of s, or s.End() if
// s is empty.
func (s *Set[K]) Begin() Iterator[K] {
	s.assertLive()
	return Iterator[K]{pos: s.root.minimum(), anchor: s.root, compare: s.compare}
}

// End returns an iterator positioned behind the largest element of s.
func (s *Set[K]) End() Iterator[K] {
	s.assertLive()
	return Iterator[K]{pos: s.root, anchor: s.root, compare: s.compare}
}

// --- Internals -------------------------------------------------------------

func (s *Set[K]) assertLive() {
	assertThat(s != nil && s.root != nil, "use of released or uninitialized set")
}

func (s *Set[K]) track(n *node[K]) Iterator[K] {
	return Iterator[K]{
		pos:        n,
		anchor:     s.root,
		compare:    s.compare,
		owner:      s,
		generation: s.reg.track(),
	}
}

func (s *Set[K]) invalidate(op string) {
	if n := s.reg.invalidateAll(); n > 0 {
		tracer().Debugf("%s: %s invalidated %d iterator(s)", s.name, op, n)
	}
}

// swapRoot installs a new version root and releases the old one.
func (s *Set[K]) swapRoot(root *node[K]) {
	assertThat(root != nil && root.sentinel, "internal inconsistency: version root is not a sentinel")
	root.acquire()
	s.root.release()
	s.root = root
}

// withoutNode returns a fresh subtree replacing target, with the key of target removed.
// If target has a right subtree, its key is replaced by the in-order successor.
func withoutNode[K any](target *node[K]) *node[K] {
	if target.right == nil {
		return copyOf(target.left)
	}
	succ := target.right.minimum()
	return newNode(succ.key, target.left, withoutMinimum(target.right))
}

// withoutMinimum returns a fresh subtree replacing n, with the minimum of n removed.
func withoutMinimum[K any](n *node[K]) *node[K] {
	if n.left == nil {
		return copyOf(n.right)
	}
	return newNode(n.key, withoutMinimum(n.left), n.right)
}
