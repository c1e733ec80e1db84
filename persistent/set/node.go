package set

import (
	"fmt"
	"strings"
	"sync/atomic"
)

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding
  fresh copies of nodes.

- Nodes are immutable after construction. The reference count is the only field which
  ever changes.

- A new incarnation of a set always is reflected by a new set.root, which is a sentinel.

*/

// Comparator defines a total order on keys. It returns a negative number if a < b,
// zero if a == b and a positive number if a > b.
type Comparator[K any] func(a, b K) int

// node is a node of the binary search tree. Nodes may be shared between versions and
// between sets.
type node[K any] struct {
	key      K
	left     *node[K]
	right    *node[K]
	refs     atomic.Int32
	sentinel bool // sentinels are greater than any key
}

// newNode creates a node and acquires a reference to each of its children.
func newNode[K any](key K, left, right *node[K]) *node[K] {
	n := &node[K]{key: key, left: left, right: right}
	left.acquire()
	right.acquire()
	return n
}

// newSentinel creates a version root with the elements of a set as its left subtree.
func newSentinel[K any](left *node[K]) *node[K] {
	n := &node[K]{left: left, sentinel: true}
	left.acquire()
	return n
}

// copyOf creates a fresh node with the payload of n, or nil for n == nil.
func copyOf[K any](n *node[K]) *node[K] {
	if n == nil {
		return nil
	}
	return newNode(n.key, n.left, n.right)
}

func (n *node[K]) acquire() {
	if n != nil {
		n.refs.Add(1)
	}
}

// release gives up a reference to n. If this has been the last reference, the children
// of n are released, too.
func (n *node[K]) release() {
	if n == nil {
		return
	}
	r := n.refs.Add(-1)
	assertThat(r >= 0, "node %v released more often than acquired", n)
	if r == 0 {
		n.left.release()
		n.right.release()
	}
}

func (n *node[K]) minimum() *node[K] {
	assertThat(n != nil, "attempt to find minimum of empty subtree")
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K]) maximum() *node[K] {
	assertThat(n != nil, "attempt to find maximum of empty subtree")
	for n.right != nil {
		n = n.right
	}
	return n
}

// compareTo compares the key of n to key. Sentinels compare greater.
func (n *node[K]) compareTo(key K, cmp Comparator[K]) int {
	if n.sentinel {
		return +1
	}
	return cmp(n.key, key)
}

// child returns the left or right child of n.
func (n *node[K]) child(d direction) *node[K] {
	if d == toLeft {
		return n.left
	}
	return n.right
}

// withChild returns a copy of n with the child in direction d replaced.
func (n *node[K]) withChild(d direction, ch *node[K]) *node[K] {
	if n.sentinel {
		assertThat(d == toLeft, "sentinel may not have a right child")
		return newSentinel(ch)
	}
	if d == toLeft {
		return newNode(n.key, ch, n.right)
	}
	return newNode(n.key, n.left, ch)
}

func (n *node[K]) String() string {
	if n == nil {
		return "⊥"
	}
	if n.sentinel {
		return "⊤"
	}
	return fmt.Sprintf("%v", n.key)
}

// inorder writes the subtree of n in parenthesised form, e.g. ((1)2(3)).
func (n *node[K]) inorder(sb *strings.Builder) {
	if n == nil {
		return
	}
	sb.WriteByte('(')
	n.left.inorder(sb)
	if !n.sentinel {
		sb.WriteString(n.String())
	}
	n.right.inorder(sb)
	sb.WriteByte(')')
}
