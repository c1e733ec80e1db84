package set

import (
	"fmt"
	"strings"
)

type direction int8

const (
	toLeft direction = iota
	toRight
)

func (d direction) String() string {
	if d == toLeft {
		return "↙"
	}
	return "↘"
}

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node and the edge taken to continue downwards.
type slot[K any] struct {
	node *node[K]
	dir  direction
}

func (s slot[K]) String() string {
	return s.node.String() + s.dir.String()
}

// --- Path ------------------------------------------------------------------

// slotPath is a list of slots, denoting the path from a version root to a node
// (excluding the node itself).
type slotPath[K any] []slot[K]

func (path slotPath[K]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[K]) last() slot[K] {
	if len(path) == 0 {
		return slot[K]{}
	}
	return path[len(path)-1]
}

func (path slotPath[K]) dropLast() slotPath[K] {
	assertThat(len(path) > 0, "attempt to drop last slot from empty slot-path")
	return path[:len(path)-1]
}

// foldR applies function f on pairs (parent, child) of path.
// Application starts from the right ('R'), which corresponds to the bottom-most slot of
// the path. zero is the node to apply as `child` in the rightmost call of f(parent,child).
// If path is empty, zero will be returned, otherwise the value returned from the final
// call to f will be returned.
func (path slotPath[K]) foldR(f func(slot[K], *node[K]) *node[K], zero *node[K]) *node[K] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

// cloneSeam creates a copy of the parent node in slot parent, linking in child
// as the new child in the direction of the path.
func cloneSeam[K any](parent slot[K], child *node[K]) *node[K] {
	return parent.node.withChild(parent.dir, child)
}

// descend searches for key, starting at root, and records the path of ancestors.
// It returns the node holding key, or nil if key is not present. In the latter case
// the last slot of the path denotes the empty edge where key would have to be inserted.
func descend[K any](root *node[K], key K, cmp Comparator[K], pathBuf slotPath[K]) (*node[K], slotPath[K]) {
	path := pathBuf[:0]
	n := root
	for n != nil {
		c := n.compareTo(key, cmp)
		if c == 0 {
			return n, path
		}
		d := toRight
		if c > 0 {
			d = toLeft
		}
		path = append(path, slot[K]{node: n, dir: d})
		n = n.child(d)
	}
	return nil, path
}
