/*
Package set implements a persistent ordered set of keys, backed by an unbalanced
binary search tree with path copying.

Every modification of a set (insertion or erasure) copies the nodes on the path from
the root to the modified position only; all other subtrees are shared with the previous
version. Copying a set is O(1): the copy receives a root of its own, sharing the complete
tree of elements with the original.

Nodes do not carry parent links, as a shared subtree may be reached from many roots.
Iterators therefore remember the root of the version they were issued against (the
version anchor) and re-descend from there whenever they have to move upwards.

	s := set.New[int]()
	for _, k := range []int{2, 5, 3, 7, 1, 9} {
	    s.Insert(k)
	}
	snapshot := s.Clone()
	s.Erase(s.Find(2))      // snapshot still contains 2
	for it := s.Begin(); !it.Equal(s.End()); it.Next() {
	    fmt.Println(it.Key())
	}

Iterators returned by Find and Insert are tied to the current version of their set and
become invalid as soon as the set changes structurally. Begin and End are not tracked.

Sets are not safe for concurrent mutation. Reading from versions while other sets
sharing nodes with them are modified is fine, as nodes never change after construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package set

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.set'.
func tracer() tracing.Trace {
	return tracing.Select("fp.set")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("set: "+msg, msgargs...)
		panic(msg)
	}
}
