/*
Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.
This package offers an ordered set with similar properties, found in sub-package set.

Persistent data-structures offer structural sharing, which means that if two versions of a
structure are mostly copies of each other, most of the memory they take up will be shared
between them. Creating a copy of a set is O(1), and every modification creates new nodes
only along a single root-to-leaf path.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
