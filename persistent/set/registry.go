package set

// registry keeps track of iterators handed out by Find and Insert.
//
// We do not store references to iterators. Instead every tracked iterator is stamped
// with the generation current at the time of issue. Bumping the generation invalidates
// all of them at once.
type registry struct {
	generation uint64
	issued     int // tracked iterators issued in the current generation
}

// track stamps an iterator with the current generation.
func (reg *registry) track() uint64 {
	reg.issued++
	return reg.generation
}

func (reg *registry) isCurrent(generation uint64) bool {
	return reg.generation == generation
}

// invalidateAll invalidates every iterator issued so far and clears the registry.
// It returns the number of invalidated iterators.
func (reg *registry) invalidateAll() int {
	n := reg.issued
	reg.generation++
	reg.issued = 0
	return n
}
