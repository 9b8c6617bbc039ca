// Package arena provides a generic bump-pointer block pool with type-scoped
// free lists, the allocation discipline spec.md §4.2 requires: records are
// handed out from growing fixed-capacity blocks, freed records are recycled
// from a free list before a new block is touched, and the whole pool is
// dropped at once on Reset. No per-record free exists.
//
// Unlike the C original this is generalized over Go: a Pool[T] never hands
// out a pointer that a later append could invalidate, because each block is
// allocated at fixed capacity up front (see NewPool). Records are zeroed
// before being handed back out of the free list, so a reused record never
// leaks a previous owner's pointers.
package arena
