package arena

import "errors"

// ErrBlockAlloc is the sentinel wrapped when the configured block allocator
// fails. Pool.Alloc propagates it rather than panicking, so that a caller
// at the public boundary (vorolath.Generate) can turn it into an empty,
// safe-to-free Diagram per spec.md §7's allocation-exhaustion policy.
var ErrBlockAlloc = errors.New("arena: block allocation failed")
