package arena

import (
	"fmt"
	"unsafe"
)

// defaultBlockBytes is the minimum block size spec.md §4.2 mandates: "at
// least 16 KiB or the request, whichever is larger." A block here always
// holds a whole number of records, so we convert the byte budget into a
// record count once, at pool construction.
const defaultBlockBytes = 16 * 1024

// minBlockRecords keeps tiny records (e.g. a 2-field struct) from producing
// absurdly large blocks purely by division, and keeps huge records from
// producing zero-length blocks.
const minBlockRecords = 64

// BlockAllocFunc allocates a fresh slice of n zero-valued T. The default
// implementation is a plain make([]T, n); tests substitute a failing
// variant to exercise the "allocation exhaustion" path from spec.md §7
// without needing to actually exhaust host memory.
type BlockAllocFunc[T any] func(n int) ([]T, error)

// Stats summarizes a Pool's lifetime allocation activity. It supplements
// the original jc_voronoi `Voronoi::get_required_mem()`, which spec.md's
// distillation dropped (see SPEC_FULL.md "Supplemented features").
type Stats struct {
	Blocks   int // number of blocks currently allocated
	Capacity int // total records the allocated blocks can hold
	Served   int // records handed out via Alloc (fresh, not counting reuse)
	Freed    int // records returned via Free and sitting on the free list
}

type block[T any] struct {
	items []T
	used  int
}

// Pool is a bump-pointer allocator for fixed-shape records of type T, with
// a free list for reclaimed records. A Pool is not safe for concurrent use;
// per spec.md §5 a Diagram (and everything it owns, including its Arena's
// pools) is reached through a single handle on a single goroutine.
type Pool[T any] struct {
	blocks   []*block[T]
	free     []*T
	blockCap int
	newBlock BlockAllocFunc[T]
	served   int
}

// Option configures a Pool at construction time.
type Option[T any] func(*Pool[T])

// WithBlockAllocator overrides the function used to materialize a new
// block's backing storage. This is the arena-level realization of the
// allocator hook in spec.md §6.2: generate-time callers may wrap the host
// allocator, and Pool.Alloc calls it only for whole blocks, never per
// record.
func WithBlockAllocator[T any](f BlockAllocFunc[T]) Option[T] {
	return func(p *Pool[T]) {
		if f != nil {
			p.newBlock = f
		}
	}
}

// NewPool returns a Pool sized so each block covers at least 16 KiB of T
// records (spec.md §4.2), applying any Option overrides in order.
func NewPool[T any](opts ...Option[T]) *Pool[T] {
	var zero T
	recSize := int(unsafe.Sizeof(zero))
	if recSize == 0 {
		recSize = 1
	}
	blockCap := defaultBlockBytes / recSize
	if blockCap < minBlockRecords {
		blockCap = minBlockRecords
	}

	p := &Pool[T]{
		blockCap: blockCap,
		newBlock: func(n int) ([]T, error) { return make([]T, n), nil },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Alloc returns a pointer to a zero-valued T, preferring the free list over
// growing the block list. It returns ErrBlockAlloc only if a new block was
// needed and the configured BlockAllocFunc failed.
func (p *Pool[T]) Alloc() (*T, error) {
	if n := len(p.free); n > 0 {
		t := p.free[n-1]
		p.free = p.free[:n-1]
		var zero T
		*t = zero
		return t, nil
	}

	if len(p.blocks) == 0 || p.blocks[len(p.blocks)-1].used == p.blockCap {
		items, err := p.newBlock(p.blockCap)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBlockAlloc, err)
		}
		if len(items) != p.blockCap {
			return nil, fmt.Errorf("%w: allocator returned %d records, want %d", ErrBlockAlloc, len(items), p.blockCap)
		}
		p.blocks = append(p.blocks, &block[T]{items: items})
	}

	b := p.blocks[len(p.blocks)-1]
	t := &b.items[b.used]
	b.used++
	p.served++
	return t, nil
}

// Free returns t to the pool's free list. It is the caller's responsibility
// never to dereference t again until a subsequent Alloc hands it back out;
// Pool itself does not track liveness beyond the free list membership.
func (p *Pool[T]) Free(t *T) {
	if t == nil {
		return
	}
	p.free = append(p.free, t)
}

// Reset drops every block and the free list. Records previously handed out
// by this Pool must not be used afterward.
func (p *Pool[T]) Reset() {
	p.blocks = nil
	p.free = nil
	p.served = 0
}

// Stats reports current pool occupancy, see Stats.
func (p *Pool[T]) Stats() Stats {
	cap := len(p.blocks) * p.blockCap
	return Stats{
		Blocks:   len(p.blocks),
		Capacity: cap,
		Served:   p.served,
		Freed:    len(p.free),
	}
}
