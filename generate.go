package vorolath

import (
	"fmt"

	"github.com/katalvlaran/vorolath/arena"
	"github.com/katalvlaran/vorolath/internal/fortune"
)

// Generate computes the Voronoi diagram of points using Fortune's
// sweepline algorithm, per spec.md §4.5/§6.1. The returned Diagram owns
// every Site, Edge, and GraphEdge it contains; callers must eventually
// call (*Diagram).Free.
//
// Control flow mirrors spec.md §2: input prune -> allocator init -> sweep
// loop -> finishline over surviving edges (inside the sweep) -> cell
// assembly with clipper fill-gaps per site.
func Generate(points []Point, opts ...GenerateOption) (*Diagram, error) {
	cfg := newGenerateConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	survivors, clipper, err := sanitizeInput(points, cfg)
	if err != nil {
		return nil, err
	}

	d := &Diagram{rect: clipper.Bounds()}
	if len(survivors) == 0 {
		return d, nil
	}

	sites := make([]Site, len(survivors))
	fSites := make([]*fortune.Site, len(survivors))
	for i, p := range survivors {
		sites[i] = Site{index: i, p: p}
	}
	for i := range sites {
		fSites[i] = &fortune.Site{P: sites[i].p, Index: sites[i].index}
	}

	checkAlloc := func() error {
		if cfg.allocHook == nil {
			return nil
		}
		return cfg.allocHook()
	}
	edgePool := arena.NewPool[fortune.Edge](arena.WithBlockAllocator(func(n int) ([]fortune.Edge, error) {
		if err := checkAlloc(); err != nil {
			return nil, err
		}
		return make([]fortune.Edge, n), nil
	}))
	halfPool := arena.NewPool[fortune.HalfEdge](arena.WithBlockAllocator(func(n int) ([]fortune.HalfEdge, error) {
		if err := checkAlloc(); err != nil {
			return nil, err
		}
		return make([]fortune.HalfEdge, n), nil
	}))

	engine := fortune.NewEngine(clipper, edgePool, halfPool)
	fEdges, err := engine.Run(fSites)
	if err != nil {
		// spec.md §7: allocation exhaustion is fatal but leaves the Diagram
		// in a safe-to-free empty state, never a half-built one.
		return &Diagram{rect: d.rect}, fmt.Errorf("vorolath: generate: %w", err)
	}

	d.sites = sites
	d.edgeHead = assembleCells(sites, fEdges, clipper)
	d.stats = ArenaStats{
		EdgeBlocks: edgePool.Stats().Blocks, EdgeServed: edgePool.Stats().Served, EdgeFreed: edgePool.Stats().Freed,
		HalfEdgeBlocks: halfPool.Stats().Blocks, HalfEdgeServed: halfPool.Stats().Served, HalfEdgeFreed: halfPool.Stats().Freed,
	}
	return d, nil
}
