// Package fortune implements the sweepline engine at the heart of the
// Voronoi generator: the beachline, the circle-event priority queue, and
// the site/circle event loop from spec.md §4.3-4.5.
//
// It is grounded line-for-line on Mathias Westerdahl's jc_voronoi
// (_examples/original_source/src/voronoi.cpp), adapted to Go idiom the way
// the teacher (github.com/katalvlaran/lvlath) structures its own graph
// algorithms: exported package-level types, a container/heap-backed
// priority queue (dijkstra/dijkstra.go's nodePQ), and explicit error
// returns instead of allocation-failure panics.
//
// fortune is internal: it exposes Site/Edge/HalfEdge shaped exactly for
// the sweep, not the richer public Site/Edge/GraphEdge the root vorolath
// package presents. Cell assembly (turning a finished Edge into two
// GraphEdges per site, angular sort, gap-fill) is deliberately left to the
// caller — spec.md §4.8 is its own module, grounded on the clip package.
package fortune
