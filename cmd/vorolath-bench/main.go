// Command vorolath-bench is runnable documentation for the vorolath public
// API, in the same spirit as the teacher's examples/*.go snippets and
// jc_voronoi's src/examples/simple.c: generate a diagram for a handful of
// random sites and print a summary. It takes no flags and parses no
// arguments — a CLI argument parser is an explicitly out-of-scope external
// collaborator (spec.md §1).
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/katalvlaran/vorolath"
	"github.com/katalvlaran/vorolath/delaunay"
)

const (
	siteCount  = 64
	boxWidth   = 800.0
	boxHeight  = 600.0
)

func main() {
	rng := rand.New(rand.NewSource(1))
	points := make([]vorolath.Point, siteCount)
	for i := range points {
		points[i] = vorolath.Point{X: rng.Float64() * boxWidth, Y: rng.Float64() * boxHeight}
	}

	d, err := vorolath.Generate(points, vorolath.WithRect(
		vorolath.Point{X: 0, Y: 0}, vorolath.Point{X: boxWidth, Y: boxHeight}))
	if err != nil {
		log.Fatalf("vorolath-bench: generate failed: %v", err)
	}
	defer d.Free()

	fmt.Printf("sites: %d\n", len(d.Sites()))

	edgeCount := 0
	for e := d.FirstEdge(); e != nil; e = e.Next() {
		edgeCount++
	}
	fmt.Printf("edges: %d\n", edgeCount)

	triangles := delaunay.Iterate(d)
	fmt.Printf("delaunay edges: %d\n", len(triangles))

	stats := d.ArenaStats()
	fmt.Printf("arena: edge blocks=%d served=%d freed=%d, half-edge blocks=%d served=%d freed=%d\n",
		stats.EdgeBlocks, stats.EdgeServed, stats.EdgeFreed,
		stats.HalfEdgeBlocks, stats.HalfEdgeServed, stats.HalfEdgeFreed)
}
