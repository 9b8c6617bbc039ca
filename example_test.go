package vorolath_test

import (
	"fmt"

	"github.com/katalvlaran/vorolath"
)

// Example demonstrates the public surface end to end: generate a diagram
// for a handful of points, print how many sites survived, and free it.
// Mirrors jc_voronoi's src/examples/simple.c without the argv/PNG parts,
// which are out of scope per spec.md §1.
func Example() {
	points := []vorolath.Point{
		{X: 128, Y: 256},
		{X: 384, Y: 256},
		{X: 256, Y: 64},
	}

	d, err := vorolath.Generate(points, vorolath.WithRect(
		vorolath.Point{X: 0, Y: 0}, vorolath.Point{X: 512, Y: 512}))
	if err != nil {
		fmt.Println("generate failed:", err)
		return
	}
	defer d.Free()

	fmt.Println("sites:", len(d.Sites()))
	// Output:
	// sites: 3
}
