package vorolath

// Free releases d's contents. It is idempotent: calling it more than once,
// or on a Diagram that was never populated (e.g. the empty handle returned
// after an allocation failure), is a safe no-op — spec.md §6.1's
// "Idempotent on an already-freed or never-generated handle."
//
// The arena pools backing a Diagram are not retained past Generate, so
// there is no block list to release explicitly; Free's job is to drop
// every Site/Edge/GraphEdge reference so the Go garbage collector can
// reclaim them, and to make repeat calls observably harmless.
func (d *Diagram) Free() {
	if d == nil || d.freed {
		return
	}
	d.sites = nil
	d.edgeHead = nil
	d.stats = ArenaStats{}
	d.freed = true
}
