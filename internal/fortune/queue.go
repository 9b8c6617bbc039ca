package fortune

import "container/heap"

// eventQueue is the container/heap.Interface backing the circle-event
// priority queue: a typed slice plus the four heap.Interface methods, the
// same shape the teacher uses for its own Dijkstra min-heap
// (dijkstra/dijkstra.go's nodePQ), rather than the hand-rolled
// pq_moveup/pq_maxchild/pq_movedown trio in voronoi.cpp. Ordering is
// (Y, Vertex.X) ascending per spec.md §4.3.
type eventQueue []*HalfEdge

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Vertex.X < b.Vertex.X
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].pqIndex = i
	q[j].pqIndex = j
}

func (q *eventQueue) Push(x interface{}) {
	he := x.(*HalfEdge)
	he.pqIndex = len(*q)
	he.inQueue = true
	*q = append(*q, he)
}

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	he := old[n-1]
	old[n-1] = nil
	he.pqIndex = -1
	he.inQueue = false
	*q = old[:n-1]
	return he
}

// priorityQueue wraps eventQueue with the push/pop-min/remove-by-identity
// contract spec.md §4.3 describes. Each HalfEdge carries its own slot
// index (pqIndex), updated on every Swap, so Remove is O(log n) instead of
// a linear scan — the "never rely on value identity for heap membership"
// guidance in spec.md §9, realized with heap.Remove instead of a
// reimplementation of pq_remove.
type priorityQueue struct {
	q eventQueue
}

// Empty reports whether the queue has no pending circle events.
func (pq *priorityQueue) Empty() bool { return len(pq.q) == 0 }

// Top returns the half-edge with the smallest pending circle event, or nil
// if the queue is empty. It does not remove the entry.
func (pq *priorityQueue) Top() *HalfEdge {
	if len(pq.q) == 0 {
		return nil
	}
	return pq.q[0]
}

// Push enqueues he's pending circle event (he.Vertex/he.Y must already be
// set by the caller).
func (pq *priorityQueue) Push(he *HalfEdge) {
	heap.Push(&pq.q, he)
}

// Pop removes and returns the half-edge with the smallest pending circle
// event, or nil if the queue is empty.
func (pq *priorityQueue) Pop() *HalfEdge {
	if len(pq.q) == 0 {
		return nil
	}
	return heap.Pop(&pq.q).(*HalfEdge)
}

// Remove cancels he's pending circle event. It is a no-op if he has none
// queued, mirroring pq_remove's pos==0 early return.
func (pq *priorityQueue) Remove(he *HalfEdge) {
	if !he.inQueue {
		return
	}
	heap.Remove(&pq.q, he.pqIndex)
}
