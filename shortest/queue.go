package shortest

import "container/heap"

// queueItem pairs a row-major cell index with the distance it was pushed at.
// An item whose dist exceeds the cell's current distance is stale.
type queueItem struct {
	idx  int
	dist int
}

// frontier is the set of cells waiting to have their neighbors relaxed.
type frontier interface {
	push(idx, dist int)
	pop() queueItem
	len() int
}

func newFrontier(k QueueKind) frontier {
	if k == QueueFIFO {
		return &fifoQueue{}
	}
	return &priorityQueue{}
}

// fifoQueue hands cells back in arrival order.
type fifoQueue struct {
	items []queueItem
}

func (q *fifoQueue) push(idx, dist int) { q.items = append(q.items, queueItem{idx: idx, dist: dist}) }

func (q *fifoQueue) pop() queueItem {
	it := q.items[0]
	q.items = q.items[1:]
	return it
}

func (q *fifoQueue) len() int { return len(q.items) }

// priorityQueue hands back the smallest pending distance first.
// Improved cells are pushed again rather than re-keyed (lazy decrease-key);
// stale entries are skipped by the caller when popped.
type priorityQueue struct {
	pq nodePQ
}

func (q *priorityQueue) push(idx, dist int) {
	heap.Push(&q.pq, queueItem{idx: idx, dist: dist})
}

func (q *priorityQueue) pop() queueItem { return heap.Pop(&q.pq).(queueItem) }

func (q *priorityQueue) len() int { return q.pq.Len() }

// nodePQ is a min-heap of queueItem ordered by dist ascending.
type nodePQ []queueItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist first.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a queueItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(queueItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
