package path

import (
	"container/heap"
)

func NewNode[T comparable](value T) *PqItem[T] {
	return &PqItem[T]{value: value, index: -1}
}

// An PqItem is something we manage in a priority queue.
type PqItem[T comparable] struct {
	value    T       // The value of the item; arbitrary.
	priority float64 // The priority of the item in the queue, lowest first.
	// Insertion sequence number. Equal priorities pop in insertion order.
	sequence uint64
	// The index is needed by update and is maintained by the heap.Interface methods.
	index int // The index of the item in the heap.
}

func (item *PqItem[T]) GetPriority() float64 {
	return item.priority
}

func (item *PqItem[T]) SetPriority(priority float64) {
	item.priority = priority
}

func (item *PqItem[T]) GetIndex() int {
	return item.index
}

func (item *PqItem[T]) SetIndex(index int) {
	item.index = index
}

func (item *PqItem[T]) GetValue() T {
	return item.value
}

func (item *PqItem[T]) GetSequence() uint64 {
	return item.sequence
}

func (item *PqItem[T]) SetSequence(sequence uint64) {
	item.sequence = sequence
}

type PathNode[T comparable] interface {
	GetPriority() float64
	SetPriority(float64)
	GetIndex() int
	SetIndex(int)
	GetSequence() uint64
	SetSequence(uint64)
	GetValue() T
}

// PriorityQueue is a min-heap of PathNodes. Use Enqueue/Dequeue; the heap.Interface
// methods are only meant for container/heap.
type PriorityQueue[T comparable] struct {
	items   []PathNode[T]
	counter uint64
}

func NewPriorityQueue[T comparable](items []PathNode[T]) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{items: make([]PathNode[T], 0, len(items))}
	for _, item := range items {
		pq.Enqueue(item)
	}
	return pq
}

func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

func (pq *PriorityQueue[T]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.GetPriority() != b.GetPriority() {
		return a.GetPriority() < b.GetPriority()
	}
	return a.GetSequence() < b.GetSequence()
}

func (pq *PriorityQueue[T]) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.items[i].SetIndex(i)
	pq.items[j].SetIndex(j)
}

func (pq *PriorityQueue[T]) Push(x any) {
	item := x.(PathNode[T])
	item.SetIndex(len(pq.items))
	pq.items = append(pq.items, item)
}

func (pq *PriorityQueue[T]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil    // avoid memory leak
	item.SetIndex(-1) // for safety
	pq.items = old[0 : n-1]
	return item
}

// Enqueue adds the item, or re-sorts it when it is already queued.
// Both cases stamp a fresh sequence number.
func (pq *PriorityQueue[T]) Enqueue(item PathNode[T]) {
	pq.counter++
	item.SetSequence(pq.counter)
	if item.GetIndex() >= 0 && item.GetIndex() < len(pq.items) && pq.items[item.GetIndex()] == item {
		heap.Fix(pq, item.GetIndex())
		return
	}
	heap.Push(pq, item)
}

func (pq *PriorityQueue[T]) Dequeue() PathNode[T] {
	return heap.Pop(pq).(PathNode[T])
}

func (pq *PriorityQueue[T]) Top() PathNode[T] {
	return pq.items[0]
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.Len() == 0
}

// Update modifies the priority of an item in the queue.
func (pq *PriorityQueue[T]) Update(item PathNode[T], priority float64) {
	item.SetPriority(priority)
	pq.Enqueue(item)
}
