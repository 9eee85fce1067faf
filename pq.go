package gsearch

import "container/heap"

type queueItem[ItemType any, PriorityType any] struct {
	value    ItemType
	priority PriorityType
	// sequence breaks priority ties: earlier insertions win.
	sequence uint64
}

// Comparator orders priorities: negative when a < b, zero when equal, positive otherwise.
type Comparator[PriorityType any] func(a, b PriorityType) int

// PriorityQueue is a minimum-priority queue ordered by an injected Comparator.
// Entries with equal priority come out in insertion order.
type PriorityQueue[ItemType any, PriorityType any] struct {
	items        queueHeap[ItemType, PriorityType]
	nextSequence uint64
}

// NewPriorityQueue returns an empty queue ordered by compare.
func NewPriorityQueue[ItemType any, PriorityType any](compare Comparator[PriorityType]) *PriorityQueue[ItemType, PriorityType] {
	queue := &PriorityQueue[ItemType, PriorityType]{
		items: queueHeap[ItemType, PriorityType]{compare: compare},
	}
	heap.Init(&queue.items)
	return queue
}

// Insert adds value with the given priority.
func (queue *PriorityQueue[ItemType, PriorityType]) Insert(value ItemType, priority PriorityType) {
	item := &queueItem[ItemType, PriorityType]{
		value:    value,
		priority: priority,
		sequence: queue.nextSequence,
	}
	queue.nextSequence++
	heap.Push(&queue.items, item)
}

// ExtractMin removes and returns the entry with the lowest priority.
func (queue *PriorityQueue[ItemType, PriorityType]) ExtractMin() (ItemType, PriorityType, error) {
	if queue.items.Len() == 0 {
		var value ItemType
		var priority PriorityType
		return value, priority, ErrEmptyQueue
	}
	item := heap.Pop(&queue.items).(*queueItem[ItemType, PriorityType])
	return item.value, item.priority, nil
}

// Peek returns the entry ExtractMin would return without removing it.
func (queue *PriorityQueue[ItemType, PriorityType]) Peek() (ItemType, PriorityType, error) {
	if queue.items.Len() == 0 {
		var value ItemType
		var priority PriorityType
		return value, priority, ErrEmptyQueue
	}
	item := queue.items.entries[0]
	return item.value, item.priority, nil
}

// Len returns the number of queued entries, stale ones included.
func (queue *PriorityQueue[ItemType, PriorityType]) Len() int { return queue.items.Len() }

// Comparator returns the ordering the queue was built with.
func (queue *PriorityQueue[ItemType, PriorityType]) Comparator() Comparator[PriorityType] {
	return queue.items.compare
}

// queueHeap implements heap.Interface.
type queueHeap[ItemType any, PriorityType any] struct {
	entries []*queueItem[ItemType, PriorityType]
	compare Comparator[PriorityType]
}

func (queue queueHeap[ItemType, PriorityType]) Len() int { return len(queue.entries) }

func (queue queueHeap[ItemType, PriorityType]) Less(i, j int) bool {
	if order := queue.compare(queue.entries[i].priority, queue.entries[j].priority); order != 0 {
		return order < 0
	}
	return queue.entries[i].sequence < queue.entries[j].sequence
}

func (queue queueHeap[ItemType, PriorityType]) Swap(i, j int) {
	queue.entries[i], queue.entries[j] = queue.entries[j], queue.entries[i]
}

func (queue *queueHeap[ItemType, PriorityType]) Push(x any) {
	item := x.(*queueItem[ItemType, PriorityType])
	queue.entries = append(queue.entries, item)
}

func (queue *queueHeap[ItemType, PriorityType]) Pop() any {
	oldEntries := queue.entries
	n := len(oldEntries)
	item := oldEntries[n-1]
	oldEntries[n-1] = nil
	queue.entries = oldEntries[:n-1]
	return item
}
