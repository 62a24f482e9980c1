package copytrade

import (
	"sync"
)

// OrderQueue is a thread-safe FIFO ring buffer that automatically doubles
// its capacity when it reaches 70% full.
type OrderQueue[T any] struct {
	mu       sync.Mutex
	buf      []T
	head     int // read position
	tail     int // write position
	count    int
	capacity int
	closed   bool
}

// NewOrderQueue creates a new queue with the given initial capacity.
func NewOrderQueue[T any](initialCapacity int) *OrderQueue[T] {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	return &OrderQueue[T]{
		buf:      make([]T, initialCapacity),
		capacity: initialCapacity,
	}
}

// Push adds an item to the tail. Grows the queue if at 70% capacity.
// Returns false if the queue is closed.
func (q *OrderQueue[T]) Push(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	// Grow when at or above 70% capacity after adding this item.
	threshold := (q.capacity * 70) / 100
	if threshold < 1 {
		threshold = 1
	}
	if q.count+1 >= threshold {
		q.grow()
	}

	q.buf[q.tail] = item
	q.tail = (q.tail + 1) % q.capacity
	q.count++
	return true
}

// TryPop removes and returns the item at the head without blocking.
// Returns the zero value and false when the queue is empty.
func (q *OrderQueue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		var zero T
		return zero, false
	}

	item := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero // Clear reference for GC
	q.head = (q.head + 1) % q.capacity
	q.count--
	return item, true
}

// Peek returns the head item without removing it.
func (q *OrderQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Len returns the number of queued items.
func (q *OrderQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Close closes the queue. After closing, Push returns false; queued items
// remain poppable.
func (q *OrderQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}

// grow doubles the capacity, relinearizing items. Caller must hold mu.
func (q *OrderQueue[T]) grow() {
	newCap := q.capacity * 2
	newBuf := make([]T, newCap)

	for i := 0; i < q.count; i++ {
		newBuf[i] = q.buf[(q.head+i)%q.capacity]
	}

	q.buf = newBuf
	q.head = 0
	q.tail = q.count
	q.capacity = newCap
}
