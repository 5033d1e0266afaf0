package gamestate

import (
	"github.com/ljherron8/socceraction/pkg/model"
)

// RingBuffer is a circular buffer of actions with fixed capacity
type RingBuffer struct {
	data     []model.Action
	capacity int
	size     int
	head     int // points to the next write position
}

// NewRingBuffer creates a new ring buffer with the specified capacity
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{
		data:     make([]model.Action, capacity),
		capacity: capacity,
	}
}

// Push adds an action to the buffer
// If the buffer is full, the oldest action is overwritten
func (rb *RingBuffer) Push(a model.Action) {
	rb.data[rb.head] = a
	rb.head = (rb.head + 1) % rb.capacity
	if rb.size < rb.capacity {
		rb.size++
	}
}

// Size returns the current number of elements in the buffer
func (rb *RingBuffer) Size() int {
	return rb.size
}

// Capacity returns the maximum capacity of the buffer
func (rb *RingBuffer) Capacity() int {
	return rb.capacity
}

// Recent returns the i-th most recent action (0 is the last pushed)
func (rb *RingBuffer) Recent(i int) *model.Action {
	if i < 0 || i >= rb.size {
		return nil
	}
	idx := (rb.head - 1 - i + 2*rb.capacity) % rb.capacity
	a := rb.data[idx]
	return &a
}

// Clear empties the buffer
func (rb *RingBuffer) Clear() {
	rb.size = 0
	rb.head = 0
}
