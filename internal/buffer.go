package internal

import (
	"math"

	"github.com/pkg/errors"
)

// The most slots either buffer may ever hold unless configured otherwise. Vertex
// indices are stored as uint32, but we stay within int32 so that capacity
// arithmetic cannot overflow an int on 32 bit platforms.
const DefaultLimit = math.MaxInt32

// An owned, growable sequence. The length of data is the number of used slots
// and its capacity is the buffer's capacity. Capacity only ever changes
// through reserve, which doubles it, so pushes in between never reallocate.
type buffer[T any] struct {
	data  []T
	limit int
}

func newBuffer[T any](capacity, limit int) buffer[T] {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	capacity = max(0, min(capacity, limit))
	return buffer[T]{data: make([]T, 0, capacity), limit: limit}
}

func (b *buffer[T]) Len() int { return len(b.data) }
func (b *buffer[T]) Cap() int { return cap(b.data) }

// Work out the capacity needed before pending more elements can be appended to
// a buffer holding used elements. The buffer grows as soon as used+pending
// reaches the capacity, and it grows by doubling (from at least 1) until the
// pending elements fit. The result never exceeds limit; if the elements cannot
// fit under the limit at all, that is ErrOutOfMemory.
func nextCapacity(used, pending, capacity, limit int) (int, error) {
	need := used + pending
	if pending == 0 || need < capacity {
		return capacity, nil
	}
	if need > limit {
		return 0, errors.Wrapf(ErrOutOfMemory, "need %d slots but the limit is %d", need, limit)
	}
	newCapacity := max(capacity, 1)
	for newCapacity <= need {
		if newCapacity > limit/2 {
			newCapacity = limit
			break
		}
		newCapacity *= 2
	}
	return newCapacity, nil
}

// Return backing storage with room for pending more elements, holding a copy
// of everything stored so far. The buffer itself is not touched: the caller
// commits the result with adopt once every allocation it needs has succeeded.
// If no growth is needed, the current storage is returned.
func (b *buffer[T]) reserve(pending int) ([]T, error) {
	newCapacity, err := nextCapacity(len(b.data), pending, cap(b.data), b.limit)
	if err != nil {
		return nil, err
	}
	if newCapacity == cap(b.data) {
		return b.data, nil
	}
	grown := make([]T, len(b.data), newCapacity)
	copy(grown, b.data)
	return grown, nil
}

func (b *buffer[T]) adopt(data []T) {
	if len(data) != len(b.data) {
		fatalf("adopting storage of length %d into a buffer of length %d", len(data), len(b.data))
	}
	b.data = data
}

// Append one element. Room must already have been reserved.
func (b *buffer[T]) push(v T) {
	if len(b.data) == cap(b.data) {
		fatalf("push onto a full buffer (capacity %d)", cap(b.data))
	}
	b.data = append(b.data, v)
}

func (b *buffer[T]) at(i int) T {
	return b.data[i]
}

// Forget everything after the first n elements, keeping the capacity.
func (b *buffer[T]) truncate(n int) {
	b.data = b.data[:n]
}

func (b *buffer[T]) release() {
	b.data = nil
}

// A copy of the used slots, safe to hand out.
func (b *buffer[T]) snapshot() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}
