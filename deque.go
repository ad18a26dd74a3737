// Package deque implements a double-ended queue backed by a single
// contiguous circular buffer. Pushing and popping at either end is amortized
// O(1): the buffer doubles when full and halves when occupancy drops to a
// quarter, so no operation sequence pays more than a constant per element.
//
// A Deque has value-like semantics through explicit copies: Clone, CopyFrom,
// ConcatCopy, and Flip always produce an independent buffer. It is not safe
// for concurrent use; callers must synchronize externally.
package deque

import (
	"fmt"
	"iter"
	"strings"
)

// Deque is a double-ended queue over a circular buffer of exact capacity.
//
// Capacity grows by doubling (never less than 1) when a push finds the
// buffer full, and halves when a pop finds occupancy at a quarter of
// capacity, so capacity tracks the working set geometrically in both
// directions. Construction from a slice allocates exactly len(s); in-place
// concatenation that must grow allocates exactly the combined length.
//
// The zero value is an empty Deque with no storage and is ready to use,
// as is New. PopFront and PopBack on an empty Deque return the zero value
// of T rather than failing; see their comments.
type Deque[T any] struct {
	buf   []T
	begin int // physical index of the first live element
	end   int // one past the last live element, wrapped
	count int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New returns an empty Deque with no backing storage. The first push
// allocates.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// FromSlice copies every element of s into a freshly allocated Deque whose
// capacity is exactly len(s). The slice is not retained and memory is not
// shared. An empty or nil slice yields an empty Deque with no storage.
func FromSlice[T any](s []T) *Deque[T] {
	d := &Deque[T]{}
	if len(s) == 0 {
		return d
	}
	d.buf = make([]T, len(s))
	copy(d.buf, s)
	d.count = len(s)
	// The buffer is full, so end wraps back onto begin; count disambiguates
	// full from empty.
	d.end = d.count % len(d.buf)
	return d
}

// Clone returns an independent copy of d. The copy's capacity is exactly
// d.Len() and its elements are unwrapped to the front of the new buffer.
// Mutating the copy never affects d.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{}
	if d.Len() == 0 {
		return c
	}
	c.buf = make([]T, d.count)
	a, b := d.slices()
	n := copy(c.buf, a)
	copy(c.buf[n:], b)
	c.count = d.count
	c.end = c.count % len(c.buf)
	return c
}

// CopyFrom replaces the receiver's contents with an independent copy of src,
// in the manner of copy-and-swap assignment: the receiver takes ownership of
// a fresh buffer holding src's elements and releases its old one to the
// garbage collector. Afterward d and src share no storage.
func (d *Deque[T]) CopyFrom(src *Deque[T]) {
	*d = *src.Clone()
}

/*****************************************************************************
 * QUERIES
 *****************************************************************************/

// Len returns the number of elements in the Deque, or 0 if d is nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.count
}

// Cap returns the current capacity of the backing buffer.
func (d *Deque[T]) Cap() int { return len(d.buf) }

// Empty returns whether the Deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.count == 0 }

// Full returns whether the Deque is at capacity. Pushing to a full Deque
// reallocates.
func (d *Deque[T]) Full() bool { return d.count == len(d.buf) }

// Front returns the first element without removing it. The second return is
// false when the Deque is empty.
func (d *Deque[T]) Front() (t T, ok bool) {
	if d.count == 0 {
		return
	}
	return d.buf[d.begin], true
}

// Back returns the last element without removing it. The second return is
// false when the Deque is empty.
func (d *Deque[T]) Back() (t T, ok bool) {
	if d.count == 0 {
		return
	}
	return d.buf[step(d.end, -1, len(d.buf))], true
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// PushBack appends v after the last element, growing the buffer to twice its
// capacity first if it is full (to capacity 1 from no storage).
func (d *Deque[T]) PushBack(v T) {
	if d.count == len(d.buf) {
		d.grow()
	}
	d.buf[d.end] = v
	d.end = step(d.end, 1, len(d.buf))
	d.count++
}

// PushFront prepends v before the first element, growing the buffer to twice
// its capacity first if it is full (to capacity 1 from no storage).
func (d *Deque[T]) PushFront(v T) {
	if d.count == len(d.buf) {
		d.grow()
	}
	d.begin = step(d.begin, -1, len(d.buf))
	d.buf[d.begin] = v
	d.count++
}

// PopBack removes and returns the last element. On an empty Deque it returns
// the zero value of T and mutates nothing; it does not report the
// underflow, so a caller that must distinguish "was empty" from "stored
// zero" has to check Empty first or peek with Back. If occupancy has fallen
// to a quarter of capacity, the buffer is halved before the element is
// removed.
//
// The popped slot is not zeroed; for element types holding references the
// buffer keeps the last reference alive until it is overwritten or cleared.
func (d *Deque[T]) PopBack() T {
	var zero T
	if d.count == 0 {
		return zero
	}
	if d.count == len(d.buf)/4 {
		d.reallocate(len(d.buf) / 2)
	}
	d.end = step(d.end, -1, len(d.buf))
	v := d.buf[d.end]
	d.count--
	return v
}

// PopFront removes and returns the first element. It has the same empty
// behavior, shrink trigger, and reference caveat as PopBack.
func (d *Deque[T]) PopFront() T {
	var zero T
	if d.count == 0 {
		return zero
	}
	if d.count == len(d.buf)/4 {
		d.reallocate(len(d.buf) / 2)
	}
	v := d.buf[d.begin]
	d.begin = step(d.begin, 1, len(d.buf))
	d.count--
	return v
}

// Clear removes every element, zeroing each live slot so that references
// held by the elements become collectable. Capacity is retained.
func (d *Deque[T]) Clear() {
	var zero T
	for i := 0; i < d.count; i++ {
		d.buf[d.wrap(i)] = zero
	}
	d.begin, d.end, d.count = 0, 0, 0
}

// At returns the element at logical position i, where position 0 is the
// front. Panics if i is out of bounds, including any i on an empty Deque.
func (d *Deque[T]) At(i int) T {
	d.checkBounds(i)
	return d.buf[d.wrap(i)]
}

// Set writes v to logical position i. Panics if i is out of bounds.
func (d *Deque[T]) Set(i int, v T) {
	d.checkBounds(i)
	d.buf[d.wrap(i)] = v
}

// Swap exchanges the elements at logical positions i and j. Panics if either
// is out of bounds.
func (d *Deque[T]) Swap(i, j int) {
	d.checkBounds(i)
	d.checkBounds(j)
	pi, pj := d.wrap(i), d.wrap(j)
	d.buf[pi], d.buf[pj] = d.buf[pj], d.buf[pi]
}

// Concat appends every element of rhs, in order, after d's last element,
// mutating d in place. If the combined length exceeds d's capacity, the
// buffer is reallocated to exactly the combined length. rhs is unchanged
// (d.Concat(d) is valid and doubles the contents). Returns d for chaining.
func (d *Deque[T]) Concat(rhs *Deque[T]) *Deque[T] {
	if rhs.Len() == 0 {
		return d
	}
	n := rhs.count
	total := d.count + n
	if total > len(d.buf) {
		d.reallocate(total)
	}
	for i := 0; i < n; i++ {
		d.buf[step(d.end, i, len(d.buf))] = rhs.buf[rhs.wrap(i)]
	}
	d.end = step(d.end, n, len(d.buf))
	d.count = total
	return d
}

// ConcatCopy returns a new Deque holding d's elements followed by rhs's.
// Neither operand is mutated.
func (d *Deque[T]) ConcatCopy(rhs *Deque[T]) *Deque[T] {
	return d.Clone().Concat(rhs)
}

// Reverse reverses the element order in place with a two-pointer swap over
// logical positions. No-op when the Deque holds fewer than two elements.
// Returns d for chaining.
func (d *Deque[T]) Reverse() *Deque[T] {
	for i, j := 0, d.count-1; i < j; i, j = i+1, j-1 {
		pi, pj := d.wrap(i), d.wrap(j)
		d.buf[pi], d.buf[pj] = d.buf[pj], d.buf[pi]
	}
	return d
}

// Flip returns an independent reversed copy of d. The receiver is unchanged.
func (d *Deque[T]) Flip() *Deque[T] {
	return d.Clone().Reverse()
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// ToSlice allocates a slice holding every element in logical order and
// copies them. The slice shares no memory with the Deque.
func (d *Deque[T]) ToSlice() []T {
	s := make([]T, d.Len())
	a, b := d.slices()
	n := copy(s, a)
	copy(s[n:], b)
	return s
}

// Equal reports whether both Deques hold the same elements in the same
// order. It must not be a method, otherwise Deque would be constrained to
// comparable elements. A nil Deque compares equal to an empty one: only
// logical contents matter.
func Equal[T comparable](a, b *Deque[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// String renders the elements in logical order, space-separated, with no
// structural metadata. It exists for diagnostics, not serialization.
func (d *Deque[T]) String() string {
	var sb strings.Builder
	a, b := d.slices()
	for _, run := range [2][]T{a, b} {
		for _, v := range run {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v", v)
		}
	}
	return sb.String()
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over values in logical order. If you need
// indexes, use All instead. The Deque must not be modified during iteration.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		a, b := d.slices()
		for _, v := range a {
			if !yield(v) {
				return
			}
		}
		for _, v := range b {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over position-value pairs in logical order. The
// Deque must not be modified during iteration.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := d.slices()
		for i, v := range a {
			if !yield(i, v) {
				return
			}
		}
		for i, v := range b {
			if !yield(i+len(a), v) {
				return
			}
		}
	}
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// step moves i by delta slots around a buffer of the given capacity,
// wrapping in both directions. This is the single wrap-around helper behind
// every index move: Go's % preserves the sign of the dividend, so the
// decrement form needs the extra +capacity to stay in [0, capacity).
func step(i, delta, capacity int) int {
	return ((i+delta)%capacity + capacity) % capacity
}

// wrap maps logical position i to its physical slot.
func (d *Deque[T]) wrap(i int) int {
	return (d.begin + i) % len(d.buf)
}

// slices returns the live elements as at most two contiguous runs in
// logical order, so copy loops and iteration can work on plain slices.
func (d *Deque[T]) slices() (a, b []T) {
	if d == nil || d.count == 0 {
		return nil, nil
	}
	if d.begin+d.count <= len(d.buf) {
		return d.buf[d.begin : d.begin+d.count], nil
	}
	return d.buf[d.begin:], d.buf[:d.end]
}

func (d *Deque[T]) grow() {
	if c := len(d.buf); c > 0 {
		d.reallocate(c * 2)
	} else {
		d.reallocate(1)
	}
}

// reallocate moves the Deque to a buffer of exactly the given capacity,
// un-wrapping the live elements to the front so begin is 0 afterward.
// Capacity 0 resets to the no-storage state. Callers guarantee the live
// elements fit.
func (d *Deque[T]) reallocate(capacity int) {
	if capacity == 0 {
		*d = Deque[T]{}
		return
	}
	buf := make([]T, capacity)
	a, b := d.slices()
	n := copy(buf, a)
	copy(buf[n:], b)
	d.buf = buf
	d.begin = 0
	d.end = d.count % capacity
}

func (d *Deque[T]) checkBounds(i int) {
	if i < 0 || i >= d.count {
		panic(fmt.Sprintf("deque: index %d out of bounds with length %d", i, d.count))
	}
}
