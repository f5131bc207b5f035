package chunklist

import "iter"

// Iter is a linear iterator over a span of the list, built from a
// (head, tail, remaining) snapshot taken at construction. It is independent
// of any cursor.
//
// Next consumes from the head side and NextBack from the tail side; both
// decrement the shared remaining count, so the two directions can be
// interleaved freely without either over-running the other.
//
// The iterator borrows the list's nodes. Mutating the list while an Iter is
// in use is caller error.
type Iter[T any] struct {
	head *node[T]
	tail *node[T]
	n    int
	rev  bool
}

// Iter returns an iterator over the whole list, front to back.
func (l *List[T]) Iter() *Iter[T] {
	l.mustBeUsable()
	return &Iter[T]{head: l.head, tail: l.tail, n: l.len}
}

// Next returns a pointer to the next element and advances the iterator, or
// false when the span is exhausted.
func (it *Iter[T]) Next() (*T, bool) {
	if it.n == 0 {
		return nil, false
	}
	if it.rev {
		return it.popBack(), true
	}
	return it.popFront(), true
}

// NextBack returns a pointer to the next element from the opposite end and
// shrinks the span from that side, or false when the span is exhausted.
func (it *Iter[T]) NextBack() (*T, bool) {
	if it.n == 0 {
		return nil, false
	}
	if it.rev {
		return it.popFront(), true
	}
	return it.popBack(), true
}

func (it *Iter[T]) popFront() *T {
	v := &it.head.value
	it.head = it.head.next
	it.n--
	return v
}

func (it *Iter[T]) popBack() *T {
	v := &it.tail.value
	it.tail = it.tail.prev
	it.n--
	return v
}

// Len returns the number of elements the iterator has left. O(1).
func (it *Iter[T]) Len() int {
	return it.n
}

// Last returns the final element Next would yield, without advancing, or
// false if the span is exhausted. O(1).
func (it *Iter[T]) Last() (*T, bool) {
	if it.n == 0 {
		return nil, false
	}
	if it.rev {
		return &it.head.value, true
	}
	return &it.tail.value, true
}

// Rev returns a copy of the iterator with its direction reversed. The
// receiver is not modified.
func (it *Iter[T]) Rev() *Iter[T] {
	r := *it
	r.rev = !r.rev
	return &r
}

// Seq adapts the iterator's remaining span to a range-over-func sequence of
// element pointers, consuming the iterator as it goes.
func (it *Iter[T]) Seq() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All returns a range-over-func sequence of the list's elements, front to
// back. The list must not be mutated during the loop.
func (l *List[T]) All() iter.Seq[T] {
	l.mustBeUsable()
	return func(yield func(T) bool) {
		n := l.head
		for range l.len {
			if !yield(n.value) {
				return
			}
			n = n.next
		}
	}
}

// Backward returns a range-over-func sequence of the list's elements, back
// to front. The list must not be mutated during the loop.
func (l *List[T]) Backward() iter.Seq[T] {
	l.mustBeUsable()
	return func(yield func(T) bool) {
		n := l.tail
		for range l.len {
			if !yield(n.value) {
				return
			}
			n = n.prev
		}
	}
}

// Drain is an owning iterator: it holds the drained list's chunks so the
// nodes stay valid, hands out values by move, and zeroes each slot as it is
// consumed. Close releases whatever was not consumed along with all chunk
// memory; a fully drained Drain may skip Close, but calling it is always
// safe.
type Drain[T any] struct {
	head   *node[T]
	tail   *node[T]
	n      int
	chunks [][]node[T]
}

// Drain empties the list and returns an owning iterator over its elements in
// order. All chunk ownership moves to the iterator: the list is left valid
// and empty with zero capacity, like the source list after an Append.
func (l *List[T]) Drain() *Drain[T] {
	l.mustBeUsable()
	d := &Drain[T]{
		head:   l.head,
		tail:   l.tail,
		n:      l.len,
		chunks: l.chunks,
	}
	l.head = nil
	l.tail = nil
	l.len = 0
	l.free = nil
	l.chunks = nil
	l.capacity = 0
	return d
}

// Next moves the next value out of the front of the remaining span, or
// returns false when it is exhausted.
func (d *Drain[T]) Next() (T, bool) {
	if d.n == 0 {
		var zero T
		return zero, false
	}
	n := d.head
	d.head = n.next
	d.n--
	return n.take(), true
}

// NextBack moves the next value out of the back of the remaining span, or
// returns false when it is exhausted.
func (d *Drain[T]) NextBack() (T, bool) {
	if d.n == 0 {
		var zero T
		return zero, false
	}
	n := d.tail
	d.tail = n.prev
	d.n--
	return n.take(), true
}

// Len returns the number of values left to drain. O(1).
func (d *Drain[T]) Len() int {
	return d.n
}

// Values returns a range-over-func sequence draining the remaining values.
func (d *Drain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := d.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Close zeroes every unconsumed slot and drops the chunk memory. The drain
// is exhausted afterwards.
func (d *Drain[T]) Close() {
	var zero T
	for ; d.n > 0; d.n-- {
		d.head.value = zero
		d.head = d.head.next
	}
	d.head = nil
	d.tail = nil
	d.chunks = nil
}
