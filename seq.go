package chunklist

import "iter"

// Collect builds a list from a sequence. sizeHint pre-sizes the arena and is
// best effort: under- and over-estimates only affect how many chunks get
// allocated, never correctness. Pass 0 when no hint is available.
func Collect[T any](seq iter.Seq[T], sizeHint int) *List[T] {
	var l *List[T]
	if sizeHint > 0 {
		l = WithCapacity[T](sizeHint)
	} else {
		l = New[T]()
	}
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// FromSlice builds a list holding the slice's values in order, backed by a
// single allocation.
func FromSlice[T any](values []T) *List[T] {
	l := WithCapacity[T](len(values))
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Extend pushes every value of the sequence onto the back of the list.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.PushBack(v)
	}
}

// ExtendSlice pushes every value of the slice onto the back of the list,
// reserving the needed capacity up front.
func (l *List[T]) ExtendSlice(values []T) {
	l.Reserve(len(values))
	for _, v := range values {
		l.PushBack(v)
	}
}

// ToSlice copies the list's elements into a new slice, front to back.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
