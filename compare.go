package chunklist

import (
	"cmp"
	"fmt"
	"strings"
)

// Equal reports whether two lists hold equal element sequences. Chunk
// layout, capacity and chunk size are not compared.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether two lists hold element sequences of the same
// length whose pairs all satisfy eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	nb := b.head
	for na := a.head; na != nil; na = na.next {
		if !eq(na.value, nb.value) {
			return false
		}
		nb = nb.next
	}
	return true
}

// Compare lexicographically compares the element sequences of two lists,
// like slices.Compare: elements are compared pairwise and, if one list is a
// prefix of the other, the shorter list is less.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	na, nb := a.head, b.head
	for na != nil && nb != nil {
		if c := cmp.Compare(na.value, nb.value); c != 0 {
			return c
		}
		na, nb = na.next, nb.next
	}
	return cmp.Compare(a.Len(), b.Len())
}

// String formats the element sequence the way fmt prints a slice.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}
