package chunklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterForward(t *testing.T) {
	l := FromSlice([]int{0, 1, 2})
	it := l.Iter()
	assert.Equal(t, 3, it.Len())
	assert.Equal(t, []int{0, 1, 2}, collectIter(it))

	_, ok := it.Next()
	assert.False(t, ok, "exhausted iterator stays exhausted")
}

func TestIterBackward(t *testing.T) {
	l := FromSlice([]int{0, 1, 2})
	it := l.Iter()
	var out []int
	for {
		v, ok := it.NextBack()
		if !ok {
			break
		}
		out = append(out, *v)
	}
	assert.Equal(t, []int{2, 1, 0}, out)
}

// TestIterInterleaved consumes from both ends at once; the shared remaining
// count must keep the two sides from over-running each other.
func TestIterInterleaved(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4, 5})
	it := l.Iter()

	v, _ := it.Next()
	assert.Equal(t, 1, *v)
	v, _ = it.NextBack()
	assert.Equal(t, 5, *v)
	v, _ = it.Next()
	assert.Equal(t, 2, *v)
	v, _ = it.NextBack()
	assert.Equal(t, 4, *v)
	assert.Equal(t, 1, it.Len())

	v, _ = it.Next()
	assert.Equal(t, 3, *v)

	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.NextBack()
	assert.False(t, ok)
}

func TestIterLast(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it := l.Iter()

	last, ok := it.Last()
	require.True(t, ok)
	assert.Equal(t, 3, *last)
	assert.Equal(t, 3, it.Len(), "Last must not advance")

	it.Next()
	it.Next()
	it.Next()
	_, ok = it.Last()
	assert.False(t, ok)
}

func TestIterRev(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	it := l.Iter().Rev()
	assert.Equal(t, []int{3, 2, 1}, collectIter(it))

	// Rev returns a copy; the original direction is untouched.
	fwd := l.Iter()
	_ = fwd.Rev()
	v, _ := fwd.Next()
	assert.Equal(t, 1, *v)

	// Double reversal restores the direction.
	assert.Equal(t, []int{1, 2, 3}, collectIter(l.Iter().Rev().Rev()))

	// NextBack on a reversed iterator consumes from the front.
	rev := l.Iter().Rev()
	back, _ := rev.NextBack()
	assert.Equal(t, 1, *back)
	last, _ := rev.Last()
	assert.Equal(t, 2, *last)
}

func TestIterMutation(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	for it := l.Iter(); ; {
		v, ok := it.Next()
		if !ok {
			break
		}
		*v += 10
	}
	assert.Equal(t, []int{11, 12, 13}, l.ToSlice())
}

func TestIterSeq(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	var out []int
	for v := range l.Iter().Seq() {
		out = append(out, *v)
	}
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestAll(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	var out []int
	for v := range l.All() {
		out = append(out, v)
	}
	assert.Equal(t, []int{1, 2, 3}, out)

	// Early break must not touch anything past the break point.
	out = out[:0]
	for v := range l.All() {
		out = append(out, v)
		if len(out) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, out)
}

func TestBackward(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	var out []int
	for v := range l.Backward() {
		out = append(out, v)
	}
	assert.Equal(t, []int{3, 2, 1}, out)
}

func TestAllEmpty(t *testing.T) {
	l := New[int]()
	for range l.All() {
		t.Fatal("empty list must not yield")
	}
	for range l.Backward() {
		t.Fatal("empty list must not yield")
	}
}

func TestDrain(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	d := l.Drain()

	// The list is immediately empty with zero capacity, like the source of
	// an Append.
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Capacity())
	assert.Equal(t, 0, l.NumChunks())
	checkInvariants(t, l)

	assert.Equal(t, 3, d.Len())
	v, ok := d.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = d.NextBack()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	v, ok = d.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = d.Next()
	assert.False(t, ok)
	_, ok = d.NextBack()
	assert.False(t, ok)

	// The drained list is still usable and allocates fresh chunks.
	l.PushBack(9)
	assert.Equal(t, 9, *l.Front())
	checkInvariants(t, l)
}

func TestDrainReleasesLazily(t *testing.T) {
	v1, v2 := new(int), new(int)
	l := FromSlice([]*int{v1, v2})
	first := l.head

	d := l.Drain()
	_, ok := d.Next()
	require.True(t, ok)
	assert.Nil(t, first.value, "consumed slot must be zeroed")
}

func TestDrainClose(t *testing.T) {
	l := FromSlice([]*int{new(int), new(int), new(int)})
	nodes := []*node[*int]{l.head, l.head.next, l.head.next.next}

	d := l.Drain()
	d.Next()
	d.Close()

	assert.Equal(t, 0, d.Len())
	for _, n := range nodes {
		assert.Nil(t, n.value, "Close must zero unread slots")
	}

	_, ok := d.Next()
	assert.False(t, ok)
	d.Close() // second Close is harmless
}

func TestDrainValues(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	d := l.Drain()
	var out []int
	for v := range d.Values() {
		out = append(out, v)
	}
	assert.Equal(t, []int{1, 2, 3}, out)
}
