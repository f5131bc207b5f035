package chunklist

// DefaultChunkSize is the number of node slots allocated per chunk when no
// other chunk size has been configured.
const DefaultChunkSize = 64

// node is one slot inside a chunk. A slot is either live (linked into the
// list between head and tail) or free (linked into the free list through its
// next field only; prev and value are then unspecified).
type node[T any] struct {
	next  *node[T]
	prev  *node[T]
	value T
}

// take moves the value out of the slot, leaving the slot zeroed so the
// garbage collector does not retain whatever the value referenced.
func (n *node[T]) take() T {
	v := n.value
	var zero T
	n.value = zero
	return v
}

// List is a doubly linked list whose nodes are allocated in large chunks
// instead of one at a time. Slots freed by pops and removals are recycled
// through an internal free list; memory is only given back to the runtime by
// Release, Drain or by dropping the whole list.
//
// Compared to a per-node-allocated list this trades individual deallocation
// for fewer allocations and better locality. All classic list operations
// keep their usual complexity: O(1) push/pop at either end and O(1)
// insert/remove at a cursor.
//
// The zero value is an empty list with chunk size DefaultChunkSize, ready to
// use. A List is not safe for concurrent use; it may be handed off between
// goroutines as a whole, but simultaneous accesses must be guarded by the
// caller.
type List[T any] struct {
	head      *node[T]
	tail      *node[T]
	len       int
	capacity  int
	chunkSize int
	chunks    [][]node[T]
	free      *node[T]
	released  bool
}

// New creates an empty List with chunk size DefaultChunkSize.
func New[T any]() *List[T] {
	return &List[T]{}
}

// WithCapacity creates an empty List and makes a single allocation with the
// specified number of node slots.
func WithCapacity[T any](capacity int) *List[T] {
	l := New[T]()
	l.allocate(capacity)
	return l
}

// PushBack adds value at the back of the list. O(1), unless the free list is
// empty, in which case one chunk of ChunkSize slots is allocated first.
func (l *List[T]) PushBack(value T) {
	l.mustBeUsable()
	n := l.newNode(nil, l.tail, value)
	if l.head == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

// PushFront adds value at the front of the list. O(1), unless the free list
// is empty, in which case one chunk of ChunkSize slots is allocated first.
func (l *List[T]) PushFront(value T) {
	l.mustBeUsable()
	n := l.newNode(l.head, nil, value)
	if l.tail == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.len++
}

// Front returns a pointer to the front element, or nil if the list is empty.
// The pointer stays valid until the element is removed from the list.
func (l *List[T]) Front() *T {
	l.mustBeUsable()
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// Back returns a pointer to the back element, or nil if the list is empty.
// The pointer stays valid until the element is removed from the list.
func (l *List[T]) Back() *T {
	l.mustBeUsable()
	if l.tail == nil {
		return nil
	}
	return &l.tail.value
}

// PopFront removes and returns the front element. The second return is false
// if the list is empty. O(1); the slot goes back on the free list.
func (l *List[T]) PopFront() (T, bool) {
	l.mustBeUsable()
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.tail == n {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.len--
	value := n.take()
	l.discardNode(n)
	return value, true
}

// PopBack removes and returns the back element. The second return is false
// if the list is empty. O(1); the slot goes back on the free list.
func (l *List[T]) PopBack() (T, bool) {
	l.mustBeUsable()
	if l.tail == nil {
		var zero T
		return zero, false
	}
	n := l.tail
	l.tail = n.prev
	if l.head == n {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	l.len--
	value := n.take()
	l.discardNode(n)
	return value, true
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// Capacity returns the number of elements the list can hold without
// allocating.
func (l *List[T]) Capacity() int {
	return l.capacity
}

// ChunkSize returns the minimum size of future chunk allocations.
func (l *List[T]) ChunkSize() int {
	if l.chunkSize == 0 {
		return DefaultChunkSize
	}
	return l.chunkSize
}

// SetChunkSize changes the size of future chunk allocations. It has no
// effect on chunks already allocated. Panics if n is not positive.
func (l *List[T]) SetChunkSize(n int) {
	if n <= 0 {
		panic("chunklist: chunk size must be positive")
	}
	l.chunkSize = n
}

// Reserve ensures there is capacity for at least additional more elements.
// To avoid frequent small allocations it never allocates less than one
// chunk's worth of slots.
func (l *List[T]) Reserve(additional int) {
	l.mustBeUsable()
	free := l.capacity - l.len
	if free >= additional {
		return
	}
	toAllocate := additional - free
	if chunkSize := l.ChunkSize(); toAllocate < chunkSize {
		l.allocate(chunkSize)
	} else {
		l.allocate(toAllocate)
	}
}

// ReserveExact ensures there is capacity for at least additional more
// elements, allocating exactly the shortfall with no rounding up to the
// chunk size.
func (l *List[T]) ReserveExact(additional int) {
	l.mustBeUsable()
	free := l.capacity - l.len
	if free >= additional {
		return
	}
	l.allocate(additional - free)
}

// Clear removes all elements. Capacity is preserved: every slot moves to the
// free list and no chunk is released. O(len).
func (l *List[T]) Clear() {
	l.mustBeUsable()
	if l.tail == nil {
		return
	}
	tail := l.tail

	// Splice the whole live chain onto the free list in one step; the free
	// list is singly linked through next, so the prev links can stay stale.
	tail.next = l.free
	l.free = l.head
	l.head = nil
	l.tail = nil
	l.len = 0

	var zero T
	for n := tail; n != nil; n = n.prev {
		n.value = zero
	}
}

// Release zeroes every live element, drops all chunks and makes the list
// unusable. Capacity becomes zero. Any later operation panics, except pure
// size queries such as Len, Capacity and Metrics. Lists that simply go out of
// scope do not need Release; it exists for callers that want the backing
// memory returned to the runtime eagerly.
func (l *List[T]) Release() {
	var zero T
	for n := l.head; n != nil; n = n.next {
		n.value = zero
	}
	l.head = nil
	l.tail = nil
	l.len = 0
	l.free = nil
	l.chunks = nil
	l.capacity = 0
	l.released = true
}

// Append moves all elements of other to the back of l. The two chains are
// spliced in O(1); no element is visited. Ownership of other's chunks and
// spare capacity moves to l, so l's capacity grows by exactly
// other.Capacity(). Merging the bookkeeping walks the shorter of the two
// chunk lists and the shorter of the two free lists.
//
// After the call other is a valid empty list with zero capacity and zero
// chunks. Panics if other is l itself.
func (l *List[T]) Append(other *List[T]) {
	l.mustBeUsable()
	other.mustBeUsable()
	if l == other {
		panic("chunklist: cannot append a list to itself")
	}

	// Free-list lengths, before any bookkeeping moves.
	freeSelf := l.capacity - l.len
	freeOther := other.capacity - other.len

	if l.head == nil {
		l.head = other.head
		l.tail = other.tail
		l.len = other.len
	} else if other.head != nil {
		l.tail.next = other.head
		other.head.prev = l.tail
		l.tail = other.tail
		l.len += other.len
	}

	// Extend the longer chunk list with the shorter one.
	if len(l.chunks) < len(other.chunks) {
		l.chunks, other.chunks = other.chunks, l.chunks
	}
	l.chunks = append(l.chunks, other.chunks...)
	other.chunks = nil

	// Concatenate the free lists, walking only the shorter one. The shorter
	// list ends up in front of the longer one.
	if freeSelf < freeOther {
		l.free, other.free = other.free, l.free
	}
	if other.free != nil {
		last := other.free
		for last.next != nil {
			last = last.next
		}
		last.next = l.free
		l.free = other.free
		other.free = nil
	}

	l.capacity += other.capacity
	other.head = nil
	other.tail = nil
	other.len = 0
	other.capacity = 0
}

// Retain removes every element for which f returns false, preserving the
// order of the kept elements. Single O(len) pass.
//
// The panic policy of RetainMap applies.
func (l *List[T]) Retain(f func(T) bool) {
	l.RetainMap(func(v T) (T, bool) {
		return v, f(v)
	})
}

// RetainMut is Retain with a predicate that may mutate the element in place
// before the keep/discard decision.
//
// The panic policy of RetainMap applies.
func (l *List[T]) RetainMut(f func(*T) bool) {
	l.RetainMap(func(v T) (T, bool) {
		keep := f(&v)
		return v, keep
	})
}

// RetainMap applies f to every element in order, in a single O(len) pass.
// The element's value is moved out of its slot and passed to f; if f returns
// true the returned value is written back and the node stays live, otherwise
// the slot is discarded to the free list. Order is preserved and the pass
// never allocates or deallocates.
//
// If f panics the list is left valid but empty-consistent: elements already
// decided are committed or discarded, and the unvisited remainder of the old
// chain is abandoned without zeroing its slots. Abandoned slots stay counted
// in capacity but cannot be reused until the list is dropped. No chunk is
// leaked either way, since chunk ownership is not touched by the pass.
func (l *List[T]) RetainMap(f func(T) (T, bool)) {
	l.mustBeUsable()
	if l.IsEmpty() {
		return
	}
	ptr := l.head

	// Logically empty the list before running any callback. A panic in f
	// abandons the rest of the old chain instead of leaving a half-linked
	// list behind. Capacity is left alone: the pass neither allocates nor
	// deallocates, and slots discarded before a panic must stay covered by
	// it so that len never exceeds capacity once they are reused.
	l.head = nil
	l.tail = nil
	l.len = 0

	var newHead, lastRetain *node[T]
	retained := 0

	for ptr != nil {
		next := ptr.next
		value, keep := f(ptr.take())
		if keep {
			ptr.value = value
			if lastRetain == nil {
				newHead = ptr
			} else {
				lastRetain.next = ptr
			}
			ptr.prev = lastRetain
			lastRetain = ptr
			retained++
		} else {
			l.discardNode(ptr)
		}
		ptr = next
	}

	if lastRetain != nil {
		lastRetain.next = nil
	}
	l.head = newHead
	l.tail = lastRetain
	l.len = retained
}

// Clone returns a list holding a copy of every element, in order, backed by
// a single fresh allocation.
func (l *List[T]) Clone() *List[T] {
	return l.CloneFunc(func(v T) T { return v })
}

// CloneFunc is Clone with an explicit per-element copy function, for element
// types that are not safe to copy by assignment.
func (l *List[T]) CloneFunc(copyValue func(T) T) *List[T] {
	out := WithCapacity[T](l.len)
	out.chunkSize = l.chunkSize
	for n := l.head; n != nil; n = n.next {
		out.PushBack(copyValue(n.value))
	}
	return out
}

// unlink removes a live node from the chain and fixes head/tail. The slot is
// not discarded; that is the caller's job.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	l.len--
}

// newNode pops a slot off the free list, growing the arena by one chunk if
// the free list is empty, and initializes it. Amortized O(1); O(ChunkSize)
// on the allocating call.
func (l *List[T]) newNode(next, prev *node[T], value T) *node[T] {
	if l.free == nil {
		l.allocate(l.ChunkSize())
	}
	n := l.free
	l.free = n.next
	n.next = next
	n.prev = prev
	n.value = value
	return n
}

// discardNode pushes a slot onto the head of the free list. The caller must
// already have unlinked the node and moved or zeroed its value.
func (l *List[T]) discardNode(n *node[T]) {
	n.next = l.free
	l.free = n
}

// mustBeUsable panics if the list has been released. Every exported
// operation calls it on entry; size queries like Len and Capacity stay safe
// because a released list reports zero for both.
func (l *List[T]) mustBeUsable() {
	if l.released {
		panic("chunklist: use after Release")
	}
}

// allocate requests one chunk of exactly amount slots and pushes them all
// onto the free list. The slots are pushed in reverse index order so that
// sequential consumption hands them out at ascending addresses, which keeps
// append-heavy workloads cache friendly. No-op when amount is zero.
func (l *List[T]) allocate(amount int) {
	if amount == 0 {
		return
	}
	l.mustBeUsable()
	chunk := make([]node[T], amount)
	l.chunks = append(l.chunks, chunk)
	l.capacity += amount

	for i := amount - 1; i >= 0; i-- {
		chunk[i].next = l.free
		l.free = &chunk[i]
	}
}
