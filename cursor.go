package chunklist

// Cursor is a read-only position handle into a list. It always points at a
// valid element and carries that element's index, so stepping never needs to
// count from an end.
//
// A Cursor is a small value and may be copied freely. It stays valid as long
// as the element it points at stays in the list; structural mutation of the
// list through other handles invalidates it silently, which the caller must
// rule out (see the package concurrency and aliasing notes).
type Cursor[T any] struct {
	node  *node[T]
	index int
}

// CursorFront returns a cursor at the front element. The second return is
// false if the list is empty.
func (l *List[T]) CursorFront() (Cursor[T], bool) {
	l.mustBeUsable()
	if l.head == nil {
		return Cursor[T]{}, false
	}
	return Cursor[T]{node: l.head, index: 0}, true
}

// CursorBack returns a cursor at the back element. The second return is
// false if the list is empty.
func (l *List[T]) CursorBack() (Cursor[T], bool) {
	l.mustBeUsable()
	if l.tail == nil {
		return Cursor[T]{}, false
	}
	return Cursor[T]{node: l.tail, index: l.len - 1}, true
}

// Next returns a cursor one step toward the back, or false if this is the
// back element.
func (c Cursor[T]) Next() (Cursor[T], bool) {
	next := c.node.next
	if next == nil {
		return Cursor[T]{}, false
	}
	return Cursor[T]{node: next, index: c.index + 1}, true
}

// Prev returns a cursor one step toward the front, or false if this is the
// front element.
func (c Cursor[T]) Prev() (Cursor[T], bool) {
	prev := c.node.prev
	if prev == nil {
		return Cursor[T]{}, false
	}
	return Cursor[T]{node: prev, index: c.index - 1}, true
}

// Get returns a pointer to the element the cursor points at.
func (c Cursor[T]) Get() *T {
	return &c.node.value
}

// Index returns the position of the cursor in the list; the front element
// has index zero and the back element has index Len()-1.
func (c Cursor[T]) Index() int {
	return c.index
}

// IsFront reports whether the cursor points at the front element.
func (c Cursor[T]) IsFront() bool {
	return c.node.prev == nil
}

// IsBack reports whether the cursor points at the back element.
func (c Cursor[T]) IsBack() bool {
	return c.node.next == nil
}

// PtrEq reports whether two cursors point at the same node. It compares node
// identity only, not values or indices; cursors from different lists are
// never equal even when their indices match.
func (c Cursor[T]) PtrEq(other Cursor[T]) bool {
	return c.node == other.node
}

// MutCursor is a position handle that can mutate the list around itself:
// O(1) insertion and removal next to the current element, and in-place value
// swaps. It holds the owning list, and the list must not be mutated through
// anything else while the cursor is in use; Go cannot enforce that
// exclusivity, so it is part of the caller contract.
//
// Remove and the iterator extractions consume the cursor. A consumed cursor
// panics on any further use.
type MutCursor[T any] struct {
	list  *List[T]
	node  *node[T]
	index int
}

// MutCursorFront returns a mutable cursor at the front element. The second
// return is false if the list is empty.
func (l *List[T]) MutCursorFront() (*MutCursor[T], bool) {
	l.mustBeUsable()
	if l.head == nil {
		return nil, false
	}
	return &MutCursor[T]{list: l, node: l.head, index: 0}, true
}

// MutCursorBack returns a mutable cursor at the back element. The second
// return is false if the list is empty.
func (l *List[T]) MutCursorBack() (*MutCursor[T], bool) {
	l.mustBeUsable()
	if l.tail == nil {
		return nil, false
	}
	return &MutCursor[T]{list: l, node: l.tail, index: l.len - 1}, true
}

func (c *MutCursor[T]) mustBeLive() {
	if c.node == nil {
		panic("chunklist: use of consumed MutCursor")
	}
}

// GoNext moves the cursor one step toward the back. Returns false, without
// moving, if this is the back element.
func (c *MutCursor[T]) GoNext() bool {
	c.mustBeLive()
	next := c.node.next
	if next == nil {
		return false
	}
	c.node = next
	c.index++
	return true
}

// GoPrev moves the cursor one step toward the front. Returns false, without
// moving, if this is the front element.
func (c *MutCursor[T]) GoPrev() bool {
	c.mustBeLive()
	prev := c.node.prev
	if prev == nil {
		return false
	}
	c.node = prev
	c.index--
	return true
}

// Get returns a pointer to the element the cursor points at.
func (c *MutCursor[T]) Get() *T {
	c.mustBeLive()
	return &c.node.value
}

// Index returns the position of the cursor in the list; the front element
// has index zero and the back element has index Len()-1.
func (c *MutCursor[T]) Index() int {
	c.mustBeLive()
	return c.index
}

// IsFront reports whether the cursor points at the front element.
func (c *MutCursor[T]) IsFront() bool {
	c.mustBeLive()
	return c.node.prev == nil
}

// IsBack reports whether the cursor points at the back element.
func (c *MutCursor[T]) IsBack() bool {
	c.mustBeLive()
	return c.node.next == nil
}

// InsertNext splices a new element directly after the cursor in O(1). The
// cursor does not move and its index is unchanged; the new element gets
// index Index()+1.
func (c *MutCursor[T]) InsertNext(value T) {
	c.mustBeLive()
	next := c.node.next
	n := c.list.newNode(next, c.node, value)
	c.node.next = n
	if next == nil {
		c.list.tail = n
	} else {
		next.prev = n
	}
	c.list.len++
}

// InsertPrev splices a new element directly before the cursor in O(1). The
// cursor does not move, but its index grows by one since a new element now
// precedes it; the new element gets index Index()-1.
func (c *MutCursor[T]) InsertPrev(value T) {
	c.mustBeLive()
	prev := c.node.prev
	n := c.list.newNode(c.node, prev, value)
	c.node.prev = n
	if prev == nil {
		c.list.head = n
	} else {
		prev.next = n
	}
	c.list.len++
	c.index++
}

// Remove unlinks the current element, returns its value and consumes the
// cursor. O(1); the slot goes back on the free list.
func (c *MutCursor[T]) Remove() T {
	c.mustBeLive()
	n := c.node
	c.list.unlink(n)
	value := n.take()
	c.list.discardNode(n)
	c.node = nil
	c.list = nil
	return value
}

// RemoveGoNext removes the current element like Remove, then moves the
// cursor to the next element, keeping the index unchanged since everything
// behind the removal shifted down by one. Returns false if the removed
// element was the back of the list, in which case the cursor is consumed.
func (c *MutCursor[T]) RemoveGoNext() (T, bool) {
	c.mustBeLive()
	n := c.node
	next := n.next
	c.list.unlink(n)
	value := n.take()
	c.list.discardNode(n)
	if next == nil {
		c.node = nil
		c.list = nil
		return value, false
	}
	c.node = next
	return value, true
}

// RemoveGoPrev removes the current element like Remove, then moves the
// cursor to the previous element, decrementing the index. Returns false if
// the removed element was the front of the list, in which case the cursor is
// consumed.
func (c *MutCursor[T]) RemoveGoPrev() (T, bool) {
	c.mustBeLive()
	n := c.node
	prev := n.prev
	c.list.unlink(n)
	value := n.take()
	c.list.discardNode(n)
	if prev == nil {
		c.node = nil
		c.list = nil
		return value, false
	}
	c.node = prev
	c.index--
	return value, true
}

// Swap replaces the current element's value and returns the old one. O(1),
// no allocation.
func (c *MutCursor[T]) Swap(value T) T {
	c.mustBeLive()
	old := c.node.value
	c.node.value = value
	return old
}

// IterToTail consumes the cursor and returns an iterator over the inclusive
// span from the cursor's position to the back of the list. The span length
// comes from the stored index, no traversal happens.
func (c *MutCursor[T]) IterToTail() *Iter[T] {
	c.mustBeLive()
	it := &Iter[T]{
		head: c.node,
		tail: c.list.tail,
		n:    c.list.len - c.index,
	}
	c.node = nil
	c.list = nil
	return it
}

// IterFromTail consumes the cursor and returns an iterator over the same
// span as IterToTail, walked from the back of the list toward the cursor.
func (c *MutCursor[T]) IterFromTail() *Iter[T] {
	return c.IterToTail().Rev()
}

// IterFromHead consumes the cursor and returns an iterator over the
// inclusive span from the front of the list to the cursor's position.
func (c *MutCursor[T]) IterFromHead() *Iter[T] {
	c.mustBeLive()
	it := &Iter[T]{
		head: c.list.head,
		tail: c.node,
		n:    c.index + 1,
	}
	c.node = nil
	c.list = nil
	return it
}

// IterToHead consumes the cursor and returns an iterator over the same span
// as IterFromHead, walked from the cursor toward the front of the list.
func (c *MutCursor[T]) IterToHead() *Iter[T] {
	return c.IterFromHead().Rev()
}
