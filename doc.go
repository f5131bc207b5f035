// Package chunklist implements a doubly linked list whose nodes are
// allocated in large contiguous chunks.
//
// # Overview
//
// A normal linked list pays one allocation per node and scatters nodes
// across the heap. A chunklist.List instead requests chunks of many node
// slots at a time (64 by default) and recycles freed slots through an
// internal free list, which reduces allocation overhead and keeps
// neighbouring nodes close together in memory. Nodes never move once
// allocated, so element pointers and cursors stay valid until the element is
// removed. Memory is only returned to the runtime when the whole list is
// released or dropped; this is the deliberate trade-off for chunked
// allocation.
//
// # Basic Usage
//
//	list := chunklist.New[int]()
//	list.PushBack(2)
//	list.PushBack(3)
//	list.PushFront(1)
//
//	for v := range list.All() {
//		fmt.Println(v) // 1, 2, 3
//	}
//
//	front, _ := list.PopFront() // 1
//
// # Cursors and Iterators
//
// Beyond access at the two ends, the interior of the list is reached with an
// iterator or a cursor. Use an Iter (or the All/Backward sequences) to see
// every element once; use a Cursor to move back and forth from a position.
// A MutCursor additionally supports O(1) insertion and removal at its
// position. The list can also be transformed in bulk with Retain, RetainMut
// and RetainMap.
//
// # Thread Safety
//
// A List has no internal synchronization. It may be handed off between
// goroutines as a unit, and concurrent reads are fine, but any mutation must
// be exclusive: no other read or write may run at the same time, and only
// one MutCursor may be in use at a time. Enforcing this is the caller's
// responsibility.
//
// # Performance Characteristics
//
//   - PushBack/PushFront/PopBack/PopFront: O(1) amortized, O(chunk size)
//     when a chunk must be allocated
//   - Cursor insert/remove/swap: O(1)
//   - Append: O(1) for the elements; bookkeeping walks the shorter chunk
//     list and the shorter free list
//   - Retain/RetainMut/RetainMap: one O(len) pass, no allocation
//   - Clear: O(len), capacity preserved
//
// # Metrics
//
// Metrics returns a snapshot of the slot accounting:
//
//	m := list.Metrics()
//	fmt.Printf("%d/%d slots live (%.0f%%), %d chunks\n",
//		m.Len, m.Capacity, m.Utilization*100, m.NumChunks)
package chunklist
