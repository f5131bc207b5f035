package chunklist

// FreeSlots returns the number of allocated slots currently on the free
// list, i.e. how many elements can be pushed without allocating.
func (l *List[T]) FreeSlots() int {
	return l.capacity - l.len
}

// NumChunks returns the number of chunks currently owned by the list.
func (l *List[T]) NumChunks() int {
	return len(l.chunks)
}

// Utilization returns the ratio of live slots to total capacity (0.0 to
// 1.0). Returns 0.0 if the list has no capacity.
func (l *List[T]) Utilization() float64 {
	if l.capacity == 0 {
		return 0
	}
	return float64(l.len) / float64(l.capacity)
}

// Metrics returns a snapshot of the list's slot accounting.
func (l *List[T]) Metrics() ListMetrics {
	return ListMetrics{
		Len:         l.Len(),
		Capacity:    l.Capacity(),
		FreeSlots:   l.FreeSlots(),
		NumChunks:   l.NumChunks(),
		ChunkSize:   l.ChunkSize(),
		Utilization: l.Utilization(),
	}
}

// ListMetrics contains statistical information about a list's storage.
type ListMetrics struct {
	Len         int     // Live elements
	Capacity    int     // Total slots across all chunks
	FreeSlots   int     // Slots on the free list
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Minimum size of future allocations
	Utilization float64 // Ratio of live slots to capacity (0.0-1.0)
}
