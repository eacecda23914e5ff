package mem

// SizeInUse returns the number of bytes currently consumed by the arena,
// including internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	return a.pos
}

// LastPosition returns the offset of the most recent push.
func (a *Arena) LastPosition() int {
	return a.lastPos
}

// Capacity returns the total capacity of the backing block in bytes.
func (a *Arena) Capacity() int {
	return len(a.mem)
}

// Remaining returns the number of bytes still available, not counting
// alignment padding a future push may need.
func (a *Arena) Remaining() int {
	return len(a.mem) - a.pos
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	if len(a.mem) == 0 {
		return 0
	}
	return float64(a.pos) / float64(len(a.mem))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	Remaining   int     // Bytes still available
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
