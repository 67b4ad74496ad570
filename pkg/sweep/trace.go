package sweep

import (
	"sync"

	"github.com/chazu/hingesim/pkg/geom"
)

// DefaultTraceCapacity is the number of trace points kept by default: 300
// earlier positions plus the current one.
const DefaultTraceCapacity = 301

// Trace is a rolling window of the most recent LCD nose positions. It is the
// only state that survives across evaluations and is safe for concurrent use.
type Trace struct {
	mu       sync.Mutex
	capacity int
	points   []geom.Point
}

// NewTrace returns an empty trace holding at most capacity points.
// A capacity <= 0 uses DefaultTraceCapacity.
func NewTrace(capacity int) *Trace {
	if capacity <= 0 {
		capacity = DefaultTraceCapacity
	}
	return &Trace{capacity: capacity}
}

// Push appends p, dropping the oldest point when the window is full.
func (t *Trace) Push(p geom.Point) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.points) == t.capacity {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, p)
}

// Points returns a copy of the window, oldest first. The result is never nil.
func (t *Trace) Points() []geom.Point {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]geom.Point, len(t.points))
	copy(out, t.points)
	return out
}

// Reset empties the window.
func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.points = t.points[:0]
}

// Len returns the number of points held.
func (t *Trace) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.points)
}

// Capacity returns the maximum number of points held.
func (t *Trace) Capacity() int {
	return t.capacity
}
