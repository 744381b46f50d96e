package emotion

import "sync"

// Window keeps the most recent classifications in a fixed-size ring.
// Once full, each Push overwrites the oldest entry.
type Window struct {
	buf  []Result
	size int
	head int // next write position
	full bool
	mu   sync.RWMutex
}

// NewWindow creates a window holding at most size results (TrendWindow when size <= 0).
func NewWindow(size int) *Window {
	if size <= 0 {
		size = TrendWindow
	}
	return &Window{
		buf:  make([]Result, size),
		size: size,
	}
}

// Push appends a result, evicting the oldest one when the window is full.
func (w *Window) Push(r Result) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf[w.head] = r
	w.head = (w.head + 1) % w.size
	if w.head == 0 {
		w.full = true
	}
}

// Results returns the window contents oldest first.
func (w *Window) Results() []Result {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.full {
		out := make([]Result, w.head)
		copy(out, w.buf[:w.head])
		return out
	}

	out := make([]Result, 0, w.size)
	out = append(out, w.buf[w.head:]...)
	out = append(out, w.buf[:w.head]...)
	return out
}

// Latest returns the most recent result, if any.
func (w *Window) Latest() (Result, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.full && w.head == 0 {
		return Result{}, false
	}
	idx := (w.head - 1 + w.size) % w.size
	return w.buf[idx], true
}

// Len returns the number of stored results.
func (w *Window) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.full {
		return w.size
	}
	return w.head
}

// Trend computes the mood trend over the current window.
func (w *Window) Trend() Trend {
	return ComputeTrend(w.Results())
}

// Reset clears the window.
func (w *Window) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.head = 0
	w.full = false
}

// Capacity returns the maximum number of results the window holds.
func (w *Window) Capacity() int {
	return w.size
}
