// Package profiler - per-operation timing for filter runs.
package profiler

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// OperationStats summarises the recorded durations of one operation.
type OperationStats struct {
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// timeTracker accumulates the durations of one operation.
type timeTracker struct {
	totalTime time.Duration
	minTime   time.Duration
	maxTime   time.Duration
	count     int64
}

// Tracker records how long named operations take. It is safe for concurrent use.
//
// @example
// tr := profiler.NewTracker()
// done := tr.StartOperation("grayscale")
// _ = filters.ApplyGrayscale(pix, w, h)
// done()
// tr.Report(os.Stdout)
type Tracker struct {
	mu             sync.RWMutex
	startTime      time.Time
	operationTimes map[string]*timeTracker
	now            func() time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		startTime:      time.Now(),
		operationTimes: make(map[string]*timeTracker),
		now:            time.Now,
	}
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (t *Tracker) StartOperation(name string) func() {
	start := t.now()
	return func() {
		t.Record(name, t.now().Sub(start))
	}
}

// Record adds one completed run of name.
func (t *Tracker) Record(name string, duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tracker, exists := t.operationTimes[name]
	if !exists {
		tracker = &timeTracker{
			minTime: duration,
			maxTime: duration,
		}
		t.operationTimes[name] = tracker
	}

	tracker.totalTime += duration
	tracker.count++

	if duration < tracker.minTime {
		tracker.minTime = duration
	}
	if duration > tracker.maxTime {
		tracker.maxTime = duration
	}
}

// Stats returns a snapshot of every tracked operation.
func (t *Tracker) Stats() map[string]OperationStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]OperationStats, len(t.operationTimes))
	for name, tracker := range t.operationTimes {
		out[name] = OperationStats{
			Count: tracker.count,
			Total: tracker.totalTime,
			Min:   tracker.minTime,
			Max:   tracker.maxTime,
			Avg:   tracker.totalTime / time.Duration(tracker.count),
		}
	}
	return out
}

// Report writes operation timings, sorted by name.
func (t *Tracker) Report(w io.Writer) error {
	stats := t.Stats()

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintf(w, "OPERATION TIMINGS (uptime %v):\n", time.Since(t.startTime).Truncate(time.Millisecond)); err != nil {
		return err
	}
	for _, name := range names {
		s := stats[name]
		if _, err := fmt.Fprintf(w, "  %s: avg=%v, min=%v, max=%v, count=%d\n",
			name, s.Avg.Truncate(time.Microsecond),
			s.Min.Truncate(time.Microsecond),
			s.Max.Truncate(time.Microsecond),
			s.Count); err != nil {
			return err
		}
	}
	return nil
}
