package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TimingCollector records the duration of each started operation, in
// start order.
type TimingCollector struct {
	mu      sync.Mutex
	entries []*timingEntry
}

type timingEntry struct {
	name  string
	start time.Time
	end   time.Time
}

// NewTimingCollector creates an empty timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &timingEntry{name: name, start: time.Now()}
	c.entries = append(c.entries, entry)
	return &timingTimer{collector: c, entry: entry}
}

// Report writes one line per timed operation, longest name padded for
// alignment. Timers that were never ended are marked as unfinished.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	width := 0
	for _, entry := range c.entries {
		if len(entry.name) > width {
			width = len(entry.name)
		}
	}

	for _, entry := range c.entries {
		if entry.end.IsZero() {
			fmt.Fprintf(w, "%-*s  (unfinished)\n", width, entry.name)
			continue
		}
		fmt.Fprintf(w, "%-*s  %s\n", width, entry.name, entry.end.Sub(entry.start).Round(time.Microsecond))
	}
}

type timingTimer struct {
	collector *TimingCollector
	entry     *timingEntry
}

func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()
	if t.entry.end.IsZero() {
		t.entry.end = time.Now()
	}
}
