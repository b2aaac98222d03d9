package memory

import (
	"sync"
	"time"
)

// Collector implements metrics.Recorder in memory, for tests.
type Collector struct {
	mu            sync.Mutex
	counts        map[string]map[string]int
	sessionActive bool
}

// NewCollector creates an empty in-memory collector.
func NewCollector() *Collector {
	return &Collector{counts: make(map[string]map[string]int)}
}

// RecordOperation records one ATM operation.
func (c *Collector) RecordOperation(op, outcome string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts[op] == nil {
		c.counts[op] = make(map[string]int)
	}
	c.counts[op][outcome]++
}

// SetSessionActive records whether a session is open.
func (c *Collector) SetSessionActive(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionActive = active
}

// Count returns how many times op finished with outcome.
func (c *Collector) Count(op, outcome string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[op][outcome]
}

// SessionActive reports the last session state recorded.
func (c *Collector) SessionActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionActive
}
