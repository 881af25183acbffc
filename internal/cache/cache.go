// Package cache memoizes assembled charts by the content address of their
// birth input. Both implementations satisfy ziwei.Cache.
package cache

import (
	"sync"

	"github.com/f3rmion/ziwei/internal/ziwei"
)

// Stats reports cache usage. Hits and Misses count lookups made through
// this handle only.
type Stats struct {
	Entries int    `json:"entries"`
	Hits    int64  `json:"hits"`
	Misses  int64  `json:"misses"`
	Backend string `json:"backend"`
	Path    string `json:"path,omitempty"`
}

// Memory is a process-local cache.
type Memory struct {
	mu     sync.RWMutex
	charts map[string]*ziwei.Chart
	hits   int64
	misses int64
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{charts: make(map[string]*ziwei.Chart)}
}

// Get implements ziwei.Cache.
func (m *Memory) Get(key string) (*ziwei.Chart, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.charts[key]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return c, ok, nil
}

// Put implements ziwei.Cache.
func (m *Memory) Put(key string, c *ziwei.Chart) error {
	m.mu.Lock()
	m.charts[key] = c
	m.mu.Unlock()
	return nil
}

// Stats returns the current counters.
func (m *Memory) Stats() (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{Entries: len(m.charts), Hits: m.hits, Misses: m.misses, Backend: "memory"}, nil
}

// Clear drops every entry and returns how many were removed.
func (m *Memory) Clear() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.charts)
	m.charts = make(map[string]*ziwei.Chart)
	return n, nil
}
