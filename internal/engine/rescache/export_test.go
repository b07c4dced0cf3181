package rescache

import "github.com/prometheus/client_golang/prometheus"

// CheckTranspose verifies that the used-by index of c is the exact transpose
// of its uses index.
func CheckTranspose(c *Cache) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.graph.checkTranspose()
}

// AppliedLen returns how many IDs c tracks a last applied mutation for.
func AppliedLen(c *Cache) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.applied)
}

// Submitted returns the submitted tasks counter for kind.
func (m *Metrics) Submitted(kind string) prometheus.Counter {
	return m.tasksSubmitted.WithLabelValues(kind)
}

// Reports returns the reports counter for the given validity.
func (m *Metrics) Reports(valid string) prometheus.Counter {
	return m.reports.WithLabelValues(valid)
}

// Failed returns the failed tasks counter.
func (m *Metrics) Failed() prometheus.Counter { return m.tasksFailed }

// Suppressed returns the suppressed reports counter.
func (m *Metrics) Suppressed() prometheus.Counter { return m.reportsSuppress }

// Stale returns the stale tasks counter.
func (m *Metrics) Stale() prometheus.Counter { return m.staleTasks }

// Resources returns the resources gauge.
func (m *Metrics) Resources() prometheus.Gauge { return m.resources }

// Pending returns the pending tasks gauge.
func (m *Metrics) Pending() prometheus.Gauge { return m.pendingTasks }
