package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-action metrics
	actionMetrics map[string]*ActionMetrics

	// Global counters
	totalDispatches uint64
	totalNoops      uint64
	totalRedraws    uint64

	// Timing
	totalDuration time.Duration
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastMode      string
	LastDispatch  time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[string]*ActionMetrics),
	}
}

// RecordDispatch records one resolved event. No-op actions are counted
// but not tracked per action.
func (m *Metrics) RecordDispatch(actionName, modeName string, noop bool, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	if noop {
		m.totalNoops++
		return
	}

	am := m.actionMetrics[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actionMetrics[actionName] = am
	}

	am.DispatchCount++
	am.TotalDuration += duration
	am.LastMode = modeName
	am.LastDispatch = time.Now()

	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}
}

// RecordRedraw records a render added after a mode change.
func (m *Metrics) RecordRedraw() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalRedraws++
}

// TotalDispatches returns the total number of dispatched events.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalNoops returns the number of events that resolved to no action.
func (m *Metrics) TotalNoops() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalNoops
}

// TotalRedraws returns the number of renders added after mode changes.
func (m *Metrics) TotalRedraws() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalRedraws
}

// AverageDuration returns the average dispatch duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// TopActions returns the top N most dispatched actions.
func (m *Metrics) TopActions(n int) []*ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	actions := make([]*ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		c := *am
		actions = append(actions, &c)
	}

	sort.Slice(actions, func(i, j int) bool {
		if actions[i].DispatchCount != actions[j].DispatchCount {
			return actions[i].DispatchCount > actions[j].DispatchCount
		}
		return actions[i].Name < actions[j].Name
	})

	if n > len(actions) {
		n = len(actions)
	}
	return actions[:n]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actionMetrics = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalNoops = 0
	m.totalRedraws = 0
	m.totalDuration = 0
}
