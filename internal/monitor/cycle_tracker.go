package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/pathewatch/pathewatch/internal/models"
)

// CycleStats summarizes one completed watch cycle.
type CycleStats struct {
	CycleID     string
	Processed   int
	Available   int
	Unavailable int
	FetchErrors int
	Notified    int
	Duration    time.Duration
}

// CycleTracker numbers watch cycles and aggregates per-cycle statistics.
type CycleTracker struct {
	mutex          sync.RWMutex
	maxCycles      int
	currentCycle   int
	currentCycleID string
	startedAt      time.Time
	stats          CycleStats
}

// NewCycleTracker creates a new CycleTracker. A maxCycles of zero means run
// indefinitely.
func NewCycleTracker(maxCycles int) *CycleTracker {
	return &CycleTracker{maxCycles: maxCycles}
}

// StartCycle begins a new cycle, increments the counter, and returns the new
// cycle ID.
func (ct *CycleTracker) StartCycle() string {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()

	ct.currentCycle++
	ct.currentCycleID = fmt.Sprintf("watch-%s", time.Now().Format("20060102-150405"))
	ct.startedAt = time.Now()
	ct.stats = CycleStats{CycleID: ct.currentCycleID}
	return ct.currentCycleID
}

// RecordResult counts one fetch outcome, and whether it raised a
// notification, into the running cycle.
func (ct *CycleTracker) RecordResult(outcome models.FetchOutcome, notified bool) {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()

	ct.stats.Processed++
	switch outcome {
	case models.OutcomeAvailable:
		ct.stats.Available++
	case models.OutcomeUnavailable:
		ct.stats.Unavailable++
	case models.OutcomeFetchError:
		ct.stats.FetchErrors++
	}
	if notified {
		ct.stats.Notified++
	}
}

// EndCycle closes the running cycle and returns its statistics.
func (ct *CycleTracker) EndCycle() CycleStats {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()

	ct.stats.Duration = time.Since(ct.startedAt)
	return ct.stats
}

// ShouldContinue returns false once the configured number of cycles has run.
func (ct *CycleTracker) ShouldContinue() bool {
	ct.mutex.RLock()
	defer ct.mutex.RUnlock()
	if ct.maxCycles == 0 {
		return true
	}
	return ct.currentCycle < ct.maxCycles
}

// CurrentCycleID returns the running cycle's identifier.
func (ct *CycleTracker) CurrentCycleID() string {
	ct.mutex.RLock()
	defer ct.mutex.RUnlock()
	return ct.currentCycleID
}
