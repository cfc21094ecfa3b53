package metrics

import "sync/atomic"

// Counts is a snapshot of the simulation work done so far.
type Counts struct {
	Playouts  int64
	Decisions int64
}

// Collector accumulates simulation counters. Implementations are safe
// for concurrent use.
type Collector interface {
	AddPlayouts(n int)
	AddDecision()
	Snapshot() Counts
}

type collector struct {
	playouts  atomic.Int64
	decisions atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddPlayouts(n int) {
	c.playouts.Add(int64(n))
}

func (c *collector) AddDecision() {
	c.decisions.Add(1)
}

func (c *collector) Snapshot() Counts {
	return Counts{
		Playouts:  c.playouts.Load(),
		Decisions: c.decisions.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) AddPlayouts(n int) {}
func (dummyCollector) AddDecision()      {}
func (dummyCollector) Snapshot() Counts  { return Counts{} }
