// Package observability aggregates runtime gauges and counters for the
// telemetry worker. Counters are atomics updated on the hot dispatch path.
package observability

import "sync/atomic"

// DispatchStats counts push-dispatcher outcomes since process start.
type DispatchStats struct {
	enqueued  atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
}

func NewDispatchStats() *DispatchStats {
	return &DispatchStats{}
}

func (s *DispatchStats) IncrEnqueued()  { s.enqueued.Add(1) }
func (s *DispatchStats) IncrDelivered() { s.delivered.Add(1) }
func (s *DispatchStats) IncrDropped()   { s.dropped.Add(1) }

// DispatchSnapshot is a point-in-time copy of the counters.
type DispatchSnapshot struct {
	Enqueued  uint64
	Delivered uint64
	Dropped   uint64
}

func (s *DispatchStats) Snapshot() DispatchSnapshot {
	return DispatchSnapshot{
		Enqueued:  s.enqueued.Load(),
		Delivered: s.delivered.Load(),
		Dropped:   s.dropped.Load(),
	}
}
