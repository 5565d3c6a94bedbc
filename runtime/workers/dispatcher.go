package workers

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/domain/event"
	"chat-gateway/observability"
)

type task struct {
	conn  contract.Connection
	frame []byte
}

// Dispatcher delivers serialized envelopes to connections through a sharded
// bounded worker pool. A connection always hashes to the same shard, so two
// writes to one connection are never reordered, while a broadcast to N
// connections costs the caller only N enqueues. Enqueueing blocks when a
// shard queue is full; that backpressure is the only blocking point exposed
// to callers.
type Dispatcher struct {
	log    *slog.Logger
	reg    contract.IRegistry
	stats  *observability.DispatchStats
	shards []chan task
}

var (
	_ contract.IDispatcher = (*Dispatcher)(nil)
	_ contract.Worker      = (*Dispatcher)(nil)
)

func NewDispatcher(log *slog.Logger, reg contract.IRegistry,
	stats *observability.DispatchStats, numWorkers, queueSize int) *Dispatcher {
	shards := make([]chan task, numWorkers)
	for i := range shards {
		shards[i] = make(chan task, queueSize)
	}
	return &Dispatcher{log: log, reg: reg, stats: stats, shards: shards}
}

// Run drains every shard queue until the context is canceled.
func (d *Dispatcher) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, shard := range d.shards {
		wg.Add(1)
		go func(queue chan task) {
			defer wg.Done()
			d.drain(ctx, queue)
		}(shard)
	}
	wg.Wait()
	return ctx.Err()
}

func (d *Dispatcher) drain(ctx context.Context, queue chan task) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-queue:
			if err := t.conn.Push(t.frame); err != nil {
				// Best effort: the write is abandoned, nothing is requeued.
				d.stats.IncrDropped()
				d.log.Debug("push failed",
					"connection", t.conn.ID(), "remote", t.conn.RemoteAddr(), "error", err)
				continue
			}
			d.stats.IncrDelivered()
		}
	}
}

// SendTo delivers the envelope to exactly one connection.
func (d *Dispatcher) SendTo(conn contract.Connection, env event.Envelope) {
	frame, err := env.Marshal()
	if err != nil {
		d.log.Error("envelope marshal failed", "type", env.Type, "error", err)
		return
	}
	d.enqueue(conn, frame)
}

// SendToIdentity delivers the envelope to every live connection of one
// identity. An offline identity is a no-op, not an error.
func (d *Dispatcher) SendToIdentity(identity domain.Identity, env event.Envelope) {
	conns := d.reg.ConnectionsFor(identity)
	if len(conns) == 0 {
		d.log.Debug("identity offline, nothing to deliver", "identity", identity)
		return
	}
	frame, err := env.Marshal()
	if err != nil {
		d.log.Error("envelope marshal failed", "type", env.Type, "error", err)
		return
	}
	for _, conn := range conns {
		d.enqueue(conn, frame)
	}
}

// Broadcast delivers the envelope to every registered connection, skipping
// every connection bound to skip when provided.
func (d *Dispatcher) Broadcast(env event.Envelope, skip *domain.Identity) {
	frame, err := env.Marshal()
	if err != nil {
		d.log.Error("envelope marshal failed", "type", env.Type, "error", err)
		return
	}
	for _, bound := range d.reg.Snapshot() {
		if skip != nil && bound.Identity != "" && bound.Identity == *skip {
			continue
		}
		d.enqueue(bound.Conn, frame)
	}
}

func (d *Dispatcher) enqueue(conn contract.Connection, frame []byte) {
	d.stats.IncrEnqueued()
	d.shards[d.shardIndex(conn.ID())] <- task{conn: conn, frame: frame}
}

func (d *Dispatcher) shardIndex(id domain.ConnectionID) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32() % uint32(len(d.shards)))
}
