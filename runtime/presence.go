package runtime

import (
	"context"
	"log/slog"
	"time"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/domain/event"
)

// PresenceCoordinator turns the edges reported by registry mutations into
// lifecycle events. Emission is decoupled from the registry call path through
// a buffered queue drained by Run, so a slow sink never blocks a connection's
// bind or disconnect. Single-fire is guaranteed by the registry: only the
// goroutine whose mutation flipped the 0↔nonzero edge enqueues an event.
type PresenceCoordinator struct {
	log   *slog.Logger
	queue chan event.PresenceEvent
	sinks []contract.LifecycleSink
}

var (
	_ contract.IPresence = (*PresenceCoordinator)(nil)
	_ contract.Worker    = (*PresenceCoordinator)(nil)
)

func NewPresenceCoordinator(log *slog.Logger, queueSize int) *PresenceCoordinator {
	return &PresenceCoordinator{
		log:   log,
		queue: make(chan event.PresenceEvent, queueSize),
	}
}

// AddSinks registers lifecycle consumers. Not safe to call once Run started.
func (p *PresenceCoordinator) AddSinks(sinks ...contract.LifecycleSink) *PresenceCoordinator {
	p.sinks = append(p.sinks, sinks...)
	return p
}

// ConnectionBound is called after a successful registry bind. Only the bind
// that actually created the identity's online entry produces an event.
func (p *PresenceCoordinator) ConnectionBound(identity domain.Identity, wentOnline bool) {
	if !wentOnline {
		return
	}
	p.enqueue(event.PresenceEvent{Identity: identity, Kind: event.PresenceOnline, At: time.Now()})
}

// ConnectionGone is called after a registry disconnect. Only the removal of
// the identity's last connection produces an event.
func (p *PresenceCoordinator) ConnectionGone(identity domain.Identity, wentOffline bool) {
	if !wentOffline {
		return
	}
	p.enqueue(event.PresenceEvent{Identity: identity, Kind: event.PresenceOffline, At: time.Now()})
}

func (p *PresenceCoordinator) enqueue(evt event.PresenceEvent) {
	select {
	case p.queue <- evt:
	default:
		// Dropping would lose a transition for good, so block until the
		// notifier catches up. The queue is sized to make this exceptional.
		p.log.Warn("presence queue full, blocking caller", "identity", evt.Identity)
		p.queue <- evt
	}
}

// Run drains the queue and notifies every sink, in registration order.
// Sink errors are logged and never break the loop.
func (p *PresenceCoordinator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			p.log.Debug("Stopping presence coordinator")
			return ctx.Err()
		case evt := <-p.queue:
			p.notify(ctx, evt)
		}
	}
}

func (p *PresenceCoordinator) notify(ctx context.Context, evt event.PresenceEvent) {
	for _, sink := range p.sinks {
		var err error
		switch evt.Kind {
		case event.PresenceOnline:
			err = sink.OnUserOnline(ctx, evt.Identity, evt.At)
		case event.PresenceOffline:
			err = sink.OnUserOffline(ctx, evt.Identity, evt.At)
		}
		if err != nil {
			p.log.Warn("lifecycle sink failed",
				"identity", evt.Identity, "kind", evt.Kind.String(), "error", err)
		}
	}
}
