package runtime

import (
	"context"
	goerrors "errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-gateway/domain"
)

// recordingSink counts lifecycle notifications per identity.
type recordingSink struct {
	mu      sync.Mutex
	online  map[domain.Identity]int
	offline map[domain.Identity]int
	err     error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		online:  map[domain.Identity]int{},
		offline: map[domain.Identity]int{},
	}
}

func (s *recordingSink) OnUserOnline(_ context.Context, identity domain.Identity, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online[identity]++
	return s.err
}

func (s *recordingSink) OnUserOffline(_ context.Context, identity domain.Identity, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offline[identity]++
	return s.err
}

func (s *recordingSink) counts(identity domain.Identity) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online[identity], s.offline[identity]
}

func TestPresenceCoordinator_Ignores_Non_Edges(t *testing.T) {
	req := require.New(t)
	sink := newRecordingSink()
	coordinator := NewPresenceCoordinator(slog.Default(), 16).AddSinks(sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = coordinator.Run(ctx) }()

	// When registry mutations report no aggregate edge
	coordinator.ConnectionBound("u1", false)
	coordinator.ConnectionGone("u1", false)
	time.Sleep(50 * time.Millisecond)

	// Then no sink fires
	online, offline := sink.counts("u1")
	req.Equal(0, online)
	req.Equal(0, offline)
}

// Two devices of one identity: only the first bind and the last disconnect may
// reach the sinks, regardless of what happens in between.
func TestPresenceCoordinator_Multi_Device_Single_Fire(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sink := newRecordingSink()
	coordinator := NewPresenceCoordinator(slog.Default(), 16).AddSinks(sink)
	identity := domain.Identity("u1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = coordinator.Run(ctx) }()

	report := func(wentOnline bool) { coordinator.ConnectionBound(identity, wentOnline) }

	// Given device A binds
	connA := newFakeConn()
	registry.Connect(connA)
	wentOnline, _, _, ok := registry.Bind(connA.ID(), identity)
	req.True(ok)
	report(wentOnline)

	// And device B binds the already-online identity
	connB := newFakeConn()
	registry.Connect(connB)
	wentOnline, _, _, ok = registry.Bind(connB.ID(), identity)
	req.True(ok)
	report(wentOnline)

	// Then exactly one online event fired
	req.Eventually(func() bool {
		online, _ := sink.counts(identity)
		return online == 1
	}, time.Second, 10*time.Millisecond)

	// When device A disconnects, the identity stays online
	_, wasBound, wentOffline := registry.Disconnect(connA.ID())
	req.True(wasBound)
	coordinator.ConnectionGone(identity, wentOffline)

	// And device B disconnects, taking the identity offline
	_, wasBound, wentOffline = registry.Disconnect(connB.ID())
	req.True(wasBound)
	coordinator.ConnectionGone(identity, wentOffline)

	// Then exactly one offline event fired
	req.Eventually(func() bool {
		online, offline := sink.counts(identity)
		return online == 1 && offline == 1
	}, time.Second, 10*time.Millisecond)
}

func TestPresenceCoordinator_Sink_Error_Does_Not_Stop_Others(t *testing.T) {
	req := require.New(t)
	failing := newRecordingSink()
	failing.err = goerrors.New("sink down")
	healthy := newRecordingSink()
	coordinator := NewPresenceCoordinator(slog.Default(), 16).AddSinks(failing, healthy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = coordinator.Run(ctx) }()

	// When an edge reaches a failing sink registered before a healthy one
	coordinator.ConnectionBound("u1", true)

	// Then the healthy sink is still notified
	req.Eventually(func() bool {
		online, _ := healthy.counts("u1")
		return online == 1
	}, time.Second, 10*time.Millisecond)
}

func TestPresenceCoordinator_Stops_On_Context_Cancel(t *testing.T) {
	req := require.New(t)
	coordinator := NewPresenceCoordinator(slog.Default(), 16)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- coordinator.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("coordinator should stop once the context is canceled")
	}
}
