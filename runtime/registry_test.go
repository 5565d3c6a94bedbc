package runtime

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"chat-gateway/domain"
)

type fakeConn struct {
	id      domain.ConnectionID
	created time.Time
}

func newFakeConn() fakeConn {
	return fakeConn{id: domain.ConnectionID(uuid.NewString()), created: time.Now()}
}

func (c fakeConn) ID() domain.ConnectionID { return c.id }
func (c fakeConn) RemoteAddr() string      { return "127.0.0.1:12345" }
func (c fakeConn) CreatedAt() time.Time    { return c.created }
func (c fakeConn) Push(_ []byte) error     { return nil }

func TestRegistry_Bind_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn := newFakeConn()
	identity := domain.Identity("u1")

	// Given a freshly accepted connection
	registry.Connect(conn)
	req.Equal(1, registry.Len())
	req.False(registry.IsOnline(identity))

	// When the identity is bound
	wentOnline, previous, previousOffline, ok := registry.Bind(conn.ID(), identity)

	// Then the identity just went online and nothing was unbound
	req.True(ok)
	req.True(wentOnline)
	req.Empty(previous)
	req.False(previousOffline)
	req.True(registry.IsOnline(identity))
	req.Equal(1, registry.OnlineCount())
	req.Len(registry.ConnectionsFor(identity), 1)
}

func TestRegistry_Bind_Second_Device_Same_Identity(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connA := newFakeConn()
	connB := newFakeConn()
	identity := domain.Identity("u1")

	// Given a first device already online
	registry.Connect(connA)
	wentOnline, _, _, ok := registry.Bind(connA.ID(), identity)
	req.True(ok)
	req.True(wentOnline)

	// When a second device binds the same identity
	registry.Connect(connB)
	wentOnline, _, _, ok = registry.Bind(connB.ID(), identity)

	// Then the identity was already online, no new edge
	req.True(ok)
	req.False(wentOnline)
	req.Equal(1, registry.OnlineCount())
	req.Len(registry.ConnectionsFor(identity), 2)
}

func TestRegistry_Bind_Unknown_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// When binding a connection that was never registered
	wentOnline, _, _, ok := registry.Bind("ghost", "u1")

	// Then nothing changes
	req.False(ok)
	req.False(wentOnline)
	req.Equal(0, registry.Len())
	req.False(registry.IsOnline("u1"))
}

func TestRegistry_Disconnect_Unbound_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn := newFakeConn()

	// Given a connection that never authenticated
	registry.Connect(conn)

	// When it disconnects
	identity, wasBound, wentOffline := registry.Disconnect(conn.ID())

	// Then no presence edge is reported
	req.Empty(identity)
	req.False(wasBound)
	req.False(wentOffline)
	req.Equal(0, registry.Len())
}

func TestRegistry_Disconnect_Last_Device_Goes_Offline(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connA := newFakeConn()
	connB := newFakeConn()
	identity := domain.Identity("u1")

	// Given two devices of one identity
	registry.Connect(connA)
	registry.Connect(connB)
	registry.Bind(connA.ID(), identity)
	registry.Bind(connB.ID(), identity)

	// When the first device disconnects
	gone, wasBound, wentOffline := registry.Disconnect(connA.ID())

	// Then the identity stays online
	req.Equal(identity, gone)
	req.True(wasBound)
	req.False(wentOffline)
	req.True(registry.IsOnline(identity))

	// When the last device disconnects
	gone, wasBound, wentOffline = registry.Disconnect(connB.ID())

	// Then the identity goes offline and its index entry is gone
	req.Equal(identity, gone)
	req.True(wasBound)
	req.True(wentOffline)
	req.False(registry.IsOnline(identity))
	req.Equal(0, registry.OnlineCount())
	req.Nil(registry.ConnectionsFor(identity))
}

func TestRegistry_Disconnect_Unknown_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	identity, wasBound, wentOffline := registry.Disconnect("ghost")

	req.Empty(identity)
	req.False(wasBound)
	req.False(wentOffline)
}

func TestRegistry_Snapshot_Includes_Unauthenticated(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	bound := newFakeConn()
	anonymous := newFakeConn()

	// Given one bound and one anonymous connection
	registry.Connect(bound)
	registry.Connect(anonymous)
	registry.Bind(bound.ID(), "u1")

	// When taking a snapshot
	snapshot := registry.Snapshot()

	// Then both connections appear, the anonymous one with an empty identity
	req.Len(snapshot, 2)
	identities := map[domain.ConnectionID]domain.Identity{}
	for _, bc := range snapshot {
		identities[bc.Conn.ID()] = bc.Identity
	}
	req.Equal(domain.Identity("u1"), identities[bound.ID()])
	req.Equal(domain.Identity(""), identities[anonymous.ID()])
}

func TestRegistry_Rebind_Moves_Connection_Between_Identities(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn := newFakeConn()

	// Given a connection bound to a first account
	registry.Connect(conn)
	wentOnline, _, _, ok := registry.Bind(conn.ID(), "u1")
	req.True(ok)
	req.True(wentOnline)

	// When the same connection authenticates as another account
	wentOnline, previous, previousOffline, ok := registry.Bind(conn.ID(), "u2")

	// Then the old binding is gone and both edges are reported
	req.True(ok)
	req.True(wentOnline)
	req.Equal(domain.Identity("u1"), previous)
	req.True(previousOffline)
	req.False(registry.IsOnline("u1"))
	req.True(registry.IsOnline("u2"))
	req.Nil(registry.ConnectionsFor("u1"))
	req.Len(registry.ConnectionsFor("u2"), 1)
	req.Equal(1, registry.OnlineCount())

	// When the connection finally disconnects
	gone, wasBound, wentOffline := registry.Disconnect(conn.ID())

	// Then only the current account goes offline and nothing stays behind
	req.Equal(domain.Identity("u2"), gone)
	req.True(wasBound)
	req.True(wentOffline)
	req.False(registry.IsOnline("u1"))
	req.False(registry.IsOnline("u2"))
	req.Equal(0, registry.OnlineCount())
}

func TestRegistry_Rebind_Same_Identity_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn := newFakeConn()
	identity := domain.Identity("u1")

	registry.Connect(conn)
	wentOnline, _, _, ok := registry.Bind(conn.ID(), identity)
	req.True(ok)
	req.True(wentOnline)

	// When the connection re-authenticates as the same account
	wentOnline, previous, previousOffline, ok := registry.Bind(conn.ID(), identity)

	// Then no edge fires and the index holds a single entry
	req.True(ok)
	req.False(wentOnline)
	req.Empty(previous)
	req.False(previousOffline)
	req.Len(registry.ConnectionsFor(identity), 1)

	_, wasBound, wentOffline := registry.Disconnect(conn.ID())
	req.True(wasBound)
	req.True(wentOffline)
}

func TestRegistry_Rebind_Keeps_Old_Identity_With_Other_Devices(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connA := newFakeConn()
	connB := newFakeConn()

	// Given two devices of one account
	registry.Connect(connA)
	registry.Connect(connB)
	registry.Bind(connA.ID(), "u1")
	registry.Bind(connB.ID(), "u1")

	// When one of them switches to another account
	wentOnline, previous, previousOffline, ok := registry.Bind(connB.ID(), "u2")

	// Then the old account stays online through its remaining device
	req.True(ok)
	req.True(wentOnline)
	req.Equal(domain.Identity("u1"), previous)
	req.False(previousOffline)
	req.True(registry.IsOnline("u1"))
	req.True(registry.IsOnline("u2"))
	req.Len(registry.ConnectionsFor("u1"), 1)
	req.Equal(2, registry.OnlineCount())
}

// Each identity gets several devices bound and unbound concurrently; exactly
// one online edge and one offline edge must be observed per identity no matter
// how the goroutines interleave.
func TestRegistry_Presence_Edges_Under_Concurrency(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	const identities = 50
	const devices = 8

	conns := make(map[domain.Identity][]fakeConn, identities)
	for i := 0; i < identities; i++ {
		identity := domain.Identity(fmt.Sprintf("user-%d", i))
		for d := 0; d < devices; d++ {
			conn := newFakeConn()
			registry.Connect(conn)
			conns[identity] = append(conns[identity], conn)
		}
	}

	var mu sync.Mutex
	onlineEdges := map[domain.Identity]int{}
	offlineEdges := map[domain.Identity]int{}

	// When every device binds concurrently
	var wg sync.WaitGroup
	for identity, deviceConns := range conns {
		for _, conn := range deviceConns {
			wg.Add(1)
			go func(identity domain.Identity, conn fakeConn) {
				defer wg.Done()
				wentOnline, _, _, ok := registry.Bind(conn.ID(), identity)
				require.True(t, ok)
				if wentOnline {
					mu.Lock()
					onlineEdges[identity]++
					mu.Unlock()
				}
			}(identity, conn)
		}
	}
	wg.Wait()

	// Then exactly one online edge fired per identity
	req.Equal(identities, registry.OnlineCount())
	for identity := range conns {
		req.Equal(1, onlineEdges[identity], "identity %s", identity)
	}

	// When every device disconnects concurrently
	for identity, deviceConns := range conns {
		for _, conn := range deviceConns {
			wg.Add(1)
			go func(identity domain.Identity, conn fakeConn) {
				defer wg.Done()
				_, wasBound, wentOffline := registry.Disconnect(conn.ID())
				require.True(t, wasBound)
				if wentOffline {
					mu.Lock()
					offlineEdges[identity]++
					mu.Unlock()
				}
			}(identity, conn)
		}
	}
	wg.Wait()

	// Then exactly one offline edge fired per identity and nothing is left
	req.Equal(0, registry.Len())
	req.Equal(0, registry.OnlineCount())
	for identity := range conns {
		req.Equal(1, offlineEdges[identity], "identity %s", identity)
	}
}
