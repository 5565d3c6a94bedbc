// Package runtime holds the stateful coordination layer of the gateway:
// the connection registry, the login code broker, and the presence
// coordinator. It contains no business rules about message content.
package runtime

import (
	"sync"
	"time"

	"github.com/samber/lo"

	"chat-gateway/contract"
	"chat-gateway/domain"
)

type session struct {
	conn contract.Connection
	meta domain.Session
}

// Registry maintains the bidirectional index between live connections and
// bound identities: conn → session metadata, identity → set of connections.
// Both maps are updated together under one lock so the 0↔nonzero presence
// edge can be decided inside the same critical section as the mutation.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.ConnectionID]*session
	online   map[domain.Identity]map[domain.ConnectionID]contract.Connection
}

var _ contract.IRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.ConnectionID]*session),
		online:   make(map[domain.Identity]map[domain.ConnectionID]contract.Connection),
	}
}

// Connect creates the empty session metadata for a freshly accepted connection.
func (r *Registry) Connect(conn contract.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[conn.ID()] = &session{
		conn: conn,
		meta: domain.Session{CreatedAt: conn.CreatedAt()},
	}
}

// Bind attaches an authenticated identity to a live connection and registers
// the connection in the identity's online set. wentOnline reports whether this
// bind took the identity from zero to one live connection; ok is false when
// the connection is unknown (already disconnected), in which case nothing
// changes.
//
// A connection already bound to another identity is unbound from it first, so
// the session metadata and the online index never disagree. previous names
// that identity and previousOffline whether losing this connection emptied
// its set. Rebinding to the same identity is a no-op on the index.
func (r *Registry) Bind(connID domain.ConnectionID, identity domain.Identity) (wentOnline bool, previous domain.Identity, previousOffline, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, exists := r.sessions[connID]
	if !exists {
		return false, "", false, false
	}
	if sess.meta.Bound() && sess.meta.Identity != identity {
		previous = sess.meta.Identity
		if conns, present := r.online[previous]; present {
			delete(conns, connID)
			if len(conns) == 0 {
				delete(r.online, previous)
				previousOffline = true
			}
		}
	}
	sess.meta.Identity = identity
	sess.meta.BoundAt = time.Now()

	conns, present := r.online[identity]
	if !present {
		conns = make(map[domain.ConnectionID]contract.Connection)
		r.online[identity] = conns
	}
	wentOnline = len(conns) == 0
	conns[connID] = sess.conn
	return wentOnline, previous, previousOffline, true
}

// Disconnect removes the session and, if it was bound, the identity's index
// entry for this connection. wentOffline is true only when this removal left
// the identity with zero live connections; the empty set is removed rather
// than kept around.
func (r *Registry) Disconnect(connID domain.ConnectionID) (identity domain.Identity, wasBound, wentOffline bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, exists := r.sessions[connID]
	if !exists {
		return "", false, false
	}
	delete(r.sessions, connID)

	if !sess.meta.Bound() {
		return "", false, false
	}
	identity = sess.meta.Identity

	conns, present := r.online[identity]
	if !present {
		return identity, true, false
	}
	delete(conns, connID)
	if len(conns) == 0 {
		delete(r.online, identity)
		return identity, true, true
	}
	return identity, true, false
}

// ConnectionsFor returns a point-in-time copy of the identity's live
// connections, empty when the identity is offline.
func (r *Registry) ConnectionsFor(identity domain.Identity) []contract.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.online[identity]
	if len(conns) == 0 {
		return nil
	}
	return lo.Values(conns)
}

func (r *Registry) IsOnline(identity domain.Identity) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.online[identity]) > 0
}

// Snapshot copies the full live connection set with each connection's bound
// identity (empty for unauthenticated connections). Broadcast iterates this
// copy so slow writes never hold the registry lock.
func (r *Registry) Snapshot() []contract.BoundConnection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.MapToSlice(r.sessions, func(_ domain.ConnectionID, sess *session) contract.BoundConnection {
		return contract.BoundConnection{Conn: sess.conn, Identity: sess.meta.Identity}
	})
}

// Len reports the number of live connections, authenticated or not.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// OnlineCount reports the number of identities with at least one connection.
func (r *Registry) OnlineCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.online)
}
