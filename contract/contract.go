//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"chat-gateway/domain"
	"chat-gateway/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Connection is the handle to one live transport session. The transport layer
// owns its lifecycle; the core only references it. Push enqueues an already
// serialized frame into the connection's ordered send queue without blocking.
type Connection interface {
	ID() domain.ConnectionID
	RemoteAddr() string
	CreatedAt() time.Time
	Push(frame []byte) error
}

// IRegistry is the authoritative index of live connections and their sessions.
// Bind and Disconnect report the aggregate 0↔nonzero presence edge computed
// inside the same critical section as the mutation itself. A Bind onto an
// already bound connection drops the old binding first: previous names the
// identity that lost the connection (empty when none changed) and
// previousOffline whether that removal emptied its online set.
type IRegistry interface {
	Connect(conn Connection)
	Bind(connID domain.ConnectionID, identity domain.Identity) (wentOnline bool, previous domain.Identity, previousOffline, ok bool)
	Disconnect(connID domain.ConnectionID) (identity domain.Identity, wasBound, wentOffline bool)
	ConnectionsFor(identity domain.Identity) []Connection
	IsOnline(identity domain.Identity) bool
	Snapshot() []BoundConnection
	Len() int
	OnlineCount() int
}

// BoundConnection pairs a live connection with the identity it is bound to,
// empty when unauthenticated. Used by broadcast to apply identity exclusion.
type BoundConnection struct {
	Conn     Connection
	Identity domain.Identity
}

// IBroker issues short-lived login codes and resolves them back to the
// waiting connection exactly once.
type IBroker interface {
	Issue(conn Connection) (domain.LoginCode, error)
	Resolve(code domain.LoginCode) (Connection, error)
	Consume(code domain.LoginCode) (Connection, error)
}

// Sequence yields process-wide monotonically increasing candidates for login
// codes. Satisfied by *badger.Sequence in production.
type Sequence interface {
	Next() (uint64, error)
}

// IDispatcher fans a prepared envelope out to connections off the calling
// context. Delivery is best effort and at most once.
type IDispatcher interface {
	SendTo(conn Connection, env event.Envelope)
	SendToIdentity(identity domain.Identity, env event.Envelope)
	Broadcast(env event.Envelope, skip *domain.Identity)
}

// IPresence receives the presence edges reported by registry mutations and
// turns each into exactly one lifecycle event.
type IPresence interface {
	ConnectionBound(identity domain.Identity, wentOnline bool)
	ConnectionGone(identity domain.Identity, wentOffline bool)
}

// LifecycleSink consumes presence transitions, e.g. to broadcast them or to
// refresh durable last-active state.
type LifecycleSink interface {
	OnUserOnline(ctx context.Context, identity domain.Identity, at time.Time) error
	OnUserOffline(ctx context.Context, identity domain.Identity, at time.Time) error
}

// Authenticator is the external token collaborator. Credential checking and
// storage are out of scope here; only the outcome is consumed.
type Authenticator interface {
	Verify(token string) bool
	Identity(token string) (domain.Identity, error)
	RenewIfNeeded(token string) (string, bool)
	IssueToken(identity domain.Identity) (string, error)
}

// CredentialVerifier checks a username/password pair and returns the matching
// identity. Used by the password-login path over the socket.
type CredentialVerifier interface {
	VerifyPassword(ctx context.Context, username, password string) (domain.Identity, error)
}

type RoleLookup interface {
	HighestRole(identity domain.Identity) (domain.Role, error)
}

type UserDirectory interface {
	Find(identity domain.Identity) (domain.UserProfile, error)
}

// LoginURLProvider turns a login code into a scannable URL via the external
// QR/login-link generator.
type LoginURLProvider interface {
	CreateLoginURL(ctx context.Context, code domain.LoginCode, ttl time.Duration) (string, error)
}

// IGatewayService is the surface exposed to the transport layer and to the
// application flows that push notifications.
type IGatewayService interface {
	Connect(conn Connection)
	Disconnect(conn Connection)
	HandleLoginRequest(ctx context.Context, conn Connection) error
	CompleteScan(code domain.LoginCode) error
	CompleteLogin(ctx context.Context, code domain.LoginCode, identity domain.Identity) error
	Authorize(ctx context.Context, conn Connection, token string)
	PasswordLogin(ctx context.Context, conn Connection, username, password string)
	SendToIdentity(env event.Envelope, identity domain.Identity)
	SendToAllOnline(env event.Envelope, skip *domain.Identity)
}
