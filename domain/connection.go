package domain

import "time"

// ConnectionID identifies one live transport session for the lifetime of the process.
type ConnectionID string

// Identity is the authenticated account a connection may be bound to.
type Identity string

// LoginCode correlates an external login action (QR scan, link click) with the
// connection that requested it. The external login-URL provider requires the
// code to fit a signed 32-bit integer.
type LoginCode int32

// Session holds the mutable per-connection state created at connect time and
// destroyed at disconnect time. Identity stays empty until authentication succeeds.
type Session struct {
	Identity  Identity
	BoundAt   time.Time
	CreatedAt time.Time
}

// Bound reports whether the session has been bound to an authenticated identity.
func (s Session) Bound() bool {
	return s.Identity != ""
}
