package event

import (
	"time"

	"chat-gateway/domain"
)

type PresenceKind int

const (
	PresenceOnline PresenceKind = iota + 1
	PresenceOffline
)

func (k PresenceKind) String() string {
	if k == PresenceOnline {
		return "online"
	}
	return "offline"
}

// PresenceEvent records one aggregate online/offline transition of an identity.
// Exactly one event is produced per actual 0↔nonzero transition of the
// identity's connection set, regardless of how many devices are involved.
type PresenceEvent struct {
	Identity domain.Identity
	Kind     PresenceKind
	At       time.Time
}
