package services

import (
	"context"
	"log/slog"
	"time"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/domain/event"
)

// PresenceNotifySink broadcasts an online/offline change list to every
// registered connection whenever an identity's aggregate presence flips.
// The transitioning identity's own connections are skipped; they learn their
// state from the login flow itself.
type PresenceNotifySink struct {
	log        *slog.Logger
	registry   contract.IRegistry
	dispatcher contract.IDispatcher
	directory  contract.UserDirectory
}

var _ contract.LifecycleSink = (*PresenceNotifySink)(nil)

func NewPresenceNotifySink(log *slog.Logger, registry contract.IRegistry,
	dispatcher contract.IDispatcher, directory contract.UserDirectory) *PresenceNotifySink {
	return &PresenceNotifySink{
		log:        log,
		registry:   registry,
		dispatcher: dispatcher,
		directory:  directory,
	}
}

func (s *PresenceNotifySink) OnUserOnline(_ context.Context, identity domain.Identity, at time.Time) error {
	profile := s.profileFor(identity, at)
	s.dispatcher.Broadcast(event.NewOnlineNotify(profile, s.registry.OnlineCount()), &identity)
	return nil
}

func (s *PresenceNotifySink) OnUserOffline(_ context.Context, identity domain.Identity, at time.Time) error {
	profile := s.profileFor(identity, at)
	s.dispatcher.Broadcast(event.NewOfflineNotify(profile, s.registry.OnlineCount()), &identity)
	return nil
}

func (s *PresenceNotifySink) profileFor(identity domain.Identity, at time.Time) domain.UserProfile {
	profile, err := s.directory.Find(identity)
	if err != nil {
		s.log.Debug("no profile for presence notify", "identity", identity)
		profile = domain.UserProfile{ID: identity}
	}
	profile.LastActive = at
	return profile
}
