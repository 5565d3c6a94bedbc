package storage

import (
	"context"
	goerrors "errors"
	"log/slog"
	"time"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/errors"
)

// LastActiveSink persists the last-active timestamp on every presence
// transition. Unknown identities are skipped silently; profile creation
// belongs to the account system, not to presence.
type LastActiveSink struct {
	repo *ProfileRepository
	log  *slog.Logger
}

var _ contract.LifecycleSink = (*LastActiveSink)(nil)

func NewLastActiveSink(repo *ProfileRepository, log *slog.Logger) *LastActiveSink {
	return &LastActiveSink{repo: repo, log: log}
}

func (s *LastActiveSink) OnUserOnline(_ context.Context, identity domain.Identity, at time.Time) error {
	return s.touch(identity, at)
}

func (s *LastActiveSink) OnUserOffline(_ context.Context, identity domain.Identity, at time.Time) error {
	return s.touch(identity, at)
}

func (s *LastActiveSink) touch(identity domain.Identity, at time.Time) error {
	err := s.repo.TouchLastActive(identity, at)
	if goerrors.Is(err, errors.ErrProfileNotFound) {
		s.log.Debug("no profile for identity, skipping last-active", "identity", identity)
		return nil
	}
	return err
}
