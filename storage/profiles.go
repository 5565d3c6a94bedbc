// Package storage holds the BadgerDB-backed repositories of the gateway:
// the user profile directory consumed by login flows and the durable
// sequence feeding the login code broker.
package storage

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/errors"
)

const profilePrefix = "profile:"

// loginCodeSequenceKey backs the process-shared monotonic counter. Badger
// leases bandwidth-sized ranges, so concurrent issuers never observe the
// same value and restarts never reuse a leased range.
var loginCodeSequenceKey = []byte("seq:login_code")

// NewLoginCodeSequence returns the durable counter the broker draws login
// code candidates from. *badger.Sequence satisfies contract.Sequence as is.
func NewLoginCodeSequence(db *badger.DB) (*badger.Sequence, error) {
	seq, err := db.GetSequence(loginCodeSequenceKey, 128)
	if err != nil {
		return nil, fmt.Errorf("login code sequence: %w", err)
	}
	return seq, nil
}

// ProfileRepository serves the user directory and role lookups out of Badger.
// Records are stored as JSON, the same encoding the gateway speaks on the wire.
type ProfileRepository struct {
	db  *badger.DB
	log *slog.Logger
}

var (
	_ contract.UserDirectory = (*ProfileRepository)(nil)
	_ contract.RoleLookup    = (*ProfileRepository)(nil)
)

func NewProfileRepository(db *badger.DB, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, log: log}
}

func profileKey(identity domain.Identity) []byte {
	return []byte(profilePrefix + string(identity))
}

// Find returns the stored profile or ErrProfileNotFound.
func (r *ProfileRepository) Find(identity domain.Identity) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(identity))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		})
	})
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return domain.UserProfile{}, errors.ErrProfileNotFound
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

// Save upserts a profile.
func (r *ProfileRepository) Save(profile domain.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(profile.ID), data)
	})
}

// HighestRole resolves the most privileged role of an identity. Unknown
// identities fall back to the ordinary user role rather than erroring, so a
// missing profile can never block a login.
func (r *ProfileRepository) HighestRole(identity domain.Identity) (domain.Role, error) {
	profile, err := r.Find(identity)
	if goerrors.Is(err, errors.ErrProfileNotFound) {
		return domain.RoleUser, nil
	}
	if err != nil {
		return domain.RoleUser, err
	}
	return domain.HighestRole(profile.Roles), nil
}

// TouchLastActive refreshes the durable last-active timestamp of a profile.
// Returns ErrProfileNotFound when the identity has no stored profile.
func (r *ProfileRepository) TouchLastActive(identity domain.Identity, at time.Time) error {
	err := r.update(identity, at)
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrProfileNotFound
	}
	return err
}

func (r *ProfileRepository) update(identity domain.Identity, at time.Time) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(identity))
		if err != nil {
			return err
		}
		var profile domain.UserProfile
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		}); err != nil {
			return err
		}
		profile.LastActive = at
		data, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		return txn.Set(profileKey(identity), data)
	})
}
