package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"chat-gateway/domain"
	"chat-gateway/errors"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestProfileRepository_Save_And_Find(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t), slog.Default())

	profile := domain.UserProfile{
		ID:     "u1",
		Name:   "Alice",
		Avatar: "alice.png",
		Roles:  []domain.Role{domain.RoleUser, domain.RoleChatManager},
	}
	req.NoError(repository.Save(profile))

	found, err := repository.Find("u1")
	req.NoError(err)
	req.Equal(profile, found)
}

func TestProfileRepository_Find_Unknown_Identity(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t), slog.Default())

	_, err := repository.Find("ghost")
	req.ErrorIs(err, errors.ErrProfileNotFound)
}

func TestProfileRepository_HighestRole(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t), slog.Default())

	req.NoError(repository.Save(domain.UserProfile{
		ID:    "admin-user",
		Roles: []domain.Role{domain.RoleUser, domain.RoleAdmin},
	}))

	t.Run("should pick the most privileged stored role", func(t *testing.T) {
		role, err := repository.HighestRole("admin-user")
		req.NoError(err)
		req.Equal(domain.RoleAdmin, role)
	})

	t.Run("should default unknown identities to the user role", func(t *testing.T) {
		role, err := repository.HighestRole("ghost")
		req.NoError(err)
		req.Equal(domain.RoleUser, role)
	})
}

func TestProfileRepository_TouchLastActive(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC().Truncate(time.Second)

	req.NoError(repository.Save(domain.UserProfile{ID: "u1", Name: "Alice"}))

	// When refreshing the timestamp
	req.NoError(repository.TouchLastActive("u1", at))

	// Then the stored profile carries it, other fields untouched
	found, err := repository.Find("u1")
	req.NoError(err)
	req.Equal("Alice", found.Name)
	req.True(found.LastActive.Equal(at))

	// And an unknown identity is reported as missing
	err = repository.TouchLastActive("ghost", at)
	req.ErrorIs(err, errors.ErrProfileNotFound)
}

func TestLastActiveSink_Skips_Unknown_Identity(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t), slog.Default())
	sink := NewLastActiveSink(repository, slog.Default())
	at := time.Now().UTC().Truncate(time.Second)

	req.NoError(repository.Save(domain.UserProfile{ID: "u1"}))

	// Known identity: the timestamp is persisted on both transitions
	req.NoError(sink.OnUserOnline(context.Background(), "u1", at))
	found, err := repository.Find("u1")
	req.NoError(err)
	req.True(found.LastActive.Equal(at))

	// Unknown identity: skipped without error
	req.NoError(sink.OnUserOffline(context.Background(), "ghost", at))
}

func TestLoginCodeSequence_Is_Monotonic(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)

	sequence, err := NewLoginCodeSequence(db)
	req.NoError(err)
	defer func() { _ = sequence.Release() }()

	previous, err := sequence.Next()
	req.NoError(err)
	for i := 0; i < 100; i++ {
		next, err := sequence.Next()
		req.NoError(err)
		req.Greater(next, previous)
		previous = next
	}
}
