package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-gateway/domain"
	"chat-gateway/domain/event"
	"chat-gateway/errors"
	"chat-gateway/mocks"
)

type gatewayMocks struct {
	registry    *mocks.MockIRegistry
	broker      *mocks.MockIBroker
	presence    *mocks.MockIPresence
	dispatcher  *mocks.MockIDispatcher
	tokens      *mocks.MockAuthenticator
	credentials *mocks.MockCredentialVerifier
	roles       *mocks.MockRoleLookup
	directory   *mocks.MockUserDirectory
	loginURLs   *mocks.MockLoginURLProvider
}

func newGatewayService(ctrl *gomock.Controller) (*GatewayService, gatewayMocks) {
	m := gatewayMocks{
		registry:    mocks.NewMockIRegistry(ctrl),
		broker:      mocks.NewMockIBroker(ctrl),
		presence:    mocks.NewMockIPresence(ctrl),
		dispatcher:  mocks.NewMockIDispatcher(ctrl),
		tokens:      mocks.NewMockAuthenticator(ctrl),
		credentials: mocks.NewMockCredentialVerifier(ctrl),
		roles:       mocks.NewMockRoleLookup(ctrl),
		directory:   mocks.NewMockUserDirectory(ctrl),
		loginURLs:   mocks.NewMockLoginURLProvider(ctrl),
	}
	svc := NewGatewayService(
		slog.Default(), m.registry, m.broker, m.presence, m.dispatcher,
		m.tokens, m.credentials, m.roles, m.directory, m.loginURLs,
		time.Hour,
	)
	return svc, m
}

func newMockConn(ctrl *gomock.Controller, id domain.ConnectionID) *mocks.MockConnection {
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ID().Return(id).AnyTimes()
	conn.EXPECT().RemoteAddr().Return("127.0.0.1:12345").AnyTimes()
	conn.EXPECT().CreatedAt().Return(time.Now()).AnyTimes()
	return conn
}

func TestGatewayService_Disconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newGatewayService(ctrl)

	t.Run("should report offline edge when last bound connection leaves", func(t *testing.T) {
		conn := newMockConn(ctrl, "c1")
		m.registry.EXPECT().Disconnect(domain.ConnectionID("c1")).
			Return(domain.Identity("u1"), true, true).Times(1)
		m.presence.EXPECT().ConnectionGone(domain.Identity("u1"), true).Times(1)

		svc.Disconnect(conn)
	})

	t.Run("should stay silent when the connection was never bound", func(t *testing.T) {
		conn := newMockConn(ctrl, "c2")
		m.registry.EXPECT().Disconnect(domain.ConnectionID("c2")).
			Return(domain.Identity(""), false, false).Times(1)
		m.presence.EXPECT().ConnectionGone(gomock.Any(), gomock.Any()).Times(0)

		svc.Disconnect(conn)
	})
}

func TestGatewayService_HandleLoginRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newGatewayService(ctrl)
	ctx := context.Background()

	t.Run("should push the login url for a fresh code", func(t *testing.T) {
		req := require.New(t)
		conn := newMockConn(ctrl, "c1")
		code := domain.LoginCode(42)

		m.broker.EXPECT().Issue(conn).Return(code, nil).Times(1)
		m.loginURLs.EXPECT().CreateLoginURL(ctx, code, time.Hour).
			Return("https://login.example.com?code=42", nil).Times(1)
		m.dispatcher.EXPECT().
			SendTo(conn, event.NewLoginURL("https://login.example.com?code=42")).Times(1)

		req.NoError(svc.HandleLoginRequest(ctx, conn))
	})

	t.Run("should fail without pushing when the url provider is down", func(t *testing.T) {
		req := require.New(t)
		conn := newMockConn(ctrl, "c2")

		m.broker.EXPECT().Issue(conn).Return(domain.LoginCode(43), nil).Times(1)
		m.loginURLs.EXPECT().CreateLoginURL(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", context.DeadlineExceeded).Times(1)
		m.dispatcher.EXPECT().SendTo(gomock.Any(), gomock.Any()).Times(0)

		req.Error(svc.HandleLoginRequest(ctx, conn))
	})
}

func TestGatewayService_CompleteScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newGatewayService(ctrl)

	t.Run("should notify the waiting connection without consuming the code", func(t *testing.T) {
		req := require.New(t)
		conn := newMockConn(ctrl, "c1")
		code := domain.LoginCode(42)

		m.broker.EXPECT().Resolve(code).Return(conn, nil).Times(1)
		m.broker.EXPECT().Consume(gomock.Any()).Times(0)
		m.dispatcher.EXPECT().SendTo(conn, event.NewScanSuccess()).Times(1)

		req.NoError(svc.CompleteScan(code))
	})

	t.Run("should surface an unknown code to the caller", func(t *testing.T) {
		req := require.New(t)
		m.broker.EXPECT().Resolve(domain.LoginCode(99)).
			Return(nil, errors.ErrCodeNotFound).Times(1)

		err := svc.CompleteScan(domain.LoginCode(99))

		req.ErrorIs(err, errors.ErrCodeNotFound)
	})
}

func TestGatewayService_CompleteLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newGatewayService(ctrl)
	ctx := context.Background()

	t.Run("should bind, answer and report presence on success", func(t *testing.T) {
		req := require.New(t)
		conn := newMockConn(ctrl, "c1")
		code := domain.LoginCode(42)
		identity := domain.Identity("u1")
		profile := domain.UserProfile{ID: identity, Name: "Alice", Avatar: "a.png"}

		m.broker.EXPECT().Consume(code).Return(conn, nil).Times(1)
		m.tokens.EXPECT().IssueToken(identity).Return("jwt-token", nil).Times(1)
		m.registry.EXPECT().Bind(domain.ConnectionID("c1"), identity).
			Return(true, domain.Identity(""), false, true).Times(1)
		m.roles.EXPECT().HighestRole(identity).Return(domain.RoleAdmin, nil).Times(1)
		m.directory.EXPECT().Find(identity).Return(profile, nil).Times(1)
		m.dispatcher.EXPECT().
			SendTo(conn, event.NewLoginSuccess(profile, "jwt-token", domain.RoleAdmin)).Times(1)
		m.presence.EXPECT().ConnectionBound(identity, true).Times(1)

		req.NoError(svc.CompleteLogin(ctx, code, identity))
	})

	t.Run("should surface an already consumed code", func(t *testing.T) {
		req := require.New(t)
		m.broker.EXPECT().Consume(domain.LoginCode(42)).
			Return(nil, errors.ErrCodeNotFound).Times(1)

		err := svc.CompleteLogin(ctx, domain.LoginCode(42), "u1")

		req.ErrorIs(err, errors.ErrCodeNotFound)
	})

	t.Run("should abort quietly when the connection vanished before bind", func(t *testing.T) {
		req := require.New(t)
		conn := newMockConn(ctrl, "c-gone")
		identity := domain.Identity("u1")

		m.broker.EXPECT().Consume(domain.LoginCode(7)).Return(conn, nil).Times(1)
		m.tokens.EXPECT().IssueToken(identity).Return("jwt-token", nil).Times(1)
		m.registry.EXPECT().Bind(domain.ConnectionID("c-gone"), identity).
			Return(false, domain.Identity(""), false, false).Times(1)
		m.dispatcher.EXPECT().SendTo(gomock.Any(), gomock.Any()).Times(0)
		m.presence.EXPECT().ConnectionBound(gomock.Any(), gomock.Any()).Times(0)

		req.NoError(svc.CompleteLogin(ctx, domain.LoginCode(7), identity))
	})
}

func TestGatewayService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newGatewayService(ctrl)
	ctx := context.Background()

	t.Run("should invalidate a rejected token", func(t *testing.T) {
		conn := newMockConn(ctrl, "c1")
		m.tokens.EXPECT().Verify("bad-token").Return(false).Times(1)
		m.dispatcher.EXPECT().SendTo(conn, event.NewInvalidateToken()).Times(1)
		m.registry.EXPECT().Bind(gomock.Any(), gomock.Any()).Times(0)

		svc.Authorize(ctx, conn, "bad-token")
	})

	t.Run("should answer with a renewed token when close to expiry", func(t *testing.T) {
		conn := newMockConn(ctrl, "c2")
		identity := domain.Identity("u1")
		profile := domain.UserProfile{ID: identity, Name: "Alice"}

		m.tokens.EXPECT().Verify("old-token").Return(true).Times(1)
		m.tokens.EXPECT().Identity("old-token").Return(identity, nil).Times(1)
		m.tokens.EXPECT().RenewIfNeeded("old-token").Return("fresh-token", true).Times(1)
		m.registry.EXPECT().Bind(domain.ConnectionID("c2"), identity).
			Return(false, domain.Identity(""), false, true).Times(1)
		m.roles.EXPECT().HighestRole(identity).Return(domain.RoleUser, nil).Times(1)
		m.directory.EXPECT().Find(identity).Return(profile, nil).Times(1)
		m.dispatcher.EXPECT().
			SendTo(conn, event.NewLoginSuccess(profile, "fresh-token", domain.RoleUser)).Times(1)
		m.presence.EXPECT().ConnectionBound(identity, false).Times(1)

		svc.Authorize(ctx, conn, "old-token")
	})

	t.Run("should fall back to defaults when lookups fail", func(t *testing.T) {
		conn := newMockConn(ctrl, "c3")
		identity := domain.Identity("u2")

		m.tokens.EXPECT().Verify("good-token").Return(true).Times(1)
		m.tokens.EXPECT().Identity("good-token").Return(identity, nil).Times(1)
		m.tokens.EXPECT().RenewIfNeeded("good-token").Return("good-token", false).Times(1)
		m.registry.EXPECT().Bind(domain.ConnectionID("c3"), identity).
			Return(true, domain.Identity(""), false, true).Times(1)
		m.roles.EXPECT().HighestRole(identity).
			Return(domain.RoleUser, errors.ErrProfileNotFound).Times(1)
		m.directory.EXPECT().Find(identity).
			Return(domain.UserProfile{}, errors.ErrProfileNotFound).Times(1)
		m.dispatcher.EXPECT().
			SendTo(conn, event.NewLoginSuccess(domain.UserProfile{ID: identity}, "good-token", domain.RoleUser)).
			Times(1)
		m.presence.EXPECT().ConnectionBound(identity, true).Times(1)

		svc.Authorize(ctx, conn, "good-token")
	})
}

func TestGatewayService_PasswordLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newGatewayService(ctrl)
	ctx := context.Background()

	t.Run("should answer a generic rejection on bad credentials", func(t *testing.T) {
		conn := newMockConn(ctrl, "c1")
		m.credentials.EXPECT().VerifyPassword(ctx, "alice", "wrong").
			Return(domain.Identity(""), errors.ErrInvalidCredentials).Times(1)
		m.dispatcher.EXPECT().
			SendTo(conn, event.NewError(loginErrorCode, "invalid username or password")).Times(1)
		m.registry.EXPECT().Bind(gomock.Any(), gomock.Any()).Times(0)

		svc.PasswordLogin(ctx, conn, "alice", "wrong")
	})

	t.Run("should attach an error id on internal faults", func(t *testing.T) {
		req := require.New(t)
		conn := newMockConn(ctrl, "c2")
		m.credentials.EXPECT().VerifyPassword(ctx, "alice", "secret").
			Return(domain.Identity(""), context.DeadlineExceeded).Times(1)
		m.dispatcher.EXPECT().
			SendTo(conn, gomock.Any()).
			Do(func(_ any, env event.Envelope) {
				req.Equal(loginErrorCode, env.Code)
				req.Contains(env.Msg, "ErrorID")
			}).Times(1)

		svc.PasswordLogin(ctx, conn, "alice", "secret")
	})

	t.Run("should finish the login on verified credentials", func(t *testing.T) {
		conn := newMockConn(ctrl, "c3")
		identity := domain.Identity("u1")
		profile := domain.UserProfile{ID: identity, Name: "Alice"}

		m.credentials.EXPECT().VerifyPassword(ctx, "alice", "secret").
			Return(identity, nil).Times(1)
		m.tokens.EXPECT().IssueToken(identity).Return("jwt-token", nil).Times(1)
		m.registry.EXPECT().Bind(domain.ConnectionID("c3"), identity).
			Return(true, domain.Identity(""), false, true).Times(1)
		m.roles.EXPECT().HighestRole(identity).Return(domain.RoleChatManager, nil).Times(1)
		m.directory.EXPECT().Find(identity).Return(profile, nil).Times(1)
		m.dispatcher.EXPECT().
			SendTo(conn, event.NewLoginSuccess(profile, "jwt-token", domain.RoleChatManager)).Times(1)
		m.presence.EXPECT().ConnectionBound(identity, true).Times(1)

		svc.PasswordLogin(ctx, conn, "alice", "secret")
	})
}

func TestGatewayService_Login_Presence_Precedes_Collaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newGatewayService(ctrl)
	ctx := context.Background()
	conn := newMockConn(ctrl, "c1")
	identity := domain.Identity("u1")

	m.broker.EXPECT().Consume(domain.LoginCode(42)).Return(conn, nil).Times(1)
	m.tokens.EXPECT().IssueToken(identity).Return("jwt-token", nil).Times(1)

	// The presence edge must be enqueued straight after the bind, before the
	// role/profile reads and the dispatch, so a racing disconnect cannot get
	// its offline event in first.
	bind := m.registry.EXPECT().Bind(domain.ConnectionID("c1"), identity).
		Return(true, domain.Identity(""), false, true).Times(1)
	bound := m.presence.EXPECT().ConnectionBound(identity, true).After(bind).Times(1)
	m.roles.EXPECT().HighestRole(identity).Return(domain.RoleUser, nil).After(bound).Times(1)
	m.directory.EXPECT().Find(identity).
		Return(domain.UserProfile{ID: identity}, nil).After(bound).Times(1)
	m.dispatcher.EXPECT().SendTo(conn, gomock.Any()).After(bound).Times(1)

	require.NoError(t, svc.CompleteLogin(ctx, domain.LoginCode(42), identity))
}

func TestGatewayService_Rebind_Reports_Old_Account_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newGatewayService(ctrl)
	ctx := context.Background()
	conn := newMockConn(ctrl, "c1")
	identity := domain.Identity("u2")
	profile := domain.UserProfile{ID: identity}

	// Given the connection was bound to another account whose last connection
	// this rebind removes
	m.tokens.EXPECT().Verify("u2-token").Return(true).Times(1)
	m.tokens.EXPECT().Identity("u2-token").Return(identity, nil).Times(1)
	m.tokens.EXPECT().RenewIfNeeded("u2-token").Return("u2-token", false).Times(1)
	m.registry.EXPECT().Bind(domain.ConnectionID("c1"), identity).
		Return(true, domain.Identity("u1"), true, true).Times(1)

	// Then both edges reach the coordinator, old account first
	gone := m.presence.EXPECT().ConnectionGone(domain.Identity("u1"), true).Times(1)
	m.presence.EXPECT().ConnectionBound(identity, true).After(gone).Times(1)

	m.roles.EXPECT().HighestRole(identity).Return(domain.RoleUser, nil).Times(1)
	m.directory.EXPECT().Find(identity).Return(profile, nil).Times(1)
	m.dispatcher.EXPECT().
		SendTo(conn, event.NewLoginSuccess(profile, "u2-token", domain.RoleUser)).Times(1)

	svc.Authorize(ctx, conn, "u2-token")
}

func TestGatewayService_Push_Delegation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newGatewayService(ctrl)

	env := event.NewMessage("hello")
	skip := domain.Identity("muted")

	m.dispatcher.EXPECT().SendToIdentity(domain.Identity("u1"), env).Times(1)
	m.dispatcher.EXPECT().Broadcast(env, &skip).Times(1)

	svc.SendToIdentity(env, "u1")
	svc.SendToAllOnline(env, &skip)
}
