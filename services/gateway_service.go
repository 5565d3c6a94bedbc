// Package services exposes the gateway surface consumed by the transport
// layer and by the application flows that push notifications. It orchestrates
// the registry, the login code broker, the presence coordinator, the push
// dispatcher and the external collaborators, and holds no state of its own.
package services

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/domain/event"
	"chat-gateway/errors"
)

const loginErrorCode = 1000

type GatewayService struct {
	log         *slog.Logger
	registry    contract.IRegistry
	broker      contract.IBroker
	presence    contract.IPresence
	dispatcher  contract.IDispatcher
	tokens      contract.Authenticator
	credentials contract.CredentialVerifier
	roles       contract.RoleLookup
	directory   contract.UserDirectory
	loginURLs   contract.LoginURLProvider
	codeTTL     time.Duration
}

var _ contract.IGatewayService = (*GatewayService)(nil)

func NewGatewayService(
	log *slog.Logger,
	registry contract.IRegistry,
	broker contract.IBroker,
	presence contract.IPresence,
	dispatcher contract.IDispatcher,
	tokens contract.Authenticator,
	credentials contract.CredentialVerifier,
	roles contract.RoleLookup,
	directory contract.UserDirectory,
	loginURLs contract.LoginURLProvider,
	codeTTL time.Duration,
) *GatewayService {
	return &GatewayService{
		log:         log,
		registry:    registry,
		broker:      broker,
		presence:    presence,
		dispatcher:  dispatcher,
		tokens:      tokens,
		credentials: credentials,
		roles:       roles,
		directory:   directory,
		loginURLs:   loginURLs,
		codeTTL:     codeTTL,
	}
}

// Connect registers a freshly accepted, not yet authenticated connection.
func (s *GatewayService) Connect(conn contract.Connection) {
	s.registry.Connect(conn)
	s.log.Debug("connection registered",
		"connection", conn.ID(), "remote", conn.RemoteAddr())
}

// Disconnect removes the connection and reports the presence edge, if any,
// to the coordinator. The edge comes straight out of the registry mutation,
// never from a read after it.
func (s *GatewayService) Disconnect(conn contract.Connection) {
	identity, wasBound, wentOffline := s.registry.Disconnect(conn.ID())
	s.log.Debug("connection removed",
		"connection", conn.ID(), "bound", wasBound, "went_offline", wentOffline)
	if wasBound {
		s.presence.ConnectionGone(identity, wentOffline)
	}
}

// HandleLoginRequest issues a login code for the connection, obtains the
// matching login URL from the external provider and pushes it back.
func (s *GatewayService) HandleLoginRequest(ctx context.Context, conn contract.Connection) error {
	code, err := s.broker.Issue(conn)
	if err != nil {
		return fmt.Errorf("issue login code: %w", err)
	}
	url, err := s.loginURLs.CreateLoginURL(ctx, code, s.codeTTL)
	if err != nil {
		return fmt.Errorf("create login url: %w", err)
	}
	s.dispatcher.SendTo(conn, event.NewLoginURL(url))
	return nil
}

// CompleteScan notifies the waiting connection that its code was scanned.
// No state changes; the code stays outstanding until CompleteLogin.
func (s *GatewayService) CompleteScan(code domain.LoginCode) error {
	conn, err := s.broker.Resolve(code)
	if err != nil {
		return err
	}
	s.dispatcher.SendTo(conn, event.NewScanSuccess())
	return nil
}

// CompleteLogin consumes the code, issues a token for the confirmed identity
// and finishes the login on the waiting connection.
func (s *GatewayService) CompleteLogin(ctx context.Context, code domain.LoginCode, identity domain.Identity) error {
	conn, err := s.broker.Consume(code)
	if err != nil {
		return err
	}
	token, err := s.tokens.IssueToken(identity)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	s.loginSuccess(conn, identity, token)
	return nil
}

// Authorize verifies a client-presented token. Success binds the identity and
// answers with the login-success envelope; failure tells the client to drop
// its token. Neither outcome is an error for the caller.
func (s *GatewayService) Authorize(ctx context.Context, conn contract.Connection, token string) {
	if !s.tokens.Verify(token) {
		s.log.Warn("authorize rejected", "connection", conn.ID())
		s.dispatcher.SendTo(conn, event.NewInvalidateToken())
		return
	}
	identity, err := s.tokens.Identity(token)
	if err != nil {
		s.dispatcher.SendTo(conn, event.NewInvalidateToken())
		return
	}
	if renewed, ok := s.tokens.RenewIfNeeded(token); ok {
		token = renewed
	}
	s.loginSuccess(conn, identity, token)
}

// PasswordLogin verifies a username/password pair through the external
// credential collaborator and finishes the login on success. Failures answer
// the connection with a generic error envelope; internal faults additionally
// carry a random error id for log correlation.
func (s *GatewayService) PasswordLogin(ctx context.Context, conn contract.Connection, username, password string) {
	identity, err := s.credentials.VerifyPassword(ctx, username, password)
	if goerrors.Is(err, errors.ErrInvalidCredentials) {
		s.log.Warn("password login rejected", "remote", conn.RemoteAddr())
		s.dispatcher.SendTo(conn, event.NewError(loginErrorCode, "invalid username or password"))
		return
	}
	if err != nil {
		errorID := newErrorID()
		s.log.Error("password login failed",
			"error_id", errorID, "remote", conn.RemoteAddr(), "error", err)
		s.dispatcher.SendTo(conn, event.NewError(loginErrorCode,
			fmt.Sprintf("temporary failure, try again later (ErrorID: %s)", errorID)))
		return
	}
	token, err := s.tokens.IssueToken(identity)
	if err != nil {
		s.log.Error("token issuance failed", "identity", identity, "error", err)
		s.dispatcher.SendTo(conn, event.NewError(loginErrorCode, "temporary failure, try again later"))
		return
	}
	s.loginSuccess(conn, identity, token)
}

// SendToIdentity pushes an envelope to every live connection of an identity.
func (s *GatewayService) SendToIdentity(env event.Envelope, identity domain.Identity) {
	s.dispatcher.SendToIdentity(identity, env)
}

// SendToAllOnline pushes an envelope to every registered connection, minus
// the skipped identity's connections when provided.
func (s *GatewayService) SendToAllOnline(env event.Envelope, skip *domain.Identity) {
	s.dispatcher.Broadcast(env, skip)
}

// loginSuccess is the shared tail of every login path: bind the identity,
// report the presence edges, answer with the login-success envelope. The
// edges go to the coordinator before any collaborator I/O, so a racing
// disconnect cannot enqueue its offline event ahead of this online event.
func (s *GatewayService) loginSuccess(conn contract.Connection, identity domain.Identity, token string) {
	wentOnline, previous, previousOffline, ok := s.registry.Bind(conn.ID(), identity)
	if !ok {
		// The connection disappeared between handshake and bind.
		s.log.Debug("connection gone before bind", "connection", conn.ID(), "identity", identity)
		return
	}
	if previous != "" {
		// The connection switched accounts; the old binding is gone.
		s.log.Info("connection rebound",
			"connection", conn.ID(), "previous", previous, "identity", identity)
		s.presence.ConnectionGone(previous, previousOffline)
	}
	s.presence.ConnectionBound(identity, wentOnline)

	role, err := s.roles.HighestRole(identity)
	if err != nil {
		s.log.Warn("role lookup failed, defaulting", "identity", identity, "error", err)
		role = domain.RoleUser
	}
	profile, err := s.directory.Find(identity)
	if err != nil {
		s.log.Debug("no profile for identity", "identity", identity)
		profile = domain.UserProfile{ID: identity}
	}

	s.dispatcher.SendTo(conn, event.NewLoginSuccess(profile, token, role))
	s.log.Info("login success",
		"identity", identity, "connection", conn.ID(), "role", role)
}

func newErrorID() string {
	return fmt.Sprintf("%x%x", time.Now().UnixMilli(), rand.Intn(0xFFFF))
}
