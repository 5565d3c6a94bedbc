package runtime

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/errors"
)

// maxLoginCode bounds candidates so they fit the signed 32-bit scene id the
// external login-URL provider accepts.
const maxLoginCode = math.MaxInt32

type pendingLogin struct {
	conn      contract.Connection
	expiresAt time.Time
}

// LoginCodeBroker issues numeric codes unique among currently outstanding
// codes and resolves them back to the waiting connection exactly once.
//
// Candidates come from a shared monotonic sequence, so concurrent issuers
// never collide without a lock around the whole map; the local presence check
// only guards against sequence wraparound racing a not-yet-expired old code.
type LoginCodeBroker struct {
	mu      sync.Mutex
	log     *slog.Logger
	seq     contract.Sequence
	ttl     time.Duration
	pending map[domain.LoginCode]pendingLogin
}

var _ contract.IBroker = (*LoginCodeBroker)(nil)

func NewLoginCodeBroker(log *slog.Logger, seq contract.Sequence, ttl time.Duration) *LoginCodeBroker {
	return &LoginCodeBroker{
		log:     log,
		seq:     seq,
		ttl:     ttl,
		pending: make(map[domain.LoginCode]pendingLogin),
	}
}

// Issue obtains the next free code and stores code → conn with the configured
// time to live.
func (b *LoginCodeBroker) Issue(conn contract.Connection) (domain.LoginCode, error) {
	for {
		next, err := b.seq.Next()
		if err != nil {
			return 0, fmt.Errorf("login code sequence: %w", err)
		}
		code := domain.LoginCode(next%maxLoginCode) + 1

		b.mu.Lock()
		entry, taken := b.pending[code]
		if taken && time.Now().After(entry.expiresAt) {
			// Wrapped onto an expired code the janitor hasn't swept yet.
			taken = false
		}
		if !taken {
			b.pending[code] = pendingLogin{conn: conn, expiresAt: time.Now().Add(b.ttl)}
			b.mu.Unlock()
			return code, nil
		}
		b.mu.Unlock()
		b.log.Debug("login code collision, retrying", "code", code)
	}
}

// Resolve returns the waiting connection without consuming the code.
func (b *LoginCodeBroker) Resolve(code domain.LoginCode) (contract.Connection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.pending[code]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, errors.ErrCodeNotFound
	}
	return entry.conn, nil
}

// Consume removes the mapping and returns the waiting connection. A second
// caller, or a caller holding an expired code, gets ErrCodeNotFound.
func (b *LoginCodeBroker) Consume(code domain.LoginCode) (contract.Connection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.pending[code]
	if !ok {
		return nil, errors.ErrCodeNotFound
	}
	delete(b.pending, code)
	if time.Now().After(entry.expiresAt) {
		return nil, errors.ErrCodeNotFound
	}
	return entry.conn, nil
}

// Sweep drops expired entries and reports how many were removed. Called
// periodically by the janitor worker; Resolve and Consume also check expiry
// lazily, so sweeping only reclaims memory.
func (b *LoginCodeBroker) Sweep() int {
	now := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for code, entry := range b.pending {
		if now.After(entry.expiresAt) {
			delete(b.pending, code)
			removed++
		}
	}
	return removed
}

// Outstanding reports the number of live codes, expired entries included
// until the next sweep.
func (b *LoginCodeBroker) Outstanding() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// MemorySequence is the in-process Sequence used in tests and single-node
// setups without a database.
type MemorySequence struct {
	mu   sync.Mutex
	next uint64
}

func (s *MemorySequence) Next() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return n, nil
}
