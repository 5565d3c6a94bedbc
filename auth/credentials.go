package auth

import (
	"context"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/errors"
)

// NoCredentialBackend rejects every password login. The gateway consumes
// credential verification as an external collaborator; deployments without
// one get deterministic denials instead of a nil port.
type NoCredentialBackend struct{}

var _ contract.CredentialVerifier = NoCredentialBackend{}

func (NoCredentialBackend) VerifyPassword(context.Context, string, string) (domain.Identity, error) {
	return "", errors.ErrInvalidCredentials
}
