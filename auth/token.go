package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/errors"
)

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// JWTAuthenticator implements the token collaborator with HS256 JWTs.
// Renewal issues a fresh token when the remaining lifetime drops below the
// renew threshold; the caller decides whether to push it to the client.
type JWTAuthenticator struct {
	secret         []byte
	tokenTTL       time.Duration
	renewThreshold time.Duration
}

var _ contract.Authenticator = (*JWTAuthenticator)(nil)

func NewJWTAuthenticator(secret string, tokenTTL, renewThreshold time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{
		secret:         []byte(secret),
		tokenTTL:       tokenTTL,
		renewThreshold: renewThreshold,
	}
}

// IssueToken creates a signed JWT for an identity.
func (a *JWTAuthenticator) IssueToken(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UID: string(identity),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "chat-gateway",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return signed, nil
}

// Verify reports whether the token's signature and expiration hold.
func (a *JWTAuthenticator) Verify(token string) bool {
	_, err := a.parse(token)
	return err == nil
}

// Identity extracts the authenticated identity from a valid token.
func (a *JWTAuthenticator) Identity(token string) (domain.Identity, error) {
	claims, err := a.parse(token)
	if err != nil {
		return "", errors.ErrInvalidToken
	}
	return domain.Identity(claims.UID), nil
}

// RenewIfNeeded returns a fresh token when the current one is valid but close
// to expiry; otherwise it returns the input unchanged.
func (a *JWTAuthenticator) RenewIfNeeded(token string) (string, bool) {
	claims, err := a.parse(token)
	if err != nil || claims.ExpiresAt == nil {
		return token, false
	}
	if time.Until(claims.ExpiresAt.Time) > a.renewThreshold {
		return token, false
	}
	renewed, err := a.IssueToken(domain.Identity(claims.UID))
	if err != nil {
		return token, false
	}
	return renewed, true
}

func (a *JWTAuthenticator) parse(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
