package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"chat-gateway/contract"
	"chat-gateway/domain"
)

// QRLinkProvider is the default login-URL collaborator: it renders a
// scannable link onto a configured base URL. Deployments backed by a real
// QR ticket service plug their own LoginURLProvider into the gateway instead.
type QRLinkProvider struct {
	baseURL string
}

var _ contract.LoginURLProvider = (*QRLinkProvider)(nil)

func NewQRLinkProvider(baseURL string) *QRLinkProvider {
	return &QRLinkProvider{baseURL: baseURL}
}

func (p *QRLinkProvider) CreateLoginURL(_ context.Context, code domain.LoginCode, ttl time.Duration) (string, error) {
	base, err := url.Parse(p.baseURL)
	if err != nil {
		return "", fmt.Errorf("login url base: %w", err)
	}
	query := base.Query()
	query.Set("code", fmt.Sprintf("%d", code))
	query.Set("ttl", fmt.Sprintf("%d", int(ttl.Seconds())))
	base.RawQuery = query.Encode()
	return base.String(), nil
}
