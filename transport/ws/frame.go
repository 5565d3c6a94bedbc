// Package ws adapts gorilla/websocket connections to the gateway core: it
// owns the connection lifecycle, the read/write pumps, and the inbound frame
// protocol, and hands every live connection to the gateway service.
package ws

import "encoding/json"

// RequestType tags inbound client frames. Values are part of the wire
// protocol and must stay stable.
type RequestType int

const (
	RequestLogin RequestType = iota + 1
	RequestHeartbeat
	RequestAuthorize
	RequestPasswordLogin
)

// Request is the inbound frame: a type tag plus a type-specific body.
type Request struct {
	Type RequestType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type AuthorizeRequest struct {
	Token string `json:"token"`
}

type PasswordLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
