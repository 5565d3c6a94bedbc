package event

import (
	"encoding/json"
	"time"

	"chat-gateway/domain"
)

// Type tags the payload of a push envelope. Values are part of the wire
// protocol and must stay stable.
type Type int

const (
	TypeLoginURL Type = iota + 1
	TypeLoginScanSuccess
	TypeLoginSuccess
	TypeMessage
	TypeOnlineOfflineNotify
	TypeInvalidateToken
	TypeBlock
	TypeMark
	TypeRecall
	TypeApply
)

// Envelope is the tagged, serializable unit handed to the push dispatcher.
// The dispatcher never interprets Data; it serializes the envelope once and
// writes the resulting frame to every target connection.
type Envelope struct {
	Type Type   `json:"type"`
	Data any    `json:"data,omitempty"`
	Code int    `json:"code,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// Marshal renders the envelope as the JSON text frame pushed to clients.
func (e Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

type LoginURL struct {
	LoginURL string `json:"loginUrl"`
}

type LoginSuccess struct {
	UID    domain.Identity `json:"uid"`
	Name   string          `json:"name"`
	Avatar string          `json:"avatar"`
	Token  string          `json:"token"`
	Power  int             `json:"power"`
}

const (
	activeStatusOnline  = 1
	activeStatusOffline = 2
)

type ChatMember struct {
	UID          domain.Identity `json:"uid"`
	Name         string          `json:"name"`
	Avatar       string          `json:"avatar"`
	ActiveStatus int             `json:"activeStatus"`
	LastActive   time.Time       `json:"lastOptTime"`
}

type OnlineOfflineNotify struct {
	ChangeList []ChatMember `json:"changeList"`
	OnlineNum  int          `json:"onlineNum"`
}

func NewLoginURL(url string) Envelope {
	return Envelope{Type: TypeLoginURL, Data: LoginURL{LoginURL: url}}
}

func NewScanSuccess() Envelope {
	return Envelope{Type: TypeLoginScanSuccess}
}

func NewLoginSuccess(profile domain.UserProfile, token string, role domain.Role) Envelope {
	return Envelope{Type: TypeLoginSuccess, Data: LoginSuccess{
		UID:    profile.ID,
		Name:   profile.Name,
		Avatar: profile.Avatar,
		Token:  token,
		Power:  role.Power(),
	}}
}

func NewInvalidateToken() Envelope {
	return Envelope{Type: TypeInvalidateToken}
}

func NewMessage(payload any) Envelope {
	return Envelope{Type: TypeMessage, Data: payload}
}

func NewOnlineNotify(profile domain.UserProfile, onlineNum int) Envelope {
	return onlineOfflineNotify(profile, activeStatusOnline, onlineNum)
}

func NewOfflineNotify(profile domain.UserProfile, onlineNum int) Envelope {
	return onlineOfflineNotify(profile, activeStatusOffline, onlineNum)
}

func onlineOfflineNotify(profile domain.UserProfile, status, onlineNum int) Envelope {
	return Envelope{Type: TypeOnlineOfflineNotify, Data: OnlineOfflineNotify{
		ChangeList: []ChatMember{{
			UID:          profile.ID,
			Name:         profile.Name,
			Avatar:       profile.Avatar,
			ActiveStatus: status,
			LastActive:   profile.LastActive,
		}},
		OnlineNum: onlineNum,
	}}
}

// NewError builds the generic error envelope sent back on a failed request,
// e.g. a rejected password login.
func NewError(code int, msg string) Envelope {
	return Envelope{Code: code, Msg: msg}
}
