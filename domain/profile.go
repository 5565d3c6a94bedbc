package domain

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleChatManager Role = "chat_manager"
	RoleUser        Role = "user"
)

// Power maps a role to the numeric permission level pushed to clients.
func (r Role) Power() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleChatManager:
		return 1
	default:
		return 0
	}
}

// HighestRole picks the most privileged role of a set.
func HighestRole(roles []Role) Role {
	highest := RoleUser
	for _, role := range roles {
		if role.Power() > highest.Power() {
			highest = role
		}
	}
	return highest
}

// UserProfile is the directory view of an account, enough to build the
// login-success and presence payloads. Ownership of the full user record
// stays with the persistence layer outside this subsystem.
type UserProfile struct {
	ID         Identity  `json:"id"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	Roles      []Role    `json:"roles"`
	LastActive time.Time `json:"last_active"`
}
