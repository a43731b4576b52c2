package user

import (
	"time"

	"uniformshop-be/internal/auth"
)

type User struct {
	ID           int
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         auth.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSignedIn time.Time
}

func (u *User) Actor() auth.Actor {
	return auth.Actor{UserID: u.ID, OpenID: u.OpenID, Role: u.Role}
}

// Identity is what the external auth provider tells us about a signed-in user.
type Identity struct {
	OpenID      string  `json:"openId"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	LoginMethod *string `json:"loginMethod,omitempty"`
}

type UpsertParams struct {
	Identity
	Role         auth.Role
	LastSignedIn time.Time
}

// RoleFor returns admin for the configured owner and user for everyone else.
func RoleFor(openID, ownerOpenID string) auth.Role {
	if ownerOpenID != "" && openID == ownerOpenID {
		return auth.RoleAdmin
	}
	return auth.RoleUser
}
