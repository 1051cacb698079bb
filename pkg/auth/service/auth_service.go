package service

import (
	"time"

	"farmhub/entities"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      *entities.User `json:"user"`
}

type PasswordChange struct {
	Current string `json:"current_password"`
	New     string `json:"new_password"`
}

type AuthService interface {
	Login(in Credentials) (*LoginResult, error)
	Logout(token string) error
	// Authenticate resolves a bearer token to its user. Unknown and expired
	// tokens are unauthorized.
	Authenticate(token string) (*entities.User, error)
	Register(in Credentials) (*entities.User, error)
	// ChangePassword ends every other session of the user.
	ChangePassword(userID uint, token string, in PasswordChange) error
	SetRole(userID uint, role string) (*entities.User, error)
	ListUsers() ([]entities.User, error)
	// EnsureAdmin creates an admin account unless the username exists.
	EnsureAdmin(username, password string) (created bool, err error)
}
