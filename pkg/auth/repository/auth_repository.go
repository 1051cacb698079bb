package repository

import (
	"time"

	"farmhub/entities"
)

type AuthRepository interface {
	FindUserByUsername(username string) (*entities.User, error)
	FindUserByID(id uint) (*entities.User, error)
	ListUsers() ([]entities.User, error)
	CreateUser(u *entities.User) error
	SaveUser(u *entities.User) error

	CreateSession(s *entities.Session) error
	// FindSession loads the session with its user.
	FindSession(token string) (*entities.Session, error)
	DeleteSession(token string) error
	DeleteUserSessions(userID uint, except string) error
	PurgeExpired(now time.Time) (int64, error)
}
