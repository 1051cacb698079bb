package serviceImp

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	repo "farmhub/pkg/auth/repository"
	"farmhub/pkg/auth/service"
	"farmhub/pkg/logging"
)

const minPasswordLen = 8

var errBadLogin = apperr.Unauthorized("invalid username or password")

type authSvc struct {
	r    repo.AuthRepository
	ttl  time.Duration
	cost int
	now  func() time.Time
}

func NewAuthService(r repo.AuthRepository, ttl time.Duration) service.AuthService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &authSvc{r: r, ttl: ttl, cost: bcrypt.DefaultCost, now: time.Now}
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (s *authSvc) hash(pw string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), s.cost)
	return string(h), err
}

func checkCredentials(in service.Credentials) (string, error) {
	name := strings.ToLower(strings.TrimSpace(in.Username))
	if len(name) < 3 || len(name) > 64 {
		return "", apperr.Validation("username", "must be 3 to 64 characters")
	}
	if len(in.Password) < minPasswordLen {
		return "", apperr.Validation("password", "must be at least 8 characters")
	}
	if len(in.Password) > 72 {
		return "", apperr.Validation("password", "must be at most 72 bytes")
	}
	return name, nil
}

func (s *authSvc) Login(in service.Credentials) (*service.LoginResult, error) {
	now := s.now()
	if n, err := s.r.PurgeExpired(now); err != nil {
		logging.Component("auth").WithError(err).Warn("purge expired sessions")
	} else if n > 0 {
		logging.Component("auth").Debugf("purged %d expired sessions", n)
	}

	u, err := s.r.FindUserByUsername(strings.ToLower(strings.TrimSpace(in.Username)))
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, errBadLogin
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, errBadLogin
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	sess := &entities.Session{Token: token, UserID: u.ID, ExpiresAt: now.Add(s.ttl)}
	if err := s.r.CreateSession(sess); err != nil {
		return nil, err
	}
	logging.Component("auth").WithField("user", u.Username).Info("login")
	return &service.LoginResult{Token: token, ExpiresAt: sess.ExpiresAt, User: u}, nil
}

func (s *authSvc) Logout(token string) error {
	return s.r.DeleteSession(token)
}

func (s *authSvc) Authenticate(token string) (*entities.User, error) {
	if token == "" {
		return nil, apperr.Unauthorized("missing session token")
	}
	sess, err := s.r.FindSession(token)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("invalid session")
		}
		return nil, err
	}
	if sess.Expired(s.now()) || sess.User == nil {
		return nil, apperr.Unauthorized("session expired")
	}
	return sess.User, nil
}

func (s *authSvc) Register(in service.Credentials) (*entities.User, error) {
	name, err := checkCredentials(in)
	if err != nil {
		return nil, err
	}
	return s.create(name, in.Password, entities.RolePublic)
}

func (s *authSvc) create(name, password, role string) (*entities.User, error) {
	h, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	u := &entities.User{Username: name, PasswordHash: h, Role: role}
	if err := s.r.CreateUser(u); err != nil {
		if apperr.IsDuplicate(err) {
			return nil, apperr.Conflict("username %s is taken", name)
		}
		return nil, err
	}
	return u, nil
}

func (s *authSvc) ChangePassword(userID uint, token string, in service.PasswordChange) error {
	u, err := s.r.FindUserByID(userID)
	if err != nil {
		return apperr.OrNotFound(err, "user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Current)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperr.Validation("current_password", "is incorrect")
		}
		return err
	}
	if _, err := checkCredentials(service.Credentials{Username: u.Username, Password: in.New}); err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Field == "password" {
			return apperr.Validation("new_password", ae.Msg)
		}
		return err
	}
	if u.PasswordHash, err = s.hash(in.New); err != nil {
		return err
	}
	if err := s.r.SaveUser(u); err != nil {
		return err
	}
	return s.r.DeleteUserSessions(u.ID, token)
}

func (s *authSvc) SetRole(userID uint, role string) (*entities.User, error) {
	if role != entities.RoleAdmin && role != entities.RolePublic {
		return nil, apperr.Validation("role", "must be admin or public")
	}
	u, err := s.r.FindUserByID(userID)
	if err != nil {
		return nil, apperr.OrNotFound(err, "user")
	}
	u.Role = role
	if err := s.r.SaveUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authSvc) ListUsers() ([]entities.User, error) { return s.r.ListUsers() }

func (s *authSvc) EnsureAdmin(username, password string) (bool, error) {
	name, err := checkCredentials(service.Credentials{Username: username, Password: password})
	if err != nil {
		return false, err
	}
	if _, err := s.r.FindUserByUsername(name); err == nil {
		return false, nil
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return false, err
	}
	if _, err := s.create(name, password, entities.RoleAdmin); err != nil {
		return false, err
	}
	logging.Component("auth").WithField("user", name).Info("bootstrap admin created")
	return true, nil
}
