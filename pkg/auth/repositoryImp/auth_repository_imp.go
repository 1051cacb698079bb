package repositoryImp

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmhub/entities"
	"farmhub/pkg/auth/repository"
)

type authRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AuthRepository { return &authRepo{db} }

func (r *authRepo) FindUserByUsername(username string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepo) FindUserByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepo) ListUsers() ([]entities.User, error) {
	var out []entities.User
	return out, r.db.Order("username ASC").Find(&out).Error
}

func (r *authRepo) CreateUser(u *entities.User) error { return r.db.Create(u).Error }

func (r *authRepo) SaveUser(u *entities.User) error { return r.db.Save(u).Error }

func (r *authRepo) CreateSession(s *entities.Session) error {
	return r.db.Omit(clause.Associations).Create(s).Error
}

func (r *authRepo) FindSession(token string) (*entities.Session, error) {
	var s entities.Session
	if err := r.db.Preload("User").Where("token = ?", token).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *authRepo) DeleteSession(token string) error {
	return r.db.Where("token = ?", token).Delete(&entities.Session{}).Error
}

func (r *authRepo) DeleteUserSessions(userID uint, except string) error {
	return r.db.Where("user_id = ? AND token <> ?", userID, except).Delete(&entities.Session{}).Error
}

func (r *authRepo) PurgeExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at <= ?", now).Delete(&entities.Session{})
	return res.RowsAffected, res.Error
}
