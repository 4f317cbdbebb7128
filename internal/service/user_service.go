package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-catalog-api/internal/domain"
	"go-catalog-api/internal/repo"
	"go-catalog-api/pkg/utils"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type ProfilePatch struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

func (s *UserService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	users := repo.NewUserRepo(s.db.WithContext(ctx))
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        strings.TrimSpace(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: utils.HashPassword(password),
	}
	if err := users.Create(u); err != nil {
		if isDupKey(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	users := repo.NewUserRepo(s.db.WithContext(ctx))
	u, err := users.FindByEmail(strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Profile(ctx context.Context, uid string) (*domain.User, error) {
	return repo.NewUserRepo(s.db.WithContext(ctx)).FindByID(uid)
}

func (s *UserService) UpdateProfile(ctx context.Context, uid string, patch ProfilePatch) (*domain.User, error) {
	users := repo.NewUserRepo(s.db.WithContext(ctx))
	u, err := users.FindByID(uid)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		u.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		u.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Password != nil {
		u.PasswordHash = utils.HashPassword(*patch.Password)
	}
	if err := users.Update(u); err != nil {
		if isDupKey(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// isDupKey avoids depending on gorm.ErrDuplicatedKey, which varies by
// driver and gorm version.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
