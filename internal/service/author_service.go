package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go-catalog-api/internal/domain"
	"go-catalog-api/internal/repo"
	"go-catalog-api/pkg/utils"
)

type AuthorService struct{ db *gorm.DB }

func NewAuthorService(db *gorm.DB) *AuthorService { return &AuthorService{db: db} }

func (s *AuthorService) List(ctx context.Context, uid string) ([]domain.Author, error) {
	return repo.NewAuthorRepo(s.db.WithContext(ctx)).ListByOwner(uid)
}

func (s *AuthorService) Get(ctx context.Context, uid, id string) (*domain.Author, error) {
	return repo.NewAuthorRepo(s.db.WithContext(ctx)).FindByOwner(uid, id)
}

func (s *AuthorService) Create(ctx context.Context, uid, name string) (*domain.Author, error) {
	a := &domain.Author{ID: utils.NewID(), UserID: uid, Name: strings.TrimSpace(name)}
	if err := repo.NewAuthorRepo(s.db.WithContext(ctx)).Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AuthorService) Update(ctx context.Context, uid, id, name string) (*domain.Author, error) {
	authors := repo.NewAuthorRepo(s.db.WithContext(ctx))
	a, err := authors.FindByOwner(uid, id)
	if err != nil {
		return nil, err
	}
	a.Name = strings.TrimSpace(name)
	if err := authors.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete is independent of products: rows referencing the author fall back
// to a null author, the products themselves stay.
func (s *AuthorService) Delete(ctx context.Context, uid, id string) error {
	return repo.NewAuthorRepo(s.db.WithContext(ctx)).Delete(uid, id)
}
