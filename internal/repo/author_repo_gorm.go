package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-catalog-api/internal/domain"
)

type AuthorRepo struct{ db *gorm.DB }

func NewAuthorRepo(db *gorm.DB) *AuthorRepo { return &AuthorRepo{db: db} }

func (r *AuthorRepo) Create(a *domain.Author) error { return r.db.Create(a).Error }

func (r *AuthorRepo) FindByOwner(ownerID, id string) (*domain.Author, error) {
	var a domain.Author
	err := r.db.First(&a, "user_id = ? AND id = ?", ownerID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &a, err
}

func (r *AuthorRepo) FindByOwnerAndName(ownerID, name string) (*domain.Author, error) {
	var a domain.Author
	err := r.db.First(&a, "user_id = ? AND name = ?", ownerID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &a, err
}

func (r *AuthorRepo) ListByOwner(ownerID string) ([]domain.Author, error) {
	var out []domain.Author
	err := r.db.Where("user_id = ?", ownerID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *AuthorRepo) Update(a *domain.Author) error { return r.db.Save(a).Error }

// Delete removes the author row; products referencing it fall back to a
// null author via the SET NULL constraint. sqlite test databases do not
// enforce the constraint, so the unlink runs explicitly first.
func (r *AuthorRepo) Delete(ownerID, id string) error {
	if _, err := r.FindByOwner(ownerID, id); err != nil {
		return err
	}
	if err := r.db.Model(&domain.Product{}).
		Where("author_id = ?", id).
		Update("author_id", nil).Error; err != nil {
		return err
	}
	return r.db.Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&domain.Author{}).Error
}
