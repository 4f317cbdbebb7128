package repo

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-catalog-api/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

// Associations are reconciled explicitly by the composite writer, never
// written implicitly alongside the product row.
func (r *ProductRepo) Create(p *domain.Product) error {
	return r.db.Omit(clause.Associations).Create(p).Error
}

func (r *ProductRepo) FindByOwner(ownerID, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Preload("Author").Preload("Images").
		First(&p, "user_id = ? AND id = ?", ownerID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &p, err
}

func (r *ProductRepo) ListByOwner(ownerID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Preload("Author").Preload("Images").
		Where("user_id = ?", ownerID).Order("created_on DESC").Find(&out).Error
	return out, err
}

// Update writes every column, so a cleared (nil) author_id really lands
// as NULL instead of being skipped as a zero value.
func (r *ProductRepo) Update(p *domain.Product) error {
	return r.db.Omit(clause.Associations).Save(p).Error
}

// Delete cascades to the product's gallery rows but leaves its author
// untouched. The cascade is done here rather than left to the database so
// that drivers without enforced foreign keys behave identically.
func (r *ProductRepo) Delete(ownerID, id string) error {
	if _, err := r.FindByOwner(ownerID, id); err != nil {
		return err
	}
	if err := r.db.Where("product_id = ?", id).Delete(&domain.Gallery{}).Error; err != nil {
		return err
	}
	return r.db.Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&domain.Product{}).Error
}
