package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-catalog-api/internal/domain"
)

type GalleryRepo struct{ db *gorm.DB }

func NewGalleryRepo(db *gorm.DB) *GalleryRepo { return &GalleryRepo{db: db} }

func (r *GalleryRepo) Create(g *domain.Gallery) error { return r.db.Create(g).Error }

func (r *GalleryRepo) FindByProduct(productID, id string) (*domain.Gallery, error) {
	var g domain.Gallery
	err := r.db.First(&g, "product_id = ? AND id = ?", productID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &g, err
}

func (r *GalleryRepo) ListByProduct(productID string) ([]domain.Gallery, error) {
	var out []domain.Gallery
	err := r.db.Where("product_id = ?", productID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *GalleryRepo) Update(g *domain.Gallery) error { return r.db.Save(g).Error }

func (r *GalleryRepo) Delete(productID, id string) error {
	res := r.db.Where("product_id = ? AND id = ?", productID, id).Delete(&domain.Gallery{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GalleryRepo) DeleteByProduct(productID string) error {
	return r.db.Where("product_id = ?", productID).Delete(&domain.Gallery{}).Error
}
