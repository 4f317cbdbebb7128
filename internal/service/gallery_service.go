package service

import (
	"context"

	"gorm.io/gorm"

	"go-catalog-api/internal/domain"
	"go-catalog-api/internal/repo"
	"go-catalog-api/internal/storage"
)

// GalleryService mutates single gallery rows. Ownership is transitive:
// every operation first resolves the product under the requesting user,
// so another user's gallery is indistinguishable from a missing one.
type GalleryService struct {
	db    *gorm.DB
	store storage.ImageStore
}

func NewGalleryService(db *gorm.DB, store storage.ImageStore) *GalleryService {
	return &GalleryService{db: db, store: store}
}

func (s *GalleryService) List(ctx context.Context, uid, productID string) ([]domain.Gallery, error) {
	db := s.db.WithContext(ctx)
	if _, err := repo.NewProductRepo(db).FindByOwner(uid, productID); err != nil {
		return nil, err
	}
	return repo.NewGalleryRepo(db).ListByProduct(productID)
}

// ReplaceImage swaps the stored payload of one gallery row. The old file
// is removed only after the row points at the new one.
func (s *GalleryService) ReplaceImage(ctx context.Context, uid, productID, galleryID, payload string) (*domain.Gallery, error) {
	data, err := storage.Decode(payload)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	if _, err := repo.NewProductRepo(db).FindByOwner(uid, productID); err != nil {
		return nil, err
	}
	galleries := repo.NewGalleryRepo(db)
	g, err := galleries.FindByProduct(productID, galleryID)
	if err != nil {
		return nil, err
	}

	ref, err := s.store.Save(productID, data)
	if err != nil {
		return nil, err
	}
	old := g.Image
	g.Image = ref
	if err := galleries.Update(g); err != nil {
		_ = s.store.Remove(ref)
		return nil, err
	}
	_ = s.store.Remove(old)
	return g, nil
}

func (s *GalleryService) Remove(ctx context.Context, uid, productID, galleryID string) error {
	db := s.db.WithContext(ctx)
	if _, err := repo.NewProductRepo(db).FindByOwner(uid, productID); err != nil {
		return err
	}
	galleries := repo.NewGalleryRepo(db)
	g, err := galleries.FindByProduct(productID, galleryID)
	if err != nil {
		return err
	}
	if err := galleries.Delete(productID, galleryID); err != nil {
		return err
	}
	_ = s.store.Remove(g.Image)
	return nil
}
