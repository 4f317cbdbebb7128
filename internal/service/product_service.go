package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"go-catalog-api/internal/domain"
	"go-catalog-api/internal/repo"
	"go-catalog-api/internal/storage"
	"go-catalog-api/pkg/utils"
)

// ProductService is the composite writer: one incoming product write fans
// out into the product row plus its nested author and gallery relations.
// The whole fan-out runs in a single transaction, so a failure in a nested
// step rolls back the product row as well.
type ProductService struct {
	db    *gorm.DB
	store storage.ImageStore
}

func NewProductService(db *gorm.DB, store storage.ImageStore) *ProductService {
	return &ProductService{db: db, store: store}
}

type AuthorInput struct {
	Name string `json:"name"`
}

type ProductInput struct {
	Name         string           `json:"name" binding:"required,max=255"`
	Price        *decimal.Decimal `json:"price"`
	Author       *AuthorInput     `json:"author"`
	ImagesToLoad *[]string        `json:"images_to_load"`
}

// ProductPatch distinguishes "key absent" (nil pointer, relation untouched)
// from "key present but empty" (clear the relation).
type ProductPatch struct {
	Name         *string          `json:"name" binding:"omitempty,max=255"`
	Price        *decimal.Decimal `json:"price"`
	User         json.RawMessage  `json:"user"` // any attempt to reassign the owner is rejected
	Author       *AuthorInput     `json:"author"`
	ImagesToLoad *[]string        `json:"images_to_load"`
}

func (s *ProductService) Create(ctx context.Context, uid string, in ProductInput) (*domain.Product, error) {
	images, err := decodeAll(in.ImagesToLoad)
	if err != nil {
		return nil, err
	}

	var out *domain.Product
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repo.NewProductRepo(tx)
		authors := repo.NewAuthorRepo(tx)
		galleries := repo.NewGalleryRepo(tx)

		p := &domain.Product{
			ID:     utils.NewID(),
			UserID: uid,
			Name:   in.Name,
			Price:  decimal.Zero,
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if name := authorName(in.Author); name != "" {
			a, err := getOrCreateAuthor(authors, uid, name)
			if err != nil {
				return err
			}
			p.AuthorID = &a.ID
		}
		if err := products.Create(p); err != nil {
			return err
		}
		if err := s.createGallery(galleries, p.ID, images); err != nil {
			return err
		}

		out, err = products.FindByOwner(uid, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductService) Get(ctx context.Context, uid, id string) (*domain.Product, error) {
	return repo.NewProductRepo(s.db.WithContext(ctx)).FindByOwner(uid, id)
}

func (s *ProductService) List(ctx context.Context, uid string) ([]domain.Product, error) {
	return repo.NewProductRepo(s.db.WithContext(ctx)).ListByOwner(uid)
}

func (s *ProductService) Update(ctx context.Context, uid, id string, patch ProductPatch) (*domain.Product, error) {
	if len(patch.User) > 0 {
		return nil, domain.ErrOwnerImmutable
	}
	images, err := decodeAll(patch.ImagesToLoad)
	if err != nil {
		return nil, err
	}

	var out *domain.Product
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repo.NewProductRepo(tx)
		authors := repo.NewAuthorRepo(tx)
		galleries := repo.NewGalleryRepo(tx)

		p, err := products.FindByOwner(uid, id)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}

		// Author key present: the current author row is deleted outright
		// (not just unlinked), then the replacement is get-or-created.
		// An empty payload leaves the product authorless.
		if patch.Author != nil {
			if p.AuthorID != nil {
				if err := authors.Delete(uid, *p.AuthorID); err != nil &&
					!errors.Is(err, domain.ErrNotFound) {
					return err
				}
				p.AuthorID = nil
			}
			if name := authorName(patch.Author); name != "" {
				a, err := getOrCreateAuthor(authors, uid, name)
				if err != nil {
					return err
				}
				p.AuthorID = &a.ID
			}
		}

		// Images key present: wholesale replacement, an empty list clears
		// the gallery.
		if patch.ImagesToLoad != nil {
			if err := galleries.DeleteByProduct(p.ID); err != nil {
				return err
			}
			if err := s.createGallery(galleries, p.ID, images); err != nil {
				return err
			}
		}

		if err := products.Update(p); err != nil {
			return err
		}
		out, err = products.FindByOwner(uid, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the product and, by cascade, its gallery rows. The author
// row always survives. Stored image files are cleaned up best-effort once
// the transaction commits.
func (s *ProductService) Delete(ctx context.Context, uid, id string) error {
	var refs []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		galleries := repo.NewGalleryRepo(tx)
		imgs, err := galleries.ListByProduct(id)
		if err != nil {
			return err
		}
		if err := repo.NewProductRepo(tx).Delete(uid, id); err != nil {
			return err
		}
		for _, g := range imgs {
			refs = append(refs, g.Image)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, ref := range refs {
		_ = s.store.Remove(ref)
	}
	return nil
}

func (s *ProductService) createGallery(galleries *repo.GalleryRepo, productID string, images [][]byte) error {
	for _, data := range images {
		ref, err := s.store.Save(productID, data)
		if err != nil {
			return err
		}
		g := &domain.Gallery{ID: utils.NewID(), ProductID: productID, Image: ref}
		if err := galleries.Create(g); err != nil {
			return err
		}
	}
	return nil
}

func getOrCreateAuthor(authors *repo.AuthorRepo, uid, name string) (*domain.Author, error) {
	a, err := authors.FindByOwnerAndName(uid, name)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	a = &domain.Author{ID: utils.NewID(), UserID: uid, Name: name}
	if err := authors.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func authorName(in *AuthorInput) string {
	if in == nil {
		return ""
	}
	return strings.TrimSpace(in.Name)
}

// decodeAll validates every image payload before any row is touched, so a
// malformed image fails the request without destroying existing state.
func decodeAll(payloads *[]string) ([][]byte, error) {
	if payloads == nil {
		return nil, nil
	}
	out := make([][]byte, 0, len(*payloads))
	for _, p := range *payloads {
		b, err := storage.Decode(p)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
