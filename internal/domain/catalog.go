package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Author is owned by a user; many products may share one author row.
// Deleting an author nulls the reference on its products.
type Author struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;not null;index" json:"-"`
	Name   string `gorm:"size:255;not null" json:"name"`
}

func (Author) TableName() string { return "authors" }

type Product struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	UserID    string          `gorm:"size:36;not null;index" json:"-"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(11,2);not null;default:0" json:"price"`
	CreatedOn time.Time       `gorm:"autoCreateTime" json:"createdon"`
	AuthorID  *string         `gorm:"size:36" json:"-"`
	Author    *Author         `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author"`
	Images    []Gallery       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
}

func (Product) TableName() string { return "products" }

// Gallery is one image of a product; rows cannot outlive their product.
type Gallery struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ProductID string `gorm:"size:36;not null;index" json:"-"`
	Image     string `gorm:"size:512;not null" json:"image"`
}

func (Gallery) TableName() string { return "galleries" }

// All lookups below are scoped to the owning user: rows of other users
// behave as if they do not exist.

type AuthorRepository interface {
	Create(a *Author) error
	FindByOwner(ownerID, id string) (*Author, error)
	FindByOwnerAndName(ownerID, name string) (*Author, error)
	ListByOwner(ownerID string) ([]Author, error)
	Update(a *Author) error
	Delete(ownerID, id string) error
}

type ProductRepository interface {
	Create(p *Product) error
	FindByOwner(ownerID, id string) (*Product, error)
	ListByOwner(ownerID string) ([]Product, error)
	Update(p *Product) error
	Delete(ownerID, id string) error
}

type GalleryRepository interface {
	Create(g *Gallery) error
	FindByProduct(productID, id string) (*Gallery, error)
	ListByProduct(productID string) ([]Gallery, error)
	Update(g *Gallery) error
	Delete(productID, id string) error
	DeleteByProduct(productID string) error
}
