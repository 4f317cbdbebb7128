package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-catalog-api/internal/domain"
)

func strp(s string) *string { return &s }

func imagesp(imgs ...string) *[]string { return &imgs }

func TestProductCreate_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")

	p, err := svc.Create(context.Background(), u.ID, ProductInput{Name: "Chair"})
	require.NoError(t, err)

	assert.Equal(t, "Chair", p.Name)
	assert.True(t, p.Price.Equal(decimal.Zero))
	assert.Nil(t, p.Author)
	assert.Empty(t, p.Images)
	assert.False(t, p.CreatedOn.IsZero())
}

func TestProductCreate_NestedAuthorGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p1, err := svc.Create(ctx, u.ID, ProductInput{
		Name:   "Chair",
		Author: &AuthorInput{Name: "Knoll"},
	})
	require.NoError(t, err)
	require.NotNil(t, p1.Author)
	assert.Equal(t, "Knoll", p1.Author.Name)
	assert.Equal(t, int64(1), countRows(t, db, &domain.Author{}))

	// Same author name again: the row is reused, not duplicated.
	p2, err := svc.Create(ctx, u.ID, ProductInput{
		Name:   "Table",
		Author: &AuthorInput{Name: "Knoll"},
	})
	require.NoError(t, err)
	require.NotNil(t, p2.Author)
	assert.Equal(t, p1.Author.ID, p2.Author.ID)
	assert.Equal(t, int64(1), countRows(t, db, &domain.Author{}))
}

func TestProductCreate_AuthorScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	ctx := context.Background()

	pa, err := svc.Create(ctx, alice.ID, ProductInput{Name: "Chair", Author: &AuthorInput{Name: "Knoll"}})
	require.NoError(t, err)
	pb, err := svc.Create(ctx, bob.ID, ProductInput{Name: "Chair", Author: &AuthorInput{Name: "Knoll"}})
	require.NoError(t, err)

	// Same name under different owners gives two distinct rows.
	assert.NotEqual(t, pa.Author.ID, pb.Author.ID)
	assert.Equal(t, int64(2), countRows(t, db, &domain.Author{}))
}

func TestProductCreate_WithImages(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	img := imagePayload(t)

	p, err := svc.Create(context.Background(), u.ID, ProductInput{
		Name:         "Chair",
		ImagesToLoad: imagesp(img, img),
	})
	require.NoError(t, err)
	assert.Len(t, p.Images, 2)
	assert.Equal(t, int64(2), countRows(t, db, &domain.Gallery{}))
}

func TestProductCreate_MalformedImageRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")

	_, err := svc.Create(context.Background(), u.ID, ProductInput{
		Name:         "Chair",
		ImagesToLoad: imagesp(imagePayload(t), "!!not-base64!!"),
	})
	require.ErrorIs(t, err, domain.ErrMalformedImage)

	// Valid base64 that is not an image fails later, while the product row
	// is already inside the transaction; it must roll back too.
	notAnImage := base64.StdEncoding.EncodeToString([]byte("plain text"))
	_, err = svc.Create(context.Background(), u.ID, ProductInput{
		Name:         "Chair",
		ImagesToLoad: imagesp(imagePayload(t), notAnImage),
	})
	require.ErrorIs(t, err, domain.ErrMalformedImage)

	assert.Equal(t, int64(0), countRows(t, db, &domain.Product{}))
	assert.Equal(t, int64(0), countRows(t, db, &domain.Gallery{}))
}

func TestProductUpdate_ScalarsOnlyLeaveRelationsAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, ProductInput{
		Name:         "Chair",
		Author:       &AuthorInput{Name: "Knoll"},
		ImagesToLoad: imagesp(imagePayload(t)),
	})
	require.NoError(t, err)

	price := decimal.RequireFromString("19.99")
	got, err := svc.Update(ctx, u.ID, p.ID, ProductPatch{
		Name:  strp("Armchair"),
		Price: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, "Armchair", got.Name)
	assert.True(t, got.Price.Equal(price))
	require.NotNil(t, got.Author)
	assert.Equal(t, "Knoll", got.Author.Name)
	assert.Len(t, got.Images, 1)
	assert.Equal(t, p.Images[0].ID, got.Images[0].ID)
}

func TestProductUpdate_AuthorReplaced(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, ProductInput{Name: "Chair", Author: &AuthorInput{Name: "Knoll"}})
	require.NoError(t, err)
	oldID := p.Author.ID

	got, err := svc.Update(ctx, u.ID, p.ID, ProductPatch{Author: &AuthorInput{Name: "Vitra"}})
	require.NoError(t, err)

	require.NotNil(t, got.Author)
	assert.Equal(t, "Vitra", got.Author.Name)
	assert.NotEqual(t, oldID, got.Author.ID)

	// The previous author row is deleted, not merely unlinked.
	var n int64
	require.NoError(t, db.Model(&domain.Author{}).Where("id = ?", oldID).Count(&n).Error)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, int64(1), countRows(t, db, &domain.Author{}))
}

func TestProductUpdate_EmptyAuthorClears(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, ProductInput{Name: "Chair", Author: &AuthorInput{Name: "Knoll"}})
	require.NoError(t, err)

	got, err := svc.Update(ctx, u.ID, p.ID, ProductPatch{Author: &AuthorInput{}})
	require.NoError(t, err)

	assert.Nil(t, got.Author)
	assert.Equal(t, int64(0), countRows(t, db, &domain.Author{}))
}

func TestProductUpdate_ImagesReplacedWholesale(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()
	img := imagePayload(t)

	p, err := svc.Create(ctx, u.ID, ProductInput{Name: "Chair", ImagesToLoad: imagesp(img, img)})
	require.NoError(t, err)
	require.Len(t, p.Images, 2)
	oldIDs := []string{p.Images[0].ID, p.Images[1].ID}

	got, err := svc.Update(ctx, u.ID, p.ID, ProductPatch{ImagesToLoad: imagesp(img)})
	require.NoError(t, err)

	require.Len(t, got.Images, 1)
	assert.NotContains(t, oldIDs, got.Images[0].ID)
	assert.Equal(t, int64(1), countRows(t, db, &domain.Gallery{}))
}

func TestProductUpdate_EmptyImagesClears(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, ProductInput{Name: "Chair", ImagesToLoad: imagesp(imagePayload(t))})
	require.NoError(t, err)

	got, err := svc.Update(ctx, u.ID, p.ID, ProductPatch{ImagesToLoad: imagesp()})
	require.NoError(t, err)

	assert.Empty(t, got.Images)
	assert.Equal(t, int64(0), countRows(t, db, &domain.Gallery{}))
}

func TestProductUpdate_MalformedImageLeavesGallery(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, ProductInput{Name: "Chair", ImagesToLoad: imagesp(imagePayload(t))})
	require.NoError(t, err)

	_, err = svc.Update(ctx, u.ID, p.ID, ProductPatch{ImagesToLoad: imagesp("broken")})
	require.ErrorIs(t, err, domain.ErrMalformedImage)

	assert.Equal(t, int64(1), countRows(t, db, &domain.Gallery{}))
}

func TestProductUpdate_OwnerImmutable(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, ProductInput{Name: "Chair"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, u.ID, p.ID, ProductPatch{
		Name: strp("Hijacked"),
		User: json.RawMessage(`"someone-else"`),
	})
	require.ErrorIs(t, err, domain.ErrOwnerImmutable)

	got, err := svc.Get(ctx, u.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chair", got.Name)
}

func TestProductDelete_CascadesGalleriesKeepsAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, u.ID, ProductInput{
		Name:         "Chair",
		Author:       &AuthorInput{Name: "Knoll"},
		ImagesToLoad: imagesp(imagePayload(t)),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID, p.ID))

	assert.Equal(t, int64(0), countRows(t, db, &domain.Product{}))
	assert.Equal(t, int64(0), countRows(t, db, &domain.Gallery{}))
	assert.Equal(t, int64(1), countRows(t, db, &domain.Author{}))
}

func TestProduct_OtherUsersRowsHidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, newTestStore(t))
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, alice.ID, ProductInput{Name: "Chair"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, bob.ID, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(ctx, bob.ID, p.ID, ProductPatch{Name: strp("Stolen")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, bob.ID, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Alice's row is intact.
	got, err := svc.Get(ctx, alice.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chair", got.Name)

	list, err := svc.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
