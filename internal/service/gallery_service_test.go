package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-catalog-api/internal/domain"
)

func TestGalleryListAndRemove(t *testing.T) {
	db := newTestDB(t)
	store := newTestStore(t)
	products := NewProductService(db, store)
	svc := NewGalleryService(db, store)
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()
	img := imagePayload(t)

	p, err := products.Create(ctx, u.ID, ProductInput{Name: "Chair", ImagesToLoad: imagesp(img, img)})
	require.NoError(t, err)

	list, err := svc.List(ctx, u.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, svc.Remove(ctx, u.ID, p.ID, list[0].ID))

	list, err = svc.List(ctx, u.ID, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGalleryReplaceImage(t *testing.T) {
	db := newTestDB(t)
	store := newTestStore(t)
	products := NewProductService(db, store)
	svc := NewGalleryService(db, store)
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p, err := products.Create(ctx, u.ID, ProductInput{Name: "Chair", ImagesToLoad: imagesp(imagePayload(t))})
	require.NoError(t, err)
	require.Len(t, p.Images, 1)
	old := p.Images[0]

	got, err := svc.ReplaceImage(ctx, u.ID, p.ID, old.ID, imagePayload(t))
	require.NoError(t, err)
	assert.Equal(t, old.ID, got.ID)
	assert.NotEqual(t, old.Image, got.Image)

	_, err = svc.ReplaceImage(ctx, u.ID, p.ID, old.ID, "garbage")
	assert.ErrorIs(t, err, domain.ErrMalformedImage)
}

func TestGallery_OwnershipIsTransitive(t *testing.T) {
	db := newTestDB(t)
	store := newTestStore(t)
	products := NewProductService(db, store)
	svc := NewGalleryService(db, store)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	ctx := context.Background()

	p, err := products.Create(ctx, alice.ID, ProductInput{Name: "Chair", ImagesToLoad: imagesp(imagePayload(t))})
	require.NoError(t, err)
	gid := p.Images[0].ID

	_, err = svc.List(ctx, bob.ID, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ReplaceImage(ctx, bob.ID, p.ID, gid, imagePayload(t))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Remove(ctx, bob.ID, p.ID, gid)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, int64(1), countRows(t, db, &domain.Gallery{}))
}

func TestGallery_RowFromAnotherProductNotFound(t *testing.T) {
	db := newTestDB(t)
	store := newTestStore(t)
	products := NewProductService(db, store)
	svc := NewGalleryService(db, store)
	u := seedUser(t, db, "a@example.com")
	ctx := context.Background()

	p1, err := products.Create(ctx, u.ID, ProductInput{Name: "Chair", ImagesToLoad: imagesp(imagePayload(t))})
	require.NoError(t, err)
	p2, err := products.Create(ctx, u.ID, ProductInput{Name: "Table"})
	require.NoError(t, err)

	// The gallery row exists but belongs to p1; resolving it under p2 fails.
	err = svc.Remove(ctx, u.ID, p2.ID, p1.Images[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
