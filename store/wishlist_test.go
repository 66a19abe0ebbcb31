package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosbackdev/moto-gear-avenue/models"
)

type fakeWishlistAPI struct {
	items  map[int64]models.WishlistItem
	nextID int64
	fail   bool
}

func newFakeWishlistAPI() *fakeWishlistAPI {
	return &fakeWishlistAPI{items: make(map[int64]models.WishlistItem), nextID: 1}
}

func (f *fakeWishlistAPI) List(ctx context.Context, token string) ([]models.WishlistItem, error) {
	out := make([]models.WishlistItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeWishlistAPI) Add(ctx context.Context, token string, productID int64) (*models.WishlistItem, error) {
	if f.fail {
		return nil, errors.New("backend down")
	}
	item := models.WishlistItem{ID: f.nextID, Product: models.Product{ID: productID}}
	f.items[productID] = item
	f.nextID++
	return &item, nil
}

func (f *fakeWishlistAPI) Remove(ctx context.Context, token string, productID int64) error {
	if f.fail {
		return errors.New("backend down")
	}
	delete(f.items, productID)
	return nil
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	backend := newFakeWishlistAPI()
	wl := NewWishlist("tok", backend)
	ctx := context.Background()

	require.NoError(t, wl.Add(ctx, 1))
	require.NoError(t, wl.Add(ctx, 1))

	assert.Len(t, wl.Snapshot(), 1)
	assert.True(t, wl.Contains(1))
	assert.False(t, wl.Contains(2))
}

func TestWishlistRemoveRestoresOnFailure(t *testing.T) {
	backend := newFakeWishlistAPI()
	wl := NewWishlist("tok", backend)
	ctx := context.Background()

	require.NoError(t, wl.Add(ctx, 1))

	backend.fail = true
	require.Error(t, wl.Remove(ctx, 1))
	assert.True(t, wl.Contains(1))

	backend.fail = false
	require.NoError(t, wl.Remove(ctx, 1))
	assert.False(t, wl.Contains(1))
}

func TestWishlistRemoveAbsentIsNoop(t *testing.T) {
	wl := NewWishlist("tok", newFakeWishlistAPI())
	assert.NoError(t, wl.Remove(context.Background(), 42))
}
