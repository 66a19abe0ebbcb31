package store

import (
	"context"
	"sync"

	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// WishlistAPI is the slice of the wishlist service the store needs.
type WishlistAPI interface {
	List(ctx context.Context, token string) ([]models.WishlistItem, error)
	Add(ctx context.Context, token string, productID int64) (*models.WishlistItem, error)
	Remove(ctx context.Context, token string, productID int64) error
}

// Wishlist mirrors the session's saved products. The backend enforces
// one entry per product; the store just keeps membership fast to answer.
type Wishlist struct {
	mu      sync.Mutex
	token   string
	items   []models.WishlistItem
	backend WishlistAPI
}

func NewWishlist(token string, backend WishlistAPI) *Wishlist {
	return &Wishlist{token: token, backend: backend}
}

func (w *Wishlist) Load(ctx context.Context) error {
	items, err := w.backend.List(ctx, w.token)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.items = items
	w.mu.Unlock()
	return nil
}

func (w *Wishlist) Add(ctx context.Context, productID int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, item := range w.items {
		if item.Product.ID == productID {
			return nil
		}
	}
	item, err := w.backend.Add(ctx, w.token, productID)
	if err != nil {
		return err
	}
	w.items = append(w.items, *item)
	return nil
}

func (w *Wishlist) Remove(ctx context.Context, productID int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	idx := -1
	for i, item := range w.items {
		if item.Product.ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	removed := w.items[idx]
	w.items = append(w.items[:idx], w.items[idx+1:]...)
	if err := w.backend.Remove(ctx, w.token, productID); err != nil {
		w.items = append(w.items, removed)
		return err
	}
	return nil
}

func (w *Wishlist) Contains(productID int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, item := range w.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Snapshot() []models.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}
