// Package store holds per-session state: the live cart, the wishlist and
// an event hub. A session's state is created when it attaches and dropped
// on logout. Every mutation is serialized behind the store's mutex, so
// two rapid quantity changes can never land out of order.
package store

import (
	"context"
	"log"
	"sync"

	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// CartAPI is the slice of the cart service the store needs.
type CartAPI interface {
	List(ctx context.Context, token string) ([]models.BackendCartItem, error)
	Add(ctx context.Context, token string, req models.AddToCartRequest) (*models.BackendCartItem, error)
	UpdateQuantity(ctx context.Context, token string, itemID int64, quantity int) (*models.BackendCartItem, error)
	Remove(ctx context.Context, token string, itemID int64) error
	RemoveByProduct(ctx context.Context, token string, productID int64) error
	Clear(ctx context.Context, token string) error
}

// ProductAPI resolves product ids during cart loading.
type ProductAPI interface {
	ByID(ctx context.Context, id int64) (*models.Product, error)
}

// Cart is the authoritative-enough in-memory cart of one session.
// Mutations are optimistic: the local state changes first, the backend is
// told second, and a backend failure discards the optimistic state by
// reloading from the server.
type Cart struct {
	mu    sync.Mutex
	token string
	items []models.CartItem

	backend  CartAPI
	products ProductAPI
	hub      *Hub
}

func NewCart(token string, backend CartAPI, products ProductAPI, hub *Hub) *Cart {
	return &Cart{token: token, backend: backend, products: products, hub: hub}
}

// Load fetches the backend cart and resolves every line's product. Lines
// whose product lookup fails are dropped with a log line; the rest of the
// cart still loads.
func (c *Cart) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reloadLocked(ctx)
}

// reloadLocked replaces the local state with a fresh server fetch. The
// product fan-out runs concurrently and results are re-zipped by index,
// never by completion order.
func (c *Cart) reloadLocked(ctx context.Context) error {
	lines, err := c.backend.List(ctx, c.token)
	if err != nil {
		return err
	}

	resolved := make([]*models.CartItem, len(lines))
	var wg sync.WaitGroup
	for i, line := range lines {
		wg.Add(1)
		go func(i int, line models.BackendCartItem) {
			defer wg.Done()
			product, err := c.products.ByID(ctx, line.ProductID)
			if err != nil {
				log.Printf("cart: dropping line %d, product %d lookup failed: %v", line.ID, line.ProductID, err)
				return
			}
			item := models.NewCartItem(line, *product)
			resolved[i] = &item
		}(i, line)
	}
	wg.Wait()

	items := make([]models.CartItem, 0, len(resolved))
	for _, item := range resolved {
		if item != nil {
			items = append(items, *item)
		}
	}
	c.items = items
	return nil
}

// AddItem adds quantity units of the product. An existing line with the
// same (product, variant) key is merged in place with the
// backend-confirmed id and quantity instead of duplicating.
func (c *Cart) AddItem(ctx context.Context, product models.Product, quantity int, variant string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	confirmed, err := c.backend.Add(ctx, c.token, models.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  quantity,
		Variant:   variant,
	})
	if err != nil {
		return err
	}

	merged := false
	for i := range c.items {
		if c.items[i].SameKey(product.ID, variant) {
			c.items[i].ID = confirmed.ID
			c.items[i].Quantity = confirmed.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, models.CartItem{
			ID:       confirmed.ID,
			Product:  product,
			Quantity: confirmed.Quantity,
			Variant:  confirmed.Variant,
		})
	}
	c.publishChange()
	return nil
}

// RemoveItem deletes the line matching (productID, variant). Absent lines
// are a no-op. The local removal happens first; a backend failure reloads
// authoritative state and reports the error. Lines that never got a
// backend id are deleted by product id instead.
func (c *Cart) RemoveItem(ctx context.Context, productID int64, variant string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.findLocked(productID, variant)
	if idx < 0 {
		return nil
	}
	itemID := c.items[idx].ID

	c.items = append(c.items[:idx], c.items[idx+1:]...)

	var err error
	if itemID == 0 {
		err = c.backend.RemoveByProduct(ctx, c.token, productID)
	} else {
		err = c.backend.Remove(ctx, c.token, itemID)
	}
	if err != nil {
		if reloadErr := c.reloadLocked(ctx); reloadErr != nil {
			log.Printf("cart: reload after failed remove: %v", reloadErr)
		}
		return err
	}
	c.publishChange()
	return nil
}

// UpdateQuantity rewrites the matched line's quantity. Zero or negative
// delegates to RemoveItem.
func (c *Cart) UpdateQuantity(ctx context.Context, productID int64, quantity int, variant string) error {
	if quantity <= 0 {
		return c.RemoveItem(ctx, productID, variant)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.findLocked(productID, variant)
	if idx < 0 || c.items[idx].ID == 0 {
		return nil
	}
	itemID := c.items[idx].ID

	previous := c.items[idx].Quantity
	c.items[idx].Quantity = quantity

	if _, err := c.backend.UpdateQuantity(ctx, c.token, itemID, quantity); err != nil {
		c.items[idx].Quantity = previous
		if reloadErr := c.reloadLocked(ctx); reloadErr != nil {
			log.Printf("cart: reload after failed update: %v", reloadErr)
		}
		return err
	}
	c.publishChange()
	return nil
}

// Clear empties the backend cart, then the local one.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.backend.Clear(ctx, c.token); err != nil {
		return err
	}
	c.items = nil
	if c.hub != nil {
		c.hub.Publish(Event{Type: EventCartCleared})
	}
	return nil
}

// ForgetLocal drops the local state without touching the backend, for the
// post-order reset where the backend cart was already consumed.
func (c *Cart) ForgetLocal() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
	if c.hub != nil {
		c.hub.Publish(Event{Type: EventCartCleared})
	}
}

// Snapshot returns a copy of the current lines.
func (c *Cart) Snapshot() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalAmount is the sum of line totals at sell price.
func (c *Cart) TotalAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// TotalSavings is what the discounts are worth across the cart.
func (c *Cart) TotalSavings() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Product.UnitSaving() * float64(item.Quantity)
	}
	return total
}

// IsInCart reports membership for a product id, ignoring variants: any
// variant of the product counts.
func (c *Cart) IsInCart(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

func (c *Cart) findLocked(productID int64, variant string) int {
	for i := range c.items {
		if c.items[i].SameKey(productID, variant) {
			return i
		}
	}
	return -1
}

func (c *Cart) publishChange() {
	if c.hub == nil {
		return
	}
	c.hub.Publish(Event{Type: EventCartChanged, Payload: map[string]interface{}{
		"totalItems": c.totalItemsLocked(),
	}})
}

func (c *Cart) totalItemsLocked() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}
