package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// fakeBackend is an in-memory stand-in for the cart endpoints. Setting
// fail makes every mutation error while List keeps serving the stored
// lines, which is exactly the situation the reload path recovers from.
type fakeBackend struct {
	lines            map[int64]models.BackendCartItem
	nextID           int64
	fail             bool
	removedByProduct int32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{lines: make(map[int64]models.BackendCartItem), nextID: 1}
}

func (f *fakeBackend) List(ctx context.Context, token string) ([]models.BackendCartItem, error) {
	out := make([]models.BackendCartItem, 0, len(f.lines))
	for id := int64(1); id < f.nextID; id++ {
		if line, ok := f.lines[id]; ok {
			out = append(out, line)
		}
	}
	return out, nil
}

func (f *fakeBackend) Add(ctx context.Context, token string, req models.AddToCartRequest) (*models.BackendCartItem, error) {
	if f.fail {
		return nil, errors.New("backend down")
	}
	for id, line := range f.lines {
		if line.ProductID == req.ProductID && line.Variant == req.Variant {
			line.Quantity += req.Quantity
			f.lines[id] = line
			return &line, nil
		}
	}
	line := models.BackendCartItem{
		ID:        f.nextID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Variant:   req.Variant,
	}
	f.lines[f.nextID] = line
	f.nextID++
	return &line, nil
}

func (f *fakeBackend) UpdateQuantity(ctx context.Context, token string, itemID int64, quantity int) (*models.BackendCartItem, error) {
	if f.fail {
		return nil, errors.New("backend down")
	}
	line, ok := f.lines[itemID]
	if !ok {
		return nil, errors.New("no such line")
	}
	line.Quantity = quantity
	f.lines[itemID] = line
	return &line, nil
}

func (f *fakeBackend) Remove(ctx context.Context, token string, itemID int64) error {
	if f.fail {
		return errors.New("backend down")
	}
	delete(f.lines, itemID)
	return nil
}

func (f *fakeBackend) RemoveByProduct(ctx context.Context, token string, productID int64) error {
	if f.fail {
		return errors.New("backend down")
	}
	atomic.AddInt32(&f.removedByProduct, 1)
	for id, line := range f.lines {
		if line.ProductID == productID {
			delete(f.lines, id)
		}
	}
	return nil
}

func (f *fakeBackend) Clear(ctx context.Context, token string) error {
	if f.fail {
		return errors.New("backend down")
	}
	f.lines = make(map[int64]models.BackendCartItem)
	return nil
}

type fakeProducts struct {
	products map[int64]models.Product
}

func (f *fakeProducts) ByID(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d not found", id)
	}
	return &p, nil
}

func helmet() models.Product {
	return models.Product{ID: 1, Name: "Casco integral", SellPrice: 59.99, OriginalPrice: 80.00}
}

func gloves() models.Product {
	return models.Product{ID: 2, Name: "Guantes de verano", SellPrice: 19.99}
}

func newTestCart(backend *fakeBackend) *Cart {
	products := &fakeProducts{products: map[int64]models.Product{
		1: helmet(),
		2: gloves(),
	}}
	return NewCart("tok", backend, products, NewHub())
}

func TestAddItemMergesSameKey(t *testing.T) {
	backend := newFakeBackend()
	cart := newTestCart(backend)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, helmet(), 1, "Talla: M"))
	require.NoError(t, cart.AddItem(ctx, helmet(), 2, "Talla: M"))

	items := cart.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestAddItemKeepsVariantsApart(t *testing.T) {
	backend := newFakeBackend()
	cart := newTestCart(backend)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, helmet(), 1, "Talla: M"))
	require.NoError(t, cart.AddItem(ctx, helmet(), 1, "Talla: L"))

	assert.Len(t, cart.Snapshot(), 2)
	assert.True(t, cart.IsInCart(1))
	assert.False(t, cart.IsInCart(99))
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	backend := newFakeBackend()
	cart := newTestCart(backend)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, helmet(), 2, "Talla: M"))
	require.NoError(t, cart.UpdateQuantity(ctx, 1, 0, "Talla: M"))

	assert.Empty(t, cart.Snapshot())
	assert.Empty(t, backend.lines)
}

func TestRemoveAbsentLineIsNoop(t *testing.T) {
	backend := newFakeBackend()
	cart := newTestCart(backend)

	assert.NoError(t, cart.RemoveItem(context.Background(), 1, "Talla: M"))
}

func TestRemoveLineWithoutBackendIDFallsBackToProductDelete(t *testing.T) {
	backend := newFakeBackend()
	cart := newTestCart(backend)

	// A line the backend confirmed without an id still has to be
	// deletable; the product-scoped endpoint covers it.
	cart.items = []models.CartItem{{ID: 0, Product: helmet(), Quantity: 1, Variant: "Talla: M"}}

	require.NoError(t, cart.RemoveItem(context.Background(), 1, "Talla: M"))
	assert.Empty(t, cart.Snapshot())
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.removedByProduct))
}

func TestRemoveFailureReloadsServerState(t *testing.T) {
	backend := newFakeBackend()
	cart := newTestCart(backend)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, helmet(), 2, "Talla: M"))

	backend.fail = true
	err := cart.RemoveItem(ctx, 1, "Talla: M")
	require.Error(t, err)

	// The optimistic removal was rolled back from the server's copy.
	items := cart.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateFailureRestoresQuantity(t *testing.T) {
	backend := newFakeBackend()
	cart := newTestCart(backend)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, helmet(), 2, "Talla: M"))

	backend.fail = true
	err := cart.UpdateQuantity(ctx, 1, 5, "Talla: M")
	require.Error(t, err)

	items := cart.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestTotals(t *testing.T) {
	backend := newFakeBackend()
	cart := newTestCart(backend)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, helmet(), 2, "Talla: M"))
	require.NoError(t, cart.AddItem(ctx, gloves(), 1, ""))

	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 139.97, cart.TotalAmount(), 0.0001)
	assert.InDelta(t, 40.02, cart.TotalSavings(), 0.0001)
}

func TestLoadDropsUnresolvableLines(t *testing.T) {
	backend := newFakeBackend()
	ctx := context.Background()
	_, err := backend.Add(ctx, "tok", models.AddToCartRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = backend.Add(ctx, "tok", models.AddToCartRequest{ProductID: 404, Quantity: 1})
	require.NoError(t, err)

	cart := newTestCart(backend)
	require.NoError(t, cart.Load(ctx))

	items := cart.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].Product.ID)
}

func TestClearEmptiesBackendAndLocal(t *testing.T) {
	backend := newFakeBackend()
	cart := newTestCart(backend)
	ctx := context.Background()

	require.NoError(t, cart.AddItem(ctx, helmet(), 1, ""))
	require.NoError(t, cart.Clear(ctx))

	assert.Empty(t, cart.Snapshot())
	assert.Empty(t, backend.lines)
}

func TestHubSeesCartEvents(t *testing.T) {
	backend := newFakeBackend()
	hub := NewHub()
	products := &fakeProducts{products: map[int64]models.Product{1: helmet()}}
	cart := NewCart("tok", backend, products, hub)

	events := hub.Subscribe()
	defer hub.Unsubscribe(events)

	require.NoError(t, cart.AddItem(context.Background(), helmet(), 1, ""))

	select {
	case evt := <-events:
		assert.Equal(t, EventCartChanged, evt.Type)
	default:
		t.Fatal("expected a cart event")
	}
}
