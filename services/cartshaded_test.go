package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

func TestCloneFromCartFreezesEveryLine(t *testing.T) {
	var nextID int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/cart-shaded", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.AddToCartRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.BackendCartItem{
			ID:        atomic.AddInt64(&nextID, 1),
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Variant:   req.Variant,
		})
	}))
	defer server.Close()

	shaded := NewCartShadedService(api.New(server.URL))
	items := []models.CartItem{
		{Product: models.Product{ID: 1}, Quantity: 2, Variant: "Talla: M"},
		{Product: models.Product{ID: 2}, Quantity: 1},
	}

	frozen, err := shaded.CloneFromCart(context.Background(), "tok", items)
	require.NoError(t, err)
	require.Len(t, frozen, 2)
	assert.Equal(t, int64(1), frozen[0].ID)
	assert.Equal(t, "Talla: M", frozen[0].Variant)
	assert.Equal(t, int64(2), frozen[1].ProductID)
}

func TestCloneFromCartAbortsOnFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.BackendCartItem{ID: 1, ProductID: 1, Quantity: 1})
	}))
	defer server.Close()

	shaded := NewCartShadedService(api.New(server.URL))
	items := []models.CartItem{
		{Product: models.Product{ID: 1}, Quantity: 1},
		{Product: models.Product{ID: 2}, Quantity: 1},
		{Product: models.Product{ID: 3}, Quantity: 1},
	}

	frozen, err := shaded.CloneFromCart(context.Background(), "tok", items)
	assert.Error(t, err)
	assert.Nil(t, frozen)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
