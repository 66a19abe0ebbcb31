package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosbackdev/moto-gear-avenue/api"
)

func newTestProducts(t *testing.T, handler http.HandlerFunc) *ProductService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewProductService(api.New(server.URL))
}

func TestListUnwrapsPageEnvelope(t *testing.T) {
	products := newTestProducts(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/page", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content": [
				{"id":1,"name":"Casco integral","sellPrice":89.99,"sellerName":"Shoei","images":["/img/1.jpg"]},
				{"id":2,"name":"Guantes","sellPrice":19.99,"images":[]}
			],
			"totalElements": 2, "totalPages": 1, "last": true
		}`))
	})

	list, err := products.List(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Normalization ran on the way out.
	assert.Equal(t, 89.99, list[0].Price)
	assert.Equal(t, "Shoei", list[0].Brand)
	assert.Equal(t, "/img/1.jpg", list[0].ImageURL)
	assert.Equal(t, "/placeholder.svg", list[1].ImageURL)
}

func TestSearchEscapesKeyword(t *testing.T) {
	products := newTestProducts(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/search", r.URL.Path)
		assert.Equal(t, "casco rojo", r.URL.Query().Get("keyword"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[],"empty":true}`))
	})

	list, err := products.Search(context.Background(), "casco rojo", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestByIDPropagatesNotFound(t *testing.T) {
	products := newTestProducts(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	})

	_, err := products.ByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}
