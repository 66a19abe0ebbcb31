package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	p := Product{
		ID:         7,
		Name:       "Casco integral",
		Details:    "Casco homologado ECE 22.06",
		SellPrice:  89.99,
		SellerName: "Shoei",
		Category:   3,
		Images:     []string{"/img/casco-1.jpg", "/img/casco-2.jpg"},
	}
	p.Normalize()

	assert.Equal(t, 89.99, p.Price)
	assert.Equal(t, "/img/casco-1.jpg", p.ImageURL)
	assert.Equal(t, 100, p.Stock)
	assert.Equal(t, "Shoei", p.Brand)
	assert.Equal(t, "Casco homologado ECE 22.06", p.Description)
	assert.Equal(t, int64(3), p.CategoryID)
}

func TestNormalizeWithoutImages(t *testing.T) {
	p := Product{ID: 8}
	p.Normalize()
	assert.Equal(t, PlaceholderImage, p.ImageURL)

	p = Product{ID: 9, Images: []string{""}}
	p.Normalize()
	assert.Equal(t, PlaceholderImage, p.ImageURL)
}

func TestUnitPriceAndSaving(t *testing.T) {
	discounted := Product{OriginalPrice: 120.00, SellPrice: 89.99}
	assert.Equal(t, 89.99, discounted.UnitPrice())
	assert.InDelta(t, 30.01, discounted.UnitSaving(), 0.0001)

	plain := Product{Price: 25.00}
	assert.Equal(t, 25.00, plain.UnitPrice())
	assert.Equal(t, 0.0, plain.UnitSaving())

	inverted := Product{OriginalPrice: 10.00, SellPrice: 15.00}
	assert.Equal(t, 0.0, inverted.UnitSaving())
}

func TestParseSpecifications(t *testing.T) {
	specs := ParseSpecifications(`{"Peso":"1350 g","Material":"Fibra de carbono","Cierre":"Doble anilla"}`)
	require.Len(t, specs, 3)

	// Rows come back key-sorted, stable across requests.
	assert.Equal(t, "Cierre", specs[0].Key)
	assert.Equal(t, "Material", specs[1].Key)
	assert.Equal(t, "Peso", specs[2].Key)

	free := ParseSpecifications("Talla única, interior desmontable")
	assert.Len(t, free, 1)
	assert.Equal(t, "Talla única, interior desmontable", free[0].Value)

	assert.Nil(t, ParseSpecifications(""))
}
