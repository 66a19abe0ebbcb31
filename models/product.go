package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// PlaceholderImage is served when a product carries no images at all.
const PlaceholderImage = "/placeholder.svg"

// Product is a motorcycle-gear article as the backend sends it. The
// backend is authoritative for all of it; Variant and Specifications are
// opaque JSON strings parsed once at the service boundary.
type Product struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Details              string   `json:"details"`
	Specifications       string   `json:"specifications"`
	OriginalPrice        float64  `json:"originalPrice"`
	SellPrice            float64  `json:"sellPrice"`
	Discount             float64  `json:"discount"`
	Currency             string   `json:"currency"`
	ShippingCost         float64  `json:"shippingCost"`
	DeliveryEstimateDays string   `json:"deliveryEstimateDays"`
	DeliveryMinDate      string   `json:"deliveryMinDate"`
	DeliveryMaxDate      string   `json:"deliveryMaxDate"`
	Variant              string   `json:"variant"`
	SellerName           string   `json:"sellerName"`
	Category             int64    `json:"category"`
	Keywords             string   `json:"keywords,omitempty"`
	Images               []string `json:"images"`

	// Derived aliases filled by Normalize so view code never has to pick
	// between the raw and derived fields.
	Price         float64 `json:"price,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	Stock         int     `json:"stock,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	Description   string  `json:"description,omitempty"`
	CategoryID    int64   `json:"categoryId,omitempty"`
	AverageRating float64 `json:"averageRating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
}

// Normalize fills the frontend-facing aliases. The backend does not report
// stock, so it is defaulted and never treated as authoritative.
func (p *Product) Normalize() {
	p.Price = p.SellPrice
	if len(p.Images) > 0 && p.Images[0] != "" {
		p.ImageURL = p.Images[0]
	} else {
		p.ImageURL = PlaceholderImage
	}
	if p.Stock == 0 {
		p.Stock = 100
	}
	p.Brand = p.SellerName
	p.Description = p.Details
	p.CategoryID = p.Category
}

// UnitPrice is the amount a cart line is charged per unit: the sell price
// when present, the plain price otherwise.
func (p *Product) UnitPrice() float64 {
	if p.SellPrice != 0 {
		return p.SellPrice
	}
	return p.Price
}

// UnitSaving is the per-unit difference between the original and the sell
// price; zero when the product carries no discount.
func (p *Product) UnitSaving() float64 {
	original := p.OriginalPrice
	if original == 0 {
		original = p.Price
	}
	sell := p.UnitPrice()
	if original <= sell {
		return 0
	}
	return original - sell
}

// Specification is one parsed key/value row of the specifications JSON.
type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParseSpecifications turns the opaque specifications string into rows,
// sorted by key so the table renders the same on every request. Non-JSON
// content degrades to a single free-text row instead of failing.
func ParseSpecifications(raw string) []Specification {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return []Specification{{Key: "", Value: raw}}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	specs := make([]Specification, 0, len(keys))
	for _, k := range keys {
		var val string
		switch t := m[k].(type) {
		case string:
			val = t
		default:
			b, _ := json.Marshal(m[k])
			val = string(b)
		}
		specs = append(specs, Specification{Key: k, Value: val})
	}
	return specs
}
