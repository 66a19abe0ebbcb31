package models

// BackendCartItem is a cart line as the backend stores it, for both the
// live cart and the shaded (order-frozen) cart. The two resources share
// the wire shape and differ only in lifecycle.
type BackendCartItem struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	UserID    int64  `json:"userId"`
	Quantity  int    `json:"quantity"`
	Variant   string `json:"variant,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// AddToCartRequest is the payload for adding to either cart resource.
type AddToCartRequest struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	Variant   string `json:"variant,omitempty"`
}

// CartItem is the client view of a cart line: the backend id (zero until
// persisted), the resolved product and the chosen variant. This is the one
// shape the UI sees; live and shaded backend lines are converted into it
// at the service boundary.
type CartItem struct {
	ID       int64   `json:"id,omitempty"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Variant  string  `json:"variant,omitempty"`
}

// NewCartItem joins a backend line with its resolved product.
func NewCartItem(line BackendCartItem, product Product) CartItem {
	return CartItem{
		ID:       line.ID,
		Product:  product,
		Quantity: line.Quantity,
		Variant:  line.Variant,
	}
}

// SameKey reports whether the line matches the (product, variant) tuple
// that identifies a cart entry. Two adds with the same key merge into one
// line instead of duplicating.
func (ci CartItem) SameKey(productID int64, variant string) bool {
	return ci.Product.ID == productID && ci.Variant == variant
}

// LineTotal is the amount charged for this line.
func (ci CartItem) LineTotal() float64 {
	return ci.Product.UnitPrice() * float64(ci.Quantity)
}
