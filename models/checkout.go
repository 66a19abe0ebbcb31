package models

// Checkout is a saved shipping/contact profile, reusable across orders.
type Checkout struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	PostalCode    string `json:"postalCode"`
	PhoneNumber   string `json:"phoneNumber"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// CreateCheckoutRequest creates or updates a shipping profile.
type CreateCheckoutRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	PostalCode    string `json:"postalCode"`
	PhoneNumber   string `json:"phoneNumber"`
}
