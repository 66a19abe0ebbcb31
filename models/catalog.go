package models

// Category groups products (Cascos, Guantes, Escape, Maletas...).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// ImageProduct is one image of a product's gallery.
type ImageProduct struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"imageUrl"`
	IsPrimary bool   `json:"isPrimary"`
}

// HomeBanner is one slide of the home-page carousel.
type HomeBanner struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	LinkURL     string `json:"linkUrl"`
	LinkName    string `json:"linkName"`
}

// Page is the backend's Spring-style pagination envelope.
type Page[T any] struct {
	Content       []T  `json:"content"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
	Empty         bool `json:"empty"`
}
