package models

// Review is a product review. Creation is gated server-side by a
// "purchased and not yet reviewed" eligibility check.
type Review struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	ProductID    int64  `json:"productId"`
	Content      string `json:"content"`
	Rating       int    `json:"rating"`
	UserFullName string `json:"userFullName,omitempty"`
}

type CreateReviewRequest struct {
	ProductID int64  `json:"productId"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
}

// WishlistItem is one saved product; the backend enforces one entry per
// product per user.
type WishlistItem struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"userId"`
	Product Product `json:"product"`
	AddedAt string  `json:"addedAt"`
}
