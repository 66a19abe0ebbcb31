package store

import (
	"sync"
	"time"

	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// Session is one signed-in user's state: their backend token, profile,
// cart and wishlist stores and the event hub feeding the websocket.
type Session struct {
	Token     string
	User      models.User
	Cart      *Cart
	Wishlist  *Wishlist
	Hub       *Hub
	CreatedAt time.Time
}

// Registry maps bearer tokens to sessions. A session is created when a
// token first shows up, reused across requests and dropped on logout.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	carts     CartAPI
	products  ProductAPI
	wishlists WishlistAPI
}

func NewRegistry(carts CartAPI, products ProductAPI, wishlists WishlistAPI) *Registry {
	return &Registry{
		sessions:  make(map[string]*Session),
		carts:     carts,
		products:  products,
		wishlists: wishlists,
	}
}

// Attach returns the session for the token, creating it on first sight.
// The user profile is refreshed on every attach that supplies one.
func (r *Registry) Attach(token string, user *models.User) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[token]; ok {
		if user != nil {
			s.User = *user
		}
		return s
	}

	hub := NewHub()
	s := &Session{
		Token:     token,
		Cart:      NewCart(token, r.carts, r.products, hub),
		Wishlist:  NewWishlist(token, r.wishlists),
		Hub:       hub,
		CreatedAt: time.Now(),
	}
	if user != nil {
		s.User = *user
	}
	r.sessions[token] = s
	return s
}

// Get looks a session up without creating one.
func (r *Registry) Get(token string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	return s, ok
}

// Drop tears a session down on logout.
func (r *Registry) Drop(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}
