package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/carlosbackdev/moto-gear-avenue/services"
	"github.com/carlosbackdev/moto-gear-avenue/store"
)

const sessionKey = "session"

// RequireSession guards authenticated routes. The backend issued the
// token and is the one verifying its signature on every call we forward;
// here we only check it is present and not expired, then attach (or
// create) the in-memory session for it. First sight of a token resolves
// the user via /users/me and loads the cart and wishlist.
func RequireSession(registry *store.Registry, auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Debes iniciar sesión", "redirect": "/login"})
			c.Abort()
			return
		}

		if expired(token) {
			registry.Drop(token)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión caducada", "redirect": "/login"})
			c.Abort()
			return
		}

		session, ok := registry.Get(token)
		if !ok {
			user, err := auth.CurrentUser(c.Request.Context(), token)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida", "redirect": "/login"})
				c.Abort()
				return
			}
			session = registry.Attach(token, user)
			// The session still works without these; the pages retry.
			if err := session.Cart.Load(c.Request.Context()); err != nil {
				log.Printf("session: initial cart load for user %d failed: %v", session.User.ID, err)
			}
			if err := session.Wishlist.Load(c.Request.Context()); err != nil {
				log.Printf("session: initial wishlist load for user %d failed: %v", session.User.ID, err)
			}
		}

		c.Set(sessionKey, session)
		c.Set("user_id", session.User.ID)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header, with or
// without the Bearer prefix.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// Session returns the attached session; only valid behind RequireSession.
func Session(c *gin.Context) *store.Session {
	v, _ := c.Get(sessionKey)
	s, _ := v.(*store.Session)
	return s
}

// expired reads the exp claim without verifying the signature. Signature
// validation is the backend's job; we just avoid forwarding dead tokens.
func expired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque (non-JWT) tokens pass through; the backend decides.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
