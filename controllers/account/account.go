package accountControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carlosbackdev/moto-gear-avenue/middleware"
	"github.com/carlosbackdev/moto-gear-avenue/services"
)

// GET /user/me
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		c.JSON(http.StatusOK, gin.H{
			"user":          session.User,
			"cartItems":     session.Cart.TotalItems(),
			"wishlistItems": len(session.Wishlist.Snapshot()),
		})
	}
}

// GET /user/wishlist
func GetWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		if err := session.Wishlist.Load(c.Request.Context()); err != nil {
			log.Printf("wishlist: load failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar tus favoritos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": session.Wishlist.Snapshot()})
	}
}

// POST /user/wishlist/:product_id
func AddToWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Producto no válido"})
			return
		}

		if err := session.Wishlist.Add(c.Request.Context(), productID); err != nil {
			log.Printf("wishlist: add product %d failed: %v", productID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al guardar en favoritos"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Añadido a favoritos", "items": session.Wishlist.Snapshot()})
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Producto no válido"})
			return
		}

		if err := session.Wishlist.Remove(c.Request.Context(), productID); err != nil {
			log.Printf("wishlist: remove product %d failed: %v", productID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al quitar de favoritos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": session.Wishlist.Snapshot()})
	}
}

// GET /users/:user_id/name resolves a public display name, used by the
// review list to label authors.
func GetDisplayName(users *services.UsersService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Usuario no válido"})
			return
		}

		name, err := users.DisplayName(c.Request.Context(), userID)
		if err != nil {
			log.Printf("account: display name %d failed: %v", userID, err)
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": name})
	}
}
