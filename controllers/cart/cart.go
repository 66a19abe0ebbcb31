package cartControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/middleware"
	"github.com/carlosbackdev/moto-gear-avenue/models"
	"github.com/carlosbackdev/moto-gear-avenue/pricing"
	"github.com/carlosbackdev/moto-gear-avenue/services"
)

// cartView is the cart page payload. Amounts are rounded to cents for
// display here, at the edge; the store keeps the raw sums.
type cartView struct {
	Items        []models.CartItem `json:"items"`
	TotalItems   int               `json:"totalItems"`
	TotalAmount  float64           `json:"totalAmount"`
	TotalSavings float64           `json:"totalSavings"`
	ShippingFee  float64           `json:"shippingFee"`
	FreeShipping bool              `json:"freeShipping"`
	OrderTotal   float64           `json:"orderTotal"`
}

func buildCartView(c *gin.Context) cartView {
	cart := middleware.Session(c).Cart
	subtotal := cart.TotalAmount()
	fee := pricing.ShippingFee(subtotal)
	return cartView{
		Items:        cart.Snapshot(),
		TotalItems:   cart.TotalItems(),
		TotalAmount:  pricing.Round2(subtotal),
		TotalSavings: pricing.Round2(cart.TotalSavings()),
		ShippingFee:  fee,
		FreeShipping: fee == 0,
		OrderTotal:   pricing.OrderTotal(subtotal),
	}
}

// GET /user/cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		if err := session.Cart.Load(c.Request.Context()); err != nil {
			log.Printf("cart: load failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el carrito"})
			return
		}
		c.JSON(http.StatusOK, buildCartView(c))
	}
}

// AddItemInput covers both add paths: quick add from a product card
// (QuickAdd true, first option of the first group is chosen) and the
// detail page (Selections must cover every variant group).
type AddItemInput struct {
	ProductID  int64             `json:"productId" binding:"required"`
	Quantity   int               `json:"quantity" binding:"required,min=1"`
	QuickAdd   bool              `json:"quickAdd"`
	Selections map[string]string `json:"selections"`
}

// POST /user/cart
func AddItem(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos del carrito no válidos"})
			return
		}

		product, err := products.ByID(c.Request.Context(), input.ProductID)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "El producto no existe"})
				return
			}
			log.Printf("cart: product %d lookup failed: %v", input.ProductID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al agregar producto al carrito"})
			return
		}

		groups := models.ParseVariantGroups(product.Variant)
		var variant string
		if input.QuickAdd {
			variant = models.DefaultVariant(groups)
		} else {
			variant, err = models.ResolveVariant(groups, input.Selections)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		if err := session.Cart.AddItem(c.Request.Context(), *product, input.Quantity, variant); err != nil {
			log.Printf("cart: add product %d failed: %v", input.ProductID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al agregar producto al carrito"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Producto agregado al carrito", "cart": buildCartView(c)})
	}
}

// PUT /user/cart/:product_id
func UpdateQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Producto no válido"})
			return
		}

		var input struct {
			Quantity int    `json:"quantity"`
			Variant  string `json:"variant"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cantidad no válida"})
			return
		}

		if err := session.Cart.UpdateQuantity(c.Request.Context(), productID, input.Quantity, input.Variant); err != nil {
			log.Printf("cart: update product %d failed: %v", productID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al actualizar cantidad"})
			return
		}
		c.JSON(http.StatusOK, buildCartView(c))
	}
}

// DELETE /user/cart/:product_id?variant=...
func RemoveItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Producto no válido"})
			return
		}

		if err := session.Cart.RemoveItem(c.Request.Context(), productID, c.Query("variant")); err != nil {
			log.Printf("cart: remove product %d failed: %v", productID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al eliminar producto del carrito"})
			return
		}
		c.JSON(http.StatusOK, buildCartView(c))
	}
}

// DELETE /user/cart
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		if err := session.Cart.Clear(c.Request.Context()); err != nil {
			log.Printf("cart: clear failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al vaciar el carrito"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Carrito vaciado", "cart": buildCartView(c)})
	}
}
