package checkoutControllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carlosbackdev/moto-gear-avenue/middleware"
	"github.com/carlosbackdev/moto-gear-avenue/models"
	"github.com/carlosbackdev/moto-gear-avenue/pricing"
	"github.com/carlosbackdev/moto-gear-avenue/services"
)

// checkoutView feeds the shipping form: previously saved profiles plus a
// read-only order summary of the live cart.
type checkoutView struct {
	SavedCheckouts []models.Checkout `json:"savedCheckouts"`
	Items          []models.CartItem `json:"items"`
	TotalItems     int               `json:"totalItems"`
	Subtotal       float64           `json:"subtotal"`
	ShippingFee    float64           `json:"shippingFee"`
	OrderTotal     float64           `json:"orderTotal"`
}

// GET /user/checkout
func GetCheckoutPage(checkouts *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		if session.Cart.TotalItems() == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "El carrito está vacío", "redirect": "/cart"})
			return
		}

		saved, err := checkouts.ListMine(c.Request.Context(), session.Token)
		if err != nil {
			log.Printf("checkout: list saved profiles failed: %v", err)
			saved = nil
		}

		subtotal := session.Cart.TotalAmount()
		c.JSON(http.StatusOK, checkoutView{
			SavedCheckouts: saved,
			Items:          session.Cart.Snapshot(),
			TotalItems:     session.Cart.TotalItems(),
			Subtotal:       pricing.Round2(subtotal),
			ShippingFee:    pricing.ShippingFee(subtotal),
			OrderTotal:     pricing.OrderTotal(subtotal),
		})
	}
}

// SubmitInput is the shipping form. CheckoutID selects a saved profile to
// update; zero creates a new one.
type SubmitInput struct {
	CheckoutID    int64  `json:"checkoutId"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	Country       string `json:"country" binding:"required"`
	PostalCode    string `json:"postalCode" binding:"required"`
	PhoneNumber   string `json:"phoneNumber" binding:"required"`
	Notes         string `json:"notes"`
}

// POST /user/checkout
//
// Freezes the cart into shaded lines, creates the order against them and
// hands back the payment route. The live cart stays untouched until the
// payment is confirmed.
func SubmitCheckout(checkouts *services.CheckoutService, shaded *services.CartShadedService, orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		ctx := c.Request.Context()

		var input SubmitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Completa todos los campos de envío"})
			return
		}

		items := session.Cart.Snapshot()
		if len(items) == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "El carrito está vacío", "redirect": "/cart"})
			return
		}

		req := models.CreateCheckoutRequest{
			CustomerName:  strings.TrimSpace(input.CustomerName),
			CustomerEmail: strings.TrimSpace(input.CustomerEmail),
			Address:       strings.TrimSpace(input.Address),
			City:          strings.TrimSpace(input.City),
			Country:       strings.TrimSpace(input.Country),
			PostalCode:    strings.TrimSpace(input.PostalCode),
			PhoneNumber:   strings.TrimSpace(input.PhoneNumber),
		}

		var (
			checkout *models.Checkout
			err      error
		)
		if input.CheckoutID > 0 {
			checkout, err = checkouts.Update(ctx, session.Token, input.CheckoutID, req)
		} else {
			checkout, err = checkouts.Create(ctx, session.Token, req)
		}
		if err != nil {
			log.Printf("checkout: save profile failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al guardar los datos de envío"})
			return
		}

		shadedItems, err := shaded.CloneFromCart(ctx, session.Token, items)
		if err != nil {
			log.Printf("checkout: cart snapshot failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al preparar el pedido"})
			return
		}

		shadedIDs := make([]int64, 0, len(shadedItems))
		for _, item := range shadedItems {
			shadedIDs = append(shadedIDs, item.ID)
		}

		order, err := orders.Create(ctx, session.Token, models.CreateOrderRequest{
			CheckoutID:        checkout.ID,
			CartShadedItemIDs: shadedIDs,
			Total:             pricing.OrderTotal(session.Cart.TotalAmount()),
			Notes:             strings.TrimSpace(input.Notes),
		})
		if err != nil {
			log.Printf("checkout: create order failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al crear el pedido"})
			return
		}

		log.Printf("checkout: order %d created for user %d", order.ID, order.UserID)
		c.JSON(http.StatusCreated, gin.H{
			"orderId": order.ID,
			"next":    "/payment/" + strconv.FormatInt(order.ID, 10),
		})
	}
}

// DELETE /user/checkout/:checkout_id removes a saved shipping profile.
func DeleteCheckout(checkouts *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		id, err := strconv.ParseInt(c.Param("checkout_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dirección no válida"})
			return
		}

		if err := checkouts.Delete(c.Request.Context(), session.Token, id); err != nil {
			log.Printf("checkout: delete profile %d failed: %v", id, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al eliminar la dirección"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Dirección eliminada"})
	}
}
