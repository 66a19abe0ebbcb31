package paymentControllers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/config"
	"github.com/carlosbackdev/moto-gear-avenue/middleware"
	"github.com/carlosbackdev/moto-gear-avenue/models"
	"github.com/carlosbackdev/moto-gear-avenue/pricing"
	"github.com/carlosbackdev/moto-gear-avenue/services"
	"github.com/carlosbackdev/moto-gear-avenue/store"
)

// orderLine is one frozen order line enriched with its product.
type orderLine struct {
	Item     models.BackendCartItem `json:"item"`
	Product  *models.Product        `json:"product,omitempty"`
	Quantity int                    `json:"quantity"`
	Variant  string                 `json:"variant"`
}

type paymentView struct {
	Order       models.Order     `json:"order"`
	StatusLabel string           `json:"statusLabel"`
	Checkout    *models.Checkout `json:"checkout,omitempty"`
	Lines       []orderLine      `json:"lines"`
	Subtotal    float64          `json:"subtotal"`
	ShippingFee float64          `json:"shippingFee"`
	Total       float64          `json:"total"`
}

// loadOrderForUser fetches the order and rejects ids that belong to
// someone else. Foreign and missing orders look identical to the caller.
func loadOrderForUser(ctx context.Context, orders *services.OrderService, session *store.Session, id int64) (*models.Order, error) {
	order, err := orders.ByID(ctx, session.Token, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != 0 && session.User.ID != 0 && order.UserID != session.User.ID {
		return nil, &api.Error{Status: http.StatusNotFound, Message: "order not found"}
	}
	return order, nil
}

func buildOrderView(ctx context.Context, deps ViewDeps, session *store.Session, order *models.Order) paymentView {
	view := paymentView{
		Order:       *order,
		StatusLabel: order.Status.Label(),
		Total:       order.Total,
	}

	if order.CheckoutID > 0 {
		checkout, err := deps.Checkouts.ByID(ctx, session.Token, order.CheckoutID)
		if err != nil {
			log.Printf("payment: checkout %d lookup failed: %v", order.CheckoutID, err)
		} else {
			view.Checkout = checkout
		}
	}

	shadedItems, err := deps.Shaded.List(ctx, session.Token)
	if err != nil {
		log.Printf("payment: shaded lines lookup failed: %v", err)
		return view
	}

	var subtotal float64
	for _, item := range shadedItems {
		if !order.ContainsShadedItem(item.ID) {
			continue
		}
		line := orderLine{Item: item, Quantity: item.Quantity, Variant: item.Variant}
		product, err := deps.Products.ByID(ctx, item.ProductID)
		if err != nil {
			log.Printf("payment: product %d lookup failed: %v", item.ProductID, err)
		} else {
			line.Product = product
			subtotal += product.UnitPrice() * float64(item.Quantity)
		}
		view.Lines = append(view.Lines, line)
	}
	view.Subtotal = pricing.Round2(subtotal)
	view.ShippingFee = pricing.ShippingFee(subtotal)
	return view
}

// ViewDeps bundles the services the payment pages read from.
type ViewDeps struct {
	Orders    *services.OrderService
	Checkouts *services.CheckoutService
	Shaded    *services.CartShadedService
	Products  *services.ProductService
}

// GET /user/payment/:order_id
func GetPaymentPage(deps ViewDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		ctx := c.Request.Context()

		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pedido no válido"})
			return
		}

		order, err := loadOrderForUser(ctx, deps.Orders, session, orderID)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado", "redirect": "/orders"})
				return
			}
			log.Printf("payment: order %d lookup failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el pedido"})
			return
		}

		if order.Status != models.OrderStatusPending {
			c.JSON(http.StatusConflict, gin.H{"error": "El pedido ya no está pendiente de pago", "redirect": "/orders"})
			return
		}
		c.JSON(http.StatusOK, buildOrderView(ctx, deps, session, order))
	}
}

// POST /user/payment/:order_id/session
//
// Asks the backend for a hosted gateway session. The success and cancel
// URLs point back at this storefront, built from the request origin.
func CreateSession(orders *services.OrderService, payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		ctx := c.Request.Context()

		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pedido no válido"})
			return
		}

		order, err := loadOrderForUser(ctx, orders, session, orderID)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			log.Printf("payment: order %d lookup failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el pedido"})
			return
		}
		if order.Status != models.OrderStatusPending {
			c.JSON(http.StatusConflict, gin.H{"error": "El pedido ya no está pendiente de pago"})
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "http://" + c.Request.Host
		}
		id := strconv.FormatInt(order.ID, 10)

		resp, err := payments.CreateCheckoutSession(ctx, session.Token, services.CreateCheckoutSessionRequest{
			OrderID:    order.ID,
			SuccessURL: origin + "/payment/" + id + "/success",
			CancelURL:  origin + "/payment/" + id,
		})
		if err != nil {
			log.Printf("payment: session for order %d failed: %v", order.ID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al iniciar el pago"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": resp.URL, "sessionId": resp.SessionID})
	}
}

// POST /user/payment/:order_id/confirm
//
// Development-only shortcut that marks the order paid without a gateway
// round trip. Disabled unless PAYMENTS_SIMULATED is set.
func ConfirmSimulated(cfg *config.Config, orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.PaymentsSimulated {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "El pago simulado está deshabilitado"})
			return
		}

		session := middleware.Session(c)
		ctx := c.Request.Context()

		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pedido no válido"})
			return
		}

		order, err := loadOrderForUser(ctx, orders, session, orderID)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			log.Printf("payment: order %d lookup failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el pedido"})
			return
		}
		if order.Status != models.OrderStatusPending {
			c.JSON(http.StatusConflict, gin.H{"error": "El pedido ya no está pendiente de pago"})
			return
		}

		updated, err := orders.UpdateStatus(ctx, session.Token, order.ID, models.UpdateOrderStatusRequest{
			Status: models.OrderStatusPaid,
		})
		if err != nil {
			log.Printf("payment: confirm order %d failed: %v", order.ID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al confirmar el pago"})
			return
		}

		if err := session.Cart.Clear(ctx); err != nil {
			log.Printf("payment: cart clear after order %d failed: %v", order.ID, err)
		}
		session.Hub.Publish(store.Event{
			Type:    store.EventOrderUpdated,
			Payload: gin.H{"orderId": updated.ID, "status": updated.Status},
		})

		log.Printf("payment: order %d marked paid (simulated)", updated.ID)
		c.JSON(http.StatusOK, gin.H{
			"order":    updated,
			"redirect": "/payment/" + strconv.FormatInt(updated.ID, 10) + "/success",
		})
	}
}

// GET /user/payment/:order_id/success
//
// Display-only confirmation. The order is refetched so the page reflects
// whatever status the gateway callback landed, not what the client hopes.
func GetSuccessPage(deps ViewDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		ctx := c.Request.Context()

		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pedido no válido"})
			return
		}

		order, err := loadOrderForUser(ctx, deps.Orders, session, orderID)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado", "redirect": "/orders"})
				return
			}
			log.Printf("payment: order %d lookup failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el pedido"})
			return
		}

		// The order's lines were frozen at checkout; once the gateway has
		// moved the order past PENDING the live cart is stale and resets.
		if order.Status != models.OrderStatusPending {
			if err := session.Cart.Clear(ctx); err != nil {
				log.Printf("payment: cart clear after order %d failed: %v", order.ID, err)
				session.Cart.ForgetLocal()
			}
			session.Hub.Publish(store.Event{
				Type:    store.EventOrderUpdated,
				Payload: gin.H{"orderId": order.ID, "status": order.Status},
			})
		}

		c.JSON(http.StatusOK, buildOrderView(ctx, deps, session, order))
	}
}
