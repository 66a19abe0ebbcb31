package orderControllers

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

// orderSummary is one row of the order history list.
type orderSummary struct {
	models.Order
	StatusLabel string `json:"statusLabel"`
	Cancellable bool   `json:"cancellable"`
	Trackable   bool   `json:"trackable"`
}

func summarize(orders []models.Order) []orderSummary {
	out := make([]orderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderSummary{
			Order:       o,
			StatusLabel: o.Status.Label(),
			Cancellable: o.Status.Cancellable(),
			Trackable:   o.Status.Trackable(),
		})
	}
	return out
}

// GET /user/orders?status=...
func GetMyOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		ctx := c.Request.Context()

		var (
			list []models.Order
			err  error
		)
		if raw := c.Query("status"); raw != "" {
			status, perr := models.ParseOrderStatus(raw)
			if perr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Estado de pedido no válido"})
				return
			}
			list, err = orders.ListMineByStatus(ctx, session.Token, status)
		} else {
			list, err = orders.ListMine(ctx, session.Token)
		}
		if err != nil {
			log.Printf("orders: list failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar tus pedidos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": summarize(list)})
	}
}

type orderDetailLine struct {
	Item    models.BackendCartItem `json:"item"`
	Product *models.Product        `json:"product,omitempty"`
}

type orderDetailView struct {
	orderSummary
	Checkout    *models.Checkout  `json:"checkout,omitempty"`
	Lines       []orderDetailLine `json:"lines"`
	Subtotal    float64           `json:"subtotal"`
	ShippingFee float64           `json:"shippingFee"`
}

// OrderDeps bundles what the detail view reads from.
type OrderDeps struct {
	Orders    *services.OrderService
	Checkouts *services.CheckoutService
	Shaded    *services.CartShadedService
	Products  *services.ProductService
}

// GET /user/orders/:order_id
func GetOrderDetail(deps OrderDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		ctx := c.Request.Context()

		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pedido no válido"})
			return
		}

		order, err := deps.Orders.ByID(ctx, session.Token, orderID)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			log.Printf("orders: detail %d failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el pedido"})
			return
		}
		if order.UserID != 0 && session.User.ID != 0 && order.UserID != session.User.ID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
			return
		}

		view := orderDetailView{orderSummary: summarize([]models.Order{*order})[0]}

		if order.CheckoutID > 0 {
			checkout, err := deps.Checkouts.ByID(ctx, session.Token, order.CheckoutID)
			if err != nil {
				log.Printf("orders: checkout %d lookup failed: %v", order.CheckoutID, err)
			} else {
				view.Checkout = checkout
			}
		}

		shadedItems, err := deps.Shaded.List(ctx, session.Token)
		if err != nil {
			log.Printf("orders: shaded lines lookup failed: %v", err)
		}
		var subtotal float64
		for _, item := range shadedItems {
			if !order.ContainsShadedItem(item.ID) {
				continue
			}
			line := orderDetailLine{Item: item}
			product, err := deps.Products.ByID(ctx, item.ProductID)
			if err != nil {
				log.Printf("orders: product %d lookup failed: %v", item.ProductID, err)
			} else {
				line.Product = product
				subtotal += product.UnitPrice() * float64(item.Quantity)
			}
			view.Lines = append(view.Lines, line)
		}
		view.Subtotal = pricing.Round2(subtotal)
		view.ShippingFee = pricing.ShippingFee(subtotal)

		c.JSON(http.StatusOK, view)
	}
}

// PUT /user/orders/:order_id/cancel
func CancelOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		ctx := c.Request.Context()

		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pedido no válido"})
			return
		}

		order, err := orders.ByID(ctx, session.Token, orderID)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			log.Printf("orders: cancel lookup %d failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el pedido"})
			return
		}
		if !order.Status.Cancellable() {
			c.JSON(http.StatusConflict, gin.H{"error": "Solo se pueden cancelar pedidos pendientes"})
			return
		}

		cancelled, err := orders.Cancel(ctx, session.Token, orderID)
		if err != nil {
			log.Printf("orders: cancel %d failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cancelar el pedido"})
			return
		}
		log.Printf("orders: order %d cancelled", orderID)
		c.JSON(http.StatusOK, gin.H{"message": "Pedido cancelado", "order": cancelled})
	}
}

// DELETE /user/orders/:order_id
func DeleteOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)
		ctx := c.Request.Context()

		orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pedido no válido"})
			return
		}

		order, err := orders.ByID(ctx, session.Token, orderID)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			log.Printf("orders: delete lookup %d failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el pedido"})
			return
		}
		if !order.Status.Cancellable() {
			c.JSON(http.StatusConflict, gin.H{"error": "Solo se pueden eliminar pedidos pendientes"})
			return
		}

		if err := orders.Delete(ctx, session.Token, orderID); err != nil {
			log.Printf("orders: delete %d failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al eliminar el pedido"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Pedido eliminado"})
	}
}
