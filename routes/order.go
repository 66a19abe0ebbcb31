package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/order"
	paymentControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/payment"
	trackControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/track"
	"github.com/carlosbackdev/moto-gear-avenue/middleware"
)

// SetupOrderRoutes registers the order, payment and tracking endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	// The websocket handshake carries the token as a query parameter, so
	// it sits outside the session middleware and resolves the session
	// itself.
	r.GET("/user/events", orderControllers.SessionEventsHandler(deps.Registry))

	viewDeps := paymentControllers.ViewDeps{
		Orders:    deps.Orders,
		Checkouts: deps.Checkouts,
		Shaded:    deps.Shaded,
		Products:  deps.Products,
	}
	orderDeps := orderControllers.OrderDeps{
		Orders:    deps.Orders,
		Checkouts: deps.Checkouts,
		Shaded:    deps.Shaded,
		Products:  deps.Products,
	}

	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireSession(deps.Registry, deps.Auth))
	{
		ordersGroup := userGroup.Group("/orders")
		{
			ordersGroup.GET("", orderControllers.GetMyOrders(deps.Orders))
			ordersGroup.GET("/export", orderControllers.ExportOrdersToExcel(deps.Orders))
			ordersGroup.GET("/:order_id", orderControllers.GetOrderDetail(orderDeps))
			ordersGroup.PUT("/:order_id/cancel", orderControllers.CancelOrder(deps.Orders))
			ordersGroup.DELETE("/:order_id", orderControllers.DeleteOrder(deps.Orders))
		}

		paymentGroup := userGroup.Group("/payment")
		{
			paymentGroup.GET("/:order_id", paymentControllers.GetPaymentPage(viewDeps))
			paymentGroup.POST("/:order_id/session", paymentControllers.CreateSession(deps.Orders, deps.Payments))
			paymentGroup.POST("/:order_id/confirm", paymentControllers.ConfirmSimulated(deps.Config, deps.Orders))
			paymentGroup.GET("/:order_id/success", paymentControllers.GetSuccessPage(viewDeps))
		}

		trackGroup := userGroup.Group("/track")
		{
			trackGroup.GET("/:order_id", trackControllers.GetOrderTracking(deps.Orders, deps.Tracking))
			trackGroup.GET("/number/:tracking_number", trackControllers.GetTrackingByNumber(deps.Tracking))
		}
	}
}
