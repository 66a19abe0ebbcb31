package trackControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/middleware"
	"github.com/carlosbackdev/moto-gear-avenue/models"
	"github.com/carlosbackdev/moto-gear-avenue/services"
)

// trackingView is the tracking page payload with the embedded JSON
// columns already parsed.
type trackingView struct {
	Tracking models.Tracking        `json:"tracking"`
	Timeline []models.TimelineEvent `json:"timeline"`
	Courier  string                 `json:"courier"`
}

// GET /user/track/:order_id
//
// Refreshes the courier state upstream and renders the result. Orders
// that have not shipped yet have nothing to track.
func GetOrderTracking(orders *services.OrderService, tracking *services.TrackingService) gin.HandlerFunc {
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
			log.Printf("track: order %d lookup failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el pedido"})
			return
		}
		if !order.Status.Trackable() {
			c.JSON(http.StatusConflict, gin.H{"error": "El pedido aún no ha sido enviado"})
			return
		}

		info, err := tracking.UpdateAndGet(ctx, session.Token, orderID)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Todavía no hay información de seguimiento"})
				return
			}
			log.Printf("track: order %d tracking failed: %v", orderID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al consultar el seguimiento"})
			return
		}

		c.JSON(http.StatusOK, trackingView{
			Tracking: *info,
			Timeline: info.ParsedTimeline(),
			Courier:  info.SelectCourier(),
		})
	}
}

// GET /user/track/number/:tracking_number
func GetTrackingByNumber(tracking *services.TrackingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		number := c.Param("tracking_number")
		if number == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Número de seguimiento no válido"})
			return
		}

		info, err := tracking.ByTrackingNumber(c.Request.Context(), session.Token, number)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Seguimiento no encontrado"})
				return
			}
			log.Printf("track: number %s failed: %v", number, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al consultar el seguimiento"})
			return
		}

		c.JSON(http.StatusOK, trackingView{
			Tracking: *info,
			Timeline: info.ParsedTimeline(),
			Courier:  info.SelectCourier(),
		})
	}
}
