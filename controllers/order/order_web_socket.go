package orderControllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/carlosbackdev/moto-gear-avenue/middleware"
	"github.com/carlosbackdev/moto-gear-avenue/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /user/events?token=...
//
// Pushes the session's cart and order events to the browser. Browsers
// cannot set headers on a WebSocket handshake, so the token may arrive
// as a query parameter instead of a Bearer header.
func SessionEventsHandler(registry *store.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token = middleware.BearerToken(c)
		}
		session, ok := registry.Get(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no iniciada"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("events: upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		events := session.Hub.Subscribe()
		defer session.Hub.Unsubscribe(events)

		// Reader loop only detects the peer closing.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case evt, open := <-events:
				if !open {
					return
				}
				data, err := json.Marshal(evt)
				if err != nil {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
