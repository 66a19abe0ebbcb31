package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/account"
	cartControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/cart"
	checkoutControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/checkout"
	"github.com/carlosbackdev/moto-gear-avenue/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a bearer
// token; the middleware attaches the per-token session state.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireSession(deps.Registry, deps.Auth))
	{
		userGroup.GET("/me", accountControllers.GetProfile())

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart())
			cartGroup.POST("", cartControllers.AddItem(deps.Products))
			cartGroup.PUT("/:product_id", cartControllers.UpdateQuantity())
			cartGroup.DELETE("/:product_id", cartControllers.RemoveItem())
			cartGroup.DELETE("", cartControllers.ClearCart())
		}

		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", accountControllers.GetWishlist())
			wishlistGroup.POST("/:product_id", accountControllers.AddToWishlist())
			wishlistGroup.DELETE("/:product_id", accountControllers.RemoveFromWishlist())
		}

		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.GET("", checkoutControllers.GetCheckoutPage(deps.Checkouts))
			checkoutGroup.POST("", checkoutControllers.SubmitCheckout(deps.Checkouts, deps.Shaded, deps.Orders))
			checkoutGroup.DELETE("/:checkout_id", checkoutControllers.DeleteCheckout(deps.Checkouts))
		}
	}
}
