package routes

import (
	"github.com/gin-gonic/gin"

	googleauth "github.com/carlosbackdev/moto-gear-avenue/auth"
	"github.com/carlosbackdev/moto-gear-avenue/config"
	"github.com/carlosbackdev/moto-gear-avenue/services"
	"github.com/carlosbackdev/moto-gear-avenue/store"
)

// Deps carries everything the route groups need to build their handlers.
type Deps struct {
	Config   *config.Config
	Registry *store.Registry
	Verifier *googleauth.GoogleVerifier

	Auth       *services.AuthService
	Users      *services.UsersService
	Products   *services.ProductService
	Categories *services.CategoryService
	Banners    *services.BannerService
	Images     *services.ImageService
	Reviews    *services.ReviewService
	Checkouts  *services.CheckoutService
	Shaded     *services.CartShadedService
	Orders     *services.OrderService
	Payments   *services.PaymentService
	Tracking   *services.TrackingService
	Blog       *services.BlogService
}

// SetupRoutes wires up every route group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public catalog and content routes
	SetupCatalogRoutes(r, deps)
	SetupBlogRoutes(r, deps)

	// Session routes (bearer token required)
	SetupUserRoutes(r, deps)

	// Order, payment and tracking routes
	SetupOrderRoutes(r, deps)
}
