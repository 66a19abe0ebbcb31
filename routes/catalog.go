package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/account"
	catalogControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/catalog"
	productControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/product"
	"github.com/carlosbackdev/moto-gear-avenue/middleware"
)

// SetupCatalogRoutes registers the public browse endpoints. No session is
// required to look at products; reviews need one to write, not to read.
func SetupCatalogRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("", catalogControllers.GetProducts(deps.Products, deps.Images))
		products.GET("/search", catalogControllers.SearchProducts(deps.Products))
		products.GET("/category/:category_id", catalogControllers.GetProductsByCategory(deps.Products))
		products.GET("/:product_id", productControllers.GetProductDetail(deps.Products, deps.Images, deps.Reviews))
		products.GET("/:product_id/reviews", productControllers.GetProductReviews(deps.Reviews))

		products.POST("/:product_id/reviews",
			middleware.RequireSession(deps.Registry, deps.Auth),
			productControllers.CreateReview(deps.Reviews))
	}

	r.GET("/categories", catalogControllers.GetCategories(deps.Categories))
	r.GET("/home-banners", catalogControllers.GetHomeBanners(deps.Banners))
	r.GET("/users/:user_id/name", accountControllers.GetDisplayName(deps.Users))
}
