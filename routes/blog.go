package routes

import (
	"github.com/gin-gonic/gin"

	blogControllers "github.com/carlosbackdev/moto-gear-avenue/controllers/blog"
)

// SetupBlogRoutes registers the editorial and informational pages.
func SetupBlogRoutes(r *gin.Engine, deps Deps) {
	blogGroup := r.Group("/blog")
	{
		blogGroup.GET("", blogControllers.GetPosts(deps.Blog))
		blogGroup.GET("/recent", blogControllers.GetRecentPosts(deps.Blog))
		blogGroup.GET("/:slug", blogControllers.GetPostBySlug(deps.Blog))
	}

	r.GET("/pages/:slug", blogControllers.GetInfoPage())
}
