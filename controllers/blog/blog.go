package blogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carlosbackdev/moto-gear-avenue/services"
)

// GET /blog
func GetPosts(blog *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"posts": blog.All()})
	}
}

// GET /blog/:slug
func GetPostBySlug(blog *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, ok := blog.BySlug(c.Param("slug"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artículo no encontrado", "redirect": "/blog"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"post":    post,
			"related": blog.Recent(2),
		})
	}
}

// GET /blog/recent?limit=n
func GetRecentPosts(blog *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 3
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}
		c.JSON(http.StatusOK, gin.H{"posts": blog.Recent(limit)})
	}
}
