package catalogControllers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carlosbackdev/moto-gear-avenue/models"
	"github.com/carlosbackdev/moto-gear-avenue/services"
)

// GET /products?page=0&size=20
func GetProducts(products *services.ProductService, images *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := intQuery(c, "page", 0)
		size := intQuery(c, "size", 20)

		list, err := products.List(c.Request.Context(), page, size)
		if err != nil {
			log.Printf("catalog: product page %d failed: %v", page, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar los productos"})
			return
		}
		fillCardImages(c.Request.Context(), images, list)
		c.JSON(http.StatusOK, list)
	}
}

// fillCardImages resolves the gallery's primary image for cards whose
// product record carries no image of its own. Best effort; a card falls
// back to the placeholder it already has.
func fillCardImages(ctx context.Context, images *services.ImageService, list []models.Product) {
	for i := range list {
		if list[i].ImageURL != models.PlaceholderImage {
			continue
		}
		primary, err := images.PrimaryImage(ctx, list[i].ID)
		if err != nil || primary.ImageURL == "" {
			continue
		}
		list[i].ImageURL = images.FullURL(primary.ImageURL)
	}
}

// GET /products/category/:category_id?page=0
func GetProductsByCategory(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseInt(c.Param("category_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Categoría no válida"})
			return
		}
		page := intQuery(c, "page", 0)

		list, err := products.ByCategory(c.Request.Context(), categoryID, page)
		if err != nil {
			log.Printf("catalog: category %d failed: %v", categoryID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar los productos"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /products/search?q=casco&page=0
func SearchProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("q")
		if keyword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Escribe algo que buscar"})
			return
		}
		page := intQuery(c, "page", 0)

		list, err := products.Search(c.Request.Context(), keyword, page)
		if err != nil {
			log.Printf("catalog: search %q failed: %v", keyword, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "La búsqueda no está disponible"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /categories
func GetCategories(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List(c.Request.Context())
		if err != nil {
			log.Printf("catalog: categories failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar las categorías"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /home-banners
func GetHomeBanners(banners *services.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := banners.HomeBanners(c.Request.Context())
		if err != nil {
			log.Printf("catalog: home banners failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar los banners"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
