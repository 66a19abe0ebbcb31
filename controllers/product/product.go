package productControllers

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

// detailView is everything the product page renders in one shot: the
// normalized product, the variant groups and specifications parsed once
// here rather than ad hoc in views, the gallery and the reviews.
type detailView struct {
	Product        models.Product         `json:"product"`
	VariantGroups  []models.VariantGroup  `json:"variantGroups,omitempty"`
	Specifications []models.Specification `json:"specifications,omitempty"`
	Images         []models.ImageProduct  `json:"images,omitempty"`
	Reviews        []models.Review        `json:"reviews"`
	CanReview      bool                   `json:"canReview"`
}

// GET /products/:product_id
func GetProductDetail(products *services.ProductService, images *services.ImageService, reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Producto no válido"})
			return
		}
		ctx := c.Request.Context()

		product, err := products.ByID(ctx, id)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado", "redirect": "/catalog"})
				return
			}
			log.Printf("product: detail %d failed: %v", id, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo cargar el producto"})
			return
		}

		view := detailView{
			Product:        *product,
			VariantGroups:  models.ParseVariantGroups(product.Variant),
			Specifications: models.ParseSpecifications(product.Specifications),
			Reviews:        []models.Review{},
		}

		if gallery, err := images.ProductImages(ctx, id); err == nil {
			for i := range gallery {
				gallery[i].ImageURL = images.FullURL(gallery[i].ImageURL)
			}
			view.Images = gallery
		} else {
			log.Printf("product: gallery %d failed: %v", id, err)
		}

		if list, err := reviews.ByProduct(ctx, id); err == nil {
			view.Reviews = list
		} else {
			log.Printf("product: reviews %d failed: %v", id, err)
		}

		if token := middleware.BearerToken(c); token != "" {
			if can, err := reviews.CanReview(ctx, token, id); err == nil {
				view.CanReview = can
			}
		}

		c.JSON(http.StatusOK, view)
	}
}

// GET /products/:product_id/reviews
func GetProductReviews(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Producto no válido"})
			return
		}
		list, err := reviews.ByProduct(c.Request.Context(), id)
		if err != nil {
			log.Printf("product: reviews %d failed: %v", id, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar las reseñas"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// POST /products/:product_id/reviews
func CreateReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Producto no válido"})
			return
		}

		var input models.CreateReviewRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Revisa los campos de la reseña"})
			return
		}
		input.ProductID = productID
		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "La puntuación debe estar entre 1 y 5"})
			return
		}

		review, err := reviews.Create(c.Request.Context(), session.Token, input)
		if err != nil {
			log.Printf("product: create review for %d failed: %v", input.ProductID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo publicar la reseña"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}
