package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	googleauth "github.com/carlosbackdev/moto-gear-avenue/auth"
	"github.com/carlosbackdev/moto-gear-avenue/config"
	"github.com/carlosbackdev/moto-gear-avenue/routes"
	"github.com/carlosbackdev/moto-gear-avenue/services"
	"github.com/carlosbackdev/moto-gear-avenue/store"
)

func main() {
	log.Println("✅ Starting storefront...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// Backend REST client and the typed services on top of it
	client := api.New(cfg.APIBaseURL)

	authService := services.NewAuthService(client)
	usersService := services.NewUsersService(client)
	productService := services.NewProductService(client)
	categoryService := services.NewCategoryService(client)
	bannerService := services.NewBannerService(client)
	imageService := services.NewImageService(client, cfg.ImageBaseURL)
	reviewService := services.NewReviewService(client)
	cartService := services.NewCartService(client)
	shadedService := services.NewCartShadedService(client)
	checkoutService := services.NewCheckoutService(client)
	orderService := services.NewOrderService(client)
	paymentService := services.NewPaymentService(client)
	trackingService := services.NewTrackingService(client)
	wishlistService := services.NewWishlistService(client)
	blogService := services.NewBlogService()

	registry := store.NewRegistry(cartService, productService, wishlistService)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Config:     cfg,
		Registry:   registry,
		Verifier:   googleauth.NewGoogleVerifier(cfg.GoogleClientID),
		Auth:       authService,
		Users:      usersService,
		Products:   productService,
		Categories: categoryService,
		Banners:    bannerService,
		Images:     imageService,
		Reviews:    reviewService,
		Checkouts:  checkoutService,
		Shaded:     shadedService,
		Orders:     orderService,
		Payments:   paymentService,
		Tracking:   trackingService,
		Blog:       blogService,
	})

	// Start server
	log.Printf("🚀 Storefront running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
