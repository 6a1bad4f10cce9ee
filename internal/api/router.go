package api

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RegisterRoutes mounts the full API surface on the router
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	// Product routes
	products := r.Group("/api/products")
	products.GET("", ListProductsHandler(db))                        // Browse available listings
	products.GET("/search", SearchProductsHandler(db))               // Keyword search
	products.GET("/categories/all", ListCategoriesHandler(db))       // Category reference table
	products.GET("/category/:categoryId", ListByCategoryHandler(db)) // Category filter
	products.GET("/:id", GetProductHandler(db))                      // Listing detail with full gallery
	products.POST("", CreateProductHandler(db))                      // Publish a listing
	products.PUT("/:id", UpdateProductHandler(db))                   // Edit a listing
	products.DELETE("/:id", DeleteProductHandler(db))                // Mark a listing sold

	// User routes
	users := r.Group("/api/users")
	users.POST("/register", RegisterHandler(db)) // Registration endpoint
	users.POST("/login", LoginHandler(db))       // Login endpoint
}
