package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes

	"campus_market/internal/repository" // Listing repository

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// CreateProductRequest represents a new listing submission
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`        // Listing title
	Description string   `json:"description"`                    // Free-form description
	Price       float64  `json:"price" binding:"required"`       // Asking price
	CategoryID  uint     `json:"category_id" binding:"required"` // Category reference
	UserID      uint     `json:"user_id" binding:"required"`     // Seller reference
	Location    string   `json:"location"`                       // Pickup location
	Images      []string `json:"images"`                         // Transport image strings, in order
}

// UpdateProductRequest represents a listing edit. All text fields are
// written unconditionally; a nil Images field leaves the gallery untouched
// while a present one (even empty) replaces it in full.
type UpdateProductRequest struct {
	Name        string    `json:"name"`        // Listing title
	Description string    `json:"description"` // Free-form description
	Price       float64   `json:"price"`       // Asking price
	CategoryID  uint      `json:"category_id"` // Category reference
	Location    string    `json:"location"`    // Pickup location
	Images      *[]string `json:"images"`      // nil = untouched, non-nil = full replacement
}

// ListProductsHandler returns every available listing with its primary image
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repository.ListAvailable(db) // Fetch available listings
		if err != nil {
			// Log the error and surface the storage failure
			logrus.WithField("error", err.Error()).Error("Failed to list products")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products", "error": err.Error()})
			return
		}
		// Return the projected list
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}

// ListByCategoryHandler returns the available listings of one category
func ListByCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")                        // Category id from the path
		products, err := repository.ListByCategory(db, categoryID) // Fetch filtered listings
		if err != nil {
			// Log the error and surface the storage failure
			logrus.WithFields(logrus.Fields{
				"category_id": categoryID,  // Requested category
				"error":       err.Error(), // Error message
			}).Error("Failed to list products by category")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch category products", "error": err.Error()})
			return
		}
		// Return the projected list
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}

// SearchProductsHandler filters available listings by keyword; an empty
// keyword matches everything
func SearchProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("keyword")                   // Substring to match, may be empty
		products, err := repository.Search(db, keyword) // Fetch matching listings
		if err != nil {
			// Log the error and surface the storage failure
			logrus.WithFields(logrus.Fields{
				"keyword": keyword,     // Search keyword
				"error":   err.Error(), // Error message
			}).Error("Product search failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Search failed", "error": err.Error()})
			return
		}
		// Return the projected list
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}

// GetProductHandler returns one listing with seller contact info and the
// full image gallery, regardless of status
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")                          // Product id from the path
		product, err := repository.GetDetail(db, id) // Fetch the detail row
		// Unknown id maps to 404, anything else is a storage failure
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		if err != nil {
			// Log the error and surface the storage failure
			logrus.WithFields(logrus.Fields{
				"product_id": id,          // Requested product
				"error":      err.Error(), // Error message
			}).Error("Failed to fetch product detail")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product", "error": err.Error()})
			return
		}
		// Return the projected detail
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}

// CreateProductHandler inserts a listing and its images atomically
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
			return
		}
		// Insert product and images in one transaction
		productID, err := repository.Create(db, repository.CreateInput{
			Name:        req.Name,        // Listing title
			Description: req.Description, // Description
			Price:       req.Price,       // Asking price
			CategoryID:  req.CategoryID,  // Category reference
			UserID:      req.UserID,      // Seller reference
			Location:    req.Location,    // Pickup location
			Images:      req.Images,      // Ordered transport images
		})
		if err != nil {
			// Log the error and surface the storage failure
			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,  // Seller
				"name":    req.Name,    // Listing title
				"error":   err.Error(), // Error message
			}).Error("Failed to create product")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product", "error": err.Error()})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"product_id": productID,       // New listing id
			"user_id":    req.UserID,      // Seller
			"images":     len(req.Images), // Gallery size
		}).Info("Product created")
		// Return success response with the new id
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product created", "productId": productID})
	}
}

// UpdateProductHandler rewrites the mutable listing fields and, when the
// images field is present in the body, replaces the whole gallery
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")          // Product id from the path
		var req UpdateProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
			return
		}
		// Update fields and optionally replace images in one transaction
		err := repository.Update(db, id, repository.UpdateInput{
			Name:        req.Name,        // Listing title
			Description: req.Description, // Description
			Price:       req.Price,       // Asking price
			CategoryID:  req.CategoryID,  // Category reference
			Location:    req.Location,    // Pickup location
			Images:      req.Images,      // nil keeps the gallery
		})
		if err != nil {
			// Log the error and surface the storage failure
			logrus.WithFields(logrus.Fields{
				"product_id": id,          // Target listing
				"error":      err.Error(), // Error message
			}).Error("Failed to update product")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product", "error": err.Error()})
			return
		}
		// Log successful update
		logrus.WithFields(logrus.Fields{
			"product_id":      id,                // Target listing
			"images_replaced": req.Images != nil, // Whether the gallery was rewritten
		}).Info("Product updated")
		// Return success response
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated"})
	}
}

// DeleteProductHandler marks a listing sold. Deletion is simulated by the
// status flip; reapplying or hitting an unknown id is a silent no-op.
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Product id from the path
		if err := repository.MarkSold(db, id); err != nil {
			// Log the error and surface the storage failure
			logrus.WithFields(logrus.Fields{
				"product_id": id,          // Target listing
				"error":      err.Error(), // Error message
			}).Error("Failed to mark product sold")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove product", "error": err.Error()})
			return
		}
		// Log the status flip
		logrus.WithField("product_id", id).Info("Product marked sold")
		// Return success response
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product removed"})
	}
}

// ListCategoriesHandler returns the full category reference table
func ListCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := repository.ListCategories(db) // Fetch all categories
		if err != nil {
			// Log the error and surface the storage failure
			logrus.WithField("error", err.Error()).Error("Failed to list categories")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch categories", "error": err.Error()})
			return
		}
		// Return the reference table
		c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
	}
}
