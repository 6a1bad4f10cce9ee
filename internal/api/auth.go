package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes

	"campus_market/internal/domain"     // Importing domain models
	"campus_market/internal/repository" // User queries

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// RegisterRequest represents a registration submission
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"` // Username must be provided
	Password    string `json:"password" binding:"required"` // Password must be provided
	Email       string `json:"email" binding:"required"`    // Email must be provided
	PhoneNumber string `json:"phone_number"`                // Contact phone number
}

// LoginRequest represents a login submission
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RegisterHandler creates a new user account. The source system stored
// cleartext passwords; that is not carried over — only a bcrypt hash is
// persisted and responses never include the password column.
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
			return
		}
		// Reject duplicate username or email
		exists, err := repository.UserExists(db, req.Username, req.Email)
		if err != nil {
			// Log the error and surface the storage failure
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Attempted username
				"error":    err.Error(),  // Error message
			}).Error("Registration lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed", "error": err.Error()})
			return
		}
		if exists {
			// Conflict with an existing account
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username or email already exists"})
			return
		}
		// Hash the password before storing
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed", "error": err.Error()})
			return
		}
		user := domain.User{
			Username:    req.Username,    // Unique username
			Password:    string(hash),    // Bcrypt hash
			Email:       req.Email,       // Unique email
			PhoneNumber: req.PhoneNumber, // Contact phone number
		}
		// Attempt to create the user in the database
		if err := repository.CreateUser(db, &user); err != nil {
			// Log the error and surface the storage failure
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Attempted username
				"error":    err.Error(),  // Error message
			}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed", "error": err.Error()})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,      // New account id
			"username": req.Username, // Registered username
		}).Info("User registered")
		// Return success response with the new id
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Registration successful", "userId": user.ID})
	}
}

// LoginHandler checks credentials and returns the public user fields
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
			return
		}
		user, err := repository.FindUserByUsername(db, req.Username) // Fetch the account
		// Unknown username is a credential failure, anything else a storage failure
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
			return
		}
		if err != nil {
			// Log the error and surface the storage failure
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Attempted username
				"error":    err.Error(),  // Error message
			}).Error("Login lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed", "error": err.Error()})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
			return
		}
		// Return the public user fields, never the password column
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"user": gin.H{
				"id":       user.ID,       // Account id
				"username": user.Username, // Username
				"email":    user.Email,    // Email
			},
		})
	}
}
