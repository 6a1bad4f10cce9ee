package repository

import (
	"campus_market/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserExists reports whether a username or email is already registered
func UserExists(db *gorm.DB, username, email string) (bool, error) {
	var count int64 // Matching user count
	err := db.Model(&domain.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

// CreateUser inserts a new user and fills in the generated id
func CreateUser(db *gorm.DB, user *domain.User) error {
	return db.Create(user).Error
}

// FindUserByUsername fetches one user for credential checks;
// gorm.ErrRecordNotFound when the username is unknown
func FindUserByUsername(db *gorm.DB, username string) (*domain.User, error) {
	var user domain.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
