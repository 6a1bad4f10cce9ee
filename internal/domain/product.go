package domain

import "time"

// Product status values; the only legal transition is available -> sold
const (
	StatusAvailable = "available" // Listed and visible in browse/search
	StatusSold      = "sold"      // Taken down, still reachable by id
)

// Product Model
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`                                      // Primary key
	Name        string         `gorm:"size:100;not null" json:"name"`                             // Listing title
	Description string         `gorm:"type:text" json:"description"`                              // Free-form description
	Price       float64        `gorm:"not null" json:"price"`                                     // Asking price
	CategoryID  uint           `gorm:"index" json:"category_id"`                                  // Foreign key to Category
	UserID      uint           `gorm:"index" json:"user_id"`                                      // Foreign key to User (owner)
	Location    string         `gorm:"size:100" json:"location"`                                  // Pickup location on campus
	Status      string         `gorm:"size:20;not null;default:available" json:"status"`          // available or sold
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`                          // Set at creation, never updated
	Images      []ProductImage `gorm:"constraint:OnDelete:CASCADE" json:"-"`                      // Owned image rows, cascade on delete
}
