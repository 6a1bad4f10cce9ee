package domain

import "time"

// ProductImage Model — one image row per position in a listing's gallery.
// DisplayOrder is a sort key only: nothing enforces contiguity or uniqueness,
// the lowest value is the primary image.
type ProductImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`              // Primary key
	ProductID    uint      `gorm:"not null;index" json:"product_id"`  // Foreign key to Product
	ImageData    string    `gorm:"type:longtext;not null" json:"-"`   // Bare base64 payload, unbounded size
	DisplayOrder int       `gorm:"not null;default:0" json:"-"`       // Presentation sequence
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`  // Row creation time
}

// TableName pins the table name used by the raw listing queries
func (ProductImage) TableName() string {
	return "product_images"
}
