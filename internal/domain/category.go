package domain

// Category Model (static reference data, seeded once)
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`         // Primary key
	Name string `gorm:"size:50;not null" json:"name"` // Category name
}
