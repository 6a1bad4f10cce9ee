package domain

// User Model
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`                         // Primary key
	Username    string `gorm:"size:50;uniqueIndex;not null" json:"username"` // Unique username
	Password    string `gorm:"size:255;not null" json:"-"`                   // Bcrypt hash, never serialized
	Email       string `gorm:"size:100;uniqueIndex;not null" json:"email"`   // Unique email
	PhoneNumber string `gorm:"size:20" json:"phone_number"`                  // Contact phone number
}
