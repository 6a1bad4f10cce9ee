package repository

import (
	"time" // Timestamps in response shapes

	"campus_market/internal/domain" // Importing domain models
	"campus_market/internal/utils"  // Image codec
)

// productRow is the raw shape of one joined listing row. category_name,
// username and first_image come from LEFT JOINs and a correlated subquery,
// so any of them may scan as the zero value when no match exists.
type productRow struct {
	ID           uint      // products.id
	Name         string    // products.name
	Description  string    // products.description
	Price        float64   // products.price
	CategoryID   uint      // products.category_id
	UserID       uint      // products.user_id
	Location     string    // products.location
	Status       string    // products.status
	CreatedAt    time.Time // products.created_at
	CategoryName string    // categories.name via LEFT JOIN
	Username     string    // users.username via LEFT JOIN
	FirstImage   string    // Lowest display_order image, empty when none
	PhoneNumber  string    // users.phone_number, detail query only
	Email        string    // users.email, detail query only
}

// ProductSummary is the list-view response shape: an explicit allowlist of
// columns, never a raw row spread. Images carries at most the primary image.
type ProductSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name"`
	UserID       uint      `json:"user_id"`
	Username     string    `json:"username"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	Images       []string  `json:"images"`
}

// ProductDetail adds the seller's contact columns and carries the full
// decoded image sequence in Images
type ProductDetail struct {
	ProductSummary
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// projectSummary maps one joined row to the list-view shape. The primary
// image is decoded to its transport form; a product without images gets an
// empty slice, not null.
func projectSummary(row productRow) ProductSummary {
	summary := ProductSummary{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		Price:        row.Price,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		UserID:       row.UserID,
		Username:     row.Username,
		Location:     row.Location,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
		Images:       []string{}, // Zero or one element
	}
	if row.FirstImage != "" {
		summary.Images = append(summary.Images, utils.DecodeImage(row.FirstImage))
	}
	return summary
}

// projectSummaries maps a whole result set
func projectSummaries(rows []productRow) []ProductSummary {
	summaries := make([]ProductSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, projectSummary(row))
	}
	return summaries
}

// projectDetail maps the detail row plus its ordered image rows. Every image
// is decoded; entries that decode to empty are dropped.
func projectDetail(row productRow, imageRows []domain.ProductImage) *ProductDetail {
	detail := &ProductDetail{
		ProductSummary: projectSummary(row),
		PhoneNumber:    row.PhoneNumber,
		Email:          row.Email,
	}
	detail.Images = make([]string, 0, len(imageRows))
	for _, img := range imageRows {
		if decoded := utils.DecodeImage(img.ImageData); decoded != "" {
			detail.Images = append(detail.Images, decoded)
		}
	}
	return detail
}
