package repository

import (
	"errors" // Sentinel errors

	"campus_market/internal/domain" // Importing domain models
	"campus_market/internal/utils"  // Image codec

	"gorm.io/gorm" // GORM ORM library
)

// ErrProductNotFound is returned by GetDetail when no row matches the id
var ErrProductNotFound = errors.New("product not found")

// firstImageSubquery resolves the primary image: the row with the lowest
// display_order. display_order is a sort key only, ties resolve arbitrarily.
const firstImageSubquery = `(SELECT pi.image_data FROM product_images pi WHERE pi.product_id = p.id ORDER BY pi.display_order ASC LIMIT 1)`

// listColumns is the allowlisted projection for all list views
const listColumns = `p.id, p.name, p.description, p.price, p.category_id, p.user_id, p.location, p.status, p.created_at, c.name AS category_name, u.username, ` + firstImageSubquery + ` AS first_image`

// detailColumns adds the seller contact columns for the detail view
const detailColumns = `p.id, p.name, p.description, p.price, p.category_id, p.user_id, p.location, p.status, p.created_at, c.name AS category_name, u.username, u.phone_number, u.email`

// listQuery builds the shared joined listing query, newest first
func listQuery(db *gorm.DB) *gorm.DB {
	return db.Table("products p").
		Select(listColumns).
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Joins("LEFT JOIN users u ON p.user_id = u.id").
		Order("p.created_at DESC")
}

// ListAvailable returns every available product with its primary image
func ListAvailable(db *gorm.DB) ([]ProductSummary, error) {
	var rows []productRow
	err := listQuery(db).
		Where("p.status = ?", domain.StatusAvailable).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return projectSummaries(rows), nil
}

// ListByCategory returns the available products of one category
func ListByCategory(db *gorm.DB, categoryID string) ([]ProductSummary, error) {
	var rows []productRow
	err := listQuery(db).
		Where("p.category_id = ? AND p.status = ?", categoryID, domain.StatusAvailable).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return projectSummaries(rows), nil
}

// Search filters available products by substring match on name or
// description. An empty keyword matches everything.
func Search(db *gorm.DB, keyword string) ([]ProductSummary, error) {
	like := "%" + keyword + "%" // Substring pattern
	var rows []productRow
	err := listQuery(db).
		Where("(p.name LIKE ? OR p.description LIKE ?) AND p.status = ?", like, like, domain.StatusAvailable).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return projectSummaries(rows), nil
}

// GetDetail returns one product regardless of status, with seller contact
// info and the full ordered image sequence
func GetDetail(db *gorm.DB, id string) (*ProductDetail, error) {
	var row productRow
	result := db.Table("products p").
		Select(detailColumns).
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Joins("LEFT JOIN users u ON p.user_id = u.id").
		Where("p.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProductNotFound // No row matched the id
	}
	var imageRows []domain.ProductImage // Full gallery in display order
	err := db.Where("product_id = ?", id).
		Order("display_order ASC").
		Find(&imageRows).Error
	if err != nil {
		return nil, err
	}
	return projectDetail(row, imageRows), nil
}

// CreateInput carries the fields of a new listing. Images are transport
// strings (data URI or bare base64) in presentation order.
type CreateInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uint
	UserID      uint
	Location    string
	Images      []string
}

// UpdateInput carries the mutable listing fields. Images nil means the
// existing gallery is left untouched; a non-nil slice (even empty) replaces
// the whole image set.
type UpdateInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uint
	Location    string
	Images      *[]string
}

// insertImages bulk-inserts encoded images, display_order = input position
func insertImages(tx *gorm.DB, productID uint, images []string) error {
	rows := make([]domain.ProductImage, 0, len(images))
	for i, image := range images {
		rows = append(rows, domain.ProductImage{
			ProductID:    productID,
			ImageData:    utils.EncodeImage(image), // Stored bare
			DisplayOrder: i,                        // 0-based input position
		})
	}
	return tx.Create(&rows).Error
}

// Create inserts the product row and its images in one transaction; a
// product row without its images is never observably committed
func Create(db *gorm.DB, in CreateInput) (uint, error) {
	var productID uint // Assigned inside the transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		product := domain.Product{
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			CategoryID:  in.CategoryID,
			UserID:      in.UserID,
			Location:    in.Location,
			Status:      domain.StatusAvailable, // New listings start available
		}
		if err := tx.Create(&product).Error; err != nil {
			return err // Return error to rollback
		}
		productID = product.ID
		if len(in.Images) == 0 {
			return nil // Listing without images is valid
		}
		return insertImages(tx, product.ID, in.Images)
	})
	return productID, err
}

// Update rewrites the mutable product columns unconditionally (last write
// wins, no optimistic check) and, when Images is present, replaces the full
// image set. Delete-then-insert relies on the store's transaction isolation
// against concurrent updates of the same product.
func Update(db *gorm.DB, id string, in UpdateInput) error {
	return db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":        in.Name,
			"description": in.Description,
			"price":       in.Price,
			"category_id": in.CategoryID,
			"location":    in.Location,
		}
		if err := tx.Model(&domain.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err // Return error to rollback
		}
		if in.Images == nil {
			return nil // Images absent: photos stay as they are
		}
		// Full replacement: drop every row, then reinsert from the input
		if err := tx.Where("product_id = ?", id).Delete(&domain.ProductImage{}).Error; err != nil {
			return err // Return error to rollback
		}
		if len(*in.Images) == 0 {
			return nil // Explicit empty set clears the gallery
		}
		product, err := parseProductID(tx, id)
		if err != nil {
			return err
		}
		return insertImages(tx, product, *in.Images)
	})
}

// parseProductID resolves the row id for image inserts; the update path
// accepts the id as the raw path parameter
func parseProductID(tx *gorm.DB, id string) (uint, error) {
	var product domain.Product
	if err := tx.Select("id").Where("id = ?", id).First(&product).Error; err != nil {
		return 0, err
	}
	return product.ID, nil
}

// MarkSold flips the status to sold. Unconditional: reapplying is a no-op
// and an unknown id updates zero rows without error.
func MarkSold(db *gorm.DB, id string) error {
	return db.Model(&domain.Product{}).
		Where("id = ?", id).
		Update("status", domain.StatusSold).Error
}

// ListCategories returns the full reference table
func ListCategories(db *gorm.DB) ([]domain.Category, error) {
	var categories []domain.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
