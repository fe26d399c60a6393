package repository

import (
	"errors"
	"strings"
	"time"

	"billmint-backend/internal/apperrors"
	"billmint-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductInput carries the writable product fields. Price and GSTRate are
// pointers so "not supplied" is distinguishable from zero.
type ProductInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	HSNCode     *string  `json:"hsn_code"`
	Unit        string   `json:"unit"`
	Price       *float64 `json:"price"`
	GSTRate     *float64 `json:"gst_rate"`
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns all products ordered by name.
func (r *ProductRepository) List() ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.Order("name ASC").Find(&products).Error; err != nil {
		return nil, apperrors.Storage("failed to list products", err)
	}
	return products, nil
}

// All returns every product row in storage order, for backup export.
func (r *ProductRepository) All() ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.Find(&products).Error; err != nil {
		return nil, apperrors.Storage("failed to read products", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("product")
	}
	if err != nil {
		return nil, apperrors.Storage("failed to fetch product", err)
	}
	return &product, nil
}

func (r *ProductRepository) Create(in ProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}
	if in.Price == nil {
		return nil, apperrors.Validation("price is required")
	}

	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	gstRate := 0.0
	if in.GSTRate != nil {
		gstRate = *in.GSTRate
	}

	now := time.Now().UnixMilli()
	product := models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		HSNCode:     in.HSNCode,
		Unit:        unit,
		Price:       *in.Price,
		GSTRate:     gstRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.Create(&product).Error; err != nil {
		return nil, apperrors.Storage("failed to create product", err)
	}
	return &product, nil
}

// Update rewrites every column from the input and stamps updated_at.
func (r *ProductRepository) Update(id string, in ProductInput) (*models.Product, error) {
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	gstRate := 0.0
	if in.GSTRate != nil {
		gstRate = *in.GSTRate
	}

	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"hsn_code":    in.HSNCode,
		"unit":        unit,
		"price":       in.Price,
		"gst_rate":    gstRate,
		"updated_at":  time.Now().UnixMilli(),
	})
	if res.Error != nil {
		return nil, apperrors.Storage("failed to update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("product")
	}
	return r.GetByID(id)
}

func (r *ProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("product")
	}
	return nil
}
