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

// CustomerInput carries the writable customer fields. Updates are
// destructive: a nil optional field is written as NULL, not merged with the
// stored value.
type CustomerInput struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	GSTIN   *string `json:"gstin"`
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns all customers ordered by name.
func (r *CustomerRepository) List() ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.db.Order("name ASC").Find(&customers).Error; err != nil {
		return nil, apperrors.Storage("failed to list customers", err)
	}
	return customers, nil
}

// All returns every customer row in storage order, for backup export.
func (r *CustomerRepository) All() ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, apperrors.Storage("failed to read customers", err)
	}
	return customers, nil
}

func (r *CustomerRepository) GetByID(id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("customer")
	}
	if err != nil {
		return nil, apperrors.Storage("failed to fetch customer", err)
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(in CustomerInput) (*models.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}

	now := time.Now().UnixMilli()
	customer := models.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		GSTIN:     in.GSTIN,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.Create(&customer).Error; err != nil {
		return nil, apperrors.Storage("failed to create customer", err)
	}
	return &customer, nil
}

// Update rewrites every column from the input and stamps updated_at.
func (r *CustomerRepository) Update(id string, in CustomerInput) (*models.Customer, error) {
	res := r.db.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       in.Name,
		"phone":      in.Phone,
		"email":      in.Email,
		"address":    in.Address,
		"gstin":      in.GSTIN,
		"updated_at": time.Now().UnixMilli(),
	})
	if res.Error != nil {
		return nil, apperrors.Storage("failed to update customer", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("customer")
	}
	return r.GetByID(id)
}

func (r *CustomerRepository) Delete(id string) error {
	res := r.db.Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete customer", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("customer")
	}
	return nil
}
