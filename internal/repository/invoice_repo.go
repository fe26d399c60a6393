package repository

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"billmint-backend/internal/apperrors"
	"billmint-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceInput carries the writable invoice fields. Items is a pointer so an
// absent collection can be rejected while an empty one is accepted. Totals
// are stored exactly as supplied.
type InvoiceInput struct {
	InvoiceNumber   string                `json:"invoice_number"`
	CustomerID      string                `json:"customer_id"`
	CustomerName    string                `json:"customer_name"`
	CustomerPhone   *string               `json:"customer_phone"`
	CustomerAddress *string               `json:"customer_address"`
	CustomerGSTIN   *string               `json:"customer_gstin"`
	InvoiceDate     *int64                `json:"invoice_date"`
	DueDate         *int64                `json:"due_date"`
	Items           *[]models.InvoiceItem `json:"items"`
	Subtotal        float64               `json:"subtotal"`
	Discount        float64               `json:"discount"`
	TaxableValue    float64               `json:"taxable_value"`
	CGST            float64               `json:"cgst"`
	SGST            float64               `json:"sgst"`
	IGST            float64               `json:"igst"`
	Total           float64               `json:"total"`
	Notes           *string               `json:"notes"`
}

// InvoiceListOptions filters and pages the invoice listing.
type InvoiceListOptions struct {
	Search string
	Limit  int
	Offset int
}

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// List returns invoices ordered by invoice_date descending, optionally
// filtered by a case-insensitive substring match over invoice_number or
// customer_name.
func (r *InvoiceRepository) List(opts InvoiceListOptions) ([]models.Invoice, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	query := r.db.Model(&models.Invoice{})
	if opts.Search != "" {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		query = query.Where("LOWER(invoice_number) LIKE ? OR LOWER(customer_name) LIKE ?", pattern, pattern)
	}

	invoices := []models.Invoice{}
	err := query.Order("invoice_date DESC").Limit(limit).Offset(offset).Find(&invoices).Error
	if err != nil {
		return nil, wrapInvoiceReadError(err)
	}
	return invoices, nil
}

// All returns every invoice row in storage order, for backup export.
func (r *InvoiceRepository) All() ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	if err := r.db.Find(&invoices).Error; err != nil {
		return nil, wrapInvoiceReadError(err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) GetByID(id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("invoice")
	}
	if err != nil {
		return nil, wrapInvoiceReadError(err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Create(in InvoiceInput) (*models.Invoice, error) {
	if strings.TrimSpace(in.InvoiceNumber) == "" {
		return nil, apperrors.Validation("invoice_number is required")
	}
	if in.CustomerID == "" {
		return nil, apperrors.Validation("customer_id is required")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, apperrors.Validation("customer_name is required")
	}
	if in.Items == nil {
		return nil, apperrors.Validation("items must be a list")
	}

	now := time.Now().UnixMilli()
	invoiceDate := now
	if in.InvoiceDate != nil {
		invoiceDate = *in.InvoiceDate
	}

	invoice := models.Invoice{
		ID:              uuid.NewString(),
		InvoiceNumber:   in.InvoiceNumber,
		CustomerID:      in.CustomerID,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		CustomerGSTIN:   in.CustomerGSTIN,
		InvoiceDate:     invoiceDate,
		DueDate:         in.DueDate,
		Items:           toItems(in.Items),
		Subtotal:        in.Subtotal,
		Discount:        in.Discount,
		TaxableValue:    in.TaxableValue,
		CGST:            in.CGST,
		SGST:            in.SGST,
		IGST:            in.IGST,
		Total:           in.Total,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := r.db.Create(&invoice).Error; err != nil {
		return nil, apperrors.Storage("failed to create invoice", err)
	}
	return &invoice, nil
}

// Update rewrites every column from the input and stamps updated_at. The
// items collection is re-serialized on every write.
func (r *InvoiceRepository) Update(id string, in InvoiceInput) (*models.Invoice, error) {
	now := time.Now().UnixMilli()
	invoiceDate := now
	if in.InvoiceDate != nil {
		invoiceDate = *in.InvoiceDate
	}

	res := r.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"invoice_number":   in.InvoiceNumber,
		"customer_id":      in.CustomerID,
		"customer_name":    in.CustomerName,
		"customer_phone":   in.CustomerPhone,
		"customer_address": in.CustomerAddress,
		"customer_gstin":   in.CustomerGSTIN,
		"invoice_date":     invoiceDate,
		"due_date":         in.DueDate,
		"items":            toItems(in.Items),
		"subtotal":         in.Subtotal,
		"discount":         in.Discount,
		"taxable_value":    in.TaxableValue,
		"cgst":             in.CGST,
		"sgst":             in.SGST,
		"igst":             in.IGST,
		"total":            in.Total,
		"notes":            in.Notes,
		"updated_at":       now,
	})
	if res.Error != nil {
		return nil, apperrors.Storage("failed to update invoice", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("invoice")
	}
	return r.GetByID(id)
}

func (r *InvoiceRepository) Delete(id string) error {
	res := r.db.Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete invoice", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("invoice")
	}
	return nil
}

// toItems normalizes an absent or null collection to an empty one so the
// stored column always holds a JSON array.
func toItems(items *[]models.InvoiceItem) models.InvoiceItems {
	if items == nil || *items == nil {
		return models.InvoiceItems{}
	}
	return models.InvoiceItems(*items)
}

// wrapInvoiceReadError distinguishes a row whose items column no longer
// decodes from an engine failure.
func wrapInvoiceReadError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return apperrors.CorruptData("failed to decode invoice items", err)
	}
	return apperrors.Storage("failed to read invoices", err)
}
