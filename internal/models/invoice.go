package models

import (
	"gorm.io/datatypes"
)

// InvoiceItem is one line of an invoice. Product fields are copied in at
// creation time; the line never references the live product row.
type InvoiceItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	HSNCode   string  `json:"hsn_code"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	GSTRate   float64 `json:"gst_rate"`
	Amount    float64 `json:"amount"`
}

// InvoiceItems is stored as a serialized JSON text column inside the invoice
// row, not as child rows.
type InvoiceItems = datatypes.JSONSlice[InvoiceItem]

// Invoice is a persisted invoice with denormalized customer fields and
// precomputed GST totals. Totals are stored as supplied by the caller and are
// never recomputed from the items.
type Invoice struct {
	ID              string       `gorm:"primaryKey" json:"id"`
	InvoiceNumber   string       `gorm:"uniqueIndex;not null" json:"invoice_number"`
	CustomerID      string       `gorm:"index;not null" json:"customer_id"`
	CustomerName    string       `gorm:"not null" json:"customer_name"`
	CustomerPhone   *string      `json:"customer_phone"`
	CustomerAddress *string      `json:"customer_address"`
	CustomerGSTIN   *string      `gorm:"column:customer_gstin" json:"customer_gstin"`
	InvoiceDate     int64        `gorm:"index;not null" json:"invoice_date"`
	DueDate         *int64       `json:"due_date"`
	Items           InvoiceItems `gorm:"not null" json:"items"`
	Subtotal        float64      `gorm:"not null" json:"subtotal"`
	Discount        float64      `gorm:"not null;default:0" json:"discount"`
	TaxableValue    float64      `gorm:"not null" json:"taxable_value"`
	CGST            float64      `gorm:"column:cgst;not null;default:0" json:"cgst"`
	SGST            float64      `gorm:"column:sgst;not null;default:0" json:"sgst"`
	IGST            float64      `gorm:"column:igst;not null;default:0" json:"igst"`
	Total           float64      `gorm:"not null" json:"total"`
	Notes           *string      `json:"notes"`
	CreatedAt       int64        `gorm:"autoCreateTime:false;not null" json:"created_at"`
	UpdatedAt       int64        `gorm:"autoUpdateTime:false;not null" json:"updated_at"`
}
