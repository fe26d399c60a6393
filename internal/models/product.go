package models

// Product is a catalog entry. Invoices snapshot product fields into their
// line items, so editing or deleting a product never rewrites history.
type Product struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"index;not null" json:"name"`
	Description *string `json:"description"`
	HSNCode     *string `gorm:"column:hsn_code" json:"hsn_code"`
	Unit        string  `gorm:"default:'pcs'" json:"unit"`
	Price       float64 `gorm:"not null" json:"price"`
	GSTRate     float64 `gorm:"column:gst_rate;not null;default:0" json:"gst_rate"`
	CreatedAt   int64   `gorm:"autoCreateTime:false;not null" json:"created_at"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:false;not null" json:"updated_at"`
}
