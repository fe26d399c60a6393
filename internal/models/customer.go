package models

// Customer is a billing customer. Optional columns are pointers so a missing
// value round-trips as NULL rather than an empty string.
type Customer struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"index;not null" json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	GSTIN     *string `gorm:"column:gstin" json:"gstin"`
	CreatedAt int64   `gorm:"autoCreateTime:false;not null" json:"created_at"`
	UpdatedAt int64   `gorm:"autoUpdateTime:false;not null" json:"updated_at"`
}
