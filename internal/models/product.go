package models

import "time"

// MinProductPrice is the lowest accepted price, in minor currency units.
const MinProductPrice = 1000

// Product represents a product in the store.
type Product struct {
	ID         string    `json:"pd_id" gorm:"column:pd_id;primaryKey;type:varchar(36)"`
	Code       string    `json:"pd_code" gorm:"column:pd_code;not null"`
	CategoryID string    `json:"pd_ct_id" gorm:"column:pd_ct_id;type:varchar(36);not null;index"`
	Name       string    `json:"pd_name" gorm:"column:pd_name;not null"`
	Price      int64     `json:"pd_price" gorm:"column:pd_price;not null"`
	CreatedAt  time.Time `json:"pd_created_at" gorm:"column:pd_created_at"`
	UpdatedAt  time.Time `json:"pd_updated_at" gorm:"column:pd_updated_at"`

	// Category is only loaded for listings.
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:RESTRICT"`
}
