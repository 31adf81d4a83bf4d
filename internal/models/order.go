package models

import "time"

// Order records the purchase of one product. Amount is a snapshot of
// price x quantity taken when the order was created and never recomputed.
type Order struct {
	ID        string    `json:"or_id" gorm:"column:or_id;primaryKey;type:varchar(36)"`
	ProductID string    `json:"or_pd_id" gorm:"column:or_pd_id;type:varchar(36);not null;index"`
	Amount    int64     `json:"or_amount" gorm:"column:or_amount;not null"`
	CreatedAt time.Time `json:"or_created_at" gorm:"column:or_created_at"`
	UpdatedAt time.Time `json:"or_updated_at" gorm:"column:or_updated_at"`

	// Product is only loaded for listings.
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:RESTRICT"`
}
