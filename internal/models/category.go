package models

import "time"

// Category groups products. It cannot be removed while products point at it.
type Category struct {
	ID        string    `json:"ct_id" gorm:"column:ct_id;primaryKey;type:varchar(36)"`
	Code      string    `json:"ct_code" gorm:"column:ct_code;not null"`
	Name      string    `json:"ct_name" gorm:"column:ct_name;not null"`
	CreatedAt time.Time `json:"ct_created_at" gorm:"column:ct_created_at"`
	UpdatedAt time.Time `json:"ct_updated_at" gorm:"column:ct_updated_at"`
}
