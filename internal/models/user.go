package models

import "time"

// User represents a user of the store.
type User struct {
	ID        string    `json:"us_id" gorm:"column:us_id;primaryKey;type:varchar(36)"`
	Name      string    `json:"us_name" gorm:"column:us_name;type:varchar(50);not null"`
	Email     string    `json:"us_email" gorm:"column:us_email;uniqueIndex;type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"column:us_password;type:varchar(255);not null"` // bcrypt hash, never serialized
	Phone     string    `json:"us_phone_number" gorm:"column:us_phone_number;type:varchar(13);not null"`
	Address   string    `json:"us_address" gorm:"column:us_address;not null"`
	CreatedAt time.Time `json:"us_created_at" gorm:"column:us_created_at"`
	UpdatedAt time.Time `json:"us_updated_at" gorm:"column:us_updated_at"`
}
