package models

import "time"

type User struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`
	Phone   string `gorm:"not null" json:"phone"`
	Address string `gorm:"not null" json:"address"`
	// Password and Answer arrive already hashed; they are stored verbatim
	// and never serialized back to clients.
	Password  string    `gorm:"not null" json:"-"`
	Answer    string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
