package models

import "time"

// MaxPhotoBytes caps stored product photos at ~1MB.
const MaxPhotoBytes = 1000000

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"index;not null" json:"slug"` // derived from Name, never set by clients
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Shipping    bool      `json:"shipping"`
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category"`
	Photo       []byte    `gorm:"type:bytea" json:"-"`
	PhotoType   string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
