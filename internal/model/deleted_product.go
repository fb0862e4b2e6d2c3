package model

import (
	"time"
)

// DeletedProduct is a denormalized snapshot taken when a product is
// deleted. Category and brand are stored by name, so the record stays
// readable even after the live rows change. OriginalProductID is a
// historical pointer: a restored product gets a fresh ID.
type DeletedProduct struct {
	ID                uint      `json:"deletedProductId" gorm:"primarykey"`
	Name              string    `json:"name" gorm:"type:varchar(255);not null"`
	Description       string    `json:"description" gorm:"type:text"`
	Quantity          int       `json:"quantity" gorm:"not null"`
	DeletedAt         time.Time `json:"deletedAt" gorm:"index"`
	OriginalProductID uint      `json:"originalProductId" gorm:"index"`
	CategoryName      string    `json:"categoryName" gorm:"type:varchar(100)"`
	BrandName         string    `json:"brand" gorm:"type:varchar(100)"`
	DeletedBy         string    `json:"deletedBy" gorm:"type:varchar(64)"`
	CreatedBy         string    `json:"createdBy" gorm:"type:varchar(64)"`
}
