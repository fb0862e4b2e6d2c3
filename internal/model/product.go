package model

import (
	"time"
)

// Product is an active catalog entry. Deleting a product moves its data
// into DeletedProduct; restoring creates a new Product with a new ID.
type Product struct {
	ID                 uint      `json:"productId" gorm:"primarykey"`
	Name               string    `json:"name" gorm:"type:varchar(255);not null"`
	Quantity           int       `json:"quantity" gorm:"not null;default:0"`
	CategoryID         uint      `json:"categoryId" gorm:"index;not null"`
	BrandID            *uint     `json:"brandId" gorm:"index"`
	Description        string    `json:"description" gorm:"type:text"`
	CreatedAt          time.Time `json:"createdAt"`
	CriticalStockLevel int       `json:"criticalStockLevel" gorm:"not null;default:10"`
	CreatedBy          string    `json:"createdBy" gorm:"type:varchar(64)"`

	Category       Category        `json:"-" gorm:"foreignKey:CategoryID"`
	Brand          *Brand          `json:"-" gorm:"foreignKey:BrandID"`
	StockMovements []StockMovement `json:"-" gorm:"foreignKey:ProductID"`
}
