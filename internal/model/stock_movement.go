package model

import (
	"time"
)

// Movement type values accepted by the stock ledger
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// StockMovement is a single append-only ledger entry. The referenced
// product's quantity is adjusted atomically when the movement is recorded.
type StockMovement struct {
	ID           uint      `json:"movementId" gorm:"primarykey"`
	ProductID    uint      `json:"productId" gorm:"index;not null"`
	MovementType string    `json:"movementType" gorm:"type:varchar(8);not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	MovementDate time.Time `json:"movementDate"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
