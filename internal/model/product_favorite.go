package model

// ProductFavorite marks a product as a favorite for one user. The
// composite unique index keeps concurrent toggles from producing
// duplicate rows for the same pair.
type ProductFavorite struct {
	ID        uint   `json:"productFavoriteId" gorm:"primarykey"`
	ProductID uint   `json:"productId" gorm:"uniqueIndex:idx_favorites_product_user;not null"`
	UserID    string `json:"userId" gorm:"type:varchar(64);uniqueIndex:idx_favorites_product_user;not null"`
}
