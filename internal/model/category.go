package model

// Category groups products. Name uniqueness is a convention, not a constraint.
type Category struct {
	ID   uint   `json:"categoryId" gorm:"primarykey"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
}

// Brand is an optional product attribute
type Brand struct {
	ID   uint   `json:"brandId" gorm:"primarykey"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
}
