package models

type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductName string    `json:"productName" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Brand       string    `json:"brand" gorm:"not null"`
	CategoryID  uint      `json:"categoryId" gorm:"index;not null"`
	Category    *Category `json:"category,omitempty"`
}
