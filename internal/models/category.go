package models

type Category struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	CategoryName string `json:"categoryName" gorm:"not null"`
}
