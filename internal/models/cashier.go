package models

type Cashier struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	FirstName string  `json:"firstName" gorm:"not null"`
	LastName  string  `json:"lastName" gorm:"not null"`
	FullName  string  `json:"fullName" gorm:"-"`
	Orders    []Order `json:"orders" gorm:"foreignKey:CashierID"`
}

// DisplayName derives the full name from the stored name columns.
// It is never persisted.
func (c *Cashier) DisplayName() string {
	return c.FirstName + " " + c.LastName
}
