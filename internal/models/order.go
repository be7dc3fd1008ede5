package models

import "time"

type Order struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	CashierID  uint       `json:"cashierId" gorm:"index;not null"`
	Cashier    *Cashier   `json:"cashier,omitempty"`
	PaidOnDate *time.Time `json:"paidOnDate"`

	// Total is recomputed from line items on every read, never stored.
	Total float64 `json:"total" gorm:"-"`

	OrderProducts []OrderProduct `json:"orderProducts" gorm:"foreignKey:OrderID"`
}

// OrderProduct is one line item on an order. A product appears at most
// once per order, enforced by the composite primary key.
type OrderProduct struct {
	OrderID   uint     `json:"orderId" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint     `json:"productId" gorm:"primaryKey;autoIncrement:false"`
	Quantity  int      `json:"quantity" gorm:"not null"`
	Product   *Product `json:"product,omitempty"`
	Order     *Order   `json:"order,omitempty"`
}

// OrderTotal sums quantity times product price over the given line
// items. Line items without a resolved product contribute nothing.
func OrderTotal(items []OrderProduct) float64 {
	var total float64

	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total += float64(item.Quantity) * item.Product.Price
	}

	return total
}
