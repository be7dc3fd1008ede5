package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/cornerstore/api/internal/models"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// Seed loads the corner-store fixture: three cashiers, three categories,
// six products and four paid orders. It is a no-op when cashiers already
// exist, so it is safe to run at every startup.
func Seed(g *gorm.DB) error {

	var count int64
	if err := g.Model(&models.Cashier{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cashiers := []models.Cashier{
		{FirstName: "Amy", LastName: "Simpson"},
		{FirstName: "Derek", LastName: "Masters"},
		{FirstName: "Charlie", LastName: "Vernon"},
	}
	if err := g.Create(&cashiers).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{CategoryName: "Food"},
		{CategoryName: "Cleaning"},
		{CategoryName: "Home Improvement"},
	}
	if err := g.Create(&categories).Error; err != nil {
		return err
	}
	food, cleaning, homeImprovement := categories[0], categories[1], categories[2]

	products := []models.Product{
		{ProductName: "Tuna", Brand: "Bumble Bee", Price: 1.25, CategoryID: food.ID},
		{ProductName: "Canned Tomatoes", Brand: "Dole", Price: 0.99, CategoryID: food.ID},
		{ProductName: "Toilet Paper", Brand: "Scott", Price: 5.00, CategoryID: cleaning.ID},
		{ProductName: "Dishwashing Soap", Brand: "Dawn", Price: 3.75, CategoryID: cleaning.ID},
		{ProductName: "picture hanging kit", Brand: "Acme", Price: 8.75, CategoryID: homeImprovement.ID},
		{ProductName: "Milk 2%", Brand: "Dairy", Price: 1.99, CategoryID: food.ID},
	}
	if err := g.Create(&products).Error; err != nil {
		return err
	}
	tuna, tomatoes, tp := products[0], products[1], products[2]
	dishSoap, pictureKit, milk := products[3], products[4], products[5]

	amy, derek, charlie := cashiers[0], cashiers[1], cashiers[2]

	orders := []models.Order{
		{
			CashierID:  amy.ID,
			PaidOnDate: date(2023, time.July, 16),
			OrderProducts: []models.OrderProduct{
				{ProductID: tuna.ID, Quantity: 1},
				{ProductID: tp.ID, Quantity: 1},
				{ProductID: milk.ID, Quantity: 1},
			},
		},
		{
			CashierID:  derek.ID,
			PaidOnDate: date(2023, time.July, 18),
			OrderProducts: []models.OrderProduct{
				{ProductID: tuna.ID, Quantity: 5},
				{ProductID: milk.ID, Quantity: 1},
				{ProductID: pictureKit.ID, Quantity: 1},
				{ProductID: tomatoes.ID, Quantity: 1},
			},
		},
		{
			CashierID:  amy.ID,
			PaidOnDate: date(2023, time.July, 20),
			OrderProducts: []models.OrderProduct{
				{ProductID: tp.ID, Quantity: 1},
				{ProductID: dishSoap.ID, Quantity: 1},
				{ProductID: tomatoes.ID, Quantity: 1},
			},
		},
		{
			CashierID:  charlie.ID,
			PaidOnDate: date(2023, time.July, 13),
			OrderProducts: []models.OrderProduct{
				{ProductID: tomatoes.ID, Quantity: 1},
			},
		},
	}

	return g.Create(&orders).Error
}
