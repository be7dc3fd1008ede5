package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/api/internal/db"
	"github.com/cornerstore/api/internal/models"
)

// orderDateLayouts are the accepted formats for the orderDate filter.
var orderDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func parseOrderDate(value string) (time.Time, bool) {
	for _, layout := range orderDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func sameCalendarDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func orderQuery() *gorm.DB {
	return db.DB.
		Preload("Cashier").
		Preload("OrderProducts.Product.Category")
}

func fillOrder(order *models.Order) {
	order.Total = models.OrderTotal(order.OrderProducts)
	if order.Cashier != nil {
		order.Cashier.FullName = order.Cashier.DisplayName()
	}
}

func GetOrder(c *gin.Context) {
	var order models.Order

	err := orderQuery().First(&order, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fillOrder(&order)

	c.JSON(http.StatusOK, order)
}

// ListOrders returns all orders. When an orderDate query parameter
// parses as a date, the result is narrowed to orders paid on that
// calendar date; an unparsable value leaves the list unfiltered.
func ListOrders(c *gin.Context) {
	var orders []models.Order

	if err := orderQuery().Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if raw := c.Query("orderDate"); raw != "" {
		if wanted, ok := parseOrderDate(raw); ok {
			filtered := make([]models.Order, 0, len(orders))
			for _, order := range orders {
				if order.PaidOnDate != nil && sameCalendarDate(*order.PaidOnDate, wanted) {
					filtered = append(filtered, order)
				}
			}
			orders = filtered
		}
	}

	for i := range orders {
		fillOrder(&orders[i])
	}

	c.JSON(http.StatusOK, orders)
}

func DeleteOrder(c *gin.Context) {
	var order models.Order

	err := db.DB.First(&order, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateOrder persists an order together with any nested line items in
// one transaction, then re-reads the full shape so the total reflects
// the stored associations.
func CreateOrder(c *gin.Context) {
	var order models.Order

	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only foreign keys from the body are honored; attached entities
	// must not be upserted alongside the order.
	order.Cashier = nil
	for i := range order.OrderProducts {
		order.OrderProducts[i].Product = nil
		order.OrderProducts[i].Order = nil
	}

	if err := db.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var created models.Order
	if err := orderQuery().First(&created, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve order with associations"})
		return
	}

	fillOrder(&created)

	c.Header("Location", fmt.Sprintf("/orders/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// AddOrderProduct adds a line item to an existing order. The order id
// always comes from the path, overriding any value in the body.
func AddOrderProduct(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var item models.OrderProduct

	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.OrderID = uint(orderID)
	item.Product = nil
	item.Order = nil

	if err := db.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var created models.OrderProduct
	err = db.DB.
		Preload("Product").
		Preload("Order").
		Where("order_id = ? AND product_id = ?", item.OrderID, item.ProductID).
		First(&created).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve line item with associations"})
		return
	}

	c.Header("Location", fmt.Sprintf("/orders/%d/products", orderID))
	c.JSON(http.StatusCreated, created)
}
