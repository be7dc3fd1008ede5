package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/api/internal/db"
	"github.com/cornerstore/api/internal/models"
)

type CreateCashierRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// fillCashier computes the derived fullName and per-order totals after
// the associations have been loaded.
func fillCashier(cashier *models.Cashier) {
	cashier.FullName = cashier.DisplayName()
	for i := range cashier.Orders {
		cashier.Orders[i].Total = models.OrderTotal(cashier.Orders[i].OrderProducts)
	}
}

func ListCashiers(c *gin.Context) {
	var cashiers []models.Cashier

	err := db.DB.
		Preload("Orders.OrderProducts.Product").
		Find(&cashiers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for i := range cashiers {
		fillCashier(&cashiers[i])
	}

	c.JSON(http.StatusOK, cashiers)
}

func GetCashier(c *gin.Context) {
	var cashier models.Cashier

	err := db.DB.
		Preload("Orders.OrderProducts.Product").
		First(&cashier, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fillCashier(&cashier)

	c.JSON(http.StatusOK, cashier)
}

func CreateCashier(c *gin.Context) {
	var req CreateCashierRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cashier := models.Cashier{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := db.DB.Create(&cashier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fillCashier(&cashier)

	c.Header("Location", fmt.Sprintf("/cashiers/%d", cashier.ID))
	c.JSON(http.StatusCreated, cashier)
}
