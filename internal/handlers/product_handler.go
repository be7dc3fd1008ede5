package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cornerstore/api/internal/db"
	"github.com/cornerstore/api/internal/models"
)

type ProductRequest struct {
	ProductName string  `json:"productName" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Brand       string  `json:"brand" binding:"required"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
}

// ListProducts returns all products with their categories. When a
// search term is supplied, the result is narrowed to products whose
// name or category name contains the term, case-insensitively.
func ListProducts(c *gin.Context) {
	var products []models.Product

	query := db.DB.Preload("Category")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("LOWER(products.product_name) LIKE ? OR LOWER(categories.category_name) LIKE ?", pattern, pattern)
	}

	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// PopularProducts returns the five best-selling products, ranked by the
// total quantity sold across all orders.
func PopularProducts(c *gin.Context) {
	var products []models.Product

	err := db.DB.
		Select("products.*").
		Joins("JOIN order_products ON order_products.product_id = products.id").
		Group("products.id").
		Order("SUM(order_products.quantity) DESC").
		Limit(5).
		Preload("Category").
		Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

func CreateProduct(c *gin.Context) {
	var req ProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		ProductName: req.ProductName,
		Price:       req.Price,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
	}

	if err := db.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Preload("Category").First(&product, product.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product with category details"})
		return
	}

	c.Header("Location", fmt.Sprintf("/products/%d", product.ID))
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct overwrites the name, price, brand and category of an
// existing product. The id is never changed.
func UpdateProduct(c *gin.Context) {
	var req ProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product

	err := db.DB.First(&product, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product.ProductName = req.ProductName
	product.Price = req.Price
	product.Brand = req.Brand
	product.CategoryID = req.CategoryID

	if err := db.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
