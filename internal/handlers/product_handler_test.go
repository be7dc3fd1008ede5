package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cornerstore/api/internal/handlers"
	"github.com/cornerstore/api/internal/models"
)

func TestListProductsHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	list := func(path string) []models.Product {
		recorder := performRequest(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var products []models.Product
		decode(t, recorder, &products)
		return products
	}

	t.Run("Returns all products with categories", func(t *testing.T) {
		products := list("/products")

		assert.Len(t, products, 6)
		for _, product := range products {
			assert.NotNil(t, product.Category)
			assert.NotEmpty(t, product.Category.CategoryName)
		}
	})

	t.Run("Matches category name case-insensitively", func(t *testing.T) {
		assert.Len(t, list("/products?search=clean"), 2)
	})

	t.Run("Matches product name substrings", func(t *testing.T) {
		assert.Len(t, list("/products?search=t"), 4)
		assert.Len(t, list("/products?search=v"), 1)
	})

	t.Run("Returns empty list when nothing matches", func(t *testing.T) {
		assert.Len(t, list("/products?search=zzz"), 0)
	})
}

func TestPopularProductsHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := performRequest(router, http.MethodGet, "/products/popular", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var products []models.Product
	decode(t, recorder, &products)

	// Tuna leads with six units sold across the seeded orders.
	assert.Len(t, products, 5)
	assert.Equal(t, "Tuna", products[0].ProductName)
}

func TestCreateProductHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("Successfully creates a product", func(t *testing.T) {
		reqBody := handlers.ProductRequest{
			ProductName: "Test",
			Price:       4.11,
			Brand:       "Test",
			CategoryID:  2,
		}
		recorder := performRequest(router, http.MethodPost, "/products", reqBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, "/products/7", recorder.Header().Get("Location"))

		var created models.Product
		decode(t, recorder, &created)

		assert.Equal(t, uint(7), created.ID)
		assert.Equal(t, "Test", created.ProductName)
		assert.InDelta(t, 4.11, created.Price, 0.001)
		assert.NotNil(t, created.Category)
		assert.Equal(t, "Cleaning", created.Category.CategoryName)
	})

	t.Run("Returns 400 when productName is missing", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"price":      1.00,
			"brand":      "Test",
			"categoryId": 1,
		}
		recorder := performRequest(router, http.MethodPost, "/products", reqBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response map[string]string
		decode(t, recorder, &response)
		assert.Contains(t, response["error"], "ProductName")
	})
}

func TestUpdateProductHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Product 7 is created on top of the six seeded rows.
	createBody := handlers.ProductRequest{
		ProductName: "Test",
		Price:       4.11,
		Brand:       "Test",
		CategoryID:  2,
	}
	recorder := performRequest(router, http.MethodPost, "/products", createBody)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	t.Run("Overwrites the product fields", func(t *testing.T) {
		updateBody := handlers.ProductRequest{
			ProductName: "Testing",
			Price:       4.22,
			Brand:       "Test",
			CategoryID:  2,
		}
		recorder := performRequest(router, http.MethodPut, "/products/7", updateBody)
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		listRecorder := performRequest(router, http.MethodGet, "/products", nil)
		assert.Equal(t, http.StatusOK, listRecorder.Code)

		var products []models.Product
		decode(t, listRecorder, &products)

		var updated models.Product
		for _, product := range products {
			if product.ID == 7 {
				updated = product
			}
		}
		assert.Equal(t, "Testing", updated.ProductName)
		assert.InDelta(t, 4.22, updated.Price, 0.001)
		assert.Equal(t, "Test", updated.Brand)
		assert.Equal(t, uint(2), updated.CategoryID)
	})

	t.Run("Returns 404 for unknown product", func(t *testing.T) {
		updateBody := handlers.ProductRequest{
			ProductName: "Ghost",
			Price:       1.00,
			Brand:       "None",
			CategoryID:  1,
		}
		recorder := performRequest(router, http.MethodPut, "/products/999", updateBody)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
