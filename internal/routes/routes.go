package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cornerstore/api/internal/handlers"
)

// Register wires every API route onto the engine. Shared between main
// and the handler tests so both exercise the same route table.
func Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	r.GET("/cashiers", handlers.ListCashiers)
	r.POST("/cashiers", handlers.CreateCashier)
	r.GET("/cashiers/:id", handlers.GetCashier)

	r.GET("/products", handlers.ListProducts)
	r.GET("/products/popular", handlers.PopularProducts)
	r.POST("/products", handlers.CreateProduct)
	r.PUT("/products/:id", handlers.UpdateProduct)

	r.GET("/orders", handlers.ListOrders)
	r.GET("/orders/:id", handlers.GetOrder)
	r.DELETE("/orders/:id", handlers.DeleteOrder)
	r.POST("/orders", handlers.CreateOrder)
	r.POST("/orders/:id/products", handlers.AddOrderProduct)
}
