package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "billmint-backend/internal/handlers"
	"billmint-backend/internal/repository"
	"billmint-backend/internal/services/backup"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	backupService := backup.NewService(db, customerRepo, productRepo, invoiceRepo)

	customerHandler := handler.NewCustomerHandler(customerRepo)
	productHandler := handler.NewProductHandler(productRepo)
	invoiceHandler := handler.NewInvoiceHandler(invoiceRepo)
	backupHandler := handler.NewBackupHandler(backupService)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "BillMint API is running",
			"timestamp": time.Now().UnixMilli(),
		})
	})

	api := r.Group("/api")

	customers := api.Group("/customers")
	{
		customers.GET("", customerHandler.List)
		customers.POST("", customerHandler.Create)
		customers.GET("/:id", customerHandler.Get)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.GET("/:id", productHandler.Get)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	api.GET("/backup", backupHandler.Download)
	api.POST("/backup", backupHandler.Restore)
}
