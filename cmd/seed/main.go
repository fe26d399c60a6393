package main

import (
	"billmint-backend/internal/config"
	"billmint-backend/internal/models"
	"billmint-backend/internal/repository"
	"billmint-backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// Seeds the database with sample data for manual testing.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	db, err := storage.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer storage.Close(db)

	if err := storage.Migrate(db,
		&models.Customer{},
		&models.Product{},
		&models.Invoice{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate schema")
	}

	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	customers := []repository.CustomerInput{
		{
			Name:    "Rajesh Kumar",
			Phone:   strPtr("9876543210"),
			Email:   strPtr("rajesh@example.com"),
			Address: strPtr("123 MG Road, Bangalore, Karnataka 560001"),
			GSTIN:   strPtr("29ABCDE1234F1Z5"),
		},
		{
			Name:    "Priya Sharma",
			Phone:   strPtr("9876543211"),
			Email:   strPtr("priya@example.com"),
			Address: strPtr("456 Park Street, Mumbai, Maharashtra 400001"),
			GSTIN:   strPtr("27ABCDE5678G1Z5"),
		},
		{
			Name:    "Amit Patel",
			Phone:   strPtr("9876543212"),
			Address: strPtr("789 Station Road, Delhi 110001"),
		},
	}

	var created []*models.Customer
	for _, in := range customers {
		c, err := customerRepo.Create(in)
		if err != nil {
			logrus.WithError(err).Fatal("failed to seed customer")
		}
		created = append(created, c)
	}
	logrus.WithField("count", len(created)).Info("seeded customers")

	products := []repository.ProductInput{
		{
			Name:        "Laptop Stand",
			Description: strPtr("Adjustable aluminum laptop stand"),
			HSNCode:     strPtr("8473"),
			Price:       floatPtr(1500),
			GSTRate:     floatPtr(18),
		},
		{
			Name:        "Wireless Mouse",
			Description: strPtr("2.4GHz wireless optical mouse"),
			HSNCode:     strPtr("8471"),
			Price:       floatPtr(450),
			GSTRate:     floatPtr(18),
		},
	}

	var catalog []*models.Product
	for _, in := range products {
		p, err := productRepo.Create(in)
		if err != nil {
			logrus.WithError(err).Fatal("failed to seed product")
		}
		catalog = append(catalog, p)
	}
	logrus.WithField("count", len(catalog)).Info("seeded products")

	items := []models.InvoiceItem{
		{
			ProductID: catalog[0].ID,
			Name:      catalog[0].Name,
			HSNCode:   "8473",
			Quantity:  2,
			Unit:      catalog[0].Unit,
			Price:     catalog[0].Price,
			GSTRate:   catalog[0].GSTRate,
			Amount:    3000,
		},
		{
			ProductID: catalog[1].ID,
			Name:      catalog[1].Name,
			HSNCode:   "8471",
			Quantity:  1,
			Unit:      catalog[1].Unit,
			Price:     catalog[1].Price,
			GSTRate:   catalog[1].GSTRate,
			Amount:    450,
		},
	}

	_, err = invoiceRepo.Create(repository.InvoiceInput{
		InvoiceNumber:   "INV-2024-001",
		CustomerID:      created[0].ID,
		CustomerName:    created[0].Name,
		CustomerPhone:   created[0].Phone,
		CustomerAddress: created[0].Address,
		CustomerGSTIN:   created[0].GSTIN,
		Items:           &items,
		Subtotal:        3450,
		TaxableValue:    3450,
		CGST:            310.5,
		SGST:            310.5,
		Total:           4071,
		Notes:           strPtr("Payment due within 15 days"),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to seed invoice")
	}
	logrus.Info("seeded sample invoice")
}
