package backup

import (
	"testing"

	"billmint-backend/internal/apperrors"
	"billmint-backend/internal/models"
	"billmint-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Invoice{},
	))

	svc := NewService(db,
		repository.NewCustomerRepository(db),
		repository.NewProductRepository(db),
		repository.NewInvoiceRepository(db),
	)
	return svc, db
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// seedRecords populates the database through the repositories, the same path
// API clients use.
func seedRecords(t *testing.T, db *gorm.DB) {
	t.Helper()

	customers := repository.NewCustomerRepository(db)
	products := repository.NewProductRepository(db)
	invoices := repository.NewInvoiceRepository(db)

	customer, err := customers.Create(repository.CustomerInput{
		Name:  "Rajesh Kumar",
		Phone: strPtr("9876543210"),
		GSTIN: strPtr("29ABCDE1234F1Z5"),
	})
	require.NoError(t, err)

	product, err := products.Create(repository.ProductInput{
		Name:    "Laptop Stand",
		HSNCode: strPtr("8473"),
		Price:   floatPtr(1500),
		GSTRate: floatPtr(18),
	})
	require.NoError(t, err)

	items := []models.InvoiceItem{{
		ProductID: product.ID,
		Name:      product.Name,
		HSNCode:   "8473",
		Quantity:  2,
		Unit:      "pcs",
		Price:     1500,
		GSTRate:   18,
		Amount:    3000,
	}}
	_, err = invoices.Create(repository.InvoiceInput{
		InvoiceNumber: "INV-001",
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Items:         &items,
		Subtotal:      3000,
		TaxableValue:  3000,
		CGST:          270,
		SGST:          270,
		Total:         3540,
	})
	require.NoError(t, err)

	emptyItems := []models.InvoiceItem{}
	_, err = invoices.Create(repository.InvoiceInput{
		InvoiceNumber: "INV-002",
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Items:         &emptyItems,
	})
	require.NoError(t, err)
}

func TestExportSnapshotShape(t *testing.T) {
	svc, db := newTestService(t)
	seedRecords(t, db)

	snapshot, err := svc.Export()
	require.NoError(t, err)
	require.Equal(t, models.SnapshotVersion, snapshot.Version)
	require.NotZero(t, snapshot.Timestamp)
	require.Len(t, snapshot.Data.Customers, 1)
	require.Len(t, snapshot.Data.Products, 1)
	require.Len(t, snapshot.Data.Invoices, 2)
	require.Len(t, snapshot.Data.Invoices[0].Items, 1)
}

func TestImportExportRoundTrip(t *testing.T) {
	svc, db := newTestService(t)
	seedRecords(t, db)

	before, err := svc.Export()
	require.NoError(t, err)

	stats, err := svc.Import(before)
	require.NoError(t, err)
	require.Equal(t, &models.RestoreStats{Customers: 1, Products: 1, Invoices: 2}, stats)

	after, err := svc.Export()
	require.NoError(t, err)
	// Everything but the export timestamp must be identical, ids and
	// record timestamps included.
	require.Equal(t, before.Version, after.Version)
	require.Equal(t, before.Data, after.Data)
}

func TestImportRejectsMissingCollections(t *testing.T) {
	svc, db := newTestService(t)
	seedRecords(t, db)

	before, err := svc.Export()
	require.NoError(t, err)

	_, err = svc.Import(&models.Snapshot{
		Version: models.SnapshotVersion,
		Data: models.SnapshotData{
			Customers: before.Data.Customers,
			Invoices:  before.Data.Invoices,
			// Products absent entirely.
		},
	})
	require.True(t, apperrors.IsValidation(err))

	// A malformed snapshot must leave the store completely untouched.
	after, err := svc.Export()
	require.NoError(t, err)
	require.Equal(t, before.Data, after.Data)
}

func TestImportAcceptsEmptyCollections(t *testing.T) {
	svc, db := newTestService(t)
	seedRecords(t, db)

	stats, err := svc.Import(&models.Snapshot{
		Data: models.SnapshotData{
			Customers: []models.Customer{},
			Products:  []models.Product{},
			Invoices:  []models.Invoice{},
		},
	})
	require.NoError(t, err)
	require.Equal(t, &models.RestoreStats{}, stats)

	after, err := svc.Export()
	require.NoError(t, err)
	require.Empty(t, after.Data.Customers)
	require.Empty(t, after.Data.Products)
	require.Empty(t, after.Data.Invoices)
}

func TestImportPreservesIDsAndTimestamps(t *testing.T) {
	svc, _ := newTestService(t)

	snapshot := &models.Snapshot{
		Data: models.SnapshotData{
			Customers: []models.Customer{{
				ID:        "customer-fixed-id",
				Name:      "Priya Sharma",
				CreatedAt: 111,
				UpdatedAt: 222,
			}},
			Products: []models.Product{},
			Invoices: []models.Invoice{},
		},
	}

	_, err := svc.Import(snapshot)
	require.NoError(t, err)

	after, err := svc.Export()
	require.NoError(t, err)
	require.Len(t, after.Data.Customers, 1)
	require.Equal(t, "customer-fixed-id", after.Data.Customers[0].ID)
	require.EqualValues(t, 111, after.Data.Customers[0].CreatedAt)
	require.EqualValues(t, 222, after.Data.Customers[0].UpdatedAt)
}

func TestImportRollsBackOnMidRestoreFailure(t *testing.T) {
	svc, db := newTestService(t)
	seedRecords(t, db)

	before, err := svc.Export()
	require.NoError(t, err)

	bad := &models.Snapshot{
		Data: models.SnapshotData{
			Customers: []models.Customer{
				{ID: "c1", Name: "First", CreatedAt: 1, UpdatedAt: 1},
				{ID: "c1", Name: "Duplicate id", CreatedAt: 2, UpdatedAt: 2},
			},
			Products: []models.Product{},
			Invoices: []models.Invoice{},
		},
	}

	_, err = svc.Import(bad)
	require.Error(t, err)
	require.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))

	// The clear and the first insert are rolled back with the failure; the
	// pre-import contents survive intact.
	after, err := svc.Export()
	require.NoError(t, err)
	require.Equal(t, before.Data, after.Data)
}

func TestExportFailsOnCorruptInvoiceItems(t *testing.T) {
	svc, db := newTestService(t)
	seedRecords(t, db)

	require.NoError(t, db.Exec("UPDATE invoices SET items = '{broken' WHERE invoice_number = 'INV-001'").Error)

	_, err := svc.Export()
	require.Error(t, err)
	require.Equal(t, apperrors.KindCorruptData, apperrors.KindOf(err))
}

func TestImportNilSnapshot(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Import(nil)
	require.True(t, apperrors.IsValidation(err))
}
