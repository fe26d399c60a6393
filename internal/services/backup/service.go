package backup

import (
	"time"

	"billmint-backend/internal/apperrors"
	"billmint-backend/internal/models"
	"billmint-backend/internal/repository"

	"gorm.io/gorm"
)

// Service implements the full-database backup subsystem: Export assembles a
// versioned snapshot of every table, Import destructively replaces the
// current contents with a snapshot's.
type Service struct {
	db        *gorm.DB
	customers *repository.CustomerRepository
	products  *repository.ProductRepository
	invoices  *repository.InvoiceRepository
}

func NewService(
	db *gorm.DB,
	customers *repository.CustomerRepository,
	products *repository.ProductRepository,
	invoices *repository.InvoiceRepository,
) *Service {
	return &Service{
		db:        db,
		customers: customers,
		products:  products,
		invoices:  invoices,
	}
}

// Export reads all customers, products and invoices and wraps them into a
// snapshot. Any table read or invoice item decode failure aborts the export;
// a partially built snapshot is never returned.
func (s *Service) Export() (*models.Snapshot, error) {
	customers, err := s.customers.All()
	if err != nil {
		return nil, err
	}
	products, err := s.products.All()
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.All()
	if err != nil {
		return nil, err
	}

	return &models.Snapshot{
		Version:   models.SnapshotVersion,
		Timestamp: time.Now().UnixMilli(),
		Data: models.SnapshotData{
			Customers: customers,
			Products:  products,
			Invoices:  invoices,
		},
	}, nil
}

// Import validates the snapshot shape, then atomically replaces the database
// contents with it: invoices, products and customers are cleared in
// reverse-dependency order and re-inserted in forward-dependency order. Every
// row is a literal replay keeping its snapshot id and timestamps. Any failure
// rolls the whole transaction back, leaving the pre-import state intact.
func (s *Service) Import(snapshot *models.Snapshot) (*models.RestoreStats, error) {
	if snapshot == nil {
		return nil, apperrors.Validation("invalid backup format: missing data")
	}
	data := snapshot.Data
	if data.Customers == nil || data.Products == nil || data.Invoices == nil {
		return nil, apperrors.Validation(
			"invalid backup format: expected data.customers, data.products, data.invoices")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Clear in reverse-dependency order so invoices never dangle.
		if err := tx.Exec("DELETE FROM invoices").Error; err != nil {
			return apperrors.Storage("failed to clear invoices", err)
		}
		if err := tx.Exec("DELETE FROM products").Error; err != nil {
			return apperrors.Storage("failed to clear products", err)
		}
		if err := tx.Exec("DELETE FROM customers").Error; err != nil {
			return apperrors.Storage("failed to clear customers", err)
		}

		for i := range data.Customers {
			if err := tx.Create(&data.Customers[i]).Error; err != nil {
				return apperrors.Storage("failed to restore customer", err)
			}
		}
		for i := range data.Products {
			if err := tx.Create(&data.Products[i]).Error; err != nil {
				return apperrors.Storage("failed to restore product", err)
			}
		}
		for i := range data.Invoices {
			if err := tx.Create(&data.Invoices[i]).Error; err != nil {
				return apperrors.Storage("failed to restore invoice", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.RestoreStats{
		Customers: len(data.Customers),
		Products:  len(data.Products),
		Invoices:  len(data.Invoices),
	}, nil
}
