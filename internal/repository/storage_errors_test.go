package repository

import (
	"errors"
	"testing"

	"billmint-backend/internal/apperrors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestCustomerListWrapsEngineFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM \"customers\"").WillReturnError(errors.New("disk I/O error"))

	_, err := NewCustomerRepository(db).List()
	require.Error(t, err)
	require.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.EqualError(t, appErr.Cause, "disk I/O error")
}

func TestInvoiceListWrapsEngineFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM \"invoices\"").WillReturnError(errors.New("database is locked"))

	_, err := NewInvoiceRepository(db).List(InvoiceListOptions{})
	require.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
}
