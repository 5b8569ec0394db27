package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// sqlite ships with foreign keys off; the cascade tests need them.
	require.NoError(t, database.Exec("PRAGMA foreign_keys = ON").Error)

	err = database.AutoMigrate(
		&models.UserModel{},
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.ServiceModel{},
		&models.ServicePartModel{},
		&models.SaleModel{},
		&models.SaleItemModel{},
		&models.PurchaseModel{},
		&models.PurchaseItemModel{},
	)
	require.NoError(t, err)

	return database
}

func createTestCustomer(t *testing.T, database *gorm.DB, name, phone string) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(name, "", phone, "")
	require.NoError(t, err)
	require.NoError(t, NewCustomerRepository(database).Save(t.Context(), c))
	return c
}

func createTestProduct(t *testing.T, database *gorm.DB, code string, price float64, stock, minStock int) *product.Product {
	t.Helper()

	p, err := product.NewProduct(code, "Part "+code, "", product.CategoryLaptopPart, price, price*0.7, stock, minStock)
	require.NoError(t, err)
	require.NoError(t, NewProductRepository(database).Save(t.Context(), p))
	return p
}

func createTestUser(t *testing.T, database *gorm.DB, email string, role authorization.UserRole) *user.User {
	t.Helper()

	u, err := user.NewUser("Test "+string(role), email, "hashed-password", role)
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(database).Save(t.Context(), u))
	return u
}
