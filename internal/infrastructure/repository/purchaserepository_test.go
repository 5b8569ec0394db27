package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bengkellab/bengkel/internal/domain/purchase"
)

func createTestPurchase(t *testing.T, database *gorm.DB, userID, productID uint, number string) *purchase.Purchase {
	t.Helper()

	item, err := purchase.NewItem(productID, 10, 300000)
	require.NoError(t, err)
	p, err := purchase.NewPurchase("PT Distributor Laptop", userID, []*purchase.Item{item}, "")
	require.NoError(t, err)
	require.NoError(t, p.SetPurchaseNumber(number))
	require.NoError(t, NewPurchaseRepository(database).Save(t.Context(), p))
	return p
}

func TestPurchaseRepository_SaveWithItems(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPurchaseRepository(database)
	ctx := t.Context()

	admin := createTestUser(t, database, "admin@bengkel.test", "administrator")
	prod := createTestProduct(t, database, "RM8GB", 450000, 2, 5)

	p := createTestPurchase(t, database, admin.ID(), prod.ID(), "PO202501150001")
	assert.NotZero(t, p.ID())

	found, err := repo.FindByID(ctx, p.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, purchase.StatusOrdered, found.Status())
	assert.Equal(t, float64(3000000), found.TotalAmount())
	assert.Nil(t, found.ReceivedAt())

	items, err := repo.FindItemsByPurchaseID(ctx, p.ID())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 10, items[0].Quantity())

	byNumber, err := repo.FindByPurchaseNumber(ctx, "PO202501150001")
	require.NoError(t, err)
	require.NotNil(t, byNumber)
	assert.Equal(t, p.ID(), byNumber.ID())
}

func TestPurchaseRepository_ReceiveRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPurchaseRepository(database)
	ctx := t.Context()

	admin := createTestUser(t, database, "admin@bengkel.test", "administrator")
	prod := createTestProduct(t, database, "RM8GB", 450000, 2, 5)

	p := createTestPurchase(t, database, admin.ID(), prod.ID(), "PO202501150001")
	require.NoError(t, p.MarkReceived())
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, purchase.StatusReceived, found.Status())
	require.NotNil(t, found.ReceivedAt())
	assert.Equal(t, p.ReceivedAt().UnixMilli(), found.ReceivedAt().UnixMilli())
}

func TestPurchaseRepository_ListFilters(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPurchaseRepository(database)
	ctx := t.Context()

	admin := createTestUser(t, database, "admin@bengkel.test", "administrator")
	prod := createTestProduct(t, database, "RM8GB", 450000, 2, 5)

	first := createTestPurchase(t, database, admin.ID(), prod.ID(), "PO202501150001")
	second := createTestPurchase(t, database, admin.ID(), prod.ID(), "PO202501150002")

	require.NoError(t, second.MarkCancelled())
	require.NoError(t, repo.Update(ctx, second))

	ordered, err := repo.List(ctx, purchase.Filter{Status: purchase.StatusOrdered, Page: 1, PageSize: 15})
	require.NoError(t, err)
	require.Len(t, ordered, 1)
	assert.Equal(t, first.ID(), ordered[0].ID())

	bySupplier, err := repo.List(ctx, purchase.Filter{Search: "Distributor", Page: 1, PageSize: 15})
	require.NoError(t, err)
	assert.Len(t, bySupplier, 2)

	total, err := repo.Count(ctx, purchase.Filter{Status: purchase.StatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestPurchaseRepository_NextSequence(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPurchaseRepository(database)
	ctx := t.Context()

	seq, err := repo.NextSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), seq)

	admin := createTestUser(t, database, "admin@bengkel.test", "administrator")
	prod := createTestProduct(t, database, "RM8GB", 450000, 2, 5)
	createTestPurchase(t, database, admin.ID(), prod.ID(), "PO202501150001")

	seq, err = repo.NextSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2), seq)
}
