package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyndie1416/RetailPOS/internal/repository/memory"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/order"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/supplier"
)

type fixture struct {
	suppliers *memory.SupplierStore
	catalog   *memory.CatalogStore
	orders    *memory.OrderStore
	uc        *order.Usecase
}

func setup(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		suppliers: memory.NewSupplierStore(nil),
		catalog:   memory.NewCatalogStore(nil),
		orders:    memory.NewOrderStore(nil),
	}
	f.uc = order.New(f.suppliers, f.catalog, f.orders)
	return f
}

func (f *fixture) supplier(t *testing.T, name string) *supplier.Supplier {
	t.Helper()

	sp, err := f.suppliers.Upsert(context.Background(), supplier.UpsertInput{
		Name: name, Status: "active",
	})
	require.NoError(t, err)
	return sp
}

func (f *fixture) product(t *testing.T, name string, cost int64, stock, minStock int, supplierID *string) *catalog.Product {
	t.Helper()

	p, err := f.catalog.Upsert(context.Background(), catalog.UpsertInput{
		Name:              name,
		PriceCentavos:     cost * 2,
		CostPriceCentavos: cost,
		Stock:             stock,
		MinStock:          minStock,
		Unit:              "pc",
		SupplierID:        supplierID,
	})
	require.NoError(t, err)
	return p
}

func TestCreateForSupplier(t *testing.T) {
	f := setup(t)
	sp := f.supplier(t, "ABC Distributors")
	other := f.supplier(t, "XYZ Trading")
	ctx := context.Background()

	low := f.product(t, "Pancit Canton", 1200, 3, 5, &sp.ID)
	f.product(t, "Coca Cola 330ml", 2000, 50, 10, &sp.ID)  // well stocked
	f.product(t, "Tide Sachet", 3600, 1, 5, &other.ID)     // other supplier
	f.product(t, "Loose Candy", 100, 0, 2, nil)            // no supplier

	out, err := f.uc.CreateForSupplier(ctx, sp.ID)
	require.NoError(t, err)

	assert.Equal(t, sp.ID, out.SupplierID)
	assert.Equal(t, "ABC Distributors", out.SupplierName)
	assert.Equal(t, order.StatusPending, out.Status)
	require.Len(t, out.Items, 1)

	// 2x the minimum stock, priced at cost.
	item := out.Items[0]
	assert.Equal(t, low.ID, item.ProductID)
	assert.Equal(t, 10, item.Qty)
	assert.Equal(t, int64(1200), item.UnitCostCentavos)
	assert.Equal(t, int64(12000), item.TotalCostCentavos)
	assert.Equal(t, int64(12000), out.TotalCentavos)

	got, err := f.suppliers.FindByID(ctx, sp.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastOrder)

	hist, err := f.orders.All(ctx)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, out.ID, hist[0].ID)
}

func TestCreateForSupplier_NothingToOrder(t *testing.T) {
	f := setup(t)
	sp := f.supplier(t, "ABC Distributors")
	f.product(t, "Coca Cola 330ml", 2000, 50, 10, &sp.ID)
	ctx := context.Background()

	_, err := f.uc.CreateForSupplier(ctx, sp.ID)
	require.ErrorIs(t, err, order.ErrNothingToOrder)

	got, _ := f.suppliers.FindByID(ctx, sp.ID)
	assert.Nil(t, got.LastOrder)

	hist, _ := f.orders.All(ctx)
	assert.Empty(t, hist)
}

func TestCreateForSupplier_UnknownSupplier(t *testing.T) {
	f := setup(t)

	_, err := f.uc.CreateForSupplier(context.Background(), "missing")
	require.ErrorIs(t, err, order.ErrSupplierNotFound)
}

func TestSetStatus(t *testing.T) {
	f := setup(t)
	sp := f.supplier(t, "ABC Distributors")
	f.product(t, "Pancit Canton", 1200, 3, 5, &sp.ID)
	ctx := context.Background()

	out, err := f.uc.CreateForSupplier(ctx, sp.ID)
	require.NoError(t, err)

	got, err := f.uc.SetStatus(ctx, out.ID, order.StatusReceived)
	require.NoError(t, err)
	assert.Equal(t, order.StatusReceived, got.Status)

	_, err = f.uc.SetStatus(ctx, out.ID, "shipped")
	require.ErrorIs(t, err, order.ErrInvalidInput)

	_, err = f.uc.SetStatus(ctx, "missing", order.StatusCancelled)
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestList_FilterBySupplier(t *testing.T) {
	f := setup(t)
	a := f.supplier(t, "ABC Distributors")
	b := f.supplier(t, "XYZ Trading")
	f.product(t, "Pancit Canton", 1200, 3, 5, &a.ID)
	f.product(t, "Tide Sachet", 3600, 1, 5, &b.ID)
	ctx := context.Background()

	_, err := f.uc.CreateForSupplier(ctx, a.ID)
	require.NoError(t, err)
	ob, err := f.uc.CreateForSupplier(ctx, b.ID)
	require.NoError(t, err)

	out, err := f.uc.List(ctx, order.ListQuery{SupplierID: b.ID})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, ob.ID, out[0].ID)

	out, err = f.uc.List(ctx, order.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
