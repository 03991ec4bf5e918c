package snapshot

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyndie1416/RetailPOS/internal/repository/memory"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/auth"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/ledger"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/order"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/sale"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/settings"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/supplier"
)

func newService() *Service {
	return &Service{
		Catalog:   memory.NewCatalogStore(nil),
		Ledger:    memory.NewLedgerStore(nil),
		Sales:     memory.NewSaleStore(nil),
		Suppliers: memory.NewSupplierStore(nil),
		Orders:    memory.NewOrderStore(nil),
		Users:     memory.NewUserStore(nil),
		Settings:  memory.NewSettingsStore(nil),
	}
}

func populate(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()

	p, err := svc.Catalog.Upsert(ctx, catalog.UpsertInput{
		Name: "Coca Cola 330ml", Category: "beverages",
		PriceCentavos: 2500, CostPriceCentavos: 2000, Stock: 50,
		Unit: "bottle", MinStock: 10,
	})
	require.NoError(t, err)
	_, err = svc.Catalog.IncrementStock(ctx, p.ID, 12, "owner")
	require.NoError(t, err)

	c, err := svc.Ledger.Upsert(ctx, ledger.UpsertInput{
		Name: "Juan Dela Cruz", Phone: "+63 912 345 6789", CreditLimitCentavos: 50000,
	})
	require.NoError(t, err)
	_, err = svc.Ledger.AddCharge(ctx, c.ID, 15000, "groceries")
	require.NoError(t, err)
	_, err = svc.Ledger.RecordPayment(ctx, c.ID, 5000, "partial")
	require.NoError(t, err)

	uc := sale.New(svc.Catalog, svc.Ledger, svc.Sales)
	cart := &sale.Cart{}
	require.NoError(t, uc.AddLine(ctx, cart, p.ID, 2))
	_, err = uc.Commit(ctx, cart, sale.CommitInput{Method: sale.MethodCash, Operator: "cashier"})
	require.NoError(t, err)

	sp, err := svc.Suppliers.Upsert(ctx, supplier.UpsertInput{
		Name: "ABC Distributors", PaymentTerms: "Net 30", Status: "active",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Orders.Append(ctx, &order.Order{
		ID: "o1", SupplierID: sp.ID, SupplierName: sp.Name,
		Items: []order.Item{{
			ProductID: p.ID, Name: p.Name, Qty: 20,
			UnitCostCentavos: 2000, TotalCostCentavos: 40000,
		}},
		TotalCentavos: 40000,
		Status:        order.StatusPending,
	}))

	users := auth.NewUserUsecase(svc.Users)
	_, err = users.Upsert(ctx, auth.UpsertInput{
		Username: "owner", Password: "owner123", Name: "Store Owner", Role: auth.RoleOwner,
	})
	require.NoError(t, err)

	_, err = svc.Settings.Update(ctx, settings.Settings{
		StoreName: "Sari-Sari Store", StorePhone: "+63 912 345 6789",
	})
	require.NoError(t, err)
}

// Export → save → load → import into fresh stores must reproduce the exact
// same data set.
func TestSnapshot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newService()
	populate(t, src)

	exported, err := src.Export(ctx)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "retailpos.json")
	files := NewFileStore(path)
	require.NoError(t, files.Save(exported))

	loaded, err := files.Load()
	require.NoError(t, err)

	dst := newService()
	require.NoError(t, dst.Import(ctx, loaded))

	reexported, err := dst.Export(ctx)
	require.NoError(t, err)

	// Compare the serialized forms: identical data sets, byte for byte.
	want, err := json.Marshal(exported)
	require.NoError(t, err)
	got, err := json.Marshal(reexported)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestSnapshot_ImportReplaces(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	populate(t, svc)

	require.NoError(t, svc.Import(ctx, &Snapshot{}))

	snap, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Customers)
	assert.Empty(t, snap.Sales)
	assert.Empty(t, snap.Suppliers)
	assert.Empty(t, snap.Orders)
	assert.Empty(t, snap.Users)
}

func TestFileStore_MissingFile(t *testing.T) {
	files := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	_, err := files.Load()
	require.ErrorIs(t, err, ErrNoSnapshot)
}
