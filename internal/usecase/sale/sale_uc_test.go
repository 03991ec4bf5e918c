package sale_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyndie1416/RetailPOS/internal/repository/memory"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/ledger"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/sale"
)

type fixture struct {
	catalog *memory.CatalogStore
	ledger  *memory.LedgerStore
	sales   *memory.SaleStore
	uc      *sale.Usecase
}

func setup(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		catalog: memory.NewCatalogStore(nil),
		ledger:  memory.NewLedgerStore(nil),
		sales:   memory.NewSaleStore(nil),
	}
	f.uc = sale.New(f.catalog, f.ledger, f.sales)
	return f
}

func (f *fixture) product(t *testing.T, name string, priceCentavos int64, stock int) *catalog.Product {
	t.Helper()

	p, err := f.catalog.Upsert(context.Background(), catalog.UpsertInput{
		Name:          name,
		PriceCentavos: priceCentavos,
		Stock:         stock,
		Unit:          "pc",
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) customer(t *testing.T) *ledger.Customer {
	t.Helper()

	c, err := f.ledger.Upsert(context.Background(), ledger.UpsertInput{
		Name:  "Juan Dela Cruz",
		Phone: "+63 912 345 6789",
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) stockOf(t *testing.T, id string) int {
	t.Helper()
	p, err := f.catalog.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p.Stock
}

func TestAddLine(t *testing.T) {
	f := setup(t)
	p := f.product(t, "Coca Cola 330ml", 2500, 5)
	ctx := context.Background()
	cart := &sale.Cart{}

	t.Run("snapshot and merge", func(t *testing.T) {
		require.NoError(t, f.uc.AddLine(ctx, cart, p.ID, 2))
		require.NoError(t, f.uc.AddLine(ctx, cart, p.ID, 1))

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 3, cart.Lines[0].Qty)
		assert.Equal(t, int64(2500), cart.Lines[0].UnitPriceCentavos)
	})

	t.Run("reserved quantity counts against available stock", func(t *testing.T) {
		// 3 already in the cart, stock 5: only 2 more may be added.
		err := f.uc.AddLine(ctx, cart, p.ID, 3)
		require.ErrorIs(t, err, sale.ErrOutOfStock)

		require.NoError(t, f.uc.AddLine(ctx, cart, p.ID, 2))
	})

	t.Run("unknown product", func(t *testing.T) {
		err := f.uc.AddLine(ctx, cart, "missing", 1)
		require.ErrorIs(t, err, sale.ErrProductNotFound)
	})

	t.Run("non-positive qty", func(t *testing.T) {
		err := f.uc.AddLine(ctx, cart, p.ID, 0)
		require.ErrorIs(t, err, sale.ErrInvalidInput)
	})

	t.Run("price edits do not touch an open cart", func(t *testing.T) {
		_, err := f.catalog.Upsert(ctx, catalog.UpsertInput{
			ID:            &p.ID,
			Name:          p.Name,
			PriceCentavos: 9900,
			Stock:         5,
			Unit:          "pc",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2500), cart.Lines[0].UnitPriceCentavos)
	})
}

func TestCart(t *testing.T) {
	cart := &sale.Cart{Lines: []sale.Line{
		{ProductID: "a", Qty: 2, UnitPriceCentavos: 2500},
		{ProductID: "b", Qty: 1, UnitPriceCentavos: 1500},
	}}

	assert.Equal(t, int64(6500), cart.TotalCentavos())

	cart.Remove("a")
	require.Len(t, cart.Lines, 1)
	cart.Remove("missing") // no-op
	require.Len(t, cart.Lines, 1)

	cart.Clear()
	assert.True(t, cart.Empty())
}

func TestCommit_Cash(t *testing.T) {
	f := setup(t)
	p := f.product(t, "Coca Cola 330ml", 2500, 50)
	ctx := context.Background()

	cart := &sale.Cart{}
	require.NoError(t, f.uc.AddLine(ctx, cart, p.ID, 2))

	out, err := f.uc.Commit(ctx, cart, sale.CommitInput{
		Method:   sale.MethodCash,
		Operator: "cashier",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(5000), out.TotalCentavos)
	assert.Equal(t, sale.MethodCash, out.Method)
	assert.Equal(t, "cashier", out.Operator)
	require.Len(t, out.Lines, 1)
	assert.Equal(t, int64(5000), out.Lines[0].LineTotalCentavos)

	assert.Equal(t, 48, f.stockOf(t, p.ID))
	assert.True(t, cart.Empty())

	hist, err := f.sales.All(ctx)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, out.ID, hist[0].ID)
}

func TestCommit_EmptyCart(t *testing.T) {
	f := setup(t)
	f.product(t, "Coca Cola 330ml", 2500, 50)

	_, err := f.uc.Commit(context.Background(), &sale.Cart{}, sale.CommitInput{
		Method:   sale.MethodCash,
		Operator: "cashier",
	})
	require.ErrorIs(t, err, sale.ErrEmptyCart)

	hist, _ := f.sales.All(context.Background())
	assert.Empty(t, hist)
}

func TestCommit_Credit(t *testing.T) {
	f := setup(t)
	p := f.product(t, "Coca Cola 330ml", 2500, 50)
	c := f.customer(t)
	ctx := context.Background()

	cart := &sale.Cart{}
	require.NoError(t, f.uc.AddLine(ctx, cart, p.ID, 3))

	out, err := f.uc.Commit(ctx, cart, sale.CommitInput{
		Method:     sale.MethodCredit,
		Operator:   "cashier",
		CustomerID: &c.ID,
	})
	require.NoError(t, err)

	got, err := f.ledger.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), got.UtangCentavos)
	require.Len(t, got.UtangHistory, 1)
	assert.Equal(t, out.TotalCentavos, got.UtangHistory[0].AmountCentavos)
	assert.Equal(t, 47, f.stockOf(t, p.ID))
}

func TestCommit_CreditNeedsCustomer(t *testing.T) {
	f := setup(t)
	p := f.product(t, "Coca Cola 330ml", 2500, 50)
	ctx := context.Background()

	cart := &sale.Cart{}
	require.NoError(t, f.uc.AddLine(ctx, cart, p.ID, 1))

	_, err := f.uc.Commit(ctx, cart, sale.CommitInput{
		Method:   sale.MethodCredit,
		Operator: "cashier",
	})
	require.ErrorIs(t, err, sale.ErrInvalidInput)
	assert.Equal(t, 50, f.stockOf(t, p.ID))
}

// A credit sale of only zero-priced goods has nothing to charge; the commit
// must fail and leave stock and the ledger untouched.
func TestCommit_ZeroTotalCredit(t *testing.T) {
	f := setup(t)
	p := f.product(t, "Free Sample Sachet", 0, 50)
	c := f.customer(t)
	ctx := context.Background()

	cart := &sale.Cart{}
	require.NoError(t, f.uc.AddLine(ctx, cart, p.ID, 2))

	_, err := f.uc.Commit(ctx, cart, sale.CommitInput{
		Method:     sale.MethodCredit,
		Operator:   "cashier",
		CustomerID: &c.ID,
	})
	require.ErrorIs(t, err, sale.ErrCommitAborted)

	assert.Equal(t, 50, f.stockOf(t, p.ID))

	got, _ := f.ledger.FindByID(ctx, c.ID)
	assert.Equal(t, int64(0), got.UtangCentavos)
	assert.Empty(t, got.UtangHistory)

	hist, _ := f.sales.All(ctx)
	assert.Empty(t, hist)
}

func TestCommit_InvalidMethod(t *testing.T) {
	f := setup(t)
	p := f.product(t, "Coca Cola 330ml", 2500, 50)
	ctx := context.Background()

	cart := &sale.Cart{}
	require.NoError(t, f.uc.AddLine(ctx, cart, p.ID, 1))

	_, err := f.uc.Commit(ctx, cart, sale.CommitInput{Method: "gcash", Operator: "cashier"})
	require.ErrorIs(t, err, sale.ErrInvalidMethod)
}

// Stock moved between AddLine and Commit: the whole commit fails and nothing
// mutates: stock, ledger, and history stay exactly as they were.
func TestCommit_StockChanged(t *testing.T) {
	f := setup(t)
	p := f.product(t, "Coca Cola 330ml", 2500, 5)
	other := f.product(t, "Pepsi 330ml", 2300, 10)
	c := f.customer(t)
	ctx := context.Background()

	cart := &sale.Cart{}
	require.NoError(t, f.uc.AddLine(ctx, cart, other.ID, 2))
	require.NoError(t, f.uc.AddLine(ctx, cart, p.ID, 4))

	// A competing sale drains the shelf.
	require.NoError(t, f.catalog.DecrementStock(ctx, p.ID, 3))

	_, err := f.uc.Commit(ctx, cart, sale.CommitInput{
		Method:     sale.MethodCredit,
		Operator:   "cashier",
		CustomerID: &c.ID,
	})
	require.ErrorIs(t, err, sale.ErrStockChanged)
	assert.Contains(t, err.Error(), p.ID)

	assert.Equal(t, 2, f.stockOf(t, p.ID))
	assert.Equal(t, 10, f.stockOf(t, other.ID))

	got, _ := f.ledger.FindByID(ctx, c.ID)
	assert.Equal(t, int64(0), got.UtangCentavos)
	assert.Empty(t, got.UtangHistory)

	hist, _ := f.sales.All(ctx)
	assert.Empty(t, hist)

	// The cart survives a failed commit.
	assert.Len(t, cart.Lines, 2)
}

// flakyCatalog fails DecrementStock for one product to force the rollback
// path a concurrent sale would otherwise have to race for.
type flakyCatalog struct {
	sale.Catalog
	failID string
}

func (f *flakyCatalog) DecrementStock(ctx context.Context, id string, qty int) error {
	if id == f.failID {
		return errors.New("carton fell behind the shelf")
	}
	return f.Catalog.DecrementStock(ctx, id, qty)
}

func TestCommit_RollbackOnMidwayFailure(t *testing.T) {
	f := setup(t)
	a := f.product(t, "Coca Cola 330ml", 2500, 50)
	b := f.product(t, "Pepsi 330ml", 2300, 10)
	ctx := context.Background()

	uc := sale.New(&flakyCatalog{Catalog: f.catalog, failID: b.ID}, f.ledger, f.sales)

	cart := &sale.Cart{}
	require.NoError(t, uc.AddLine(ctx, cart, a.ID, 2))
	require.NoError(t, uc.AddLine(ctx, cart, b.ID, 2))

	_, err := uc.Commit(ctx, cart, sale.CommitInput{
		Method:   sale.MethodCash,
		Operator: "cashier",
	})
	require.ErrorIs(t, err, sale.ErrCommitAborted)

	// The decrement applied to A before B failed has been undone.
	assert.Equal(t, 50, f.stockOf(t, a.ID))
	assert.Equal(t, 10, f.stockOf(t, b.ID))

	hist, _ := f.sales.All(ctx)
	assert.Empty(t, hist)
}
