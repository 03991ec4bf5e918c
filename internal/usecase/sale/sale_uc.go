package sale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/ledger"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("sale not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("out of stock")
	ErrEmptyCart       = errors.New("empty cart")
	ErrStockChanged    = errors.New("stock changed since cart was built")
	ErrCommitAborted   = errors.New("commit aborted")
	ErrInvalidMethod   = errors.New("invalid payment method")
)

// Catalog is the slice of the catalog store the engine needs. The memory
// catalog store satisfies it directly.
type Catalog interface {
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
	DecrementStock(ctx context.Context, id string, qty int) error
	RestoreStock(ctx context.Context, id string, qty int) error
}

// Ledger posts the charge for a credit sale.
type Ledger interface {
	AddCharge(ctx context.Context, customerID string, amountCentavos int64, note string) (*ledger.Entry, error)
}

// Store is the append-only sales history.
type Store interface {
	Append(ctx context.Context, s *Sale) error
	List(ctx context.Context, q ListQuery) ([]Sale, error)
	All(ctx context.Context) ([]Sale, error)
	GetByID(ctx context.Context, id string) (*Sale, error)
}

type Usecase struct {
	catalog Catalog
	ledger  Ledger
	store   Store
	now     func() time.Time
}

func New(cat Catalog, led Ledger, store Store) *Usecase {
	return &Usecase{catalog: cat, ledger: led, store: store, now: time.Now}
}

// AddLine reserves qty of a product in the cart. The check is against
// available stock: live stock minus what this cart already holds, so one cart
// cannot double-sell the same units. Lines for the same product merge.
func (u *Usecase) AddLine(ctx context.Context, cart *Cart, productID string, qty int) error {
	if cart == nil || productID == "" {
		return ErrInvalidInput
	}
	if qty <= 0 {
		return fmt.Errorf("%w: qty=%d", ErrInvalidInput, qty)
	}

	p, err := u.catalog.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return err
	}

	reserved := cart.QtyOf(productID)
	if reserved+qty > p.Stock {
		return fmt.Errorf("%w: product=%s available=%d requested=%d",
			ErrOutOfStock, productID, p.Stock-reserved, qty)
	}

	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines[i].Qty += qty
			return nil
		}
	}
	cart.Lines = append(cart.Lines, Line{
		ProductID:         p.ID,
		Name:              p.Name,
		Qty:               qty,
		UnitPriceCentavos: p.PriceCentavos,
	})
	return nil
}

// Commit turns the cart into a permanent Sale and applies its stock and
// ledger effects, all-or-nothing. On success the cart is cleared.
func (u *Usecase) Commit(ctx context.Context, cart *Cart, in CommitInput) (*Sale, error) {
	if cart == nil {
		return nil, ErrInvalidInput
	}
	if cart.Empty() {
		return nil, ErrEmptyCart
	}

	switch in.Method {
	case MethodCash, MethodCredit, MethodOther:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, in.Method)
	}
	if in.Method == MethodCredit && (in.CustomerID == nil || *in.CustomerID == "") {
		return nil, fmt.Errorf("%w: credit sale requires a customer", ErrInvalidInput)
	}

	// 1) Re-validate every line against live stock. Stock may have moved
	// since the lines were added; any mismatch fails the whole commit before
	// anything mutates.
	for _, l := range cart.Lines {
		p, err := u.catalog.FindByID(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return nil, fmt.Errorf("%w: product=%s no longer exists", ErrStockChanged, l.ProductID)
			}
			return nil, err
		}
		if p.Stock < l.Qty {
			return nil, fmt.Errorf("%w: product=%s available=%d requested=%d",
				ErrStockChanged, l.ProductID, p.Stock, l.Qty)
		}
	}

	// 2) Totals come from the cart's price snapshots, never from the caller
	// and never re-read from the catalog.
	lines := make([]SaleLine, 0, len(cart.Lines))
	var total int64
	for _, l := range cart.Lines {
		lt := l.UnitPriceCentavos * int64(l.Qty)
		total += lt
		lines = append(lines, SaleLine{
			ProductID:         l.ProductID,
			Name:              l.Name,
			Qty:               l.Qty,
			UnitPriceCentavos: l.UnitPriceCentavos,
			LineTotalCentavos: lt,
		})
	}

	// 3) Apply stock decrements. A failure mid-way (a concurrent sale can
	// still win a race between validation and here) rolls back every
	// decrement already applied for this commit.
	applied := make([]Line, 0, len(cart.Lines))
	rollback := func() {
		for _, l := range applied {
			_ = u.catalog.RestoreStock(ctx, l.ProductID, l.Qty)
		}
	}
	for _, l := range cart.Lines {
		if err := u.catalog.DecrementStock(ctx, l.ProductID, l.Qty); err != nil {
			rollback()
			return nil, fmt.Errorf("%w: product=%s: %v", ErrCommitAborted, l.ProductID, err)
		}
		applied = append(applied, l)
	}

	s := &Sale{
		ID:            uuid.NewString(),
		At:            u.now(),
		Lines:         lines,
		TotalCentavos: total,
		Method:        in.Method,
		Operator:      in.Operator,
		CustomerID:    in.CustomerID,
	}

	// 4) A credit sale posts the grand total to the customer's ledger. If the
	// charge fails the stock decrements are undone too.
	if in.Method == MethodCredit {
		note := fmt.Sprintf("Sale %s", s.ID)
		if _, err := u.ledger.AddCharge(ctx, *in.CustomerID, total, note); err != nil {
			rollback()
			return nil, fmt.Errorf("%w: customer=%s: %v", ErrCommitAborted, *in.CustomerID, err)
		}
	}

	if err := u.store.Append(ctx, s); err != nil {
		rollback()
		return nil, fmt.Errorf("%w: %v", ErrCommitAborted, err)
	}

	cart.Clear()
	return s, nil
}

func (u *Usecase) List(ctx context.Context, q ListQuery) ([]Sale, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return u.store.List(ctx, q)
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Sale, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}
