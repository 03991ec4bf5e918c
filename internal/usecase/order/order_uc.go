package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/supplier"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("order not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrNothingToOrder   = errors.New("no products from this supplier need restocking")
)

// ReorderFactor is how many times the minimum stock an auto-order requests
// per product.
const ReorderFactor = 2

const (
	StatusPending   = "pending"
	StatusReceived  = "received"
	StatusCancelled = "cancelled"
)

type Item struct {
	ProductID         string `json:"productId"`
	Name              string `json:"name"`
	Qty               int    `json:"qty"`
	UnitCostCentavos  int64  `json:"unitCostCentavos"`
	TotalCostCentavos int64  `json:"totalCostCentavos"`
}

// Order is a purchase order against a supplier, priced at cost.
type Order struct {
	ID            string     `json:"id"`
	SupplierID    string     `json:"supplierId"`
	SupplierName  string     `json:"supplierName"`
	At            time.Time  `json:"at"`
	Items         []Item     `json:"items"`
	TotalCentavos int64      `json:"totalCentavos"`
	Status        string     `json:"status"` // pending | received | cancelled
	DeliveryDate  *time.Time `json:"deliveryDate,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type ListQuery struct {
	SupplierID string
	Limit      int
	Offset     int
}

// Suppliers is the slice of the supplier store the order flow needs.
type Suppliers interface {
	FindByID(ctx context.Context, id string) (*supplier.Supplier, error)
	TouchOrder(ctx context.Context, id string) error
}

type Catalog interface {
	All(ctx context.Context) ([]catalog.Product, error)
}

type Store interface {
	Append(ctx context.Context, o *Order) error
	List(ctx context.Context, q ListQuery) ([]Order, error)
	All(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	SetStatus(ctx context.Context, id, status string) (*Order, error)
}

type Usecase struct {
	suppliers Suppliers
	catalog   Catalog
	store     Store
	now       func() time.Time
}

func New(suppliers Suppliers, cat Catalog, store Store) *Usecase {
	return &Usecase{suppliers: suppliers, catalog: cat, store: store, now: time.Now}
}

// CreateForSupplier builds a purchase order covering every product of the
// supplier that is at or below its reorder threshold, requesting
// ReorderFactor times the minimum stock per product at cost price.
func (u *Usecase) CreateForSupplier(ctx context.Context, supplierID string) (*Order, error) {
	if supplierID == "" {
		return nil, ErrInvalidInput
	}

	sp, err := u.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, supplier.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSupplierNotFound, supplierID)
		}
		return nil, err
	}

	products, err := u.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	var items []Item
	var total int64
	for _, p := range products {
		if p.SupplierID == nil || *p.SupplierID != supplierID || !p.LowOnStock() {
			continue
		}
		qty := p.MinStock * ReorderFactor
		lineTotal := p.CostPriceCentavos * int64(qty)
		total += lineTotal
		items = append(items, Item{
			ProductID:         p.ID,
			Name:              p.Name,
			Qty:               qty,
			UnitCostCentavos:  p.CostPriceCentavos,
			TotalCostCentavos: lineTotal,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: supplier=%s", ErrNothingToOrder, supplierID)
	}

	o := &Order{
		ID:            uuid.NewString(),
		SupplierID:    supplierID,
		SupplierName:  sp.Name,
		At:            u.now(),
		Items:         items,
		TotalCentavos: total,
		Status:        StatusPending,
		Notes:         "Auto-generated order for low stock items",
	}

	if err := u.suppliers.TouchOrder(ctx, supplierID); err != nil {
		return nil, err
	}
	if err := u.store.Append(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (u *Usecase) List(ctx context.Context, q ListQuery) ([]Order, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return u.store.List(ctx, q)
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}

func (u *Usecase) SetStatus(ctx context.Context, id, status string) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	switch status {
	case StatusPending, StatusReceived, StatusCancelled:
	default:
		return nil, fmt.Errorf("%w: status=%q", ErrInvalidInput, status)
	}
	return u.store.SetStatus(ctx, id, status)
}
