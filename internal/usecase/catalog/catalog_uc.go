package catalog

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("product not found")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Store is the catalog persistence contract. Every mutation is atomic: it
// either fully applies or leaves the product untouched. Stock never goes
// negative; a decrement that would is rejected, not clamped.
type Store interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, q ListQuery) ([]Product, error)
	All(ctx context.Context) ([]Product, error)
	Upsert(ctx context.Context, in UpsertInput) (*Product, error)
	Delete(ctx context.Context, id string) error

	DecrementStock(ctx context.Context, id string, qty int) error
	IncrementStock(ctx context.Context, id string, qty int, actor string) (*RestockEvent, error)
	// RestoreStock undoes a decrement during a commit rollback. It does not
	// record a restock event.
	RestoreStock(ctx context.Context, id string, qty int) error

	RestockHistory(ctx context.Context, productID string) ([]RestockEvent, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) FindByID(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.FindByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, q ListQuery) ([]Product, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return u.store.List(ctx, q)
}

func (u *Usecase) Upsert(ctx context.Context, in UpsertInput) (*Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrInvalidInput
	}
	if in.PriceCentavos < 0 || in.CostPriceCentavos < 0 {
		return nil, ErrInvalidInput
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return nil, ErrInvalidInput
	}
	return u.store.Upsert(ctx, in)
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return u.store.Delete(ctx, id)
}

// Restock increases stock and records who did it.
func (u *Usecase) Restock(ctx context.Context, id string, qty int, actor string) (*RestockEvent, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	return u.store.IncrementStock(ctx, id, qty, actor)
}

func (u *Usecase) RestockHistory(ctx context.Context, productID string) ([]RestockEvent, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}
	return u.store.RestockHistory(ctx, productID)
}
