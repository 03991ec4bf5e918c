package ledger

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("customer not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrPhoneConflict = errors.New("phone already exists")
)

// ChargeDueDays is how long a customer has to settle a charge. The store
// stamps every charge with a due date this many days out.
const ChargeDueDays = 30

// Store owns the customer records and their running balances. AddCharge and
// RecordPayment are atomic; the balance invariant (utang never below zero,
// overpayment absorbed) is the store's to keep.
type Store interface {
	FindByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, q ListQuery) ([]Customer, error)
	All(ctx context.Context) ([]Customer, error)
	Upsert(ctx context.Context, in UpsertInput) (*Customer, error)
	Delete(ctx context.Context, id string) error

	AddCharge(ctx context.Context, customerID string, amountCentavos int64, note string) (*Entry, error)
	RecordPayment(ctx context.Context, customerID string, amountCentavos int64, note string) (*Entry, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) FindByID(ctx context.Context, id string) (*Customer, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.FindByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, q ListQuery) ([]Customer, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return u.store.List(ctx, q)
}

func (u *Usecase) Upsert(ctx context.Context, in UpsertInput) (*Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Phone == "" {
		return nil, ErrInvalidInput
	}
	if in.CreditLimitCentavos < 0 {
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

// AddCharge increases the customer's utang and appends a charge entry due in
// ChargeDueDays.
func (u *Usecase) AddCharge(ctx context.Context, customerID string, amountCentavos int64, note string) (*Entry, error) {
	if customerID == "" {
		return nil, ErrInvalidInput
	}
	if amountCentavos <= 0 {
		return nil, ErrInvalidAmount
	}
	return u.store.AddCharge(ctx, customerID, amountCentavos, note)
}

// RecordPayment reduces utang by min(amount, utang). The excess of an
// overpayment is discarded rather than carried as store credit; the payment
// entry still records the full amount tendered.
func (u *Usecase) RecordPayment(ctx context.Context, customerID string, amountCentavos int64, note string) (*Entry, error) {
	if customerID == "" {
		return nil, ErrInvalidInput
	}
	if amountCentavos <= 0 {
		return nil, ErrInvalidAmount
	}
	return u.store.RecordPayment(ctx, customerID, amountCentavos, note)
}
