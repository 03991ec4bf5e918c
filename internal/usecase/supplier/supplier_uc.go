package supplier

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("supplier not found")
)

type Supplier struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	ContactPerson string     `json:"contactPerson,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	Address       string     `json:"address,omitempty"`
	PaymentTerms  string     `json:"paymentTerms,omitempty"`
	Status        string     `json:"status"` // active | inactive
	LastOrder     *time.Time `json:"lastOrder,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type UpsertInput struct {
	ID            *string `json:"id"`
	Name          string  `json:"name"`
	ContactPerson string  `json:"contactPerson"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	PaymentTerms  string  `json:"paymentTerms"`
	Status        string  `json:"status"`
}

type ListQuery struct {
	Limit  int
	Offset int
}

type Store interface {
	FindByID(ctx context.Context, id string) (*Supplier, error)
	List(ctx context.Context, q ListQuery) ([]Supplier, error)
	All(ctx context.Context) ([]Supplier, error)
	Upsert(ctx context.Context, in UpsertInput) (*Supplier, error)
	Delete(ctx context.Context, id string) error
	// TouchOrder stamps the supplier's last-order time.
	TouchOrder(ctx context.Context, id string) error
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) FindByID(ctx context.Context, id string) (*Supplier, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.FindByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, q ListQuery) ([]Supplier, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return u.store.List(ctx, q)
}

func (u *Usecase) Upsert(ctx context.Context, in UpsertInput) (*Supplier, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrInvalidInput
	}
	switch in.Status {
	case "":
		in.Status = "active"
	case "active", "inactive":
	default:
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
