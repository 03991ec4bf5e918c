package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Cyndie1416/RetailPOS/internal/event"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/supplier"
)

type SupplierStore struct {
	mu        sync.Mutex
	suppliers map[string]*supplier.Supplier
	order     []string
	events    event.Dispatcher
	now       func() time.Time
}

func NewSupplierStore(events event.Dispatcher) *SupplierStore {
	return &SupplierStore{
		suppliers: make(map[string]*supplier.Supplier),
		events:    events,
		now:       time.Now,
	}
}

func (s *SupplierStore) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, ok := s.suppliers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", supplier.ErrNotFound, id)
	}
	cp := *sp
	return &cp, nil
}

func (s *SupplierStore) List(ctx context.Context, q supplier.ListQuery) ([]supplier.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]supplier.Supplier, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.suppliers[id])
	}

	if q.Offset >= len(out) {
		return []supplier.Supplier{}, nil
	}
	out = out[q.Offset:]
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *SupplierStore) All(ctx context.Context) ([]supplier.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]supplier.Supplier, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.suppliers[id])
	}
	return out, nil
}

func (s *SupplierStore) Upsert(ctx context.Context, in supplier.UpsertInput) (*supplier.Supplier, error) {
	s.mu.Lock()

	now := s.now()
	var sp *supplier.Supplier
	if in.ID == nil {
		sp = &supplier.Supplier{ID: uuid.NewString(), CreatedAt: now}
		s.suppliers[sp.ID] = sp
		s.order = append(s.order, sp.ID)
	} else {
		var ok bool
		sp, ok = s.suppliers[*in.ID]
		if !ok {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", supplier.ErrNotFound, *in.ID)
		}
	}

	sp.Name = in.Name
	sp.ContactPerson = in.ContactPerson
	sp.Phone = in.Phone
	sp.Email = in.Email
	sp.Address = in.Address
	sp.PaymentTerms = in.PaymentTerms
	sp.Status = in.Status
	sp.UpdatedAt = now

	cp := *sp
	s.mu.Unlock()

	dispatch(s.events, event.SupplierChanged{SupplierID: cp.ID})
	return &cp, nil
}

func (s *SupplierStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()

	if _, ok := s.suppliers[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", supplier.ErrNotFound, id)
	}
	delete(s.suppliers, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	dispatch(s.events, event.SupplierChanged{SupplierID: id})
	return nil
}

func (s *SupplierStore) TouchOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, ok := s.suppliers[id]
	if !ok {
		return fmt.Errorf("%w: %s", supplier.ErrNotFound, id)
	}
	now := s.now()
	sp.LastOrder = &now
	sp.UpdatedAt = now
	return nil
}

func (s *SupplierStore) Replace(suppliers []supplier.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suppliers = make(map[string]*supplier.Supplier, len(suppliers))
	s.order = s.order[:0]
	for i := range suppliers {
		sp := suppliers[i]
		s.suppliers[sp.ID] = &sp
		s.order = append(s.order, sp.ID)
	}
}
