package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Cyndie1416/RetailPOS/internal/event"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/ledger"
)

type LedgerStore struct {
	mu        sync.Mutex
	customers map[string]*ledger.Customer
	order     []string
	events    event.Dispatcher
	now       func() time.Time
}

func NewLedgerStore(events event.Dispatcher) *LedgerStore {
	return &LedgerStore{
		customers: make(map[string]*ledger.Customer),
		events:    events,
		now:       time.Now,
	}
}

func copyCustomer(c *ledger.Customer) *ledger.Customer {
	cp := *c
	cp.UtangHistory = append([]ledger.Entry(nil), c.UtangHistory...)
	cp.PaymentHistory = append([]ledger.Entry(nil), c.PaymentHistory...)
	return &cp
}

func (s *LedgerStore) FindByID(ctx context.Context, id string) (*ledger.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ledger.ErrNotFound, id)
	}
	return copyCustomer(c), nil
}

func (s *LedgerStore) List(ctx context.Context, q ledger.ListQuery) ([]ledger.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(q.Search)
	matched := make([]ledger.Customer, 0, len(s.order))
	for _, id := range s.order {
		c := s.customers[id]
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(c.Phone, q.Search) {
			continue
		}
		matched = append(matched, *copyCustomer(c))
	}

	if q.Offset >= len(matched) {
		return []ledger.Customer{}, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (s *LedgerStore) All(ctx context.Context) ([]ledger.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ledger.Customer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *copyCustomer(s.customers[id]))
	}
	return out, nil
}

func (s *LedgerStore) Upsert(ctx context.Context, in ledger.UpsertInput) (*ledger.Customer, error) {
	s.mu.Lock()

	// Phone numbers identify customers; two records may not share one.
	for id, other := range s.customers {
		if other.Phone == in.Phone && (in.ID == nil || id != *in.ID) {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ledger.ErrPhoneConflict, in.Phone)
		}
	}

	now := s.now()
	var c *ledger.Customer
	if in.ID == nil {
		c = &ledger.Customer{
			ID:             uuid.NewString(),
			UtangHistory:   []ledger.Entry{},
			PaymentHistory: []ledger.Entry{},
			CreatedAt:      now,
		}
		s.customers[c.ID] = c
		s.order = append(s.order, c.ID)
	} else {
		var ok bool
		c, ok = s.customers[*in.ID]
		if !ok {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ledger.ErrNotFound, *in.ID)
		}
	}

	c.Name = in.Name
	c.Phone = in.Phone
	c.Address = in.Address
	c.CreditLimitCentavos = in.CreditLimitCentavos
	c.UpdatedAt = now

	cp := copyCustomer(c)
	s.mu.Unlock()

	dispatch(s.events, event.CustomerChanged{CustomerID: cp.ID})
	return cp, nil
}

func (s *LedgerStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()

	if _, ok := s.customers[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ledger.ErrNotFound, id)
	}
	delete(s.customers, id)
	for i, cid := range s.order {
		if cid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	dispatch(s.events, event.CustomerChanged{CustomerID: id})
	return nil
}

// AddCharge appends an immutable charge entry due in ledger.ChargeDueDays and
// raises the balance by the full amount.
func (s *LedgerStore) AddCharge(ctx context.Context, customerID string, amountCentavos int64, note string) (*ledger.Entry, error) {
	if amountCentavos <= 0 {
		return nil, fmt.Errorf("%w: amount=%d", ledger.ErrInvalidAmount, amountCentavos)
	}

	s.mu.Lock()

	c, ok := s.customers[customerID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ledger.ErrNotFound, customerID)
	}

	now := s.now()
	due := now.AddDate(0, 0, ledger.ChargeDueDays)
	entry := ledger.Entry{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		AmountCentavos: amountCentavos,
		Note:           note,
		DueDate:        &due,
		At:             now,
	}
	c.UtangHistory = append(c.UtangHistory, entry)
	c.UtangCentavos += amountCentavos
	c.UpdatedAt = now
	utang := c.UtangCentavos
	s.mu.Unlock()

	dispatch(s.events, event.LedgerChanged{CustomerID: customerID, UtangCentavos: utang})
	return &entry, nil
}

// RecordPayment lowers the balance by min(amount, balance). The entry keeps
// the full tendered amount; any excess is absorbed, not carried as credit.
func (s *LedgerStore) RecordPayment(ctx context.Context, customerID string, amountCentavos int64, note string) (*ledger.Entry, error) {
	if amountCentavos <= 0 {
		return nil, fmt.Errorf("%w: amount=%d", ledger.ErrInvalidAmount, amountCentavos)
	}

	s.mu.Lock()

	c, ok := s.customers[customerID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ledger.ErrNotFound, customerID)
	}

	now := s.now()
	entry := ledger.Entry{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		AmountCentavos: amountCentavos,
		Note:           note,
		At:             now,
	}
	c.PaymentHistory = append(c.PaymentHistory, entry)
	c.UtangCentavos -= amountCentavos
	if c.UtangCentavos < 0 {
		c.UtangCentavos = 0
	}
	c.UpdatedAt = now
	utang := c.UtangCentavos
	s.mu.Unlock()

	dispatch(s.events, event.LedgerChanged{CustomerID: customerID, UtangCentavos: utang})
	return &entry, nil
}

// Replace swaps in a full imported state without firing events.
func (s *LedgerStore) Replace(customers []ledger.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = make(map[string]*ledger.Customer, len(customers))
	s.order = s.order[:0]
	for i := range customers {
		c := customers[i]
		s.customers[c.ID] = &c
		s.order = append(s.order, c.ID)
	}
}
