package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Cyndie1416/RetailPOS/internal/event"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/sale"
)

// SaleStore is the append-only sales history. Committed sales are never
// mutated or removed outside a full snapshot import.
type SaleStore struct {
	mu     sync.Mutex
	sales  []sale.Sale
	events event.Dispatcher
}

func NewSaleStore(events event.Dispatcher) *SaleStore {
	return &SaleStore{events: events}
}

func copySale(s sale.Sale) sale.Sale {
	s.Lines = append([]sale.SaleLine(nil), s.Lines...)
	return s
}

func (s *SaleStore) Append(ctx context.Context, in *sale.Sale) error {
	s.mu.Lock()
	s.sales = append(s.sales, copySale(*in))
	s.mu.Unlock()

	dispatch(s.events, event.SaleCommitted{SaleID: in.ID, TotalCentavos: in.TotalCentavos})
	return nil
}

// List returns newest first.
func (s *SaleStore) List(ctx context.Context, q sale.ListQuery) ([]sale.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]sale.Sale, 0, len(s.sales))
	for i := len(s.sales) - 1; i >= 0; i-- {
		out = append(out, copySale(s.sales[i]))
	}

	if q.Offset >= len(out) {
		return []sale.Sale{}, nil
	}
	out = out[q.Offset:]
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *SaleStore) All(ctx context.Context) ([]sale.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]sale.Sale, 0, len(s.sales))
	for _, sl := range s.sales {
		out = append(out, copySale(sl))
	}
	return out, nil
}

func (s *SaleStore) GetByID(ctx context.Context, id string) (*sale.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sl := range s.sales {
		if sl.ID == id {
			cp := copySale(sl)
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", sale.ErrNotFound, id)
}

func (s *SaleStore) Replace(sales []sale.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sales = make([]sale.Sale, 0, len(sales))
	for _, sl := range sales {
		s.sales = append(s.sales, copySale(sl))
	}
}
