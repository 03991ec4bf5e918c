package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Cyndie1416/RetailPOS/internal/event"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/order"
)

type OrderStore struct {
	mu     sync.Mutex
	orders []order.Order
	events event.Dispatcher
}

func NewOrderStore(events event.Dispatcher) *OrderStore {
	return &OrderStore{events: events}
}

func copyOrder(o order.Order) order.Order {
	o.Items = append([]order.Item(nil), o.Items...)
	return o
}

func (s *OrderStore) Append(ctx context.Context, in *order.Order) error {
	s.mu.Lock()
	s.orders = append(s.orders, copyOrder(*in))
	s.mu.Unlock()

	dispatch(s.events, event.OrderChanged{OrderID: in.ID})
	return nil
}

// List returns newest first.
func (s *OrderStore) List(ctx context.Context, q order.ListQuery) ([]order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]order.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if q.SupplierID != "" && o.SupplierID != q.SupplierID {
			continue
		}
		out = append(out, copyOrder(o))
	}

	if q.Offset >= len(out) {
		return []order.Order{}, nil
	}
	out = out[q.Offset:]
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *OrderStore) All(ctx context.Context) ([]order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, copyOrder(o))
	}
	return out, nil
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			cp := copyOrder(o)
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", order.ErrNotFound, id)
}

func (s *OrderStore) SetStatus(ctx context.Context, id, status string) (*order.Order, error) {
	s.mu.Lock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			cp := copyOrder(s.orders[i])
			s.mu.Unlock()

			dispatch(s.events, event.OrderChanged{OrderID: id})
			return &cp, nil
		}
	}
	s.mu.Unlock()
	return nil, fmt.Errorf("%w: %s", order.ErrNotFound, id)
}

func (s *OrderStore) Replace(orders []order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]order.Order, 0, len(orders))
	for _, o := range orders {
		s.orders = append(s.orders, copyOrder(o))
	}
}
