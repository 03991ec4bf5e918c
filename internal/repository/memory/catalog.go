package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Cyndie1416/RetailPOS/internal/event"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
)

type CatalogStore struct {
	mu       sync.Mutex
	products map[string]*catalog.Product
	order    []string // insertion order for stable listings
	restocks []catalog.RestockEvent
	events   event.Dispatcher
	now      func() time.Time
}

func NewCatalogStore(events event.Dispatcher) *CatalogStore {
	return &CatalogStore{
		products: make(map[string]*catalog.Product),
		events:   events,
		now:      time.Now,
	}
}

func (s *CatalogStore) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	cp := *p
	return &cp, nil
}

func (s *CatalogStore) List(ctx context.Context, q catalog.ListQuery) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(q.Search)
	matched := make([]catalog.Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.products[id]
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Barcode), search) {
			continue
		}
		matched = append(matched, *p)
	}

	if q.Offset >= len(matched) {
		return []catalog.Product{}, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (s *CatalogStore) All(ctx context.Context) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]catalog.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.products[id])
	}
	return out, nil
}

// Upsert creates when in.ID is nil and updates otherwise. Events fire after
// the lock is released so subscribers may read the store.
func (s *CatalogStore) Upsert(ctx context.Context, in catalog.UpsertInput) (*catalog.Product, error) {
	s.mu.Lock()

	now := s.now()
	var p *catalog.Product
	if in.ID == nil {
		p = &catalog.Product{ID: uuid.NewString(), CreatedAt: now}
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	} else {
		var ok bool
		p, ok = s.products[*in.ID]
		if !ok {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, *in.ID)
		}
	}

	p.Name = in.Name
	p.Category = in.Category
	p.PriceCentavos = in.PriceCentavos
	p.CostPriceCentavos = in.CostPriceCentavos
	p.Stock = in.Stock
	p.Unit = in.Unit
	p.Barcode = in.Barcode
	p.MinStock = in.MinStock
	p.Location = in.Location
	p.ExpiryDate = in.ExpiryDate
	p.SupplierID = in.SupplierID
	p.SupplierName = in.SupplierName
	p.UpdatedAt = now

	cp := *p
	s.mu.Unlock()

	dispatch(s.events, event.CatalogChanged{ProductID: cp.ID})
	return &cp, nil
}

func (s *CatalogStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()

	if _, ok := s.products[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	delete(s.products, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	dispatch(s.events, event.CatalogChanged{ProductID: id})
	return nil
}

// DecrementStock fails rather than clamps: stock never goes negative.
func (s *CatalogStore) DecrementStock(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: qty=%d", catalog.ErrInvalidQuantity, qty)
	}

	s.mu.Lock()
	p, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	if p.Stock < qty {
		s.mu.Unlock()
		return fmt.Errorf("%w: product=%s stock=%d requested=%d",
			catalog.ErrInsufficientStock, id, p.Stock, qty)
	}
	p.Stock -= qty
	p.UpdatedAt = s.now()
	newStock := p.Stock
	s.mu.Unlock()

	dispatch(s.events, event.StockChanged{ProductID: id, Delta: -qty, NewStock: newStock})
	return nil
}

// IncrementStock is a restock: it bumps stock and records the event with the
// acting user.
func (s *CatalogStore) IncrementStock(ctx context.Context, id string, qty int, actor string) (*catalog.RestockEvent, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: qty=%d", catalog.ErrInvalidQuantity, qty)
	}

	s.mu.Lock()
	p, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	now := s.now()
	p.Stock += qty
	p.UpdatedAt = now
	ev := catalog.RestockEvent{
		ID:        uuid.NewString(),
		ProductID: id,
		Qty:       qty,
		Actor:     actor,
		At:        now,
	}
	s.restocks = append(s.restocks, ev)
	newStock := p.Stock
	s.mu.Unlock()

	dispatch(s.events, event.StockChanged{ProductID: id, Delta: qty, NewStock: newStock})
	return &ev, nil
}

// RestoreStock undoes a decrement during commit rollback. No restock event is
// recorded; the inventory history only carries mutations that actually stood.
func (s *CatalogStore) RestoreStock(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: qty=%d", catalog.ErrInvalidQuantity, qty)
	}

	s.mu.Lock()
	p, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	p.Stock += qty
	p.UpdatedAt = s.now()
	newStock := p.Stock
	s.mu.Unlock()

	dispatch(s.events, event.StockChanged{ProductID: id, Delta: qty, NewStock: newStock})
	return nil
}

func (s *CatalogStore) RestockHistory(ctx context.Context, productID string) ([]catalog.RestockEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]catalog.RestockEvent, 0, 8)
	for _, ev := range s.restocks {
		if ev.ProductID == productID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// Snapshot support ---------------------------------------------------------

func (s *CatalogStore) Restocks(ctx context.Context) ([]catalog.RestockEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.RestockEvent(nil), s.restocks...), nil
}

// Replace swaps in a full imported state. No events fire; import is an
// application-layer operation, not a business mutation.
func (s *CatalogStore) Replace(products []catalog.Product, restocks []catalog.RestockEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[string]*catalog.Product, len(products))
	s.order = s.order[:0]
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
		s.order = append(s.order, p.ID)
	}
	s.restocks = append([]catalog.RestockEvent(nil), restocks...)
}
