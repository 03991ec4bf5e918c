package event

import "sync"

// Event is emitted by a store after a successful mutation. The application
// layer decides what to do with it (autosave, audit, nothing).
type Event interface{ Type() string }

type Dispatcher interface {
	Dispatch(e Event)
}

type StockChanged struct {
	ProductID string
	Delta     int
	NewStock  int
}

func (StockChanged) Type() string { return "stock.changed" }

type CatalogChanged struct {
	ProductID string
}

func (CatalogChanged) Type() string { return "catalog.changed" }

type LedgerChanged struct {
	CustomerID    string
	UtangCentavos int64
}

func (LedgerChanged) Type() string { return "ledger.changed" }

type CustomerChanged struct {
	CustomerID string
}

func (CustomerChanged) Type() string { return "customer.changed" }

type SaleCommitted struct {
	SaleID        string
	TotalCentavos int64
}

func (SaleCommitted) Type() string { return "sale.committed" }

type SupplierChanged struct {
	SupplierID string
}

func (SupplierChanged) Type() string { return "supplier.changed" }

type OrderChanged struct {
	OrderID string
}

func (OrderChanged) Type() string { return "order.changed" }

type UserChanged struct {
	UserID string
}

func (UserChanged) Type() string { return "user.changed" }

type SettingsChanged struct{}

func (SettingsChanged) Type() string { return "settings.changed" }

// Hub fans events out to subscribers synchronously, in subscription order.
type Hub struct {
	mu   sync.RWMutex
	subs []func(Event)
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) Subscribe(fn func(Event)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

func (h *Hub) Dispatch(e Event) {
	h.mu.RLock()
	subs := h.subs
	h.mu.RUnlock()
	for _, fn := range subs {
		fn(e)
	}
}
