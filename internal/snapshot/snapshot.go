// Package snapshot exports and imports the full application state. The
// injected Loader/Saver decide where snapshots live; the stores only hand
// over and accept plain data.
package snapshot

import (
	"context"

	"github.com/Cyndie1416/RetailPOS/internal/repository/memory"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/auth"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/ledger"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/order"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/sale"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/settings"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/supplier"
)

type Snapshot struct {
	Products  []catalog.Product      `json:"products"`
	Restocks  []catalog.RestockEvent `json:"restocks"`
	Customers []ledger.Customer      `json:"customers"`
	Sales     []sale.Sale            `json:"sales"`
	Suppliers []supplier.Supplier    `json:"suppliers"`
	Orders    []order.Order          `json:"orders"`
	Users     []auth.User            `json:"users"`
	Settings  settings.Settings      `json:"settings"`
}

type Loader interface {
	Load() (*Snapshot, error)
}

type Saver interface {
	Save(*Snapshot) error
}

// Service moves full state in and out of the memory stores.
type Service struct {
	Catalog   *memory.CatalogStore
	Ledger    *memory.LedgerStore
	Sales     *memory.SaleStore
	Suppliers *memory.SupplierStore
	Orders    *memory.OrderStore
	Users     *memory.UserStore
	Settings  *memory.SettingsStore
}

func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	products, err := s.Catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	restocks, err := s.Catalog.Restocks(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.Ledger.All(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.Sales.All(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.Suppliers.All(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.Orders.All(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.All(ctx)
	if err != nil {
		return nil, err
	}
	set, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Products:  products,
		Restocks:  restocks,
		Customers: customers,
		Sales:     sales,
		Suppliers: suppliers,
		Orders:    orders,
		Users:     users,
		Settings:  set,
	}, nil
}

// Import replaces all store state with the snapshot's. It does not merge.
func (s *Service) Import(ctx context.Context, snap *Snapshot) error {
	s.Catalog.Replace(snap.Products, snap.Restocks)
	s.Ledger.Replace(snap.Customers)
	s.Sales.Replace(snap.Sales)
	s.Suppliers.Replace(snap.Suppliers)
	s.Orders.Replace(snap.Orders)
	s.Users.Replace(snap.Users)
	s.Settings.Replace(snap.Settings)
	return nil
}
