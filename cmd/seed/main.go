package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Cyndie1416/RetailPOS/internal/config"
	"github.com/Cyndie1416/RetailPOS/internal/snapshot"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/auth"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/ledger"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/settings"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/supplier"
)

// Writes a starter snapshot so a fresh install has something on the shelves.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	now := time.Now()
	expiry := func(d int) *time.Time {
		t := now.AddDate(0, 0, d)
		return &t
	}
	mustHash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		return string(h)
	}

	supplierID := uuid.NewString()
	supplierName := "ABC Distributors"

	snap := &snapshot.Snapshot{
		Suppliers: []supplier.Supplier{
			{
				ID:            supplierID,
				Name:          supplierName,
				ContactPerson: "Juan Santos",
				Phone:         "+63 912 345 6789",
				Email:         "juan@abcdistributors.com",
				Address:       "123 Supplier Street, Manila",
				PaymentTerms:  "Net 30",
				Status:        "active",
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		},
		Products: []catalog.Product{
			{
				ID: uuid.NewString(), Name: "Coca Cola 330ml", Category: "beverages",
				PriceCentavos: 2500, CostPriceCentavos: 2000, Stock: 50,
				Unit: "bottle", Barcode: "123456789", MinStock: 10, Location: "Shelf A1",
				ExpiryDate: expiry(180), SupplierID: &supplierID, SupplierName: &supplierName,
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: uuid.NewString(), Name: "Pepsi 330ml", Category: "beverages",
				PriceCentavos: 2300, CostPriceCentavos: 1800, Stock: 45,
				Unit: "bottle", Barcode: "987654321", MinStock: 8, Location: "Shelf A2",
				ExpiryDate: expiry(150), SupplierID: &supplierID, SupplierName: &supplierName,
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: uuid.NewString(), Name: "Lucky Me Pancit Canton", Category: "snacks",
				PriceCentavos: 1500, CostPriceCentavos: 1200, Stock: 30,
				Unit: "pack", Barcode: "456789123", MinStock: 5, Location: "Shelf B1",
				ExpiryDate: expiry(90), SupplierID: &supplierID, SupplierName: &supplierName,
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: uuid.NewString(), Name: "Tide Powder Detergent", Category: "household",
				PriceCentavos: 4500, CostPriceCentavos: 3600, Stock: 20,
				Unit: "sachet", MinStock: 5, Location: "Shelf C1",
				SupplierID: &supplierID, SupplierName: &supplierName,
				CreatedAt: now, UpdatedAt: now,
			},
		},
		Customers: []ledger.Customer{
			{
				ID:                  uuid.NewString(),
				Name:                "Juan Dela Cruz",
				Phone:               "+63 912 345 6789",
				Address:             "123 Main Street, Barangay 1",
				CreditLimitCentavos: 50000,
				UtangHistory:        []ledger.Entry{},
				PaymentHistory:      []ledger.Entry{},
				CreatedAt:           now,
				UpdatedAt:           now,
			},
		},
		Users: []auth.User{
			{
				ID: uuid.NewString(), Username: "owner", PasswordHash: mustHash("owner123"),
				Name: "Store Owner", Role: auth.RoleOwner, Email: "owner@saripos.com",
				Permissions: auth.DefaultPermissions(auth.RoleOwner), Status: "active",
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: uuid.NewString(), Username: "cashier", PasswordHash: mustHash("cashier123"),
				Name: "Store Cashier", Role: auth.RoleCashier, Email: "cashier@saripos.com",
				Permissions: auth.DefaultPermissions(auth.RoleCashier), Status: "active",
				CreatedAt: now, UpdatedAt: now,
			},
		},
		Settings: settings.Settings{
			StoreName:    "Sari-Sari Store",
			StoreAddress: "123 Main Street, City",
			StorePhone:   "+63 912 345 6789",
		},
	}
	files := snapshot.NewFileStore(cfg.SnapshotPath)
	if err := files.Save(snap); err != nil {
		log.Fatal(err)
	}
	log.Printf("seed snapshot written to %s", cfg.SnapshotPath)
}
