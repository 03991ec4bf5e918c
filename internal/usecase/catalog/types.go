package catalog

import "time"

type Product struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	PriceCentavos     int64      `json:"priceCentavos"`
	CostPriceCentavos int64      `json:"costPriceCentavos"`
	Stock             int        `json:"stock"`
	Unit              string     `json:"unit"`
	Barcode           string     `json:"barcode,omitempty"`
	MinStock          int        `json:"minStock"`
	Location          string     `json:"location,omitempty"`
	ExpiryDate        *time.Time `json:"expiryDate,omitempty"`
	SupplierID        *string    `json:"supplierId,omitempty"`
	SupplierName      *string    `json:"supplierName,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// LowOnStock reports whether the product is at or below its reorder threshold.
func (p Product) LowOnStock() bool {
	return p.Stock <= p.MinStock
}

// RestockEvent records a single inventory-increasing mutation.
type RestockEvent struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Qty       int       `json:"qty"`
	Actor     string    `json:"actor"`
	At        time.Time `json:"at"`
}

// UpsertInput creates a product when ID is nil and updates it otherwise.
type UpsertInput struct {
	ID                *string    `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	PriceCentavos     int64      `json:"priceCentavos"`
	CostPriceCentavos int64      `json:"costPriceCentavos"`
	Stock             int        `json:"stock"`
	Unit              string     `json:"unit"`
	Barcode           string     `json:"barcode"`
	MinStock          int        `json:"minStock"`
	Location          string     `json:"location"`
	ExpiryDate        *time.Time `json:"expiryDate"`
	SupplierID        *string    `json:"supplierId"`
	SupplierName      *string    `json:"supplierName"`
}

type ListQuery struct {
	Search   string // matches name or barcode, case-insensitive
	Category string
	Limit    int
	Offset   int
}
