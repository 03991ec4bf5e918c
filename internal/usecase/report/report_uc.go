package report

import (
	"context"
	"sort"
	"time"

	"github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/ledger"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/sale"
)

// ExpiryWindowDays is the lookahead for the expiring-soon report.
const ExpiryWindowDays = 30

type CatalogReader interface {
	All(ctx context.Context) ([]catalog.Product, error)
}

type LedgerReader interface {
	All(ctx context.Context) ([]ledger.Customer, error)
}

type SalesReader interface {
	All(ctx context.Context) ([]sale.Sale, error)
}

// Summary is the dashboard fold: today's takings, outstanding utang, and the
// two inventory warning counters.
type Summary struct {
	TodaySalesCentavos int64 `json:"todaySalesCentavos"`
	TotalUtangCentavos int64 `json:"totalUtangCentavos"`
	LowStockCount      int   `json:"lowStockCount"`
	ExpiringCount      int   `json:"expiringCount"`
}

// Valuation prices the whole inventory at cost and at retail.
type Valuation struct {
	RetailCentavos int64 `json:"retailCentavos"`
	CostCentavos   int64 `json:"costCentavos"`
	MarginCentavos int64 `json:"marginCentavos"`
	Units          int   `json:"units"`
}

type Usecase struct {
	catalog CatalogReader
	ledger  LedgerReader
	sales   SalesReader
	now     func() time.Time
}

func New(cat CatalogReader, led LedgerReader, sales SalesReader) *Usecase {
	return &Usecase{catalog: cat, ledger: led, sales: sales, now: time.Now}
}

func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	products, err := u.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := u.ledger.All(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := u.sales.All(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	out := &Summary{}
	for _, s := range sales {
		if !s.At.Before(dayStart) && s.At.Before(dayStart.AddDate(0, 0, 1)) {
			out.TodaySalesCentavos += s.TotalCentavos
		}
	}
	for _, c := range customers {
		out.TotalUtangCentavos += c.UtangCentavos
	}
	for _, p := range products {
		if p.LowOnStock() {
			out.LowStockCount++
		}
		if expiresWithin(p, now, ExpiryWindowDays) {
			out.ExpiringCount++
		}
	}
	return out, nil
}

func (u *Usecase) LowStock(ctx context.Context) ([]catalog.Product, error) {
	products, err := u.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	out := products[:0:0]
	for _, p := range products {
		if p.LowOnStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *Usecase) Expiring(ctx context.Context) ([]catalog.Product, error) {
	products, err := u.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := products[:0:0]
	for _, p := range products {
		if expiresWithin(p, now, ExpiryWindowDays) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExpiryDate.Before(*out[j].ExpiryDate)
	})
	return out, nil
}

func (u *Usecase) StockValuation(ctx context.Context) (*Valuation, error) {
	products, err := u.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	out := &Valuation{}
	for _, p := range products {
		out.RetailCentavos += p.PriceCentavos * int64(p.Stock)
		out.CostCentavos += p.CostPriceCentavos * int64(p.Stock)
		out.Units += p.Stock
	}
	out.MarginCentavos = out.RetailCentavos - out.CostCentavos
	return out, nil
}

// RecentSales returns the last n sales, newest first.
func (u *Usecase) RecentSales(ctx context.Context, n int) ([]sale.Sale, error) {
	if n <= 0 || n > 100 {
		n = 10
	}
	sales, err := u.sales.All(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].At.After(sales[j].At) })
	if len(sales) > n {
		sales = sales[:n]
	}
	return sales, nil
}

func expiresWithin(p catalog.Product, now time.Time, days int) bool {
	if p.ExpiryDate == nil {
		return false
	}
	until := p.ExpiryDate.Sub(now)
	return until >= 0 && until <= time.Duration(days)*24*time.Hour
}
