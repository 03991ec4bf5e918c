package sale

import "time"

const (
	MethodCash   = "cash"
	MethodCredit = "credit"
	MethodOther  = "other"
)

// Cart is an in-progress, uncommitted set of sale lines. Unit prices are
// snapshotted when a line is added, so later catalog price edits do not
// retroactively change an open cart.
type Cart struct {
	Lines []Line `json:"lines"`
}

type Line struct {
	ProductID         string `json:"productId"`
	Name              string `json:"name"`
	Qty               int    `json:"qty"`
	UnitPriceCentavos int64  `json:"unitPriceCentavos"`
}

// QtyOf returns the quantity already reserved for a product in this cart.
func (c *Cart) QtyOf(productID string) int {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l.Qty
		}
	}
	return 0
}

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

// Remove drops the line for a product. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
}

func (c *Cart) Clear() { c.Lines = nil }

// TotalCentavos is the sum of line totals at the snapshotted prices.
func (c *Cart) TotalCentavos() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.UnitPriceCentavos * int64(l.Qty)
	}
	return total
}

// Sale is immutable once committed; the history is append-only.
type Sale struct {
	ID            string     `json:"id"`
	At            time.Time  `json:"at"`
	Lines         []SaleLine `json:"lines"`
	TotalCentavos int64      `json:"totalCentavos"`
	Method        string     `json:"method"`
	Operator      string     `json:"operator"`
	CustomerID    *string    `json:"customerId,omitempty"`
}

type SaleLine struct {
	ProductID         string `json:"productId"`
	Name              string `json:"name"`
	Qty               int    `json:"qty"`
	UnitPriceCentavos int64  `json:"unitPriceCentavos"`
	LineTotalCentavos int64  `json:"lineTotalCentavos"`
}

type CommitInput struct {
	Method     string  `json:"method"`
	Operator   string  `json:"operator"`
	CustomerID *string `json:"customerId,omitempty"`
}

type ListQuery struct {
	Limit  int
	Offset int
}
