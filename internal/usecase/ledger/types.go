package ledger

import "time"

type Customer struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Phone               string    `json:"phone"`
	Address             string    `json:"address,omitempty"`
	CreditLimitCentavos int64     `json:"creditLimitCentavos"`
	UtangCentavos       int64     `json:"utangCentavos"`
	UtangHistory        []Entry   `json:"utangHistory"`
	PaymentHistory      []Entry   `json:"paymentHistory"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Entry is an immutable ledger record. Charges carry a due date; payments
// record the full amount tendered even when part of it was absorbed by the
// zero floor on the balance.
type Entry struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customerId"`
	AmountCentavos int64      `json:"amountCentavos"`
	Note           string     `json:"note,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	At             time.Time  `json:"at"`
}

type UpsertInput struct {
	ID                  *string `json:"id"`
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	Address             string  `json:"address"`
	CreditLimitCentavos int64   `json:"creditLimitCentavos"`
}

type ListQuery struct {
	Search string // matches name or phone
	Limit  int
	Offset int
}
