package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is a frozen line snapshot; it carries no product id on purpose,
// so later catalog edits can never reach into recorded sales.
type SaleItem struct {
	Name  string          `json:"name"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

// Sale is immutable once appended to the ledger. JSON tags follow the
// original storefront's blob format (camelCase, totalAmount pre-rounded).
type Sale struct {
	InvoiceID   int             `json:"invoiceId"`
	Date        time.Time       `json:"date"`
	Customer    string          `json:"customer"`
	Phone       string          `json:"phone,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Items       []SaleItem      `json:"items"`
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}
