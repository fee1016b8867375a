package domain

import (
	"github.com/shopspring/decimal"
)

// CartLine references its product by id only; name and price are snapshots
// taken when the line was added and survive later catalog edits.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	OrderQty  int             `json:"order_qty"`
}

type CartTotals struct {
	TotalItems int             `json:"total_items"`
	GrandTotal decimal.Decimal `json:"grand_total"` // rounded to 2 decimal places
}

// CartSnapshot is what the presentation layer renders after every cart
// mutation.
type CartSnapshot struct {
	Lines  []CartLine `json:"lines"`
	Totals CartTotals `json:"totals"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Qty       int   `json:"qty" binding:"required,gt=0"`
}
